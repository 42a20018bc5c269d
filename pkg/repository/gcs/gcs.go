package gcs

import (
	"context"
	"errors"
	"io"
	"path"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sitecloner/pkg/domain/interfaces"
	"github.com/m-mizutani/sitecloner/pkg/repository"
	"github.com/m-mizutani/sitecloner/pkg/utils/safe"
	"google.golang.org/api/option"
)

// KVStore keeps each key as an object <prefix>/<key>.json in a bucket.
type KVStore struct {
	client *storage.Client
	bucket string
	prefix string
}

var _ interfaces.KVStore = (*KVStore)(nil)

func New(ctx context.Context, bucket, prefix string, options ...option.ClientOption) (*KVStore, error) {
	client, err := storage.NewClient(ctx, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client", goerr.V("bucket", bucket))
	}

	return &KVStore{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}, nil
}

func (x *KVStore) Close() error {
	return x.client.Close()
}

func (x *KVStore) object(key string) *storage.ObjectHandle {
	return x.client.Bucket(x.bucket).Object(path.Join(x.prefix, key+".json"))
}

func (x *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := repository.ValidateKey(key); err != nil {
		return nil, err
	}

	r, err := x.object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to open object",
			goerr.V("bucket", x.bucket),
			goerr.V("key", key),
		)
	}
	defer safe.Close(r)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read object",
			goerr.V("bucket", x.bucket),
			goerr.V("key", key),
		)
	}
	return data, nil
}

func (x *KVStore) Put(ctx context.Context, key string, value []byte) error {
	if err := repository.ValidateKey(key); err != nil {
		return err
	}

	w := x.object(key).NewWriter(ctx)
	w.ContentType = "application/json"

	if _, err := w.Write(value); err != nil {
		safe.Close(w)
		return goerr.Wrap(err, "failed to write object",
			goerr.V("bucket", x.bucket),
			goerr.V("key", key),
		)
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to commit object",
			goerr.V("bucket", x.bucket),
			goerr.V("key", key),
		)
	}

	return nil
}
