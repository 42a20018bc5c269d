package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sitecloner/pkg/domain/interfaces"
	"github.com/m-mizutani/sitecloner/pkg/repository"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const DefaultCollection = "sitecloner"

// KVStore stores each key as a document in one collection. The value is kept
// as a string field so it stays readable in the console.
type KVStore struct {
	client     *firestore.Client
	collection string
}

var _ interfaces.KVStore = (*KVStore)(nil)

type document struct {
	Value     string    `firestore:"value"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

type Option func(*KVStore)

func WithCollection(name string) Option {
	return func(x *KVStore) {
		x.collection = name
	}
}

func New(ctx context.Context, projectID, databaseID string, options ...Option) (*KVStore, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	store := &KVStore{
		client:     client,
		collection: DefaultCollection,
	}
	for _, opt := range options {
		opt(store)
	}
	return store, nil
}

func (x *KVStore) Close() error {
	return x.client.Close()
}

func (x *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := repository.ValidateKey(key); err != nil {
		return nil, err
	}

	snap, err := x.client.Collection(x.collection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get document",
			goerr.V("collection", x.collection),
			goerr.V("key", key),
		)
	}

	var doc document
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode document",
			goerr.V("collection", x.collection),
			goerr.V("key", key),
		)
	}

	return []byte(doc.Value), nil
}

func (x *KVStore) Put(ctx context.Context, key string, value []byte) error {
	if err := repository.ValidateKey(key); err != nil {
		return err
	}

	doc := document{
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}
	if _, err := x.client.Collection(x.collection).Doc(key).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to set document",
			goerr.V("collection", x.collection),
			goerr.V("key", key),
		)
	}

	return nil
}
