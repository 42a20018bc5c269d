package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/sitecloner/pkg/domain/interfaces"
	"github.com/m-mizutani/sitecloner/pkg/repository"
)

// KVStore keeps values in process memory. Values are lost on restart.
type KVStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ interfaces.KVStore = (*KVStore)(nil)

func New() *KVStore {
	return &KVStore{
		data: make(map[string][]byte),
	}
}

func (x *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := repository.ValidateKey(key); err != nil {
		return nil, err
	}

	x.mu.RLock()
	defer x.mu.RUnlock()

	v, ok := x.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (x *KVStore) Put(ctx context.Context, key string, value []byte) error {
	if err := repository.ValidateKey(key); err != nil {
		return err
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	x.data[key] = append([]byte(nil), value...)
	return nil
}
