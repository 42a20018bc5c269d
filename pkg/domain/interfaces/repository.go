package interfaces

import (
	"context"
)

//go:generate moq -out ../mock/kv_store_mock.go -pkg mock . KVStore

// KVStore is an eventually consistent key-value store holding the site
// registry document.
type KVStore interface {
	// Get returns nil and no error when key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
