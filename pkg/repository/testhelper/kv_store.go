package testhelper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/sitecloner/pkg/domain/interfaces"
	"github.com/m-mizutani/sitecloner/pkg/repository"
)

// TestAll runs the conformance cases every KVStore backend must pass.
func TestAll(t *testing.T, store interfaces.KVStore) {
	t.Run("GetMissingKey", func(t *testing.T) {
		TestGetMissingKey(t, store)
	})
	t.Run("PutAndGet", func(t *testing.T) {
		TestPutAndGet(t, store)
	})
	t.Run("Overwrite", func(t *testing.T) {
		TestOverwrite(t, store)
	})
	t.Run("InvalidKey", func(t *testing.T) {
		TestInvalidKey(t, store)
	})
	t.Run("ConcurrentPut", func(t *testing.T) {
		TestConcurrentPut(t, store)
	})
}

func newKey() string {
	return fmt.Sprintf("key-%s", uuid.New().String()[:8])
}

func TestGetMissingKey(t *testing.T, store interfaces.KVStore) {
	v, err := store.Get(context.Background(), newKey())
	gt.NoError(t, err)
	gt.V(t, v).Equal(nil)
}

func TestPutAndGet(t *testing.T, store interfaces.KVStore) {
	ctx := context.Background()
	key := newKey()
	value := []byte(`{"my-site":{"id":"my-site","name":"My Site"}}`)

	gt.NoError(t, store.Put(ctx, key, value))

	got, err := store.Get(ctx, key)
	gt.NoError(t, err)
	gt.V(t, string(got)).Equal(string(value))

	// Mutating the caller's slice must not affect the stored value
	value[0] = '['
	got, err = store.Get(ctx, key)
	gt.NoError(t, err)
	gt.V(t, got[0]).Equal(byte('{'))
}

func TestOverwrite(t *testing.T, store interfaces.KVStore) {
	ctx := context.Background()
	key := newKey()

	gt.NoError(t, store.Put(ctx, key, []byte(`{"a":1}`)))
	gt.NoError(t, store.Put(ctx, key, []byte(`{"b":2}`)))

	got, err := store.Get(ctx, key)
	gt.NoError(t, err)
	gt.V(t, string(got)).Equal(`{"b":2}`)
}

func TestInvalidKey(t *testing.T, store interfaces.KVStore) {
	ctx := context.Background()

	_, err := store.Get(ctx, "")
	gt.True(t, errors.Is(err, repository.ErrInvalidKey))

	err = store.Put(ctx, "a/b", []byte("{}"))
	gt.True(t, errors.Is(err, repository.ErrInvalidKey))
}

// TestConcurrentPut checks writes do not fail under contention. Which write
// wins is not specified.
func TestConcurrentPut(t *testing.T, store interfaces.KVStore) {
	ctx := context.Background()
	key := newKey()

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = store.Put(ctx, key, []byte(fmt.Sprintf(`{"n":%d}`, i)))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		gt.NoError(t, err)
	}

	got, err := store.Get(ctx, key)
	gt.NoError(t, err)
	gt.True(t, len(got) > 0)
}
