package gcs_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/sitecloner/pkg/repository/gcs"
	"github.com/m-mizutani/sitecloner/pkg/repository/testhelper"
	"github.com/m-mizutani/sitecloner/pkg/utils/testutil"
)

func TestGCSKVStore(t *testing.T) {
	bucket := testutil.GetEnvOrSkip(t, "TEST_STORAGE_BUCKET")

	ctx := context.Background()
	prefix := time.Now().Format("sitecloner_test/20060102_150405")
	store := gt.R1(gcs.New(ctx, bucket, prefix)).NoError(t)
	t.Cleanup(func() { gt.NoError(t, store.Close()) })

	testhelper.TestAll(t, store)
}
