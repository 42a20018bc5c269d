package bq_test

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/sitecloner/pkg/domain/model"
	"github.com/m-mizutani/sitecloner/pkg/domain/types"
	"github.com/m-mizutani/sitecloner/pkg/infra/bq"
	"github.com/m-mizutani/sitecloner/pkg/utils/testutil"
)

func newEvent() *model.ProvisionEvent {
	return &model.ProvisionEvent{
		ID:        types.NewEventID(),
		Timestamp: time.Now().UTC(),
		SiteID:    "my-site",
		SiteName:  "My Site",
		Owner:     "acme",
		Success:   true,
		Steps: []model.StepRecord{
			{Step: "duplicate-template", Status: "succeeded"},
			{Step: "attach-route", Status: "failed", Error: "route conflict"},
		},
	}
}

func TestEncodeRow(t *testing.T) {
	schema := gt.R1(bqs.Infer(model.ProvisionEvent{})).NoError(t)

	t.Run("encodes provision event record", func(t *testing.T) {
		desc, row := gt.R2(bq.EncodeRow(schema, newEvent().Record())).NoError(t)
		gt.V(t, desc.GetName()).Equal("root")
		gt.True(t, len(row) > 0)
	})

	t.Run("rejects row with unknown column", func(t *testing.T) {
		wrong := struct {
			WrongField int `json:"wrong_field"`
		}{WrongField: 1}
		_, _, err := bq.EncodeRow(schema, wrong)
		gt.Error(t, err)
	})

	t.Run("rejects timestamp as string", func(t *testing.T) {
		// TIMESTAMP columns must be written as microseconds
		_, _, err := bq.EncodeRow(schema, newEvent())
		gt.Error(t, err)
	})
}

func TestClient(t *testing.T) {
	envs := testutil.GetEnvsOrSkip(t, "TEST_BIGQUERY_PROJECT_ID", "TEST_BIGQUERY_DATASET_ID")
	projectID, datasetID := envs[0], envs[1]

	ctx := context.Background()
	tblName := types.BQTableID(time.Now().Format("provision_test_20060102_150405"))
	client := gt.R1(bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName)).NoError(t)
	t.Cleanup(func() { gt.NoError(t, client.Close()) })

	schema := gt.R1(bqs.Infer(model.ProvisionEvent{})).NoError(t)

	t.Run("table does not exist yet", func(t *testing.T) {
		md := gt.R1(client.GetMetadata(ctx)).NoError(t)
		gt.V(t, md).Equal(nil)
	})

	t.Run("create table and insert event", func(t *testing.T) {
		gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
			Name:   tblName.String(),
			Schema: schema,
		}))
		gt.NoError(t, client.Insert(ctx, schema, newEvent().Record()))
	})

	t.Run("update table schema", func(t *testing.T) {
		md := gt.R1(client.GetMetadata(ctx)).NoError(t)
		gt.V(t, md).NotEqual(nil)

		extended := append(bigquery.Schema{}, md.Schema...)
		extended = append(extended, &bigquery.FieldSchema{Name: "note", Type: bigquery.StringFieldType})
		gt.NoError(t, client.UpdateTable(ctx, bigquery.TableMetadataToUpdate{Schema: extended}, md.ETag))
	})
}
