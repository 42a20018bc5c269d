package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sitecloner/pkg/domain/interfaces"
	"github.com/m-mizutani/sitecloner/pkg/domain/model"
)

// exportEvent writes event to BigQuery, creating the table or widening its
// schema first when needed.
func (x *UseCase) exportEvent(ctx context.Context, event *model.ProvisionEvent) error {
	bq := x.clients.BigQuery()

	schema, err := createOrUpdateTable(ctx, bq, event)
	if err != nil {
		return err
	}

	if err := bq.Insert(ctx, schema, event.Record()); err != nil {
		return goerr.Wrap(err, "failed to insert provision event", goerr.V("event_id", event.ID))
	}
	return nil
}

func createOrUpdateTable(ctx context.Context, bq interfaces.BigQuery, event *model.ProvisionEvent) (bigquery.Schema, error) {
	schema, err := bqs.Infer(event)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer event schema")
	}

	md, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get event table metadata")
	}
	if md == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{Schema: schema}); err != nil {
			return nil, goerr.Wrap(err, "failed to create event table")
		}
		return schema, nil
	}

	if bqs.Equal(md.Schema, schema) {
		return schema, nil
	}

	merged, err := bqs.Merge(md.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge event schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{Schema: merged}, md.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update event table")
	}

	return merged, nil
}
