package model

import (
	"time"

	"github.com/m-mizutani/sitecloner/pkg/domain/types"
)

// ProvisionEvent is one clone attempt, exported to BigQuery for auditing.
type ProvisionEvent struct {
	ID        types.EventID `bigquery:"id" json:"id"`
	Timestamp time.Time     `bigquery:"timestamp" json:"timestamp"`
	SiteID    types.SiteID  `bigquery:"site_id" json:"site_id"`
	SiteName  string        `bigquery:"site_name" json:"site_name"`
	Owner     string        `bigquery:"owner" json:"owner"`
	Success   bool          `bigquery:"success" json:"success"`
	Error     string        `bigquery:"error" json:"error"`
	Steps     []StepRecord  `bigquery:"steps" json:"steps"`
}

// ProvisionEventRecord is the row written to BigQuery. The Storage Write API
// takes TIMESTAMP columns as microseconds since epoch.
type ProvisionEventRecord struct {
	ProvisionEvent
	Timestamp int64 `bigquery:"timestamp" json:"timestamp"`
}

func (x *ProvisionEvent) Record() *ProvisionEventRecord {
	return &ProvisionEventRecord{
		ProvisionEvent: *x,
		Timestamp:      x.Timestamp.UnixMicro(),
	}
}

type StepRecord struct {
	Step   string `bigquery:"step" json:"step"`
	Status string `bigquery:"status" json:"status"`
	Error  string `bigquery:"error" json:"error"`
}

func NewStepRecords(results []StepResult) []StepRecord {
	records := make([]StepRecord, 0, len(results))
	for _, r := range results {
		rec := StepRecord{
			Step:   string(r.Step),
			Status: string(r.Status),
		}
		if r.Err != nil {
			rec.Error = r.Err.Error()
		}
		records = append(records, rec)
	}
	return records
}
