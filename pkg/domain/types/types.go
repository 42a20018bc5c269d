package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	GitHubToken         string
	CloudflareAPIToken  string
	CloudflareAccountID string
	RepoOwner           string
	SiteID              string
	RequestID           string
	EventID             string
	StepStatus          string

	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string
)

const (
	StepSucceeded StepStatus = "succeeded"
	StepFailed    StepStatus = "failed"
	StepSkipped   StepStatus = "skipped"
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func NewEventID() EventID {
	return EventID(uuid.NewString())
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x CloudflareAPIToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x CloudflareAPIToken) String() string {
	return "***********"
}

func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }
