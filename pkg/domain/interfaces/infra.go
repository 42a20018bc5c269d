package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub EdgeCompute BigQuery

import (
	"context"

	"cloud.google.com/go/bigquery"
)

type GitHub interface {
	GenerateFromTemplate(ctx context.Context, input *GenerateFromTemplateInput) (*GitHubRepository, error)
	GetFileContent(ctx context.Context, input *GetFileInput) ([]byte, error)
	GetFileSHA(ctx context.Context, input *GetFileInput) (string, error)
	PutFile(ctx context.Context, input *PutFileInput) error
	DispatchWorkflow(ctx context.Context, input *DispatchWorkflowInput) error
}

type GenerateFromTemplateInput struct {
	TemplateOwner string
	TemplateRepo  string
	Owner         string
	Name          string
	Description   string
	Private       bool
}

type GitHubRepository struct {
	FullName string
	HTMLURL  string
}

type GetFileInput struct {
	Owner string
	Repo  string
	Path  string
	Ref   string
}

type PutFileInput struct {
	Owner   string
	Repo    string
	Path    string
	Message string
	Content []byte
	Branch  string
	// SHA of the blob being replaced. Empty creates a new file.
	SHA string
}

type DispatchWorkflowInput struct {
	Owner    string
	Repo     string
	Workflow string
	Ref      string
}

type EdgeCompute interface {
	UploadScript(ctx context.Context, input *UploadScriptInput) error
	AttachRoute(ctx context.Context, input *AttachRouteInput) error
}

type UploadScriptInput struct {
	AccountID  string
	ScriptName string
	Script     string
}

type AttachRouteInput struct {
	AccountID  string
	ScriptName string
	Pattern    string
}

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}
