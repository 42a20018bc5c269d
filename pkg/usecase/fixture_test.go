package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/sitecloner/pkg/domain/interfaces"
	"github.com/m-mizutani/sitecloner/pkg/domain/mock"
	"github.com/m-mizutani/sitecloner/pkg/domain/model"
	"github.com/m-mizutani/sitecloner/pkg/infra"
	"github.com/m-mizutani/sitecloner/pkg/repository/memory"
	"github.com/m-mizutani/sitecloner/pkg/usecase"
)

const (
	testOwner     = "Acme"
	testAccountID = "acct-1"
)

func testCredentials() model.Credentials {
	return model.Credentials{
		GitHubToken:         "gh-token",
		RepoOwner:           testOwner,
		CloudflareAPIToken:  "cf-token",
		CloudflareAccountID: testAccountID,
	}
}

func testConfig() usecase.Config {
	cfg := usecase.DefaultConfig()
	cfg.Credentials = testCredentials()
	cfg.SettleDelay = 0
	return cfg
}

type fixture struct {
	gh   *mock.GitHubMock
	edge *mock.EdgeComputeMock
	kv   *memory.KVStore
}

// newFixture returns mocks where every upstream call succeeds.
func newFixture() *fixture {
	fx := &fixture{
		gh:   &mock.GitHubMock{},
		edge: &mock.EdgeComputeMock{},
		kv:   memory.New(),
	}

	fx.gh.GenerateFromTemplateFunc = func(ctx context.Context, input *interfaces.GenerateFromTemplateInput) (*interfaces.GitHubRepository, error) {
		return &interfaces.GitHubRepository{
			FullName: input.Owner + "/" + input.Name,
			HTMLURL:  "https://github.com/" + input.Owner + "/" + input.Name,
		}, nil
	}
	fx.gh.GetFileContentFunc = func(ctx context.Context, input *interfaces.GetFileInput) ([]byte, error) {
		return []byte("name: \"Test\"\nlogo_text: \"T\"\nhero_title_line1: Hello\nhero_title_line2: World\n"), nil
	}
	fx.gh.GetFileSHAFunc = func(ctx context.Context, input *interfaces.GetFileInput) (string, error) {
		return "sha-1", nil
	}
	fx.gh.PutFileFunc = func(ctx context.Context, input *interfaces.PutFileInput) error {
		return nil
	}
	fx.gh.DispatchWorkflowFunc = func(ctx context.Context, input *interfaces.DispatchWorkflowInput) error {
		return nil
	}
	fx.edge.UploadScriptFunc = func(ctx context.Context, input *interfaces.UploadScriptInput) error {
		return nil
	}
	fx.edge.AttachRouteFunc = func(ctx context.Context, input *interfaces.AttachRouteInput) error {
		return nil
	}

	return fx
}

func (x *fixture) clients(options ...infra.Option) *infra.Clients {
	return infra.New(append([]infra.Option{
		infra.WithGitHub(x.gh),
		infra.WithEdgeCompute(x.edge),
		infra.WithKVStore(x.kv),
	}, options...)...)
}

func (x *fixture) useCase(t *testing.T, cfg usecase.Config, options ...infra.Option) *usecase.UseCase {
	t.Helper()
	return usecase.New(x.clients(options...), usecase.WithConfig(cfg))
}

func (x *fixture) upstreamCalls() int {
	return len(x.gh.GenerateFromTemplateCalls()) +
		len(x.gh.GetFileContentCalls()) +
		len(x.gh.GetFileSHACalls()) +
		len(x.gh.PutFileCalls()) +
		len(x.gh.DispatchWorkflowCalls()) +
		len(x.edge.UploadScriptCalls()) +
		len(x.edge.AttachRouteCalls())
}
