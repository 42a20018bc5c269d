package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/sitecloner/pkg/domain/interfaces"
	"github.com/m-mizutani/sitecloner/pkg/domain/mock"
	"github.com/m-mizutani/sitecloner/pkg/domain/model"
	"github.com/m-mizutani/sitecloner/pkg/domain/types"
	"github.com/m-mizutani/sitecloner/pkg/infra"
	"github.com/m-mizutani/sitecloner/pkg/utils/logging"
)

func stepStatus(out *model.CloneSiteOutput, step model.Step) types.StepStatus {
	for _, r := range out.Steps {
		if r.Step == step {
			return r.Status
		}
	}
	return ""
}

func TestCloneSite(t *testing.T) {
	ctx := logging.CtxWithTime(context.Background(), func() time.Time {
		return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	})

	fx := newFixture()
	uc := fx.useCase(t, testConfig())

	out, err := uc.CloneSite(ctx, &model.CloneSiteInput{
		SiteName: "My Blog",
		RepoName: "my-blog",
	})
	gt.NoError(t, err)

	gt.V(t, out.SiteID).Equal(types.SiteID("my-blog"))
	gt.V(t, out.PrimaryURL).Equal("https://my-blog.acme.workers.dev")
	gt.True(t, strings.HasSuffix(out.PrimaryURL, ".workers.dev"))
	gt.V(t, out.AdminURL).Equal("https://my-blog.acme.workers.dev/admin/")
	gt.V(t, out.GitHubURL).Equal("https://github.com/Acme/my-blog")
	gt.V(t, out.DeploymentType).Equal("worker-auto")
	gt.V(t, out.DeploymentNote).Equal(nil)

	t.Run("template is generated from the owner's template repo", func(t *testing.T) {
		calls := fx.gh.GenerateFromTemplateCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Input.TemplateOwner).Equal("Acme")
		gt.V(t, calls[0].Input.TemplateRepo).Equal("recettes-blog_test")
		gt.V(t, calls[0].Input.Name).Equal("my-blog")
		gt.V(t, calls[0].Input.Description).Equal("Site My Blog - generated automatically")
		gt.False(t, calls[0].Input.Private)
	})

	t.Run("config is not patched without hero lines", func(t *testing.T) {
		gt.A(t, fx.gh.GetFileContentCalls()).Length(0)
		gt.V(t, stepStatus(out, model.StepPatchConfig)).Equal(types.StepSkipped)
	})

	t.Run("proxy worker is uploaded and routed", func(t *testing.T) {
		uploads := fx.edge.UploadScriptCalls()
		gt.A(t, uploads).Length(1)
		gt.V(t, uploads[0].Input.AccountID).Equal(testAccountID)
		gt.V(t, uploads[0].Input.ScriptName).Equal("my-blog")
		gt.S(t, uploads[0].Input.Script).Contains("https://acme.github.io/my-blog")

		routes := fx.edge.AttachRouteCalls()
		gt.A(t, routes).Length(1)
		gt.V(t, routes[0].Input.Pattern).Equal("my-blog.acme.workers.dev/*")
		gt.V(t, routes[0].Input.ScriptName).Equal("my-blog")
	})

	t.Run("workflow is installed and dispatched", func(t *testing.T) {
		puts := fx.gh.PutFileCalls()
		gt.A(t, puts).Length(1)
		gt.V(t, puts[0].Input.Path).Equal(".github/workflows/deploy.yml")
		gt.V(t, puts[0].Input.Repo).Equal("my-blog")
		gt.V(t, puts[0].Input.SHA).Equal("")

		dispatches := fx.gh.DispatchWorkflowCalls()
		gt.A(t, dispatches).Length(1)
		gt.V(t, dispatches[0].Input.Workflow).Equal("deploy.yml")
		gt.V(t, dispatches[0].Input.Ref).Equal("main")
	})

	t.Run("site is registered", func(t *testing.T) {
		sites := gt.R1(uc.ListSites(ctx)).NoError(t)
		site, ok := sites["my-blog"]
		gt.True(t, ok)
		gt.V(t, site).Equal(model.Site{
			ID:             "my-blog",
			Name:           "My Blog",
			Repo:           "Acme/my-blog",
			Domain:         "my-blog.acme.workers.dev",
			AdminURL:       "https://my-blog.acme.workers.dev/admin/",
			CreatedAt:      "2024-05-01T12:00:00Z",
			Status:         "active",
			GitHubURL:      "https://github.com/Acme/my-blog",
			DeploymentType: "worker-auto",
			DeploymentURL:  "https://my-blog.acme.workers.dev",
		})
	})

	t.Run("every step outcome is recorded", func(t *testing.T) {
		gt.V(t, stepStatus(out, model.StepDuplicateTemplate)).Equal(types.StepSucceeded)
		gt.V(t, stepStatus(out, model.StepUploadScript)).Equal(types.StepSucceeded)
		gt.V(t, stepStatus(out, model.StepAttachRoute)).Equal(types.StepSucceeded)
		gt.V(t, stepStatus(out, model.StepInstallWorkflow)).Equal(types.StepSucceeded)
		gt.V(t, stepStatus(out, model.StepTriggerWorkflow)).Equal(types.StepSucceeded)
		gt.V(t, stepStatus(out, model.StepRegisterSite)).Equal(types.StepSucceeded)
		gt.V(t, stepStatus(out, model.StepExportEvent)).Equal(types.StepSkipped)
	})
}

func TestCloneSiteValidation(t *testing.T) {
	testCases := map[string]struct {
		input *model.CloneSiteInput
		creds model.Credentials
	}{
		"repo name with upper case": {
			input: &model.CloneSiteInput{SiteName: "My Blog", RepoName: "My-Blog"},
			creds: testCredentials(),
		},
		"repo name with underscore": {
			input: &model.CloneSiteInput{SiteName: "My Blog", RepoName: "my_blog"},
			creds: testCredentials(),
		},
		"repo name with slash": {
			input: &model.CloneSiteInput{SiteName: "My Blog", RepoName: "acme/blog"},
			creds: testCredentials(),
		},
		"missing site name is checked before credentials": {
			input: &model.CloneSiteInput{RepoName: "my-blog"},
			creds: model.Credentials{},
		},
		"missing repo name is checked before credentials": {
			input: &model.CloneSiteInput{SiteName: "My Blog"},
			creds: model.Credentials{},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			fx := newFixture()
			cfg := testConfig()
			cfg.Credentials = tc.creds
			uc := fx.useCase(t, cfg)

			_, err := uc.CloneSite(context.Background(), tc.input)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrValidationFailed))
			gt.V(t, fx.upstreamCalls()).Equal(0)
		})
	}
}

func TestCloneSiteMissingCredential(t *testing.T) {
	testCases := []struct {
		name  string
		clear func(*model.Credentials)
	}{
		{name: "GITHUB_TOKEN", clear: func(c *model.Credentials) { c.GitHubToken = "" }},
		{name: "REPO_OWNER", clear: func(c *model.Credentials) { c.RepoOwner = "" }},
		{name: "CLOUDFLARE_API_TOKEN", clear: func(c *model.Credentials) { c.CloudflareAPIToken = "" }},
		{name: "CLOUDFLARE_ACCOUNT_ID", clear: func(c *model.Credentials) { c.CloudflareAccountID = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := newFixture()
			cfg := testConfig()
			tc.clear(&cfg.Credentials)
			uc := fx.useCase(t, cfg)

			_, err := uc.CloneSite(context.Background(), &model.CloneSiteInput{
				SiteName: "My Blog",
				RepoName: "my-blog",
			})
			gt.True(t, errors.Is(err, types.ErrMissingCredential))
			gt.S(t, err.Error()).Contains("missing variable: " + tc.name)
			gt.V(t, fx.upstreamCalls()).Equal(0)
		})
	}
}

func TestCloneSiteTemplateFailure(t *testing.T) {
	fx := newFixture()
	fx.gh.GenerateFromTemplateFunc = func(ctx context.Context, input *interfaces.GenerateFromTemplateInput) (*interfaces.GitHubRepository, error) {
		return nil, goerr.Wrap(&types.UpstreamError{
			Service:    "github",
			StatusCode: 422,
			Message:    "name already exists",
		}, "failed to generate repository from template")
	}
	uc := fx.useCase(t, testConfig())

	_, err := uc.CloneSite(context.Background(), &model.CloneSiteInput{
		SiteName: "My Blog",
		RepoName: "my-blog",
	})
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("name already exists")
	gt.True(t, errors.Is(err, types.ErrUpstreamAPI))

	var stepErr *model.StepError
	gt.True(t, errors.As(err, &stepErr))
	gt.V(t, stepErr.Step).Equal(model.StepDuplicateTemplate)

	gt.A(t, fx.edge.UploadScriptCalls()).Length(0)
	sites := gt.R1(uc.ListSites(context.Background())).NoError(t)
	gt.V(t, len(sites)).Equal(0)
}

func TestCloneSiteBestEffortSteps(t *testing.T) {
	t.Run("route attachment failure still succeeds", func(t *testing.T) {
		fx := newFixture()
		fx.edge.AttachRouteFunc = func(ctx context.Context, input *interfaces.AttachRouteInput) error {
			return errors.New("route conflict")
		}
		uc := fx.useCase(t, testConfig())

		out, err := uc.CloneSite(context.Background(), &model.CloneSiteInput{SiteName: "My Blog", RepoName: "my-blog"})
		gt.NoError(t, err)
		gt.V(t, stepStatus(out, model.StepAttachRoute)).Equal(types.StepFailed)
		gt.A(t, fx.gh.PutFileCalls()).Length(1)

		sites := gt.R1(uc.ListSites(context.Background())).NoError(t)
		gt.V(t, len(sites)).Equal(1)
	})

	t.Run("workflow dispatch failure still succeeds", func(t *testing.T) {
		fx := newFixture()
		fx.gh.DispatchWorkflowFunc = func(ctx context.Context, input *interfaces.DispatchWorkflowInput) error {
			return errors.New("workflow not found")
		}
		uc := fx.useCase(t, testConfig())

		out, err := uc.CloneSite(context.Background(), &model.CloneSiteInput{SiteName: "My Blog", RepoName: "my-blog"})
		gt.NoError(t, err)
		gt.V(t, stepStatus(out, model.StepTriggerWorkflow)).Equal(types.StepFailed)
	})

	t.Run("config read failure is a no-op", func(t *testing.T) {
		fx := newFixture()
		fx.gh.GetFileContentFunc = func(ctx context.Context, input *interfaces.GetFileInput) ([]byte, error) {
			return nil, errors.New("not found")
		}
		uc := fx.useCase(t, testConfig())

		out, err := uc.CloneSite(context.Background(), &model.CloneSiteInput{
			SiteName:  "My Blog",
			RepoName:  "my-blog",
			HeroLine1: "Welcome",
		})
		gt.NoError(t, err)
		gt.V(t, stepStatus(out, model.StepPatchConfig)).Equal(types.StepFailed)

		// Only the workflow is written
		puts := fx.gh.PutFileCalls()
		gt.A(t, puts).Length(1)
		gt.V(t, puts[0].Input.Path).Equal(".github/workflows/deploy.yml")
	})

	t.Run("config write failure is swallowed", func(t *testing.T) {
		fx := newFixture()
		fx.gh.PutFileFunc = func(ctx context.Context, input *interfaces.PutFileInput) error {
			if input.Path == "data/config.yaml" {
				return errors.New("sha mismatch")
			}
			return nil
		}
		uc := fx.useCase(t, testConfig())

		_, err := uc.CloneSite(context.Background(), &model.CloneSiteInput{
			SiteName:  "My Blog",
			RepoName:  "my-blog",
			HeroLine2: "Recipes",
		})
		gt.NoError(t, err)
	})
}

func TestCloneSiteFatalSteps(t *testing.T) {
	t.Run("upload failure aborts deployment", func(t *testing.T) {
		fx := newFixture()
		fx.edge.UploadScriptFunc = func(ctx context.Context, input *interfaces.UploadScriptInput) error {
			return goerr.Wrap(&types.UpstreamError{Service: "cloudflare", StatusCode: 400, Message: "Uncaught SyntaxError"}, "upload failed")
		}
		uc := fx.useCase(t, testConfig())

		_, err := uc.CloneSite(context.Background(), &model.CloneSiteInput{SiteName: "My Blog", RepoName: "my-blog"})
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("Uncaught SyntaxError")

		var stepErr *model.StepError
		gt.True(t, errors.As(err, &stepErr))
		gt.V(t, stepErr.Step).Equal(model.StepUploadScript)

		gt.A(t, fx.edge.AttachRouteCalls()).Length(0)
		gt.A(t, fx.gh.PutFileCalls()).Length(0)
		gt.V(t, len(gt.R1(uc.ListSites(context.Background())).NoError(t))).Equal(0)
	})

	t.Run("workflow install failure aborts dispatch and registration", func(t *testing.T) {
		fx := newFixture()
		fx.gh.PutFileFunc = func(ctx context.Context, input *interfaces.PutFileInput) error {
			return errors.New("resource not accessible")
		}
		uc := fx.useCase(t, testConfig())

		_, err := uc.CloneSite(context.Background(), &model.CloneSiteInput{SiteName: "My Blog", RepoName: "my-blog"})
		gt.Error(t, err)

		var stepErr *model.StepError
		gt.True(t, errors.As(err, &stepErr))
		gt.V(t, stepErr.Step).Equal(model.StepInstallWorkflow)

		gt.A(t, fx.gh.DispatchWorkflowCalls()).Length(0)
		gt.V(t, len(gt.R1(uc.ListSites(context.Background())).NoError(t))).Equal(0)
	})

	t.Run("registry write failure fails the clone", func(t *testing.T) {
		fx := newFixture()
		kv := &mock.KVStoreMock{
			GetFunc: func(ctx context.Context, key string) ([]byte, error) {
				return nil, nil
			},
			PutFunc: func(ctx context.Context, key string, value []byte) error {
				return errors.New("quota exceeded")
			},
		}
		uc := fx.useCase(t, testConfig(), infra.WithKVStore(kv))

		_, err := uc.CloneSite(context.Background(), &model.CloneSiteInput{SiteName: "My Blog", RepoName: "my-blog"})
		gt.True(t, errors.Is(err, types.ErrRegistry))
		gt.S(t, err.Error()).Contains("quota exceeded")
	})

	t.Run("policy can make route attachment fatal", func(t *testing.T) {
		fx := newFixture()
		fx.edge.AttachRouteFunc = func(ctx context.Context, input *interfaces.AttachRouteInput) error {
			return errors.New("route conflict")
		}
		cfg := testConfig()
		cfg.Policy = model.StepPolicy{model.StepAttachRoute: model.PolicyFatal}
		uc := fx.useCase(t, cfg)

		_, err := uc.CloneSite(context.Background(), &model.CloneSiteInput{SiteName: "My Blog", RepoName: "my-blog"})
		gt.Error(t, err)
		gt.A(t, fx.gh.PutFileCalls()).Length(0)
	})
}

func TestCloneSiteSettleDelay(t *testing.T) {
	fx := newFixture()
	cfg := testConfig()
	cfg.SettleDelay = time.Hour
	uc := fx.useCase(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	fx.gh.GenerateFromTemplateFunc = func(ctx context.Context, input *interfaces.GenerateFromTemplateInput) (*interfaces.GitHubRepository, error) {
		cancel()
		return &interfaces.GitHubRepository{HTMLURL: "https://github.com/Acme/my-blog"}, nil
	}

	_, err := uc.CloneSite(ctx, &model.CloneSiteInput{SiteName: "My Blog", RepoName: "my-blog"})
	gt.True(t, errors.Is(err, context.Canceled))
	gt.A(t, fx.edge.UploadScriptCalls()).Length(0)
}

func TestCloneSiteExportEvent(t *testing.T) {
	newBQ := func(inserted *[]any) *mock.BigQueryMock {
		return &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
				return nil, nil
			},
			CreateTableFunc: func(ctx context.Context, md *bigquery.TableMetadata) error {
				return nil
			},
			InsertFunc: func(ctx context.Context, schema bigquery.Schema, data any) error {
				*inserted = append(*inserted, data)
				return nil
			},
		}
	}

	t.Run("successful clone is exported", func(t *testing.T) {
		var inserted []any
		fx := newFixture()
		bq := newBQ(&inserted)
		uc := fx.useCase(t, testConfig(), infra.WithBigQuery(bq))

		out, err := uc.CloneSite(context.Background(), &model.CloneSiteInput{SiteName: "My Blog", RepoName: "my-blog"})
		gt.NoError(t, err)
		gt.V(t, stepStatus(out, model.StepExportEvent)).Equal(types.StepSucceeded)
		gt.A(t, bq.CreateTableCalls()).Length(1)

		gt.A(t, inserted).Length(1)
		record, ok := inserted[0].(*model.ProvisionEventRecord)
		gt.True(t, ok)
		gt.True(t, record.Success)
		gt.V(t, record.SiteID).Equal(types.SiteID("my-blog"))
		gt.V(t, record.Owner).Equal("Acme")
		gt.V(t, record.Timestamp).Equal(record.ProvisionEvent.Timestamp.UnixMicro())
	})

	t.Run("failed clone is exported with error", func(t *testing.T) {
		var inserted []any
		fx := newFixture()
		fx.edge.UploadScriptFunc = func(ctx context.Context, input *interfaces.UploadScriptInput) error {
			return errors.New("upload rejected")
		}
		uc := fx.useCase(t, testConfig(), infra.WithBigQuery(newBQ(&inserted)))

		_, err := uc.CloneSite(context.Background(), &model.CloneSiteInput{SiteName: "My Blog", RepoName: "my-blog"})
		gt.Error(t, err)

		gt.A(t, inserted).Length(1)
		record := inserted[0].(*model.ProvisionEventRecord)
		gt.False(t, record.Success)
		gt.S(t, record.Error).Contains("upload rejected")
	})

	t.Run("export failure does not fail the clone", func(t *testing.T) {
		fx := newFixture()
		bq := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
				return nil, errors.New("permission denied")
			},
		}
		uc := fx.useCase(t, testConfig(), infra.WithBigQuery(bq))

		out, err := uc.CloneSite(context.Background(), &model.CloneSiteInput{SiteName: "My Blog", RepoName: "my-blog"})
		gt.NoError(t, err)
		gt.V(t, stepStatus(out, model.StepExportEvent)).Equal(types.StepFailed)
	})
}
