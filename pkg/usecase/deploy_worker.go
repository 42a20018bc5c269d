package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sitecloner/pkg/domain/interfaces"
	"github.com/m-mizutani/sitecloner/pkg/domain/model"
)

//go:embed templates/proxy_worker.js
var proxyWorkerSource string

var proxyWorkerTemplate = template.Must(template.New("proxy_worker").Parse(proxyWorkerSource))

const poweredBy = "Cloudflare Workers + GitHub Actions"

type proxyWorkerParams struct {
	Repo      string
	Origin    string
	PoweredBy string
}

// pagesOrigin is the GitHub Pages URL the proxy reads from, without trailing
// slash.
func pagesOrigin(owner, repo string) string {
	return fmt.Sprintf("https://%s.github.io/%s", strings.ToLower(owner), repo)
}

// workersHost is the workers.dev hostname the site is served on.
func workersHost(owner, repo string) string {
	return fmt.Sprintf("%s.%s.workers.dev", repo, strings.ToLower(owner))
}

func renderProxyWorker(owner, repo string) (string, error) {
	var buf bytes.Buffer
	if err := proxyWorkerTemplate.Execute(&buf, proxyWorkerParams{
		Repo:      repo,
		Origin:    pagesOrigin(owner, repo),
		PoweredBy: poweredBy,
	}); err != nil {
		return "", goerr.Wrap(err, "failed to render proxy worker", goerr.V("repo", repo))
	}
	return buf.String(), nil
}

// deployEdgeFunction uploads the proxy worker, attaches its route, installs
// the CI workflow and triggers its first run. Whether a failed sub-step stops
// the deployment is decided by the runner's policy.
func (x *UseCase) deployEdgeFunction(ctx context.Context, input *model.CloneSiteInput, runner *stepRunner) (*model.Deployment, error) {
	owner := string(x.config.Credentials.RepoOwner)
	accountID := string(x.config.Credentials.CloudflareAccountID)
	repo := input.RepoName

	if err := runner.run(ctx, model.StepUploadScript, func(ctx context.Context) error {
		script, err := renderProxyWorker(owner, repo)
		if err != nil {
			return err
		}
		return x.clients.EdgeCompute().UploadScript(ctx, &interfaces.UploadScriptInput{
			AccountID:  accountID,
			ScriptName: repo,
			Script:     script,
		})
	}); err != nil {
		return nil, err
	}

	if err := runner.run(ctx, model.StepAttachRoute, func(ctx context.Context) error {
		return x.clients.EdgeCompute().AttachRoute(ctx, &interfaces.AttachRouteInput{
			AccountID:  accountID,
			ScriptName: repo,
			Pattern:    workersHost(owner, repo) + "/*",
		})
	}); err != nil {
		return nil, err
	}

	if err := runner.run(ctx, model.StepInstallWorkflow, func(ctx context.Context) error {
		return x.installWorkflow(ctx, repo)
	}); err != nil {
		return nil, err
	}

	if err := runner.run(ctx, model.StepTriggerWorkflow, func(ctx context.Context) error {
		return x.clients.GitHub().DispatchWorkflow(ctx, &interfaces.DispatchWorkflowInput{
			Owner:    owner,
			Repo:     repo,
			Workflow: x.config.WorkflowFile,
			Ref:      x.config.Branch,
		})
	}); err != nil {
		return nil, err
	}

	return &model.Deployment{
		ID:   repo,
		Name: repo,
		URL:  "https://" + workersHost(owner, repo),
		Type: model.DeploymentTypeWorkerAuto,
	}, nil
}
