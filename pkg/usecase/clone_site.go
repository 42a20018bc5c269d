package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sitecloner/pkg/domain/model"
	"github.com/m-mizutani/sitecloner/pkg/domain/types"
	"github.com/m-mizutani/sitecloner/pkg/utils/logging"
	"github.com/m-mizutani/sitecloner/pkg/utils/metrics"
)

// CloneSite provisions a new site: duplicate the template, optionally patch
// its config, deploy the proxy worker with its CI workflow and register the
// site. Side effects of completed steps are not rolled back on failure.
func (x *UseCase) CloneSite(ctx context.Context, input *model.CloneSiteInput) (*model.CloneSiteOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := x.config.Credentials.Validate(); err != nil {
		return nil, err
	}

	logger := logging.From(ctx).With(
		slog.String("site_name", input.SiteName),
		slog.String("repo_name", input.RepoName),
	)
	ctx = logging.With(ctx, logger)
	logger.Info("Start cloning site")

	started := logging.CtxTime(ctx)
	runner := newStepRunner(x.config.Policy)

	output, err := x.provision(ctx, input, runner)

	if x.clients.BigQuery() != nil {
		event := x.newProvisionEvent(input, runner, started, err)
		if exportErr := runner.run(ctx, model.StepExportEvent, func(ctx context.Context) error {
			return x.exportEvent(ctx, event)
		}); exportErr != nil && err == nil {
			err = exportErr
		}
	} else {
		runner.skip(ctx, model.StepExportEvent)
	}

	metrics.CloneDuration.Observe(logging.CtxTime(ctx).Sub(started).Seconds())
	if err != nil {
		metrics.CloneTotal.WithLabelValues(metrics.ResultFailure).Inc()
		return nil, goerr.Wrap(err, "clone failed", goerr.V("repo_name", input.RepoName))
	}
	metrics.CloneTotal.WithLabelValues(metrics.ResultSuccess).Inc()

	if failed := runner.failed(); len(failed) > 0 {
		steps := make([]string, len(failed))
		for i, r := range failed {
			steps[i] = string(r.Step)
		}
		logger.Warn("Site cloned with failed best-effort steps", slog.Any("steps", steps))
	} else {
		logger.Info("Site cloned", slog.String("url", output.PrimaryURL))
	}

	output.Steps = runner.results
	return output, nil
}

func (x *UseCase) provision(ctx context.Context, input *model.CloneSiteInput, runner *stepRunner) (*model.CloneSiteOutput, error) {
	var githubURL string
	if err := runner.run(ctx, model.StepDuplicateTemplate, func(ctx context.Context) error {
		var err error
		githubURL, err = x.duplicateTemplate(ctx, input)
		return err
	}); err != nil {
		return nil, err
	}

	if err := sleepContext(ctx, x.config.SettleDelay); err != nil {
		return nil, goerr.Wrap(err, "interrupted while waiting for repository initialization")
	}

	if input.HasHero() {
		if err := runner.run(ctx, model.StepPatchConfig, func(ctx context.Context) error {
			return x.patchConfig(ctx, input)
		}); err != nil {
			return nil, err
		}
	} else {
		runner.skip(ctx, model.StepPatchConfig)
	}

	deployment, err := x.deployEdgeFunction(ctx, input, runner)
	if err != nil {
		return nil, err
	}

	site := &model.Site{
		ID:             types.SiteID(input.RepoName),
		Name:           input.SiteName,
		Repo:           string(x.config.Credentials.RepoOwner) + "/" + input.RepoName,
		Domain:         deployment.Hostname(),
		AdminURL:       deployment.AdminURL(),
		CreatedAt:      logging.CtxTime(ctx).UTC().Format(time.RFC3339),
		Status:         model.SiteStatusActive,
		GitHubURL:      githubURL,
		DeploymentType: deployment.Type,
		DeploymentURL:  deployment.URL,
	}
	if err := runner.run(ctx, model.StepRegisterSite, func(ctx context.Context) error {
		return x.RegisterSite(ctx, site)
	}); err != nil {
		return nil, err
	}

	return &model.CloneSiteOutput{
		SiteID:         site.ID,
		PrimaryURL:     deployment.URL,
		AdminURL:       deployment.AdminURL(),
		GitHubURL:      githubURL,
		DeploymentType: deployment.Type,
		DeploymentNote: deployment.Note,
	}, nil
}

func (x *UseCase) newProvisionEvent(input *model.CloneSiteInput, runner *stepRunner, started time.Time, err error) *model.ProvisionEvent {
	event := &model.ProvisionEvent{
		ID:        types.NewEventID(),
		Timestamp: started.UTC(),
		SiteID:    types.SiteID(input.RepoName),
		SiteName:  input.SiteName,
		Owner:     string(x.config.Credentials.RepoOwner),
		Success:   err == nil,
		Steps:     model.NewStepRecords(runner.results),
	}
	if err != nil {
		event.Error = err.Error()
	}
	return event
}
