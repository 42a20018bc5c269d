package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sitecloner/pkg/cli/config"
	"github.com/m-mizutani/sitecloner/pkg/domain/model"
	"github.com/m-mizutani/sitecloner/pkg/infra"
	"github.com/m-mizutani/sitecloner/pkg/usecase"
	"github.com/m-mizutani/sitecloner/pkg/utils/logging"
	"github.com/m-mizutani/sitecloner/pkg/utils/safe"
)

// provisionConfig groups the settings shared by every command that builds a
// use case.
type provisionConfig struct {
	github     config.GitHub
	cloudflare config.Cloudflare
	registry   config.Registry
	bigQuery   config.BigQuery
	provision  config.Provision
}

func (x *provisionConfig) credentials() model.Credentials {
	return model.Credentials{
		GitHubToken:         x.github.Token(),
		RepoOwner:           x.github.Owner(),
		CloudflareAPIToken:  x.cloudflare.Token(),
		CloudflareAccountID: x.cloudflare.AccountID(),
	}
}

// newUseCase wires the clients. The returned cleanup closes every opened
// connection.
func (x *provisionConfig) newUseCase(ctx context.Context) (*usecase.UseCase, func(), error) {
	var closers []io.Closer
	cleanup := func() {
		for _, c := range closers {
			safe.Close(c)
		}
	}

	ghClient, err := x.github.New()
	if err != nil {
		return nil, nil, err
	}

	kvStore, kvCloser, err := x.registry.NewKVStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, kvCloser)

	infraOptions := []infra.Option{
		infra.WithGitHub(ghClient),
		infra.WithEdgeCompute(x.cloudflare.New()),
		infra.WithKVStore(kvStore),
	}

	if bqClient, err := x.bigQuery.NewClient(ctx); err != nil {
		cleanup()
		return nil, nil, err
	} else if bqClient != nil {
		closers = append(closers, bqClient)
		infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
	}

	cfg := x.provision.UseCaseConfig(x.credentials())
	if missing := cfg.Credentials.Missing(); missing != "" {
		logging.From(ctx).Warn("credential is not set, clone requests will fail", slog.String("credential", missing))
	}

	uc := usecase.New(infra.New(infraOptions...), usecase.WithConfig(cfg))
	return uc, cleanup, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to write JSON output")
	}
	return nil
}
