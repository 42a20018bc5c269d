package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/sitecloner/pkg/cli/config"
	"github.com/m-mizutani/sitecloner/pkg/controller/server"
	"github.com/m-mizutani/sitecloner/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		pc         provisionConfig
		serverConf config.Server
		sentry     config.Sentry
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serve the provisioning HTTP API",
		Flags: slice.Flatten(
			serverConf.Flags(),
			pc.github.Flags(),
			pc.cloudflare.Flags(),
			pc.provision.Flags(),
			pc.registry.Flags(),
			pc.bigQuery.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Server", serverConf),
				slog.Any("GitHub", pc.github),
				slog.Any("Cloudflare", pc.cloudflare),
				slog.Any("Provision", pc.provision),
				slog.Any("Registry", pc.registry),
				slog.Any("BigQuery", pc.bigQuery),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}
			defer sentry.Flush()

			uc, cleanup, err := pc.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s := server.New(uc, serverConf.Options()...)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    serverConf.Addr(),
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				// A clone includes the settle delay and several upstream calls
				WriteTimeout: 2 * time.Minute,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", serverConf.Addr())
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), serverConf.ShutdownTimeout())
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
