package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/sitecloner/pkg/controller/server"
	"github.com/urfave/cli/v3"
)

type Server struct {
	addr            string
	allowedOrigins  []string
	shutdownTimeout time.Duration
}

func (x *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Category:    "Server",
			Value:       "127.0.0.1:8000",
			Destination: &x.addr,
			Sources:     cli.EnvVars("SITECLONER_ADDR"),
		},
		&cli.StringSliceFlag{
			Name:        "allowed-origin",
			Usage:       "CORS allowed origin (repeatable)",
			Category:    "Server",
			Value:       server.DefaultAllowedOrigins,
			Destination: &x.allowedOrigins,
			Sources:     cli.EnvVars("SITECLONER_ALLOWED_ORIGINS"),
		},
		&cli.DurationFlag{
			Name:        "shutdown-timeout",
			Usage:       "Grace period for in-flight requests on shutdown",
			Category:    "Server",
			Value:       30 * time.Second,
			Destination: &x.shutdownTimeout,
			Sources:     cli.EnvVars("SITECLONER_SHUTDOWN_TIMEOUT"),
		},
	}
}

func (x *Server) Addr() string                   { return x.addr }
func (x *Server) ShutdownTimeout() time.Duration { return x.shutdownTimeout }

func (x *Server) Options() []server.Option {
	if len(x.allowedOrigins) == 0 {
		return nil
	}
	return []server.Option{server.WithAllowedOrigins(x.allowedOrigins...)}
}

func (x Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", x.addr),
		slog.Any("allowedOrigins", x.allowedOrigins),
		slog.Duration("shutdownTimeout", x.shutdownTimeout),
	)
}
