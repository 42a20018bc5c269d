package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/sitecloner/pkg/cli/config"
)

func TestSentry(t *testing.T) {
	var cfg config.Sentry
	names := flagNames(cfg.Flags())
	gt.True(t, names["sentry-dsn"])
	gt.True(t, names["sentry-env"])
	gt.True(t, names["sentry-release"])

	t.Run("disabled without DSN", func(t *testing.T) {
		var cfg config.Sentry
		gt.False(t, cfg.Enabled())
		gt.NoError(t, cfg.Configure(context.Background()))
		cfg.Flush()
	})

	t.Run("DSN from flag", func(t *testing.T) {
		var cfg config.Sentry
		runWithFlags(t, cfg.Flags(), "--sentry-dsn", "https://key@example.com/1")
		gt.True(t, cfg.Enabled())
	})
}
