package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sitecloner/pkg/domain/model"
	"github.com/m-mizutani/sitecloner/pkg/domain/types"
	"github.com/m-mizutani/sitecloner/pkg/utils/logging"
	"github.com/m-mizutani/sitecloner/pkg/utils/metrics"
)

// ListSites returns the registry document. A missing, unreadable or corrupted
// document is reported as an empty registry.
func (x *UseCase) ListSites(ctx context.Context) (model.SiteRegistry, error) {
	store := x.clients.KVStore()
	if store == nil {
		return nil, goerr.Wrap(types.ErrRegistry, "registry is not configured")
	}

	sites := model.SiteRegistry{}
	raw, err := store.Get(ctx, x.config.RegistryKey)
	if err != nil {
		logging.From(ctx).Warn("Failed to read registry, treating it as empty",
			slog.String("key", x.config.RegistryKey),
			slog.Any("error", err),
		)
		return sites, nil
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &sites); err != nil {
			logging.From(ctx).Warn("Registry document is not valid JSON, treating it as empty",
				slog.String("key", x.config.RegistryKey),
				slog.Any("error", err),
			)
			return model.SiteRegistry{}, nil
		}
	}

	metrics.RegistrySites.Set(float64(len(sites)))
	return sites, nil
}

// RegisterSite sets site in the registry document. The read and the write are
// not atomic; a concurrent registration can overwrite this one.
func (x *UseCase) RegisterSite(ctx context.Context, site *model.Site) error {
	sites, err := x.ListSites(ctx)
	if err != nil {
		return err
	}
	sites[site.ID] = *site

	raw, err := json.Marshal(sites)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal registry")
	}

	if err := x.clients.KVStore().Put(ctx, x.config.RegistryKey, raw); err != nil {
		return goerr.Wrap(fmt.Errorf("%w: %w", types.ErrRegistry, err), "failed to write registry",
			goerr.V("key", x.config.RegistryKey),
			goerr.V("site_id", site.ID),
		)
	}

	logging.From(ctx).Info("Site registered",
		slog.String("site_id", string(site.ID)),
		slog.Int("total", len(sites)),
	)
	metrics.RegistrySites.Set(float64(len(sites)))
	return nil
}
