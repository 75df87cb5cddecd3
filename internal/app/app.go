// Package app assembles the configuration store and manager from the
// application configuration.
package app

import (
	"context"
	"os"

	"github.com/iwvelando/earning-formula/internal/config"
	"github.com/iwvelando/earning-formula/internal/kv"
	"github.com/iwvelando/earning-formula/internal/manager"
	"github.com/iwvelando/earning-formula/internal/store"
	"go.uber.org/zap"
)

// App holds the wired components. Call the cleanup returned by Initialize
// when done.
type App struct {
	Config  *config.Configuration
	Logger  *zap.Logger
	Store   *store.Store
	Manager *manager.Manager
}

func newApp(cfg *config.Configuration, logger *zap.Logger, st *store.Store, m *manager.Manager) *App {
	return &App{
		Config:  cfg,
		Logger:  logger,
		Store:   st,
		Manager: m,
	}
}

// provideBackend opens the configured backend and closes it on cleanup.
func provideBackend(ctx context.Context, logger *zap.Logger, cfg *config.Configuration) (kv.Backend, func(), error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	backend, err := kv.Open(ctx, logger, cfg.Storage)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := backend.Close(); err != nil {
			logger.Warn("failed to close storage backend",
				zap.String("op", "app.provideBackend"),
				zap.Error(err),
			)
		}
	}
	return backend, cleanup, nil
}

func provideStoreOptions(cfg *config.Configuration) store.Options {
	return store.Options{
		DefaultCurrency: cfg.Defaults.Currency,
		Getenv:          os.Getenv,
	}
}

func provideManagerOptions() manager.Options {
	return manager.Options{}
}
