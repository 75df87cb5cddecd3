//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"github.com/iwvelando/earning-formula/internal/config"
	"github.com/iwvelando/earning-formula/internal/manager"
	"github.com/iwvelando/earning-formula/internal/store"
	"go.uber.org/zap"
)

// Initialize creates an App with the backend, store and manager wired up.
func Initialize(ctx context.Context, cfg *config.Configuration, logger *zap.Logger) (*App, func(), error) {
	wire.Build(
		// Persistence
		provideBackend,
		provideStoreOptions,
		store.New,
		wire.Bind(new(manager.Store), new(*store.Store)),

		// State
		provideManagerOptions,
		manager.New,

		newApp,
	)

	return &App{}, nil, nil
}
