//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/compose/internal/app"
	"github.com/zeusync/compose/internal/core/observability/log"
)

var providerSet = wire.NewSet(
	app.ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	app.ProvideRegistry,
	app.ProvideMetrics,
	app.ProvideEventBus,
	app.ProvideCatalog,
	app.ProvideProducts,
	app.ProvideLoadouts,
	app.New,
)

// InitializeApp builds every shared instance exactly once.
func InitializeApp(cfg app.Config) (*app.App, func(), error) {
	wire.Build(providerSet)
	return nil, nil, nil
}
