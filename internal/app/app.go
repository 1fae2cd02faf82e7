package app

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/zeusync/compose/internal/core/behavior"
	"github.com/zeusync/compose/internal/core/entity"
	"github.com/zeusync/compose/internal/core/events/bus"
	"github.com/zeusync/compose/internal/core/loadout"
	"github.com/zeusync/compose/internal/core/observability/log"
	"github.com/zeusync/compose/internal/core/observability/metrics"
)

// App holds the instances shared across the process. It is built once at
// startup by the injector and passed to whoever needs it.
type App struct {
	Config    Config
	Logger    log.Log
	Registry  *prometheus.Registry
	Metrics   *metrics.Recorder
	Events    bus.EventBus
	Behaviors *behavior.Catalog
	Products  *Products
	Loadouts  *loadout.Config
}

func New(
	cfg Config,
	logger log.Log,
	registry *prometheus.Registry,
	recorder *metrics.Recorder,
	events bus.EventBus,
	catalog *behavior.Catalog,
	prods *Products,
	loadouts *loadout.Config,
) *App {
	return &App{
		Config:    cfg,
		Logger:    logger,
		Registry:  registry,
		Metrics:   recorder,
		Events:    events,
		Behaviors: catalog,
		Products:  prods,
		Loadouts:  loadouts,
	}
}

// Spawn builds an entity from a loadout, wired to the shared logger, event
// bus and metrics.
func (a *App) Spawn(name string, opts ...entity.Option) (*entity.Entity, error) {
	all := append([]entity.Option{
		entity.WithLogger(a.Logger),
		entity.WithEvents(a.Events),
		entity.WithObserver(a.Metrics),
	}, opts...)
	return a.Loadouts.Build(name, a.Behaviors, all...)
}

// Rebind swaps the variant on one axis of e for a fresh one from the catalog.
func (a *App) Rebind(e *entity.Entity, axis behavior.Axis, variant string) error {
	b, err := behavior.Build(a.Behaviors, axis, variant, nil)
	if err != nil {
		return err
	}
	return e.Bind(axis, b)
}
