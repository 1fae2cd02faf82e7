package app

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/zeusync/compose/internal/core/behavior"
	"github.com/zeusync/compose/internal/core/events/bus"
	"github.com/zeusync/compose/internal/core/factory"
	"github.com/zeusync/compose/internal/core/loadout"
	"github.com/zeusync/compose/internal/core/observability/log"
	"github.com/zeusync/compose/internal/core/observability/metrics"
	"github.com/zeusync/compose/internal/core/products"
)

// ProvideLogger builds the process logger; the cleanup flushes it.
func ProvideLogger(cfg Config) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	l := log.New(level)
	return l, func() { _ = l.Sync() }, nil
}

func ProvideRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

func ProvideMetrics(reg *prometheus.Registry) (*metrics.Recorder, error) {
	return metrics.New(reg)
}

func ProvideEventBus() bus.EventBus {
	return bus.New()
}

// ProvideCatalog builds the behavior catalog with every built-in variant.
func ProvideCatalog(rec *metrics.Recorder) (*behavior.Catalog, error) {
	c := behavior.NewCatalog()
	if err := behavior.RegisterBuiltins(c); err != nil {
		return nil, err
	}
	c.SetObserver(rec)
	return c, nil
}

// Products groups the product factories.
type Products struct {
	Vehicles *factory.Factory[products.Vehicle]
	Shapes   *factory.Factory[products.Shape]
}

func ProvideProducts(rec *metrics.Recorder) *Products {
	vehicles := products.NewVehicleFactory()
	shapes := products.NewShapeFactory()
	vehicles.SetObserver(rec)
	shapes.SetObserver(rec)
	return &Products{Vehicles: vehicles, Shapes: shapes}
}

// ProvideLoadouts reads the configured loadout file, or the built-in set.
func ProvideLoadouts(cfg Config) (*loadout.Config, error) {
	if cfg.LoadoutPath == "" {
		return loadout.Default()
	}
	return loadout.LoadFile(cfg.LoadoutPath)
}
