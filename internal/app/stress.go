package app

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/zeusync/compose/internal/core/behavior"
	"github.com/zeusync/compose/internal/core/observability/log"
	"github.com/zeusync/compose/pkg/concurrent"
)

// StressReport summarises a Stress run.
type StressReport struct {
	Workers   int
	Rounds    int
	Performed int64
	Rebinds   int64
	// ByVariant counts performed effects per variant name.
	ByVariant map[string]int64
}

// Stress spawns one entity from the loadout and has workers interleave
// Perform and Bind on the same axis. Every fourth round of a worker is a
// rebind to the next variant of the axis.
func (a *App) Stress(ctx context.Context, loadoutName string, axis behavior.Axis, workers, rounds int) (StressReport, error) {
	report := StressReport{Workers: workers, Rounds: rounds, ByVariant: make(map[string]int64)}

	variants := behavior.Variants(a.Behaviors, axis)
	if len(variants) == 0 {
		return report, fmt.Errorf("no variants registered for axis %q", axis)
	}

	e, err := a.Spawn(loadoutName)
	if err != nil {
		return report, err
	}
	defer e.Close()

	var (
		performed atomic.Int64
		rebinds   atomic.Int64
		mu        sync.Mutex
	)
	err = concurrent.Workers(ctx, workers, func(ctx context.Context, id int) error {
		for i := 0; i < rounds; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if i%4 == 0 {
				if err := a.Rebind(e, axis, variants[(id+i)%len(variants)]); err != nil {
					return err
				}
				rebinds.Add(1)
				continue
			}
			eff, err := e.Perform(axis, behavior.Args{"amount": float64(i)})
			if err != nil {
				return err
			}
			performed.Add(1)
			mu.Lock()
			report.ByVariant[eff.Variant]++
			mu.Unlock()
		}
		return nil
	})

	report.Performed = performed.Load()
	report.Rebinds = rebinds.Load()
	a.Logger.Info("stress finished",
		log.String("loadout", loadoutName),
		log.String("axis", string(axis)),
		log.Int("workers", workers),
		log.Int64("performed", report.Performed),
		log.Int64("rebinds", report.Rebinds),
		log.Error(err),
	)
	return report, err
}
