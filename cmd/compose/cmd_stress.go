package main

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zeusync/compose/internal/core/behavior"
)

func newStressCmd(c *cli) *cobra.Command {
	var (
		loadoutName string
		axis        string
		workers     int
		rounds      int
	)

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Rebind and perform on one entity from many goroutines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers <= 0 || rounds <= 0 {
				return fmt.Errorf("--workers and --rounds must be positive")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			report, err := c.app.Stress(ctx, loadoutName, behavior.Axis(axis), workers, rounds)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "workers=%d rounds=%d performed=%d rebinds=%d\n",
				report.Workers, report.Rounds, report.Performed, report.Rebinds)
			variants := make([]string, 0, len(report.ByVariant))
			for v := range report.ByVariant {
				variants = append(variants, v)
			}
			sort.Strings(variants)
			for _, v := range variants {
				fmt.Fprintf(out, "  %-8s %d\n", v, report.ByVariant[v])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&loadoutName, "loadout", "fighter", "loadout to spawn")
	cmd.Flags().StringVar(&axis, "axis", string(behavior.AxisAttack), "axis to rebind and perform")
	cmd.Flags().IntVar(&workers, "workers", 8, "concurrent workers")
	cmd.Flags().IntVar(&rounds, "rounds", 1000, "rounds per worker")
	return cmd
}
