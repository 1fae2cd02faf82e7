package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zeusync/compose/internal/core/behavior"
	"github.com/zeusync/compose/pkg/concurrent"
)

type describeResult struct {
	line string
	err  error
}

func newListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List behaviors, products and loadouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			a := c.app

			fmt.Fprintln(out, "behaviors:")
			for _, axis := range behavior.Axes(a.Behaviors) {
				fmt.Fprintf(out, "  %-7s %s\n", axis, strings.Join(behavior.Variants(a.Behaviors, axis), ", "))
			}
			fmt.Fprintf(out, "vehicles: %s\n", strings.Join(a.Products.Vehicles.Keys(), ", "))
			fmt.Fprintf(out, "shapes:   %s\n", strings.Join(a.Products.Shapes.Keys(), ", "))
			fmt.Fprintln(out, "loadouts:")
			names := a.Loadouts.Names()
			lines := concurrent.ParallelMap(names, 4, func(name string) describeResult {
				e, err := a.Spawn(name)
				if err != nil {
					return describeResult{err: err}
				}
				defer e.Close()
				return describeResult{line: fmt.Sprintf("  %-9s %s", name, e.Describe())}
			})
			for _, l := range lines {
				if l.err != nil {
					return l.err
				}
				fmt.Fprintln(out, l.line)
			}
			return nil
		},
	}
}
