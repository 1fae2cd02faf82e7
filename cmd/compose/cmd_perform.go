package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zeusync/compose/internal/core/behavior"
)

func newPerformCmd(c *cli) *cobra.Command {
	var (
		amount float64
		rebind string
	)

	cmd := &cobra.Command{
		Use:   "perform <loadout> <axis>",
		Short: "Spawn an entity from a loadout and perform one capability",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.app.Spawn(args[0])
			if err != nil {
				return err
			}
			defer e.Close()

			axis := behavior.Axis(strings.ToLower(strings.TrimSpace(args[1])))
			if rebind != "" {
				if err = c.app.Rebind(e, axis, rebind); err != nil {
					return err
				}
			}
			eff, err := e.Perform(axis, behavior.Args{"amount": amount})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", e.Name(), eff)
			return nil
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount passed to the capability (pay)")
	cmd.Flags().StringVar(&rebind, "with", "", "rebind the axis to this variant before performing")
	return cmd
}
