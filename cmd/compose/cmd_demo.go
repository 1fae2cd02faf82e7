package main

import "github.com/spf13/cobra"

func newDemoCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the robot, fighter, character, checkout, vehicle and shape walkthrough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.RunDemo(cmd.OutOrStdout())
		},
	}
}
