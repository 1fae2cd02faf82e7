package main

import (
	"github.com/spf13/cobra"

	"github.com/zeusync/compose/internal/app"
	"github.com/zeusync/compose/internal/injector"
)

// cli carries the flags and the App shared by every subcommand.
type cli struct {
	cfg     app.Config
	app     *app.App
	cleanup func()
}

func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{}

	root := &cobra.Command{
		Use:           "compose",
		Short:         "Compose entities from swappable behaviors and build products by key",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := injector.InitializeApp(c.cfg)
			if err != nil {
				return err
			}
			c.app, c.cleanup = a, cleanup
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.cfg.LogLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&c.cfg.LoadoutPath, "config", "", "loadout file (YAML or JSON); built-in loadouts when empty")

	root.AddCommand(
		newDemoCmd(c),
		newListCmd(c),
		newCreateCmd(c),
		newPerformCmd(c),
		newStressCmd(c),
	)
	return root, c
}

// close runs the injector cleanup; it is safe to call when no command ran.
func (c *cli) close() {
	if c.cleanup != nil {
		c.cleanup()
		c.cleanup = nil
	}
}
