package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zeusync/compose/internal/core/factory"
)

// ErrNotFound is returned by create for unknown product keys so the process
// exits non-zero.
var ErrNotFound = errors.New("product not found")

func newCreateCmd(c *cli) *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:       "create vehicle|shape <key>",
		Short:     "Build a product through its factory",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"vehicle", "shape"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseParams(params)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			kind, key := args[0], args[1]

			switch kind {
			case "vehicle":
				v, err := c.app.Products.Vehicles.Create(key, p)
				if err != nil {
					return notFound(out, key, err)
				}
				fmt.Fprintf(out, "created %s (%d wheels): %s\n", v.Type(), v.Wheels(), v.Drive())
			case "shape":
				s, err := c.app.Products.Shapes.Create(key, p)
				if err != nil {
					return notFound(out, key, err)
				}
				fmt.Fprintf(out, "created %s: area %.2f\n", s.Name(), s.Area())
			default:
				return fmt.Errorf("unknown product kind %q (want vehicle or shape)", kind)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "constructor parameter as key=value (repeatable)")
	return cmd
}

func notFound(out interface{ Write([]byte) (int, error) }, key string, err error) error {
	if errors.Is(err, factory.ErrNotFound) {
		fmt.Fprintf(out, "%s: not found\n", key)
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return err
}

func parseParams(kvs []string) (factory.Params, error) {
	p := make(factory.Params, len(kvs))
	for _, kv := range kvs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("bad --param %q, want key=value", kv)
		}
		p[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return p, nil
}
