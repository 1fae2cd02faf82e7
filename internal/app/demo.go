package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/zeusync/compose/internal/core/behavior"
	"github.com/zeusync/compose/internal/core/entity"
	"github.com/zeusync/compose/internal/core/events/bus"
	"github.com/zeusync/compose/internal/core/factory"
	"github.com/zeusync/compose/internal/core/products"
)

// RunDemo walks through the built-in loadouts and factories, writing one
// line per observable effect to w.
func (a *App) RunDemo(w io.Writer) error {
	sub, err := a.Events.Subscribe(entity.EventBound, func(ev bus.Event) error {
		bound, ok := ev.Data().(entity.BoundEvent)
		if !ok {
			return nil
		}
		_, err := fmt.Fprintf(w, "  ~ %s rebinds %s: %s -> %s\n", bound.Entity, bound.Axis, bound.Previous, bound.Current)
		return err
	})
	if err != nil {
		return err
	}
	defer func() { _ = sub.Cancel() }()

	steps := []func(io.Writer) error{
		a.demoRobots,
		a.demoFighter,
		a.demoCharacters,
		a.demoCheckout,
		a.demoVehicles,
		a.demoShapes,
	}
	for _, step := range steps {
		if err = step(w); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) demoRobots(w io.Writer) error {
	fmt.Fprintln(w, "== robots ==")
	for _, name := range []string{"tesla", "claude"} {
		if err := a.demoRobot(w, name); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) demoRobot(w io.Writer, name string) error {
	e, err := a.Spawn(name)
	if err != nil {
		return err
	}
	defer e.Close()
	if err = a.performAll(w, e, behavior.AxisThink, behavior.AxisMove); err != nil {
		return err
	}
	fmt.Fprintf(w, "  %s\n", e.Describe())
	if name != "tesla" {
		return nil
	}
	if err = a.Rebind(e, behavior.AxisMove, "none"); err != nil {
		return err
	}
	return a.performAll(w, e, behavior.AxisMove)
}

func (a *App) demoFighter(w io.Writer) error {
	fmt.Fprintln(w, "== fighter ==")
	e, err := a.Spawn("fighter")
	if err != nil {
		return err
	}
	defer e.Close()
	if err = a.performAll(w, e, behavior.AxisAttack, behavior.AxisAttack); err != nil {
		return err
	}
	if err = a.Rebind(e, behavior.AxisAttack, "punch"); err != nil {
		return err
	}
	return a.performAll(w, e, behavior.AxisAttack)
}

func (a *App) demoCharacters(w io.Writer) error {
	fmt.Fprintln(w, "== characters ==")
	for _, name := range []string{"animal", "tank"} {
		if err := a.demoCharacter(w, name); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) demoCharacter(w io.Writer, name string) error {
	e, err := a.Spawn(name)
	if err != nil {
		return err
	}
	defer e.Close()
	if err = a.performAll(w, e, behavior.AxisJump, behavior.AxisRun); err != nil {
		return err
	}
	fmt.Fprintf(w, "  %s\n", e.Describe())
	return nil
}

func (a *App) demoCheckout(w io.Writer) error {
	fmt.Fprintln(w, "== checkout ==")
	e, err := a.Spawn("checkout")
	if err != nil {
		return err
	}
	defer e.Close()
	args := behavior.Args{"amount": 100.0}
	for _, method := range []string{"", "card", "wallet"} {
		if method != "" {
			if err = a.Rebind(e, behavior.AxisPay, method); err != nil {
				return err
			}
		}
		eff, err := e.Perform(behavior.AxisPay, args)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s\n", eff)
	}
	return nil
}

func (a *App) demoVehicles(w io.Writer) error {
	fmt.Fprintln(w, "== vehicles ==")
	for _, key := range []string{"car", "bike", "truck", "plane"} {
		v, err := a.Products.Vehicles.Create(key, nil)
		if errors.Is(err, factory.ErrNotFound) {
			fmt.Fprintf(w, "  %s: not found\n", key)
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  created %s: %s\n", v.Type(), v.Drive())
	}
	return nil
}

func (a *App) demoShapes(w io.Writer) error {
	fmt.Fprintln(w, "== shapes ==")
	specs := []struct {
		key    string
		params factory.Params
	}{
		{"circle", factory.Params{"radius": 1.0}},
		{"rectangle", factory.Params{"width": 2.0, "height": 3.0}},
		{"triangle", factory.Params{"base": 4.0, "height": 5.0}},
	}
	shapes := make([]products.Shape, 0, len(specs))
	for _, s := range specs {
		shape, err := a.Products.Shapes.Create(s.key, s.params)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s area %.2f\n", shape.Name(), shape.Area())
		shapes = append(shapes, shape)
	}
	fmt.Fprintf(w, "  total area %.2f\n", products.TotalArea(shapes...))
	return nil
}

func (a *App) performAll(w io.Writer, e *entity.Entity, axes ...behavior.Axis) error {
	for _, axis := range axes {
		eff, err := e.Perform(axis, nil)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s %s\n", e.Name(), eff)
	}
	return nil
}
