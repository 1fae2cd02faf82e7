package behavior

import (
	"fmt"
	"strings"

	"github.com/zeusync/compose/internal/core/factory"
)

// fixed is a stateless variant with a constant effect.
type fixed struct {
	axis    Axis
	variant string
	message string
}

func (f fixed) Axis() Axis      { return f.axis }
func (f fixed) Variant() string { return f.variant }
func (f fixed) Perform(Args) Effect {
	return Effect{Axis: f.axis, Variant: f.variant, Message: f.message}
}

// payment settles an amount through one payment method.
type payment struct {
	method string
	label  string
}

func (p payment) Axis() Axis      { return AxisPay }
func (p payment) Variant() string { return p.method }
func (p payment) Perform(args Args) Effect {
	amount := args.Amount()
	return Effect{
		Axis:    AxisPay,
		Variant: p.method,
		Message: fmt.Sprintf("payment of %.2f done by %s", amount, p.label),
		Amount:  amount,
	}
}

// Laser is the one stateful variant: it counts its own shots. It is not safe
// for concurrent use on its own; an entity serializes calls to it.
type Laser struct {
	shots    int
	released bool
}

func (l *Laser) Axis() Axis      { return AxisAttack }
func (l *Laser) Variant() string { return "laser" }

func (l *Laser) Perform(Args) Effect {
	l.shots++
	return Effect{
		Axis:    AxisAttack,
		Variant: "laser",
		Message: fmt.Sprintf("i will attack with the laser (shot %d)", l.shots),
	}
}

// Shots returns how many times this laser has fired.
func (l *Laser) Shots() int { return l.shots }

// Release powers the laser down once its owner lets go of it.
func (l *Laser) Release() { l.released = true }

// Released reports whether the owner has let go of the laser.
func (l *Laser) Released() bool { return l.released }

var fixedVariants = []fixed{
	{AxisMove, "walk", "i am walking"},
	{AxisMove, "roll", "i am rolling"},
	{AxisMove, "none", "i am not able to walk"},
	{AxisThink, "llm", "i am thinking using a language model"},
	{AxisThink, "none", "i am not able to think"},
	{AxisAttack, "punch", "i will attack with the punch"},
	{AxisJump, "high", "high jump"},
	{AxisJump, "low", "low jump"},
	{AxisRun, "fast", "fast run"},
	{AxisRun, "slow", "slow run"},
}

var paymentMethods = []payment{
	{method: "upi", label: "UPI"},
	{method: "wallet", label: "wallet"},
	{method: "card", label: "card"},
}

// RegisterBuiltins fills c with every built-in variant.
func RegisterBuiltins(c *Catalog) error {
	for _, v := range fixedVariants {
		v := v
		if err := c.Register(Key(v.axis, v.variant), func(factory.Params) (Behavior, error) {
			return v, nil
		}); err != nil {
			return err
		}
	}
	for _, p := range paymentMethods {
		p := p
		if err := c.Register(Key(AxisPay, p.method), func(factory.Params) (Behavior, error) {
			return p, nil
		}); err != nil {
			return err
		}
	}
	return c.Register(Key(AxisAttack, "laser"), func(factory.Params) (Behavior, error) {
		return &Laser{}, nil
	})
}

// Variants lists the registered variant names for one axis.
func Variants(c *Catalog, axis Axis) []string {
	prefix := string(axis) + "/"
	var out []string
	for _, k := range c.Keys() {
		if name, ok := strings.CutPrefix(k, prefix); ok {
			out = append(out, name)
		}
	}
	return out
}

// Axes lists the axes that have at least one registered variant, sorted.
func Axes(c *Catalog) []Axis {
	seen := make(map[Axis]struct{})
	var out []Axis
	for _, k := range c.Keys() {
		axis, _, _ := strings.Cut(k, "/")
		if _, ok := seen[Axis(axis)]; ok {
			continue
		}
		seen[Axis(axis)] = struct{}{}
		out = append(out, Axis(axis))
	}
	return out
}
