package behavior

import (
	"fmt"
	"strings"

	"github.com/zeusync/compose/internal/core/factory"
)

// Axis names an independent capability an entity can exhibit.
type Axis string

const (
	AxisMove   Axis = "move"
	AxisThink  Axis = "think"
	AxisAttack Axis = "attack"
	AxisJump   Axis = "jump"
	AxisRun    Axis = "run"
	AxisPay    Axis = "pay"
)

// Args are the parameters of a single capability call.
type Args map[string]any

// Amount returns the "amount" argument, or 0 when absent or not numeric.
func (a Args) Amount() float64 {
	switch v := a["amount"].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// Effect describes what a behavior variant did.
type Effect struct {
	Axis    Axis    `json:"axis"`
	Variant string  `json:"variant"`
	Message string  `json:"message"`
	Amount  float64 `json:"amount,omitempty"`
}

func (e Effect) String() string {
	return fmt.Sprintf("[%s/%s] %s", e.Axis, e.Variant, e.Message)
}

// Behavior is one variant of one capability. Perform never fails: a variant
// that cannot do something reports that as its effect.
type Behavior interface {
	Axis() Axis
	Variant() string
	Perform(args Args) Effect
}

// Releaser is implemented by variants that hold something to give back when
// their owner drops them.
type Releaser interface {
	Release()
}

// Catalog is the keyed factory of behavior variants, keyed "axis/variant".
type Catalog = factory.Factory[Behavior]

// NewCatalog returns an empty behavior catalog.
func NewCatalog() *Catalog {
	return factory.New[Behavior]("behavior")
}

// Key joins an axis and a variant name into a catalog key.
func Key(axis Axis, variant string) string {
	return string(axis) + "/" + strings.ToLower(strings.TrimSpace(variant))
}

// Build creates a variant from the catalog and checks that it serves axis.
func Build(c *Catalog, axis Axis, variant string, params factory.Params) (Behavior, error) {
	b, err := c.Create(Key(axis, variant), params)
	if err != nil {
		return nil, err
	}
	if b.Axis() != axis {
		return nil, fmt.Errorf("%s: variant serves axis %q", Key(axis, variant), b.Axis())
	}
	return b, nil
}
