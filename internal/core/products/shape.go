package products

import (
	"errors"
	"fmt"
	"math"

	"github.com/zeusync/compose/internal/core/factory"
)

var ErrInvalidDimension = errors.New("dimension must be positive")

// Shape is the product family of the shape factory.
type Shape interface {
	Name() string
	Area() float64
}

type Circle struct{ Radius float64 }

func (c Circle) Name() string  { return "circle" }
func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

type Rectangle struct{ Width, Height float64 }

func (r Rectangle) Name() string  { return "rectangle" }
func (r Rectangle) Area() float64 { return r.Width * r.Height }

type Triangle struct{ Base, Height float64 }

func (t Triangle) Name() string  { return "triangle" }
func (t Triangle) Area() float64 { return 0.5 * t.Base * t.Height }

// TotalArea sums the areas of any shapes. Adding a shape type needs no
// change here.
func TotalArea(shapes ...Shape) float64 {
	var total float64
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}

// NewShapeFactory returns a factory holding every built-in shape.
func NewShapeFactory() *factory.Factory[Shape] {
	f := factory.New[Shape]("shape")
	RegisterShapes(f)
	return f
}

// RegisterShapes adds circle, rectangle and triangle to f. Dimensions come
// from params and default to 1. It panics if any of them is already
// registered.
func RegisterShapes(f *factory.Factory[Shape]) {
	table := map[string]factory.Constructor[Shape]{
		"circle": func(p factory.Params) (Shape, error) {
			r, err := dimension(p, "radius")
			if err != nil {
				return nil, err
			}
			return Circle{Radius: r}, nil
		},
		"rectangle": func(p factory.Params) (Shape, error) {
			w, err := dimension(p, "width")
			if err != nil {
				return nil, err
			}
			h, err := dimension(p, "height")
			if err != nil {
				return nil, err
			}
			return Rectangle{Width: w, Height: h}, nil
		},
		"triangle": func(p factory.Params) (Shape, error) {
			b, err := dimension(p, "base")
			if err != nil {
				return nil, err
			}
			h, err := dimension(p, "height")
			if err != nil {
				return nil, err
			}
			return Triangle{Base: b, Height: h}, nil
		},
	}
	for key, ctor := range table {
		f.MustRegister(key, ctor)
	}
}

func dimension(p factory.Params, key string) (float64, error) {
	v, err := p.Float(key, 1)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, fmt.Errorf("%s %g: %w", key, v, ErrInvalidDimension)
	}
	return v, nil
}
