package products

import "github.com/zeusync/compose/internal/core/factory"

// Vehicle is the product family of the vehicle factory.
type Vehicle interface {
	Type() string
	Drive() string
	Wheels() int
}

type car struct{ wheels int }

func (*car) Type() string  { return "car" }
func (*car) Drive() string { return "driving a car on the road" }
func (v *car) Wheels() int { return v.wheels }

type bike struct{ wheels int }

func (*bike) Type() string  { return "bike" }
func (*bike) Drive() string { return "riding a bike on the road" }
func (v *bike) Wheels() int { return v.wheels }

type truck struct{ wheels int }

func (*truck) Type() string  { return "truck" }
func (*truck) Drive() string { return "driving a heavy truck" }
func (v *truck) Wheels() int { return v.wheels }

// NewVehicleFactory returns a factory holding every built-in vehicle.
func NewVehicleFactory() *factory.Factory[Vehicle] {
	f := factory.New[Vehicle]("vehicle")
	RegisterVehicles(f)
	return f
}

// RegisterVehicles adds car, bike and truck to f. It panics if any of them
// is already registered.
func RegisterVehicles(f *factory.Factory[Vehicle]) {
	table := map[string]factory.Constructor[Vehicle]{
		"car":   func(factory.Params) (Vehicle, error) { return &car{wheels: 4}, nil },
		"bike":  func(factory.Params) (Vehicle, error) { return &bike{wheels: 2}, nil },
		"truck": func(factory.Params) (Vehicle, error) { return &truck{wheels: 6}, nil },
	}
	for key, ctor := range table {
		f.MustRegister(key, ctor)
	}
}
