package entity

import "errors"

var (
	ErrNoBindings   = errors.New("entity needs at least one behavior")
	ErrNilBehavior  = errors.New("nil behavior")
	ErrAxisMismatch = errors.New("behavior serves a different axis")
	ErrUnknownAxis  = errors.New("axis not part of entity")
	ErrClosed       = errors.New("entity is closed")
)
