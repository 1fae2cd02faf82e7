package entity

import "github.com/zeusync/compose/internal/core/behavior"

const (
	EventBound     = "behavior.bound"
	EventPerformed = "behavior.performed"
	EventReleased  = "behavior.released"
)

// BoundEvent is the payload of EventBound.
type BoundEvent struct {
	EntityID string
	Entity   string
	Axis     behavior.Axis
	Previous string
	Current  string
}

// PerformedEvent is the payload of EventPerformed.
type PerformedEvent struct {
	EntityID string
	Entity   string
	Effect   behavior.Effect
}

// ReleasedEvent is the payload of EventReleased, sent once per axis when the
// entity is closed.
type ReleasedEvent struct {
	EntityID string
	Entity   string
	Axis     behavior.Axis
	Variant  string
}
