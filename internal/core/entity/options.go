package entity

import (
	"github.com/zeusync/compose/internal/core/events/bus"
	"github.com/zeusync/compose/internal/core/observability/log"
)

// Observer receives slot activity. metrics.Recorder satisfies it.
type Observer interface {
	BehaviorBound(axis, variant string)
	BehaviorPerformed(axis, variant string)
}

type Option func(*Entity)

// WithID overrides the generated uuid.
func WithID(id string) Option {
	return func(e *Entity) { e.id = id }
}

func WithKind(kind string) Option {
	return func(e *Entity) { e.kind = kind }
}

// WithDescription sets the line returned by Describe.
func WithDescription(desc string) Option {
	return func(e *Entity) { e.description = desc }
}

func WithLogger(l log.Log) Option {
	return func(e *Entity) { e.log = l }
}

// WithEvents publishes bind and perform notifications on eb.
func WithEvents(eb bus.EventBus) Option {
	return func(e *Entity) { e.events = eb }
}

func WithObserver(obs Observer) Option {
	return func(e *Entity) { e.observer = obs }
}
