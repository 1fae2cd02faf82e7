package entity

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/zeusync/compose/internal/core/behavior"
	"github.com/zeusync/compose/internal/core/events/bus"
	"github.com/zeusync/compose/internal/core/observability/log"
)

// Entity owns exactly one behavior variant per axis and delegates capability
// calls to it. The set of axes is fixed at construction; the variant bound
// to each axis can be replaced at any time.
//
// Bind and Perform hold the same lock, so a variant is never swapped out or
// released while one of its calls is running.
type Entity struct {
	id          string
	name        string
	kind        string
	description string

	mu     sync.Mutex
	slots  map[behavior.Axis]behavior.Behavior
	axes   []behavior.Axis
	closed bool

	log      log.Log
	events   bus.EventBus
	observer Observer
}

// New builds an entity from a complete set of bindings. Every binding must
// be non-nil and serve the axis it is keyed by; otherwise no entity is
// returned.
func New(name string, bindings map[behavior.Axis]behavior.Behavior, opts ...Option) (*Entity, error) {
	if len(bindings) == 0 {
		return nil, fmt.Errorf("entity %q: %w", name, ErrNoBindings)
	}

	e := &Entity{
		name:  name,
		slots: make(map[behavior.Axis]behavior.Behavior, len(bindings)),
		axes:  make([]behavior.Axis, 0, len(bindings)),
	}
	for axis, b := range bindings {
		if err := checkBinding(axis, b); err != nil {
			return nil, fmt.Errorf("entity %q: %w", name, err)
		}
		e.slots[axis] = b
		e.axes = append(e.axes, axis)
	}
	sort.Slice(e.axes, func(i, j int) bool { return e.axes[i] < e.axes[j] })

	for _, opt := range opts {
		opt(e)
	}
	if e.id == "" {
		e.id = uuid.NewString()
	}
	if e.log == nil {
		e.log = log.NewNop()
	}
	e.log = e.log.With(log.String("entity", e.name), log.String("entity_id", e.id))

	for _, axis := range e.axes {
		if e.observer != nil {
			e.observer.BehaviorBound(string(axis), e.slots[axis].Variant())
		}
	}
	e.log.Debug("entity created", log.String("kind", e.kind), log.String("loadout", e.loadoutLocked()))

	return e, nil
}

func checkBinding(axis behavior.Axis, b behavior.Behavior) error {
	if b == nil {
		return fmt.Errorf("axis %q: %w", axis, ErrNilBehavior)
	}
	if b.Axis() != axis {
		return fmt.Errorf("axis %q given %s/%s: %w", axis, b.Axis(), b.Variant(), ErrAxisMismatch)
	}
	return nil
}

func (e *Entity) ID() string   { return e.id }
func (e *Entity) Name() string { return e.name }
func (e *Entity) Kind() string { return e.kind }

// Axes returns the entity's axes in sorted order.
func (e *Entity) Axes() []behavior.Axis {
	out := make([]behavior.Axis, len(e.axes))
	copy(out, e.axes)
	return out
}

// Variant returns the name of the variant bound to axis.
func (e *Entity) Variant(axis behavior.Axis) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, ok := e.slots[axis]
	if !ok {
		return "", false
	}
	return b.Variant(), true
}

// Bind replaces the variant bound to axis and releases the previous one.
// The entity takes ownership of b; b must not be bound anywhere else.
func (e *Entity) Bind(axis behavior.Axis, b behavior.Behavior) error {
	if err := checkBinding(axis, b); err != nil {
		return err
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	prev, ok := e.slots[axis]
	if !ok {
		e.mu.Unlock()
		return fmt.Errorf("bind %q on %q: %w", axis, e.name, ErrUnknownAxis)
	}
	e.slots[axis] = b
	if !sameInstance(prev, b) {
		release(prev)
	}
	e.mu.Unlock()

	if e.observer != nil {
		e.observer.BehaviorBound(string(axis), b.Variant())
	}
	e.log.Debug("behavior bound",
		log.String("axis", string(axis)),
		log.String("previous", prev.Variant()),
		log.String("current", b.Variant()),
	)
	e.publish(EventBound, BoundEvent{
		EntityID: e.id,
		Entity:   e.name,
		Axis:     axis,
		Previous: prev.Variant(),
		Current:  b.Variant(),
	})
	return nil
}

// Perform invokes the capability of the variant bound to axis. The only
// failure is an axis the entity was not built with.
func (e *Entity) Perform(axis behavior.Axis, args behavior.Args) (behavior.Effect, error) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return behavior.Effect{}, ErrClosed
	}
	b, ok := e.slots[axis]
	if !ok {
		e.mu.Unlock()
		return behavior.Effect{}, fmt.Errorf("perform %q on %q: %w", axis, e.name, ErrUnknownAxis)
	}
	effect := b.Perform(args)
	e.mu.Unlock()

	if e.observer != nil {
		e.observer.BehaviorPerformed(string(axis), effect.Variant)
	}
	e.publish(EventPerformed, PerformedEvent{EntityID: e.id, Entity: e.name, Effect: effect})
	return effect, nil
}

// Close releases every bound variant and publishes one EventReleased per
// axis. Later Bind and Perform calls fail with ErrClosed. Closing twice is a
// no-op.
func (e *Entity) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	events := make([]bus.Event, 0, len(e.axes))
	for _, axis := range e.axes {
		b := e.slots[axis]
		release(b)
		events = append(events, bus.NewEvent(EventReleased, e.id, ReleasedEvent{
			EntityID: e.id,
			Entity:   e.name,
			Axis:     axis,
			Variant:  b.Variant(),
		}))
	}
	e.mu.Unlock()

	e.log.Debug("entity closed")
	if e.events != nil {
		if err := e.events.PublishBatch(events...); err != nil {
			e.log.Warn("event handler failed", log.String("event", EventReleased), log.Error(err))
		}
	}
	return nil
}

// Loadout returns the bound variant names keyed by axis.
func (e *Entity) Loadout() map[behavior.Axis]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[behavior.Axis]string, len(e.slots))
	for axis, b := range e.slots {
		out[axis] = b.Variant()
	}
	return out
}

// Fingerprint hashes the current loadout. Entities with the same axes bound
// to the same variant names share a fingerprint.
func (e *Entity) Fingerprint() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	d := xxhash.New()
	for _, axis := range e.axes {
		_, _ = d.WriteString(string(axis))
		_, _ = d.WriteString("=")
		_, _ = d.WriteString(e.slots[axis].Variant())
		_, _ = d.WriteString("\n")
	}
	return d.Sum64()
}

// Describe returns the configured description, or a generated one listing
// the loadout.
func (e *Entity) Describe() string {
	if e.description != "" {
		return e.description
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.kind != "" {
		return fmt.Sprintf("%s (%s): %s", e.name, e.kind, e.loadoutLocked())
	}
	return fmt.Sprintf("%s: %s", e.name, e.loadoutLocked())
}

func (e *Entity) loadoutLocked() string {
	parts := make([]string, len(e.axes))
	for i, axis := range e.axes {
		parts[i] = string(axis) + "=" + e.slots[axis].Variant()
	}
	return strings.Join(parts, ", ")
}

func (e *Entity) publish(eventType string, data any) {
	if e.events == nil {
		return
	}
	if err := e.events.Publish(bus.NewEvent(eventType, e.id, data)); err != nil {
		e.log.Warn("event handler failed", log.String("event", eventType), log.Error(err))
	}
}

// sameInstance guards against releasing a variant that is being rebound to
// the slot it already occupies.
func sameInstance(a, b behavior.Behavior) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

func release(b behavior.Behavior) {
	if r, ok := b.(behavior.Releaser); ok {
		r.Release()
	}
}
