package factory

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Params carries constructor arguments, usually decoded from config or flags.
type Params map[string]any

// Constructor builds a fresh product for one key.
type Constructor[T any] func(params Params) (T, error)

// Observer is notified about lookups. metrics.Recorder satisfies it.
type Observer interface {
	ProductCreated(kind, key string)
	ProductMissed(kind string)
}

// Factory is a keyed constructor table. Keys are matched case-insensitively
// after trimming surrounding whitespace. Every Create call returns a new,
// independently owned instance.
type Factory[T any] struct {
	kind     string
	mu       sync.RWMutex
	ctors    map[string]Constructor[T]
	observer Observer
}

// New returns an empty factory. kind names the product family in errors,
// logs and metrics.
func New[T any](kind string) *Factory[T] {
	return &Factory[T]{
		kind:  kind,
		ctors: make(map[string]Constructor[T]),
	}
}

// Kind returns the product family name.
func (f *Factory[T]) Kind() string { return f.kind }

// SetObserver installs an observer for Create outcomes.
func (f *Factory[T]) SetObserver(obs Observer) {
	f.mu.Lock()
	f.observer = obs
	f.mu.Unlock()
}

// Register adds a constructor under key.
func (f *Factory[T]) Register(key string, ctor Constructor[T]) error {
	k := normalize(key)
	if k == "" {
		return fmt.Errorf("%s factory: %w", f.kind, ErrEmptyKey)
	}
	if ctor == nil {
		return fmt.Errorf("%s factory %q: %w", f.kind, k, ErrNilConstructor)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.ctors[k]; exists {
		return fmt.Errorf("%s factory %q: %w", f.kind, k, ErrDuplicateKey)
	}
	f.ctors[k] = ctor
	return nil
}

// MustRegister is Register for static tables built at startup; it panics on
// a programming error such as a duplicate key.
func (f *Factory[T]) MustRegister(key string, ctor Constructor[T]) {
	if err := f.Register(key, ctor); err != nil {
		panic(err)
	}
}

// Create builds the product registered under key. An unknown key yields an
// error wrapping ErrNotFound and the zero T; no default product is returned.
func (f *Factory[T]) Create(key string, params Params) (T, error) {
	k := normalize(key)

	f.mu.RLock()
	ctor, ok := f.ctors[k]
	obs := f.observer
	f.mu.RUnlock()

	var zero T
	if !ok {
		if obs != nil {
			obs.ProductMissed(f.kind)
		}
		return zero, fmt.Errorf("%s %q: %w", f.kind, key, ErrNotFound)
	}

	if params == nil {
		params = Params{}
	}
	product, err := ctor(params)
	if err != nil {
		return zero, fmt.Errorf("create %s %q: %w", f.kind, k, err)
	}
	if obs != nil {
		obs.ProductCreated(f.kind, k)
	}
	return product, nil
}

// Has reports whether key is registered.
func (f *Factory[T]) Has(key string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.ctors[normalize(key)]
	return ok
}

// Keys returns the registered keys in sorted order.
func (f *Factory[T]) Keys() []string {
	f.mu.RLock()
	keys := make([]string, 0, len(f.ctors))
	for k := range f.ctors {
		keys = append(keys, k)
	}
	f.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
