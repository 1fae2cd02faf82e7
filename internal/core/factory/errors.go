package factory

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateKey   = errors.New("key already registered")
	ErrEmptyKey       = errors.New("empty key")
	ErrNilConstructor = errors.New("nil constructor")
)
