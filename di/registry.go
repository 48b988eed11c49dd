package di

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

// Registry provides component parameters at build time.
//
// It is intentionally:
// - read-only
// - side effect free
// - build-time only
//
// Expected usage:
//
//	val, ok, err := reg.Resolve(cfg, "database.connection_string")
type Registry interface {
	Resolve(cfg any, key string) (val any, ok bool, err error)
}

// ErrRegistryPanic is returned if a registry implementation panics internally.
var ErrRegistryPanic = errors.New("registry: panic during Resolve")

// MissingParameterError is returned by Lookup when the registry has no value for a key.
type MissingParameterError struct{ Key string }

// Error implements the error interface.
func (e MissingParameterError) Error() string {
	// Example: di: parameter "database.connection_string" missing
	return "di: parameter " + strconv.Quote(e.Key) + " missing"
}

// WrongTypeParameterError is returned by Lookup when the stored value is not of the requested type.
type WrongTypeParameterError struct {
	Key     string
	GotType string
}

// Error implements the error interface.
func (e WrongTypeParameterError) Error() string {
	return "di: parameter " + strconv.Quote(e.Key) + " has wrong type (" + e.GotType + ")"
}

// MapRegistry is a simple in-memory registry.
// It ignores cfg (but keeps it in the signature so future registries can use it).
type MapRegistry struct {
	items map[string]any
}

func NewMapRegistry() *MapRegistry {
	return &MapRegistry{items: map[string]any{}}
}

// Provide stores a value under a key and returns the registry for chaining.
func (r *MapRegistry) Provide(key string, val any) *MapRegistry {
	r.items[key] = val
	return r
}

// Resolve implements Registry and converts panics into errors.
func (r *MapRegistry) Resolve(_ any, key string) (val any, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			val = nil
			ok = false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	v, ok := r.items[key]
	return v, ok, nil
}

// Get returns the value if present (no panic).
func (r *MapRegistry) Get(key string) (any, bool) {
	v, ok := r.items[key]
	return v, ok
}

// MustGet returns the value or panics with a helpful message.
// Useful in tests where missing registry keys should fail fast.
func (r *MapRegistry) MustGet(key string) any {
	v, ok := r.items[key]
	if !ok {
		panic(fmt.Errorf("di: registry missing key %q", key))
	}
	return v
}

// Lookup resolves a required parameter and asserts its type.
//
// A nil registry, a missing key and a nil value all yield MissingParameterError.
// Errors reported by the registry itself are returned unchanged.
func Lookup[V any](reg Registry, cfg any, key string) (V, error) {
	var zero V
	if reg == nil {
		return zero, MissingParameterError{Key: key}
	}
	raw, ok, err := reg.Resolve(cfg, key)
	if err != nil {
		return zero, err
	}
	if !ok || raw == nil {
		return zero, MissingParameterError{Key: key}
	}
	v, ok := raw.(V)
	if !ok {
		return zero, WrongTypeParameterError{Key: key, GotType: reflect.TypeOf(raw).String()}
	}
	return v, nil
}

// LookupOr is Lookup with a default for missing parameters.
// Wrong types and registry errors are still reported.
func LookupOr[V any](reg Registry, cfg any, key string, def V) (V, error) {
	v, err := Lookup[V](reg, cfg, key)
	var missing MissingParameterError
	if errors.As(err, &missing) {
		return def, nil
	}
	return v, err
}
