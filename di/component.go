// Package di models constructed graph nodes (Component) plus the bag of
// dependencies each node was built from.
//
// Notes on performance:
//   - The success path is dominated by one constructor call and a small map write.
//   - Error paths avoid fmt.Errorf so wiring failures stay cheap to produce and
//     to assert on.
package di

import (
	"errors"
	"reflect"
	"strconv"
)

// ErrNilConstructor is returned when Provide or Inject is called without a constructor.
var ErrNilConstructor = errors.New("di: nil constructor")

// DependencyKey identifies a node in the graph and the slot it occupies in a
// dependent's Deps bag.
//
// Keys are typically defined as package-level constants to avoid typos.
//
// Example:
//
//	const (
//	  KeyConnection     di.DependencyKey = "connection"
//	  KeyUserRepository di.DependencyKey = "repository.user"
//	)
type DependencyKey string

// Key converts a string into a DependencyKey.
func Key(name string) DependencyKey { return DependencyKey(name) }

// DuplicateKeyError is returned when two dependencies of the same node share a key.
type DuplicateKeyError struct{ Key DependencyKey }

// Error implements the error interface.
func (e DuplicateKeyError) Error() string {
	// Example: di: duplicate dependency key "connection"
	return "di: duplicate dependency key " + strconv.Quote(string(e.Key))
}

// MissingDependencyError is returned when a dependency key is not present.
//
// It is used by TryGetAs to distinguish "missing" from "wrong type".
type MissingDependencyError struct{ Key DependencyKey }

// Error implements the error interface.
func (e MissingDependencyError) Error() string {
	return "di: dependency " + strconv.Quote(string(e.Key)) + " missing"
}

// WrongTypeDependencyError is returned when a dependency exists but is of a different type.
type WrongTypeDependencyError struct {
	// Key is the dependency key requested.
	Key DependencyKey

	// GotType is reflect.TypeOf(raw).String() for the stored value.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeDependencyError) Error() string {
	return "di: dependency " + strconv.Quote(string(e.Key)) + " has wrong type (" + e.GotType + ")"
}

// NilDependencyError indicates that a dependency handed to Provide or Inject
// was nil or held a nil value. Key names the dependency, or the node being
// built when the dependency itself is nil.
type NilDependencyError struct{ Key DependencyKey }

// Error implements the error interface.
func (e NilDependencyError) Error() string {
	return "di: nil dependency for key " + strconv.Quote(string(e.Key))
}

// NilValueError indicates that a constructor succeeded but returned a nil value.
type NilValueError struct{ Key DependencyKey }

// Error implements the error interface.
func (e NilValueError) Error() string {
	return "di: constructor for " + strconv.Quote(string(e.Key)) + " returned nil"
}

// ConstructError wraps a constructor failure with the key of the node being built.
type ConstructError struct {
	Key DependencyKey
	Err error
}

// Error implements the error interface.
func (e ConstructError) Error() string {
	return "di: construct " + strconv.Quote(string(e.Key)) + ": " + e.Err.Error()
}

// Unwrap exposes the constructor error to errors.Is / errors.As.
func (e ConstructError) Unwrap() error { return e.Err }

// Dependency is a node that can be recorded as an input of another node.
// *Component[T] implements it for every T.
type Dependency interface {
	DependencyKey() DependencyKey
	dependencyValue() (any, bool)
}

// Component is a constructed graph node.
//
// Val is the constructed value, usually an interface (capability) type so that
// dependents never see the concrete implementation.
// Deps stores the values this node was built from, keyed by DependencyKey, for
// introspection and tests.
type Component[T any] struct {
	Key  DependencyKey
	Val  T
	Deps map[DependencyKey]any
}

// DependencyKey implements Dependency.
func (c *Component[T]) DependencyKey() DependencyKey {
	if c == nil {
		return ""
	}
	return c.Key
}

func (c *Component[T]) dependencyValue() (any, bool) {
	if c == nil || isNil(c.Val) {
		return nil, false
	}
	return c.Val, true
}

// Value returns the constructed value.
func (c *Component[T]) Value() T { return c.Val }

// Provide constructs the node identified by key.
//
// deps are validated before ctor runs: each must be non-nil, hold a non-nil
// value and carry a distinct key. ctor is called exactly once; typically it
// closes over the Val of the deps it was given.
//
// It fails with:
//   - ErrNilConstructor if ctor is nil
//   - NilDependencyError if a dependency (or its value) is nil
//   - DuplicateKeyError if two dependencies share a key
//   - ConstructError if ctor returns an error
//   - NilValueError if ctor returns a nil value
func Provide[T any](key DependencyKey, ctor func() (T, error), deps ...Dependency) (*Component[T], error) {
	if ctor == nil {
		return nil, ErrNilConstructor
	}

	bag := make(map[DependencyKey]any, len(deps))
	for _, dep := range deps {
		if dep == nil {
			return nil, NilDependencyError{Key: key}
		}
		k := dep.DependencyKey()
		v, ok := dep.dependencyValue()
		if !ok {
			if k == "" {
				k = key
			}
			return nil, NilDependencyError{Key: k}
		}
		if _, exists := bag[k]; exists {
			return nil, DuplicateKeyError{Key: k}
		}
		bag[k] = v
	}

	val, err := ctor()
	if err != nil {
		return nil, ConstructError{Key: key, Err: err}
	}
	if isNil(val) {
		return nil, NilValueError{Key: key}
	}

	return &Component[T]{Key: key, Val: val, Deps: bag}, nil
}

// Inject constructs the node identified by key from a single typed dependency.
//
// It is constructor injection: ctor receives dep.Val, the same value every other
// dependent of dep receives. Failure kinds match Provide.
func Inject[T any, D any](key DependencyKey, dep *Component[D], ctor func(D) (T, error)) (*Component[T], error) {
	if ctor == nil {
		return nil, ErrNilConstructor
	}
	if dep == nil {
		return nil, NilDependencyError{Key: key}
	}
	return Provide(key, func() (T, error) { return ctor(dep.Val) }, dep)
}

// Has reports whether a dependency exists for the key (regardless of type).
func (c *Component[T]) Has(key DependencyKey) bool {
	if c == nil || c.Deps == nil {
		return false
	}
	_, ok := c.Deps[key]
	return ok
}

// GetAny returns the raw stored dependency value without type assertions.
func (c *Component[T]) GetAny(key DependencyKey) (any, bool) {
	if c == nil || c.Deps == nil {
		return nil, false
	}
	v, ok := c.Deps[key]
	return v, ok
}

// GetAs returns the dependency typed as D.
//
// ok is false if the key is missing or the stored value is not a D.
func GetAs[D any, T any](c *Component[T], key DependencyKey) (D, bool) {
	var zero D
	if c == nil || c.Deps == nil {
		return zero, false
	}
	raw, ok := c.Deps[key]
	if !ok || raw == nil {
		return zero, false
	}
	d, ok := raw.(D)
	return d, ok
}

// TryGetAs returns the dependency typed as D.
//
// It returns:
//   - MissingDependencyError if the key is not present
//   - WrongTypeDependencyError if the key exists but is not a D
func TryGetAs[D any, T any](c *Component[T], key DependencyKey) (D, error) {
	var zero D
	if c == nil || c.Deps == nil {
		return zero, MissingDependencyError{Key: key}
	}
	raw, ok := c.Deps[key]
	if !ok || raw == nil {
		return zero, MissingDependencyError{Key: key}
	}
	d, ok := raw.(D)
	if !ok {
		return zero, WrongTypeDependencyError{
			Key:     key,
			GotType: reflect.TypeOf(raw).String(),
		}
	}
	return d, nil
}

// MustGetAs returns the dependency typed as D or panics.
func MustGetAs[D any, T any](c *Component[T], key DependencyKey) D {
	d, err := TryGetAs[D](c, key)
	if err != nil {
		panic(err)
	}
	return d
}

// Clone returns a shallow copy of the Component.
//
// Val is shared. Deps is copied into a new map so the copy can be inspected or
// annotated without touching the original.
func (c *Component[T]) Clone() *Component[T] {
	if c == nil {
		return nil
	}
	cp := &Component[T]{Key: c.Key, Val: c.Val, Deps: make(map[DependencyKey]any, len(c.Deps))}
	for k, v := range c.Deps {
		cp.Deps[k] = v
	}
	return cp
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
