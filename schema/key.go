package schema

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

// Key is a typed slot handle minted from a sealed Schema. It carries the
// slot index resolved at mint time, so keyed registry access is a slice
// index plus a type assertion with no map probe.
//
// A Key is only valid for registries built from the schema it was minted
// from; using it against any other registry is a fail-fast panic, never a
// silent misread. The zero Key matches no schema.
type Key[T any] struct {
	schemaID uuid.UUID
	index    int
}

// Index returns the slot index the key resolves to.
func (k Key[T]) Index() int { return k.index }

// SchemaID returns the identity of the schema the key was minted from.
func (k Key[T]) SchemaID() uuid.UUID { return k.schemaID }

// KeyFor mints a key for the plain entry storing T. It fails with
// ErrUnknownType if T is not registered, or if T is registered as a marker
// key for a different value type (mint those with KeyAs).
func KeyFor[T any](s *Schema) (Key[T], error) {
	t := reflect.TypeFor[T]()

	e, ok := s.Lookup(t)
	if !ok {
		return Key[T]{}, fmt.Errorf("schema: key for %s: %w", t, ErrUnknownType)
	}
	if e.valueType != t {
		return Key[T]{}, fmt.Errorf("schema: key for %s: entry stores %s, mint with KeyAs: %w", t, e.valueType, ErrUnknownType)
	}

	return Key[T]{schemaID: s.id, index: e.index}, nil
}

// MustKeyFor is like KeyFor but panics on error.
func MustKeyFor[T any](s *Schema) Key[T] {
	k, err := KeyFor[T](s)
	if err != nil {
		panic(err)
	}
	return k
}

// KeyAs mints a key for the marker-keyed entry registered under K storing
// values of type V.
func KeyAs[K, V any](s *Schema) (Key[V], error) {
	kt := reflect.TypeFor[K]()
	vt := reflect.TypeFor[V]()

	e, ok := s.Lookup(kt)
	if !ok {
		return Key[V]{}, fmt.Errorf("schema: key as %s: %w", kt, ErrUnknownType)
	}
	if e.valueType != vt {
		return Key[V]{}, fmt.Errorf("schema: key as %s: entry stores %s, not %s: %w", kt, e.valueType, vt, ErrUnknownType)
	}

	return Key[V]{schemaID: s.id, index: e.index}, nil
}

// MustKeyAs is like KeyAs but panics on error.
func MustKeyAs[K, V any](s *Schema) Key[V] {
	k, err := KeyAs[K, V](s)
	if err != nil {
		panic(err)
	}
	return k
}
