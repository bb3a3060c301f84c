package slotgo

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

var (
	// ErrClosed signals use of a registry after Close. It arrives as a
	// panic value: a closed registry has no slots left to serve.
	ErrClosed = errors.New("registry is closed")

	// ErrNoDynamicSection signals a dynamic insert against a schema built
	// without EnableDynamic. Insert panics with it.
	ErrNoDynamicSection = errors.New("schema has no dynamic section")

	// ErrUnregisteredType is returned by Store when a value's type has no
	// fixed slot and no dynamic section to take it.
	ErrUnregisteredType = errors.New("type not registered")
)

// PartitionError reports a dynamic-section operation on a type that
// belongs to the fixed section. The two sections partition the type space;
// the violation is fatal, so this error arrives as a panic value.
type PartitionError struct {
	Op   string
	Type reflect.Type
}

func (e *PartitionError) Error() string {
	return fmt.Sprintf("slotgo: dynamic %s of fixed type %s", e.Op, e.Type)
}

// KeyMismatchError reports a key or capability set minted from one schema
// used against a registry built from another. Arrives as a panic value.
type KeyMismatchError struct {
	Op       string
	Want     uuid.UUID // schema the registry was built from
	Got      uuid.UUID // schema the key or set was minted from
	Registry string    // registry name, may be empty
}

func (e *KeyMismatchError) Error() string {
	return fmt.Sprintf("slotgo: %s: schema mismatch: registry %q uses %s, got %s", e.Op, e.Registry, e.Want, e.Got)
}
