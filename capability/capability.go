package capability

import (
	"errors"
	"fmt"
	"iter"
	"reflect"

	"github.com/google/uuid"
	"github.com/hupe1980/slotgo/schema"
)

// ErrNotInterface is returned when a set's type parameter is not an
// interface type.
var ErrNotInterface = errors.New("capability set requires an interface type")

// SetOptions contains options for capability set construction.
type SetOptions struct {
	// Filter narrows membership beyond interface satisfaction. Entries for
	// which Filter returns false are excluded. Nil means no narrowing.
	Filter func(e schema.Entry) bool
}

// Set is a named capability set: the entries of one schema whose handles
// satisfy the interface I. Membership is computed once at construction
// and never changes afterwards.
type Set[I any] struct {
	name     string
	schemaID uuid.UUID
	indices  []int
	mask     *Mask
}

// NewSet builds the capability set for I over a sealed schema. An entry
// satisfies the set when a pointer to its value type implements I and the
// optional filter accepts it. Zero satisfying entries is legal.
func NewSet[I any](s *schema.Schema, name string, optFns ...func(o *SetOptions)) (*Set[I], error) {
	iface := reflect.TypeFor[I]()
	if iface.Kind() != reflect.Interface {
		return nil, fmt.Errorf("capability: set %q over %s: %w", name, iface, ErrNotInterface)
	}
	if s == nil {
		return nil, fmt.Errorf("capability: set %q: schema must not be nil", name)
	}

	opts := SetOptions{}
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}

	set := &Set[I]{
		name:     name,
		schemaID: s.ID(),
		mask:     NewMask(),
	}

	for _, e := range s.Entries() {
		if !reflect.PointerTo(e.ValueType()).Implements(iface) {
			continue
		}
		if opts.Filter != nil && !opts.Filter(e) {
			continue
		}
		set.indices = append(set.indices, e.Index())
		set.mask.Add(e.Index())
	}

	return set, nil
}

// MustNewSet is like NewSet but panics on error.
func MustNewSet[I any](s *schema.Schema, name string, optFns ...func(o *SetOptions)) *Set[I] {
	set, err := NewSet[I](s, name, optFns...)
	if err != nil {
		panic(err)
	}
	return set
}

// Name returns the set's name.
func (s *Set[I]) Name() string { return s.name }

// SchemaID returns the identity of the schema the set was built from.
func (s *Set[I]) SchemaID() uuid.UUID { return s.schemaID }

// Len returns the number of satisfying fixed entries.
func (s *Set[I]) Len() int { return len(s.indices) }

// Indices returns the satisfying slot indices in ascending order.
func (s *Set[I]) Indices() []int {
	out := make([]int, len(s.indices))
	copy(out, s.indices)
	return out
}

// Iterator returns an iterator over the satisfying slot indices in
// ascending order.
func (s *Set[I]) Iterator() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, i := range s.indices {
			if !yield(i) {
				return
			}
		}
	}
}

// Mask returns a copy of the set's membership mask.
func (s *Set[I]) Mask() *Mask {
	return s.mask.Clone()
}

// And returns a refined set whose membership is intersected with the given
// mask. Refinement only shrinks membership, so the result stays sound for I.
func (s *Set[I]) And(m *Mask) *Set[I] {
	return s.derive(func(nm *Mask) { nm.And(m) })
}

// AndNot returns a refined set excluding the given mask's indices.
func (s *Set[I]) AndNot(m *Mask) *Set[I] {
	return s.derive(func(nm *Mask) { nm.AndNot(m) })
}

func (s *Set[I]) derive(apply func(*Mask)) *Set[I] {
	nm := s.mask.Clone()
	apply(nm)

	out := &Set[I]{
		name:     s.name,
		schemaID: s.schemaID,
		mask:     nm,
	}
	for i := range nm.Iterator() {
		out.indices = append(out.indices, i)
	}

	return out
}
