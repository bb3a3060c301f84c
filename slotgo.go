package slotgo

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/slotgo/internal/container"
	"github.com/hupe1980/slotgo/schema"
)

// Registry is a typed slot registry: one default-initialized slot per
// schema entry with keyed O(1) access, plus an optional dynamic section
// for types inserted at run time.
//
// A Registry performs no internal locking. Callers that share one across
// goroutines must synchronize externally. Handles and views borrow from
// the registry and must not outlive it.
type Registry struct {
	id      uuid.UUID
	name    string
	schema  *schema.Schema
	slots   []any // slots[i] holds a *V for the entry at index i
	dynamic *container.OrderedMap[reflect.Type, any]
	metrics MetricsCollector
	logger  *Logger
	closed  bool
}

// New constructs a registry from a sealed schema: every fixed slot holds
// its entry's default value and the dynamic section, when the schema
// enables one, starts empty. Construction is atomic; no partially built
// registry is ever observable.
func New(s *schema.Schema, optFns ...Option) (*Registry, error) {
	start := time.Now()
	if s == nil {
		return nil, fmt.Errorf("slotgo: schema must not be nil")
	}

	opts := applyOptions(optFns)

	r := &Registry{
		id:      uuid.New(),
		name:    opts.name,
		schema:  s,
		slots:   make([]any, s.Len()),
		metrics: opts.metricsCollector,
	}
	r.logger = opts.logger.WithRegistry(r.name, r.id.String())

	for i, e := range s.Entries() {
		r.slots[i] = e.NewValue()
	}
	if s.Dynamic() {
		r.dynamic = container.NewOrderedMap[reflect.Type, any]()
	}

	r.metrics.RecordBuild(s.Len(), time.Since(start))
	r.logger.LogBuild(s.Name(), s.Len(), s.Dynamic())

	return r, nil
}

// MustNew is like New but panics on error.
func MustNew(s *schema.Schema, optFns ...Option) *Registry {
	r, err := New(s, optFns...)
	if err != nil {
		panic(err)
	}
	return r
}

// Schema returns the schema the registry was built from.
func (r *Registry) Schema() *schema.Schema { return r.schema }

// Name returns the optional registry name.
func (r *Registry) Name() string { return r.name }

// ID returns the registry's unique identity.
func (r *Registry) ID() uuid.UUID { return r.id }

// Len returns the number of fixed slots.
func (r *Registry) Len() int { return len(r.slots) }

// DynamicLen returns the number of dynamic entries, zero when the schema
// has no dynamic section.
func (r *Registry) DynamicLen() int {
	if r.dynamic == nil {
		return 0
	}
	return r.dynamic.Len()
}

// Closed reports whether Close has been called.
func (r *Registry) Closed() bool { return r.closed }

func (r *Registry) ensureOpen() {
	if r.closed {
		panic(ErrClosed)
	}
}

func (r *Registry) ensureKey(op string, schemaID uuid.UUID) {
	if schemaID != r.schema.ID() {
		panic(&KeyMismatchError{
			Op:       op,
			Want:     r.schema.ID(),
			Got:      schemaID,
			Registry: r.name,
		})
	}
}

func slotFor[T any](r *Registry, op string, k schema.Key[T]) *T {
	r.ensureOpen()
	r.ensureKey(op, k.SchemaID())
	return r.slots[k.Index()].(*T)
}

// Get returns the live handle for the slot the key resolves to. The
// handle borrows from the registry and must not outlive it; mutation
// through it is visible to every other holder. No error path exists for
// a key minted from the registry's own schema.
func Get[T any](r *Registry, k schema.Key[T]) *T {
	return slotFor(r, "get", k)
}

// Set overwrites the slot value in place.
func Set[T any](r *Registry, k schema.Key[T], v T) {
	*slotFor(r, "set", k) = v
}

// Swap overwrites the slot value and returns the previous one.
func Swap[T any](r *Registry, k schema.Key[T], v T) T {
	p := slotFor(r, "swap", k)
	prev := *p
	*p = v
	return prev
}

// Reset restores the slot to its entry's default by re-running the
// constructor. Handles issued earlier stay valid and observe the reset.
func Reset[T any](r *Registry, k schema.Key[T]) {
	start := time.Now()
	p := slotFor(r, "reset", k)
	e, _ := r.schema.EntryAt(k.Index())
	*p = *(e.NewValue().(*T))
	r.metrics.RecordReset(1, time.Since(start))
	r.logger.LogReset(1)
}

// Lookup probes for a value of exactly T: the fixed side table first
// (plain entries only), then the dynamic section. Absence is data, never
// an error.
func Lookup[T any](r *Registry) (*T, bool) {
	r.ensureOpen()

	t := reflect.TypeFor[T]()
	if e, ok := r.schema.Lookup(t); ok {
		if e.ValueType() != t {
			// T is a marker key identity, not a stored value type.
			return nil, false
		}
		return r.slots[e.Index()].(*T), true
	}

	if r.dynamic == nil {
		return nil, false
	}
	boxed, ok := r.dynamic.Get(t)
	if !ok {
		return nil, false
	}
	return boxed.(*T), true
}

// Store routes a value by its type: a fixed plain entry is overwritten in
// place, anything else goes to the dynamic section when the schema has
// one. The returned previous value is meaningful when replaced is true;
// fixed slots always replace since they are never empty.
func Store[T any](r *Registry, v T) (prev T, replaced bool, err error) {
	start := time.Now()
	r.ensureOpen()

	t := reflect.TypeFor[T]()
	if e, ok := r.schema.Lookup(t); ok {
		if e.ValueType() != t {
			err = fmt.Errorf("slotgo: store %s: registered as a marker key for %s: %w", t, e.ValueType(), ErrUnregisteredType)
			r.metrics.RecordInsert(time.Since(start), err)
			r.logger.LogInsert(t.String(), false, err)
			return prev, false, err
		}
		p := r.slots[e.Index()].(*T)
		prev = *p
		*p = v
		r.metrics.RecordInsert(time.Since(start), nil)
		r.logger.LogInsert(t.String(), true, nil)
		return prev, true, nil
	}

	if r.dynamic == nil {
		err = fmt.Errorf("slotgo: store %s: no fixed slot and no dynamic section: %w", t, ErrUnregisteredType)
		r.metrics.RecordInsert(time.Since(start), err)
		r.logger.LogInsert(t.String(), false, err)
		return prev, false, err
	}

	boxed, ok := r.dynamic.Set(t, &v)
	if ok {
		prev = *(boxed.(*T))
		replaced = true
	}
	r.metrics.RecordInsert(time.Since(start), nil)
	r.logger.LogInsert(t.String(), replaced, nil)
	return prev, replaced, nil
}
