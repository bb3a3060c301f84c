package slotgo

import (
	"iter"
	"reflect"
	"time"

	"github.com/hupe1980/slotgo/capability"
)

// Iter returns a lazy view over every slot whose stored type satisfies
// the capability set: fixed slots in ascending slot-index order, then
// dynamic entries in insertion order. Fixed entries yield their stable
// schema slot index; a dynamic entry yields the fixed slot count plus its
// position in the current insertion order, so dynamic indices are only
// meaningful within one pass.
//
// Each call produces a fresh single-use sequence observing live registry
// state. Handles are live: mutation through one hits the slot.
//
//	for idx, p := range slotgo.Iter(r, printables) {
//	    if idx >= r.Len() {
//	        break // dynamic tail reached
//	    }
//	    fmt.Println(p.Print())
//	}
func Iter[I any](r *Registry, set *capability.Set[I]) iter.Seq2[int, I] {
	return func(yield func(int, I) bool) {
		start := time.Now()
		r.ensureOpen()
		r.ensureKey("iterate", set.SchemaID())

		yielded := 0
		defer func() {
			r.metrics.RecordIterate(yielded, time.Since(start))
			r.logger.LogIterate(set.Name(), yielded)
		}()

		for idx := range set.Iterator() {
			h := r.slots[idx].(I)
			yielded++
			if !yield(idx, h) {
				return
			}
		}

		if r.dynamic == nil {
			return
		}
		base := len(r.slots)
		ordinal := 0
		for _, boxed := range r.dynamic.All() {
			if h, ok := boxed.(I); ok {
				yielded++
				if !yield(base+ordinal, h) {
					return
				}
			}
			ordinal++
		}
	}
}

// IterFixed is Iter restricted to the fixed section.
func IterFixed[I any](r *Registry, set *capability.Set[I]) iter.Seq2[int, I] {
	return func(yield func(int, I) bool) {
		start := time.Now()
		r.ensureOpen()
		r.ensureKey("iterate", set.SchemaID())

		yielded := 0
		defer func() {
			r.metrics.RecordIterate(yielded, time.Since(start))
			r.logger.LogIterate(set.Name(), yielded)
		}()

		for idx := range set.Iterator() {
			h := r.slots[idx].(I)
			yielded++
			if !yield(idx, h) {
				return
			}
		}
	}
}

// Collect eagerly drains Iter into a slice of handles.
func Collect[I any](r *Registry, set *capability.Set[I]) []I {
	out := make([]I, 0, set.Len())
	for _, h := range Iter(r, set) {
		out = append(out, h)
	}
	return out
}

// ResetMask restores every fixed slot in the mask to its default by
// re-running entry constructors. Indices outside the schema are ignored.
// It returns the number of slots reset.
func (r *Registry) ResetMask(m *capability.Mask) int {
	start := time.Now()
	r.ensureOpen()

	count := 0
	for idx := range m.Iterator() {
		e, ok := r.schema.EntryAt(idx)
		if !ok {
			continue
		}
		// Copy through the existing box so live handles observe the reset.
		fresh := e.NewValue()
		reflect.ValueOf(r.slots[idx]).Elem().Set(reflect.ValueOf(fresh).Elem())
		count++
	}

	r.metrics.RecordReset(count, time.Since(start))
	r.logger.LogReset(count)

	return count
}
