package slotgo

import (
	"reflect"
	"time"
)

// Insert adds a value of type T to the dynamic section, replacing and
// returning a previous value of the exact same type. Misuse is fatal:
// inserting a type that owns a fixed slot or marker key identity,
// inserting without a dynamic section, and inserting into a closed
// registry all panic after recording the failure. Silent shadowing of a
// fixed slot would break the section partition.
func Insert[T any](r *Registry, v T) (prev T, replaced bool) {
	start := time.Now()
	r.ensureOpen()

	t := reflect.TypeFor[T]()
	if _, ok := r.schema.Lookup(t); ok {
		err := &PartitionError{Op: "insert", Type: t}
		r.metrics.RecordInsert(time.Since(start), err)
		r.logger.LogInsert(t.String(), false, err)
		panic(err)
	}
	if r.dynamic == nil {
		r.metrics.RecordInsert(time.Since(start), ErrNoDynamicSection)
		r.logger.LogInsert(t.String(), false, ErrNoDynamicSection)
		panic(ErrNoDynamicSection)
	}

	boxed, ok := r.dynamic.Set(t, &v)
	if ok {
		prev = *(boxed.(*T))
		replaced = true
	}
	r.metrics.RecordInsert(time.Since(start), nil)
	r.logger.LogInsert(t.String(), replaced, nil)

	return prev, replaced
}

// Remove deletes the dynamic entry of type T and returns its value.
// Absence is data: a missing entry, or a schema without a dynamic
// section, reports false. Removing a fixed type is fatal; fixed slots are
// never empty, Reset is the tool for restoring them.
func Remove[T any](r *Registry) (T, bool) {
	start := time.Now()
	r.ensureOpen()

	var zero T
	t := reflect.TypeFor[T]()
	if _, ok := r.schema.Lookup(t); ok {
		err := &PartitionError{Op: "remove", Type: t}
		r.metrics.RecordRemove(time.Since(start), err)
		r.logger.LogRemove(t.String(), false, err)
		panic(err)
	}
	if r.dynamic == nil {
		r.metrics.RecordRemove(time.Since(start), nil)
		r.logger.LogRemove(t.String(), false, nil)
		return zero, false
	}

	boxed, ok := r.dynamic.Delete(t)
	r.metrics.RecordRemove(time.Since(start), nil)
	r.logger.LogRemove(t.String(), ok, nil)
	if !ok {
		return zero, false
	}

	return *(boxed.(*T)), true
}

// Has reports whether the dynamic section currently holds a value of type
// T. Always false for fixed types and for schemas without a dynamic
// section.
func Has[T any](r *Registry) bool {
	r.ensureOpen()

	if r.dynamic == nil {
		return false
	}
	_, ok := r.dynamic.Get(reflect.TypeFor[T]())
	return ok
}
