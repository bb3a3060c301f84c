package schema

import (
	"errors"
	"fmt"
	"maps"
	"reflect"

	"github.com/google/uuid"
)

var (
	// ErrDuplicateType is returned when a key type is registered twice.
	ErrDuplicateType = errors.New("type already registered")

	// ErrUnknownType is returned when resolving a type the schema does not hold.
	ErrUnknownType = errors.New("type not registered")

	// ErrSealed is returned when a builder is used after Build.
	ErrSealed = errors.New("builder is sealed")

	// ErrInitMismatch is returned when a custom initializer produces a
	// different type than the entry stores.
	ErrInitMismatch = errors.New("initializer type mismatch")
)

// Entry describes one registered type: its key identity, the value type
// stored in its slot, its dense slot index and its default constructor.
type Entry struct {
	keyType   reflect.Type
	valueType reflect.Type
	index     int
	name      string
	init      func() any
}

// KeyType returns the type identity the entry is registered under.
func (e Entry) KeyType() reflect.Type { return e.keyType }

// ValueType returns the type stored in the entry's slot. For plain entries
// this equals KeyType; marker-keyed entries differ.
func (e Entry) ValueType() reflect.Type { return e.valueType }

// Index returns the entry's dense slot index.
func (e Entry) Index() int { return e.index }

// Name returns the optional human-readable entry name.
func (e Entry) Name() string { return e.name }

// NewValue constructs a fresh default value for the entry's slot, returned
// as a pointer to the value type boxed in an interface.
func (e Entry) NewValue() any { return e.init() }

// RegisterOption customizes a single registration.
type RegisterOption func(*registerConfig)

type registerConfig struct {
	name     string
	init     func() any
	initType reflect.Type
}

// WithName attaches a human-readable name to the entry. Names appear in
// logs and diagnostics; they carry no lookup semantics.
func WithName(name string) RegisterOption {
	return func(c *registerConfig) {
		c.name = name
	}
}

// WithInit replaces the zero-value default with a custom initializer. The
// initializer runs once per slot at registry construction and again on
// every reset. T must match the entry's value type.
func WithInit[T any](fn func() T) RegisterOption {
	return func(c *registerConfig) {
		c.init = func() any {
			v := fn()
			return &v
		}
		c.initType = reflect.TypeFor[T]()
	}
}

// Builder accumulates an ordered list of type registrations and seals them
// into an immutable Schema. Builders are single-use: after Build succeeds,
// further registrations and builds fail with ErrSealed.
type Builder struct {
	name    string
	entries []Entry
	byKey   map[reflect.Type]int
	dynamic bool
	sealed  bool
}

// NewBuilder creates an empty schema builder.
func NewBuilder() *Builder {
	return &Builder{
		byKey: make(map[reflect.Type]int),
	}
}

// Named sets a human-readable schema name used in logs and diagnostics.
func (b *Builder) Named(name string) *Builder {
	b.name = name
	return b
}

// EnableDynamic declares that registries built from this schema carry a
// dynamic section for types inserted at run time.
func (b *Builder) EnableDynamic() *Builder {
	b.dynamic = true
	return b
}

// Register adds a plain entry storing one value of type T, keyed by T
// itself. Registration order defines slot indices.
func Register[T any](b *Builder, optFns ...RegisterOption) error {
	return register[T, T](b, optFns)
}

// MustRegister is like Register but panics on error. Intended for
// package-level wiring where a failed registration is a programming error.
func MustRegister[T any](b *Builder, optFns ...RegisterOption) {
	if err := Register[T](b, optFns...); err != nil {
		panic(err)
	}
}

// RegisterAs adds a marker-keyed entry: values of type V stored under the
// key identity K. Several entries may store the same value type as long as
// their key types differ.
func RegisterAs[K, V any](b *Builder, optFns ...RegisterOption) error {
	return register[K, V](b, optFns)
}

// MustRegisterAs is like RegisterAs but panics on error.
func MustRegisterAs[K, V any](b *Builder, optFns ...RegisterOption) {
	if err := RegisterAs[K, V](b, optFns...); err != nil {
		panic(err)
	}
}

func register[K, V any](b *Builder, optFns []RegisterOption) error {
	keyType := reflect.TypeFor[K]()
	valueType := reflect.TypeFor[V]()

	if b.sealed {
		return fmt.Errorf("schema: register %s: %w", keyType, ErrSealed)
	}

	var cfg registerConfig
	for _, fn := range optFns {
		if fn != nil {
			fn(&cfg)
		}
	}

	if cfg.initType != nil && cfg.initType != valueType {
		return fmt.Errorf("schema: register %s: initializer returns %s, slot stores %s: %w",
			keyType, cfg.initType, valueType, ErrInitMismatch)
	}

	if _, ok := b.byKey[keyType]; ok {
		return fmt.Errorf("schema: register %s: %w", keyType, ErrDuplicateType)
	}

	init := cfg.init
	if init == nil {
		init = func() any { return new(V) }
	}

	b.byKey[keyType] = len(b.entries)
	b.entries = append(b.entries, Entry{
		keyType:   keyType,
		valueType: valueType,
		index:     len(b.entries),
		name:      cfg.name,
		init:      init,
	})

	return nil
}

// Build seals the builder and returns the immutable Schema. A builder
// builds exactly once; an empty schema is legal.
func (b *Builder) Build() (*Schema, error) {
	if b.sealed {
		return nil, fmt.Errorf("schema: build: %w", ErrSealed)
	}
	b.sealed = true

	entries := make([]Entry, len(b.entries))
	copy(entries, b.entries)

	byKey := make(map[reflect.Type]int, len(b.byKey))
	maps.Copy(byKey, b.byKey)

	return &Schema{
		id:      uuid.New(),
		name:    b.name,
		entries: entries,
		byKey:   byKey,
		dynamic: b.dynamic,
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Schema is the sealed, immutable descriptor of a registry: the closed
// ordered entry list, the key-to-index side table and the dynamic section
// flag. Schemas are safe to share; every registry built from the same
// Schema has the same layout.
type Schema struct {
	id      uuid.UUID
	name    string
	entries []Entry
	byKey   map[reflect.Type]int
	dynamic bool
}

// ID returns the schema's unique identity. Keys and capability sets carry
// it so use across mismatched schemas is detectable.
func (s *Schema) ID() uuid.UUID { return s.id }

// Name returns the optional schema name.
func (s *Schema) Name() string { return s.name }

// Len returns the number of fixed entries.
func (s *Schema) Len() int { return len(s.entries) }

// Dynamic reports whether registries built from this schema carry a
// dynamic section.
func (s *Schema) Dynamic() bool { return s.dynamic }

// Lookup resolves a key type identity to its entry.
func (s *Schema) Lookup(t reflect.Type) (Entry, bool) {
	i, ok := s.byKey[t]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// EntryAt returns the entry at the given slot index.
func (s *Schema) EntryAt(index int) (Entry, bool) {
	if index < 0 || index >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[index], true
}

// Entries returns the entries in slot-index order.
func (s *Schema) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
