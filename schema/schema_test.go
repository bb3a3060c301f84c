package schema

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct{ Hits int64 }

type flag struct{ Enabled bool }

type gauge struct{ Level float64 }

type metricsKey struct{}

func TestBuilder(t *testing.T) {
	t.Run("RegisterAssignsDenseIndices", func(t *testing.T) {
		b := NewBuilder()
		require.NoError(t, Register[counter](b))
		require.NoError(t, Register[flag](b))
		require.NoError(t, Register[gauge](b))

		s, err := b.Build()
		require.NoError(t, err)

		require.Equal(t, 3, s.Len())
		for i, e := range s.Entries() {
			assert.Equal(t, i, e.Index())
		}

		e, ok := s.Lookup(reflect.TypeFor[flag]())
		require.True(t, ok)
		assert.Equal(t, 1, e.Index())
		assert.Equal(t, reflect.TypeFor[flag](), e.KeyType())
		assert.Equal(t, reflect.TypeFor[flag](), e.ValueType())
	})

	t.Run("DuplicateTypeRejected", func(t *testing.T) {
		b := NewBuilder()
		require.NoError(t, Register[counter](b))

		err := Register[counter](b)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateType)
	})

	t.Run("DuplicateMarkerRejected", func(t *testing.T) {
		b := NewBuilder()
		require.NoError(t, RegisterAs[metricsKey, map[string]uint64](b))

		err := RegisterAs[metricsKey, []string](b)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateType)
	})

	t.Run("MustRegisterPanicsOnDuplicate", func(t *testing.T) {
		b := NewBuilder()
		MustRegister[counter](b)

		assert.Panics(t, func() {
			MustRegister[counter](b)
		})
	})

	t.Run("RegisterAfterBuildFails", func(t *testing.T) {
		b := NewBuilder()
		require.NoError(t, Register[counter](b))
		_, err := b.Build()
		require.NoError(t, err)

		err = Register[flag](b)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSealed)
	})

	t.Run("BuildTwiceFails", func(t *testing.T) {
		b := NewBuilder()
		_, err := b.Build()
		require.NoError(t, err)

		_, err = b.Build()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSealed)
	})

	t.Run("EmptySchemaLegal", func(t *testing.T) {
		s, err := NewBuilder().EnableDynamic().Build()
		require.NoError(t, err)
		assert.Equal(t, 0, s.Len())
		assert.True(t, s.Dynamic())
	})

	t.Run("InitTypeMismatchRejected", func(t *testing.T) {
		b := NewBuilder()
		err := Register[counter](b, WithInit(func() flag { return flag{Enabled: true} }))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInitMismatch)
	})

	t.Run("NamePropagation", func(t *testing.T) {
		b := NewBuilder().Named("plugins")
		require.NoError(t, Register[counter](b, WithName("hit-counter")))

		s, err := b.Build()
		require.NoError(t, err)
		assert.Equal(t, "plugins", s.Name())

		e, ok := s.EntryAt(0)
		require.True(t, ok)
		assert.Equal(t, "hit-counter", e.Name())
	})
}

func TestSchema(t *testing.T) {
	newSchema := func(t *testing.T) *Schema {
		t.Helper()
		b := NewBuilder()
		MustRegister[counter](b)
		MustRegister[flag](b)
		MustRegisterAs[metricsKey, map[string]uint64](b)
		return b.MustBuild()
	}

	t.Run("LookupPlainAndMarker", func(t *testing.T) {
		s := newSchema(t)

		e, ok := s.Lookup(reflect.TypeFor[counter]())
		require.True(t, ok)
		assert.Equal(t, reflect.TypeFor[counter](), e.ValueType())

		e, ok = s.Lookup(reflect.TypeFor[metricsKey]())
		require.True(t, ok)
		assert.Equal(t, reflect.TypeFor[map[string]uint64](), e.ValueType())

		_, ok = s.Lookup(reflect.TypeFor[gauge]())
		assert.False(t, ok)
	})

	t.Run("EntryAtBounds", func(t *testing.T) {
		s := newSchema(t)

		_, ok := s.EntryAt(-1)
		assert.False(t, ok)
		_, ok = s.EntryAt(s.Len())
		assert.False(t, ok)

		e, ok := s.EntryAt(2)
		require.True(t, ok)
		assert.Equal(t, reflect.TypeFor[metricsKey](), e.KeyType())
	})

	t.Run("DistinctIdentity", func(t *testing.T) {
		a := newSchema(t)
		b := newSchema(t)
		assert.NotEqual(t, a.ID(), b.ID())
	})

	t.Run("NewValueFreshPerCall", func(t *testing.T) {
		b := NewBuilder()
		MustRegister[counter](b, WithInit(func() counter { return counter{Hits: 7} }))
		s := b.MustBuild()

		e, ok := s.EntryAt(0)
		require.True(t, ok)

		p1 := e.NewValue().(*counter)
		p2 := e.NewValue().(*counter)
		require.NotSame(t, p1, p2)
		assert.Equal(t, int64(7), p1.Hits)
		assert.Equal(t, int64(7), p2.Hits)
	})
}

func TestKeys(t *testing.T) {
	b := NewBuilder()
	MustRegister[counter](b)
	MustRegister[flag](b)
	MustRegisterAs[metricsKey, map[string]uint64](b)
	s := b.MustBuild()

	t.Run("KeyForPlainEntry", func(t *testing.T) {
		k, err := KeyFor[flag](s)
		require.NoError(t, err)
		assert.Equal(t, 1, k.Index())
		assert.Equal(t, s.ID(), k.SchemaID())
	})

	t.Run("KeyForUnknownType", func(t *testing.T) {
		_, err := KeyFor[gauge](s)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownType)
	})

	t.Run("KeyForMarkerNeedsKeyAs", func(t *testing.T) {
		_, err := KeyFor[metricsKey](s)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownType)
	})

	t.Run("KeyAsMarkerEntry", func(t *testing.T) {
		k, err := KeyAs[metricsKey, map[string]uint64](s)
		require.NoError(t, err)
		assert.Equal(t, 2, k.Index())
	})

	t.Run("KeyAsValueTypeMismatch", func(t *testing.T) {
		_, err := KeyAs[metricsKey, []string](s)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownType)
	})

	t.Run("KeyAsUnknownMarker", func(t *testing.T) {
		_, err := KeyAs[gauge, float64](s)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownType)
	})

	t.Run("MustKeyForPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustKeyFor[gauge](s)
		})
	})

	t.Run("MustKeyAsPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustKeyAs[metricsKey, int](s)
		})
	})
}
