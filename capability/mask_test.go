package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMask(t *testing.T) {
	t.Run("AddContainsRemove", func(t *testing.T) {
		m := NewMask()
		assert.True(t, m.IsEmpty())

		m.Add(0)
		m.Add(4)
		m.Add(2)

		assert.True(t, m.Contains(0))
		assert.True(t, m.Contains(2))
		assert.True(t, m.Contains(4))
		assert.False(t, m.Contains(1))
		assert.Equal(t, uint64(3), m.Cardinality())

		m.Remove(2)
		assert.False(t, m.Contains(2))
		assert.Equal(t, uint64(2), m.Cardinality())
	})

	t.Run("IteratorAscending", func(t *testing.T) {
		m := NewMask()
		m.Add(5)
		m.Add(1)
		m.Add(3)

		var got []int
		for i := range m.Iterator() {
			got = append(got, i)
		}
		assert.Equal(t, []int{1, 3, 5}, got)
	})

	t.Run("IteratorEarlyBreak", func(t *testing.T) {
		m := NewMask()
		for i := 0; i < 10; i++ {
			m.Add(i)
		}

		var got []int
		for i := range m.Iterator() {
			got = append(got, i)
			if len(got) == 3 {
				break
			}
		}
		assert.Equal(t, []int{0, 1, 2}, got)
	})

	t.Run("CloneIsDeep", func(t *testing.T) {
		m := NewMask()
		m.Add(1)

		c := m.Clone()
		c.Add(2)

		assert.True(t, c.Contains(2))
		assert.False(t, m.Contains(2))
	})

	t.Run("Algebra", func(t *testing.T) {
		a := NewMask()
		a.Add(1)
		a.Add(2)
		a.Add(3)

		b := NewMask()
		b.Add(2)
		b.Add(3)
		b.Add(4)

		and := a.Clone()
		and.And(b)
		require.Equal(t, uint64(2), and.Cardinality())
		assert.True(t, and.Contains(2))
		assert.True(t, and.Contains(3))

		or := a.Clone()
		or.Or(b)
		assert.Equal(t, uint64(4), or.Cardinality())

		andNot := a.Clone()
		andNot.AndNot(b)
		require.Equal(t, uint64(1), andNot.Cardinality())
		assert.True(t, andNot.Contains(1))
	})

	t.Run("Clear", func(t *testing.T) {
		m := NewMask()
		m.Add(1)
		m.Add(2)

		m.Clear()
		assert.True(t, m.IsEmpty())
		assert.Equal(t, uint64(0), m.Cardinality())
	})
}
