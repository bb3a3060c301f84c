package capability

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Mask is a set of fixed slot indices backed by a Roaring bitmap.
// Capability sets expose their membership as a Mask; masks combine with
// And/Or/AndNot to drive refined iteration and bulk slot operations.
type Mask struct {
	rb *roaring.Bitmap
}

// NewMask creates a new empty mask.
func NewMask() *Mask {
	return &Mask{
		rb: roaring.New(),
	}
}

// Add adds a slot index to the mask.
func (m *Mask) Add(index int) {
	m.rb.Add(uint32(index))
}

// Remove removes a slot index from the mask.
func (m *Mask) Remove(index int) {
	m.rb.Remove(uint32(index))
}

// Contains checks if a slot index is in the mask.
func (m *Mask) Contains(index int) bool {
	return m.rb.Contains(uint32(index))
}

// IsEmpty returns true if the mask is empty.
func (m *Mask) IsEmpty() bool {
	return m.rb.IsEmpty()
}

// Cardinality returns the number of slot indices in the mask.
func (m *Mask) Cardinality() uint64 {
	return m.rb.GetCardinality()
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	return &Mask{
		rb: m.rb.Clone(),
	}
}

// Iterator returns an iterator over the mask in ascending index order.
func (m *Mask) Iterator() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := m.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// And computes the intersection with another mask in place.
func (m *Mask) And(other *Mask) {
	m.rb.And(other.rb)
}

// Or computes the union with another mask in place.
func (m *Mask) Or(other *Mask) {
	m.rb.Or(other.rb)
}

// AndNot removes another mask's indices in place.
func (m *Mask) AndNot(other *Mask) {
	m.rb.AndNot(other.rb)
}

// Clear removes all indices from the mask.
func (m *Mask) Clear() {
	m.rb.Clear()
}
