// Package container implements container data structures.
package container

import "iter"

// OrderedMap is a map that preserves insertion order. Get, Set and Delete
// are O(1); All walks entries oldest first. Replacing an existing key keeps
// its original position. Not safe for concurrent use.
type OrderedMap[K comparable, V any] struct {
	nodes map[K]*node[K, V]
	head  *node[K, V]
	tail  *node[K, V]
}

type node[K comparable, V any] struct {
	key  K
	val  V
	prev *node[K, V]
	next *node[K, V]
}

// NewOrderedMap creates a new empty ordered map.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		nodes: make(map[K]*node[K, V]),
	}
}

// Get retrieves the value stored under the given key.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	n, ok := m.nodes[key]
	if !ok {
		var zero V
		return zero, false
	}
	return n.val, true
}

// Set stores a value under the given key, appending new keys to the end of
// the order. It returns the previous value when the key was present.
func (m *OrderedMap[K, V]) Set(key K, val V) (V, bool) {
	if n, ok := m.nodes[key]; ok {
		prev := n.val
		n.val = val
		return prev, true
	}

	n := &node[K, V]{key: key, val: val, prev: m.tail}
	if m.tail != nil {
		m.tail.next = n
	} else {
		m.head = n
	}
	m.tail = n
	m.nodes[key] = n

	var zero V
	return zero, false
}

// Delete removes the entry stored under the given key and returns its
// value. The removed node keeps its own links so an in-flight traversal
// can step past it.
func (m *OrderedMap[K, V]) Delete(key K) (V, bool) {
	n, ok := m.nodes[key]
	if !ok {
		var zero V
		return zero, false
	}

	if n.prev != nil {
		n.prev.next = n.next
	} else {
		m.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		m.tail = n.prev
	}
	delete(m.nodes, key)

	return n.val, true
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int {
	return len(m.nodes)
}

// Clear removes all entries.
func (m *OrderedMap[K, V]) Clear() {
	m.nodes = make(map[K]*node[K, V])
	m.head = nil
	m.tail = nil
}

// All returns an iterator over entries in insertion order. Entries
// deleted during the traversal are not yielded.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := m.head; n != nil; n = n.next {
			// The walk may be standing on a deleted node and stepping
			// through its frozen links; yield only nodes still in the map.
			if live, ok := m.nodes[n.key]; !ok || live != n {
				continue
			}
			if !yield(n.key, n.val) {
				return
			}
		}
	}
}
