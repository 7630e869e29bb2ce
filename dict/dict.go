/*
Package dict provides a hash map keyed by zero-copy string views.

Go's built-in map cannot key on segview views: equality has to follow the
cross-variant ordinal contract rather than ==. The Map here takes a
segview.Comparer as its key strategy, so a View1 key and a View2 key that
spell the same characters address the same entry, and switching to
segview.OrdinalFold makes keys ASCII-case-insensitive.
*/
package dict

import "segview"

type entry[V any] struct {
	key segview.View
	val V
}

// Map is a hash map from views to values under a fixed comparer.
//
// Map is not safe for concurrent mutation. Keys are stored as-is and borrow
// their text, so every key's source must stay alive and unmutated for the
// lifetime of the map.
type Map[V any] struct {
	cmp     segview.Comparer
	buckets map[uint32][]entry[V]
	size    int
}

// New creates an empty map with cmp as its key strategy.
func New[V any](cmp segview.Comparer) *Map[V] {
	return &Map[V]{
		cmp:     cmp,
		buckets: make(map[uint32][]entry[V]),
	}
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return m.size
}

// Get returns the value stored under a key equal to k, and whether one
// exists.
func (m *Map[V]) Get(k segview.View) (V, bool) {
	for _, e := range m.buckets[m.cmp.Hash(k)] {
		if m.cmp.Equals(e.key, k) {
			return e.val, true
		}
	}
	var zero V
	return zero, false
}

// Set stores v under k. If a key equal to k already exists, its value is
// overwritten (last write wins) and the stored key is replaced by k.
func (m *Map[V]) Set(k segview.View, v V) {
	h := m.cmp.Hash(k)
	bucket := m.buckets[h]
	for i, e := range bucket {
		if m.cmp.Equals(e.key, k) {
			bucket[i] = entry[V]{key: k, val: v}
			return
		}
	}
	m.buckets[h] = append(bucket, entry[V]{key: k, val: v})
	m.size++
}

// Delete removes the entry stored under a key equal to k and reports whether
// one existed.
func (m *Map[V]) Delete(k segview.View) bool {
	h := m.cmp.Hash(k)
	bucket := m.buckets[h]
	for i, e := range bucket {
		if m.cmp.Equals(e.key, k) {
			last := len(bucket) - 1
			bucket[i] = bucket[last]
			bucket = bucket[:last]
			if len(bucket) == 0 {
				delete(m.buckets, h)
			} else {
				m.buckets[h] = bucket
			}
			m.size--
			return true
		}
	}
	return false
}

// Range visits all entries in unspecified order. Iteration stops when f
// returns false. The map must not be mutated during Range.
func (m *Map[V]) Range(f func(k segview.View, v V) bool) {
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			if !f(e.key, e.val) {
				return
			}
		}
	}
}
