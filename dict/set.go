package dict

import "segview"

// Set is a set of views under a fixed comparer, built on Map.
type Set struct {
	m *Map[struct{}]
}

// NewSet creates an empty set with cmp as its key strategy.
func NewSet(cmp segview.Comparer) *Set {
	return &Set{m: New[struct{}](cmp)}
}

// Len returns the number of members.
func (s *Set) Len() int {
	return s.m.Len()
}

// Has reports whether a member equal to k exists.
func (s *Set) Has(k segview.View) bool {
	_, ok := s.m.Get(k)
	return ok
}

// Add inserts k, replacing an equal member if present. Reports whether k was
// new.
func (s *Set) Add(k segview.View) bool {
	had := s.Has(k)
	s.m.Set(k, struct{}{})
	return !had
}

// Remove deletes the member equal to k and reports whether one existed.
func (s *Set) Remove(k segview.View) bool {
	return s.m.Delete(k)
}

// Range visits all members in unspecified order. Iteration stops when f
// returns false.
func (s *Set) Range(f func(k segview.View) bool) {
	s.m.Range(func(k segview.View, _ struct{}) bool {
		return f(k)
	})
}
