package skiplist

import "github.com/skipor/gostl"

// Set is the keys-only counterpart of Map, instantiated with V =
// struct{}.
type Set[K any] struct {
	m *Map[K, struct{}]
}

// NewSet creates an empty Set ordered by cmp.
func NewSet[K any](cmp gostl.Comparator[K]) *Set[K] {
	return &Set[K]{m: New[K, struct{}](cmp)}
}

// Len returns the number of elements.
func (s *Set[K]) Len() int { return s.m.Len() }

// Contains reports whether key is a member.
func (s *Set[K]) Contains(key K) bool {
	return s.m.ContainsKey(key)
}

// Insert adds key, reporting false if it was already a member.
func (s *Set[K]) Insert(key K) (bool, error) {
	return s.m.Insert(key, struct{}{})
}

// Erase removes key, reporting whether it was a member.
func (s *Set[K]) Erase(key K) (bool, error) {
	return s.m.Erase(key)
}

// SetIterator wraps a Map[K,struct{}] iterator, surfacing only the key.
type SetIterator[K any] struct {
	it gostl.Iterator[K, struct{}]
}

func (it *SetIterator[K]) Valid() bool { return it.it.Valid() }
func (it *SetIterator[K]) Next() error { return it.it.Next() }
func (it *SetIterator[K]) Prev() error { return it.it.Prev() }

// Key returns the element at the iterator's current position.
func (it *SetIterator[K]) Key() (K, error) {
	p, err := it.it.Get()
	if err != nil {
		var zero K
		return zero, err
	}
	return p.Key(), nil
}

// Begin returns an iterator positioned at the smallest element.
func (s *Set[K]) Begin() *SetIterator[K] {
	return &SetIterator[K]{it: s.m.Begin()}
}

// End returns an iterator positioned one-past-the-largest.
func (s *Set[K]) End() *SetIterator[K] {
	return &SetIterator[K]{it: s.m.End()}
}

// Find returns an iterator positioned at key, or at End() if absent.
func (s *Set[K]) Find(key K) *SetIterator[K] {
	return &SetIterator[K]{it: s.m.Find(key)}
}
