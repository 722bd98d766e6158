package skiplist

import (
	"github.com/skipor/gostl"
	"github.com/skipor/gostl/pair"
)

// iterator walks the level-0 chain in ascending key order. A nil cur
// denotes end(). SkipList supports only forward iteration: Prev always fails with UnsupportedOperation.
type iterator[K, V any] struct {
	cur *node[K, V]
}

var _ gostl.Iterator[int, int] = (*iterator[int, int])(nil)

func (it *iterator[K, V]) Valid() bool {
	return it.cur != nil
}

func (it *iterator[K, V]) Next() error {
	if it.cur == nil {
		return gostl.NewOutOfBounds("iterator already at end")
	}
	it.cur = it.cur.forward[0]
	return nil
}

func (it *iterator[K, V]) Prev() error {
	return gostl.NewUnsupportedOperation("skiplist iterator does not support Prev")
}

func (it *iterator[K, V]) Get() (pair.Pair[K, V], error) {
	if it.cur == nil {
		var zero pair.Pair[K, V]
		return zero, gostl.NewOutOfBounds("iterator not positioned at an element")
	}
	return it.cur.pair, nil
}

// Begin returns an iterator positioned at the smallest key, or at end()
// if the list is empty.
func (m *Map[K, V]) Begin() gostl.Iterator[K, V] {
	return &iterator[K, V]{cur: m.head.forward[0]}
}

// End returns an iterator positioned one-past-the-largest.
func (m *Map[K, V]) End() gostl.Iterator[K, V] {
	return &iterator[K, V]{}
}

// Find returns an iterator positioned at key, or at End() if absent.
func (m *Map[K, V]) Find(key K) gostl.Iterator[K, V] {
	return &iterator[K, V]{cur: m.findNode(key)}
}
