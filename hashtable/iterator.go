package hashtable

import (
	"github.com/skipor/gostl"
	"github.com/skipor/gostl/pair"
)

// iterator's cursor is a (bucket index, node) pair, since
// HashTable has no intrinsic key order to walk. It visits every node
// exactly once; the order is unspecified but stable between modifying
// operations, since it simply follows bucket index then chain order.
// HashTable supports only forward iteration: Prev always fails with
// UnsupportedOperation.
type iterator[K comparable, V any] struct {
	m    *Map[K, V]
	b    int
	node *node[K, V]
}

var _ gostl.Iterator[int, int] = (*iterator[int, int])(nil)

func (it *iterator[K, V]) Valid() bool {
	return it.node != nil
}

// advanceToNonEmpty moves it.b/it.node to the first node of the first
// non-empty bucket at or after it.b.
func (it *iterator[K, V]) advanceToNonEmpty() {
	for it.b < len(it.m.buckets) {
		if it.m.buckets[it.b] != nil {
			it.node = it.m.buckets[it.b]
			return
		}
		it.b++
	}
	it.node = nil
}

func (it *iterator[K, V]) Next() error {
	if it.node == nil {
		return gostl.NewOutOfBounds("iterator already at end")
	}
	if it.node.forward != nil {
		it.node = it.node.forward
		return nil
	}
	it.b++
	it.advanceToNonEmpty()
	return nil
}

func (it *iterator[K, V]) Prev() error {
	return gostl.NewUnsupportedOperation("hashtable iterator does not support Prev")
}

func (it *iterator[K, V]) Get() (pair.Pair[K, V], error) {
	if it.node == nil {
		var zero pair.Pair[K, V]
		return zero, gostl.NewOutOfBounds("iterator not positioned at an element")
	}
	return it.node.pair, nil
}

// Begin returns an iterator positioned at the first element found by
// bucket-index order, or at end() if the table is empty.
func (m *Map[K, V]) Begin() gostl.Iterator[K, V] {
	it := &iterator[K, V]{m: m}
	it.advanceToNonEmpty()
	return it
}

// End returns an iterator positioned one-past-the-last.
func (m *Map[K, V]) End() gostl.Iterator[K, V] {
	return &iterator[K, V]{m: m, b: len(m.buckets)}
}

// Find returns an iterator positioned at key, or at End() if absent.
func (m *Map[K, V]) Find(key K) gostl.Iterator[K, V] {
	n, b := m.findNode(key)
	if n == nil {
		return m.End()
	}
	return &iterator[K, V]{m: m, b: int(b), node: n}
}
