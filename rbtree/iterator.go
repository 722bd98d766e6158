package rbtree

import (
	"github.com/skipor/gostl"
	"github.com/skipor/gostl/pair"
)

// iterator walks a Map in key order via the node's successor/predecessor
// links. A nil cur denotes end(): Next from end() returns OutOfBounds and
// stays invalid, Prev from end() moves to the maximum node, mirroring a
// reverse-from-end() step.
type iterator[K, V any] struct {
	m   *Map[K, V]
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
	it.cur = successor(it.cur)
	return nil
}

func (it *iterator[K, V]) Prev() error {
	if it.cur == nil {
		it.cur = maxNode(it.m.root)
		if it.cur == nil {
			return gostl.NewOutOfBounds("iterator over empty tree")
		}
		return nil
	}
	p := predecessor(it.cur)
	if p == nil {
		return gostl.NewOutOfBounds("iterator already at begin")
	}
	it.cur = p
	return nil
}

func (it *iterator[K, V]) Get() (pair.Pair[K, V], error) {
	if it.cur == nil {
		var zero pair.Pair[K, V]
		return zero, gostl.NewOutOfBounds("iterator not positioned at an element")
	}
	return it.cur.pair, nil
}

// Begin returns an iterator positioned at the minimum key, or at end() if
// the map is empty.
func (m *Map[K, V]) Begin() gostl.Iterator[K, V] {
	return &iterator[K, V]{m: m, cur: minNode(m.root)}
}

// End returns an iterator positioned one-past-the-maximum.
func (m *Map[K, V]) End() gostl.Iterator[K, V] {
	return &iterator[K, V]{m: m}
}

// Find returns an iterator positioned at key, or at end() if absent.
func (m *Map[K, V]) Find(key K) gostl.Iterator[K, V] {
	return &iterator[K, V]{m: m, cur: m.findNode(key)}
}
