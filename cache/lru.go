package cache

import (
	"fmt"

	"github.com/skipor/gostl"
	"github.com/skipor/gostl/hashtable"
)

// Sizer reports how much capacity a (key, value) pair consumes. The
// default, Count, charges exactly 1 per entry (pure LRU-by-count); a
// caller tracking payload size can charge bytes instead.
type Sizer[K comparable, V any] func(key K, value V) int64

// Count is the default Sizer: every entry costs exactly 1.
func Count[K comparable, V any](K, V) int64 { return 1 }

// node is the intrusive doubly-linked list entry wrapping one (key,
// value) pair. A real entry always sits between the lru's fakeHead and
// fakeTail sentinels, which removes nil checks from link/unlink code.
type node[K comparable, V any] struct {
	key   K
	value V
	size  int64
	prev  *node[K, V]
	next  *node[K, V]
}

// link joins a and b as adjacent list neighbors.
func link[K comparable, V any](a, b *node[K, V]) {
	a.next, b.prev = b, a
}

// LRU is a bounded cache evicting the least-recently-used entries first
// once the total Sizer-weighted size exceeds capacity. Lookup is O(1)
// through an internal hashtable.Map keyed on K; recency order is tracked
// by the intrusive list (fakeHead/fakeTail sentinels, a
// pushBack-to-tail/evict-from-head discipline).
//
// Invariants:
//   - entries reachable from fakeHead to fakeTail form a valid doubly
//     linked list;
//   - the index has exactly one entry per node currently linked;
//   - total equals the sum of every linked node's Sizer-weighted size.
type LRU[K comparable, V any] struct {
	index    *hashtable.Map[K, *node[K, V]]
	fakeHead *node[K, V]
	fakeTail *node[K, V]
	total    int64
	capacity int64
	sizer    Sizer[K, V]
}

var _ Cache[int, int] = (*LRU[int, int])(nil)

// NewLRU creates an LRU bounded by capacity, charging Count (1 per
// entry) by default. hash is the key hasher handed to the backing
// hashtable.Map.
func NewLRU[K comparable, V any](capacity int64, hash gostl.Hasher[K]) *LRU[K, V] {
	return NewLRUWithSizer[K, V](capacity, hash, Count[K, V])
}

// NewLRUWithSizer creates an LRU bounded by capacity under a custom
// Sizer, e.g. one that charges by estimated byte size instead of by
// entry count.
func NewLRUWithSizer[K comparable, V any](capacity int64, hash gostl.Hasher[K], sizer Sizer[K, V]) *LRU[K, V] {
	head, tail := &node[K, V]{}, &node[K, V]{}
	link(head, tail)
	return &LRU[K, V]{
		index:    hashtable.New[K, *node[K, V]](hash),
		fakeHead: head,
		fakeTail: tail,
		capacity: capacity,
		sizer:    sizer,
	}
}

// Len returns the number of entries currently cached.
func (l *LRU[K, V]) Len() int { return l.index.Len() }

func (l *LRU[K, V]) head() *node[K, V] { return l.fakeHead.next }

// Get returns the value stored for key, promoting it to most-recently-
// used on a hit.
func (l *LRU[K, V]) Get(key K) (V, bool) {
	n, err := l.index.Get(key)
	if err != nil {
		var zero V
		return zero, false
	}
	l.detach(n)
	l.pushBack(n)
	return n.value, true
}

// Set inserts or overwrites key's value and evicts least-recently-used
// entries until the total weighted size fits within capacity.
func (l *LRU[K, V]) Set(key K, value V) {
	if existing, err := l.index.Get(key); err == nil {
		l.total -= existing.size
		l.detach(existing)
		existing.value = value
		existing.size = l.sizer(key, value)
		l.total += existing.size
		l.pushBack(existing)
		l.shrink()
		return
	}

	n := &node[K, V]{key: key, value: value, size: l.sizer(key, value)}
	l.total += n.size
	_, _ = l.index.Insert(key, n)
	l.pushBack(n)
	l.shrink()
}

// Delete removes key, reporting whether it was present.
func (l *LRU[K, V]) Delete(key K) bool {
	n, err := l.index.Get(key)
	if err != nil {
		return false
	}
	l.total -= n.size
	l.detach(n)
	ok, _ := l.index.Erase(key)
	return ok
}

// shrink evicts from the head (least-recently-used) end until total fits
// within capacity. There is no TTL or expiry here: this cache is a pure
// single-threaded, in-memory eviction policy.
func (l *LRU[K, V]) shrink() {
	for l.total > l.capacity && l.head() != l.fakeTail {
		evict := l.head()
		l.total -= evict.size
		l.detach(evict)
		_, _ = l.index.Erase(evict.key)
	}
}

func (l *LRU[K, V]) pushBack(n *node[K, V]) {
	link(l.fakeTail.prev, n)
	link(n, l.fakeTail)
}

func (l *LRU[K, V]) detach(n *node[K, V]) {
	link(n.prev, n.next)
	n.prev = nil
	n.next = nil
}

func (l *LRU[K, V]) String() string {
	return fmt.Sprintf("LRU{len=%d, total=%d, capacity=%d}", l.Len(), l.total, l.capacity)
}
