package skiplist

import (
	"math/rand"

	"github.com/skipor/gostl"
	"github.com/skipor/gostl/pair"
)

// Map is an ordered map from K to V backed by a skip list: average
// O(log n) Insert/Get/Erase under the supplied comparator, worst case
// O(n).
type Map[K, V any] struct {
	head *node[K, V] // sentinel; head.pair is unused
	size int
	less gostl.Comparator[K]
	rnd  *rand.Rand
}

// New creates an empty Map using cmp as the ascending priority predicate
// and a package-level random source seeded from the wall clock.
func New[K, V any](cmp gostl.Comparator[K]) *Map[K, V] {
	return NewWithSource[K, V](cmp, defaultSource())
}

// NewWithSource creates an empty Map whose level generation draws from r,
// so callers (notably tests) can make level assignment deterministic.
func NewWithSource[K, V any](cmp gostl.Comparator[K], r *rand.Rand) *Map[K, V] {
	return &Map[K, V]{
		head: &node[K, V]{forward: make([]*node[K, V], 1)},
		less: cmp,
		rnd:  r,
	}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.size }

// level is the list's current maximum level: the head's forward-pointer
// count.
func (m *Map[K, V]) level() int { return m.head.level() }

// search descends from the head at the top level, advancing forward
// while the next node's key strictly precedes target, recording the last
// predecessor visited at each level. preds has one entry per level
// currently in the head.
func (m *Map[K, V]) search(key K) (preds []*node[K, V], found *node[K, V]) {
	preds = make([]*node[K, V], m.level())
	cur := m.head
	for i := m.level() - 1; i >= 0; i-- {
		for cur.forward[i] != nil && m.less(cur.forward[i].pair.Key(), key) {
			cur = cur.forward[i]
		}
		preds[i] = cur
	}
	if preds[0].forward[0] != nil {
		candidate := preds[0].forward[0]
		if !m.less(key, candidate.pair.Key()) && !m.less(candidate.pair.Key(), key) {
			found = candidate
		}
	}
	return preds, found
}

func (m *Map[K, V]) findNode(key K) *node[K, V] {
	_, found := m.search(key)
	return found
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.findNode(key) != nil
}

// Get returns the value stored for key, or NoSuchElement if absent.
func (m *Map[K, V]) Get(key K) (V, error) {
	n := m.findNode(key)
	if n == nil {
		var zero V
		return zero, gostl.NewNoSuchElement("key %v not found", key)
	}
	return n.pair.Value(), nil
}

// Index is the read-only indexed-access operation from the shared
// eight-operation map interface; same contract as Get.
func (m *Map[K, V]) Index(key K) (V, error) {
	return m.Get(key)
}

// growHead extends the head's forward-pointer vector up to newLevel,
// recording the head itself as the predecessor on every newly added
// level.
func (m *Map[K, V]) growHead(newLevel int, preds []*node[K, V]) []*node[K, V] {
	for m.level() < newLevel {
		m.head.forward = append(m.head.forward, nil)
		preds = append(preds, m.head)
	}
	return preds
}

// Insert adds (key, value), returning false (no overwrite) if key is
// already present.
func (m *Map[K, V]) Insert(key K, value V) (bool, error) {
	preds, found := m.search(key)
	if found != nil {
		return false, nil
	}

	l := randomLevel(m.rnd)
	if l > m.level() {
		preds = m.growHead(l, preds)
	}

	n := &node[K, V]{pair: pair.New(key, value), forward: make([]*node[K, V], l)}
	for i := 0; i < l; i++ {
		n.forward[i] = preds[i].forward[i]
		preds[i].forward[i] = n
	}
	m.size++
	return true, nil
}

// Modify overwrites the value stored for key, reporting whether it was
// found.
func (m *Map[K, V]) Modify(key K, value V) (bool, error) {
	n := m.findNode(key)
	if n == nil {
		return false, nil
	}
	n.pair.SetValue(value)
	return true, nil
}

// Erase removes key, reporting whether it was present.
func (m *Map[K, V]) Erase(key K) (bool, error) {
	preds, found := m.search(key)
	if found == nil {
		return false, nil
	}
	for i := 0; i < found.level(); i++ {
		preds[i].forward[i] = found.forward[i]
	}
	for m.level() > 1 && m.head.forward[m.level()-1] == nil {
		m.head.forward = m.head.forward[:m.level()-1]
	}
	m.size--
	return true, nil
}
