// Package hashtable implements an unordered map/set keyed container:
// separate chaining over a fixed prime bucket-count schedule, migrating
// automatically as the load factor crosses LOW/HIGH bounds.
package hashtable

import (
	"github.com/skipor/gostl"
	"github.com/skipor/gostl/pair"
)

// Load factor bounds.
const (
	lowLoadFactor  = 0.25
	highLoadFactor = 0.75
)

// Map is an unordered map from K to V backed by separate chaining over a
// bucket array whose length is always one of primeSchedule's entries.
type Map[K comparable, V any] struct {
	buckets     []*node[K, V]
	size        int
	scheduleIdx int
	hash        gostl.Hasher[K]
}

// New creates an empty Map hashing keys with hash and starting at the
// schedule's smallest prime.
func New[K comparable, V any](hash gostl.Hasher[K]) *Map[K, V] {
	return &Map[K, V]{
		buckets:     make([]*node[K, V], primeSchedule[scheduleFirst]),
		scheduleIdx: scheduleFirst,
		hash:        hash,
	}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.size }

// BucketCount returns the current bucket array length, always a
// primeSchedule entry.
func (m *Map[K, V]) BucketCount() int { return len(m.buckets) }

// LoadFactor returns size / bucket_count.
func (m *Map[K, V]) LoadFactor() float64 {
	return float64(m.size) / float64(len(m.buckets))
}

func (m *Map[K, V]) bucketIndex(key K) uint32 {
	return m.hash(key) % uint32(len(m.buckets))
}

func (m *Map[K, V]) findNode(key K) (*node[K, V], uint32) {
	b := m.bucketIndex(key)
	for n := m.buckets[b]; n != nil; n = n.forward {
		if n.pair.Key() == key {
			return n, b
		}
	}
	return nil, b
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	n, _ := m.findNode(key)
	return n != nil
}

// Get returns the value stored for key, or NoSuchElement if absent.
func (m *Map[K, V]) Get(key K) (V, error) {
	n, _ := m.findNode(key)
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

// adjustForInsert migrates to the next schedule prime if the current load
// factor already exceeds HIGH, before the insert proceeds.
func (m *Map[K, V]) adjustForInsert() {
	if m.LoadFactor() > highLoadFactor && m.scheduleIdx < scheduleLast {
		m.rehash(m.scheduleIdx + 1)
	}
}

// adjustForErase migrates to the previous schedule prime if the current
// load factor already drops below LOW, before the erase proceeds.
func (m *Map[K, V]) adjustForErase() {
	if m.LoadFactor() < lowLoadFactor && m.scheduleIdx > scheduleFirst {
		m.rehash(m.scheduleIdx - 1)
	}
}

// rehash allocates a fresh bucket array sized primeSchedule[newIdx],
// detaches every old bucket's chain node-by-node and relinks each node
// into its new bucket, recomputing hash mod new_size. Intra-bucket order
// after a rehash is unspecified.
func (m *Map[K, V]) rehash(newIdx int) {
	newSize := primeSchedule[newIdx]
	newBuckets := make([]*node[K, V], newSize)
	for _, head := range m.buckets {
		for n := head; n != nil; {
			next := n.forward
			b := m.hash(n.pair.Key()) % newSize
			n.forward = newBuckets[b]
			newBuckets[b] = n
			n = next
		}
	}
	m.buckets = newBuckets
	m.scheduleIdx = newIdx
}

// Insert adds (key, value), returning false (no overwrite) if key is
// already present.
func (m *Map[K, V]) Insert(key K, value V) (bool, error) {
	m.adjustForInsert()
	b := m.bucketIndex(key)
	for n := m.buckets[b]; n != nil; n = n.forward {
		if n.pair.Key() == key {
			return false, nil
		}
	}
	n := &node[K, V]{pair: pair.New(key, value)}
	n.forward = m.buckets[b]
	m.buckets[b] = n
	m.size++
	return true, nil
}

// Modify overwrites the value stored for key, reporting whether it was
// found.
func (m *Map[K, V]) Modify(key K, value V) (bool, error) {
	n, _ := m.findNode(key)
	if n == nil {
		return false, nil
	}
	n.pair.SetValue(value)
	return true, nil
}

// Erase removes key, reporting whether it was present, walking the chain
// with a trailing pointer and splicing out the match.
func (m *Map[K, V]) Erase(key K) (bool, error) {
	m.adjustForErase()
	b := m.bucketIndex(key)
	var prev *node[K, V]
	for n := m.buckets[b]; n != nil; n = n.forward {
		if n.pair.Key() == key {
			if prev == nil {
				m.buckets[b] = n.forward
			} else {
				prev.forward = n.forward
			}
			m.size--
			return true, nil
		}
		prev = n
	}
	return false, nil
}
