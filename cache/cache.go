// Package cache provides a bounded, eviction-policy cache built on top of
// hashtable.Map for O(1) key lookup, using a doubly-linked intrusive list
// for LRU recency order and a shrink-on-eviction discipline. A second
// backing store wired to github.com/hashicorp/golang-lru/v2 is offered
// alongside it for callers who want a battle-tested eviction
// implementation instead.
package cache

// Cache is the contract both backing stores in this package satisfy.
type Cache[K comparable, V any] interface {
	// Get returns the value stored for key and whether it was present,
	// marking key as most-recently-used on a hit.
	Get(key K) (V, bool)
	// Set inserts or overwrites key's value, evicting the least-recently
	// used entries first if capacity is exceeded.
	Set(key K, value V)
	// Delete removes key, reporting whether it was present.
	Delete(key K) bool
	// Len returns the number of entries currently cached.
	Len() int
}
