package cache

import lru "github.com/hashicorp/golang-lru/v2"

// HashicorpLRU adapts github.com/hashicorp/golang-lru/v2 to the Cache
// contract, for callers who want a battle-tested eviction implementation
// instead of this package's own LRU.
type HashicorpLRU[K comparable, V any] struct {
	c *lru.Cache[K, V]
}

var _ Cache[int, int] = (*HashicorpLRU[int, int])(nil)

// NewHashicorpLRU creates a HashicorpLRU bounded to size entries.
func NewHashicorpLRU[K comparable, V any](size int) (*HashicorpLRU[K, V], error) {
	c, err := lru.New[K, V](size)
	if err != nil {
		return nil, err
	}
	return &HashicorpLRU[K, V]{c: c}, nil
}

func (h *HashicorpLRU[K, V]) Get(key K) (V, bool) { return h.c.Get(key) }

func (h *HashicorpLRU[K, V]) Set(key K, value V) { h.c.Add(key, value) }

func (h *HashicorpLRU[K, V]) Delete(key K) bool { return h.c.Remove(key) }

func (h *HashicorpLRU[K, V]) Len() int { return h.c.Len() }
