package cache

import arc "github.com/hashicorp/golang-lru/v2/arc"

// HashicorpARC adapts github.com/hashicorp/golang-lru/v2/arc (Adaptive
// Replacement Cache) to the Cache contract, as a second alternate backing
// store alongside HashicorpLRU for workloads with a scan-resistant access
// pattern an LRU handles poorly.
type HashicorpARC[K comparable, V any] struct {
	c *arc.ARCCache[K, V]
}

var _ Cache[int, int] = (*HashicorpARC[int, int])(nil)

// NewHashicorpARC creates a HashicorpARC bounded to size entries.
func NewHashicorpARC[K comparable, V any](size int) (*HashicorpARC[K, V], error) {
	c, err := arc.NewARC[K, V](size)
	if err != nil {
		return nil, err
	}
	return &HashicorpARC[K, V]{c: c}, nil
}

func (a *HashicorpARC[K, V]) Get(key K) (V, bool) { return a.c.Get(key) }

func (a *HashicorpARC[K, V]) Set(key K, value V) { a.c.Add(key, value) }

func (a *HashicorpARC[K, V]) Delete(key K) bool {
	_, ok := a.c.Peek(key)
	if !ok {
		return false
	}
	a.c.Remove(key)
	return true
}

func (a *HashicorpARC[K, V]) Len() int { return a.c.Len() }
