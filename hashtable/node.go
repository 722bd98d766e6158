package hashtable

import "github.com/skipor/gostl/pair"

// node holds a Pair[K,V] and a non-owning forward pointer into its
// bucket's singly-linked chain. Each node is owned by exactly one
// bucket's chain.
type node[K, V any] struct {
	pair    pair.Pair[K, V]
	forward *node[K, V]
}
