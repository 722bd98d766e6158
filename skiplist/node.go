// Package skiplist implements an ordered map/set keyed container: a
// probabilistic skip list with coin-flip level generation, offering the
// same operation contract as rbtree but with average O(log n)
// operations instead of guaranteed ones.
package skiplist

import "github.com/skipor/gostl/pair"

// node holds a Pair[K,V] and a forward-pointer vector of length
// len(forward) == the node's level count L >= 1. Forward pointers are
// non-owning references into the list; the list owns every node it
// allocated.
type node[K, V any] struct {
	pair    pair.Pair[K, V]
	forward []*node[K, V]
}

func (n *node[K, V]) level() int { return len(n.forward) }
