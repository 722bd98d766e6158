// Package rbtree implements an ordered map/set keyed container: a
// Red-Black tree with parent back-pointers, rebalanced on insert and
// erase under a user-supplied comparator.
//
// The node/parent-pointer discipline here echoes a doubly linked node
// with owner/prev/next fields and invariants spelled out in a comment
// above the type, generalized from a flat doubly-linked list to a binary
// tree with one non-owning link (parent) and two owning links (left,
// right).
package rbtree

import "github.com/skipor/gostl/pair"

type color bool

const (
	red   color = true
	black color = false
)

func (c color) String() string {
	if c == red {
		return "RED"
	}
	return "BLACK"
}

// node holds a Pair[K,V], a color tag, and parent/left/right links. Left
// and right are owning (exclusive downward); parent is a non-owning
// back-reference kept consistent by the rotation helpers.
type node[K, V any] struct {
	pair   pair.Pair[K, V]
	color  color
	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]
}

// colorOf treats a nil node as BLACK, so callers never need a nil check
// before comparing colors, and the root (whose parent is nil) is always
// BLACK by construction.
func colorOf[K, V any](n *node[K, V]) color {
	if n == nil {
		return black
	}
	return n.color
}

func minNode[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns n's in-order successor: right-then-leftmost, or
// ascend while n is a right child.
func successor[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	if n.right != nil {
		return minNode(n.right)
	}
	p := n.parent
	for p != nil && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

// predecessor returns n's in-order predecessor: left-then-rightmost, or
// ascend while n is a left child.
func predecessor[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	if n.left != nil {
		return maxNode(n.left)
	}
	p := n.parent
	for p != nil && n == p.left {
		n = p
		p = p.parent
	}
	return p
}
