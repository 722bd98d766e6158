package rbtree

import (
	"unsafe"

	"github.com/skipor/gostl"
	"github.com/skipor/gostl/alloc"
	"github.com/skipor/gostl/pair"
)

// Map is an ordered map from K to V backed by a Red-Black tree, with
// O(log n) Insert/Get/Erase under the supplied comparator.
type Map[K, V any] struct {
	root *node[K, V]
	size int
	less gostl.Comparator[K]
	a    alloc.Allocator[node[K, V]]
}

// New creates an empty Map using cmp as the "goes-left" predicate
// and the default heap allocator.
func New[K, V any](cmp gostl.Comparator[K]) *Map[K, V] {
	return NewWithAllocator[K, V](cmp, alloc.Heap[node[K, V]]{})
}

// NewWithAllocator creates an empty Map whose nodes are obtained from a
// caller-supplied allocator instead of the default heap allocator.
func NewWithAllocator[K, V any](cmp gostl.Comparator[K], a alloc.Allocator[node[K, V]]) *Map[K, V] {
	return &Map[K, V]{less: cmp, a: a}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.size }

func (m *Map[K, V]) findNode(key K) *node[K, V] {
	cur := m.root
	for cur != nil {
		switch {
		case m.less(key, cur.pair.Key()):
			cur = cur.left
		case m.less(cur.pair.Key(), key):
			cur = cur.right
		default:
			return cur
		}
	}
	return nil
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

// Index is the read-only indexed-access operation from the shared map
// interface; it has the same contract as Get.
func (m *Map[K, V]) Index(key K) (V, error) {
	return m.Get(key)
}

func (m *Map[K, V]) newNode(key K, value V) (*node[K, V], error) {
	storage, err := m.a.Allocate(1)
	if err != nil {
		return nil, gostl.NewOutOfMemory("rbtree: %v", err)
	}
	n := &storage[0]
	m.a.Construct(n, node[K, V]{pair: pair.New(key, value), color: red})
	return n, nil
}

// Insert adds (key, value). It returns false, leaving the tree untouched,
// if key is already present.
func (m *Map[K, V]) Insert(key K, value V) (bool, error) {
	if m.root == nil {
		n, err := m.newNode(key, value)
		if err != nil {
			return false, err
		}
		n.color = black
		m.root = n
		m.size++
		return true, nil
	}

	cur := m.root
	var parent *node[K, V]
	goLeft := false
	for cur != nil {
		parent = cur
		switch {
		case m.less(key, cur.pair.Key()):
			goLeft = true
			cur = cur.left
		case m.less(cur.pair.Key(), key):
			goLeft = false
			cur = cur.right
		default:
			return false, nil
		}
	}

	n, err := m.newNode(key, value)
	if err != nil {
		return false, err
	}
	n.parent = parent
	if goLeft {
		parent.left = n
	} else {
		parent.right = n
	}
	m.size++
	m.insertFixup(n)
	return true, nil
}

// Modify overwrites the value stored for key, reporting whether key was
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
	n := m.findNode(key)
	if n == nil {
		return false, nil
	}
	m.deleteNode(n)
	m.size--
	return true, nil
}

// rotateLeft and rotateRight fix up all three affected nodes' parent
// pointers (and the rotated subtree's new parent) inside the routine
// itself, so callers never need to patch parent links after a rotation.
func (m *Map[K, V]) rotateLeft(x *node[K, V]) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == nil:
		m.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (m *Map[K, V]) rotateRight(x *node[K, V]) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == nil:
		m.root = y
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

// insertFixup restores the RB invariants after inserting RED node x,
// following the standard case analysis (recolor through a red uncle,
// rotate once or twice through a black uncle) on both sides explicitly.
func (m *Map[K, V]) insertFixup(x *node[K, V]) {
	for x.parent != nil && x.parent.color == red {
		p := x.parent
		g := p.parent
		if g == nil {
			break
		}
		if p == g.left {
			u := g.right
			if colorOf(u) == red {
				p.color = black
				u.color = black
				g.color = red
				x = g
				continue
			}
			if x == p.right {
				x = p
				m.rotateLeft(x)
				p = x.parent
			}
			p.color = black
			g.color = red
			m.rotateRight(g)
			break
		}
		u := g.left
		if colorOf(u) == red {
			p.color = black
			u.color = black
			g.color = red
			x = g
			continue
		}
		if x == p.left {
			x = p
			m.rotateRight(x)
			p = x.parent
		}
		p.color = black
		g.color = red
		m.rotateLeft(g)
		break
	}
	m.root.color = black
}

// transplant replaces the subtree rooted at u with the subtree rooted at
// v (v may be nil); it does not touch u's own left/right fields.
func (m *Map[K, V]) transplant(u, v *node[K, V]) {
	switch {
	case u.parent == nil:
		m.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

// deleteNode performs the standard BST splice (swap with the in-order
// predecessor when there are two children, since one always exists in
// that case) and repairs the RB invariants if a BLACK node was removed.
func (m *Map[K, V]) deleteNode(z *node[K, V]) {
	y := z
	yOriginalColor := y.color
	var x, xParent *node[K, V]

	switch {
	case z.right == nil:
		x = z.left
		xParent = z.parent
		m.transplant(z, z.left)
	case z.left == nil:
		x = z.right
		xParent = z.parent
		m.transplant(z, z.right)
	default:
		y = maxNode(z.left) // in-order predecessor; always exists here
		yOriginalColor = y.color
		x = y.left
		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			m.transplant(y, y.left)
			y.left = z.left
			y.left.parent = y
		}
		m.transplant(z, y)
		y.right = z.right
		y.right.parent = y
		y.color = z.color
	}

	m.releaseNode(z)
	if yOriginalColor == black {
		m.deleteFixup(x, xParent)
	}
}

// releaseNode runs z's destructor and returns its storage to the
// allocator it came from (the single-chunk slice newNode originally
// obtained from Allocate(1)).
func (m *Map[K, V]) releaseNode(z *node[K, V]) {
	m.a.Destroy(z)
	m.a.Deallocate(unsafe.Slice(z, 1))
}

// deleteFixup repairs the "doubly black" position at x (whose parent is
// xParent, tracked explicitly since x itself may be nil), following
// sibling-inspection case analysis on both sides.
func (m *Map[K, V]) deleteFixup(x, xParent *node[K, V]) {
	for x != m.root && colorOf(x) == black {
		if xParent == nil {
			break
		}
		if x == xParent.left {
			w := xParent.right
			if colorOf(w) == red {
				w.color = black
				xParent.color = red
				m.rotateLeft(xParent)
				w = xParent.right
			}
			if colorOf(w.left) == black && colorOf(w.right) == black {
				w.color = red
				x = xParent
				xParent = x.parent
				continue
			}
			if colorOf(w.right) == black {
				if w.left != nil {
					w.left.color = black
				}
				w.color = red
				m.rotateRight(w)
				w = xParent.right
			}
			w.color = xParent.color
			xParent.color = black
			if w.right != nil {
				w.right.color = black
			}
			m.rotateLeft(xParent)
			x = m.root
			xParent = nil
		} else {
			w := xParent.left
			if colorOf(w) == red {
				w.color = black
				xParent.color = red
				m.rotateRight(xParent)
				w = xParent.left
			}
			if colorOf(w.right) == black && colorOf(w.left) == black {
				w.color = red
				x = xParent
				xParent = x.parent
				continue
			}
			if colorOf(w.left) == black {
				if w.right != nil {
					w.right.color = black
				}
				w.color = red
				m.rotateLeft(w)
				w = xParent.left
			}
			w.color = xParent.color
			xParent.color = black
			if w.left != nil {
				w.left.color = black
			}
			m.rotateRight(xParent)
			x = m.root
			xParent = nil
		}
	}
	if x != nil {
		x.color = black
	}
}
