// Package alloc implements the allocator contract consumed by every
// container: allocate/deallocate raw storage, construct/destroy a value
// in place, and rebind to a different element type using the same
// underlying strategy. It carries no algorithmic content of its own: it
// is a collaborator, not part of the ordering or rehashing logic.
package alloc

import "github.com/skipor/gostl"

// Allocator is the contract every container node type is parameterized
// over. It mirrors the C++ allocator contract this module is modeled on:
// Allocate returns uninitialized storage, Construct runs a value into
// place, Destroy runs the equivalent of a destructor (resetting the slot
// to T's zero value), and Deallocate releases storage obtained from
// Allocate.
type Allocator[T any] interface {
	// Allocate returns storage for n contiguous T, uninitialized (zero
	// value). Fails with gostl.ErrOutOfMemory-kind error.
	Allocate(n int) ([]T, error)
	// Deallocate releases storage previously returned by Allocate(n).
	// Behavior is undefined if p was not obtained that way.
	Deallocate(p []T)
	// Construct writes v into *p in place.
	Construct(p *T, v T)
	// Destroy runs T's destructor at p. Both Heap and Slab reset *p to
	// T's zero value, so a reused node does not retain stale pointers
	// (avoiding a GC leak through Slab's free list).
	Destroy(p *T)
}

// Strategy identifies which allocator family produced an Allocator value,
// so Rebind can hand back an allocator of the same family for a different
// element type. Go cannot express a generic method with its own type
// parameter (`func (Allocator[T]) Rebind[U]() Allocator[U]` is not legal
// Go), so rebinding is a package-level function keyed off of Strategy
// instead.
type Strategy int

const (
	// HeapStrategy allocates directly via make/new, relying on the Go
	// garbage collector for the lifetime of the backing array.
	HeapStrategy Strategy = iota
	// SlabStrategy allocates from a trivial free-list pool of fixed-size
	// chunks.
	SlabStrategy
)

// StrategyOf reports which family produced a, so Rebind can match it.
func StrategyOf[T any](a Allocator[T]) Strategy {
	switch a.(type) {
	case *Slab[T]:
		return SlabStrategy
	default:
		return HeapStrategy
	}
}

// Rebind obtains an allocator for element type U using the same strategy
// as a. This is required because each container allocates node types
// (RBNode[K,V], SkipListNode[K,V], HashNode[K,V]) distinct from its
// element type.
func Rebind[T, U any](a Allocator[T]) Allocator[U] {
	switch s := a.(type) {
	case *Slab[T]:
		return NewSlab[U](s.chunkCount())
	default:
		return Heap[U]{}
	}
}

// Heap is the default allocator: every Allocate call is a plain Go make,
// every Deallocate is a no-op (the garbage collector reclaims it), and
// Construct/Destroy assign the zero value/requested value directly.
type Heap[T any] struct{}

func (Heap[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, gostl.NewOutOfMemory("negative allocation size %d", n)
	}
	return make([]T, n), nil
}

func (Heap[T]) Deallocate(p []T) {
	// Nothing to do: the Go garbage collector owns backing arrays made by
	// Allocate. Present so Heap satisfies Allocator symmetrically with Slab.
}

func (Heap[T]) Construct(p *T, v T) { *p = v }

func (Heap[T]) Destroy(p *T) { var zero T; *p = zero }
