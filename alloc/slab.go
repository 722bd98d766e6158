package alloc

import (
	"unsafe"

	"github.com/skipor/gostl"
)

// defaultChunkCount is the number of T-sized chunks carved out of one slab
// when the free list runs dry.
const defaultChunkCount = 64

// Slab is a trivial free-list pool: it carves storage out in fixed-size
// slabs and hands out/reclaims one chunk at a time, the way a
// recycle-style object pool would, rather than going through the Go
// allocator on every node create/destroy.
//
// Only single-element Allocate/Deallocate calls are pooled; any other
// count falls back to a direct make/GC-reclaimed slice, keeping this a
// "trivial" slab rather than a general-purpose memory pool.
type Slab[T any] struct {
	size  int
	slabs [][]T
	free  []*T
}

// NewSlab creates a Slab that grows itself in batches of chunkCount
// elements. chunkCount <= 0 uses defaultChunkCount.
func NewSlab[T any](chunkCount int) *Slab[T] {
	if chunkCount <= 0 {
		chunkCount = defaultChunkCount
	}
	return &Slab[T]{size: chunkCount}
}

func (s *Slab[T]) chunkCount() int { return s.size }

func (s *Slab[T]) grow() {
	slab := make([]T, s.size)
	s.slabs = append(s.slabs, slab)
	for i := range slab {
		s.free = append(s.free, &slab[i])
	}
}

// Allocate returns storage for n contiguous T. For n == 1 it is served
// from the free list (growing the pool if necessary); for any other n it
// falls back to a plain make, since the pool only tracks single chunks.
func (s *Slab[T]) Allocate(n int) ([]T, error) {
	if n != 1 {
		if n < 0 {
			return nil, gostl.NewOutOfMemory("negative allocation size %d", n)
		}
		return make([]T, n), nil
	}
	if len(s.free) == 0 {
		s.grow()
	}
	p := s.free[len(s.free)-1]
	s.free = s.free[:len(s.free)-1]
	var zero T
	*p = zero
	return unsafe.Slice(p, 1), nil
}

// Deallocate returns a single-element slice to the free list. Slices of
// any other length were never pooled, so they are left for the garbage
// collector.
func (s *Slab[T]) Deallocate(p []T) {
	if len(p) != 1 {
		return
	}
	s.free = append(s.free, &p[0])
}

func (s *Slab[T]) Construct(p *T, v T) { *p = v }

func (s *Slab[T]) Destroy(p *T) { var zero T; *p = zero }
