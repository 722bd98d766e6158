// Package ptr implements the reference-counted shared/weak pointer pair:
// aliasing, static/dynamic/const casts, and cycle-breaking through weak
// references, all built on a strong+weak counter block.
//
// The counters are deliberately not atomic. A caller that needs
// concurrent SharedPtrs must upgrade the counters to atomics and audit
// Lock for a proper compare-and-increment loop themselves; this package
// does not attempt that.
package ptr

// Deleter releases a *T. ArrayDeleter is the slice-deleting counterpart,
// used when the managed object is a slice rather than a single value.
type Deleter[T any] func(*T)

// ArrayDeleter releases a []T.
type ArrayDeleter[T any] func([]T)

// DefaultDeleter returns a no-op deleter: Go values are reclaimed by the
// garbage collector, so the default destroy-callback does nothing beyond
// letting go of the reference. A custom Deleter is still useful for real
// release work, e.g. returning a node to a Slab pool.
func DefaultDeleter[T any]() Deleter[T] {
	return func(*T) {}
}

// block is the reference-count block: two counters, a type-erased
// destroy-callback, and (conceptually) the managed object. obj is
// retained as `any` purely so DynamicCast can attempt a type assertion
// against it; the block does not otherwise use reflection or interface
// dispatch.
type block struct {
	strong  uint64
	weak    uint64
	obj     any
	destroy func()
}

func newBlock(obj any, destroy func()) *block {
	return &block{strong: 1, weak: 0, obj: obj, destroy: destroy}
}

// incStrong/decStrong/incWeak/decWeak implement the counter lifecycle:
// the destroy-callback fires exactly once, when strong transitions 1->0;
// the block itself is never explicitly freed in Go (the garbage
// collector reclaims it once nothing points at it), but decStrong clears
// obj and destroy once strong hits zero so later observations see a
// well-defined expired state rather than a stale reference.
func (b *block) incStrong() { b.strong++ }

func (b *block) decStrong() {
	b.strong--
	if b.strong == 0 {
		if b.destroy != nil {
			b.destroy()
			b.destroy = nil
		}
		b.obj = nil
	}
}

func (b *block) incWeak() { b.weak++ }

func (b *block) decWeak() {
	b.weak--
}

func (b *block) expired() bool { return b.strong == 0 }
