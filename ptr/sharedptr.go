package ptr

import (
	"unsafe"

	"github.com/skipor/gostl"
)

// SharedPtr is a reference-counted, possibly-aliased pointer to a T. Its
// zero value is not usable directly; construct one with New,
// NewWithDeleter or Empty.
//
// Go has no copy constructors or destructors, so operations that would
// be implicit elsewhere (copy, move, destruct) are explicit methods
// here: Clone plays the role of "copy from other", Move plays "move from
// other" (leaving the source reattached to a fresh empty block rather
// than merely zeroed), and Close plays "destruct".
type SharedPtr[T any] struct {
	b     *block
	alias *T
}

// New wraps a raw pointer in a fresh block (strong=1, weak=0), released
// with the default (no-op) deleter.
func New[T any](v *T) SharedPtr[T] {
	return NewWithDeleter(v, DefaultDeleter[T]())
}

// NewWithDeleter wraps a raw pointer in a fresh block released through d
// when the last SharedPtr referencing it is destroyed.
func NewWithDeleter[T any](v *T, d Deleter[T]) SharedPtr[T] {
	if d == nil {
		d = DefaultDeleter[T]()
	}
	b := newBlock(v, func() { d(v) })
	return SharedPtr[T]{b: b, alias: v}
}

// Empty returns a SharedPtr over a fresh block with strong=1 and a null
// alias — the same shape Move reattaches a moved-from SharedPtr to, so
// that any subsequent access yields NullDeref deterministically rather
// than relying on a nil zero value.
func Empty[T any]() SharedPtr[T] {
	return SharedPtr[T]{b: newBlock(nil, nil), alias: nil}
}

// Strong returns the block's current strong count (0 for a nil/zero-value
// SharedPtr).
func (s SharedPtr[T]) Strong() uint64 {
	if s.b == nil {
		return 0
	}
	return s.b.strong
}

// Weak returns the block's current weak count (0 for a nil/zero-value
// SharedPtr).
func (s SharedPtr[T]) Weak() uint64 {
	if s.b == nil {
		return 0
	}
	return s.b.weak
}

// Valid reports whether strong > 0 at observation time.
func (s SharedPtr[T]) Valid() bool {
	return s.b != nil && s.b.strong > 0
}

// Clone shares this SharedPtr's block, incrementing strong: the
// copy-from-other operation.
func (s SharedPtr[T]) Clone() SharedPtr[T] {
	if s.b != nil {
		s.b.incStrong()
	}
	return s
}

// Move takes this SharedPtr's block and alias, reattaches the receiver to
// a fresh empty block (strong=1 over a null alias), and returns the
// original block/alias pair. The receiver remains a perfectly usable,
// valid (if empty) SharedPtr afterward, a deliberate distinction between
// moved-from and destroyed.
func (s *SharedPtr[T]) Move() SharedPtr[T] {
	out := *s
	*s = Empty[T]()
	return out
}

// Reset releases current ownership (decrementing strong, running the
// destroy-callback if it reaches zero) and installs a fresh empty block.
func (s *SharedPtr[T]) Reset() {
	if s.b != nil {
		s.b.decStrong()
	}
	*s = Empty[T]()
}

// Close runs "destruct": decrement strong, invoking the destroy-callback
// if it reaches zero, and leave the receiver unusable (a true end-of-life,
// as opposed to Move/Reset which leave it as a fresh empty SharedPtr).
func (s *SharedPtr[T]) Close() {
	if s.b != nil {
		s.b.decStrong()
	}
	s.b = nil
	s.alias = nil
}

// Get dereferences the alias pointer, failing with NullDeref if it is nil.
func (s SharedPtr[T]) Get() (*T, error) {
	if s.alias == nil {
		return nil, gostl.NewNullDeref("dereference of empty SharedPtr[%T]", *new(T))
	}
	return s.alias, nil
}

// At returns a pointer to the i-th element starting at the alias, with no
// bounds checking, failing with NullDeref only if the alias itself is nil.
func (s SharedPtr[T]) At(i int) (*T, error) {
	if s.alias == nil {
		return nil, gostl.NewNullDeref("indexed access on empty SharedPtr[%T]", *new(T))
	}
	p := unsafe.Add(unsafe.Pointer(s.alias), uintptr(i)*unsafe.Sizeof(*s.alias))
	return (*T)(p), nil
}

// Equal compares alias pointers, not blocks.
func (s SharedPtr[T]) Equal(other SharedPtr[T]) bool {
	return s.alias == other.alias
}

// Less orders by the numeric value of the alias pointer, the same
// convention Equal uses, so SharedPtr[T] can key an ordered or hashed
// container of handles.
func (s SharedPtr[T]) Less(other SharedPtr[T]) bool {
	return uintptr(unsafe.Pointer(s.alias)) < uintptr(unsafe.Pointer(other.alias))
}

// HashCode hashes the alias pointer's numeric value with the library's
// standard FNV-1a hash, following the same pointer-identity convention as
// Equal/Less.
func (s SharedPtr[T]) HashCode() uint32 {
	return gostl.FNV1a(uintptr(unsafe.Pointer(s.alias)))
}
