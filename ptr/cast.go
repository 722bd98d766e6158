package ptr

import "unsafe"

// StaticCast, DynamicCast and ConstCast are package-level generic
// functions rather than methods, because Go does not allow a method to
// introduce a type parameter of its own (SharedPtr[T]'s existing T is
// fixed by the receiver). Each cast that succeeds shares the source's
// block (another live reference into the same managed object: strong is
// incremented), exposing a different alias rather than a new allocation.

// StaticCast reinterprets the *current alias view* as a *U via
// unsafe.Pointer, confined to this package so callers only ever see the
// safe SharedPtr wrapper. The caller is responsible for U being a valid
// reinterpretation of T, the same contract C++'s static_cast carries.
func StaticCast[T, U any](s SharedPtr[T]) SharedPtr[U] {
	if s.b == nil {
		return Empty[U]()
	}
	s.b.incStrong()
	var alias *U
	if s.alias != nil {
		alias = (*U)(unsafe.Pointer(s.alias))
	}
	return SharedPtr[U]{b: s.b, alias: alias}
}

// DynamicCast attempts to recover the block's originally-managed pointer
// as a *U, the same way C++'s dynamic_cast consults the complete object's
// dynamic type rather than the static type of whatever view you currently
// hold. It returns an empty SharedPtr[U] on failure, without touching
// strong on the source. Because Go's type assertions require either an
// exact concrete type match or that the asserted-to type be an interface
// implemented by the dynamic type, this is most useful when U is an
// interface that the originally-managed concrete type implements.
//
// Two shapes of U are tried in turn: first *U, for the case where U
// itself is the originally-managed pointee type (or another pointer type
// the object happens to satisfy); then U directly, for the primary case
// where U is an interface and obj's dynamic type is the concrete pointer
// implementing it — obj.(*U) can never succeed there, since obj's
// dynamic type is never literally "pointer to interface". On that second
// path the recovered interface value is boxed into freshly allocated,
// addressable storage so the result still has a *U to alias.
func DynamicCast[T, U any](s SharedPtr[T]) SharedPtr[U] {
	if s.b == nil || s.b.obj == nil {
		return Empty[U]()
	}
	if u, ok := s.b.obj.(*U); ok {
		s.b.incStrong()
		return SharedPtr[U]{b: s.b, alias: u}
	}
	if u, ok := s.b.obj.(U); ok {
		s.b.incStrong()
		boxed := new(U)
		*boxed = u
		return SharedPtr[U]{b: s.b, alias: boxed}
	}
	return Empty[U]()
}

// ReadOnly is the result of ConstCast: a view that only allows reading
// the managed value, standing in for C++'s SharedPtr<const T> since Go
// has no const qualifier.
type ReadOnly[T any] struct {
	s SharedPtr[T]
}

// ConstCast shares s's block (incrementing strong) and returns a
// read-only view over it.
func ConstCast[T any](s SharedPtr[T]) ReadOnly[T] {
	if s.b != nil {
		s.b.incStrong()
	}
	return ReadOnly[T]{s: s}
}

// Get copies out the current value, failing with NullDeref if the
// underlying alias is nil.
func (r ReadOnly[T]) Get() (T, error) {
	p, err := r.s.Get()
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Unsafe recovers the mutable SharedPtr underneath the read-only view —
// the escape hatch mirroring C++'s const_cast<T*> away from const.
func (r ReadOnly[T]) Unsafe() SharedPtr[T] {
	return r.s
}
