package gostl

import (
	"fmt"

	"github.com/facebookgo/stackerr"
)

// Kind identifies which failure condition a container operation raised.
// Every Kind value, once wrapped with stackerr, carries a creation stack
// trace for debugging.
type Kind int

const (
	// OutOfBounds: iterator Get past end, or indexed access out of range.
	OutOfBounds Kind = iota
	// NullDeref: dereferencing an empty SharedPtr/WeakPtr, or WeakPtr
	// access on an expired target.
	NullDeref
	// NoSuchElement: Get(key)/indexed-const access on an absent map key.
	NoSuchElement
	// UnsupportedOperation: Prev on a forward-only iterator, or another
	// capability violation.
	UnsupportedOperation
	// ValueError: invalid cast target, or re-init of a singleton.
	ValueError
	// OutOfMemory: allocator failure, surfaced directly.
	OutOfMemory
)

func (k Kind) String() string {
	switch k {
	case OutOfBounds:
		return "OutOfBounds"
	case NullDeref:
		return "NullDeref"
	case NoSuchElement:
		return "NoSuchElement"
	case UnsupportedOperation:
		return "UnsupportedOperation"
	case ValueError:
		return "ValueError"
	case OutOfMemory:
		return "OutOfMemory"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a Kind paired with a message, wrapped with stackerr at the
// point it was raised so the failure carries a creation stack.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is a zero-message *Error (one of the sentinel
// errors below) with the same Kind, so callers can write
// `errors.Is(err, gostl.ErrNoSuchElement)`-style comparisons.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind && other.Message == ""
}

// newErr builds and stack-wraps a Kind error with stackerr.Wrap, so every
// returned error carries the stack at the point it was raised.
func newErr(k Kind, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	e := &Error{Kind: k, Message: msg}
	e.cause = stackerr.Wrap(fmt.Errorf("%s", e.Error()))
	return e
}

// Sentinel, zero-message errors usable with errors.Is.
var (
	ErrOutOfBounds          = &Error{Kind: OutOfBounds}
	ErrNullDeref            = &Error{Kind: NullDeref}
	ErrNoSuchElement        = &Error{Kind: NoSuchElement}
	ErrUnsupportedOperation = &Error{Kind: UnsupportedOperation}
	ErrValueError           = &Error{Kind: ValueError}
	ErrOutOfMemory          = &Error{Kind: OutOfMemory}
)

// NewOutOfBounds builds a stack-wrapped OutOfBounds error with context.
func NewOutOfBounds(format string, args ...any) error {
	return newErr(OutOfBounds, format, args...)
}

// NewNullDeref builds a stack-wrapped NullDeref error with context.
func NewNullDeref(format string, args ...any) error {
	return newErr(NullDeref, format, args...)
}

// NewNoSuchElement builds a stack-wrapped NoSuchElement error with context.
func NewNoSuchElement(format string, args ...any) error {
	return newErr(NoSuchElement, format, args...)
}

// NewUnsupportedOperation builds a stack-wrapped UnsupportedOperation error.
func NewUnsupportedOperation(format string, args ...any) error {
	return newErr(UnsupportedOperation, format, args...)
}

// NewValueError builds a stack-wrapped ValueError with context.
func NewValueError(format string, args ...any) error {
	return newErr(ValueError, format, args...)
}

// NewOutOfMemory builds a stack-wrapped OutOfMemory error with context.
func NewOutOfMemory(format string, args ...any) error {
	return newErr(OutOfMemory, format, args...)
}
