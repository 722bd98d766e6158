// Package gostl defines the collaborator contracts shared by every
// container in the module (Comparator, Hasher, Iterator) together with the
// error kinds containers raise at their call sites. It holds no container
// implementation itself; rbtree, skiplist and hashtable each depend on it.
package gostl

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/skipor/gostl/pair"
)

// Comparator is a strict weak order: Comparator(a, b) reports whether a
// has strictly higher priority than b. The ascending default is a < b.
type Comparator[K any] func(a, b K) bool

// Hasher maps a key to an unsigned 32-bit integer. HashTable applies
// `mod bucket_count` itself; Hasher only needs to spread keys well.
type Hasher[K any] func(key K) uint32

// Less is the ascending default comparator for any ordered type.
func Less[K constraints.Ordered]() Comparator[K] {
	return func(a, b K) bool { return a < b }
}

// Greater is the descending comparator for any ordered type.
func Greater[K constraints.Ordered]() Comparator[K] {
	return func(a, b K) bool { return a > b }
}

// LessOrEqual is the non-strict ascending comparator.
func LessOrEqual[K constraints.Ordered]() Comparator[K] {
	return func(a, b K) bool { return a <= b }
}

// GreaterOrEqual is the non-strict descending comparator.
func GreaterOrEqual[K constraints.Ordered]() Comparator[K] {
	return func(a, b K) bool { return a >= b }
}

// Equal builds an equality predicate from a Comparator, by the standard
// strict-weak-ordering construction: a == b iff neither has priority
// over the other.
func Equal[K any](cmp Comparator[K]) func(a, b K) bool {
	return func(a, b K) bool { return !cmp(a, b) && !cmp(b, a) }
}

// Iterator is the shared cursor contract exposed by every container's
// begin/end pair. It carries a non-owning reference to its container and
// is invalidated by any modifying operation on that container; the
// library does not detect this.
type Iterator[K, V any] interface {
	// Valid reports whether the cursor refers to a live element.
	Valid() bool
	// Next advances to the in-order successor (for HashTable, the next
	// node in bucket-index then chain order).
	Next() error
	// Prev advances to the in-order predecessor. HashTable and SkipList
	// iterators return ErrUnsupportedOperation.
	Prev() error
	// Get returns the pair at the cursor, or ErrOutOfBounds if !Valid().
	Get() (pair.Pair[K, V], error)
}

// String renders a Comparator's key type for diagnostics (it cannot show
// the ordering direction); no container calls it.
func (c Comparator[K]) String() string {
	return fmt.Sprintf("Comparator[%T]", *new(K))
}
