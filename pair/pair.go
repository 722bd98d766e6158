// Package pair provides the two-field record shared by every map container
// in gostl: a key that is immutable once constructed and a value that is
// freely mutable.
package pair

import "fmt"

// Pair holds a key and a value. The key is set once, at construction, and
// has no exported mutator: the only way to change it is to build a new
// Pair. The value is mutable through SetValue.
type Pair[K, V any] struct {
	key   K
	value V
}

// New builds a Pair from a key and a value.
func New[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{key: key, value: value}
}

// Key returns the immutable key.
func (p Pair[K, V]) Key() K { return p.key }

// Value returns the current value.
func (p Pair[K, V]) Value() V { return p.value }

// SetValue replaces the value in place. The key is untouched.
func (p *Pair[K, V]) SetValue(v V) { p.value = v }

// Equal reports componentwise equality using the supplied predicates.
func Equal[K, V any](a, b Pair[K, V], keyEq func(K, K) bool, valueEq func(V, V) bool) bool {
	return keyEq(a.key, b.key) && valueEq(a.value, b.value)
}

// String implements fmt.Stringer, rendering K and V each through their own
// String method where they implement fmt.Stringer and through %v
// otherwise, mirroring the
// printable mixin from the original C++ source (original_source/printable.h)
// without pulling in its wider iterable/stream framework.
func (p Pair[K, V]) String() string {
	ks, kok := any(p.key).(fmt.Stringer)
	vs, vok := any(p.value).(fmt.Stringer)
	switch {
	case kok && vok:
		return fmt.Sprintf("(%s, %s)", ks.String(), vs.String())
	case kok:
		return fmt.Sprintf("(%s, %v)", ks.String(), p.value)
	case vok:
		return fmt.Sprintf("(%v, %s)", p.key, vs.String())
	default:
		return fmt.Sprintf("(%v, %v)", p.key, p.value)
	}
}
