package ptr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skipor/gostl/ptr"
)

func TestNewStrongOneWeakZero(t *testing.T) {
	v := 42
	s := ptr.New(&v)
	assert.Equal(t, uint64(1), s.Strong())
	assert.Equal(t, uint64(0), s.Weak())
	assert.True(t, s.Valid())

	got, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, *got)
}

func TestCloneIncrementsStrongAndSharesBlock(t *testing.T) {
	v := 1
	a := ptr.New(&v)
	b := a.Clone()
	assert.Equal(t, uint64(2), a.Strong())
	assert.Equal(t, uint64(2), b.Strong())

	b.Close()
	assert.Equal(t, uint64(1), a.Strong())
}

func TestDestroyCallbackFiresExactlyOnceAtZero(t *testing.T) {
	calls := 0
	v := 7
	a := ptr.NewWithDeleter(&v, func(p *int) { calls++ })
	b := a.Clone()

	a.Close()
	assert.Equal(t, 0, calls, "destroy must wait for the last strong reference")
	b.Close()
	assert.Equal(t, 1, calls, "destroy callback must fire exactly once")
}

func TestMoveLeavesSourceAsFreshEmptyBlock(t *testing.T) {
	v := 9
	a := ptr.New(&v)
	moved := a.Move()

	// moved has taken over the original block.
	got, err := moved.Get()
	require.NoError(t, err)
	assert.Equal(t, 9, *got)
	assert.Equal(t, uint64(1), moved.Strong())

	// a is reattached to a brand new empty block: still Valid (strong=1),
	// but dereferencing fails with NullDeref rather than the moved-from
	// block's state.
	assert.True(t, a.Valid())
	assert.Equal(t, uint64(1), a.Strong())
	_, err = a.Get()
	assert.Error(t, err)
}

func TestResetInstallsFreshEmptyBlock(t *testing.T) {
	calls := 0
	v := 3
	a := ptr.NewWithDeleter(&v, func(p *int) { calls++ })
	a.Reset()
	assert.Equal(t, 1, calls)
	assert.True(t, a.Valid())
	_, err := a.Get()
	assert.Error(t, err)
}

func TestIndexedAccessNoBoundsCheck(t *testing.T) {
	arr := [3]int{10, 20, 30}
	s := ptr.New(&arr[0])
	second, err := s.At(1)
	require.NoError(t, err)
	assert.Equal(t, 20, *second)
}

func TestEqualityComparesAliasNotBlock(t *testing.T) {
	v := 5
	a := ptr.New(&v)
	b := a.Clone()
	assert.True(t, a.Equal(b))

	other := 5
	c := ptr.New(&other)
	assert.False(t, a.Equal(c))
}

func TestWeakLockOnLiveAndExpired(t *testing.T) {
	v := 11
	s := ptr.New(&v)
	w := ptr.NewWeak(s)
	assert.False(t, w.Expired())

	locked := w.Lock()
	assert.True(t, locked.Valid())
	assert.Equal(t, uint64(2), s.Strong())
	locked.Close()

	s.Close()
	assert.True(t, w.Expired())
	empty := w.Lock()
	_, err := empty.Get()
	assert.Error(t, err)
}

func TestWeakRoundTripEqualsOriginal(t *testing.T) {
	v := 99
	s := ptr.New(&v)
	w := ptr.NewWeak(s)
	back := w.Lock()
	assert.True(t, s.Equal(back))
}

type base struct{ name string }

func TestStaticCastSharesBlockAndReinterprets(t *testing.T) {
	b := base{name: "x"}
	s := ptr.New(&b)
	as32, err := ptr.StaticCast[base, int32](s).Get()
	require.NoError(t, err)
	_ = as32 // reinterpreted bits; caller's responsibility per spec
	assert.Equal(t, uint64(2), s.Strong())
}

type shape interface{ Area() float64 }
type square struct{ side float64 }

func (sq *square) Area() float64 { return sq.side * sq.side }

func TestDynamicCastSucceedsAndFails(t *testing.T) {
	sq := &square{side: 2}
	s := ptr.New(sq)

	asShape := ptr.DynamicCast[square, shape](s)
	require.True(t, asShape.Valid())
	got, err := asShape.Get()
	require.NoError(t, err)
	assert.Equal(t, float64(4), (*got).Area())
	assert.Equal(t, uint64(2), s.Strong())

	type unrelated struct{}
	failed := ptr.DynamicCast[square, unrelated](s)
	_, err = failed.Get()
	assert.Error(t, err)
	assert.Equal(t, uint64(2), s.Strong(), "failed dynamic cast must not touch strong")
}

func TestConstCastReadOnlyRoundTrip(t *testing.T) {
	v := 123
	s := ptr.New(&v)
	ro := ptr.ConstCast(s)
	got, err := ro.Get()
	require.NoError(t, err)
	assert.Equal(t, 123, got)

	back := ro.Unsafe()
	assert.True(t, s.Equal(back))
}

// cycleNode forms a SharedPtr cycle broken by a WeakPtr back-edge.
type cycleNode struct {
	name string
	next ptr.SharedPtr[cycleNode]
	prev ptr.WeakPtr[cycleNode]
}

func TestCycleBrokenByWeakPtrIsFullyDestroyed(t *testing.T) {
	var destroyed []string

	a := &cycleNode{name: "A"}
	b := &cycleNode{name: "B"}

	aPtr := ptr.NewWithDeleter(a, func(p *cycleNode) { destroyed = append(destroyed, p.name) })
	bPtr := ptr.NewWithDeleter(b, func(p *cycleNode) { destroyed = append(destroyed, p.name) })

	a.next = bPtr.Clone()
	b.prev = ptr.NewWeak(aPtr)

	// Drop the external reference to A. A's only strong referent now is
	// gone; A's block had strong=1 (aPtr was never cloned further), so it
	// is destroyed immediately.
	aPtr.Close()
	assert.Contains(t, destroyed, "A")

	// B is still alive via a.next and the external bPtr. Dropping the
	// clone held by A's (now destroyed) struct models A's teardown, and
	// dropping bPtr then releases the last strong ref to B.
	a.next.Close()
	bPtr.Close()
	assert.Contains(t, destroyed, "B")
	assert.Len(t, destroyed, 2)
}
