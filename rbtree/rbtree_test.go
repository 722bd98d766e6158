package rbtree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/skipor/gostl"
	"github.com/skipor/gostl/internal/dump"
)

func intLess(a, b int) bool { return a < b }

// blackHeight walks every root-to-leaf path and fails the test unless all
// of them carry the same count of BLACK nodes, checking spec invariant
// (iii) directly rather than trusting a single path.
func blackHeight(t require.TestingT, n *node[int, int]) int {
	if n == nil {
		return 1
	}
	if n.color == red {
		require.False(t, colorOf(n.left) == red || colorOf(n.right) == red,
			"red node %v has a red child", n.pair.Key())
	}
	lh := blackHeight(t, n.left)
	rh := blackHeight(t, n.right)
	require.Equalf(t, lh, rh, "unequal black height around key %v\n%s", n.pair.Key(), dump.Dump(n))
	if n.color == black {
		return lh + 1
	}
	return lh
}

func checkInvariants[V any](t require.TestingT, m *Map[int, V]) {
	if m.root == nil {
		return
	}
	assert.Equal(t, black, m.root.color, "root must be BLACK")
	assert.Nil(t, m.root.parent)
	var walk func(n *node[int, V])
	walk = func(n *node[int, V]) {
		if n == nil {
			return
		}
		if n.left != nil {
			assert.Less(t, n.left.pair.Key(), n.pair.Key())
			assert.Same(t, n, n.left.parent)
		}
		if n.right != nil {
			assert.Greater(t, n.right.pair.Key(), n.pair.Key())
			assert.Same(t, n, n.right.parent)
		}
		walk(n.left)
		walk(n.right)
	}
	walk(m.root)
}

func checkBlackHeight(t require.TestingT, m *Map[int, int]) {
	blackHeight(t, m.root)
}

func TestInsertAscendingOneToSeven(t *testing.T) {
	// Inserting 1..7 in ascending order forces a sequence of
	// left-leaning rebalances, ending with a recentered root.
	m := New[int, string](intLess)
	for i := 1; i <= 7; i++ {
		ok, err := m.Insert(i, "")
		require.NoError(t, err)
		require.True(t, ok)
		checkInvariants(t, m)
		checkBlackHeight(t, m)
	}
	assert.Equal(t, 7, m.Len())
	assert.Equal(t, 4, m.root.pair.Key(), "root should have recentered after rebalancing")
}

func TestInsertDuplicateKeyReturnsFalse(t *testing.T) {
	m := New[int, string](intLess)
	ok, err := m.Insert(1, "a")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = m.Insert(1, "b")
	require.NoError(t, err)
	assert.False(t, ok)
	v, err := m.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "a", v, "duplicate insert must not overwrite")
}

func TestEraseTriggeringDoubleRotation(t *testing.T) {
	// Build 10B(5B, 15B(12R, -)), then delete the black leaf 5: its
	// sibling 15 has only a near (left) red child, so the fixup rotates
	// right at 15 and then left at 10, leaving 12 at the root.
	m := New[int, string](intLess)
	for _, k := range []int{10, 5, 15, 12} {
		_, err := m.Insert(k, "")
		require.NoError(t, err)
	}
	checkInvariants(t, m)
	checkBlackHeight(t, m)

	ok, err := m.Erase(5)
	require.NoError(t, err)
	require.True(t, ok)
	checkInvariants(t, m)
	checkBlackHeight(t, m)
	assert.False(t, m.ContainsKey(5))
	assert.Equal(t, 3, m.Len())
}

func TestEraseMissingKeyReturnsFalse(t *testing.T) {
	m := New[int, string](intLess)
	_, _ = m.Insert(1, "")
	ok, err := m.Erase(2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestModifyOverwritesValue(t *testing.T) {
	m := New[int, string](intLess)
	_, _ = m.Insert(1, "a")
	ok, err := m.Modify(1, "b")
	require.NoError(t, err)
	assert.True(t, ok)
	v, err := m.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	ok, err = m.Modify(2, "x")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetMissingKeyIsNoSuchElement(t *testing.T) {
	m := New[int, string](intLess)
	_, err := m.Get(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, gostl.ErrNoSuchElement)
}

func TestIndexMatchesGet(t *testing.T) {
	m := New[int, string](intLess)
	_, _ = m.Insert(5, "v")
	got, err := m.Index(5)
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestIteratorWalksInOrder(t *testing.T) {
	m := New[int, int](intLess)
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		_, _ = m.Insert(k, k*10)
	}
	var got []int
	for it := m.Begin(); it.Valid(); it.Next() {
		p, err := it.Get()
		require.NoError(t, err)
		got = append(got, p.Key())
	}
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, got)
}

func TestIteratorPrevFromEndReachesMax(t *testing.T) {
	m := New[int, int](intLess)
	for _, k := range []int{2, 1, 3} {
		_, _ = m.Insert(k, 0)
	}
	it := m.End()
	require.NoError(t, it.Prev())
	p, err := it.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, p.Key())
}

func TestFindReturnsEndForMissingKey(t *testing.T) {
	m := New[int, int](intLess)
	_, _ = m.Insert(1, 0)
	it := m.Find(99)
	assert.False(t, it.Valid())
}

func TestSetInsertContainsEraseAndKeyIteration(t *testing.T) {
	s := NewSet[int](intLess)
	for _, k := range []int{3, 1, 2} {
		ok, err := s.Insert(k)
		require.NoError(t, err)
		require.True(t, ok)
	}
	ok, err := s.Insert(2)
	require.NoError(t, err)
	assert.False(t, ok, "duplicate set insert must report false")

	assert.True(t, s.Contains(1))
	assert.Equal(t, 3, s.Len())

	var got []int
	for it := s.Begin(); it.Valid(); it.Next() {
		k, err := it.Key()
		require.NoError(t, err)
		got = append(got, k)
	}
	assert.Equal(t, []int{1, 2, 3}, got)

	ok, err = s.Erase(2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, s.Contains(2))
}

// TestRandomizedInsertEraseHoldsInvariants property-tests the tree against
// a plain map oracle across randomized insert/erase sequences.
func TestRandomizedInsertEraseHoldsInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m := New[int, int](intLess)
		oracle := map[int]int{}

		ops := rapid.SliceOfN(rapid.IntRange(0, 40), 1, 200).Draw(rt, "keys")
		for i, k := range ops {
			if i%3 == 0 {
				delete(oracle, k)
				_, err := m.Erase(k)
				require.NoError(rt, err)
			} else {
				oracle[k] = k
				_, err := m.Insert(k, k)
				require.NoError(rt, err)
			}
		}

		checkInvariants(rt, m)
		checkBlackHeight(rt, m)
		assert.Equal(rt, len(oracle), m.Len())
		for k, v := range oracle {
			got, err := m.Get(k)
			require.NoError(rt, err)
			assert.Equal(rt, v, got)
		}
	})
}

// TestIterationSequenceMatchesSortedOracle diffs the full in-order
// iteration sequence against a sorted oracle slice with go-cmp, catching
// any reordering a spot-check of a few keys would miss.
func TestIterationSequenceMatchesSortedOracle(t *testing.T) {
	m := New[int, int](intLess)
	keys := []int{8, 3, 1, 9, 5, 2, 7, 6, 4, 0}
	for _, k := range keys {
		_, _ = m.Insert(k, k)
	}

	var got []int
	for it := m.Begin(); it.Valid(); it.Next() {
		p, err := it.Get()
		require.NoError(t, err)
		got = append(got, p.Key())
	}

	want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("iteration sequence mismatch (-want +got):\n%s", diff)
	}
}
