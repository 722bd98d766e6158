package skiplist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/skipor/gostl"
)

func intLess(a, b int) bool { return a < b }

// checkInvariants walks every level in the head and fails the test unless
// its keys are strictly ascending, and unless every node's appearance
// across its levels is internally consistent.
func checkInvariants[V any](t require.TestingT, m *Map[int, V]) {
	for i := 0; i < m.level(); i++ {
		var prev *node[int, V]
		for cur := m.head.forward[i]; cur != nil; cur = cur.forward[i] {
			assert.GreaterOrEqual(t, cur.level(), i+1, "node at level %d must have level count > %d", i, i)
			if prev != nil {
				assert.Less(t, prev.pair.Key(), cur.pair.Key(), "level %d keys must be strictly ascending", i)
			}
			prev = cur
		}
	}

	count := 0
	for cur := m.head.forward[0]; cur != nil; cur = cur.forward[0] {
		count++
	}
	assert.Equal(t, m.size, count, "size must equal level-0 length")
}

func TestInsertSortedOrder(t *testing.T) {
	// Inserting out-of-order keys must still yield them sorted on forward
	// iteration, and the head's level count must be at least 1.
	m := New[int, int](intLess)
	for _, k := range []int{5, 2, 8, 1, 9, 3, 7, 4, 6, 0} {
		ok, err := m.Insert(k, k*10)
		require.NoError(t, err)
		require.True(t, ok)
		checkInvariants(t, m)
	}
	assert.Equal(t, 10, m.Len())
	assert.GreaterOrEqual(t, m.level(), 1)

	var got []int
	for it := m.Begin(); it.Valid(); it.Next() {
		p, err := it.Get()
		require.NoError(t, err)
		got = append(got, p.Key())
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
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

func TestEraseMissingKeyReturnsFalse(t *testing.T) {
	m := New[int, string](intLess)
	_, _ = m.Insert(1, "")
	ok, err := m.Erase(2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEraseShrinksHeadLevel(t *testing.T) {
	// Deterministic source: whatever level the single inserted node draws
	// (with seed 1 the first coin flip is tails, so level 1), erasing it
	// must leave the head at level 1.
	m := NewWithSource[int, int](intLess, rand.New(rand.NewSource(1)))
	_, err := m.Insert(1, 1)
	require.NoError(t, err)
	levelAfterInsert := m.level()
	assert.GreaterOrEqual(t, levelAfterInsert, 1)

	ok, err := m.Erase(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, m.level(), "head must shrink back to level 1 once empty")
	assert.Equal(t, 0, m.Len())
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

func TestIteratorPrevIsUnsupported(t *testing.T) {
	m := New[int, int](intLess)
	_, _ = m.Insert(1, 1)
	it := m.Begin()
	err := it.Prev()
	require.Error(t, err)
	assert.ErrorIs(t, err, gostl.ErrUnsupportedOperation)
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

// TestRandomizedInsertEraseHoldsInvariants property-tests the list against
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
		assert.Equal(rt, len(oracle), m.Len())
		for k, v := range oracle {
			got, err := m.Get(k)
			require.NoError(rt, err)
			assert.Equal(rt, v, got)
		}
	})
}
