package pair_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skipor/gostl/pair"
)

func TestKeyImmutableValueMutable(t *testing.T) {
	p := pair.New("a", 1)
	assert.Equal(t, "a", p.Key())
	assert.Equal(t, 1, p.Value())

	p.SetValue(2)
	assert.Equal(t, "a", p.Key(), "key must never change")
	assert.Equal(t, 2, p.Value())
}

func TestEqual(t *testing.T) {
	a := pair.New("k", 1)
	b := pair.New("k", 1)
	c := pair.New("k", 2)

	eqInt := func(x, y int) bool { return x == y }
	eqStr := func(x, y string) bool { return x == y }

	assert.True(t, pair.Equal(a, b, eqStr, eqInt))
	assert.False(t, pair.Equal(a, c, eqStr, eqInt))
}

type stringerKey string

func (s stringerKey) String() string { return "K<" + string(s) + ">" }

func TestStringUsesStringerWhenAvailable(t *testing.T) {
	p := pair.New(stringerKey("x"), 7)
	assert.Equal(t, "(K<x>, 7)", p.String())

	q := pair.New("plain", 7)
	assert.Equal(t, fmt.Sprintf("(%v, %v)", "plain", 7), q.String())
}
