package dump

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpRendersFieldNames(t *testing.T) {
	type point struct{ X, Y int }
	out := Dump(point{X: 1, Y: 2})
	assert.Contains(t, out, "X: (int) 1")
	assert.Contains(t, out, "Y: (int) 2")
}
