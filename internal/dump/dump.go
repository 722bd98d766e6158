// Package dump pretty-prints a container's internal state for failure
// output in invariant-checking tests (e.g. a tree, skip-list or bucket
// array mid property-test), using github.com/davecgh/go-spew.
package dump

import "github.com/davecgh/go-spew/spew"

var config = &spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump renders v as a multi-line, deterministic string suitable for a
// test failure message.
func Dump(v any) string {
	return config.Sdump(v)
}
