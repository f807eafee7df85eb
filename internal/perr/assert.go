// Package perr implements the fatal-assertion helper used to guard
// structural impossibilities within the piece table core: conditions that
// must never occur if the data-model invariants are respected, and which
// therefore indicate a broken invariant rather than a recoverable error.
package perr

import "fmt"

// Assertf panics with a formatted message if cond is false. It guards both
// broken data-model invariants and violated API preconditions -- in either
// case the caller has a bug, and there is no recoverable error to return.
// It is not for conditions that can legitimately arise from external input
// (a missing file, malformed data); those get a regular error return.
func Assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
