//go:build !release

package debug

// Checked reports whether this binary was built with invariant checks
// enabled. It is a compile-time constant: use it to guard work that only
// exists to feed an assertion, so release builds drop the whole block.
//
//	if debug.Checked {
//		sum := expensiveChecksum(buf)
//		invariant.Eq(sum, want)
//	}
const Checked = true
