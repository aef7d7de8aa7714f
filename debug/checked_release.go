//go:build release

package debug

// Checked reports whether this binary was built with invariant checks
// enabled. False in release builds: assertions are optimizer hints and
// anything guarded by this constant is compiled out.
const Checked = false
