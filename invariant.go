package invariant

// Invariant checks that cond holds. In a checked build a false cond panics
// with a *Violation; in a release build a false cond is undefined behavior
// and the optimizer is told the call site is unreachable.
//
// An optional message names the broken contract in diagnostics. Any
// formatting must happen at the call site; guard expensive message
// construction with debug.Checked so release builds pay nothing for it.
func Invariant(cond bool, msg ...string) {
	if !cond {
		fail(KindGeneral, nil, nil, msg)
	}
}
