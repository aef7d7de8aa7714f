//go:build tinygo

package hint

// assume lowers to the llvm.assume intrinsic, telling LLVM the given
// condition is always true at this point.
//
//go:export llvm.assume
func assume(cond bool)

// Unreachable declares the current program point impossible to reach. On
// TinyGo this feeds llvm.assume(false) straight to the code generator, so
// the optimizer deletes the branch and everything it dominates. Undefined
// behavior if reached.
func Unreachable() {
	assume(false)
}
