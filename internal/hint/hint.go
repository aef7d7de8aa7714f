//go:build !tinygo

// Package hint exposes the toolchain primitive behind release-mode
// invariants: a program point the code generator may assume is never
// reached. Reaching it anyway is undefined behavior.
package hint

import (
	"os"
	rdebug "runtime/debug"
)

// Unreachable declares the current program point impossible to reach.
//
// The gc toolchain has no public unreachable intrinsic, so the closest
// available semantics are used: write the diagnostic and stack to stderr
// and exit nonzero. The termination cannot be recovered; no guarantee
// beyond "the program does not continue" is made, and none should be
// relied on.
func Unreachable() {
	os.Stderr.WriteString("invariant: reached code declared unreachable\n")
	rdebug.PrintStack()
	os.Exit(2)
}
