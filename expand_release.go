//go:build release

package invariant

import "github.com/hintlabs/invariant/internal/hint"

// fail is the optimized-mode expansion. Reaching it means a declared
// invariant is false, which this build has promised the code generator
// cannot happen: the call collapses to an unreachable hint and none of the
// rendering, logging or Violation machinery is linked into the binary.
//
// Undefined behavior if reached. This is the deliberate trade of the
// release mode, not a safety net.
func fail(kind Kind, left, right any, msg []string) {
	hint.Unreachable()
}
