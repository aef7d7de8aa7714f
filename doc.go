// Package invariant provides contract assertions that are checked at runtime
// in development builds and become code-generator hints in release builds.
//
// In the default (checked) build, every assertion evaluates its condition and
// panics with a *Violation diagnostic when the condition does not hold. With
// the release build tag (go build -tags release) the same call site instead
// declares the condition to the toolchain as an unconditional truth: the
// false branch is marked unreachable, licensing the optimizer to delete dead
// code and simplify arithmetic that the condition subsumes.
//
// The trade is deliberate and asymmetric: a violated invariant fails loud and
// early in a checked build, and is undefined behavior in a release build.
// Never let a release build be the first environment in which an invariant's
// truth is exercised.
//
// Seven forms are provided:
//
//	Invariant(cond)    cond is true
//	Eq(left, right)    left == right
//	Ne(left, right)    left != right
//	Lt(left, right)    left < right
//	Le(left, right)    left <= right
//	Gt(left, right)    left > right
//	Ge(left, right)    left >= right
//
// Operands are ordinary function arguments and are therefore evaluated
// exactly once per invocation, identically in both modes.
package invariant

import "github.com/blang/semver/v4"

// Version of the invariant library
var Version = semver.MustParse("0.1.0")
