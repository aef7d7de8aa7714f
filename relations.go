package invariant

import "golang.org/x/exp/constraints"

// The six relation forms below are thin instantiations over the same two
// expanders as Invariant; the comparison operator is the only difference.
// Operands are evaluated exactly once and cross into the diagnostic path
// only on the failure branch, so a release build keeps nothing but the
// comparison itself.

// Eq checks that left == right.
func Eq[T comparable](left, right T, msg ...string) {
	if !(left == right) {
		fail(KindEq, left, right, msg)
	}
}

// Ne checks that left != right.
func Ne[T comparable](left, right T, msg ...string) {
	if !(left != right) {
		fail(KindNe, left, right, msg)
	}
}

// Lt checks that left < right.
func Lt[T constraints.Ordered](left, right T, msg ...string) {
	if !(left < right) {
		fail(KindLt, left, right, msg)
	}
}

// Le checks that left <= right.
func Le[T constraints.Ordered](left, right T, msg ...string) {
	if !(left <= right) {
		fail(KindLe, left, right, msg)
	}
}

// Gt checks that left > right.
func Gt[T constraints.Ordered](left, right T, msg ...string) {
	if !(left > right) {
		fail(KindGt, left, right, msg)
	}
}

// Ge checks that left >= right.
func Ge[T constraints.Ordered](left, right T, msg ...string) {
	if !(left >= right) {
		fail(KindGe, left, right, msg)
	}
}
