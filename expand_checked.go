//go:build !release

package invariant

import (
	"strconv"

	"github.com/hintlabs/invariant/debug"
	"github.com/hintlabs/invariant/logger"
	"github.com/hintlabs/invariant/report"
)

// fail is the checked-mode expansion: build the Violation diagnostic, emit
// it through the package logger and panic. Never returns.
//
// It must stay out of line so the seven wrappers inline down to a bare
// comparison on the success path; operand rendering happens only here.
//
//go:noinline
func fail(kind Kind, left, right any, msg []string) {
	v := &Violation{Kind: kind}
	if kind != KindGeneral {
		v.Left = report.Operand(left)
		v.Right = report.Operand(right)
	}
	if kind == KindEq {
		v.Diff = report.Diff(left, right)
	}
	if len(msg) > 0 {
		v.Msg = msg[0]
	}
	v.File, v.Line = debug.Caller(2)

	log := logger.Logger()
	log.Error().
		Str("kind", kind.String()).
		Str("left", v.Left).
		Str("right", v.Right).
		Str("location", v.File+":"+strconv.Itoa(v.Line)).
		Str("stack", debug.Stack()).
		Msg("invariant violated")

	panic(v)
}
