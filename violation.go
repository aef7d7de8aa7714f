package invariant

import (
	"strconv"
	"strings"
)

// Violation is the diagnostic record carried by the panic a checked build
// raises when an invariant does not hold. It is built on the failure path
// only and is never stored; release builds do not reference it at all.
//
// A Violation signals a programmer contract breach, not an expected runtime
// condition. It is not meant to be recovered.
type Violation struct {
	Kind Kind

	// Left and Right are the rendered operands. Empty for KindGeneral.
	Left  string
	Right string

	// Diff carries a structured diff of the operands for failed equality
	// checks on composite values, when the active renderer can produce one.
	Diff string

	// File and Line locate the assertion call site.
	File string
	Line int

	// Msg is the optional caller-supplied message.
	Msg string
}

// Error formats the violation the way the checked expander reports it:
//
//	invariant violated: `(left == right)`
//	  left: `0`,
//	 right: `1`
//
// Built without fmt so the minimal configuration keeps the same rendering.
func (v *Violation) Error() string {
	var sbb strings.Builder
	sbb.WriteString("invariant violated")
	if v.File != "" {
		sbb.WriteString(" at ")
		sbb.WriteString(v.File)
		sbb.WriteByte(':')
		sbb.WriteString(strconv.Itoa(v.Line))
	}
	sbb.WriteString(": ")
	if v.Kind == KindGeneral {
		sbb.WriteString("condition is false")
	} else {
		sbb.WriteString("`(left ")
		sbb.WriteString(v.Kind.Relation())
		sbb.WriteString(" right)`\n  left: `")
		sbb.WriteString(v.Left)
		sbb.WriteString("`,\n right: `")
		sbb.WriteString(v.Right)
		sbb.WriteByte('`')
	}
	if v.Msg != "" {
		sbb.WriteString("\n message: ")
		sbb.WriteString(v.Msg)
	}
	if v.Diff != "" {
		sbb.WriteString("\n diff (-left +right):\n")
		sbb.WriteString(v.Diff)
	}
	return sbb.String()
}
