//go:build invariant_minimal

package report

// The minimal configuration keeps fmt and go-cmp off the violation path
// entirely: operands render as fixed placeholders, diffs are unavailable.
// The abnormal termination itself is never omitted.

type fixedRenderer struct{}

func (fixedRenderer) RenderOperand(any) string {
	return "<operand>"
}

func newRenderer() Renderer {
	return fixedRenderer{}
}

// Diff is unavailable without the formatting stack.
func Diff(left, right any) string {
	return ""
}
