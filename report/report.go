// Package report renders assertion operands into diagnostic text.
//
// Rendering is a narrow, swappable capability so it can be replaced — or
// compiled down to fixed strings with the invariant_minimal build tag — in
// environments without a formatting stack, without touching condition
// evaluation. Only checked builds link this package.
package report

// Renderer converts a single operand value into diagnostic text.
type Renderer interface {
	RenderOperand(v any) string
}

var renderer Renderer = newRenderer()

// SetRenderer replaces the operand renderer and returns the previous one.
// Not synchronized: call it before assertions may fire, typically from an
// init function.
func SetRenderer(r Renderer) Renderer {
	prev := renderer
	renderer = r
	return prev
}

// Operand renders v with the active renderer.
func Operand(v any) string {
	return renderer.RenderOperand(v)
}
