//go:build !invariant_minimal

package report

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

type fmtRenderer struct{}

func (fmtRenderer) RenderOperand(v any) string {
	return fmt.Sprintf("%v", v)
}

func newRenderer() Renderer {
	return fmtRenderer{}
}

// Diff returns a go-cmp rendering of how left and right differ, or "" when
// the values cannot be diffed (unexported fields, func values, ...).
func Diff(left, right any) (d string) {
	defer func() {
		if recover() != nil {
			d = ""
		}
	}()
	return cmp.Diff(left, right)
}
