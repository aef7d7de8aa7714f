//go:build !release && invariant_minimal

package invariant_test

import (
	"testing"

	"github.com/hintlabs/invariant"
	"github.com/stretchr/testify/require"
)

// The minimal configuration drops operand formatting, never the check
// itself: a violation still terminates with kind and location, operands
// render as fixed placeholders. Run with: go test -tags invariant_minimal

func TestMinimalStillTerminates(t *testing.T) {
	assert := require.New(t)

	defer func() {
		r := recover()
		assert.NotNil(r, "violation must terminate even without a formatting stack")
		v, ok := r.(*invariant.Violation)
		assert.True(ok)
		assert.Equal(invariant.KindLt, v.Kind)
		assert.Equal("<operand>", v.Left)
		assert.Equal("<operand>", v.Right)
		assert.Equal("minimal_test.go", v.File)
	}()
	invariant.Lt(5, 3)
}
