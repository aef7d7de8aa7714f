//go:build release

package invariant_test

import (
	"testing"

	"github.com/hintlabs/invariant"
	"github.com/hintlabs/invariant/debug"
	"github.com/stretchr/testify/require"
)

// A violated invariant is undefined behavior in a release build, so only
// the success path is observable here. Run with: go test -tags release

func TestReleaseMode(t *testing.T) {
	assert := require.New(t)
	assert.False(debug.Checked)

	sum := 0
	for i := 1; i <= 100; i++ {
		invariant.Gt(i, 0)
		invariant.Le(i, 100)
		sum += i
	}
	assert.Equal(5050, sum, "results must match a checked build on the success path")
}
