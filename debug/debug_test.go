package debug

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func helperStack() string {
	return Stack()
}

func TestCaller(t *testing.T) {
	assert := require.New(t)

	file, line := Caller(0)
	assert.Equal("debug_test.go", file)
	assert.NotZero(line)
}

func TestStack(t *testing.T) {
	assert := require.New(t)

	s := helperStack()
	assert.Contains(s, "debug.helperStack")
	assert.Contains(s, "debug_test.go")
}
