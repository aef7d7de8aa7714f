package logger

import (
	"bytes"
	"io"
	"testing"

	"github.com/hintlabs/invariant/debug"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// Runs first: the later tests replace the global logger.
func TestInitialState(t *testing.T) {
	l := Logger()
	if debug.Checked {
		require.Equal(t, zerolog.Disabled, l.GetLevel(),
			"checked test binaries start with a Nop logger")
	} else {
		require.NotEqual(t, zerolog.Disabled, l.GetLevel())
	}
}

func TestSetAndCapture(t *testing.T) {
	assert := require.New(t)

	var buf bytes.Buffer
	Set(zerolog.New(&buf))
	defer Disable()

	l := Logger()
	l.Error().Str("kind", "invariant_eq").Msg("invariant violated")
	assert.Contains(buf.String(), "invariant violated")
	assert.Contains(buf.String(), "invariant_eq")
}

func TestSetOutput(t *testing.T) {
	assert := require.New(t)

	var buf bytes.Buffer
	Set(zerolog.New(io.Discard))
	defer Disable()
	SetOutput(&buf)

	l := Logger()
	l.Error().Msg("redirected")
	assert.Contains(buf.String(), "redirected")
}

func TestDisable(t *testing.T) {
	var buf bytes.Buffer
	Set(zerolog.New(&buf))
	Disable()

	l := Logger()
	l.Error().Msg("dropped")
	require.Empty(t, buf.String())
}
