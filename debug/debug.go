// Package debug exposes the build mode of the invariant library and helpers
// for locating the assertion call site in diagnostics.
package debug

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Caller reports the file (base name) and line of the frame skip levels
// above the caller of Caller.
func Caller(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown", 0
	}
	return filepath.Base(file), line
}

// Stack returns the call stack leading to the assertion site, most recent
// call first.
func Stack() string {
	var sbb strings.Builder
	WriteStack(&sbb)
	return sbb.String()
}

// WriteStack writes the current call stack to sbb, one "function\n\tfile:line"
// entry per frame. Frames inside this module are skipped so the trace starts
// at the assertion call site.
func WriteStack(sbb *strings.Builder) {
	// derived from: https://golang.org/pkg/runtime/#example_Frames

	// Ask runtime.Callers for up to 10 pcs
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	if n == 0 {
		// No pcs available. Stop now.
		// This can happen if the first argument to runtime.Callers is large.
		return
	}
	pc = pc[:n] // pass only valid pcs to runtime.CallersFrames
	frames := runtime.CallersFrames(pc)
	// Loop to get frames.
	// A fixed number of pcs can expand to an indefinite number of Frames.
	for {
		frame, more := frames.Next()
		fe := strings.Split(frame.Function, "/")
		function := fe[len(fe)-1]

		if strings.Contains(function, "runtime.gopanic") {
			continue
		}
		if strings.Contains(frame.Function, "hintlabs/invariant.") {
			continue
		}
		if strings.HasPrefix(function, "testing.") {
			break
		}

		sbb.WriteString(function)
		sbb.WriteByte('\n')
		sbb.WriteByte('\t')
		sbb.WriteString(filepath.Base(frame.File))
		sbb.WriteByte(':')
		sbb.WriteString(strconv.Itoa(frame.Line))
		sbb.WriteByte('\n')
		if !more {
			break
		}
	}
}
