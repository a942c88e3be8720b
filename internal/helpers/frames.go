package helpers

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// CallerFrames describes the stack of the calling goroutine, innermost call
// first, as "package.Function (file.go:line)". Frames inside the Go runtime
// are left out. A "skip" of 0 starts at the caller of this function.
func CallerFrames(skip int) []string {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(skip+2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var lines []string
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, "runtime.") {
			name := frame.Function
			if slash := strings.LastIndexByte(name, '/'); slash != -1 {
				name = name[slash+1:]
			}
			lines = append(lines, fmt.Sprintf("%s (%s:%d)", name, filepath.Base(frame.File), frame.Line))
		}
		if !more {
			break
		}
	}
	return lines
}
