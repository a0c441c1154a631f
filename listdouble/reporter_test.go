package listdouble_test

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// captureReporter records failures instead of stopping the test, along with
// the first non-helper frame each one is attributed to, as testing.T would.
type captureReporter struct {
	failures []string
	frames   []string
	helpers  map[string]bool
}

func (r *captureReporter) Fatalf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))

	pcs := make([]uintptr, 64)
	frames := runtime.CallersFrames(pcs[:runtime.Callers(2, pcs)])

	for {
		frame, more := frames.Next()
		if !r.helpers[frame.Function] {
			r.frames = append(r.frames, fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line))

			return
		}

		if !more {
			return
		}
	}
}

func (r *captureReporter) Helper() {
	pcs := make([]uintptr, 1)
	if runtime.Callers(2, pcs) == 0 {
		return
	}

	frame, _ := runtime.CallersFrames(pcs).Next()

	if r.helpers == nil {
		r.helpers = map[string]bool{}
	}

	r.helpers[frame.Function] = true
}

// nextLine returns file:line for the line after its caller.
func nextLine() string {
	_, file, line, _ := runtime.Caller(1)

	return fmt.Sprintf("%s:%d", filepath.Base(file), line+1)
}
