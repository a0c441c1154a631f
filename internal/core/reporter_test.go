package core_test

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// fakeReporter captures failures instead of stopping the test. Like
// testing.T, it attributes each failure to the first caller frame that has
// not marked itself with Helper.
type fakeReporter struct {
	mu       sync.Mutex
	failures []string
	frames   []string
	helpers  map[string]bool
}

func (r *fakeReporter) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.failures) > 0
}

func (r *fakeReporter) Failure() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return strings.Join(r.failures, "\n")
}

func (r *fakeReporter) Fatalf(format string, args ...any) {
	frame := r.callerFrame()

	r.mu.Lock()
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
	r.frames = append(r.frames, frame)
	r.mu.Unlock()
}

// Frames returns the file:line each failure was attributed to.
func (r *fakeReporter) Frames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.frames...)
}

func (r *fakeReporter) Helper() {
	pcs := make([]uintptr, 1)
	if runtime.Callers(2, pcs) == 0 {
		return
	}

	frame, _ := runtime.CallersFrames(pcs).Next()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.helpers == nil {
		r.helpers = map[string]bool{}
	}

	r.helpers[frame.Function] = true
}

func (r *fakeReporter) callerFrame() string {
	pcs := make([]uintptr, 64)
	frames := runtime.CallersFrames(pcs[:runtime.Callers(3, pcs)])

	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		frame, more := frames.Next()
		if !r.helpers[frame.Function] {
			return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
		}

		if !more {
			return ""
		}
	}
}

// nextLine returns file:line for the line after its caller.
func nextLine() string {
	_, file, line, _ := runtime.Caller(1)

	return fmt.Sprintf("%s:%d", filepath.Base(file), line+1)
}
