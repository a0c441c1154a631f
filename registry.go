package mockspy

import (
	"github.com/toejough/mockspy/internal/core"
)

// Session groups every test double created under the same TestReporter.
type Session = core.Session

// GetOrCreateSession returns the Session for the given test, creating one if needed.
// Multiple calls with the same TestReporter return the same Session instance.
func GetOrCreateSession(t TestReporter) *Session {
	return core.GetOrCreateSession(t)
}

// VerifyNoMoreInteractions fails the test if any double created under t has a
// recorded call that no verification covered.
func VerifyNoMoreInteractions(t TestReporter) {
	t.Helper()
	core.VerifyNoMoreInteractions(t)
}
