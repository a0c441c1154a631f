package core

import (
	"sync"
)

// Session groups every test double created under the same TestReporter.
type Session struct {
	mu   sync.Mutex
	imps []*Imp
}

// GetOrCreateSession returns the Session for the given test, creating one if needed.
// Multiple calls with the same TestReporter return the same Session instance.
//
// If the TestReporter supports Cleanup (like *testing.T), the Session is
// automatically removed from the registry when the test completes.
func GetOrCreateSession(t TestReporter) *Session {
	registryMu.Lock()
	defer registryMu.Unlock()

	if session, ok := registry[t]; ok {
		return session
	}

	session := &Session{}
	registry[t] = session

	if cr, ok := t.(cleanupRegistrar); ok {
		cr.Cleanup(func() {
			registryMu.Lock()
			delete(registry, t)
			registryMu.Unlock()
		})
	}

	return session
}

// VerifyNoMoreInteractions checks every double registered under t.
// If no double has been created for t yet, it returns immediately.
func VerifyNoMoreInteractions(t TestReporter) {
	t.Helper()

	registryMu.Lock()

	session, ok := registry[t]

	registryMu.Unlock()

	if !ok {
		return
	}

	for _, imp := range session.Imps() {
		imp.VerifyNoMoreInteractions()
	}
}

// Imps returns the doubles in the session, in creation order.
func (s *Session) Imps() []*Imp {
	s.mu.Lock()
	defer s.mu.Unlock()

	imps := make([]*Imp, len(s.imps))
	copy(imps, s.imps)

	return imps
}

func (s *Session) add(imp *Imp) {
	s.mu.Lock()
	s.imps = append(s.imps, imp)
	s.mu.Unlock()
}

// TestReporter is the minimal interface mockspy needs from test frameworks.
type TestReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Package-level registry is intentional for test coordination
	registry = make(map[TestReporter]*Session)
	//nolint:gochecknoglobals // Mutex for registry
	registryMu sync.Mutex
)

// cleanupRegistrar is the interface needed for registering cleanup functions.
// This is satisfied by *testing.T and *testing.B.
type cleanupRegistrar interface {
	Cleanup(cleanupFunc func())
}
