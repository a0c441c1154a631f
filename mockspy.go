// Package mockspy provides test doubles with stubbing and call verification.
// A double runs either as a mock (no real state, zero-value returns) or as a
// spy (delegating to a real object); both can be stubbed per call pattern.
//
// This is the public API entry point. Implementation lives in internal/core.
package mockspy

import (
	"github.com/toejough/mockspy/internal/core"
)

// Imp is the central coordinator for one test double.
type Imp = core.Imp

// NewImp creates a new Imp and registers it in the session for t.
func NewImp(t TestReporter, name string) *Imp {
	return core.NewImp(t, name)
}

// Invocation is a single recorded call on a test double.
type Invocation = core.Invocation

// Matcher defines the interface for flexible value matching.
type Matcher = core.Matcher

// MatchValue checks if actual matches expected.
func MatchValue(actual, expected any) (bool, string) {
	return core.MatchValue(actual, expected)
}

// Method represents a single operation on a test double.
type Method = core.Method

// NewMethod creates a new Method bound to imp.
func NewMethod(imp *Imp, methodName string) *Method {
	return core.NewMethod(imp, methodName)
}

// Result converts the value at index into T, defaulting to T's zero value.
func Result[T any](t TestReporter, values []any, index int) T {
	t.Helper()

	return core.Result[T](t, values, index)
}

// Results checks that a method answered with exactly count values.
func Results(t TestReporter, methodName string, values []any, count int) []any {
	t.Helper()

	return core.Results(t, methodName, values, count)
}

// Stub is a registered override mapping a call pattern to a response.
type Stub = core.Stub

// TestReporter is the minimal interface mockspy needs from test frameworks.
type TestReporter = core.TestReporter

// Verification counts the recorded calls matching a call pattern.
type Verification = core.Verification
