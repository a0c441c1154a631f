package core

import (
	"fmt"
	"slices"
	"strings"

	"github.com/akedrou/textdiff"
)

// Verification counts the recorded calls matching a call pattern.
// Finish it with one of Times, Once, Never, AtLeast or AtMost.
type Verification struct {
	imp        *Imp
	methodName string
	expected   string
	validator  func([]any) error
}

// AtLeast asserts the pattern was called n or more times.
func (v *Verification) AtLeast(n int) {
	v.imp.t.Helper()
	mustBeCount(n)
	v.check(func(got int) bool { return got >= n }, fmt.Sprintf("at least %d", n))
}

// AtMost asserts the pattern was called no more than n times.
func (v *Verification) AtMost(n int) {
	v.imp.t.Helper()
	mustBeCount(n)
	v.check(func(got int) bool { return got <= n }, fmt.Sprintf("at most %d", n))
}

// Never asserts the pattern was not called.
func (v *Verification) Never() {
	v.imp.t.Helper()
	v.Times(0)
}

// Once asserts the pattern was called exactly once.
func (v *Verification) Once() {
	v.imp.t.Helper()
	v.Times(1)
}

// Times asserts the pattern was called exactly n times.
func (v *Verification) Times(n int) {
	v.imp.t.Helper()
	mustBeCount(n)
	v.check(func(got int) bool { return got == n }, fmt.Sprintf("exactly %d", n))
}

// check counts matching invocations and, when the count is acceptable, marks
// them verified. Otherwise the test fails with the recorded calls of the method.
// Matchers run on a snapshot of the log, without the lock held.
func (v *Verification) check(accept func(int) bool, want string) {
	v.imp.t.Helper()

	v.imp.mu.Lock()
	log := slices.Clone(v.imp.invocations)
	v.imp.mu.Unlock()

	var (
		matched    []*Invocation
		sameMethod []string
	)

	for _, inv := range log {
		if inv.MethodName != v.methodName {
			continue
		}

		sameMethod = append(sameMethod, inv.String())

		if v.validator(inv.Args) == nil {
			matched = append(matched, inv)
		}
	}

	if !accept(len(matched)) {
		v.imp.Fatalf("%s: wanted %s call(s) of %s, got %d%s",
			v.imp.name, want, v.expected, len(matched), callDiff(v.expected, sameMethod))

		return
	}

	v.imp.mu.Lock()
	for _, inv := range matched {
		inv.verified = true
	}
	v.imp.mu.Unlock()
}

// callDiff renders the recorded calls of a method against the expected one.
func callDiff(expected string, recorded []string) string {
	if len(recorded) == 0 {
		return "\nno calls of that method were recorded"
	}

	diff := textdiff.Unified("wanted", "recorded", expected+"\n", strings.Join(recorded, "\n")+"\n")
	if diff == "" {
		return ""
	}

	return "\n" + diff
}

func mustBeCount(n int) {
	if n < 0 {
		panic(fmt.Sprintf("mockspy: invocation count must not be negative, got %d", n))
	}
}

func newVerification(imp *Imp, methodName, expected string, validator func([]any) error) *Verification {
	return &Verification{
		imp:        imp,
		methodName: methodName,
		expected:   expected,
		validator:  validator,
	}
}
