// Package core provides the internal implementation of mockspy's stub table,
// invocation log and verification infrastructure.
package core

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Imp is the central coordinator for one test double.
// It records every intercepted call and resolves the registered stubs.
type Imp struct {
	t    TestReporter
	name string

	mu          sync.Mutex // Protects invocations and stubs
	invocations []*Invocation
	stubs       []*Stub
}

// NewImp creates a new Imp coordinator and registers it in the session for t.
func NewImp(t TestReporter, name string) *Imp {
	imp := &Imp{
		t:    t,
		name: name,
	}

	GetOrCreateSession(t).add(imp)

	return imp
}

// Fatalf fails the test with a formatted message.
// Implements TestReporter interface.
func (i *Imp) Fatalf(format string, args ...any) {
	i.t.Helper()
	i.t.Fatalf(format, args...)
}

// Helper forwards to the underlying reporter, which marks Helper itself.
// Helpers that must be skipped in failure output call Reporter().Helper().
// Implements TestReporter interface.
func (i *Imp) Helper() {
	i.t.Helper()
}

// Invocations returns a copy of the invocation log, oldest first.
func (i *Imp) Invocations() []Invocation {
	i.mu.Lock()
	defer i.mu.Unlock()

	log := make([]Invocation, 0, len(i.invocations))
	for _, inv := range i.invocations {
		entry := *inv
		entry.Args = slices.Clone(inv.Args)
		log = append(log, entry)
	}

	return log
}

// Invoke records a call and answers it. A matching stub wins; otherwise the
// fallback decides the returns. A nil fallback yields no values, which typed
// callers turn into zero values.
func (i *Imp) Invoke(methodName string, args []any, fallback func() []any) []any {
	stub := i.Intercept(methodName, args...)
	if stub != nil {
		return stub.respond(args)
	}

	if fallback == nil {
		return nil
	}

	return fallback()
}

// Intercept appends a call to the invocation log and returns the most recently
// registered stub that matches it, or nil.
// Stub matchers run without the lock held, so they may call the double.
func (i *Imp) Intercept(methodName string, args ...any) *Stub {
	i.mu.Lock()
	i.invocations = append(i.invocations, &Invocation{
		MethodName: methodName,
		Args:       args,
	})
	stubs := slices.Clone(i.stubs)
	i.mu.Unlock()

	for _, stub := range slices.Backward(stubs) {
		if stub.matches(methodName, args) {
			return stub
		}
	}

	return nil
}

// Name returns the name the double was created with.
func (i *Imp) Name() string {
	return i.name
}

// Reporter returns the TestReporter the double reports failures to.
func (i *Imp) Reporter() TestReporter {
	return i.t
}

// Reset forgets all stubs and recorded invocations.
func (i *Imp) Reset() {
	i.mu.Lock()
	i.invocations = nil
	i.stubs = nil
	i.mu.Unlock()
}

// VerifyNoMoreInteractions fails the test if any recorded invocation has not
// been covered by a successful verification.
func (i *Imp) VerifyNoMoreInteractions() {
	i.t.Helper()

	unverified := i.unverified()
	if len(unverified) == 0 {
		return
	}

	lines := make([]string, 0, len(unverified))
	for _, inv := range unverified {
		lines = append(lines, "  "+inv.String())
	}

	i.t.Fatalf("%s: %d unverified interaction(s):\n%s",
		i.name, len(unverified), strings.Join(lines, "\n"))
}

// registerStub adds a stub to the table. Later stubs take precedence.
func (i *Imp) registerStub(stub *Stub) {
	i.mu.Lock()
	i.stubs = append(i.stubs, stub)
	i.mu.Unlock()
}

func (i *Imp) unverified() []Invocation {
	i.mu.Lock()
	defer i.mu.Unlock()

	var unverified []Invocation

	for _, inv := range i.invocations {
		if !inv.verified {
			unverified = append(unverified, *inv)
		}
	}

	return unverified
}

// Invocation is a single recorded call on a test double.
type Invocation struct {
	MethodName string
	Args       []any
	verified   bool
}

// Name returns the method name of the call.
func (inv Invocation) Name() string {
	return inv.MethodName
}

// String renders the call as it would appear in source, e.g. Add("test").
func (inv Invocation) String() string {
	return formatCall(inv.MethodName, inv.Args)
}

// Verified reports whether a verification has covered this call.
func (inv Invocation) Verified() bool {
	return inv.verified
}

func formatArg(arg any) string {
	if _, ok := arg.(Matcher); ok {
		return fmt.Sprintf("<%T>", arg)
	}

	return fmt.Sprintf("%#v", arg)
}

func formatCall(methodName string, args []any) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, formatArg(arg))
	}

	return methodName + "(" + strings.Join(parts, ", ") + ")"
}
