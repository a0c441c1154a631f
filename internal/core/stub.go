package core

import (
	"slices"
	"sync"
)

// Stub is a registered override mapping a call pattern to a response.
// A stub takes effect once Return, Panic or Answer has been called on it.
type Stub struct {
	methodName string
	validator  func([]any) error

	mu           sync.Mutex
	kind         responseKind
	returnValues []any
	panicValue   any
	answer       func(args []any) []any
}

// Answer specifies a function computing the returns from the call's arguments.
// The function must return one value per result of the method.
func (s *Stub) Answer(answer func(args []any) []any) *Stub {
	if answer == nil {
		panic("mockspy: Answer requires a non-nil function")
	}

	s.mu.Lock()
	s.kind = responseAnswer
	s.answer = answer
	s.mu.Unlock()

	return s
}

// Panic specifies that matching calls should panic with the given value.
func (s *Stub) Panic(value any) *Stub {
	s.mu.Lock()
	s.kind = responsePanic
	s.panicValue = value
	s.mu.Unlock()

	return s
}

// Return specifies the values matching calls should return.
func (s *Stub) Return(values ...any) *Stub {
	s.mu.Lock()
	s.kind = responseReturn
	s.returnValues = slices.Clone(values)
	s.mu.Unlock()

	return s
}

func (s *Stub) matches(methodName string, args []any) bool {
	if s.methodName != methodName {
		return false
	}

	s.mu.Lock()
	kind := s.kind
	s.mu.Unlock()

	if kind == responseNone {
		return false
	}

	return s.validator(args) == nil
}

func (s *Stub) respond(args []any) []any {
	s.mu.Lock()
	kind := s.kind
	returnValues := s.returnValues
	panicValue := s.panicValue
	answer := s.answer
	s.mu.Unlock()

	// A stubbed response is never nil, so callers can tell it from an
	// unstubbed mock that returned nothing.
	switch kind {
	case responsePanic:
		panic(panicValue)
	case responseAnswer:
		return append([]any{}, answer(args)...)
	case responseReturn:
		return append([]any{}, returnValues...)
	case responseNone:
	}

	return nil
}

type responseKind int

const (
	responseNone responseKind = iota
	responseReturn
	responsePanic
	responseAnswer
)
