package core

import (
	"errors"
	"fmt"
	"reflect"
)

// Method represents a single operation on a test double.
// It provides methods to stub and verify calls to that specific operation.
// Typed doubles create one instance of this per method of the faked interface.
type Method struct {
	imp        *Imp
	methodName string
}

// NewMethod creates a new Method bound to imp.
func NewMethod(imp *Imp, methodName string) *Method {
	return &Method{
		imp:        imp,
		methodName: methodName,
	}
}

// Name returns the method name.
func (m *Method) Name() string {
	return m.methodName
}

// VerifyCalled starts a verification counting calls to this method with any arguments.
func (m *Method) VerifyCalled() *Verification {
	return newVerification(m.imp, m.methodName, m.methodName+"(..)", anyArgs)
}

// VerifyCalledWithExactly starts a verification counting calls to this method
// with exactly the specified arguments, compared with reflect.DeepEqual.
func (m *Method) VerifyCalledWithExactly(args ...any) *Verification {
	return newVerification(m.imp, m.methodName, formatCall(m.methodName, args), exactArgs(args))
}

// VerifyCalledWithMatches starts a verification counting calls to this method
// whose arguments satisfy the given matchers. Each entry is either a Matcher
// (gomega matchers qualify) or a plain value compared with reflect.DeepEqual.
func (m *Method) VerifyCalledWithMatches(matchers ...any) *Verification {
	return newVerification(m.imp, m.methodName, formatCall(m.methodName, matchers), matchedArgs(matchers))
}

// WhenCalled registers a stub for calls to this method with any arguments.
func (m *Method) WhenCalled() *Stub {
	return m.stub(anyArgs)
}

// WhenCalledWithExactly registers a stub for calls to this method with exactly
// the specified arguments.
func (m *Method) WhenCalledWithExactly(args ...any) *Stub {
	return m.stub(exactArgs(args))
}

// WhenCalledWithMatches registers a stub for calls to this method whose
// arguments satisfy the given matchers.
func (m *Method) WhenCalledWithMatches(matchers ...any) *Stub {
	return m.stub(matchedArgs(matchers))
}

func (m *Method) stub(validator func([]any) error) *Stub {
	stub := &Stub{
		methodName: m.methodName,
		validator:  validator,
	}

	m.imp.registerStub(stub)

	return stub
}

// unexported variables.
var (
	errArgCount    = errors.New("wrong number of arguments")
	errArgMismatch = errors.New("argument mismatch")
)

func anyArgs([]any) error {
	return nil
}

// exactArgs returns a validator comparing each argument with reflect.DeepEqual.
func exactArgs(expected []any) func([]any) error {
	return func(actualArgs []any) error {
		if len(actualArgs) != len(expected) {
			return fmt.Errorf("%w: expected %d, got %d", errArgCount, len(expected), len(actualArgs))
		}

		for i, want := range expected {
			if !reflect.DeepEqual(actualArgs[i], want) {
				return fmt.Errorf("%w: arg %d: expected %#v, got %#v", errArgMismatch, i, want, actualArgs[i])
			}
		}

		return nil
	}
}

// matchedArgs returns a validator applying MatchValue to each argument.
func matchedArgs(matchers []any) func([]any) error {
	return func(actualArgs []any) error {
		if len(actualArgs) != len(matchers) {
			return fmt.Errorf("%w: expected %d, got %d", errArgCount, len(matchers), len(actualArgs))
		}

		for index, matcher := range matchers {
			ok, failureMsg := MatchValue(actualArgs[index], matcher)
			if !ok {
				return fmt.Errorf("%w: arg %d: %s", errArgMismatch, index, failureMsg)
			}
		}

		return nil
	}
}
