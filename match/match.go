// Package match provides matchers for use with mockspy's WhenCalledWithMatches
// and VerifyCalledWithMatches.
// Its matchers mix freely with gomega matchers:
//
//	imp.Insert.WhenCalledWithMatches(BeNumerically(">", 0), match.BeAny).Return(true)
package match

import (
	"errors"
	"fmt"
	"reflect"
)

// errTypeMismatch is a sentinel error for type assertion failures.
var errTypeMismatch = errors.New("type mismatch")

// Matcher defines the interface for flexible value matching.
// It has the same method set as mockspy.Matcher, and gomega matchers satisfy both.
type Matcher interface {
	Match(actual any) (success bool, err error)
	FailureMessage(actual any) string
}

// BeAny is a matcher that matches any value.
// Useful when you don't care about a particular argument.
//
//nolint:gochecknoglobals // Intentional exported constant-like value
var BeAny Matcher = anyMatcher{}

// Satisfy returns a matcher that uses a predicate function to check for a match.
// The predicate should return nil if the value matches, or an error describing
// the mismatch if it does not. The matcher keeps no state between calls, so one
// instance may be shared by concurrent calls on a double.
//
// Example:
//
//	imp.Get.VerifyCalledWithMatches(match.Satisfy(func(i int) error {
//	    if i < 0 { return fmt.Errorf("expected a valid index, got %d", i) }
//	    return nil
//	})).AtLeast(1)
func Satisfy[T any](predicate func(T) error) Matcher {
	return predicateMatcher[T](predicate)
}

// anyMatcher is the implementation of the BeAny matcher.
type anyMatcher struct{}

// FailureMessage returns an empty string since BeAny always matches.
func (anyMatcher) FailureMessage(any) string {
	return ""
}

// Match always returns true - matches any value.
func (anyMatcher) Match(any) (bool, error) {
	return true, nil
}

// predicateMatcher is the implementation of Satisfy. FailureMessage runs the
// predicate again rather than remembering the last result.
type predicateMatcher[T any] func(T) error

func (p predicateMatcher[T]) FailureMessage(actual any) string {
	val, ok := actual.(T)
	if !ok {
		return fmt.Sprintf("value %v is not a %v", actual, reflect.TypeFor[T]())
	}

	if err := p(val); err != nil {
		return fmt.Sprintf("value %v does not satisfy predicate: %v", actual, err)
	}

	return fmt.Sprintf("value %v does not satisfy predicate", actual)
}

func (p predicateMatcher[T]) Match(actual any) (bool, error) {
	val, ok := actual.(T)
	if !ok {
		return false, fmt.Errorf("%w: expected %v, got %T", errTypeMismatch, reflect.TypeFor[T](), actual)
	}

	return p(val) == nil, nil
}
