package core

import (
	"fmt"
	"reflect"
)

// Matcher defines the interface for flexible argument matching.
// Any gomega matcher satisfies it via duck typing.
type Matcher interface {
	Match(actual any) (success bool, err error)
	FailureMessage(actual any) string
}

// MatchValue checks if actual matches expected.
// A Matcher decides for itself; any other expected value must be
// reflect.DeepEqual to actual.
// Returns (success, errorMessage). If success is true, errorMessage is empty.
func MatchValue(actual, expected any) (bool, string) {
	matcher, isMatcher := expected.(Matcher)
	if !isMatcher {
		if reflect.DeepEqual(actual, expected) {
			return true, ""
		}

		return false, fmt.Sprintf("expected %#v, got %#v", expected, actual)
	}

	success, err := matcher.Match(actual)

	switch {
	case err != nil:
		return false, fmt.Sprintf("matcher %T could not match %#v: %v", matcher, actual, err)
	case !success:
		return false, matcher.FailureMessage(actual)
	default:
		return true, ""
	}
}
