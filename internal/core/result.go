package core

import (
	"reflect"
)

// Results checks that a method answered with exactly count values and returns
// them. Nil values, the answer of an unstubbed mock, pass unchanged so every
// result takes its zero value. Any other count fails the test and yields nil.
func Results(t TestReporter, methodName string, values []any, count int) []any {
	if values == nil || len(values) == count {
		return values
	}

	t.Helper()
	t.Fatalf("%s: stub returned %d value(s), want %d: %#v", methodName, len(values), count, values)

	return nil
}

// Result converts the value at index into T for typed doubles.
// A missing or nil value yields the zero value of T, which is what an
// unstubbed mock returns. A value of the wrong type fails the test.
func Result[T any](t TestReporter, values []any, index int) T {
	var zero T

	if index >= len(values) || values[index] == nil {
		return zero
	}

	val, ok := values[index].(T)
	if !ok {
		t.Helper()
		t.Fatalf("return value %d: expected %v, got %T (%#v)",
			index, reflect.TypeFor[T](), values[index], values[index])

		return zero
	}

	return val
}
