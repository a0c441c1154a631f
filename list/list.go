// Package list provides a dynamic, ordered, index-addressable sequence.
// It is the real object that mockspy's list doubles fake.
package list

import (
	"slices"
)

// List is an ordered sequence addressed by index.
// Index-based accessors report ok == false for an index outside [0, Size()).
type List[T comparable] interface {
	Add(v T) bool
	Insert(index int, v T) bool
	Get(index int) (T, bool)
	Set(index int, v T) (T, bool)
	Remove(index int) (T, bool)
	Size() int
	IsEmpty() bool
	Contains(v T) bool
	IndexOf(v T) int
	Clear()
}

// ArrayList is a slice-backed List.
type ArrayList[T comparable] struct {
	items []T
}

// New returns an empty ArrayList.
func New[T comparable]() *ArrayList[T] {
	return &ArrayList[T]{}
}

// Of returns an ArrayList holding values, in order.
func Of[T comparable](values ...T) *ArrayList[T] {
	return &ArrayList[T]{items: slices.Clone(values)}
}

// Add appends v. It always succeeds.
func (l *ArrayList[T]) Add(v T) bool {
	l.items = append(l.items, v)

	return true
}

// Clear removes every element.
func (l *ArrayList[T]) Clear() {
	l.items = nil
}

// Contains reports whether v is in the list.
func (l *ArrayList[T]) Contains(v T) bool {
	return slices.Contains(l.items, v)
}

// Get returns the element at index.
func (l *ArrayList[T]) Get(index int) (T, bool) {
	if !l.inRange(index) {
		var zero T

		return zero, false
	}

	return l.items[index], true
}

// IndexOf returns the index of the first occurrence of v, or -1.
func (l *ArrayList[T]) IndexOf(v T) int {
	return slices.Index(l.items, v)
}

// Insert places v at index, shifting later elements right.
// Inserting at Size() appends.
func (l *ArrayList[T]) Insert(index int, v T) bool {
	if index < 0 || index > len(l.items) {
		return false
	}

	l.items = slices.Insert(l.items, index, v)

	return true
}

// IsEmpty reports whether the list has no elements.
func (l *ArrayList[T]) IsEmpty() bool {
	return len(l.items) == 0
}

// Remove deletes the element at index and returns it.
func (l *ArrayList[T]) Remove(index int) (T, bool) {
	if !l.inRange(index) {
		var zero T

		return zero, false
	}

	removed := l.items[index]
	l.items = slices.Delete(l.items, index, index+1)

	return removed, true
}

// Set replaces the element at index and returns the previous one.
func (l *ArrayList[T]) Set(index int, v T) (T, bool) {
	if !l.inRange(index) {
		var zero T

		return zero, false
	}

	previous := l.items[index]
	l.items[index] = v

	return previous, true
}

// Size returns the number of elements.
func (l *ArrayList[T]) Size() int {
	return len(l.items)
}

// Values returns a copy of the elements, in order.
func (l *ArrayList[T]) Values() []T {
	return slices.Clone(l.items)
}

func (l *ArrayList[T]) inRange(index int) bool {
	return index >= 0 && index < len(l.items)
}
