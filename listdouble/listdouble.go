// Package listdouble provides mock and spy doubles of list.List.
//
// A mock owns no elements: every call is recorded, mutators change nothing and
// accessors return zero values unless stubbed. A spy wraps a backing list: every
// call is recorded and passed through to the backing list unless stubbed.
package listdouble

import (
	"github.com/toejough/mockspy"
	"github.com/toejough/mockspy/list"
)

// Imp holds the stubbing and verification handles for a list double, one per
// List method.
type Imp[T comparable] struct {
	*mockspy.Imp

	Add      *mockspy.Method
	Clear    *mockspy.Method
	Contains *mockspy.Method
	Get      *mockspy.Method
	IndexOf  *mockspy.Method
	Insert   *mockspy.Method
	IsEmpty  *mockspy.Method
	Remove   *mockspy.Method
	Set      *mockspy.Method
	Size     *mockspy.Method
}

// NewMock creates a list double with no backing storage.
func NewMock[T comparable](t mockspy.TestReporter) (list.List[T], *Imp[T]) {
	imp := newImp[T](t, "mock list")

	return &listDouble[T]{imp: imp}, imp
}

// NewSpy creates a list double that passes unstubbed calls through to backing.
func NewSpy[T comparable](t mockspy.TestReporter, backing list.List[T]) (list.List[T], *Imp[T]) {
	if backing == nil {
		panic("listdouble: NewSpy requires a backing list")
	}

	imp := newImp[T](t, "spy list")

	return &listDouble[T]{imp: imp, backing: backing}, imp
}

// SpyOf creates a spy over a new, empty list.ArrayList.
func SpyOf[T comparable](t mockspy.TestReporter) (list.List[T], *Imp[T]) {
	return NewSpy[T](t, list.New[T]())
}

func newImp[T comparable](t mockspy.TestReporter, name string) *Imp[T] {
	imp := mockspy.NewImp(t, name)

	return &Imp[T]{
		Imp:      imp,
		Add:      mockspy.NewMethod(imp, "Add"),
		Clear:    mockspy.NewMethod(imp, "Clear"),
		Contains: mockspy.NewMethod(imp, "Contains"),
		Get:      mockspy.NewMethod(imp, "Get"),
		IndexOf:  mockspy.NewMethod(imp, "IndexOf"),
		Insert:   mockspy.NewMethod(imp, "Insert"),
		IsEmpty:  mockspy.NewMethod(imp, "IsEmpty"),
		Remove:   mockspy.NewMethod(imp, "Remove"),
		Set:      mockspy.NewMethod(imp, "Set"),
		Size:     mockspy.NewMethod(imp, "Size"),
	}
}

// listDouble implements list.List by routing every call through the Imp.
type listDouble[T comparable] struct {
	imp     *Imp[T]
	backing list.List[T] // nil for a mock
}

func (d *listDouble[T]) Add(v T) bool {
	t := d.imp.Reporter()
	t.Helper()

	values := d.invoke("Add", []any{v}, 1, func(backing list.List[T]) []any {
		return []any{backing.Add(v)}
	})

	return mockspy.Result[bool](t, values, 0)
}

func (d *listDouble[T]) Clear() {
	d.imp.Reporter().Helper()

	d.invoke("Clear", nil, 0, func(backing list.List[T]) []any {
		backing.Clear()

		return nil
	})
}

func (d *listDouble[T]) Contains(v T) bool {
	t := d.imp.Reporter()
	t.Helper()

	values := d.invoke("Contains", []any{v}, 1, func(backing list.List[T]) []any {
		return []any{backing.Contains(v)}
	})

	return mockspy.Result[bool](t, values, 0)
}

func (d *listDouble[T]) Get(index int) (T, bool) {
	t := d.imp.Reporter()
	t.Helper()

	values := d.invoke("Get", []any{index}, 2, func(backing list.List[T]) []any {
		v, ok := backing.Get(index)

		return []any{v, ok}
	})

	return mockspy.Result[T](t, values, 0), mockspy.Result[bool](t, values, 1)
}

func (d *listDouble[T]) IndexOf(v T) int {
	t := d.imp.Reporter()
	t.Helper()

	values := d.invoke("IndexOf", []any{v}, 1, func(backing list.List[T]) []any {
		return []any{backing.IndexOf(v)}
	})

	return mockspy.Result[int](t, values, 0)
}

func (d *listDouble[T]) Insert(index int, v T) bool {
	t := d.imp.Reporter()
	t.Helper()

	values := d.invoke("Insert", []any{index, v}, 1, func(backing list.List[T]) []any {
		return []any{backing.Insert(index, v)}
	})

	return mockspy.Result[bool](t, values, 0)
}

func (d *listDouble[T]) IsEmpty() bool {
	t := d.imp.Reporter()
	t.Helper()

	values := d.invoke("IsEmpty", nil, 1, func(backing list.List[T]) []any {
		return []any{backing.IsEmpty()}
	})

	return mockspy.Result[bool](t, values, 0)
}

func (d *listDouble[T]) Remove(index int) (T, bool) {
	t := d.imp.Reporter()
	t.Helper()

	values := d.invoke("Remove", []any{index}, 2, func(backing list.List[T]) []any {
		v, ok := backing.Remove(index)

		return []any{v, ok}
	})

	return mockspy.Result[T](t, values, 0), mockspy.Result[bool](t, values, 1)
}

func (d *listDouble[T]) Set(index int, v T) (T, bool) {
	t := d.imp.Reporter()
	t.Helper()

	values := d.invoke("Set", []any{index, v}, 2, func(backing list.List[T]) []any {
		previous, ok := backing.Set(index, v)

		return []any{previous, ok}
	})

	return mockspy.Result[T](t, values, 0), mockspy.Result[bool](t, values, 1)
}

func (d *listDouble[T]) Size() int {
	t := d.imp.Reporter()
	t.Helper()

	values := d.invoke("Size", nil, 1, func(backing list.List[T]) []any {
		return []any{backing.Size()}
	})

	return mockspy.Result[int](t, values, 0)
}

// delegate returns the pass-through for a spy, or nil for a mock.
func (d *listDouble[T]) delegate(call func(backing list.List[T]) []any) func() []any {
	if d.backing == nil {
		return nil
	}

	return func() []any {
		return call(d.backing)
	}
}

// invoke records the call, answers it from a stub or the delegate, and checks
// the answer carries count values.
func (d *listDouble[T]) invoke(methodName string, args []any, count int, call func(backing list.List[T]) []any) []any {
	t := d.imp.Reporter()
	t.Helper()

	return mockspy.Results(t, methodName, d.imp.Invoke(methodName, args, d.delegate(call)), count)
}
