package container

import "reflect"

// QueueValidationInterface is a *type constraint* that ensures any type Q has
// these methods. We never store Q in a runtime interface—
// we only use QueueValidationInterface at compile time to ensure matching signatures.
type QueueValidationInterface[T any] interface {
	// Enqueue appends an element to the tail of the queue.
	// A nil element is rejected with errs.ErrInvalidArgument.
	Enqueue(T) error

	// Dequeue removes and returns the oldest element.
	// If the queue is empty it returns a empty T and false, otherwise true.
	Dequeue() (T, bool)

	// Size returns how many elements are currently queued.
	Size() int

	IsEmpty() bool
}

// ListValidationInterface is the compile-time contract of an index addressable list.
type ListValidationInterface[T any] interface {
	Append(T)
	InsertAt(int, T) error
	Get(int) (T, error)
	Set(int, T) error
	GetFirst() (T, error)
	GetLast() (T, error)
	RemoveAt(int) (T, error)
	Contains(T) bool
	Clear()
	Size() int
	IsEmpty() bool
}

// TreeValidationInterface is the compile-time contract of an ordered tree.
type TreeValidationInterface[T any] interface {
	// Insert reports false when the element is already stored.
	Insert(T) (bool, error)
	Contains(T) bool
	Depth() int
	InOrder(func(T))
	Size() int
	IsEmpty() bool
}

// IsNil reports whether v holds a nil pointer, interface, map, slice, chan or func.
// Value kinds (ints, strings, structs) are never nil.
func IsNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		// nil interface
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
