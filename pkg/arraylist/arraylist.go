// Package arraylist provides a resizable, index addressable list backed by a
// contiguous buffer that grows by a factor of 1.5 when full.
package arraylist

import (
	"fmt"

	"github.com/i5heu/GoContainerBench/internal/container"
	"github.com/i5heu/GoContainerBench/pkg/errs"
)

// DefaultCapacity is the buffer size used by New and restored by Clear.
const DefaultCapacity = 5

// ArrayList is a dynamic array. Elements live in elements[0:count]; the rest of
// the buffer is spare capacity holding zero values.
//
// An ArrayList is not safe for concurrent use.
type ArrayList[T comparable] struct {
	elements []T
	count    int
}

// New creates an empty list with DefaultCapacity.
func New[T comparable]() *ArrayList[T] {
	return &ArrayList[T]{elements: make([]T, DefaultCapacity)}
}

// NewWithCapacity creates an empty list whose buffer holds capacity elements.
func NewWithCapacity[T comparable](capacity int) (*ArrayList[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("capacity %d must be positive: %w", capacity, errs.ErrInvalidArgument)
	}
	return &ArrayList[T]{elements: make([]T, capacity)}, nil
}

// Of creates a list with DefaultCapacity and appends values in order.
func Of[T comparable](values ...T) *ArrayList[T] {
	l := New[T]()
	for _, v := range values {
		l.Append(v)
	}
	return l
}

// growIfFull reallocates the buffer to 1.5x its capacity when no slot is free.
func (l *ArrayList[T]) growIfFull() {
	if l.count < len(l.elements) {
		return
	}
	newCap := len(l.elements) * 3 / 2
	if newCap <= len(l.elements) {
		// capacity 1 would otherwise stay at 1
		newCap = len(l.elements) + 1
	}
	grown := make([]T, newCap)
	copy(grown, l.elements[:l.count])
	l.elements = grown
}

// Append adds val at the end of the list. Amortized O(1).
func (l *ArrayList[T]) Append(val T) {
	l.growIfFull()
	l.elements[l.count] = val
	l.count++
}

// InsertAt places val at index and shifts the following elements right.
// index may equal Size(), which appends.
func (l *ArrayList[T]) InsertAt(index int, val T) error {
	if err := errs.CheckIndex("insert", index, l.count+1); err != nil {
		return err
	}
	l.growIfFull()
	copy(l.elements[index+1:l.count+1], l.elements[index:l.count])
	l.elements[index] = val
	l.count++
	return nil
}

// Get returns the element at index, which must be in [0, Size()).
func (l *ArrayList[T]) Get(index int) (T, error) {
	if err := errs.CheckIndex("get", index, l.count); err != nil {
		var zero T
		return zero, err
	}
	return l.elements[index], nil
}

// Set replaces the element at index, which must be in [0, Size()).
func (l *ArrayList[T]) Set(index int, val T) error {
	if err := errs.CheckIndex("set", index, l.count); err != nil {
		return err
	}
	l.elements[index] = val
	return nil
}

// GetFirst returns the element at index 0.
func (l *ArrayList[T]) GetFirst() (T, error) {
	if l.count == 0 {
		var zero T
		return zero, fmt.Errorf("get first: %w", errs.ErrEmptyContainer)
	}
	return l.elements[0], nil
}

// GetLast returns the element at index Size()-1.
func (l *ArrayList[T]) GetLast() (T, error) {
	if l.count == 0 {
		var zero T
		return zero, fmt.Errorf("get last: %w", errs.ErrEmptyContainer)
	}
	return l.elements[l.count-1], nil
}

// RemoveAt deletes the element at index, shifts the following elements left
// and returns the removed value.
func (l *ArrayList[T]) RemoveAt(index int) (T, error) {
	if err := errs.CheckIndex("remove", index, l.count); err != nil {
		var zero T
		return zero, err
	}
	removed := l.elements[index]
	copy(l.elements[index:l.count-1], l.elements[index+1:l.count])
	l.count--
	var zero T
	l.elements[l.count] = zero
	return removed, nil
}

// Contains reports whether an element equal to val (==) is stored.
func (l *ArrayList[T]) Contains(val T) bool {
	for _, e := range l.elements[:l.count] {
		if e == val {
			return true
		}
	}
	return false
}

// Clear drops all elements and restores a buffer of DefaultCapacity.
func (l *ArrayList[T]) Clear() {
	l.elements = make([]T, DefaultCapacity)
	l.count = 0
}

// Size returns how many elements are stored.
func (l *ArrayList[T]) Size() int {
	return l.count
}

// IsEmpty reports whether the list holds no elements.
func (l *ArrayList[T]) IsEmpty() bool {
	return l.count == 0
}

// Cap returns the physical capacity of the buffer.
func (l *ArrayList[T]) Cap() int {
	return len(l.elements)
}

// Values returns a copy of the stored elements in index order.
func (l *ArrayList[T]) Values() []T {
	out := make([]T, l.count)
	copy(out, l.elements[:l.count])
	return out
}

var _ container.ListValidationInterface[int] = (*ArrayList[int])(nil)
