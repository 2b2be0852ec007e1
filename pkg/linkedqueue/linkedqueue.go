package linkedqueue

import (
	"fmt"

	"github.com/i5heu/GoContainerBench/internal/container"
	"github.com/i5heu/GoContainerBench/pkg/errs"
)

// node is one link of the chain. Each node is reachable only through its predecessor.
type node[T any] struct {
	value T
	next  *node[T]
}

// LinkedQueue is an unbounded FIFO queue over singly linked nodes.
// Enqueue and Dequeue run in O(1) by keeping references to both ends of the chain.
//
// A LinkedQueue is not safe for concurrent use; guard it externally if it is shared.
// The zero value is an empty queue ready to use.
type LinkedQueue[T any] struct {
	head  *node[T]
	tail  *node[T] // last node of the chain owned by head, nil when empty
	count int
}

// New creates an empty LinkedQueue.
func New[T any]() *LinkedQueue[T] {
	return &LinkedQueue[T]{}
}

// Of creates a queue holding values in order. It stops at the first rejected value.
func Of[T any](values ...T) (*LinkedQueue[T], error) {
	q := New[T]()
	for i, v := range values {
		if err := q.Enqueue(v); err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
	}
	return q, nil
}

// Enqueue appends val to the tail of the queue.
func (q *LinkedQueue[T]) Enqueue(val T) error {
	if container.IsNil(val) {
		return fmt.Errorf("enqueue nil value: %w", errs.ErrInvalidArgument)
	}
	n := &node[T]{value: val}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.count++
	return nil
}

// Dequeue removes and returns the value at the head of the queue.
// It returns a zero T and false if the queue is empty.
func (q *LinkedQueue[T]) Dequeue() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	n.next = nil
	q.count--
	return n.value, true
}

// Size returns how many values are queued.
func (q *LinkedQueue[T]) Size() int {
	return q.count
}

// IsEmpty reports whether no values are queued.
func (q *LinkedQueue[T]) IsEmpty() bool {
	return q.count == 0
}

// Compile-time check that LinkedQueue satisfies the queue contract.
var _ container.QueueValidationInterface[int] = (*LinkedQueue[int])(nil)
