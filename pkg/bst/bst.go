// Package bst implements an unbalanced binary search tree whose operations are
// written recursively.
//
// Every value in a node's left subtree orders before the node's value and every
// value in the right subtree orders after it. Duplicates are never stored.
// Nothing rebalances the tree, so inserting a sorted sequence degenerates it
// into a list and operations become O(n).
package bst

import (
	"cmp"
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/i5heu/GoContainerBench/internal/container"
	"github.com/i5heu/GoContainerBench/pkg/errs"
)

type node[T any] struct {
	value       T
	left, right *node[T]
}

// Tree is a binary search tree ordered by a three-way comparison function.
// A Tree is not safe for concurrent use.
//
// The zero value has no ordering and rejects every Insert; create trees
// with New or NewFunc.
type Tree[T any] struct {
	root  *node[T]
	count int
	cmp   func(a, b T) int
	// checkNil is set for NewFunc trees, whose T may hold nil.
	checkNil bool
}

// New creates an empty tree using the natural order of T.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{cmp: cmp.Compare[T]}
}

// NewFunc creates an empty tree ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when a > b.
func NewFunc[T any](compare func(a, b T) int) (*Tree[T], error) {
	if compare == nil {
		return nil, fmt.Errorf("nil comparator: %w", errs.ErrInvalidArgument)
	}
	return &Tree[T]{cmp: compare, checkNil: true}, nil
}

// Of creates a tree and inserts values in order. Duplicates are skipped.
func Of[T constraints.Ordered](values ...T) *Tree[T] {
	t := New[T]()
	for _, v := range values {
		// Ordered values are never nil.
		_, _ = t.Insert(v)
	}
	return t
}

// Insert adds val as a new leaf. It returns false if an equal value is already stored.
func (t *Tree[T]) Insert(val T) (bool, error) {
	if t.cmp == nil {
		return false, fmt.Errorf("insert into tree without comparator: %w", errs.ErrInvalidArgument)
	}
	if t.checkNil && container.IsNil(val) {
		return false, fmt.Errorf("insert nil value: %w", errs.ErrInvalidArgument)
	}
	var inserted bool
	t.root, inserted = t.insert(t.root, val)
	if inserted {
		t.count++
	}
	return inserted, nil
}

func (t *Tree[T]) insert(n *node[T], val T) (*node[T], bool) {
	if n == nil {
		return &node[T]{value: val}, true
	}
	var inserted bool
	switch c := t.cmp(val, n.value); {
	case c < 0:
		n.left, inserted = t.insert(n.left, val)
	case c > 0:
		n.right, inserted = t.insert(n.right, val)
	}
	return n, inserted
}

// Contains reports whether a value comparing equal to val is stored.
func (t *Tree[T]) Contains(val T) bool {
	if t.root == nil || (t.checkNil && container.IsNil(val)) {
		return false
	}
	return t.contains(t.root, val)
}

func (t *Tree[T]) contains(n *node[T], val T) bool {
	if n == nil {
		return false
	}
	switch c := t.cmp(val, n.value); {
	case c < 0:
		return t.contains(n.left, val)
	case c > 0:
		return t.contains(n.right, val)
	default:
		return true
	}
}

// Size returns how many values are stored.
func (t *Tree[T]) Size() int {
	return t.count
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[T]) IsEmpty() bool {
	return t.count == 0
}

// Depth returns the number of edges on the longest root-to-leaf path.
// Both an empty tree and a single node have depth 0.
func (t *Tree[T]) Depth() int {
	if t.root == nil {
		return 0
	}
	return height(t.root) - 1
}

// height counts nodes on the longest downward path from n.
func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// InOrder calls visit once per stored value in ascending order.
func (t *Tree[T]) InOrder(visit func(T)) {
	inOrder(t.root, visit)
}

func inOrder[T any](n *node[T], visit func(T)) {
	if n == nil {
		return
	}
	inOrder(n.left, visit)
	visit(n.value)
	inOrder(n.right, visit)
}

// All returns an iterator over the stored values in ascending order.
// The tree must not be modified while the iterator is running.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(t.root, yield)
	}
}

// walk is inOrder with early exit; it returns false once yield asks to stop.
func walk[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.left, yield) && yield(n.value) && walk(n.right, yield)
}

// Min returns the smallest stored value, or false if the tree is empty.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.value, true
}

// Max returns the largest stored value, or false if the tree is empty.
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}

var _ container.TreeValidationInterface[int] = (*Tree[int])(nil)
