package main

import (
	"fmt"
	"math/rand"

	godsarraylist "github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/gammazero/deque"

	"github.com/i5heu/GoContainerBench/internal/testbench"
	"github.com/i5heu/GoContainerBench/pkg/arraylist"
	"github.com/i5heu/GoContainerBench/pkg/bst"
	"github.com/i5heu/GoContainerBench/pkg/linkedqueue"
)

// Container kinds. Implementations of the same kind run the same workload
// shape so their ns/op numbers are comparable.
const (
	KindQueue = "queue"
	KindList  = "list"
	KindTree  = "tree"
)

// Implementation represents one container implementation and the workload
// that exercises it.
type Implementation struct {
	name        string
	kind        string
	description string
	pkgName     string
	features    []string
	baseline    bool
	workload    testbench.Workload
}

// shuffledKeys caches a deterministic permutation of [0, size) per size so
// that tree implementations see identical insertion orders.
var shuffledKeys = map[int][]int{}

func keysFor(size int) []int {
	if keys, ok := shuffledKeys[size]; ok {
		return keys
	}
	keys := rand.New(rand.NewSource(int64(size))).Perm(size)
	shuffledKeys[size] = keys
	return keys
}

func linkedQueueWorkload(size int) (int64, error) {
	q := linkedqueue.New[int]()
	for i := 0; i < size; i++ {
		if err := q.Enqueue(i); err != nil {
			return 0, err
		}
	}
	for i := 0; i < size; i++ {
		v, ok := q.Dequeue()
		if !ok {
			return 0, fmt.Errorf("dequeue %d: queue empty early", i)
		}
		if v != i {
			return 0, fmt.Errorf("dequeue %d: got %d, FIFO order broken", i, v)
		}
	}
	if !q.IsEmpty() {
		return 0, fmt.Errorf("queue holds %d values after drain", q.Size())
	}
	return int64(2 * size), nil
}

func dequeWorkload(size int) (int64, error) {
	q := deque.New[int]()
	for i := 0; i < size; i++ {
		q.PushBack(i)
	}
	for i := 0; i < size; i++ {
		if v := q.PopFront(); v != i {
			return 0, fmt.Errorf("pop %d: got %d, FIFO order broken", i, v)
		}
	}
	return int64(2 * size), nil
}

func arrayListWorkload(size int) (int64, error) {
	l := arraylist.New[int]()
	for i := 0; i < size; i++ {
		l.Append(i)
	}
	for i := 0; i < size; i++ {
		if err := l.Set(i, i*2); err != nil {
			return 0, err
		}
	}
	for i := 0; i < size; i++ {
		v, err := l.Get(i)
		if err != nil {
			return 0, err
		}
		if v != i*2 {
			return 0, fmt.Errorf("get %d: got %d, want %d", i, v, i*2)
		}
	}
	return int64(3 * size), nil
}

// arrayListPresizedWorkload skips the growth path to show what reallocation costs.
func arrayListPresizedWorkload(size int) (int64, error) {
	l, err := arraylist.NewWithCapacity[int](size)
	if err != nil {
		return 0, err
	}
	for i := 0; i < size; i++ {
		l.Append(i)
	}
	if l.Cap() != size {
		return 0, fmt.Errorf("presized list grew from %d to %d", size, l.Cap())
	}
	for i := 0; i < size; i++ {
		if err := l.Set(i, i*2); err != nil {
			return 0, err
		}
	}
	for i := 0; i < size; i++ {
		v, err := l.Get(i)
		if err != nil {
			return 0, err
		}
		if v != i*2 {
			return 0, fmt.Errorf("get %d: got %d, want %d", i, v, i*2)
		}
	}
	return int64(3 * size), nil
}

func godsArrayListWorkload(size int) (int64, error) {
	l := godsarraylist.New()
	for i := 0; i < size; i++ {
		l.Add(i)
	}
	for i := 0; i < size; i++ {
		l.Set(i, i*2)
	}
	for i := 0; i < size; i++ {
		v, ok := l.Get(i)
		if !ok || v.(int) != i*2 {
			return 0, fmt.Errorf("get %d: got %v, want %d", i, v, i*2)
		}
	}
	return int64(3 * size), nil
}

// maxShiftingSize bounds the insert-at-front workloads, which shift the whole
// list on every operation and are quadratic in size.
const maxShiftingSize = 10000

func shiftingSize(size int) int {
	return min(size, maxShiftingSize)
}

func arrayListInsertFrontWorkload(size int) (int64, error) {
	n := shiftingSize(size)
	l := arraylist.New[int]()
	for i := 0; i < n; i++ {
		if err := l.InsertAt(0, i); err != nil {
			return 0, err
		}
	}
	// Values are stored in reverse insertion order.
	for j := 0; j < n; j++ {
		v, err := l.Get(j)
		if err != nil {
			return 0, err
		}
		if v != n-1-j {
			return 0, fmt.Errorf("get %d: got %d, want %d", j, v, n-1-j)
		}
	}
	if !l.Contains(0) || l.Contains(n) {
		return 0, fmt.Errorf("contains disagrees with the %d inserted values", n)
	}
	for i := n - 1; i >= 0; i-- {
		v, err := l.RemoveAt(0)
		if err != nil {
			return 0, err
		}
		if v != i {
			return 0, fmt.Errorf("remove front: got %d, want %d", v, i)
		}
	}
	if !l.IsEmpty() {
		return 0, fmt.Errorf("list holds %d values after drain", l.Size())
	}
	return int64(3*n + 2), nil
}

func godsArrayListInsertFrontWorkload(size int) (int64, error) {
	n := shiftingSize(size)
	l := godsarraylist.New()
	for i := 0; i < n; i++ {
		l.Insert(0, i)
	}
	for j := 0; j < n; j++ {
		v, ok := l.Get(j)
		if !ok || v.(int) != n-1-j {
			return 0, fmt.Errorf("get %d: got %v, want %d", j, v, n-1-j)
		}
	}
	if !l.Contains(0) || l.Contains(n) {
		return 0, fmt.Errorf("contains disagrees with the %d inserted values", n)
	}
	for i := n - 1; i >= 0; i-- {
		v, ok := l.Get(0)
		if !ok || v.(int) != i {
			return 0, fmt.Errorf("remove front: got %v, want %d", v, i)
		}
		l.Remove(0)
	}
	if !l.Empty() {
		return 0, fmt.Errorf("list holds %d values after drain", l.Size())
	}
	return int64(3*n + 2), nil
}

func bstWorkload(size int) (int64, error) {
	keys := keysFor(size)
	t := bst.New[int]()
	for _, k := range keys {
		ok, err := t.Insert(k)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, fmt.Errorf("insert %d: reported duplicate", k)
		}
	}
	for _, k := range keys {
		if !t.Contains(k) {
			return 0, fmt.Errorf("contains %d: inserted key missing", k)
		}
	}
	if t.Contains(size) {
		return 0, fmt.Errorf("contains %d: key never inserted", size)
	}
	expect := 0
	var orderErr error
	t.InOrder(func(v int) {
		if v != expect && orderErr == nil {
			orderErr = fmt.Errorf("in-order position %d: got %d", expect, v)
		}
		expect++
	})
	if orderErr != nil {
		return 0, orderErr
	}
	return int64(3 * size), nil
}

func redBlackTreeWorkload(size int) (int64, error) {
	keys := keysFor(size)
	t := redblacktree.NewWithIntComparator()
	for _, k := range keys {
		t.Put(k, struct{}{})
	}
	for _, k := range keys {
		if _, found := t.Get(k); !found {
			return 0, fmt.Errorf("get %d: inserted key missing", k)
		}
	}
	if _, found := t.Get(size); found {
		return 0, fmt.Errorf("get %d: key never inserted", size)
	}
	for i, k := range t.Keys() {
		if k.(int) != i {
			return 0, fmt.Errorf("key position %d: got %v", i, k)
		}
	}
	return int64(3 * size), nil
}

// getImplementations enumerates our container implementations and their baselines.
func getImplementations() []Implementation {
	return []Implementation{
		{
			name:        "LinkedQueue",
			kind:        KindQueue,
			pkgName:     "linkedqueue",
			description: "Unbounded FIFO queue over singly linked nodes with head and tail references.",
			features:    []string{"FIFO", "Unbounded"},
			workload:    linkedQueueWorkload,
		},
		{
			name:        "gammazero/deque",
			kind:        KindQueue,
			pkgName:     "deque",
			description: "Ring-buffer double-ended queue, used as a baseline.",
			features:    []string{"FIFO", "Ring-Buffer"},
			baseline:    true,
			workload:    dequeWorkload,
		},
		{
			name:        "ArrayList",
			kind:        KindList,
			pkgName:     "arraylist",
			description: "Dynamic array starting at capacity 5 and growing by 1.5x.",
			features:    []string{"Random-Access", "Growable"},
			workload:    arrayListWorkload,
		},
		{
			name:        "ArrayList (presized)",
			kind:        KindList,
			pkgName:     "arraylist",
			description: "Dynamic array created with the final capacity, so it never grows.",
			features:    []string{"Random-Access"},
			workload:    arrayListPresizedWorkload,
		},
		{
			name:        "gods/arraylist",
			kind:        KindList,
			pkgName:     "gods/lists/arraylist",
			description: "Untyped array list from emirpasic/gods, used as a baseline.",
			features:    []string{"Random-Access", "Growable"},
			baseline:    true,
			workload:    godsArrayListWorkload,
		},
		{
			name:        "ArrayList (insert front)",
			kind:        KindList,
			pkgName:     "arraylist",
			description: "InsertAt(0) then RemoveAt(0) drain; shifts every element, capped at 10000 elements per round.",
			features:    []string{"Random-Access", "Growable", "Shifting"},
			workload:    arrayListInsertFrontWorkload,
		},
		{
			name:        "gods/arraylist (insert front)",
			kind:        KindList,
			pkgName:     "gods/lists/arraylist",
			description: "Insert(0) then Remove(0) drain on the emirpasic/gods list, used as a baseline.",
			features:    []string{"Random-Access", "Growable", "Shifting"},
			baseline:    true,
			workload:    godsArrayListInsertFrontWorkload,
		},
		{
			name:        "RecursiveBST",
			kind:        KindTree,
			pkgName:     "bst",
			description: "Unbalanced binary search tree with recursive insert, lookup and traversal.",
			features:    []string{"Ordered", "Unbalanced"},
			workload:    bstWorkload,
		},
		{
			name:        "gods/redblacktree",
			kind:        KindTree,
			pkgName:     "redblacktree",
			description: "Self-balancing red-black tree from emirpasic/gods, used as a baseline.",
			features:    []string{"Ordered", "Balanced"},
			baseline:    true,
			workload:    redBlackTreeWorkload,
		},
	}
}
