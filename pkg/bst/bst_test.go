package bst

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i5heu/GoContainerBench/pkg/errs"
)

func collect[T any](t *Tree[T]) []T {
	var out []T
	t.InOrder(func(v T) { out = append(out, v) })
	return out
}

func TestExampleTree(t *testing.T) {
	tree := Of(5, 3, 8, 1, 4)

	assert.Equal(t, []int{1, 3, 4, 5, 8}, collect(tree))
	assert.Equal(t, 2, tree.Depth())
	assert.Equal(t, 5, tree.Size())
	assert.True(t, tree.Contains(4))
	assert.False(t, tree.Contains(9))
}

func TestInsertDuplicate(t *testing.T) {
	tree := New[string]()
	ok, err := tree.Insert("m")
	require.NoError(t, err)
	assert.True(t, ok)

	for _, v := range []string{"c", "x", "m", "c"} {
		_, err := tree.Insert(v)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, tree.Size())

	ok, err = tree.Insert("x")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 3, tree.Size())
}

func TestContainsRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tree := New[int]()
	inserted := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v := rng.Intn(10000)
		ok, err := tree.Insert(v)
		require.NoError(t, err)
		require.Equal(t, !inserted[v], ok, "insert %d", v)
		inserted[v] = true
	}
	assert.Equal(t, len(inserted), tree.Size())

	for v := -10; v < 10010; v++ {
		if tree.Contains(v) != inserted[v] {
			t.Fatalf("Contains(%d) = %v, want %v", v, !inserted[v], inserted[v])
		}
	}

	values := collect(tree)
	require.Len(t, values, len(inserted))
	for i := 1; i < len(values); i++ {
		if values[i-1] >= values[i] {
			t.Fatalf("in-order not strictly ascending at %d: %d >= %d", i, values[i-1], values[i])
		}
	}
}

func TestDepth(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		depth  int
	}{
		{"empty", nil, 0},
		{"single", []int{1}, 0},
		{"two", []int{1, 2}, 1},
		{"balanced", []int{4, 2, 6, 1, 3, 5, 7}, 2},
		{"left chain", []int{5, 4, 3, 2, 1}, 4},
		{"zig zag", []int{1, 10, 2, 9, 3}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.depth, Of(tt.values...).Depth())
		})
	}
}

func TestDepthIncreasingSequence(t *testing.T) {
	for _, n := range []int{1, 2, 10, 500} {
		tree := New[int]()
		for i := 0; i < n; i++ {
			_, err := tree.Insert(i)
			require.NoError(t, err)
		}
		assert.Equal(t, n-1, tree.Depth(), "n=%d", n)
	}
}

func TestEmptyTree(t *testing.T) {
	tree := New[float64]()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Size())
	assert.False(t, tree.Contains(0))
	assert.Empty(t, collect(tree))
	_, ok := tree.Min()
	assert.False(t, ok)
	_, ok = tree.Max()
	assert.False(t, ok)
	for range tree.All() {
		t.Fatal("iterator yielded on empty tree")
	}
}

func TestAllIterator(t *testing.T) {
	tree := Of(50, 30, 70, 20, 40, 60, 80)

	var got []int
	for v := range tree.All() {
		got = append(got, v)
	}
	assert.Equal(t, collect(tree), got)

	got = got[:0]
	for v := range tree.All() {
		if v > 40 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{20, 30, 40}, got)
}

func TestMinMax(t *testing.T) {
	tree := Of("kiwi", "apple", "pear", "banana")
	lo, ok := tree.Min()
	require.True(t, ok)
	hi, ok := tree.Max()
	require.True(t, ok)
	assert.Equal(t, "apple", lo)
	assert.Equal(t, "pear", hi)
}

type user struct {
	name string
	age  int
}

func TestNewFunc(t *testing.T) {
	byName := func(a, b *user) int { return strings.Compare(a.name, b.name) }
	tree, err := NewFunc(byName)
	require.NoError(t, err)

	users := []*user{{"mia", 30}, {"bob", 41}, {"zoe", 22}, {"ann", 35}}
	var ok bool
	for _, u := range users {
		ok, err = tree.Insert(u)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	// equal by comparator, not by identity
	ok, err = tree.Insert(&user{name: "bob"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, tree.Contains(&user{name: "zoe"}))
	assert.False(t, tree.Contains(&user{name: "eve"}))

	_, err = tree.Insert(nil)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.False(t, tree.Contains(nil))
	assert.Equal(t, 4, tree.Size())

	var names []string
	tree.InOrder(func(u *user) { names = append(names, u.name) })
	assert.True(t, sort.StringsAreSorted(names))
	assert.Equal(t, []string{"ann", "bob", "mia", "zoe"}, names)
}

func TestTreeWithoutComparator(t *testing.T) {
	_, err := NewFunc[int](nil)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	var tree Tree[int]
	for _, v := range []int{1, 2} {
		ok, err := tree.Insert(v)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
		assert.False(t, ok)
	}
	assert.True(t, tree.IsEmpty())
	assert.False(t, tree.Contains(1))
	assert.Equal(t, 0, tree.Depth())
}

func TestOrderedTreeSkipsNilCheck(t *testing.T) {
	assert.False(t, New[int]().checkNil)

	tree, err := NewFunc(strings.Compare)
	require.NoError(t, err)
	assert.True(t, tree.checkNil)
}

func BenchmarkInsertRandom(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	tree := New[int]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = tree.Insert(rng.Int())
	}
}
