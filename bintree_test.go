package bintree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/intrusivekit/bintree/abstract"
)

type entry struct {
	Hook[entry]
	key int
}

func (a *entry) Compare(b *entry) int { return Compare(a.key, b.key) }

func newEntries(keys ...int) []*entry {
	out := make([]*entry, len(keys))
	for i, k := range keys {
		out[i] = &entry{key: k}
	}
	return out
}

func collect(it abstract.Iterator[entry, struct{}, *entry]) []int {
	var keys []int
	for it.First(); it.Valid(); it.Next() {
		keys = append(keys, it.Cur().key)
	}
	return keys
}

func TestInsertFindErase(t *testing.T) {
	tree := New[entry]()
	require.True(t, tree.Empty())

	items := newEntries(5, 3, 8, 1, 4)
	for _, e := range items {
		n, ok := tree.Insert(e)
		require.True(t, ok)
		require.Same(t, e, n)
	}
	require.Equal(t, 5, tree.Len())
	require.Equal(t, 1, tree.Lowest().key)
	require.Equal(t, 8, tree.Highest().key)

	got := tree.Find(&entry{key: 4})
	require.Same(t, items[4], got)
	require.Nil(t, tree.Find(&entry{key: 42}))

	detached := tree.Erase(items[1]) // key 3
	require.Same(t, items[1], detached)
	require.Nil(t, detached.Links().Up)
	require.Nil(t, detached.Links().Left)
	require.Nil(t, detached.Links().Right)
	require.Equal(t, 4, tree.Len())

	require.Nil(t, tree.EraseKey(&entry{key: 3}))
	require.Equal(t, 8, tree.EraseKey(&entry{key: 8}).key)
	require.Equal(t, []int{1, 4, 5}, collect(tree.InOrder()))
}

func TestInsertDuplicate(t *testing.T) {
	tree := NewFrom(newEntries(2, 1, 3)...)
	dup := &entry{key: 2}
	existing, ok := tree.Insert(dup)
	require.False(t, ok)
	require.NotSame(t, dup, existing)
	require.Equal(t, 2, existing.key)
	require.Equal(t, 3, tree.Len())
	// the rejected node stays detached
	require.Nil(t, dup.Links().Up)
}

func TestFindEmptyDoesNotMutate(t *testing.T) {
	tree := New[entry]()
	require.Nil(t, tree.Find(&entry{key: 7}))
	require.Nil(t, tree.Root())
	require.Equal(t, 0, tree.Len())
}

func TestTraversalOrders(t *testing.T) {
	// inserted in an order that builds the complete shape
	//
	//        4
	//      2   6
	//     1 3 5 7
	tree := NewFrom(newEntries(4, 2, 6, 1, 3, 5, 7)...)

	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, collect(tree.InOrder()))
	require.Equal(t, []int{7, 6, 5, 4, 3, 2, 1}, collect(tree.ReverseOrder()))
	require.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, collect(tree.PreOrder()))
	require.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, collect(tree.PostOrder()))

	// iterators restart from First
	it := tree.InOrder()
	for it.First(); it.Valid(); it.Next() {
	}
	require.False(t, it.Valid())
	it.First()
	require.True(t, it.Valid())
	require.Equal(t, 1, it.Cur().key)
}

func TestTraversalEmpty(t *testing.T) {
	tree := New[entry]()
	iters := []abstract.Iterator[entry, struct{}, *entry]{
		tree.InOrder(), tree.PreOrder(), tree.PostOrder(), tree.ReverseOrder(),
	}
	for i := range iters {
		iters[i].First()
		require.False(t, iters[i].Valid())
	}
}

func TestEraseDuringIteration(t *testing.T) {
	tree := NewFrom(newEntries(4, 2, 6, 1, 3, 5, 7)...)
	it := tree.InOrder()
	it.First()
	for it.Valid() {
		prev := it.Cur()
		it.Next()
		tree.Erase(prev)
	}
	require.True(t, tree.Empty())
	require.Nil(t, tree.Root())
}

func TestEraseTwoChildrenDeepSuccessor(t *testing.T) {
	// the successor of 2 is 3, two levels down
	//
	//        2
	//      1   6
	//         4 7
	//        3 5
	items := newEntries(2, 1, 6, 4, 7, 3, 5)
	tree := NewFrom(items...)
	require.Same(t, items[0], tree.Erase(items[0]))
	require.Equal(t, []int{1, 3, 4, 5, 6, 7}, collect(tree.InOrder()))
	require.Equal(t, []int{3, 1, 6, 4, 5, 7}, collect(tree.PreOrder()))
}

func TestDegenerateChain(t *testing.T) {
	// the plain tree does not rebalance: sequential keys make a chain
	tree := NewFrom(newEntries(1, 2, 3, 4, 5)...)
	require.Equal(t, 4, tree.Height())
}

func TestRandomWorkload(t *testing.T) {
	const n = 500
	rnd := rand.New(rand.NewSource(1))
	tree := New[entry]()
	items := make([]*entry, n)
	for i, idx := range rnd.Perm(n) {
		items[i] = &entry{key: idx}
	}
	for _, e := range items {
		_, ok := tree.Insert(e)
		require.True(t, ok)
	}
	require.Equal(t, n, tree.Len())

	want := make([]int, n)
	for i := range want {
		want[i] = i
	}
	require.Equal(t, want, collect(tree.InOrder()))

	erased := 0
	for _, e := range items {
		if rnd.Float64() < 0.5 {
			tree.Erase(e)
			erased++
		}
	}
	require.Equal(t, n-erased, tree.Len())
	got := collect(tree.InOrder())
	require.Len(t, got, n-erased)
	require.True(t, sort.IntsAreSorted(got))
}
