package avltree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/intrusivekit/bintree"
)

type entry struct {
	Hook[entry]
	key int
}

func (a *entry) Compare(b *entry) int { return bintree.Compare(a.key, b.key) }

// checkBalanced walks the whole tree verifying that every cached balance
// factor matches the actual subtree heights and stays within [-1, +1].
// Returns the height of n in edges, -1 for nil.
func checkBalanced(t *testing.T, n *entry) int {
	t.Helper()
	if n == nil {
		return -1
	}
	h := n.Links()
	lh := checkBalanced(t, h.Left)
	rh := checkBalanced(t, h.Right)
	bf := rh - lh
	require.True(t, bf >= -1 && bf <= 1, "unbalanced at %d: %d", n.key, bf)
	require.Equal(t, int8(bf), h.Meta, "stale balance factor at %d", n.key)
	if lh > rh {
		return lh + 1
	}
	return rh + 1
}

func check(t *testing.T, tree *Tree[entry, *entry]) {
	t.Helper()
	require.True(t, tree.t.CheckLinks())
	checkBalanced(t, tree.Root())
}

func TestSequentialInsertStaysShallow(t *testing.T) {
	tree := New[entry]()
	for k := 1; k <= 5; k++ {
		tree.Insert(&entry{key: k})
		check(t, tree)
	}
	require.Equal(t, 2, tree.Height())
	require.Equal(t, 2, tree.Root().key)
}

func TestInsertKeepsInvariants(t *testing.T) {
	tree := New[entry]()
	for _, k := range rand.New(rand.NewSource(3)).Perm(300) {
		_, ok := tree.Insert(&entry{key: k})
		require.True(t, ok)
		check(t, tree)
	}
	var keys []int
	it := tree.InOrder()
	for it.First(); it.Valid(); it.Next() {
		keys = append(keys, it.Cur().key)
	}
	require.Len(t, keys, 300)
	require.True(t, sort.IntsAreSorted(keys))
}

func TestEraseKeepsInvariants(t *testing.T) {
	const n = 300
	rnd := rand.New(rand.NewSource(5))
	items := make([]*entry, n)
	tree := New[entry]()
	for i, k := range rnd.Perm(n) {
		items[i] = &entry{key: k}
		tree.Insert(items[i])
	}
	for _, i := range rnd.Perm(n) {
		e := tree.Erase(items[i])
		require.Same(t, items[i], e)
		require.Nil(t, e.Links().Up)
		check(t, tree)
	}
	require.True(t, tree.Empty())
}

func TestEraseKey(t *testing.T) {
	tree := NewFrom(&entry{key: 1}, &entry{key: 2}, &entry{key: 3})
	gone := tree.EraseKey(&entry{key: 2})
	require.NotNil(t, gone)
	require.Equal(t, 2, gone.key)
	require.Nil(t, tree.EraseKey(&entry{key: 2}))
	require.Equal(t, 2, tree.Len())
	check(t, tree)
}

func TestBalanceAccessor(t *testing.T) {
	tree := NewFrom(&entry{key: 2}, &entry{key: 1}, &entry{key: 3})
	require.Equal(t, 0, Balance(tree.Root()))
	tree.EraseKey(&entry{key: 1})
	require.Equal(t, 1, Balance(tree.Root()))
}
