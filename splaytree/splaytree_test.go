package splaytree

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

func inorderKeys(tree *Tree[entry, *entry]) []int {
	var keys []int
	it := tree.InOrder()
	for it.First(); it.Valid(); it.Next() {
		keys = append(keys, it.Cur().key)
	}
	return keys
}

func TestInsertMovesToRoot(t *testing.T) {
	tree := New[entry]()
	for _, k := range []int{5, 1, 9, 3, 7} {
		e := &entry{key: k}
		_, ok := tree.Insert(e)
		require.True(t, ok)
		require.Same(t, e, tree.Root())
		require.True(t, tree.t.CheckLinks())
	}
	require.Equal(t, []int{1, 3, 5, 7, 9}, inorderKeys(tree))
}

func TestFindSplaysHit(t *testing.T) {
	tree := New[entry]()
	items := map[int]*entry{}
	for _, k := range rand.New(rand.NewSource(23)).Perm(100) {
		items[k] = &entry{key: k}
		tree.Insert(items[k])
	}
	for _, k := range []int{0, 42, 99, 17, 17} {
		found := tree.Find(&entry{key: k})
		require.Same(t, items[k], found)
		require.Same(t, items[k], tree.Root())
		require.True(t, tree.t.CheckLinks())
	}
}

func TestFindSplaysLastVisitedOnMiss(t *testing.T) {
	tree := NewFrom(&entry{key: 2}, &entry{key: 6}, &entry{key: 4})
	require.Nil(t, tree.Find(&entry{key: 5}))
	// the miss still reshapes the tree around the search path
	require.Equal(t, 6, tree.Root().key)
	require.True(t, tree.t.CheckLinks())
	require.Equal(t, []int{2, 4, 6}, inorderKeys(tree))
}

func TestFindEmpty(t *testing.T) {
	tree := New[entry]()
	require.Nil(t, tree.Find(&entry{key: 1}))
	require.True(t, tree.Empty())
}

func TestEraseToEmpty(t *testing.T) {
	const n = 200
	rnd := rand.New(rand.NewSource(29))
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
		require.Nil(t, e.Links().Left)
		require.Nil(t, e.Links().Right)
		require.True(t, tree.t.CheckLinks())
		require.True(t, sort.IntsAreSorted(inorderKeys(tree)))
	}
	require.True(t, tree.Empty())
	require.Nil(t, tree.Root())
}

func TestEraseRootOnly(t *testing.T) {
	e := &entry{key: 1}
	tree := NewFrom(e)
	require.Same(t, e, tree.Erase(e))
	require.True(t, tree.Empty())
}
