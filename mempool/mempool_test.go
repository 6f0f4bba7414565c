package mempool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type record struct {
	id   int
	tags []string
}

func TestCreateRelease(t *testing.T) {
	pool := New[record](nil)
	a := pool.Create()
	b := pool.Create()
	require.NotNil(t, a)
	require.NotSame(t, a, b)
	require.Equal(t, 2, pool.Total())
	require.Equal(t, 0, pool.Idle())

	pool.Release(a)
	require.Equal(t, 2, pool.Total())
	require.Equal(t, 1, pool.Idle())

	c := pool.Create()
	require.Same(t, a, c)
	require.Equal(t, 2, pool.Total())
	require.Equal(t, 0, pool.Idle())
}

func TestResetRunsOnRelease(t *testing.T) {
	pool := New(func(r *record) { *r = record{} })
	a := pool.Create()
	a.id = 7
	a.tags = append(a.tags, "hot")
	pool.Release(a)
	require.Zero(t, a.id)
	require.Nil(t, a.tags)

	b := pool.Create()
	require.Same(t, a, b)
	require.Zero(t, b.id)
}

func TestReleaseNil(t *testing.T) {
	pool := New[record](nil)
	pool.Release(nil)
	require.Equal(t, 0, pool.Idle())
}

func TestLIFOReuse(t *testing.T) {
	pool := New[record](nil)
	a, b := pool.Create(), pool.Create()
	pool.Release(a)
	pool.Release(b)
	require.Same(t, b, pool.Create())
	require.Same(t, a, pool.Create())
}
