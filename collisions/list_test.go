package collisions

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollisionList(t *testing.T) {
	var c CollisionList
	require.Equal(t, 0, c.Len())

	for _, i := range []int{5, 1, 3} {
		c.Add(i)
	}
	require.Equal(t, 3, c.Len())
	require.Equal(t, 1, c.At(1))
	require.True(t, c.Contains(3))
	require.False(t, c.Contains(4))
	require.Equal(t, []int{1, 3, 5}, c.Sorted())
	require.Equal(t, []int{5, 1, 3}, c.Indices())

	c.Reset()
	require.Equal(t, 0, c.Len())
}

func TestCollisionListDedupeFrom(t *testing.T) {
	var c CollisionList
	for _, i := range []int{9, 2, 7, 2, 9, 4, 7} {
		c.Add(i)
	}
	// the first entry belongs to an earlier query and is left alone
	c.dedupeFrom(1)
	require.Equal(t, []int{9, 2, 4, 7, 9}, c.Indices())
}
