package octreetesting

import (
	"testing"

	"github.com/forestrie/go-cornerstone/octree"
	"github.com/stretchr/testify/require"
)

func TestRandomTreeIsCornerstone(t *testing.T) {
	tc := NewTestContext(t, TestConfig{Seed: 7, TestLabelPrefix: "TestRandomTreeIsCornerstone"})

	for _, n := range []int{1, 2, 50, 500} {
		tree32 := RandomTree[uint32](tc.Rand, n)
		require.NoError(t, octree.Validate(tree32))
		require.GreaterOrEqual(t, octree.NumNodes(tree32), n)

		tree64 := RandomTree[uint64](tc.Rand, n)
		require.NoError(t, octree.Validate(tree64))
		require.GreaterOrEqual(t, octree.NumNodes(tree64), n)
	}
}

func TestRandomTreeIsReproducible(t *testing.T) {
	a := NewTestContext(t, TestConfig{Seed: 99})
	b := NewTestContext(t, TestConfig{Seed: 99})
	require.Equal(t, RandomTree[uint64](a.Rand, 300), RandomTree[uint64](b.Rand, 300))
}

func TestRandomRadiiAndBox(t *testing.T) {
	tc := NewTestContext(t, TestConfig{Seed: 3})
	radii := RandomRadii(tc.Rand, 100, 0.5)
	require.Len(t, radii, 100)
	for _, r := range radii {
		require.GreaterOrEqual(t, r, 0.0)
		require.Less(t, r, 0.5)
	}
	for i := 0; i < 10; i++ {
		require.NoError(t, RandomGlobalBox[float32](tc.Rand).Validate())
	}
}
