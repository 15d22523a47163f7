package collisions

import (
	"testing"

	"github.com/forestrie/go-cornerstone/box"
	"github.com/forestrie/go-cornerstone/octree"
	"github.com/forestrie/go-cornerstone/sfc"
	"github.com/stretchr/testify/require"
)

func uniformTree[K sfc.Key](t *testing.T, level uint) []K {
	tree, err := octree.MakeUniformTree[K](level)
	require.NoError(t, err)
	return tree
}

func TestFindCollisions2AllLeafOrder(t *testing.T) {
	tree := uniformTree[uint32](t, 1)

	var c CollisionList
	// the lower x half of the domain
	require.NoError(t, FindCollisions2All(tree, &c, box.NewIBox(0, 511, 0, 1023, 0, 1023)))
	require.Equal(t, []int{0, 1, 2, 3}, c.Indices())
}

func TestFindCollisions2AllBoundaryTouch(t *testing.T) {
	tree := uniformTree[uint32](t, 1)

	var c CollisionList
	// max x touches the first cell of the upper x octants
	require.NoError(t, FindCollisions2All(tree, &c, box.NewIBox(0, 512, 0, 0, 0, 0)))
	require.Equal(t, []int{0, 4}, c.Indices())
}

func TestFindCollisions2AllOutsideDomain(t *testing.T) {
	tree := uniformTree[uint64](t, 2)

	var c CollisionList
	m := sfc.MaxCoord[uint64]()
	require.NoError(t, FindCollisions2All(tree, &c, box.NewIBox(m, m+100, 0, 10, 0, 10)))
	require.NoError(t, FindCollisions2All(tree, &c, box.NewIBox(-100, -1, 0, 10, 0, 10)))
	require.Equal(t, 0, c.Len())
}

func TestFindCollisions2AllRejectsMalformedTree(t *testing.T) {
	var c CollisionList
	err := FindCollisions2All([]uint32{0, 8, 8, sfc.NodeRange[uint32](0)}, &c, box.IBox{})
	require.ErrorIs(t, err, octree.ErrNotIncreasing)
}

func TestFindCollisionsAll2AllZeroRadius(t *testing.T) {
	tree := uniformTree[uint32](t, 2)
	radii := make([]float64, octree.NumNodes(tree))

	collisions, err := FindCollisionsAll2All(tree, radii, box.NewCube(0.0, 1.0, false))
	require.NoError(t, err)
	require.Len(t, collisions, 64)
	// a zero radius halo is the leaf itself, which never shares a cell with
	// its neighbours
	for i := range collisions {
		require.Equal(t, []int{i}, collisions[i].Indices())
	}
}

func TestFindCollisionsAll2AllAsymmetric(t *testing.T) {
	tree := uniformTree[uint32](t, 2)
	radii := make([]float64, octree.NumNodes(tree))

	a := 0
	b := int(sfc.Encode[uint32](512, 512, 512) / sfc.NodeRange[uint32](2))
	radii[a] = 0.5

	collisions, err := FindCollisionsAll2All(tree, radii, box.NewCube(0.0, 1.0, false))
	require.NoError(t, err)
	require.True(t, collisions[a].Contains(b))
	require.False(t, collisions[b].Contains(a))
	require.Equal(t, []int{b}, collisions[b].Indices())
	// the halo of a covers 3 leaves per axis
	require.Equal(t, 27, collisions[a].Len())
}

func TestFindCollisionsAll2AllErrors(t *testing.T) {
	tree := uniformTree[uint32](t, 1)
	global := box.NewCube(0.0, 1.0, true)

	_, err := FindCollisionsAll2All(tree, make([]float64, 7), global)
	require.ErrorIs(t, err, ErrRadiusCountMismatch)

	radii := make([]float64, 8)
	radii[3] = -1
	_, err = FindCollisionsAll2All(tree, radii, global)
	require.ErrorIs(t, err, box.ErrNegativeRadius)

	_, err = FindCollisionsAll2All([]uint32{0}, []float64{}, global)
	require.ErrorIs(t, err, octree.ErrTooFewKeys)

	_, err = FindCollisionsAll2All(tree, make([]float64, 8), box.NewCube(1.0, 1.0, false))
	require.ErrorIs(t, err, box.ErrEmptyDomain)
}
