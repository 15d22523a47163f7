package octreetesting

import (
	"math/rand"
	"slices"

	"github.com/forestrie/go-cornerstone/box"
	"github.com/forestrie/go-cornerstone/sfc"
)

type leaf[K sfc.Key] struct {
	key   K
	level uint
}

// RandomTree returns a valid cornerstone tree with at least numLeaves leaves
// (or the fully refined tree if that is smaller), created by repeatedly
// splitting randomly chosen leaves. Half of the splits refine one of the most
// recently created children, which produces deep, unbalanced branches next to
// coarse leaves.
func RandomTree[K sfc.Key](rng *rand.Rand, numLeaves int) []K {
	maxLevel := sfc.MaxTreeLevel[K]()
	leaves := []leaf[K]{{key: 0, level: 0}}
	lastSplit := 0

	for len(leaves) < numLeaves {
		i := rng.Intn(len(leaves))
		if rng.Intn(2) == 0 {
			i = lastSplit + rng.Intn(len(leaves)-lastSplit)
		}
		if leaves[i].level >= maxLevel {
			i = slices.IndexFunc(leaves, func(l leaf[K]) bool { return l.level < maxLevel })
			if i < 0 {
				break
			}
		}

		parent := leaves[i]
		level := parent.level + 1
		width := sfc.NodeRange[K](level)
		leaves[i] = leaf[K]{key: parent.key, level: level}
		lastSplit = len(leaves)
		for c := K(1); c < 8; c++ {
			leaves = append(leaves, leaf[K]{key: parent.key + c*width, level: level})
		}
	}

	tree := make([]K, 0, len(leaves)+1)
	for _, l := range leaves {
		tree = append(tree, l.key)
	}
	slices.Sort(tree)
	return append(tree, sfc.NodeRange[K](0))
}

// RandomRadii returns n radii in [0, maxRadius). Roughly one in ten is zero.
func RandomRadii[T box.Float](rng *rand.Rand, n int, maxRadius T) []T {
	radii := make([]T, n)
	for i := range radii {
		if rng.Intn(10) == 0 {
			continue
		}
		radii[i] = T(rng.Float64()) * maxRadius
	}
	return radii
}

// RandomGlobalBox returns a box with a random origin, extents in [1, 10) and
// random periodicity per axis.
func RandomGlobalBox[T box.Float](rng *rand.Rand) box.Box[T] {
	var b box.Box[T]
	for i := 0; i < 3; i++ {
		b.Min[i] = T(rng.Float64()*20 - 10)
		b.Max[i] = b.Min[i] + T(1+rng.Float64()*9)
		b.Periodic[i] = rng.Intn(2) == 0
	}
	return b
}
