package collisions

import (
	"fmt"

	"github.com/forestrie/go-cornerstone/box"
	"github.com/forestrie/go-cornerstone/octree"
	"github.com/forestrie/go-cornerstone/sfc"
)

// FindCollisions2All appends to collisionList, in leaf order, every leaf of
// tree whose box overlaps collisionBox.
//
// Naive implementation without tree traversal for reference and testing
// purposes.
func FindCollisions2All[K sfc.Key](tree []K, collisionList *CollisionList, collisionBox box.IBox) error {
	if err := octree.Validate(tree); err != nil {
		return err
	}
	findCollisions2All(tree, collisionList, collisionBox)
	return nil
}

func findCollisions2All[K sfc.Key](tree []K, collisionList *CollisionList, collisionBox box.IBox) {
	for idx := 0; idx < octree.NumNodes(tree); idx++ {
		if box.Overlap(octree.NodeBox(tree, idx), collisionBox) {
			collisionList.Add(idx)
		}
	}
}

// FindCollisionsAll2All returns one collision list per leaf, built by
// scanning all leaves against each leaf's halo box.
func FindCollisionsAll2All[K sfc.Key, T box.Float](tree []K, haloRadii []T, globalBox box.Box[T]) ([]CollisionList, error) {
	if err := checkInputs(tree, haloRadii, globalBox); err != nil {
		return nil, err
	}

	collisions := make([]CollisionList, octree.NumNodes(tree))
	for leafIdx := range collisions {
		haloBox := box.MakeHaloBox(tree[leafIdx], tree[leafIdx+1], haloRadii[leafIdx], globalBox)
		findCollisions2All(tree, &collisions[leafIdx], haloBox)
	}
	return collisions, nil
}

func checkInputs[K sfc.Key, T box.Float](tree []K, haloRadii []T, globalBox box.Box[T]) error {
	if err := octree.Validate(tree); err != nil {
		return err
	}
	if err := globalBox.Validate(); err != nil {
		return err
	}
	return checkRadii(octree.NumNodes(tree), haloRadii)
}

func checkRadii[T box.Float](numLeaves int, haloRadii []T) error {
	if len(haloRadii) != numLeaves {
		return fmt.Errorf("%w: leaves=%d, radii=%d", ErrRadiusCountMismatch, numLeaves, len(haloRadii))
	}
	for i, r := range haloRadii {
		if err := box.CheckRadius(r); err != nil {
			return fmt.Errorf("leaf %d: %w", i, err)
		}
	}
	return nil
}
