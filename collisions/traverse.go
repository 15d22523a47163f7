package collisions

import (
	"fmt"

	"github.com/forestrie/go-cornerstone/box"
	"github.com/forestrie/go-cornerstone/btree"
	"github.com/forestrie/go-cornerstone/sfc"
)

// findCollisions descends index from the root and appends every leaf whose
// box overlaps query. It returns the number of records tested.
//
// Branches missing the query are skipped with all their leaves, branches
// contained in the query contribute their whole leaf range without further
// descent. The pending right children are kept on a fixed size stack, one per
// branch on the current path.
func findCollisions[K sfc.Key](index *btree.Index[K], query box.IBox, collisionList *CollisionList) (int, error) {
	cur := index.Root()
	if cur == btree.NoRef {
		return 0, btree.ErrEmptyIndex
	}

	var stack [btree.MaxDepth]btree.Ref
	sp := 0
	visited := 0

	for {
		visited++
		nodeBox := index.NodeBox(cur)
		hit := box.Overlap(nodeBox, query)

		switch index.NodeKindAt(cur) {
		case btree.KindLeaf:
			if hit {
				first, _ := index.NodeLeafRange(cur)
				collisionList.Add(int(first))
			}
		case btree.KindBranch:
			if !hit {
				break
			}
			if box.Contains(query, nodeBox) {
				first, last := index.NodeLeafRange(cur)
				for i := first; i < last; i++ {
					collisionList.Add(int(i))
				}
				break
			}
			left, right, err := index.Children(cur)
			if err != nil {
				return visited, err
			}
			if sp == len(stack) {
				return visited, fmt.Errorf("%w: ref=%d", ErrTraversalStackOverflow, cur)
			}
			stack[sp] = right
			sp++
			cur = left
			continue
		default:
			return visited, fmt.Errorf("%w: ref=%d", btree.ErrInvalidNodeKind, cur)
		}

		if sp == 0 {
			return visited, nil
		}
		sp--
		cur = stack[sp]
	}
}
