package collisions

import (
	"context"
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/forestrie/go-cornerstone/box"
	"github.com/forestrie/go-cornerstone/btree"
	"github.com/forestrie/go-cornerstone/octree"
	"github.com/forestrie/go-cornerstone/sfc"
)

// Engine answers overlap queries against the leaves of one cornerstone tree.
//
// The tree and its index are read only after NewEngine returns, so all
// methods are safe for concurrent use. A rebuilt tree needs a new Engine;
// collision lists from the old engine refer to the old leaf numbering.
type Engine[K sfc.Key, T box.Float] struct {
	tree      []K
	globalBox box.Box[T]
	index     *btree.Index[K]

	log     logger.Logger
	workers int
	metrics *metrics
}

// NewEngine validates tree and globalBox and builds the radix index over the leaves.
func NewEngine[K sfc.Key, T box.Float](tree []K, globalBox box.Box[T], opts ...Option) (*Engine[K, T], error) {
	options := NewOptions(opts...)
	if err := globalBox.Validate(); err != nil {
		return nil, err
	}

	e := &Engine[K, T]{
		tree:      tree,
		globalBox: globalBox,
		log:       options.Log,
		workers:   options.Workers,
		metrics:   newMetrics(options.Registerer),
	}

	timer := prometheus.NewTimer(e.metrics.buildDuration)
	index, err := btree.Build(tree)
	elapsed := timer.ObserveDuration()
	if err != nil {
		return nil, err
	}
	e.index = index

	if e.log != nil {
		e.log.Debugf("NewEngine: leaves=%d, records=%d, key bits=%d, build=%v",
			index.LeafCount(), index.NodeCount(), sfc.KeyBits[K](), elapsed)
	}
	return e, nil
}

// Tree returns the cornerstone keys the engine was built from.
func (e *Engine[K, T]) Tree() []K { return e.tree }

// Index returns the radix index over the leaves.
func (e *Engine[K, T]) Index() *btree.Index[K] { return e.index }

// GlobalBox returns the simulation domain.
func (e *Engine[K, T]) GlobalBox() box.Box[T] { return e.globalBox }

// NumLeaves returns the number of leaves in the tree.
func (e *Engine[K, T]) NumLeaves() int { return octree.NumNodes(e.tree) }

// HaloBox returns the box of leaf expanded by radius.
func (e *Engine[K, T]) HaloBox(leaf int, radius T) (box.IBox, error) {
	if leaf < 0 || leaf >= e.NumLeaves() {
		return box.IBox{}, fmt.Errorf("%w: leaf=%d, leaves=%d", ErrLeafOutOfRange, leaf, e.NumLeaves())
	}
	return e.haloBox(leaf, radius), nil
}

func (e *Engine[K, T]) haloBox(leaf int, radius T) box.IBox {
	return box.MakeHaloBox(e.tree[leaf], e.tree[leaf+1], radius, e.globalBox)
}

// FindCollisions appends to collisionList every leaf whose box overlaps
// collisionBox. A box wrapped on periodic axes is queried piecewise and each
// leaf is reported once. The order of the appended indices is unspecified.
func (e *Engine[K, T]) FindCollisions(collisionBox box.IBox, collisionList *CollisionList) error {
	var buf [box.MaxSplit]box.IBox
	return e.findCollisions(collisionBox, collisionList, buf[:0])
}

// FindLeafCollisions is FindCollisions for the halo box of leaf.
func (e *Engine[K, T]) FindLeafCollisions(leaf int, radius T, collisionList *CollisionList) error {
	if err := box.CheckRadius(radius); err != nil {
		return err
	}
	halo, err := e.HaloBox(leaf, radius)
	if err != nil {
		return err
	}
	return e.FindCollisions(halo, collisionList)
}

func (e *Engine[K, T]) findCollisions(collisionBox box.IBox, collisionList *CollisionList, buf []box.IBox) error {
	start := collisionList.Len()
	parts := box.SplitPeriodic[K](collisionBox, buf)

	var visited int
	for _, part := range parts {
		n, err := findCollisions(e.index, part, collisionList)
		visited += n
		if err != nil {
			return err
		}
	}
	if len(parts) > 1 {
		collisionList.dedupeFrom(start)
	}

	e.metrics.queries.Inc()
	e.metrics.nodesVisited.Add(float64(visited))
	e.metrics.collisions.Add(float64(collisionList.Len() - start))
	return nil
}

// FindAllCollisions returns one collision list per leaf, querying the halo
// box of every leaf with its radius from haloRadii.
//
// Leaves are processed in parallel by up to Options.Workers goroutines. Each
// list is written by exactly one goroutine. Cancelling ctx abandons the round.
func (e *Engine[K, T]) FindAllCollisions(ctx context.Context, haloRadii []T) ([]CollisionList, error) {
	n := e.NumLeaves()
	if err := checkRadii(n, haloRadii); err != nil {
		return nil, err
	}

	collisions := make([]CollisionList, n)
	chunk := max(1, n/(4*e.workers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for first := 0; first < n; first += chunk {
		first := first
		last := min(first+chunk, n)
		g.Go(func() error {
			var buf [box.MaxSplit]box.IBox
			for i := first; i < last; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := e.findCollisions(e.haloBox(i, haloRadii[i]), &collisions[i], buf[:0]); err != nil {
					return fmt.Errorf("leaf %d: %w", i, err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if e.log != nil {
		e.log.Debugf("FindAllCollisions: leaves=%d, workers=%d, chunk=%d", n, e.workers, chunk)
	}
	return collisions, nil
}
