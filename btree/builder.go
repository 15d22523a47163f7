package btree

import (
	"fmt"

	"github.com/forestrie/go-cornerstone/box"
	"github.com/forestrie/go-cornerstone/octree"
	"github.com/forestrie/go-cornerstone/sfc"
)

// Builder performs append-only construction of a postorder binary radix tree
// over strictly-increasing keys, writing in-place into preallocated arrays.
type Builder[K sfc.Key] struct {
	idx Index[K]

	leafCap uint32

	st Frontier[K]
}

// NewBuilder preallocates the records for exactly leafCount leaves.
func NewBuilder[K sfc.Key](leafCount uint64) (*Builder[K], error) {
	if err := CheckLeafCount(leafCount); err != nil {
		return nil, err
	}
	n := NodeCountMax(leafCount)
	b := &Builder[K]{
		idx: Index[K]{
			kind:      make([]NodeKind, n),
			bit:       make([]uint8, n),
			rightSpan: make([]uint32, n),
			size:      make([]uint32, n),
			first:     make([]uint32, n),
			last:      make([]uint32, n),
			boxes:     make([]box.IBox, n),
			root:      NoRef,
		},
		leafCap: uint32(leafCount),
	}
	b.st.Pending = NoRef
	return b, nil
}

// Build returns the index over the leaves of a cornerstone tree.
func Build[K sfc.Key](tree []K) (*Index[K], error) {
	if err := octree.Validate(tree); err != nil {
		return nil, err
	}
	n := octree.NumNodes(tree)
	b, err := NewBuilder[K](uint64(n))
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if _, err := b.InsertMonotone(tree[i], octree.NodeBox(tree, i)); err != nil {
			return nil, err
		}
	}
	return b.Finalize()
}

// Frontier exports the builder's state.
func (b *Builder[K]) Frontier() Frontier[K] {
	return b.st
}

// InsertMonotone appends the next leaf, starting at key and covering leafBox.
//
// key MUST be strictly increasing across calls.
func (b *Builder[K]) InsertMonotone(key K, leafBox box.IBox) (leafOrdinal uint32, err error) {
	if b.st.NextLeaf != 0 {
		if key < b.st.LastKey {
			return 0, ErrOutOfOrderKey
		}
		if key == b.st.LastKey {
			return 0, ErrDuplicateKey
		}
	}
	if b.st.NextLeaf >= b.leafCap {
		return 0, ErrCapacity
	}
	leafOrdinal = b.st.NextLeaf

	// First insert is trivial: pending points at the only subtree.
	if b.st.NextLeaf == 0 {
		b.st.Pending = b.emitLeaf(leafOrdinal, leafBox)
		b.st.LastKey = key
		b.st.NextLeaf++
		return leafOrdinal, nil
	}

	l, ok := critBit(b.st.LastKey, key)
	if !ok {
		return 0, ErrDuplicateKey
	}

	// Close any frames that are now known complete.
	for b.st.Depth > 0 && b.st.Frames[b.st.Depth-1].Bit > l {
		top := b.st.Frames[b.st.Depth-1]
		b.st.Depth--
		b.st.Pending = b.emitBranch(top.Bit, top.Left, b.st.Pending)
	}

	// Open a new frame at l if we are descending deeper than current top.
	if b.st.Depth == 0 || b.st.Frames[b.st.Depth-1].Bit < l {
		if b.st.Depth >= MaxDepth {
			return 0, ErrInvalidBranchBit
		}
		b.st.Frames[b.st.Depth] = Frame{Bit: l, Left: b.st.Pending}
		b.st.Depth++
	}

	// The new key is now the rightmost subtree.
	b.st.Pending = b.emitLeaf(leafOrdinal, leafBox)
	b.st.LastKey = key
	b.st.NextLeaf++
	return leafOrdinal, nil
}

// Finalize closes any remaining open frames and returns the index.
func (b *Builder[K]) Finalize() (*Index[K], error) {
	if b.st.NextLeaf == 0 {
		return nil, ErrEmptyIndex
	}
	if b.st.NextLeaf != b.leafCap {
		return nil, fmt.Errorf("%w: inserted=%d, declared=%d", ErrIncomplete, b.st.NextLeaf, b.leafCap)
	}

	for b.st.Depth > 0 {
		top := b.st.Frames[b.st.Depth-1]
		b.st.Depth--
		b.st.Pending = b.emitBranch(top.Bit, top.Left, b.st.Pending)
	}

	b.idx.root = b.st.Pending
	b.idx.leafCount = b.st.NextLeaf
	idx := b.idx
	return &idx, nil
}

// emitLeaf and emitBranch cannot run out of records: the arrays hold 2N-1
// entries and the capacity check in InsertMonotone bounds N.
func (b *Builder[K]) emitLeaf(leafOrdinal uint32, leafBox box.IBox) Ref {
	ref := b.st.Next
	b.idx.kind[ref] = KindLeaf
	b.idx.size[ref] = 1
	b.idx.first[ref] = leafOrdinal
	b.idx.last[ref] = leafOrdinal + 1
	b.idx.boxes[ref] = leafBox
	b.st.Next++
	return ref
}

func (b *Builder[K]) emitBranch(bit uint8, leftRef Ref, rightRef Ref) Ref {
	ref := b.st.Next
	b.idx.kind[ref] = KindBranch
	b.idx.bit[ref] = bit
	b.idx.rightSpan[ref] = b.idx.size[rightRef]
	b.idx.size[ref] = b.idx.size[leftRef] + b.idx.size[rightRef] + 1
	b.idx.first[ref] = b.idx.first[leftRef]
	b.idx.last[ref] = b.idx.last[rightRef]
	b.idx.boxes[ref] = box.Union(b.idx.boxes[leftRef], b.idx.boxes[rightRef])
	b.st.Next++
	return ref
}
