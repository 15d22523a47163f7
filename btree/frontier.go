package btree

import "github.com/forestrie/go-cornerstone/sfc"

// Frame is an open branch: its crit bit and the root of its finished left subtree.
type Frame struct {
	Bit  uint8
	Left Ref
}

// Frontier is the builder state required to continue append-only construction.
type Frontier[K sfc.Key] struct {
	LastKey  K
	Pending  Ref
	Next     Ref
	NextLeaf uint32
	Depth    uint8
	Frames   [MaxDepth]Frame
}
