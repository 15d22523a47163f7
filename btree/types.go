package btree

import "errors"

// Ref is a record index in the node arrays.
type Ref uint32

const NoRef = ^Ref(0)

type NodeKind uint8

const (
	KindLeaf   NodeKind = 1
	KindBranch NodeKind = 2
)

// MaxDepth bounds the number of branches on any root to leaf path.
const MaxDepth = 64

var (
	ErrOutOfOrderKey       = errors.New("btree: key out of order")
	ErrDuplicateKey        = errors.New("btree: duplicate key")
	ErrCapacity            = errors.New("btree: leaf capacity exceeded")
	ErrLeafCountDoesNotFit = errors.New("btree: leaf count does not fit in uint32")
	ErrEmptyIndex          = errors.New("btree: empty index")
	ErrIncomplete          = errors.New("btree: fewer leaves inserted than declared")
	ErrInvalidNodeKind     = errors.New("btree: invalid node kind")
	ErrInvalidBranchBit    = errors.New("btree: invalid branch bit")
	ErrInvalidSubtreeSize  = errors.New("btree: invalid subtree size")
	ErrInvalidRightSpan    = errors.New("btree: invalid right span")
)
