package btree

// NodeCountMax returns the number of records of an index over leafCount leaves.
// A binary radix tree with N distinct keys has exactly 2N-1 nodes.
func NodeCountMax(leafCount uint64) uint64 {
	if leafCount == 0 {
		return 0
	}
	return 2*leafCount - 1
}

// CheckLeafCount checks whether leafCount can be addressed by a Ref.
func CheckLeafCount(leafCount uint64) error {
	if NodeCountMax(leafCount) > uint64(NoRef) {
		return ErrLeafCountDoesNotFit
	}
	return nil
}
