package collisions

import "errors"

var (
	ErrRadiusCountMismatch    = errors.New("collisions: one halo radius per leaf is required")
	ErrTraversalStackOverflow = errors.New("collisions: traversal stack exhausted, the index is corrupt")
	ErrLeafOutOfRange         = errors.New("collisions: leaf index out of range")
)
