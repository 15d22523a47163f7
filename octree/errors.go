package octree

import "errors"

var (
	ErrTooFewKeys    = errors.New("octree: a cornerstone tree needs at least 2 keys")
	ErrNotIncreasing = errors.New("octree: keys not strictly increasing")
	ErrBadRange      = errors.New("octree: keys must start at 0 and end at the root node range")
	ErrMisaligned    = errors.New("octree: leaf is not a valid octree node")
	ErrBadLevel      = errors.New("octree: level exceeds the key's maximum tree level")
)
