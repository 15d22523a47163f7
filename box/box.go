package box

import (
	"fmt"
	"math"
)

// Float is the family of physical coordinate types.
type Float interface {
	~float32 | ~float64
}

// Box is the global simulation domain in physical units.
type Box[T Float] struct {
	Min      [3]T
	Max      [3]T
	Periodic [3]bool
}

// NewBox creates a global box with the same periodicity on every axis.
func NewBox[T Float](xmin, xmax, ymin, ymax, zmin, zmax T, periodic bool) Box[T] {
	return Box[T]{
		Min:      [3]T{xmin, ymin, zmin},
		Max:      [3]T{xmax, ymax, zmax},
		Periodic: [3]bool{periodic, periodic, periodic},
	}
}

// NewCube creates a cubic global box spanning [lo, hi] on every axis.
func NewCube[T Float](lo, hi T, periodic bool) Box[T] {
	return NewBox(lo, hi, lo, hi, lo, hi, periodic)
}

// Length returns the extent of the box along axis.
func (b Box[T]) Length(axis int) T {
	return b.Max[axis] - b.Min[axis]
}

// Validate checks every axis has a finite, positive extent.
func (b Box[T]) Validate() error {
	for i := 0; i < 3; i++ {
		l := float64(b.Length(i))
		if !(l > 0) || math.IsInf(l, 0) {
			return fmt.Errorf("%w: axis=%d, min=%v, max=%v", ErrEmptyDomain, i, b.Min[i], b.Max[i])
		}
	}
	return nil
}

// CheckRadius returns ErrNegativeRadius unless r is finite and >= 0.
func CheckRadius[T Float](r T) error {
	f := float64(r)
	if !(f >= 0) || math.IsInf(f, 1) {
		return fmt.Errorf("%w: radius=%v", ErrNegativeRadius, r)
	}
	return nil
}
