package box

import "errors"

var (
	ErrNegativeRadius = errors.New("box: halo radius must be finite and non-negative")
	ErrEmptyDomain    = errors.New("box: global box max must exceed min on every axis")
)
