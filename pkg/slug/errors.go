package slug

import "errors"

// Sentinel errors for slug generation.
var (
	// ErrMaxLengthTooSmall is returned when the requested maximum length
	// cannot accommodate the mandatory hash suffix.
	ErrMaxLengthTooSmall = errors.New("slug: max length too small for hash suffix")

	// ErrNoNames is returned by Multi when the names slice is empty.
	ErrNoNames = errors.New("slug: at least one name required")
)
