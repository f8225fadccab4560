package kdtree

import (
	"errors"
	"fmt"
)

// ErrEmptyRange is returned by NearestNeighbor when called on an empty
// slice; spec.md §7 leaves this undefined behaviour, but a library
// consumed by arbitrary callers fails louder at its own boundary instead.
var ErrEmptyRange = errors.New("kdtree: empty range")

// ErrInvalidK is returned when k is negative.
var ErrInvalidK = errors.New("kdtree: k must be >= 0")

// VerifyError describes why kd_is_sorted rejected a slice: the axis and
// half-open subrange where the partition invariant first failed.
type VerifyError struct {
	Axis        int
	First, Last int
	cause       string
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("kdtree: not kd-sorted at axis %d, range [%d,%d): %s", e.Axis, e.First, e.Last, e.cause)
}
