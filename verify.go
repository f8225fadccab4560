package kdtree

import (
	"github.com/hupe1980/kdtree/compare"
	"github.com/hupe1980/kdtree/point"
)

// IsSorted reports whether a satisfies the kd-sorted invariant of
// spec.md §3 (kd_is_sorted). It is equivalent to Verify(a) == nil.
func IsSorted[T point.Number, K point.Keyed[T]](a []K) bool {
	return Verify[T](a) == nil
}

// Verify checks the kd-sorted invariant and, on failure, reports the axis
// and subrange where the partition was violated.
func Verify[T point.Number, K point.Keyed[T]](a []K) error {
	if len(a) == 0 {
		return nil
	}
	return verify[T](a, 0, 0, len(a), compare.KDLess[T, K])
}

// IsSortedFunc reports whether a satisfies the kd-sorted invariant under a
// caller-supplied scalar order. It is equivalent to VerifyFunc(a, less) ==
// nil.
func IsSortedFunc[T point.Number, K point.Keyed[T]](a []K, less compare.Less[T]) bool {
	return VerifyFunc[T](a, less) == nil
}

// VerifyFunc is Verify with the axis scalar order lifted from less instead
// of T's natural <, mirroring kd_is_sorted(R, cmp) in spec.md §6.
// findPivot's own boundary reconstruction is unaffected: the original
// reconstructs find_pivot with the default axis order even under a custom
// comparator, so VerifyFunc does too.
func VerifyFunc[T point.Number, K point.Keyed[T]](a []K, less compare.Less[T]) error {
	if len(a) == 0 {
		return nil
	}
	return verify[T](a, 0, 0, len(a), func(axis int, x, y K) bool {
		return compare.KDCompareFunc[T](axis, less, x, y)
	})
}

func verify[T point.Number, K point.Keyed[T]](a []K, axis, first, last int, less kdLess[T, K]) error {
	sub := a[first:last]
	if len(sub) <= 1 {
		return nil
	}

	d := sub[0].Arity()
	p := findPivot[T](sub, axis)
	pivotVal := sub[p]

	for i := 0; i < p; i++ {
		if !less(axis, sub[i], pivotVal) {
			return &VerifyError{Axis: axis, First: first, Last: last, cause: "left element is not kd_less than the pivot"}
		}
	}
	for i := p; i < len(sub); i++ {
		if less(axis, sub[i], pivotVal) {
			return &VerifyError{Axis: axis, First: first, Last: last, cause: "right element is kd_less than the pivot"}
		}
	}

	next := (axis + 1) % d
	if err := verify[T](a, next, first, first+p, less); err != nil {
		return err
	}
	return verify[T](a, next, first+p+1, last, less)
}
