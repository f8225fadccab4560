package kdtree

import (
	"github.com/hupe1980/kdtree/geom"
	"github.com/hupe1980/kdtree/point"
)

// LowerBound returns the index of any element x in a with
// geom.NoneLess(x, v) (x >= v componentwise), or len(a) if none exists.
// a must already be kd-sorted (Sort or SortThreaded).
func LowerBound[T point.Number, K point.Keyed[T]](a []K, v K) int {
	return lowerBound[T](a, v, 0)
}

func lowerBound[T point.Number, K point.Keyed[T]](a []K, v K, axis int) int {
	return lowerBoundRange[T](a, v, axis, 0, len(a))
}

// lowerBoundRange ports kd_lower_bound<I> directly: first and last are
// absolute indices into a, and last itself doubles as the "not found"
// sentinel, exactly as in the original. A sub-search's own sentinel is
// its own last argument. When both sides are searched, each returned
// index is checked before it is trusted. When only one side is searched,
// its result is returned as is: a right-side search reports "not found"
// as last, and a left-side search reports it as p, the pivot's own index,
// which is a valid answer because that branch is only taken when
// NoneLess(pivot, v) holds.
func lowerBoundRange[T point.Number, K point.Keyed[T]](a []K, v K, axis, first, last int) int {
	if last-first <= 1 {
		if first == last {
			return last
		}
		if geom.NoneLess[T](a[first], v) {
			return first
		}
		return last
	}

	sub := a[first:last]
	d := sub[0].Arity()
	p := first + findPivot[T](sub, axis)
	pivotVal := a[p]
	next := (axis + 1) % d

	if geom.NoneLess[T](pivotVal, v) {
		return lowerBoundRange[T](a, v, next, first, p)
	}
	if geom.AllLess[T](pivotVal, v) {
		return lowerBoundRange[T](a, v, next, p+1, last)
	}
	if it := lowerBoundRange[T](a, v, next, first, p); it != last && geom.NoneLess[T](a[it], v) {
		return it
	}
	if it := lowerBoundRange[T](a, v, next, p+1, last); it != last && geom.NoneLess[T](a[it], v) {
		return it
	}
	return last
}

// UpperBound returns the index of any element x in a with
// geom.AllLess(v, x) (x > v strictly on every axis), or len(a) if none
// exists. a must already be kd-sorted.
func UpperBound[T point.Number, K point.Keyed[T]](a []K, v K) int {
	return upperBound[T](a, v, 0)
}

func upperBound[T point.Number, K point.Keyed[T]](a []K, v K, axis int) int {
	return upperBoundRange[T](a, v, axis, 0, len(a))
}

// upperBoundRange ports kd_upper_bound<I>, symmetric to lowerBoundRange
// with the roles of v and pivotVal swapped in the all_less/none_less
// tests.
func upperBoundRange[T point.Number, K point.Keyed[T]](a []K, v K, axis, first, last int) int {
	if last-first <= 1 {
		if first == last {
			return last
		}
		if geom.AllLess[T](v, a[first]) {
			return first
		}
		return last
	}

	sub := a[first:last]
	d := sub[0].Arity()
	p := first + findPivot[T](sub, axis)
	pivotVal := a[p]
	next := (axis + 1) % d

	if geom.AllLess[T](v, pivotVal) {
		return upperBoundRange[T](a, v, next, first, p)
	}
	if geom.NoneLess[T](v, pivotVal) {
		return upperBoundRange[T](a, v, next, p+1, last)
	}
	if it := upperBoundRange[T](a, v, next, first, p); it != last && geom.AllLess[T](v, a[it]) {
		return it
	}
	if it := upperBoundRange[T](a, v, next, p+1, last); it != last && geom.AllLess[T](v, a[it]) {
		return it
	}
	return last
}

// BinarySearch reports whether a contains an element equal to v
// (componentwise none_less in both directions).
func BinarySearch[T point.Number, K point.Keyed[T]](a []K, v K) bool {
	it := LowerBound[T](a, v)
	return it != len(a) && geom.NoneLess[T](v, a[it])
}

// EqualRange returns LowerBound(a, v) and UpperBound(a, v) as a pair.
// Each is the index of some qualifying element found by the tree walk,
// not the edge of a contiguous block, so [lo, hi) is not guaranteed to
// hold exactly the elements equal to v.
func EqualRange[T point.Number, K point.Keyed[T]](a []K, v K) (lo, hi int) {
	return LowerBound[T](a, v), UpperBound[T](a, v)
}
