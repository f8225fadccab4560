// Package compare implements kd_less<I> and its relatives.
package compare

import "github.com/hupe1980/kdtree/point"

// LessAxis reports whether a is less than b on axis i alone.
func LessAxis[T point.Number, K point.Keyed[T]](i int, a, b K) bool {
	return a.Axis(i) < b.Axis(i)
}

// KDLess is the rotating lexicographic strict weak order used throughout
// the tree: compare on axis i; on a tie, recurse on axis (i+1) mod D; after
// D axes have been examined without a decision, a and b are considered
// equal and KDLess returns false.
func KDLess[T point.Number, K point.Keyed[T]](i int, a, b K) bool {
	d := a.Arity()
	axis := i % d
	for examined := 0; examined < d; examined++ {
		av, bv := a.Axis(axis), b.Axis(axis)
		if av < bv {
			return true
		}
		if bv < av {
			return false
		}
		axis = (axis + 1) % d
	}
	return false
}

// Less is a strict weak order on scalars: Less(x, y) reports whether x
// precedes y. Equality is defined as !Less(x,y) && !Less(y,x).
type Less[T any] func(x, y T) bool

// KDCompareFunc lifts a caller-supplied strict weak order on scalars to the
// same rotating-lexicographic structure KDLess uses, so that kd_compare<I,P>
// can drive the builder and ordered queries for scalar types that don't
// have a natural operator< (or for a custom tie-break order on one that
// does).
func KDCompareFunc[T point.Number, K point.Keyed[T]](i int, less Less[T], a, b K) bool {
	d := a.Arity()
	axis := i % d
	for examined := 0; examined < d; examined++ {
		av, bv := a.Axis(axis), b.Axis(axis)
		if less(av, bv) {
			return true
		}
		if less(bv, av) {
			return false
		}
		axis = (axis + 1) % d
	}
	return false
}
