package geom

import (
	"math"

	"github.com/hupe1980/kdtree/point"
)

// DiffAxis returns axis i of a minus axis i of b, as a real number.
func DiffAxis[T point.Number, K point.Keyed[T]](i int, a, b K) float64 {
	return float64(a.Axis(i)) - float64(b.Axis(i))
}

// DistAxis returns the absolute per-axis difference between a and b on
// axis i.
func DistAxis[T point.Number, K point.Keyed[T]](i int, a, b K) float64 {
	return math.Abs(DiffAxis[T](i, a, b))
}

// SumOfSquares returns the sum, over every axis, of the squared per-axis
// difference between a and b.
func SumOfSquares[T point.Number, K point.Keyed[T]](a, b K) float64 {
	var sum float64
	for i, d := 0, a.Arity(); i < d; i++ {
		diff := DiffAxis[T](i, a, b)
		sum += diff * diff
	}
	return sum
}

// L2Dist returns the Euclidean distance between a and b.
func L2Dist[T point.Number, K point.Keyed[T]](a, b K) float64 {
	return math.Sqrt(SumOfSquares[T](a, b))
}

// AllLess reports whether a is strictly less than b on every axis.
func AllLess[T point.Number, K point.Keyed[T]](a, b K) bool {
	for i, d := 0, a.Arity(); i < d; i++ {
		if !(a.Axis(i) < b.Axis(i)) {
			return false
		}
	}
	return true
}

// NoneLess reports whether a is not strictly less than b on any axis,
// i.e. a >= b componentwise.
func NoneLess[T point.Number, K point.Keyed[T]](a, b K) bool {
	for i, d := 0, a.Arity(); i < d; i++ {
		if a.Axis(i) < b.Axis(i) {
			return false
		}
	}
	return true
}

// Within reports whether p lies in the half-open box [lo, hi): p is
// componentwise not-less-than lo and strictly less than hi.
func Within[T point.Number, K point.Keyed[T]](p, lo, hi K) bool {
	return NoneLess[T](p, lo) && AllLess[T](p, hi)
}
