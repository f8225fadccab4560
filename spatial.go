package kdtree

import (
	"github.com/hupe1980/kdtree/compare"
	"github.com/hupe1980/kdtree/geom"
	"github.com/hupe1980/kdtree/internal/pqueue"
	"github.com/hupe1980/kdtree/point"
)

// linearScanThreshold is the subrange size at or below which RangeQuery gives
// up on axis-aligned pruning and just checks every element directly: at
// this size the overhead of computing find_pivot and recursing no longer
// pays for itself relative to a flat scan.
const linearScanThreshold = 32

// NearestNeighbor returns the index in a of the element closest to v
// under Euclidean distance (ties resolved in favor of the near side
// visited first during descent) and that distance. It returns
// ErrEmptyRange if a is empty. a must already be kd-sorted.
func NearestNeighbor[T point.Number, K point.Keyed[T]](a []K, v K) (idx int, dist float64, err error) {
	if len(a) == 0 {
		return 0, 0, ErrEmptyRange
	}
	bestIdx, bestDist := -1, 0.0
	nearestNeighbor[T](a, v, 0, 0, &bestIdx, &bestDist)
	return bestIdx, bestDist, nil
}

func nearestNeighbor[T point.Number, K point.Keyed[T]](a []K, v K, axis, base int, bestIdx *int, bestDist *float64) {
	n := len(a)
	if n == 0 {
		return
	}
	d := a[0].Arity()
	p := findPivot[T](a, axis)
	pivotVal := a[p]

	dist := geom.L2Dist[T](v, pivotVal)
	if *bestIdx == -1 || dist < *bestDist {
		*bestIdx, *bestDist = base+p, dist
	}

	next := (axis + 1) % d
	left, right := a[:p], a[p+1:]
	leftBase, rightBase := base, base+p+1

	// Descend the side v's axis-I value falls on first; it is the side most
	// likely to hold the true nearest neighbor.
	nearIsLeft := compare.LessAxis[T](axis, v, pivotVal)
	if nearIsLeft {
		nearestNeighbor[T](left, v, next, leftBase, bestIdx, bestDist)
	} else {
		nearestNeighbor[T](right, v, next, rightBase, bestIdx, bestDist)
	}

	// The far side can only hold a closer point if a point on the
	// splitting plane itself could be closer than the current best —
	// i.e. the per-axis distance to pivotVal's axis-I value doesn't
	// already exceed it.
	axisDist := geom.DistAxis[T](axis, v, pivotVal)
	if axisDist > *bestDist {
		return
	}
	if nearIsLeft {
		nearestNeighbor[T](right, v, next, rightBase, bestIdx, bestDist)
	} else {
		nearestNeighbor[T](left, v, next, leftBase, bestIdx, bestDist)
	}
}

// NearestNeighbors returns the indices of up to k elements of a closest
// to v, ordered farthest-first (matching the pop order of the bounded
// max-heap kd_nearest_neighbors drains in §4.6), along with their
// distances. a must already be kd-sorted. It returns ErrInvalidK if k is
// negative; k == 0 returns an empty, non-nil result.
func NearestNeighbors[T point.Number, K point.Keyed[T]](a []K, v K, k int) ([]pqueue.Item, error) {
	if k < 0 {
		return nil, ErrInvalidK
	}
	if k == 0 || len(a) == 0 {
		return []pqueue.Item{}, nil
	}
	q := pqueue.NewBounded(k)
	nearestNeighbors[T](a, v, 0, 0, q)
	return q.Drain(), nil
}

func nearestNeighbors[T point.Number, K point.Keyed[T]](a []K, v K, axis, base int, q *pqueue.Bounded) {
	n := len(a)
	if n == 0 {
		return
	}
	d := a[0].Arity()
	p := findPivot[T](a, axis)
	pivotVal := a[p]

	q.Add(geom.L2Dist[T](v, pivotVal), base+p)

	next := (axis + 1) % d
	left, right := a[:p], a[p+1:]
	leftBase, rightBase := base, base+p+1

	nearIsLeft := compare.LessAxis[T](axis, v, pivotVal)
	if nearIsLeft {
		nearestNeighbors[T](left, v, next, leftBase, q)
	} else {
		nearestNeighbors[T](right, v, next, rightBase, q)
	}

	axisDist := geom.DistAxis[T](axis, v, pivotVal)
	if axisDist > q.MaxKey() {
		return
	}
	if nearIsLeft {
		nearestNeighbors[T](right, v, next, rightBase, q)
	} else {
		nearestNeighbors[T](left, v, next, leftBase, q)
	}
}

// RangeQuery reports every element of a lying in the half-open box
// [lo, hi) by calling visit with each qualifying element's index. a must
// already be kd-sorted.
func RangeQuery[T point.Number, K point.Keyed[T]](a []K, lo, hi K, visit func(idx int)) {
	rangeQuery[T](a, lo, hi, 0, 0, visit)
}

// RangeQuerySlice is a convenience wrapper over RangeQuery that collects
// the qualifying indices into a slice instead of streaming them through a
// callback.
func RangeQuerySlice[T point.Number, K point.Keyed[T]](a []K, lo, hi K) []int {
	var out []int
	RangeQuery[T](a, lo, hi, func(idx int) { out = append(out, idx) })
	return out
}

func rangeQuery[T point.Number, K point.Keyed[T]](a []K, lo, hi K, axis, base int, visit func(idx int)) {
	n := len(a)
	if n == 0 {
		return
	}
	if n <= linearScanThreshold {
		for i, elem := range a {
			if geom.Within[T](elem, lo, hi) {
				visit(base + i)
			}
		}
		return
	}

	d := a[0].Arity()
	p := findPivot[T](a, axis)
	pivotVal := a[p]

	if geom.Within[T](pivotVal, lo, hi) {
		visit(base + p)
	}

	next := (axis + 1) % d
	left, right := a[:p], a[p+1:]
	leftBase, rightBase := base, base+p+1

	// The left subtree's axis-I values are all <= pivotVal's axis-I value;
	// it can only hold a match if that bound doesn't already fall below
	// lo's axis-I value.
	if !compare.LessAxis[T](axis, pivotVal, lo) {
		rangeQuery[T](left, lo, hi, next, leftBase, visit)
	}
	// Symmetric prune for the right subtree against hi.
	if compare.LessAxis[T](axis, pivotVal, hi) {
		rangeQuery[T](right, lo, hi, next, rightBase, visit)
	}
}
