package kdtree

import (
	"context"
	"math/bits"
	"math/rand"
	"slices"

	"github.com/hupe1980/kdtree/compare"
	"github.com/hupe1980/kdtree/point"
	"golang.org/x/sync/errgroup"
)

// kdLess is the rotating comparator kdSort and its helpers partition by:
// Sort drives it with compare.KDLess, SortFunc with a caller comparator
// lifted through compare.KDCompareFunc.
type kdLess[T point.Number, K point.Keyed[T]] func(axis int, a, b K) bool

// Sort builds the implicit k-d tree in place: kd_sort from spec.md §4.4.
// After Sort returns, a is kd-sorted at axis 0 (§3).
func Sort[T point.Number, K point.Keyed[T]](a []K) {
	kdSort[T](a, 0, compare.KDLess[T, K])
}

// SortFunc is Sort with the axis scalar order lifted from less instead of
// T's natural <, mirroring kd_sort(R, cmp) in spec.md §6. less must be a
// strict weak order; equality is !less(x,y) && !less(y,x).
func SortFunc[T point.Number, K point.Keyed[T]](a []K, less compare.Less[T]) {
	kdSort[T](a, 0, func(axis int, x, y K) bool {
		return compare.KDCompareFunc[T](axis, less, x, y)
	})
}

func kdSort[T point.Number, K point.Keyed[T]](a []K, axis int, less kdLess[T, K]) {
	n := len(a)
	if n <= 1 {
		return
	}

	d := a[0].Arity()
	mid := n / 2

	nthElement[T](a, mid, axis, less)
	p := adjust[T](a[:mid], a[mid], axis, less)

	next := (axis + 1) % d
	kdSort[T](a[:p], next, less)
	kdSort[T](a[p+1:], next, less)
}

// nthElement reorders a so that a[k] holds the element that would be at
// index k under less, with every element of a[:k] not greater than a[k]
// and every element of a[k+1:] not less than a[k] — the "≤ on the left, ≥
// on the right" guarantee the adjust step in kdSort then tightens to a
// strict partition. Quickselect with a single randomly sampled pivot per
// partition step.
func nthElement[T point.Number, K point.Keyed[T]](a []K, k, axis int, less kdLess[T, K]) {
	lo, hi := 0, len(a)-1
	for lo < hi {
		p := hoarePartition[T](a, lo, hi, axis, less)
		switch {
		case k == p:
			return
		case k < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}
}

func hoarePartition[T point.Number, K point.Keyed[T]](a []K, lo, hi, axis int, less kdLess[T, K]) int {
	pivotIdx := lo + rand.Intn(hi-lo+1)
	a[pivotIdx], a[hi] = a[hi], a[pivotIdx]
	pivotVal := a[hi]

	store := lo
	for i := lo; i < hi; i++ {
		if less(axis, a[i], pivotVal) {
			a[i], a[store] = a[store], a[i]
			store++
		}
	}
	a[store], a[hi] = a[hi], a[store]
	return store
}

// adjust re-partitions left = a[first:mid) so that every element strictly
// less-than pivotVal comes before every element that is not, and returns
// the boundary p between the two. Selection alone only guarantees <=; the
// tree invariant (§3) demands strict <, so elements tied with the pivot
// that selection left anywhere in [first,mid) are pushed to the right end
// of that subrange.
//
// p, not mid, is the real split point the built tree uses from here on:
// a[mid] is left untouched by this partition, and a[p:mid] are elements
// tied with it under less — which, since less compares every axis before
// giving up, means they equal a[mid] on all D coordinates. kdSort
// recurses on a[:p] and a[p+1:], leaving a[p] as this level's stored
// node; querying code reconstructs the same p via findPivot.
func adjust[T point.Number, K point.Keyed[T]](left []K, pivotVal K, axis int, less kdLess[T, K]) int {
	store := 0
	for i := range left {
		if less(axis, left[i], pivotVal) {
			left[i], left[store] = left[store], left[i]
			store++
		}
	}
	return store
}

// LexSort orders a by the rotating lexicographic order kd_less<0>, the
// same strict weak order the kd-sorted invariant is built from, but
// applied uniformly across the whole slice rather than recursively
// around partition points. The result is a fully ordered sequence, which
// in general is not kd-sorted — it need not satisfy IsSorted, and Sort must
// be run separately if tree queries are also needed.
func LexSort[T point.Number, K point.Keyed[T]](a []K) {
	slices.SortFunc(a, func(x, y K) int {
		switch {
		case compare.KDLess[T](0, x, y):
			return -1
		case compare.KDLess[T](0, y, x):
			return 1
		default:
			return 0
		}
	})
}

// LexSortFunc is LexSort with the axis scalar order lifted from less
// instead of T's natural <, mirroring lex_sort(R, cmp) in spec.md §6.
func LexSortFunc[T point.Number, K point.Keyed[T]](a []K, less compare.Less[T]) {
	slices.SortFunc(a, func(x, y K) int {
		switch {
		case compare.KDCompareFunc[T](0, less, x, y):
			return -1
		case compare.KDCompareFunc[T](0, less, y, x):
			return 1
		default:
			return 0
		}
	})
}

// SortThreaded builds the implicit k-d tree in place like Sort, but forks
// the two halves of the partition onto separate goroutines while there is
// still budget left in the fork-join depth bound: with WithMaxThreads(n)
// (default runtime.GOMAXPROCS(0)), at most floor(log2(n)) levels of the
// recursion run concurrently, after which kdSort finishes each remaining
// subrange sequentially on its own goroutine.
func SortThreaded[T point.Number, K point.Keyed[T]](a []K, opts ...BuildOption) error {
	o := resolveBuildOptions(opts)
	maxDepth := 0
	if o.maxThreads > 1 {
		maxDepth = bits.Len(uint(o.maxThreads)) - 1
	}

	g, ctx := errgroup.WithContext(context.Background())
	kdSortThreaded[T](ctx, g, a, 0, maxDepth, compare.KDLess[T, K])
	return g.Wait()
}

func kdSortThreaded[T point.Number, K point.Keyed[T]](ctx context.Context, g *errgroup.Group, a []K, axis, depth int, less kdLess[T, K]) {
	n := len(a)
	if n <= 1 {
		return
	}
	if ctx.Err() != nil {
		return
	}

	d := a[0].Arity()
	mid := n / 2

	nthElement[T](a, mid, axis, less)
	p := adjust[T](a[:mid], a[mid], axis, less)

	next := (axis + 1) % d

	if depth <= 0 {
		kdSort[T](a[:p], next, less)
		kdSort[T](a[p+1:], next, less)
		return
	}

	left, right := a[:p], a[p+1:]
	g.Go(func() error {
		kdSortThreaded[T](ctx, g, left, next, depth-1, less)
		return nil
	})
	kdSortThreaded[T](ctx, g, right, next, depth-1, less)
}
