package kdtree

import (
	"github.com/hupe1980/kdtree/compare"
	"github.com/hupe1980/kdtree/point"
)

// findPivot reconstructs the partition boundary of a kd-sorted subrange
// a at discriminator axis, without any stored metadata: find_pivot<I> from
// spec.md §4.4. Equal-axis elements may have accumulated immediately left
// of the middle element during the builder's adjust step; findPivot scans
// for the actual boundary so queries descend correctly.
func findPivot[T point.Number, K point.Keyed[T]](a []K, axis int) int {
	m := len(a) / 2
	pivot := a[m]
	for pos := 0; pos <= m; pos++ {
		if !compare.LessAxis[T](axis, a[pos], pivot) {
			return pos
		}
	}
	return m
}
