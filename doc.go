// Package kdtree implements an implicit k-d tree laid out in a
// contiguous, in-place slice: the sorted permutation of the input slice
// is the tree, and every query is a recursive index-range traversal over
// that slice. There are no node objects and no pointers between elements.
//
// # Building
//
//	pts := []point.Point[float64]{
//		point.New(3.0, 1.0),
//		point.New(1.0, 4.0),
//		point.New(2.0, 2.0),
//	}
//	kdtree.Sort[float64](pts)
//
// Sort leaves pts "kd-sorted": recursively partitioned around the middle
// element at a discriminator axis that rotates on each level. The slice is
// then safe to query with LowerBound, UpperBound, BinarySearch,
// EqualRange, NearestNeighbor, NearestNeighbors and RangeQuery, and must
// not be mutated for as long as those query results are relied upon.
//
// # Concurrency
//
// SortThreaded builds the same structure using fork-join recursion bounded
// by WithMaxThreads; queries themselves never spawn goroutines and may be
// run concurrently with each other (but never concurrently with a build).
package kdtree
