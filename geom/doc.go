// Package geom provides the geometric primitives the spatial queries are
// defined in terms of: per-axis difference and distance, squared Euclidean
// distance and its root, and the componentwise box predicates all_less,
// none_less and within.
//
// These are the only distance/containment primitives the tree package
// uses; re-deriving range or nearest-neighbor pruning from anything else
// breaks the invariants the builder establishes.
package geom
