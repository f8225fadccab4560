// Package point provides the fixed-arity tuple abstraction the k-d tree
// algorithms are built on: a Point is a sequence of ordered scalars of a
// single type, indexed by axis, and a Record pairs such a key with an
// opaque value.
//
// # Usage
//
//	p := point.New(3.0, 1.0)
//	q := point.New(5.0, 5.0)
//	rec := point.NewRecord(p, "payload")
package point
