// Package compare provides the dimension-indexed comparator family the
// tree builder and ordered queries are defined in terms of: a single-axis
// less-than, a rotating lexicographic less-than that starts at a given
// discriminator axis, and a lifted variant parameterized by a
// caller-supplied strict weak order on scalars.
package compare
