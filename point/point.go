package point

// Number is the constraint on a Point's axis scalar type: an ordered type
// whose pairwise difference is a real number. All axes of one Point type
// share a single Number instantiation (see DESIGN.md for why the spec's
// per-axis Tᵢ generality collapses to one shared T here).
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Keyed is satisfied by anything the comparator, geometry and tree
// algorithms can treat as a key: fixed arity, axis access by index. Point and Record both implement it, the latter by delegating to
// its Key.
type Keyed[T Number] interface {
	// Arity returns D, the number of axes. Arity must be constant for all
	// values sharing a collection.
	Arity() int
	// Axis returns the coordinate on axis i, for i in [0, Arity()).
	Axis(i int) T
}

// Point is a fixed-arity tuple of ordered scalars. Its arity is its
// length; axis i is Point[i].
type Point[T Number] []T

// New constructs a Point from its coordinates.
func New[T Number](coords ...T) Point[T] {
	return Point[T](coords)
}

// Arity returns the number of axes (dimensions) of p.
func (p Point[T]) Arity() int { return len(p) }

// Axis returns the coordinate on axis i.
func (p Point[T]) Axis(i int) T { return p[i] }

// Clone returns a copy of p that does not alias its backing array.
func (p Point[T]) Clone() Point[T] {
	out := make(Point[T], len(p))
	copy(out, p)
	return out
}
