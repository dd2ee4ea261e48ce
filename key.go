package rbinterval

// Key is the interval algebra contract the tree consumes. It never touches
// a concrete interval representation directly; any type satisfying Key can
// be stored as the tree's key type. Compare reports the four Allen-style
// endpoint comparisons between the receiver and other:
//
//	ll  receiver.Lower  vs other.Lower
//	rr  receiver.Upper  vs other.Upper
//	lr  receiver.Lower  vs other.Upper
//	rl  receiver.Upper  vs other.Lower
//
// each negative/zero/positive the way (a-b) would compare for ordinary
// numbers, accounting for open/closed endpoint kinds at shared values.
type Key[T any] interface {
	Compare(other T) (ll, rr, lr, rl int)

	IsEmpty() bool
	Overlaps(other T) bool

	// Touches reports whether the receiver and other are disjoint but
	// contiguous: they share no point, but their union is itself a single
	// atomic with no gap. Used to decide same-value fusion at a shared
	// open/closed boundary (I4).
	Touches(other T) bool

	// Union returns the atomics covering exactly the points in the
	// receiver or other. Yields one atomic when the two are contiguous,
	// two when they are not.
	Union(other T) []T

	// Intersect returns the (possibly empty) overlap of receiver and other.
	Intersect(other T) T

	// Difference returns the atomics covering the points of the receiver
	// not covered by other: zero, one, or two pieces.
	Difference(other T) []T

	// Span returns the atomic interval running from the receiver's lower
	// endpoint to other's upper endpoint, used to derive a subtree's
	// enclosure from its min/max descendants (§3).
	Span(other T) T
}
