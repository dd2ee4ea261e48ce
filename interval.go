package rbinterval

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Interval is an atomic, possibly-empty range over an ordered domain T,
// with an independent open/closed kind on each endpoint. It is the tree's
// reference implementation of Key[Interval[T]]; Compare expresses Allen's
// interval algebra the same way the teacher repo's Interface[T] does.
type Interval[T constraints.Ordered] struct {
	lo, hi         T
	loKind, hiKind Kind
	empty          bool
}

// Empty reports whether an interval carries no points.
func Empty[T constraints.Ordered]() Interval[T] {
	return Interval[T]{empty: true}
}

// New builds the atomic interval with the given endpoints and kinds,
// collapsing to Empty when the bounds describe no points.
func New[T constraints.Ordered](loKind Kind, lo, hi T, hiKind Kind) Interval[T] {
	if boundsEmpty(lo, loKind, hi, hiKind) {
		return Empty[T]()
	}
	return Interval[T]{lo: lo, hi: hi, loKind: loKind, hiKind: hiKind}
}

// ClosedInterval builds [lo, hi].
func ClosedInterval[T constraints.Ordered](lo, hi T) Interval[T] {
	return New(Closed, lo, hi, Closed)
}

// OpenInterval builds (lo, hi).
func OpenInterval[T constraints.Ordered](lo, hi T) Interval[T] {
	return New(Open, lo, hi, Open)
}

// Singleton builds the closed, single-point interval [v, v].
func Singleton[T constraints.Ordered](v T) Interval[T] {
	return New(Closed, v, v, Closed)
}

func boundsEmpty[T constraints.Ordered](lo T, loKind Kind, hi T, hiKind Kind) bool {
	if lo > hi {
		return true
	}
	if lo == hi {
		return loKind == Open || hiKind == Open
	}
	return false
}

// IsEmpty reports whether iv carries no points.
func (iv Interval[T]) IsEmpty() bool { return iv.empty }

// Lower and Upper return iv's endpoints. Calling these on an empty interval
// is meaningless and returns the zero value of T.
func (iv Interval[T]) Lower() T { return iv.lo }
func (iv Interval[T]) Upper() T { return iv.hi }

// LowerKind and UpperKind return iv's endpoint kinds.
func (iv Interval[T]) LowerKind() Kind { return iv.loKind }
func (iv Interval[T]) UpperKind() Kind { return iv.hiKind }

// Contains reports whether x lies within iv.
func (iv Interval[T]) Contains(x T) bool {
	if iv.empty {
		return false
	}
	switch {
	case x < iv.lo, x == iv.lo && iv.loKind == Open:
		return false
	case x > iv.hi, x == iv.hi && iv.hiKind == Open:
		return false
	}
	return true
}

func cmpLowerLower[T constraints.Ordered](aLo T, aKind Kind, bLo T, bKind Kind) int {
	switch {
	case aLo < bLo:
		return -1
	case aLo > bLo:
		return 1
	case aKind == bKind:
		return 0
	case aKind == Closed: // closed starts at-or-before an open bound at the same value
		return -1
	default:
		return 1
	}
}

func cmpUpperUpper[T constraints.Ordered](aHi T, aKind Kind, bHi T, bKind Kind) int {
	switch {
	case aHi < bHi:
		return -1
	case aHi > bHi:
		return 1
	case aKind == bKind:
		return 0
	case aKind == Closed: // closed ends at-or-after an open bound at the same value
		return 1
	default:
		return -1
	}
}

// cmpLowerUpper reports how aLo relates to bHi: negative means aLo lies
// strictly before bHi (or they share a point both bounds include), positive
// means aLo lies at-or-after the end of b with no shared point.
func cmpLowerUpper[T constraints.Ordered](aLo T, aKind Kind, bHi T, bKind Kind) int {
	switch {
	case aLo < bHi:
		return -1
	case aLo > bHi:
		return 1
	case aKind == Closed && bKind == Closed:
		return -1
	default:
		return 1
	}
}

// cmpUpperLower reports how aHi relates to bLo: negative means a ends
// strictly before b begins (no shared point), non-negative means they share
// at least the boundary point or overlap further.
func cmpUpperLower[T constraints.Ordered](aHi T, aKind Kind, bLo T, bKind Kind) int {
	switch {
	case aHi < bLo:
		return -1
	case aHi > bLo:
		return 1
	case aKind == Closed && bKind == Closed:
		return 1
	default:
		return -1
	}
}

// Compare reports the four Allen-style endpoint comparisons between iv and
// other, per Key[T].
func (iv Interval[T]) Compare(other Interval[T]) (ll, rr, lr, rl int) {
	ll = cmpLowerLower(iv.lo, iv.loKind, other.lo, other.loKind)
	rr = cmpUpperUpper(iv.hi, iv.hiKind, other.hi, other.hiKind)
	lr = cmpLowerUpper(iv.lo, iv.loKind, other.hi, other.hiKind)
	rl = cmpUpperLower(iv.hi, iv.hiKind, other.lo, other.loKind)
	return
}

// Equal reports whether iv and other describe the same points.
func (iv Interval[T]) Equal(other Interval[T]) bool {
	if iv.empty || other.empty {
		return iv.empty && other.empty
	}
	ll, rr, _, _ := iv.Compare(other)
	return ll == 0 && rr == 0
}

// Overlaps reports whether iv and other share at least one point.
func (iv Interval[T]) Overlaps(other Interval[T]) bool {
	if iv.empty || other.empty {
		return false
	}
	_, _, lr, rl := iv.Compare(other)
	return rl >= 0 && lr <= 0
}

// Less reports whether iv lies strictly, entirely below other with no
// shared point (§4.3's "x.key < key").
func (iv Interval[T]) Less(other Interval[T]) bool {
	if iv.empty || other.empty {
		return false
	}
	return cmpUpperLower(iv.hi, iv.hiKind, other.lo, other.loKind) < 0
}

// Greater reports whether iv lies strictly, entirely above other.
func (iv Interval[T]) Greater(other Interval[T]) bool {
	if iv.empty || other.empty {
		return false
	}
	return cmpLowerUpper(iv.lo, iv.loKind, other.hi, other.hiKind) > 0
}

// Subset reports whether iv ⊆ other.
func (iv Interval[T]) Subset(other Interval[T]) bool {
	if iv.empty {
		return true
	}
	if other.empty {
		return false
	}
	ll, rr, _, _ := iv.Compare(other)
	return ll >= 0 && rr <= 0
}

// Superset reports whether iv ⊇ other.
func (iv Interval[T]) Superset(other Interval[T]) bool { return other.Subset(iv) }

// ExtendsBelow reports whether iv overlaps other and starts strictly
// earlier than other (§6's side-order "≤": "overlaps and extends below").
func (iv Interval[T]) ExtendsBelow(other Interval[T]) bool {
	if !iv.Overlaps(other) {
		return false
	}
	ll, _, _, _ := iv.Compare(other)
	return ll < 0
}

// ExtendsAbove reports whether iv overlaps other and ends strictly later
// than other (§6's side-order "≥").
func (iv Interval[T]) ExtendsAbove(other Interval[T]) bool {
	if !iv.Overlaps(other) {
		return false
	}
	_, rr, _, _ := iv.Compare(other)
	return rr > 0
}

// Touches reports whether iv and other are disjoint but contiguous: their
// union covers every point between them with no gap and no shared point.
func (iv Interval[T]) Touches(other Interval[T]) bool {
	if iv.empty || other.empty {
		return false
	}
	if a, b := iv, other; cmpUpperLower(a.hi, a.hiKind, b.lo, b.loKind) == -1 && a.hi == b.lo {
		return a.hiKind != b.loKind
	}
	if a, b := other, iv; cmpUpperLower(a.hi, a.hiKind, b.lo, b.loKind) == -1 && a.hi == b.lo {
		return a.hiKind != b.loKind
	}
	return false
}

// Union returns the atomic(s) covering every point of iv or other: one
// atomic when they overlap or touch, two (ascending by lower bound)
// otherwise.
func (iv Interval[T]) Union(other Interval[T]) []Interval[T] {
	switch {
	case iv.empty && other.empty:
		return nil
	case iv.empty:
		return []Interval[T]{other}
	case other.empty:
		return []Interval[T]{iv}
	}
	if !iv.Overlaps(other) && !iv.Touches(other) {
		if iv.Less(other) {
			return []Interval[T]{iv, other}
		}
		return []Interval[T]{other, iv}
	}
	lo, loKind := iv.lo, iv.loKind
	if cmpLowerLower(other.lo, other.loKind, lo, loKind) < 0 {
		lo, loKind = other.lo, other.loKind
	}
	hi, hiKind := iv.hi, iv.hiKind
	if cmpUpperUpper(other.hi, other.hiKind, hi, hiKind) > 0 {
		hi, hiKind = other.hi, other.hiKind
	}
	return []Interval[T]{New(loKind, lo, hi, hiKind)}
}

// Intersect returns the (possibly empty) shared portion of iv and other.
func (iv Interval[T]) Intersect(other Interval[T]) Interval[T] {
	if !iv.Overlaps(other) {
		return Empty[T]()
	}
	lo, loKind := iv.lo, iv.loKind
	switch cmpLowerLower(other.lo, other.loKind, lo, loKind) {
	case 1:
		lo, loKind = other.lo, other.loKind
	case 0:
		if other.loKind == Open {
			loKind = Open
		}
	}
	hi, hiKind := iv.hi, iv.hiKind
	switch cmpUpperUpper(other.hi, other.hiKind, hi, hiKind) {
	case -1:
		hi, hiKind = other.hi, other.hiKind
	case 0:
		if other.hiKind == Open {
			hiKind = Open
		}
	}
	return New(loKind, lo, hi, hiKind)
}

// Difference returns the atomics covering iv's points that other does not:
// zero pieces when other fully covers iv, one when it trims an end, two
// when other is strictly interior to iv.
func (iv Interval[T]) Difference(other Interval[T]) []Interval[T] {
	if iv.empty {
		return nil
	}
	if !iv.Overlaps(other) {
		return []Interval[T]{iv}
	}
	if iv.Subset(other) {
		return nil
	}
	var out []Interval[T]
	if cmpLowerLower(iv.lo, iv.loKind, other.lo, other.loKind) < 0 {
		hiKind := Open
		if other.loKind == Open {
			hiKind = Closed
		}
		left := New(iv.loKind, iv.lo, other.lo, hiKind)
		if !left.IsEmpty() {
			out = append(out, left)
		}
	}
	if cmpUpperUpper(iv.hi, iv.hiKind, other.hi, other.hiKind) > 0 {
		loKind := Open
		if other.hiKind == Open {
			loKind = Closed
		}
		right := New(loKind, other.hi, iv.hi, iv.hiKind)
		if !right.IsEmpty() {
			out = append(out, right)
		}
	}
	return out
}

// Span returns the atomic interval from iv's lower endpoint to other's
// upper endpoint. Used for enclosure computation; callers are responsible
// for calling it with iv as the subtree minimum and other as the maximum.
func (iv Interval[T]) Span(other Interval[T]) Interval[T] {
	if iv.empty {
		return other
	}
	if other.empty {
		return iv
	}
	return New(iv.loKind, iv.lo, other.hi, other.hiKind)
}

// String renders iv using mathematical interval notation, e.g. "[1,4)". A
// closed single-point interval renders as a set literal, e.g. "{4}".
func (iv Interval[T]) String() string {
	if iv.empty {
		return "∅"
	}
	if iv.lo == iv.hi && iv.loKind == Closed && iv.hiKind == Closed {
		return fmt.Sprintf("{%v}", iv.lo)
	}
	open, close := '[', ']'
	if iv.loKind == Open {
		open = '('
	}
	if iv.hiKind == Open {
		close = ')'
	}
	return fmt.Sprintf("%c%v,%v%c", open, iv.lo, iv.hi, close)
}
