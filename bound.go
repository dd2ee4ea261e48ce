package rbinterval

// Kind marks whether an interval endpoint includes its own value.
type Kind bool

const (
	// Closed endpoints include the boundary value.
	Closed Kind = false
	// Open endpoints exclude the boundary value.
	Open Kind = true
)

func (k Kind) String() string {
	if k == Open {
		return "open"
	}
	return "closed"
}
