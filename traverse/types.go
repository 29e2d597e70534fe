package traverse

// Direction selects which way a walk follows the edges.
type Direction int

const (
	// Forward follows each edge from Source to Target.
	Forward Direction = iota

	// Backward follows each edge against its direction, Target to Source.
	Backward
)

// String returns "forward" or "backward" (or "direction(n)" for others).
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "direction(?)"
	}
}
