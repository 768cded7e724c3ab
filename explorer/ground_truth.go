package explorer

// GroundTruthMap defines the methods the authoritative map must implement.
// The agent only ever reads from it, so a single map may back many agents.
type GroundTruthMap interface {
	// Nodes returns every valid coordinate of the map.
	Nodes() []Coordinate

	// HasNode reports whether c belongs to the map.
	HasNode(c Coordinate) bool

	// HasEdge reports whether a direct cardinal move between a and b is allowed.
	HasEdge(a, b Coordinate) bool

	// Neighbors returns the coordinates reachable from c in one move.
	Neighbors(c Coordinate) []Coordinate
}
