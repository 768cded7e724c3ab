package explorer

import "fmt"

// NodeStatus tags every coordinate the agent has discovered.
type NodeStatus int

const (
	// Undiscovered is reported for coordinates memory has never seen. It is
	// never stored in memory.
	Undiscovered NodeStatus = iota
	Unvisited
	Preferable
	Priority
	Visited
	Current
	Obstacle
)

var statusNames = map[NodeStatus]string{
	Undiscovered: "undiscovered",
	Unvisited:    "unvisited",
	Preferable:   "preferable",
	Priority:     "priority",
	Visited:      "visited",
	Current:      "current",
	Obstacle:     "obstacle",
}

// frontierLevels orders the frontier statuses from most to least urgent.
var frontierLevels = [...]NodeStatus{Priority, Preferable, Unvisited}

func (s NodeStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("NodeStatus(%d)", int(s))
}

// IsFrontier reports whether the status marks a discovered but unoccupied
// coordinate the agent still wants to reach.
func (s NodeStatus) IsFrontier() bool {
	return s.rank() > 0
}

// rank orders frontier statuses by dead-end risk. Non-frontier statuses rank 0.
func (s NodeStatus) rank() int {
	switch s {
	case Unvisited:
		return 1
	case Preferable:
		return 2
	case Priority:
		return 3
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s NodeStatus) MarshalText() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown node status %d", int(s))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *NodeStatus) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown node status %q", string(text))
}
