package explorer

// node is the fixed-shape record memory keeps per discovered coordinate.
// edges is indexed by Direction.
type node struct {
	status NodeStatus
	edges  [directionCount]bool
}

// Memory is the agent's incrementally built subgraph of the ground truth.
// Every edge in it was confirmed traversable by the ground-truth map.
//
// Only the agent mutates memory; the exported methods are read-only, so a
// *Memory handed to a renderer cannot alter the exploration.
type Memory struct {
	nodes  map[Coordinate]*node
	order  []Coordinate // discovery order
	counts [Obstacle + 1]int
	edges  int
}

// NodeSnapshot is a detached copy of one memory entry.
type NodeSnapshot struct {
	Coordinate Coordinate   `json:"coordinate"`
	Status     NodeStatus   `json:"status"`
	Links      []Coordinate `json:"links,omitempty"`
}

func newMemory() *Memory {
	return &Memory{nodes: make(map[Coordinate]*node)}
}

// Len returns the number of discovered coordinates.
func (m *Memory) Len() int {
	return len(m.nodes)
}

// EdgeCount returns the number of undirected edges in memory.
func (m *Memory) EdgeCount() int {
	return m.edges
}

// Has reports whether c was discovered.
func (m *Memory) Has(c Coordinate) bool {
	_, ok := m.nodes[c]
	return ok
}

// Status returns the status of c, or Undiscovered.
func (m *Memory) Status(c Coordinate) NodeStatus {
	if n, ok := m.nodes[c]; ok {
		return n.status
	}
	return Undiscovered
}

// Count returns how many discovered coordinates currently hold status s.
func (m *Memory) Count(s NodeStatus) int {
	if s <= Undiscovered || s > Obstacle {
		return 0
	}
	return m.counts[s]
}

// Connected reports whether memory holds an edge between a and b.
func (m *Memory) Connected(a, b Coordinate) bool {
	d, ok := DirectionBetween(a, b)
	if !ok {
		return false
	}
	n, ok := m.nodes[a]
	return ok && n.edges[d]
}

// Neighbors returns the memory neighbours of c in Direction order.
func (m *Memory) Neighbors(c Coordinate) []Coordinate {
	n, ok := m.nodes[c]
	if !ok {
		return nil
	}
	out := make([]Coordinate, 0, directionCount)
	for _, d := range Directions {
		if n.edges[d] {
			out = append(out, c.Step(d))
		}
	}
	return out
}

// Coordinates returns the discovered coordinates in discovery order.
func (m *Memory) Coordinates() []Coordinate {
	out := make([]Coordinate, len(m.order))
	copy(out, m.order)
	return out
}

// Snapshot copies the whole memory in discovery order.
func (m *Memory) Snapshot() []NodeSnapshot {
	out := make([]NodeSnapshot, 0, len(m.order))
	for _, c := range m.order {
		out = append(out, NodeSnapshot{
			Coordinate: c,
			Status:     m.nodes[c].status,
			Links:      m.Neighbors(c),
		})
	}
	return out
}

// ensure adds c with status s unless it is already known. It reports whether
// a record was created.
func (m *Memory) ensure(c Coordinate, s NodeStatus) bool {
	if _, ok := m.nodes[c]; ok {
		return false
	}
	m.nodes[c] = &node{status: s}
	m.order = append(m.order, c)
	m.counts[s]++
	return true
}

// setStatus overwrites the status of a known coordinate.
func (m *Memory) setStatus(c Coordinate, s NodeStatus) {
	n, ok := m.nodes[c]
	if !ok || n.status == s {
		return
	}
	m.counts[n.status]--
	m.counts[s]++
	n.status = s
}

// connect records the edge a–b. Both ends must be known cardinal neighbours.
func (m *Memory) connect(a, b Coordinate) bool {
	d, ok := DirectionBetween(a, b)
	if !ok {
		return false
	}
	na, okA := m.nodes[a]
	nb, okB := m.nodes[b]
	if !okA || !okB {
		return false
	}
	if na.edges[d] {
		return false
	}
	na.edges[d] = true
	nb.edges[d.Opposite()] = true
	m.edges++
	return true
}
