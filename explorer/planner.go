package explorer

// priorityHorizon bounds the early Priority search, in moves.
const priorityHorizon = 2

// Planner chooses where the agent goes next. It reads memory only.
//
// The rotation offset biases the directional scan. It is advanced by one
// quarter turn each time a full scan finds nothing, so repeated stalls start
// the next scan from a different side.
type Planner struct {
	offset        Direction
	priorityReach int
}

// NewPlanner returns a planner starting its scans at heading. priorityReach
// is the exact distance at which a nearby Priority node is adopted before
// the directional scan runs.
func NewPlanner(heading Direction, priorityReach int) *Planner {
	return &Planner{offset: heading.Rotate(0), priorityReach: priorityReach}
}

// RotationOffset returns the direction the next scan starts from.
func (p *Planner) RotationOffset() Direction {
	return p.offset
}

// Plan returns the coordinates to walk from current, excluding current. An
// empty result means no frontier is reachable through memory.
func (p *Planner) Plan(mem *Memory, current Coordinate) []Coordinate {
	if mem.Count(Priority) > 0 {
		if path := p.nearbyPriority(mem, current); path != nil {
			return path
		}
	}

	if next, ok := p.scan(mem, current); ok {
		return []Coordinate{next}
	}

	target, ok := ClosestFrontier(mem, current)
	if !ok {
		return nil
	}
	return ShortestPath(mem, current, target)
}

// nearbyPriority looks for the closest Priority node within the horizon and
// returns a path to it only when it lies exactly priorityReach moves away.
func (p *Planner) nearbyPriority(mem *Memory, current Coordinate) []Coordinate {
	var found *visit
	walk(mem, current, priorityHorizon, func(v visit) bool {
		if mem.Status(v.at) == Priority {
			found = &v
			return false
		}
		return true
	})
	if found == nil || found.depth != p.priorityReach {
		return nil
	}
	return ShortestPath(mem, current, found.at)
}

// scan checks the immediate neighbours for Priority, then Preferable, then
// Unvisited, each time sweeping the four directions from the offset.
func (p *Planner) scan(mem *Memory, current Coordinate) (Coordinate, bool) {
	for _, level := range frontierLevels {
		for turn := 0; turn < directionCount; turn++ {
			next := current.Step(p.offset.Rotate(turn))
			if mem.Status(next) == level && mem.Connected(current, next) {
				return next, true
			}
		}
	}
	p.offset = p.offset.Rotate(1)
	return Coordinate{}, false
}

// ClosestFrontier searches memory breadth-first from origin and returns the
// first Priority node met; failing that the first Preferable, then the first
// Unvisited. Status precedence wins over distance.
func ClosestFrontier(mem *Memory, origin Coordinate) (Coordinate, bool) {
	var best [len(frontierLevels)]*Coordinate
	walk(mem, origin, -1, func(v visit) bool {
		for i, level := range frontierLevels {
			if mem.Status(v.at) == level && best[i] == nil {
				at := v.at
				best[i] = &at
			}
		}
		return best[0] == nil
	})
	for _, c := range best {
		if c != nil {
			return *c, true
		}
	}
	return Coordinate{}, false
}

// ShortestPath returns the moves from origin to target over memory edges,
// excluding origin. When expanding a node, frontier neighbours are queued
// before the others. It returns nil when target is unreachable.
func ShortestPath(mem *Memory, origin, target Coordinate) []Coordinate {
	predecessors := map[Coordinate]Coordinate{origin: origin}
	queue := []Coordinate{origin}
	found := false

	for len(queue) > 0 {
		at := queue[0]
		queue = queue[1:]
		if at == target {
			found = true
			break
		}

		neighbors := mem.Neighbors(at)
		ordered := make([]Coordinate, 0, len(neighbors))
		for _, n := range neighbors {
			if mem.Status(n).IsFrontier() {
				ordered = append(ordered, n)
			}
		}
		for _, n := range neighbors {
			if !mem.Status(n).IsFrontier() {
				ordered = append(ordered, n)
			}
		}

		for _, n := range ordered {
			if _, seen := predecessors[n]; !seen {
				predecessors[n] = at
				queue = append(queue, n)
			}
		}
	}

	if !found || origin == target {
		return nil
	}

	var path []Coordinate
	for at := target; at != origin; at = predecessors[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// visit is a node reached by walk together with its distance from the origin.
type visit struct {
	at    Coordinate
	depth int
}

// walk runs a breadth-first traversal of memory from origin, calling fn for
// every node except origin in layer order. Nodes deeper than maxDepth are not
// visited; a negative maxDepth means unbounded. Returning false from fn stops
// the traversal.
func walk(mem *Memory, origin Coordinate, maxDepth int, fn func(visit) bool) {
	seen := map[Coordinate]struct{}{origin: {}}
	queue := []visit{{at: origin}}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if maxDepth >= 0 && v.depth >= maxDepth {
			continue
		}
		for _, n := range mem.Neighbors(v.at) {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			next := visit{at: n, depth: v.depth + 1}
			if !fn(next) {
				return
			}
			queue = append(queue, next)
		}
	}
}
