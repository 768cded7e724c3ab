package explorer

// gridMap is a small GroundTruthMap used by the tests of this package.
type gridMap struct {
	order []Coordinate
	nodes map[Coordinate]struct{}
	edges map[[2]Coordinate]struct{}
}

func newGrid(width, height int) *gridMap {
	g := &gridMap{
		nodes: make(map[Coordinate]struct{}),
		edges: make(map[[2]Coordinate]struct{}),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := Coordinate{X: x, Y: y}
			g.order = append(g.order, c)
			g.nodes[c] = struct{}{}
		}
	}
	for _, c := range g.order {
		for _, d := range Directions {
			if g.HasNode(c.Step(d)) {
				g.edges[edgeKey(c, c.Step(d))] = struct{}{}
			}
		}
	}
	return g
}

func edgeKey(a, b Coordinate) [2]Coordinate {
	if a.X > b.X || (a.X == b.X && a.Y > b.Y) {
		a, b = b, a
	}
	return [2]Coordinate{a, b}
}

func (g *gridMap) removeEdge(a, b Coordinate) *gridMap {
	delete(g.edges, edgeKey(a, b))
	return g
}

func (g *gridMap) block(cells ...Coordinate) *gridMap {
	for _, c := range cells {
		for _, d := range Directions {
			g.removeEdge(c, c.Step(d))
		}
	}
	return g
}

func (g *gridMap) Nodes() []Coordinate {
	return append([]Coordinate(nil), g.order...)
}

func (g *gridMap) HasNode(c Coordinate) bool {
	_, ok := g.nodes[c]
	return ok
}

func (g *gridMap) HasEdge(a, b Coordinate) bool {
	_, ok := g.edges[edgeKey(a, b)]
	return ok
}

func (g *gridMap) Neighbors(c Coordinate) []Coordinate {
	var out []Coordinate
	for _, d := range Directions {
		if g.HasEdge(c, c.Step(d)) {
			out = append(out, c.Step(d))
		}
	}
	return out
}

// reachable returns the ground-truth component containing start.
func (g *gridMap) reachable(start Coordinate) map[Coordinate]struct{} {
	seen := map[Coordinate]struct{}{start: {}}
	stack := []Coordinate{start}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range g.Neighbors(c) {
			if _, ok := seen[n]; !ok {
				seen[n] = struct{}{}
				stack = append(stack, n)
			}
		}
	}
	return seen
}

func xy(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}
