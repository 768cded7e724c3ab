/*
Package maze provides the ground-truth grids explored by the agent.

A Maze is a rectangular grid of cells whose sides may be walled. Two adjacent
cells are connected when neither of the facing sides carries a wall. Blocking
a cell walls all of its sides: the cell stays on the map but cannot be entered,
which is how obstacles are modelled.

Mazes are built from fixed layouts (see Layout), never generated randomly, and
are read-only once built so many agents may share one.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-explorer/explorer"
)

const (
	maxMazeDimension = 256
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrOutOfBounds       = errors.New("coordinate is out of the maze")
	ErrNotAdjacent       = errors.New("cells are not adjacent")
)

var _ explorer.GroundTruthMap = &Maze{}

// Maze represents a rectangular grid of walled cells.
// Grid is indexed as Grid[y][x]; y grows northwards.
type Maze struct {
	Width  int       // Width of the maze (number of columns)
	Height int       // Height of the maze (number of rows)
	Grid   [][]*Cell // 2D grid of cells forming the maze
}

// New initializes an open maze of the given dimensions: only the outer
// boundary is walled.
func New(width, height int) (*Maze, error) {
	if min(width, height) <= 0 || max(width, height) > maxMazeDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	grid := make([][]*Cell, height)
	for y := range grid {
		grid[y] = make([]*Cell, width)
		for x := range grid[y] {
			grid[y][x] = &Cell{
				NorthWall: y == height-1,
				SouthWall: y == 0,
				EastWall:  x == width-1,
				WestWall:  x == 0,
			}
		}
	}

	return &Maze{
		Width:  width,
		Height: height,
		Grid:   grid,
	}, nil
}

// InBound reports whether c lies inside the maze.
func (m *Maze) InBound(c explorer.Coordinate) bool {
	return c.X >= 0 && c.X < m.Width && c.Y >= 0 && c.Y < m.Height
}

// HasNode implements explorer.GroundTruthMap.
func (m *Maze) HasNode(c explorer.Coordinate) bool {
	return m.InBound(c)
}

// Nodes implements explorer.GroundTruthMap. Coordinates come row by row from y = 0.
func (m *Maze) Nodes() []explorer.Coordinate {
	nodes := make([]explorer.Coordinate, 0, m.Width*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			nodes = append(nodes, explorer.Coordinate{X: x, Y: y})
		}
	}
	return nodes
}

// HasEdge implements explorer.GroundTruthMap: the move is valid when both cells
// are inside the maze, adjacent, and the connecting sides are open.
func (m *Maze) HasEdge(a, b explorer.Coordinate) bool {
	if !m.InBound(a) || !m.InBound(b) {
		return false
	}
	d, ok := explorer.DirectionBetween(a, b)
	if !ok {
		return false
	}
	return !m.cell(a).HasWall(d) && !m.cell(b).HasWall(d.Opposite())
}

// Neighbors implements explorer.GroundTruthMap.
func (m *Maze) Neighbors(c explorer.Coordinate) []explorer.Coordinate {
	var result []explorer.Coordinate
	for _, d := range explorer.Directions {
		if next := c.Step(d); m.HasEdge(c, next) {
			result = append(result, next)
		}
	}
	return result
}

// AddWall closes the passage between two adjacent cells.
func (m *Maze) AddWall(a, b explorer.Coordinate) error {
	return m.setWall(a, b, true)
}

// OpenWall opens the passage between two adjacent cells.
func (m *Maze) OpenWall(a, b explorer.Coordinate) error {
	return m.setWall(a, b, false)
}

// Block walls every side of c, turning it into an obstacle.
func (m *Maze) Block(c explorer.Coordinate) error {
	if !m.InBound(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	for _, d := range explorer.Directions {
		m.cell(c).SetWall(d, true)
		if next := c.Step(d); m.InBound(next) {
			m.cell(next).SetWall(d.Opposite(), true)
		}
	}
	return nil
}

// SpawnPoints lists the cells with at least one open passage, in Nodes order.
// An agent started anywhere else cannot move.
func (m *Maze) SpawnPoints() []explorer.Coordinate {
	var spawns []explorer.Coordinate
	for _, c := range m.Nodes() {
		if len(m.Neighbors(c)) > 0 {
			spawns = append(spawns, c)
		}
	}
	return spawns
}

// ReachableFrom returns how many cells can be reached from start, start included.
func (m *Maze) ReachableFrom(start explorer.Coordinate) int {
	if !m.InBound(start) {
		return 0
	}
	visited := map[explorer.Coordinate]struct{}{start: {}}
	stack := []explorer.Coordinate{start}
	for len(stack) > 0 {
		cell := pop(&stack)
		for _, next := range m.Neighbors(cell) {
			if _, seen := visited[next]; !seen {
				visited[next] = struct{}{}
				stack = append(stack, next)
			}
		}
	}
	return len(visited)
}

// pop removes and returns the last element of a stack of coordinates.
func pop(s *[]explorer.Coordinate) explorer.Coordinate {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}

func (m *Maze) cell(c explorer.Coordinate) *Cell {
	return m.Grid[c.Y][c.X]
}

func (m *Maze) setWall(a, b explorer.Coordinate, closed bool) error {
	if !m.InBound(a) || !m.InBound(b) {
		return fmt.Errorf("%w: %s-%s", ErrOutOfBounds, a, b)
	}
	d, ok := explorer.DirectionBetween(a, b)
	if !ok {
		return fmt.Errorf("%w: %s-%s", ErrNotAdjacent, a, b)
	}
	m.cell(a).SetWall(d, closed)
	m.cell(b).SetWall(d.Opposite(), closed)
	return nil
}

// String provides a textual representation of the maze, north at the top.
// Cells nobody can enter are drawn as "###".
func (m *Maze) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", m.Width) + "\n")

	for y := m.Height - 1; y >= 0; y-- {
		// Cell rows
		output.WriteString("|")
		for x := 0; x < m.Width; x++ {
			c := explorer.Coordinate{X: x, Y: y}
			if len(m.Neighbors(c)) == 0 && (m.Width > 1 || m.Height > 1) {
				output.WriteString("###")
			} else {
				output.WriteString("   ")
			}
			if m.cell(c).EastWall {
				output.WriteString("|")
			} else {
				output.WriteString(" ")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for x := 0; x < m.Width; x++ {
			if m.Grid[y][x].SouthWall {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}
