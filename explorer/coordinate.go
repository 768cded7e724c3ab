package explorer

import (
	"fmt"
	"strings"
)

// Coordinate identifies a cell of the grid. The same value names a node in
// the ground-truth map and in the agent's memory.
type Coordinate struct {
	X int `json:"x" yaml:"x" bson:"x"` // Column, growing eastwards.
	Y int `json:"y" yaml:"y" bson:"y"` // Row, growing northwards.
}

// Step returns the coordinate one cell away in direction d.
func (c Coordinate) Step(d Direction) Coordinate {
	delta := directionDeltas[d]
	return Coordinate{X: c.X + delta.X, Y: c.Y + delta.Y}
}

// String renders the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four compass directions, in scan order.
type Direction int

const (
	East Direction = iota
	South
	West
	North

	directionCount = 4
)

var (
	// Directions lists every direction in the order the agent senses and scans them.
	Directions = [directionCount]Direction{East, South, West, North}

	directionDeltas = [directionCount]Coordinate{
		East:  {X: 1, Y: 0},
		South: {X: 0, Y: -1},
		West:  {X: -1, Y: 0},
		North: {X: 0, Y: 1},
	}

	directionNames = [directionCount]string{"East", "South", "West", "North"}
)

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	return (d + 2) % directionCount
}

// Rotate returns the direction n quarter turns clockwise from d.
func (d Direction) Rotate(n int) Direction {
	return Direction(((int(d)+n)%directionCount + directionCount) % directionCount)
}

func (d Direction) String() string {
	if d < 0 || d >= directionCount {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection accepts a direction name in any letter case.
func ParseDirection(name string) (Direction, error) {
	for d, n := range directionNames {
		if strings.EqualFold(n, name) {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidConfig, name)
}

// DirectionBetween reports the direction leading from a to b when the two
// coordinates are cardinal neighbours.
func DirectionBetween(a, b Coordinate) (Direction, bool) {
	for _, d := range Directions {
		if a.Step(d) == b {
			return d, true
		}
	}
	return 0, false
}
