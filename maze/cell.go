package maze

import "github.com/beka-birhanu/vinom-explorer/explorer"

// Cell represents a single cell in a maze grid.
// A wall on a side forbids moving through that side.
type Cell struct {
	NorthWall bool // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool // WestWall indicates whether there is a wall on the west side of the cell.
}

// HasWall reports whether the side facing d is closed.
func (c *Cell) HasWall(d explorer.Direction) bool {
	switch d {
	case explorer.North:
		return c.NorthWall
	case explorer.South:
		return c.SouthWall
	case explorer.East:
		return c.EastWall
	case explorer.West:
		return c.WestWall
	default:
		return true
	}
}

// SetWall opens or closes the side facing d.
func (c *Cell) SetWall(d explorer.Direction, closed bool) {
	switch d {
	case explorer.North:
		c.NorthWall = closed
	case explorer.South:
		c.SouthWall = closed
	case explorer.East:
		c.EastWall = closed
	case explorer.West:
		c.WestWall = closed
	}
}

// Enclosed reports whether all four sides are closed.
func (c *Cell) Enclosed() bool {
	return c.NorthWall && c.SouthWall && c.EastWall && c.WestWall
}
