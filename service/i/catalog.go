package i

import "github.com/beka-birhanu/vinom-explorer/maze"

// MapCatalog resolves map names to ground-truth mazes.
type MapCatalog interface {
	// Names lists the known maps in lexical order.
	Names() []string

	// Map returns the built maze and the layout it came from. The maze is
	// shared and must not be modified.
	Map(name string) (*maze.Maze, *maze.Layout, error)
}
