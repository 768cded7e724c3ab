package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/beka-birhanu/vinom-explorer/maze"
	"github.com/beka-birhanu/vinom-explorer/service/i"
)

var (
	ErrUnknownMap   = errors.New("unknown map")
	ErrDuplicateMap = errors.New("duplicate map name")
)

var _ i.MapCatalog = &MapCatalog{}

type catalogEntry struct {
	maze   *maze.Maze
	layout *maze.Layout
}

// MapCatalog holds the bundled preset maps and any layouts found in a
// directory. Every maze is built once and shared by all trials.
type MapCatalog struct {
	maps map[string]catalogEntry
}

// NewMapCatalog builds the presets plus every *.yaml / *.yml layout in dir.
// An empty dir loads the presets only.
func NewMapCatalog(dir string) (*MapCatalog, error) {
	c := &MapCatalog{maps: make(map[string]catalogEntry)}

	for _, name := range maze.PresetNames() {
		layout, err := maze.Preset(name)
		if err != nil {
			return nil, err
		}
		if err := c.add(layout); err != nil {
			return nil, err
		}
	}

	if dir == "" {
		return c, nil
	}

	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("maps directory: %w", err)
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}

	sort.Strings(files)
	for _, file := range files {
		layout, err := maze.LoadLayout(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		if err := c.add(layout); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
	}
	return c, nil
}

// Names implements i.MapCatalog.
func (c *MapCatalog) Names() []string {
	names := make([]string, 0, len(c.maps))
	for name := range c.maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map implements i.MapCatalog.
func (c *MapCatalog) Map(name string) (*maze.Maze, *maze.Layout, error) {
	entry, ok := c.maps[name]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownMap, name)
	}
	return entry.maze, entry.layout, nil
}

func (c *MapCatalog) add(layout *maze.Layout) error {
	if _, exists := c.maps[layout.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateMap, layout.Name)
	}
	m, err := layout.Build()
	if err != nil {
		return err
	}
	c.maps[layout.Name] = catalogEntry{maze: m, layout: layout}
	return nil
}
