package maze

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/beka-birhanu/vinom-explorer/explorer"
	"gopkg.in/yaml.v3"
)

var ErrInvalidLayout = errors.New("invalid maze layout")

//go:embed presets/*.yaml
var presets embed.FS

// Wall names the two cells a wall separates.
type Wall struct {
	From explorer.Coordinate `yaml:"from"`
	To   explorer.Coordinate `yaml:"to"`
}

// Layout is the declarative description of a maze as stored in YAML files.
type Layout struct {
	Name    string                `yaml:"name"`
	Width   int                   `yaml:"width"`
	Height  int                   `yaml:"height"`
	Start   *explorer.Coordinate  `yaml:"start,omitempty"` // Suggested start, optional.
	Blocked []explorer.Coordinate `yaml:"blocked,omitempty"`
	Walls   []Wall                `yaml:"walls,omitempty"`
}

// ParseLayout decodes a YAML layout.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if strings.TrimSpace(l.Name) == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidLayout)
	}
	return &l, nil
}

// LoadLayout reads a YAML layout from disk.
func LoadLayout(file string) (*Layout, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return ParseLayout(data)
}

// Preset returns one of the layouts bundled with the package.
func Preset(name string) (*Layout, error) {
	data, err := presets.ReadFile(path.Join("presets", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: no preset named %q", ErrInvalidLayout, name)
	}
	return ParseLayout(data)
}

// PresetNames lists the bundled layouts in lexical order.
func PresetNames() []string {
	entries, err := presets.ReadDir("presets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Build turns the layout into a maze.
func (l *Layout) Build() (*Maze, error) {
	m, err := New(l.Width, l.Height)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", l.Name, err)
	}
	for _, c := range l.Blocked {
		if err := m.Block(c); err != nil {
			return nil, fmt.Errorf("layout %s: blocked cell: %w", l.Name, err)
		}
	}
	for _, w := range l.Walls {
		if err := m.AddWall(w.From, w.To); err != nil {
			return nil, fmt.Errorf("layout %s: wall: %w", l.Name, err)
		}
	}
	if l.Start != nil && !m.InBound(*l.Start) {
		return nil, fmt.Errorf("layout %s: start: %w: %s", l.Name, ErrOutOfBounds, *l.Start)
	}
	return m, nil
}
