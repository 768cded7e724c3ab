package explorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildMemory returns memory holding the given statuses, with every listed
// pair connected.
func buildMemory(statuses map[Coordinate]NodeStatus, links ...[2]Coordinate) *Memory {
	m := newMemory()
	for c, s := range statuses {
		m.ensure(c, s)
	}
	for _, l := range links {
		m.connect(l[0], l[1])
	}
	return m
}

func link(a, b Coordinate) [2]Coordinate {
	return [2]Coordinate{a, b}
}

func TestPlannerScan(t *testing.T) {
	centre := xy(1, 1)
	memory := func() *Memory {
		return buildMemory(map[Coordinate]NodeStatus{
			centre:   Current,
			xy(2, 1): Unvisited,
			xy(1, 0): Visited,
			xy(0, 1): Preferable,
			xy(1, 2): Preferable,
		},
			link(centre, xy(2, 1)),
			link(centre, xy(1, 0)),
			link(centre, xy(0, 1)),
			link(centre, xy(1, 2)),
		)
	}

	tests := []struct {
		heading Direction
		want    Coordinate
	}{
		{heading: West, want: xy(0, 1)},
		{heading: North, want: xy(1, 2)},
		{heading: East, want: xy(0, 1)},
		{heading: South, want: xy(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.heading.String(), func(t *testing.T) {
			p := NewPlanner(tt.heading, 1)
			assert.Equal(t, []Coordinate{tt.want}, p.Plan(memory(), centre))
			assert.Equal(t, tt.heading, p.RotationOffset(), "offset moves only after a failed scan")
		})
	}
}

func TestPlannerScanSkipsUnconnectedNeighbours(t *testing.T) {
	m := buildMemory(map[Coordinate]NodeStatus{
		xy(0, 0): Current,
		xy(1, 0): Unvisited,
	})
	p := NewPlanner(East, 1)

	assert.Empty(t, p.Plan(m, xy(0, 0)))
	assert.Equal(t, South, p.RotationOffset())
}

func TestPlannerRotatesAfterFailedScan(t *testing.T) {
	// (0,0) current, (1,0) visited, (2,0) unvisited: nothing adjacent to pick.
	m := buildMemory(map[Coordinate]NodeStatus{
		xy(0, 0): Current,
		xy(1, 0): Visited,
		xy(2, 0): Unvisited,
	}, link(xy(0, 0), xy(1, 0)), link(xy(1, 0), xy(2, 0)))

	p := NewPlanner(North, 1)
	assert.Equal(t, []Coordinate{xy(1, 0), xy(2, 0)}, p.Plan(m, xy(0, 0)))
	assert.Equal(t, East, p.RotationOffset())

	p.Plan(m, xy(0, 0))
	assert.Equal(t, South, p.RotationOffset())
}

func TestPlannerNearbyPriority(t *testing.T) {
	statuses := map[Coordinate]NodeStatus{
		xy(0, 0): Current,
		xy(1, 0): Visited,
		xy(2, 0): Priority,
		xy(0, 1): Unvisited,
	}
	links := [][2]Coordinate{
		link(xy(0, 0), xy(1, 0)),
		link(xy(1, 0), xy(2, 0)),
		link(xy(0, 0), xy(0, 1)),
	}

	t.Run("reach 1 discards a priority two moves away", func(t *testing.T) {
		p := NewPlanner(West, 1)
		assert.Equal(t, []Coordinate{xy(0, 1)}, p.Plan(buildMemory(statuses, links...), xy(0, 0)))
	})

	t.Run("reach 2 walks to it", func(t *testing.T) {
		p := NewPlanner(West, 2)
		assert.Equal(t, []Coordinate{xy(1, 0), xy(2, 0)}, p.Plan(buildMemory(statuses, links...), xy(0, 0)))
		assert.Equal(t, West, p.RotationOffset())
	})
}

func TestClosestFrontierPrecedence(t *testing.T) {
	line := []Coordinate{xy(0, 0), xy(1, 0), xy(2, 0), xy(3, 0), xy(4, 0)}
	links := make([][2]Coordinate, 0, len(line)-1)
	for i := 1; i < len(line); i++ {
		links = append(links, link(line[i-1], line[i]))
	}

	t.Run("priority beats nearer levels", func(t *testing.T) {
		m := buildMemory(map[Coordinate]NodeStatus{
			line[0]: Current,
			line[1]: Unvisited,
			line[2]: Preferable,
			line[3]: Visited,
			line[4]: Priority,
		}, links...)
		got, ok := ClosestFrontier(m, line[0])
		assert.True(t, ok)
		assert.Equal(t, line[4], got)
	})

	t.Run("preferable beats nearer unvisited", func(t *testing.T) {
		m := buildMemory(map[Coordinate]NodeStatus{
			line[0]: Current,
			line[1]: Unvisited,
			line[2]: Visited,
			line[3]: Preferable,
			line[4]: Preferable,
		}, links...)
		got, ok := ClosestFrontier(m, line[0])
		assert.True(t, ok)
		assert.Equal(t, line[3], got)
	})

	t.Run("nothing left", func(t *testing.T) {
		m := buildMemory(map[Coordinate]NodeStatus{
			line[0]: Current,
			line[1]: Visited,
			line[2]: Obstacle,
		}, links[:2]...)
		_, ok := ClosestFrontier(m, line[0])
		assert.False(t, ok)
	})
}

func TestShortestPath(t *testing.T) {
	// 2x2 ring: both routes to (1,1) have length 2; the frontier cell wins.
	m := buildMemory(map[Coordinate]NodeStatus{
		xy(0, 0): Current,
		xy(1, 0): Visited,
		xy(0, 1): Unvisited,
		xy(1, 1): Unvisited,
	},
		link(xy(0, 0), xy(1, 0)),
		link(xy(0, 0), xy(0, 1)),
		link(xy(1, 0), xy(1, 1)),
		link(xy(0, 1), xy(1, 1)),
	)

	assert.Equal(t, []Coordinate{xy(0, 1), xy(1, 1)}, ShortestPath(m, xy(0, 0), xy(1, 1)))
	assert.Nil(t, ShortestPath(m, xy(0, 0), xy(0, 0)))
	assert.Nil(t, ShortestPath(m, xy(0, 0), xy(7, 7)))
}
