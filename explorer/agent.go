/*
Package explorer implements a frontier-exploration agent for grid maps.

The agent starts with no knowledge of the map. It senses only the four cells
around it, grows a private memory of what it has seen, and moves one cell per
step while trying not to walk over cells it already visited. A dead-end score
promotes cells that are about to be closed in by walls, obstacles or visited
cells so the agent picks them up while they are still cheap to reach.
*/
package explorer

import (
	"errors"
	"fmt"
)

// Agent-related errors.
var (
	ErrInvalidStart  = errors.New("start coordinate is not on the map")
	ErrNilMap        = errors.New("ground-truth map is nil")
	ErrInvalidConfig = errors.New("invalid explorer configuration")
	ErrStepLimit     = errors.New("step limit reached before exploration finished")
)

const (
	defaultHeading       = West
	defaultPriorityReach = 1
)

// Config tunes the agent. The zero value is not the default; use DefaultConfig.
type Config struct {
	// Heading is the direction the first directional scan starts from.
	Heading Direction
	// PriorityReach is the distance (1 or 2) at which a nearby Priority node
	// is walked to before the directional scan.
	PriorityReach int
	// PromoteOnMove turns every Unvisited neighbour of the cell being left
	// into Priority. Off by default.
	PromoteOnMove bool
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Heading:       defaultHeading,
		PriorityReach: defaultPriorityReach,
	}
}

// Validate reports whether the configuration can drive an agent.
func (c Config) Validate() error {
	if c.Heading < East || c.Heading > North {
		return fmt.Errorf("%w: heading %d", ErrInvalidConfig, int(c.Heading))
	}
	if c.PriorityReach < 1 || c.PriorityReach > priorityHorizon {
		return fmt.Errorf("%w: priority reach %d must be within [1,%d]", ErrInvalidConfig, c.PriorityReach, priorityHorizon)
	}
	return nil
}

// Stats summarises an exploration run so far.
type Stats struct {
	Steps          int `json:"steps"`
	RepeatedSpaces int `json:"repeated_spaces"`
	Discovered     int `json:"discovered"`
	Visited        int `json:"visited"`
	Obstacles      int `json:"obstacles"`
	Frontier       int `json:"frontier"`
}

// Agent explores a GroundTruthMap from a start coordinate.
// It is not safe for concurrent use; run one agent per goroutine.
type Agent struct {
	gt            GroundTruthMap // Authoritative map, read-only.
	memory        *Memory        // What the agent knows so far.
	planner       *Planner       // Next-move selection.
	current       Coordinate     // Occupied coordinate.
	path          []Coordinate   // Pending moves, head first.
	repeated      int            // Steps that landed on a visited cell.
	steps         int            // Steps taken.
	promoteOnMove bool
	rescore       []Coordinate // Re-evaluation queue filled by new obstacles.
}

// NewAgent places an agent on start and senses its surroundings.
// A nil cfg selects DefaultConfig.
func NewAgent(start Coordinate, gt GroundTruthMap, cfg *Config) (*Agent, error) {
	if gt == nil {
		return nil, ErrNilMap
	}
	if !gt.HasNode(start) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStart, start)
	}

	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	a := &Agent{
		gt:            gt,
		memory:        newMemory(),
		planner:       NewPlanner(c.Heading, c.PriorityReach),
		current:       start,
		promoteOnMove: c.PromoteOnMove,
	}
	a.memory.ensure(start, Current)
	a.discover()
	return a, nil
}

// Move takes one step. It returns false when there is nowhere left to go.
func (a *Agent) Move() bool {
	if len(a.path) == 0 {
		a.path = a.planner.Plan(a.memory, a.current)
	}
	if len(a.path) == 0 {
		return false
	}

	target := a.path[0]
	a.path = a.path[1:]
	a.moveTo(target)
	return true
}

// Run moves until exploration ends or maxSteps moves were taken. A
// non-positive maxSteps means no limit.
func (a *Agent) Run(maxSteps int) (Stats, error) {
	for a.Move() {
		if maxSteps > 0 && a.steps >= maxSteps && !a.Done() {
			return a.Stats(), fmt.Errorf("%w: %d steps", ErrStepLimit, a.steps)
		}
	}
	return a.Stats(), nil
}

// CurrentPosition returns the occupied coordinate.
func (a *Agent) CurrentPosition() Coordinate {
	return a.current
}

// RepeatedSpaces returns how many steps landed on an already visited cell.
func (a *Agent) RepeatedSpaces() int {
	return a.repeated
}

// Steps returns how many moves the agent made.
func (a *Agent) Steps() int {
	return a.steps
}

// NodeStatus returns what the agent knows about c.
func (a *Agent) NodeStatus(c Coordinate) NodeStatus {
	return a.memory.Status(c)
}

// Memory exposes the agent's memory for inspection.
func (a *Agent) Memory() *Memory {
	return a.memory
}

// RotationOffset returns the direction the next directional scan starts from.
func (a *Agent) RotationOffset() Direction {
	return a.planner.RotationOffset()
}

// PendingPath returns a copy of the moves already decided on.
func (a *Agent) PendingPath() []Coordinate {
	out := make([]Coordinate, len(a.path))
	copy(out, a.path)
	return out
}

// Stats returns the current run statistics.
func (a *Agent) Stats() Stats {
	m := a.memory
	return Stats{
		Steps:          a.steps,
		RepeatedSpaces: a.repeated,
		Discovered:     m.Len(),
		Visited:        m.Count(Visited) + m.Count(Current),
		Obstacles:      m.Count(Obstacle),
		Frontier:       m.Count(Unvisited) + m.Count(Preferable) + m.Count(Priority),
	}
}

// Done reports whether the next Move would return false.
func (a *Agent) Done() bool {
	if len(a.path) > 0 {
		return false
	}
	_, ok := ClosestFrontier(a.memory, a.current)
	return !ok
}

// moveTo walks onto target, which must be a memory neighbour of the current
// coordinate, and senses the new surroundings.
func (a *Agent) moveTo(target Coordinate) {
	if a.promoteOnMove {
		for _, n := range a.memory.Neighbors(a.current) {
			if a.memory.Status(n) == Unvisited {
				a.memory.setStatus(n, Priority)
			}
		}
	}

	if a.memory.Status(target) == Visited {
		a.repeated++
	}
	a.memory.setStatus(a.current, Visited)
	a.current = target
	a.memory.setStatus(target, Current)
	a.steps++
	a.discover()
}

// discover senses the four cells around the current coordinate and folds
// what the ground truth reports into memory.
func (a *Agent) discover() {
	for _, d := range Directions {
		n := a.current.Step(d)
		if !a.gt.HasNode(n) {
			continue
		}
		a.memory.ensure(n, Unvisited)
		if s := a.memory.Status(n); s == Visited || s == Current {
			continue
		}

		if !a.gt.HasEdge(a.current, n) {
			a.memory.setStatus(n, Obstacle)
			a.queueRescore(n)
			a.drainRescore()
			continue
		}

		a.memory.connect(a.current, n)
		a.stitch(n)
		a.memory.setStatus(n, ScoreDeadEnd(a.gt, a.memory, a.current, n))
	}
}

// stitch copies every ground-truth edge between n and already discovered
// cells into memory, so planning never has to ask the ground truth again.
func (a *Agent) stitch(n Coordinate) {
	for _, m := range a.gt.Neighbors(n) {
		if a.memory.Has(m) && a.gt.HasEdge(m, n) {
			a.memory.connect(m, n)
		}
	}
}

// queueRescore schedules the discovered frontier cells around a new obstacle
// for another dead-end evaluation.
func (a *Agent) queueRescore(obstacle Coordinate) {
	for _, d := range Directions {
		n := obstacle.Step(d)
		if s := a.memory.Status(n); s == Unvisited || s == Preferable {
			a.rescore = append(a.rescore, n)
		}
	}
}

// drainRescore re-scores queued cells, only ever raising their status.
func (a *Agent) drainRescore() {
	for len(a.rescore) > 0 {
		n := a.rescore[0]
		a.rescore = a.rescore[1:]
		s := a.memory.Status(n)
		if s != Unvisited && s != Preferable {
			continue
		}
		if next := ScoreDeadEnd(a.gt, a.memory, a.current, n); next.rank() > s.rank() {
			a.memory.setStatus(n, next)
		}
	}
}
