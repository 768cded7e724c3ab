package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-explorer/domain"
	"github.com/beka-birhanu/vinom-explorer/explorer"
	"github.com/google/uuid"
)

// Replay is a read-only picture of an agent part way through a run.
type Replay struct {
	MapName        string                  `json:"map_name"`
	Start          explorer.Coordinate     `json:"start"`
	Position       explorer.Coordinate     `json:"position"`
	Steps          int                     `json:"steps"`
	RepeatedSpaces int                     `json:"repeated_spaces"`
	Heading        string                  `json:"heading"`
	Done           bool                    `json:"done"`
	PendingPath    []explorer.Coordinate   `json:"pending_path"`
	Memory         []explorer.NodeSnapshot `json:"memory"`
}

// TrialService runs exploration trials and serves their results.
type TrialService interface {
	// Run explores mapName from start; a nil start picks the map's suggested start.
	Run(ctx context.Context, mapName string, start *explorer.Coordinate) (*dmn.Trial, error)

	// RunBatch explores mapName from every spawn point.
	RunBatch(ctx context.Context, mapName string) (*dmn.BatchSummary, error)

	// Replay runs at most steps moves and returns the agent's state.
	Replay(ctx context.Context, mapName string, start *explorer.Coordinate, steps int) (*Replay, error)

	// Trial retrieves a recorded trial.
	Trial(id uuid.UUID) (*dmn.Trial, error)

	// Trials lists up to limit recorded trials of mapName, newest first.
	Trials(mapName string, limit int64) ([]*dmn.Trial, error)

	// Leaderboard returns the n trials with the fewest repeated spaces on mapName.
	Leaderboard(ctx context.Context, mapName string, n int64) ([]LeaderboardEntry, error)

	// Maps lists the known maps.
	Maps() []string
}
