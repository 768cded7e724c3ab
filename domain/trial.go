// Package domain holds the records the application stores and serves.
package domain

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-explorer/explorer"
	"github.com/google/uuid"
)

var (
	ErrMissingMapName = errors.New("trial has no map name")
	ErrInvalidCounts  = errors.New("trial counts are inconsistent")
)

// Trial represents the BSON version of one exploration run for database storage.
type Trial struct {
	ID             uuid.UUID             `bson:"_id" json:"id"`
	MapName        string                `bson:"mapName" json:"map_name"`
	Start          explorer.Coordinate   `bson:"start" json:"start"`
	Heading        string                `bson:"heading" json:"heading"`
	Steps          int                   `bson:"steps" json:"steps"`
	RepeatedSpaces int                   `bson:"repeatedSpaces" json:"repeated_spaces"`
	Discovered     int                   `bson:"discovered" json:"discovered"`
	Visited        int                   `bson:"visited" json:"visited"`
	Reachable      int                   `bson:"reachable" json:"reachable"`
	Complete       bool                  `bson:"complete" json:"complete"`
	Trace          []explorer.Coordinate `bson:"trace,omitempty" json:"trace,omitempty"`
	CreatedAt      time.Time             `bson:"createdAt" json:"created_at"`
}

// TrialConfig holds the parameters a Trial is recorded from.
type TrialConfig struct {
	ID        uuid.UUID
	MapName   string
	Start     explorer.Coordinate
	Heading   explorer.Direction
	Reachable int // Cells reachable from Start on the ground truth.
	Stats     explorer.Stats
	Trace     []explorer.Coordinate
}

// NewTrial records a finished run.
func NewTrial(config TrialConfig) (*Trial, error) {
	if strings.TrimSpace(config.MapName) == "" {
		return nil, ErrMissingMapName
	}
	if config.Stats.Visited > config.Reachable || config.Stats.Visited > config.Stats.Discovered {
		return nil, ErrInvalidCounts
	}

	id := config.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Trial{
		ID:             id,
		MapName:        config.MapName,
		Start:          config.Start,
		Heading:        config.Heading.String(),
		Steps:          config.Stats.Steps,
		RepeatedSpaces: config.Stats.RepeatedSpaces,
		Discovered:     config.Stats.Discovered,
		Visited:        config.Stats.Visited,
		Reachable:      config.Reachable,
		Complete:       config.Stats.Visited == config.Reachable,
		Trace:          config.Trace,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// BatchSummary aggregates the repeated spaces of a batch of trials.
type BatchSummary struct {
	MapName    string  `json:"map_name"`
	Trials     int     `json:"trials"`
	Incomplete int     `json:"incomplete"`
	Total      int     `json:"total"`
	Min        int     `json:"min"`
	Max        int     `json:"max"`
	Mean       float64 `json:"mean"`
}

// Summarize computes the batch statistics of trials. An empty batch yields zeros.
func Summarize(mapName string, trials []*Trial) *BatchSummary {
	s := &BatchSummary{MapName: mapName, Trials: len(trials)}
	if len(trials) == 0 {
		return s
	}

	s.Min = math.MaxInt
	for _, t := range trials {
		s.Total += t.RepeatedSpaces
		s.Min = min(s.Min, t.RepeatedSpaces)
		s.Max = max(s.Max, t.RepeatedSpaces)
		if !t.Complete {
			s.Incomplete++
		}
	}
	s.Mean = float64(s.Total) / float64(len(trials))
	return s
}
