package i

import (
	dmn "github.com/beka-birhanu/vinom-explorer/domain"
	"github.com/google/uuid"
)

// TrialRepo defines the interface for trial persistence operations.
type TrialRepo interface {
	// Save inserts or updates a trial in the repository.
	Save(trial *dmn.Trial) error

	// ByID retrieves a trial by its unique ID.
	// Returns an error if the trial is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.Trial, error)

	// ByMap lists up to limit trials of a map, newest first. A non-positive limit lists all.
	ByMap(mapName string, limit int64) ([]*dmn.Trial, error)
}
