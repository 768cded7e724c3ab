package repo

import (
	"sort"
	"sync"

	dmn "github.com/beka-birhanu/vinom-explorer/domain"
	"github.com/beka-birhanu/vinom-explorer/service/i"
	"github.com/google/uuid"
)

var _ i.TrialRepo = &MemoryTrialRepo{}

// MemoryTrialRepo keeps trials in process memory. It backs the CLI and the
// server when no MongoDB is configured.
type MemoryTrialRepo struct {
	mu     sync.RWMutex
	trials map[uuid.UUID]*dmn.Trial
	order  []uuid.UUID // Insertion order, oldest first.
}

// NewMemoryTrialRepo creates an empty MemoryTrialRepo.
func NewMemoryTrialRepo() *MemoryTrialRepo {
	return &MemoryTrialRepo{trials: make(map[uuid.UUID]*dmn.Trial)}
}

// Save inserts or updates a trial.
func (m *MemoryTrialRepo) Save(trial *dmn.Trial) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.trials[trial.ID]; !exists {
		m.order = append(m.order, trial.ID)
	}
	stored := *trial
	m.trials[trial.ID] = &stored
	return nil
}

// ByID retrieves a trial by its ID.
func (m *MemoryTrialRepo) ByID(id uuid.UUID) (*dmn.Trial, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	trial, ok := m.trials[id]
	if !ok {
		return nil, ErrTrialNotFound
	}
	found := *trial
	return &found, nil
}

// ByMap lists the trials of a map, newest first.
func (m *MemoryTrialRepo) ByMap(mapName string, limit int64) ([]*dmn.Trial, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var trials []*dmn.Trial
	for idx := len(m.order) - 1; idx >= 0; idx-- {
		trial := m.trials[m.order[idx]]
		if trial.MapName != mapName {
			continue
		}
		found := *trial
		trials = append(trials, &found)
	}
	sort.SliceStable(trials, func(a, b int) bool {
		return trials[a].CreatedAt.After(trials[b].CreatedAt)
	})
	if limit > 0 && int64(len(trials)) > limit {
		trials = trials[:limit]
	}
	return trials, nil
}
