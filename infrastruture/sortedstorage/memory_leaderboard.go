package sortedstorage

import (
	"context"
	"sort"
	"sync"

	"github.com/beka-birhanu/vinom-explorer/service/i"
)

var _ i.Leaderboard = &MemoryLeaderboard{}

// MemoryLeaderboard is the in-process Leaderboard used when no Redis is configured.
// Ties are broken by member, as Redis does.
type MemoryLeaderboard struct {
	mu    sync.Mutex
	board map[string]map[string]float64
}

// NewMemoryLeaderboard creates an empty MemoryLeaderboard.
func NewMemoryLeaderboard() *MemoryLeaderboard {
	return &MemoryLeaderboard{board: make(map[string]map[string]float64)}
}

// Submit adds member with score.
func (ml *MemoryLeaderboard) Submit(_ context.Context, key string, score float64, member string) error {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	if ml.board[key] == nil {
		ml.board[key] = make(map[string]float64)
	}
	ml.board[key][member] = score
	return nil
}

// Best retrieves up to n members with the lowest scores.
func (ml *MemoryLeaderboard) Best(_ context.Context, key string, n int64) ([]i.LeaderboardEntry, error) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	ranked := ml.ranked(key)
	if n > 0 && int64(len(ranked)) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// Trim removes every member ranked after the best keep ones.
func (ml *MemoryLeaderboard) Trim(_ context.Context, key string, keep int64) error {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	ranked := ml.ranked(key)
	if keep < 0 {
		keep = 0
	}
	for idx := keep; idx < int64(len(ranked)); idx++ {
		delete(ml.board[key], ranked[idx].Member)
	}
	return nil
}

// Count returns the number of members under key.
func (ml *MemoryLeaderboard) Count(_ context.Context, key string) int64 {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	return int64(len(ml.board[key]))
}

func (ml *MemoryLeaderboard) ranked(key string) []i.LeaderboardEntry {
	entries := make([]i.LeaderboardEntry, 0, len(ml.board[key]))
	for member, score := range ml.board[key] {
		entries = append(entries, i.LeaderboardEntry{Member: member, Score: score})
	}
	sort.Slice(entries, func(a, b int) bool {
		if entries[a].Score != entries[b].Score {
			return entries[a].Score < entries[b].Score
		}
		return entries[a].Member < entries[b].Member
	})
	return entries
}
