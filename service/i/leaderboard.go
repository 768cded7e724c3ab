package i

import "context"

// LeaderboardEntry is one ranked member of a leaderboard.
type LeaderboardEntry struct {
	Member string  `json:"member"`
	Score  float64 `json:"score"`
}

// Leaderboard keeps, per key, members ranked by ascending score.
type Leaderboard interface {
	// Submit adds member with score, replacing an earlier score of the same member.
	Submit(ctx context.Context, key string, score float64, member string) error

	// Best returns up to n members with the lowest scores, best first.
	Best(ctx context.Context, key string, n int64) ([]LeaderboardEntry, error)

	// Trim drops everything but the best keep members.
	Trim(ctx context.Context, key string, keep int64) error

	// Count returns the number of members under key.
	Count(ctx context.Context, key string) int64
}
