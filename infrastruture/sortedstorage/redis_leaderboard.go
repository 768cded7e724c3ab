package sortedstorage

import (
	"context"
	"time"

	"github.com/beka-birhanu/vinom-explorer/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

var _ i.Leaderboard = &RedisLeaderboard{}

// RedisLeaderboard keeps leaderboards as Redis sorted sets with TTL support.
type RedisLeaderboard struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisLeaderboard initializes a RedisLeaderboard with the provided Redis client and TTL.
func NewRedisLeaderboard(client *redis.Client, ttlSeconds int) (*RedisLeaderboard, error) {
	board := &RedisLeaderboard{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	board.locker = redsync.New(pool)
	return board, nil
}

// Submit adds a member with a given score and sets expiration if necessary.
func (rl *RedisLeaderboard) Submit(ctx context.Context, key string, score float64, member string) error {
	_, err := rl.client.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Result()
	if err != nil {
		return err
	}

	// Set expiration only if it's not already set
	ttl, err := rl.client.TTL(ctx, key).Result()
	if err == nil && ttl == -1 && rl.ttl > 0 {
		_ = rl.client.Expire(ctx, key, rl.ttl).Err()
	}

	return nil
}

// Best retrieves up to n members with the lowest scores.
func (rl *RedisLeaderboard) Best(ctx context.Context, key string, n int64) ([]i.LeaderboardEntry, error) {
	stop := n - 1
	if n <= 0 {
		stop = -1
	}
	ranked, err := rl.client.ZRangeWithScores(ctx, key, 0, stop).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]i.LeaderboardEntry, 0, len(ranked))
	for _, z := range ranked {
		member, _ := z.Member.(string)
		entries = append(entries, i.LeaderboardEntry{Member: member, Score: z.Score})
	}
	return entries, nil
}

// Trim removes every member ranked after the best keep ones. Concurrent
// trims of the same key are serialized.
func (rl *RedisLeaderboard) Trim(ctx context.Context, key string, keep int64) error {
	mutex := rl.locker.NewMutex(key + ":trim_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	if rl.client.ZCard(ctx, key).Val() <= keep {
		return nil
	}
	return rl.client.ZRemRangeByRank(ctx, key, keep, -1).Err()
}

// Count returns the number of members under key.
func (rl *RedisLeaderboard) Count(ctx context.Context, key string) int64 {
	return rl.client.ZCard(ctx, key).Val()
}
