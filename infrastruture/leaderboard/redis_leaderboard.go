package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/beka-birhanu/endless-maze-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	// level board key format
	levelBoardKeyFmt = "leaderboard:level_%d"

	// maxEntries bounds each board; slower times past the cut are trimmed.
	maxEntries = 100
)

// RedisLeaderboard keeps per-level best completion times in Redis sorted
// sets, scored by elapsed milliseconds so the fastest runs rank first.
type RedisLeaderboard struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisLeaderboard initializes a RedisLeaderboard with the provided Redis client and TTL.
func NewRedisLeaderboard(client *redis.Client, ttlSeconds int) (i.Leaderboard, error) {
	board := &RedisLeaderboard{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	board.locker = redsync.New(pool)
	return board, nil
}

// RecordTime stores a completion time, keeping only the player's best, and
// trims the board to maxEntries. The add+trim pair runs under a redsync
// lock so concurrent submissions cannot trim a just-added best time.
func (rl *RedisLeaderboard) RecordTime(ctx context.Context, level int, playerID string, elapsed time.Duration) error {
	key := rl.boardKey(level)

	mutex := rl.locker.NewMutex(key + ":write_lock")
	if err := mutex.Lock(); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	// ZAddLT only updates when the new score is lower, so an existing
	// faster run survives a slower resubmission.
	err := rl.client.ZAddLT(ctx, key, redis.Z{
		Score:  float64(elapsed.Milliseconds()),
		Member: playerID,
	}).Err()
	if err != nil {
		return err
	}

	if err := rl.client.ZRemRangeByRank(ctx, key, maxEntries, -1).Err(); err != nil {
		return err
	}

	// Set expiration only if it's not already set
	ttl, err := rl.client.TTL(ctx, key).Result()
	if err == nil && ttl == -1 {
		_ = rl.client.Expire(ctx, key, rl.ttl).Err()
	}

	return nil
}

// Top returns up to count entries, fastest first.
func (rl *RedisLeaderboard) Top(ctx context.Context, level int, count int64) ([]i.LeaderboardEntry, error) {
	ranked, err := rl.client.ZRangeWithScores(ctx, rl.boardKey(level), 0, count-1).Result()
	if err != nil {
		return nil, err
	}

	var entries []i.LeaderboardEntry
	for _, z := range ranked {
		entries = append(entries, i.LeaderboardEntry{
			PlayerID: fmt.Sprint(z.Member),
			Time:     time.Duration(z.Score) * time.Millisecond,
		})
	}
	return entries, nil
}

func (rl *RedisLeaderboard) boardKey(level int) string {
	return fmt.Sprintf(levelBoardKeyFmt, level)
}
