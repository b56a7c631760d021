package i

import (
	"context"
	"time"
)

// LeaderboardEntry is one ranked completion time.
type LeaderboardEntry struct {
	PlayerID string
	Time     time.Duration
}

// Leaderboard ranks players per level by best completion time.
type Leaderboard interface {
	// RecordTime stores a completion time, keeping only a player's best.
	RecordTime(ctx context.Context, level int, playerID string, elapsed time.Duration) error

	// Top returns up to count entries, fastest first.
	Top(ctx context.Context, level int, count int64) ([]LeaderboardEntry, error)
}
