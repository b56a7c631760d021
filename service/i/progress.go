package i

import (
	"context"
	"time"

	dmn "github.com/beka-birhanu/endless-maze-api/domain"
	"github.com/google/uuid"
)

// ProgressTracker records level completions and answers where a player
// should resume.
type ProgressTracker interface {
	// Complete stores a finished level and advances the player's
	// progression.
	Complete(ctx context.Context, playerID uuid.UUID, level int, elapsed time.Duration) error

	// Resume returns the level the player should play next.
	Resume(ctx context.Context, playerID uuid.UUID) (int, error)

	// History lists the player's completion records ordered by level.
	History(ctx context.Context, playerID uuid.UUID) ([]dmn.Progress, error)
}
