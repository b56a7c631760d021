package i

import (
	"context"

	dmn "github.com/beka-birhanu/endless-maze-api/domain"
	"github.com/google/uuid"
)

// PlayerRepo defines the interface for player persistence operations.
type PlayerRepo interface {
	// Save inserts or updates a player in the repository.
	// If the player already exists, it updates the record. Otherwise, it creates a new one.
	Save(player *dmn.Player) error

	// ByID retrieves a player by their unique ID.
	// Returns an error if the player is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.Player, error)

	// ByUsername retrieves a player by their username.
	// Returns an error if the player is not found or in case of an unexpected error.
	ByUsername(username string) (*dmn.Player, error)
}

// ProgressRepo persists per-level completion metadata. The maze graph is
// never stored; a level is reconstructed from its number.
type ProgressRepo interface {
	// Save upserts a completion record, keeping the best recorded time.
	Save(ctx context.Context, progress *dmn.Progress) error

	// ByPlayer lists a player's completion records ordered by level.
	ByPlayer(ctx context.Context, playerID uuid.UUID) ([]dmn.Progress, error)
}
