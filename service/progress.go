package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/beka-birhanu/endless-maze-api/config"
	dmn "github.com/beka-birhanu/endless-maze-api/domain"
	"github.com/beka-birhanu/endless-maze-api/service/i"
	"github.com/google/uuid"
)

// Progress records level completions and resume points. Completion updates
// the mongo-backed records; the per-level leaderboard write is best-effort
// and never fails the completion itself.
type Progress struct {
	players     i.PlayerRepo
	progress    i.ProgressRepo
	leaderboard i.Leaderboard
	logger      *log.Logger
}

// NewProgress creates a Progress service.
func NewProgress(players i.PlayerRepo, progress i.ProgressRepo, leaderboard i.Leaderboard, logger *log.Logger) (*Progress, error) {
	if players == nil || progress == nil {
		return nil, fmt.Errorf("progress service requires player and progress repositories")
	}
	return &Progress{
		players:     players,
		progress:    progress,
		leaderboard: leaderboard,
		logger:      logger,
	}, nil
}

// Complete stores a finished level, advances the player's resume point and
// submits the time to the level leaderboard.
func (p *Progress) Complete(ctx context.Context, playerID uuid.UUID, level int, elapsed time.Duration) error {
	player, err := p.players.ByID(playerID)
	if err != nil {
		return err
	}

	record := &dmn.Progress{
		PlayerID:    playerID,
		Level:       level,
		Completed:   true,
		BestTime:    elapsed,
		CompletedAt: time.Now().UTC(),
	}
	if err := p.progress.Save(ctx, record); err != nil {
		return err
	}

	player.AdvanceTo(level + 1)
	if err := p.players.Save(player); err != nil {
		return err
	}

	if p.leaderboard != nil {
		if err := p.leaderboard.RecordTime(ctx, level, playerID.String(), elapsed); err != nil {
			p.logger.Printf("%s[WARN]%s leaderboard write for level %d: %v", config.LogInfoColor, config.LogColorReset, level, err)
		}
	}
	return nil
}

// Resume returns the level the player should play next.
func (p *Progress) Resume(ctx context.Context, playerID uuid.UUID) (int, error) {
	player, err := p.players.ByID(playerID)
	if err != nil {
		return 0, err
	}
	return player.CurrentLevel, nil
}

// History lists the player's completion records ordered by level.
func (p *Progress) History(ctx context.Context, playerID uuid.UUID) ([]dmn.Progress, error) {
	return p.progress.ByPlayer(ctx, playerID)
}
