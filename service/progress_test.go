package service

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/endless-maze-api/domain"
	"github.com/beka-birhanu/endless-maze-api/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakePlayerRepo struct {
	players map[uuid.UUID]*dmn.Player
}

func (r *fakePlayerRepo) Save(player *dmn.Player) error {
	r.players[player.ID] = player
	return nil
}

func (r *fakePlayerRepo) ByID(id uuid.UUID) (*dmn.Player, error) {
	player, ok := r.players[id]
	if !ok {
		return nil, errors.New("player not found")
	}
	return player, nil
}

func (r *fakePlayerRepo) ByUsername(username string) (*dmn.Player, error) {
	for _, player := range r.players {
		if player.Username == username {
			return player, nil
		}
	}
	return nil, errors.New("player not found")
}

type fakeProgressRepo struct {
	records []dmn.Progress
}

func (r *fakeProgressRepo) Save(_ context.Context, progress *dmn.Progress) error {
	r.records = append(r.records, *progress)
	return nil
}

func (r *fakeProgressRepo) ByPlayer(_ context.Context, playerID uuid.UUID) ([]dmn.Progress, error) {
	var out []dmn.Progress
	for _, record := range r.records {
		if record.PlayerID == playerID {
			out = append(out, record)
		}
	}
	return out, nil
}

type fakeLeaderboard struct {
	recorded int
	failWith error
}

func (l *fakeLeaderboard) RecordTime(_ context.Context, _ int, _ string, _ time.Duration) error {
	if l.failWith != nil {
		return l.failWith
	}
	l.recorded++
	return nil
}

func (l *fakeLeaderboard) Top(_ context.Context, _ int, _ int64) ([]i.LeaderboardEntry, error) {
	return nil, nil
}

func newProgressFixture(t *testing.T, board i.Leaderboard) (*Progress, *fakePlayerRepo, *fakeProgressRepo, uuid.UUID) {
	t.Helper()

	playerID := uuid.New()
	players := &fakePlayerRepo{players: map[uuid.UUID]*dmn.Player{
		playerID: {ID: playerID, Username: "maze_runner_7", CurrentLevel: 3},
	}}
	records := &fakeProgressRepo{}

	svc, err := NewProgress(players, records, board, log.New(io.Discard, "", 0))
	assert.NoError(t, err)
	return svc, players, records, playerID
}

func TestProgressComplete(t *testing.T) {
	t.Run("advances resume point and records time", func(t *testing.T) {
		board := &fakeLeaderboard{}
		svc, players, records, playerID := newProgressFixture(t, board)

		err := svc.Complete(context.Background(), playerID, 3, 42*time.Second)
		assert.NoError(t, err)

		assert.Equal(t, 4, players.players[playerID].CurrentLevel)
		assert.Len(t, records.records, 1)
		assert.Equal(t, 3, records.records[0].Level)
		assert.True(t, records.records[0].Completed)
		assert.Equal(t, 1, board.recorded)
	})

	t.Run("replaying an old level keeps the resume point", func(t *testing.T) {
		svc, players, _, playerID := newProgressFixture(t, &fakeLeaderboard{})

		err := svc.Complete(context.Background(), playerID, 1, time.Minute)
		assert.NoError(t, err)
		assert.Equal(t, 3, players.players[playerID].CurrentLevel)
	})

	t.Run("leaderboard failure does not fail the completion", func(t *testing.T) {
		board := &fakeLeaderboard{failWith: errors.New("redis down")}
		svc, players, records, playerID := newProgressFixture(t, board)

		err := svc.Complete(context.Background(), playerID, 3, 42*time.Second)
		assert.NoError(t, err)
		assert.Len(t, records.records, 1)
		assert.Equal(t, 4, players.players[playerID].CurrentLevel)
	})

	t.Run("unknown player", func(t *testing.T) {
		svc, _, _, _ := newProgressFixture(t, &fakeLeaderboard{})

		err := svc.Complete(context.Background(), uuid.New(), 3, time.Minute)
		assert.Error(t, err)
	})
}

func TestProgressResume(t *testing.T) {
	svc, _, _, playerID := newProgressFixture(t, &fakeLeaderboard{})

	next, err := svc.Resume(context.Background(), playerID)
	assert.NoError(t, err)
	assert.Equal(t, 3, next)
}

func TestProgressHistory(t *testing.T) {
	svc, _, _, playerID := newProgressFixture(t, &fakeLeaderboard{})

	assert.NoError(t, svc.Complete(context.Background(), playerID, 3, time.Minute))
	assert.NoError(t, svc.Complete(context.Background(), playerID, 4, 2*time.Minute))

	history, err := svc.History(context.Background(), playerID)
	assert.NoError(t, err)
	assert.Len(t, history, 2)
}
