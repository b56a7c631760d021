package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewPlayer(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		player, err := NewPlayer(PlayerConfig{
			ID:            uuid.New(),
			Username:      "maze_runner_7",
			PlainPassword: "correct-horse-battery",
		})
		assert.NoError(t, err)
		assert.Equal(t, "maze_runner_7", player.Username)
		assert.Equal(t, 1, player.CurrentLevel)
		assert.True(t, player.VerifyPassword("correct-horse-battery"))
		assert.False(t, player.VerifyPassword("wrong"))
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := NewPlayer(PlayerConfig{
			ID:            uuid.New(),
			Username:      "maze_runner_7",
			PlainPassword: "password",
		})
		assert.Error(t, err)
	})

	t.Run("invalid username", func(t *testing.T) {
		for _, username := range []string{"ab", "has space", "way_too_long_username_here"} {
			_, err := NewPlayer(PlayerConfig{
				ID:            uuid.New(),
				Username:      username,
				PlainPassword: "correct-horse-battery",
			})
			assert.Error(t, err, "username %q should be rejected", username)
		}
	})
}

func TestPlayerAdvanceTo(t *testing.T) {
	player := &Player{ID: uuid.New(), Username: "maze_runner_7", CurrentLevel: 5}

	player.AdvanceTo(6)
	assert.Equal(t, 6, player.CurrentLevel)

	// Replaying an old level must not move the resume point backwards.
	player.AdvanceTo(3)
	assert.Equal(t, 6, player.CurrentLevel)
}
