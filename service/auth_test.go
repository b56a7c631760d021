package service

import (
	"testing"
	"time"

	dmn "github.com/beka-birhanu/endless-maze-api/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeTokenizer struct{}

func (fakeTokenizer) Generate(claims map[string]interface{}, _ time.Duration) (string, error) {
	return "token-for-" + claims["username"].(string), nil
}

func (fakeTokenizer) Decode(string) (map[string]interface{}, error) {
	return nil, nil
}

func TestAuth(t *testing.T) {
	players := &fakePlayerRepo{players: map[uuid.UUID]*dmn.Player{}}
	auth, err := NewAuthService(players, fakeTokenizer{})
	assert.NoError(t, err)

	t.Run("register then sign in", func(t *testing.T) {
		err := auth.Register("maze_runner_7", "correct-horse-battery")
		assert.NoError(t, err)

		player, token, err := auth.SignIn("maze_runner_7", "correct-horse-battery")
		assert.NoError(t, err)
		assert.Equal(t, "maze_runner_7", player.Username)
		assert.Equal(t, 1, player.CurrentLevel)
		assert.Equal(t, "token-for-maze_runner_7", token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := auth.SignIn("maze_runner_7", "not-the-password")
		assert.Error(t, err)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, _, err := auth.SignIn("nobody_here", "correct-horse-battery")
		assert.Error(t, err)
	})

	t.Run("weak password rejected", func(t *testing.T) {
		err := auth.Register("another_player", "123456")
		assert.Error(t, err)
	})
}
