package service

import (
	"errors"
	"time"

	dmn "github.com/beka-birhanu/endless-maze-api/domain"
	"github.com/beka-birhanu/endless-maze-api/service/i"
	"github.com/google/uuid"
)

const tokenLifetime = 24 * time.Hour

// Auth implements player registration and sign-in on top of the player
// repository and the tokenizer.
type Auth struct {
	playerRepo i.PlayerRepo
	tokenizer  i.Tokenizer
}

// NewAuthService creates an Auth service.
func NewAuthService(playerRepo i.PlayerRepo, tokenizer i.Tokenizer) (*Auth, error) {
	if playerRepo == nil || tokenizer == nil {
		return nil, errors.New("auth service requires a player repository and a tokenizer")
	}
	return &Auth{
		playerRepo: playerRepo,
		tokenizer:  tokenizer,
	}, nil
}

// Register creates a new player account.
func (a *Auth) Register(username, password string) error {
	player, err := dmn.NewPlayer(dmn.PlayerConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return err
	}

	return a.playerRepo.Save(player)
}

// SignIn validates credentials and returns the player with a fresh token.
func (a *Auth) SignIn(username, password string) (*dmn.Player, string, error) {
	player, err := a.playerRepo.ByUsername(username)
	if err != nil {
		return nil, "", errors.New("invalid username or password")
	}

	if !player.VerifyPassword(password) {
		return nil, "", errors.New("invalid username or password")
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"playerID": player.ID.String(),
		"username": player.Username,
	}, tokenLifetime)
	if err != nil {
		return nil, "", err
	}

	return player, token, nil
}
