// Package domain holds the persistent aggregates of the service.
package domain

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordStrengthScore = 3

	usernamePattern   = `^[a-zA-Z0-9_]+$` // Alphanumeric with underscores
	minUsernameLength = 3
	maxUsernameLength = 20

	// New players start their progression at level one.
	startingLevel = 1
)

var (
	usernameRegex = regexp.MustCompile(usernamePattern)
)

// Player represents the BSON version of the Player for database storage.
type Player struct {
	ID           uuid.UUID `bson:"_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"passwordHash"`
	CurrentLevel int       `bson:"currentLevel"`
}

// Progress is one completed level of a player: only derived metadata is
// stored, the maze itself is regenerated from the level number.
type Progress struct {
	PlayerID    uuid.UUID     `bson:"playerId"`
	Level       int           `bson:"level"`
	Completed   bool          `bson:"completed"`
	BestTime    time.Duration `bson:"bestTime"`
	CompletedAt time.Time     `bson:"completedAt"`
}

// PlayerConfig holds parameters for creating a Player.
type PlayerConfig struct {
	ID            uuid.UUID
	Username      string
	PlainPassword string
}

// NewPlayer creates a new Player with the provided configuration.
func NewPlayer(config PlayerConfig) (*Player, error) {
	if err := validateUsername(config.Username); err != nil {
		return nil, err
	}

	if err := validatePassword(config.PlainPassword); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(config.PlainPassword)
	if err != nil {
		return nil, err
	}

	return &Player{
		ID:           config.ID,
		Username:     config.Username,
		PasswordHash: passwordHash,
		CurrentLevel: startingLevel,
	}, nil
}

// VerifyPassword verifies if the given password matches the stored hash.
func (p *Player) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password))
	return err == nil
}

// AdvanceTo moves the player's resume point forward. Completing an old
// level never pushes the progression backwards.
func (p *Player) AdvanceTo(level int) {
	if level > p.CurrentLevel {
		p.CurrentLevel = level
	}
}

// validateUsername validates the username.
func validateUsername(username string) error {
	if len(username) < minUsernameLength {
		return errors.New("username too short")
	}
	if len(username) > maxUsernameLength {
		return errors.New("username too long")
	}
	if !usernameRegex.MatchString(username) {
		return errors.New("invalid username format")
	}
	return nil
}

// validatePassword checks the strength of the password.
func validatePassword(password string) error {
	result := zxcvbn.PasswordStrength(password, nil)
	if result.Score < minPasswordStrengthScore {
		return errors.New("weak password")
	}
	return nil
}

// hashPassword generates a bcrypt hash for the given password.
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}
