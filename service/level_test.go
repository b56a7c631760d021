package service

import (
	"io"
	"log"
	"testing"

	"github.com/beka-birhanu/endless-maze-api/difficulty"
	"github.com/stretchr/testify/assert"
)

func TestNewLevelService(t *testing.T) {
	_, err := NewLevelService(nil)
	assert.Error(t, err)

	svc, err := NewLevelService(log.New(io.Discard, "", 0))
	assert.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestLevelFor(t *testing.T) {
	svc, err := NewLevelService(log.New(io.Discard, "", 0))
	assert.NoError(t, err)

	t.Run("maze matches descriptor", func(t *testing.T) {
		maze, descriptor, err := svc.LevelFor(4)
		assert.NoError(t, err)
		assert.Equal(t, difficulty.ForLevel(4), descriptor)

		width, height := maze.Dimensions()
		assert.Equal(t, 2*descriptor.Cols+1, width)
		assert.Equal(t, 2*descriptor.Rows+1, height)

		start := maze.StartPosition()
		exit := maze.ExitPosition()
		assert.True(t, maze.IsPassage(start.X, start.Y))
		assert.True(t, maze.IsPassage(exit.X, exit.Y))
		assert.NotEqual(t, start, exit)
	})

	t.Run("deep levels stay bounded", func(t *testing.T) {
		maze, descriptor, err := svc.LevelFor(500)
		assert.NoError(t, err)
		assert.Equal(t, "endless", descriptor.Tier)

		width, height := maze.Dimensions()
		assert.LessOrEqual(t, width, 2*40+1)
		assert.LessOrEqual(t, height, 2*40+1)
	})
}
