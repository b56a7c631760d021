package service

import (
	"fmt"
	"log"

	"github.com/beka-birhanu/endless-maze-api/config"
	"github.com/beka-birhanu/endless-maze-api/difficulty"
	"github.com/beka-birhanu/endless-maze-api/game"
	"github.com/beka-birhanu/endless-maze-api/maze"
	"github.com/beka-birhanu/endless-maze-api/service/i"
)

// LevelService produces the maze for a level number. The generation
// pipeline (build, braid, select endpoints) runs to completion inside one
// call; the maze is not handed out until all three stages are done, so
// callers never observe a partially built grid.
type LevelService struct {
	logger *log.Logger
}

// NewLevelService creates a LevelService.
func NewLevelService(logger *log.Logger) (i.LevelProvider, error) {
	if logger == nil {
		return nil, fmt.Errorf("level service requires a logger")
	}
	return &LevelService{logger: logger}, nil
}

// LevelFor generates a fresh maze for the level. A catastrophic failure
// inside the engine surfaces as an error rather than a crash, so the caller
// can restart the progression at a known-good level.
func (s *LevelService) LevelFor(level int) (m game.Maze, d difficulty.Descriptor, err error) {
	d = difficulty.ForLevel(level)

	defer func() {
		if r := recover(); r != nil {
			s.logger.Printf("%s[ERROR]%s generating level %d (%s): %v", config.LogErrorColor, config.LogColorReset, level, d.Algorithm, r)
			m = nil
			err = fmt.Errorf("maze generation failed for level %d", level)
		}
	}()

	generated, err := maze.Generate(maze.Config{
		Cols:         d.Cols,
		Rows:         d.Rows,
		Algorithm:    d.Algorithm,
		BraidPercent: d.BraidPercent,
		Logger:       s.logger,
	})
	if err != nil {
		return nil, d, err
	}
	return generated, d, nil
}
