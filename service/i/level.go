package i

import (
	"github.com/beka-birhanu/endless-maze-api/difficulty"
	"github.com/beka-birhanu/endless-maze-api/game"
)

// LevelProvider turns a level number into a freshly generated maze plus the
// difficulty descriptor it was generated from.
type LevelProvider interface {
	LevelFor(level int) (game.Maze, difficulty.Descriptor, error)
}
