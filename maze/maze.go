/*
Package maze is the maze topology engine: perfect-maze generation over a
pluggable set of carving algorithms, an optional braiding pass that trades
dead ends for loops, and longest-path endpoint selection near the border.

A maze of cols×rows logical cells is stored as a (2*cols+1)×(2*rows+1)
lattice of wall/passage cells; consumers query it through the read-only
interfaces in the game package and never mutate it after generation.
*/
package maze

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/beka-birhanu/endless-maze-api/game"
)

const (
	maxMazeDimenssion = 64
)

// Config carries the generation parameters. Seed 0 means "seed from the
// wall clock": the operational default, at the cost of reproducibility.
type Config struct {
	Cols         int
	Rows         int
	Algorithm    Algorithm
	BraidPercent int
	Seed         int64
	Logger       *log.Logger
}

// Maze is a generated maze: one grid plus the selected start/exit pair.
// Immutable once Generate returns.
type Maze struct {
	grid  *Grid
	start game.Position
	exit  game.Position
}

// Generate runs the full pipeline: carve a perfect maze, braid it, then
// select endpoints. The pipeline is synchronous and single-threaded; the
// grid is owned exclusively by this call until it returns.
//
// Dimensions below 1 are clamped to 1 and still produce a valid connected
// grid. Dimensions above the engine maximum are a hard error so an
// oversized request cannot stall the process.
func Generate(cfg Config) (*Maze, error) {
	if max(cfg.Cols, cfg.Rows) > maxMazeDimenssion {
		return nil, fmt.Errorf("maze dimensions %dx%d exceed maximum %d", cfg.Cols, cfg.Rows, maxMazeDimenssion)
	}
	cols := max(cfg.Cols, 1)
	rows := max(cfg.Rows, 1)

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "maze: ", log.LstdFlags)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	carver, ok := carvers[cfg.Algorithm]
	if !ok {
		logger.Printf("[WARN] unknown algorithm %q, falling back to %q", cfg.Algorithm, DefaultAlgorithm)
		carver = carvers[DefaultAlgorithm]
	}

	grid := NewGrid(2*cols+1, 2*rows+1)
	carver(grid, cols, rows, rng)
	Braid(grid, cfg.BraidPercent, rng)
	start, exit := selectEndpoints(grid, logger)

	return &Maze{
		grid:  grid,
		start: start,
		exit:  exit,
	}, nil
}

// IsWall reports whether the cell at (x, y) is a wall.
func (m *Maze) IsWall(x, y int) bool {
	return m.grid.IsWall(x, y)
}

// IsPassage reports whether the cell at (x, y) is a walkable passage.
func (m *Maze) IsPassage(x, y int) bool {
	return m.grid.IsPassage(x, y)
}

// Dimensions returns the lattice width and height.
func (m *Maze) Dimensions() (int, int) {
	return m.grid.Dimensions()
}

// WalkableCells enumerates every passage cell in row-major order.
func (m *Maze) WalkableCells() []game.Position {
	return m.grid.WalkableCells()
}

// StartPosition returns the selected entrance cell.
func (m *Maze) StartPosition() game.Position {
	return m.start
}

// ExitPosition returns the selected goal cell.
func (m *Maze) ExitPosition() game.Position {
	return m.exit
}

// String renders the maze as ASCII: '#' walls, spaces for passages, 'S' and
// 'E' marking the endpoints.
func (m *Maze) String() string {
	var b strings.Builder
	width, height := m.grid.Dimensions()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			switch {
			case m.start.X == x && m.start.Y == y:
				b.WriteByte('S')
			case m.exit.X == x && m.exit.Y == y:
				b.WriteByte('E')
			case m.grid.IsWall(x, y):
				b.WriteByte('#')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
