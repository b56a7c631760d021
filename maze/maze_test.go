package maze

import (
	"fmt"
	"testing"

	"github.com/beka-birhanu/endless-maze-api/game"
	"github.com/stretchr/testify/assert"
)

// floodCount returns how many passage cells a BFS from src can reach.
func floodCount(g *Grid, src game.Position) int {
	count := 0
	for _, d := range g.distancesFrom(src) {
		if d >= 0 {
			count++
		}
	}
	return count
}

// logicalCellCount counts carved logical cells (odd/odd lattice positions).
func logicalCellCount(g *Grid) int {
	w, h := g.Dimensions()
	count := 0
	for y := 1; y < h; y += 2 {
		for x := 1; x < w; x += 2 {
			if g.IsPassage(x, y) {
				count++
			}
		}
	}
	return count
}

// logicalEdgeCount counts open corridors between logical cells.
func logicalEdgeCount(g *Grid) int {
	w, h := g.Dimensions()
	count := 0
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			if (x+y)%2 == 1 && g.IsPassage(x, y) {
				count++
			}
		}
	}
	return count
}

func TestGenerateEveryAlgorithm(t *testing.T) {
	const cols, rows = 12, 9

	for _, alg := range Algorithms() {
		t.Run(string(alg), func(t *testing.T) {
			m, err := Generate(Config{
				Cols:      cols,
				Rows:      rows,
				Algorithm: alg,
				Seed:      42,
			})
			assert.NoError(t, err)

			// Every logical cell carved.
			assert.Equal(t, cols*rows, logicalCellCount(m.grid))

			// Single connected component.
			cells := m.WalkableCells()
			assert.NotEmpty(t, cells)
			assert.Equal(t, len(cells), floodCount(m.grid, cells[0]))

			// Perfect maze: spanning tree over logical cells.
			assert.Equal(t, cols*rows-1, logicalEdgeCount(m.grid))
		})
	}
}

func TestGenerateExampleScenario(t *testing.T) {
	// 15x15 binary-tree, braid 0: exactly 15*15-1 logical edges and both
	// endpoints inside the border band.
	m, err := Generate(Config{
		Cols:      15,
		Rows:      15,
		Algorithm: BinaryTree,
		Seed:      7,
	})
	assert.NoError(t, err)
	assert.Equal(t, 224, logicalEdgeCount(m.grid))

	start := m.StartPosition()
	exit := m.ExitPosition()
	assert.NotEqual(t, start, exit)
	assert.True(t, m.IsPassage(start.X, start.Y))
	assert.True(t, m.IsPassage(exit.X, exit.Y))
	assert.True(t, m.grid.nearBorder(start.X, start.Y))
	assert.True(t, m.grid.nearBorder(exit.X, exit.Y))
}

func TestGenerateSeedReproducibility(t *testing.T) {
	cfg := Config{
		Cols:         10,
		Rows:         10,
		Algorithm:    HuntAndKill,
		BraidPercent: 30,
		Seed:         1234,
	}

	a, err := Generate(cfg)
	assert.NoError(t, err)
	b, err := Generate(cfg)
	assert.NoError(t, err)

	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, a.StartPosition(), b.StartPosition())
	assert.Equal(t, a.ExitPosition(), b.ExitPosition())
}

func TestGenerateUnknownAlgorithmFallsBack(t *testing.T) {
	m, err := Generate(Config{
		Cols:      6,
		Rows:      6,
		Algorithm: Algorithm("does-not-exist"),
		Seed:      1,
	})
	assert.NoError(t, err)

	cells := m.WalkableCells()
	assert.Equal(t, len(cells), floodCount(m.grid, cells[0]))
	assert.Equal(t, 36-1, logicalEdgeCount(m.grid))
}

func TestGenerateDegenerateDimensions(t *testing.T) {
	m, err := Generate(Config{Cols: 0, Rows: -3, Algorithm: Wilson, Seed: 1})
	assert.NoError(t, err)

	// Clamped to a single-cell maze: one passage, no edges.
	assert.Equal(t, 1, logicalCellCount(m.grid))
	assert.Equal(t, 0, logicalEdgeCount(m.grid))
	assert.True(t, m.IsPassage(m.StartPosition().X, m.StartPosition().Y))
}

func TestGenerateOversizedDimensions(t *testing.T) {
	_, err := Generate(Config{Cols: maxMazeDimenssion + 1, Rows: 5, Algorithm: Prim})
	assert.Error(t, err)
}

func TestMazeStringMarksEndpoints(t *testing.T) {
	m, err := Generate(Config{Cols: 5, Rows: 5, Algorithm: Sidewinder, Seed: 99})
	assert.NoError(t, err)

	rendered := m.String()
	assert.Contains(t, rendered, "S")
	assert.Contains(t, rendered, "E")
	assert.Equal(t, fmt.Sprintf("%c", rendered[0]), "#") // boundary ring
}
