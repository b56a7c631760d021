package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// carvedGrid builds a deterministic perfect maze straight through a carver,
// so braid runs can be compared against identical topology.
func carvedGrid(t *testing.T, carveSeed int64) *Grid {
	t.Helper()
	g := NewGrid(2*12+1, 2*12+1)
	carveHuntAndKill(g, 12, 12, rand.New(rand.NewSource(carveSeed)))
	return g
}

func TestBraid(t *testing.T) {
	t.Run("zero percent is a no-op", func(t *testing.T) {
		g := carvedGrid(t, 5)
		before := g.PassageCount()

		Braid(g, 0, rand.New(rand.NewSource(1)))
		assert.Equal(t, before, g.PassageCount())

		Braid(g, -10, rand.New(rand.NewSource(1)))
		assert.Equal(t, before, g.PassageCount())
	})

	t.Run("full braid reduces dead ends", func(t *testing.T) {
		g := carvedGrid(t, 5)
		before := len(g.deadEnds())
		assert.Greater(t, before, 0) // perfect mazes have dead ends

		Braid(g, 100, rand.New(rand.NewSource(1)))
		assert.Less(t, len(g.deadEnds()), before)
	})

	t.Run("braiding only adds passages", func(t *testing.T) {
		g := carvedGrid(t, 5)
		before := g.PassageCount()

		Braid(g, 100, rand.New(rand.NewSource(1)))
		assert.Greater(t, g.PassageCount(), before)
	})

	t.Run("passage count grows with percentage", func(t *testing.T) {
		low := carvedGrid(t, 5)
		high := carvedGrid(t, 5)

		Braid(low, 20, rand.New(rand.NewSource(9)))
		Braid(high, 80, rand.New(rand.NewSource(9)))
		assert.GreaterOrEqual(t, high.PassageCount(), low.PassageCount())
	})

	t.Run("connectivity is preserved", func(t *testing.T) {
		g := carvedGrid(t, 5)
		Braid(g, 100, rand.New(rand.NewSource(1)))

		cells := g.WalkableCells()
		assert.Equal(t, len(cells), floodCount(g, cells[0]))
	})

	t.Run("full braid introduces cycles", func(t *testing.T) {
		g := carvedGrid(t, 5)
		cellCount := logicalCellCount(g)
		assert.Equal(t, cellCount-1, logicalEdgeCount(g))

		Braid(g, 100, rand.New(rand.NewSource(1)))
		assert.Greater(t, logicalEdgeCount(g), cellCount-1)
	})
}
