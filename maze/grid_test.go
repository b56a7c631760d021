package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid(t *testing.T) {
	t.Run("starts fully walled", func(t *testing.T) {
		g := NewGrid(7, 5)
		w, h := g.Dimensions()
		assert.Equal(t, 7, w)
		assert.Equal(t, 5, h)
		assert.Equal(t, 0, g.PassageCount())
		assert.Empty(t, g.WalkableCells())
	})

	t.Run("out of bounds counts as wall", func(t *testing.T) {
		g := NewGrid(3, 3)
		assert.True(t, g.IsWall(-1, 0))
		assert.True(t, g.IsWall(0, 3))
		assert.False(t, g.IsPassage(3, 3))
	})

	t.Run("carveBetween opens both cells and the corridor", func(t *testing.T) {
		g := NewGrid(5, 5) // 2x2 logical cells
		g.carveBetween(0, 0, 1, 0)

		assert.True(t, g.IsPassage(1, 1))
		assert.True(t, g.IsPassage(3, 1))
		assert.True(t, g.IsPassage(2, 1)) // corridor between them
		assert.Equal(t, 3, g.PassageCount())
	})

	t.Run("fillBetween closes only the corridor", func(t *testing.T) {
		g := NewGrid(5, 5)
		g.carveBetween(0, 0, 0, 1)
		g.fillBetween(0, 0, 0, 1)

		assert.True(t, g.IsPassage(1, 1))
		assert.True(t, g.IsPassage(1, 3))
		assert.True(t, g.IsWall(1, 2))
		assert.False(t, g.linked(0, 0, 0, 1))
	})

	t.Run("walkable cells are row-major", func(t *testing.T) {
		g := NewGrid(5, 5)
		g.carveBetween(0, 0, 1, 0)
		cells := g.WalkableCells()

		assert.Len(t, cells, 3)
		for i := 1; i < len(cells); i++ {
			prev, cur := cells[i-1], cells[i]
			assert.True(t, prev.Y < cur.Y || (prev.Y == cur.Y && prev.X < cur.X))
		}
	})
}
