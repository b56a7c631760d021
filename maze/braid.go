package maze

import (
	"math/rand"

	"github.com/beka-birhanu/endless-maze-api/game"
)

// Braid removes dead ends from a carved grid with the given probability.
// Every passage cell with exactly one passage neighbor is a dead end; each
// one independently rolls against percentage and, on success, has one of
// its eligible walls carved open, turning the dead end into part of a loop.
//
// Only walls separating the dead end from another passage cell are
// eligible; the outer boundary is never opened. Braiding strictly adds
// passages, so connectivity established by the carver is preserved. At 100
// a dead end can still survive when every eligible wall was consumed by an
// earlier carve in the same pass; that saturation is intentional.
func Braid(g *Grid, percentage int, rng *rand.Rand) {
	if percentage <= 0 {
		return
	}

	for _, cell := range g.deadEnds() {
		if rng.Intn(100) >= percentage {
			continue
		}
		candidates := g.braidableWalls(cell)
		if len(candidates) == 0 {
			continue
		}
		w := candidates[rng.Intn(len(candidates))]
		g.carve(w.X, w.Y)
	}
}

// deadEnds scans the full grid once and collects every dead-end cell in
// row-major order.
func (g *Grid) deadEnds() []game.Position {
	var result []game.Position
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[g.index(x, y)] != Passage {
				continue
			}
			if len(g.passageNeighbors(x, y)) == 1 {
				result = append(result, game.Position{X: x, Y: y})
			}
		}
	}
	return result
}

// braidableWalls returns the wall neighbors of cell whose far side is
// another passage, i.e. walls whose removal joins two walkable cells.
func (g *Grid) braidableWalls(cell game.Position) []game.Position {
	var result []game.Position
	for _, d := range orthogonal {
		wx, wy := cell.X+d.X, cell.Y+d.Y
		if !g.IsWall(wx, wy) || !g.InBounds(wx, wy) {
			continue
		}
		if g.IsPassage(wx+d.X, wy+d.Y) {
			result = append(result, game.Position{X: wx, Y: wy})
		}
	}
	return result
}
