package maze

import (
	"math/rand"

	"github.com/beka-birhanu/endless-maze-api/game"
	"github.com/zyedidia/generic/mapset"
)

// carveWilson runs loop-erased random walks: start a walk at a random
// unvisited cell, record only the last exit taken from each cell (which
// erases loops implicitly), and once the walk hits the carved region, carve
// the surviving path into the maze. Produces an unbiased uniform spanning
// tree, at the cost of slow early walks on large grids.
func carveWilson(g *Grid, cols, rows int, rng *rand.Rand) {
	visited := mapset.New[game.Position]()

	first := game.Position{X: rng.Intn(cols), Y: rng.Intn(rows)}
	g.carveCell(first.X, first.Y)
	visited.Put(first)

	total := cols * rows
	for visited.Size() < total {
		start := randomUnvisited(cols, rows, visited, rng)

		// Last-exit directions recorded during the walk. Overwriting a
		// cell's entry when the walk revisits it is what erases loops.
		lastExit := make(map[game.Position]game.Position)
		cell := start
		for !visited.Has(cell) {
			next := randomNeighbor(cell, cols, rows, rng)
			lastExit[cell] = next
			cell = next
		}

		// Carve the loop-erased path from the walk start into the tree.
		for cell = start; !visited.Has(cell); {
			next := lastExit[cell]
			g.carveBetween(cell.X, cell.Y, next.X, next.Y)
			visited.Put(cell)
			cell = next
		}
	}
}

// randomUnvisited keeps drawing random cells until it finds one outside the
// carved region.
func randomUnvisited(cols, rows int, visited mapset.Set[game.Position], rng *rand.Rand) game.Position {
	for {
		p := game.Position{X: rng.Intn(cols), Y: rng.Intn(rows)}
		if !visited.Has(p) {
			return p
		}
	}
}

func randomNeighbor(p game.Position, cols, rows int, rng *rand.Rand) game.Position {
	var result []game.Position
	for _, d := range orthogonal {
		n := game.Position{X: p.X + d.X, Y: p.Y + d.Y}
		if n.X >= 0 && n.X < cols && n.Y >= 0 && n.Y < rows {
			result = append(result, n)
		}
	}
	return result[rng.Intn(len(result))]
}
