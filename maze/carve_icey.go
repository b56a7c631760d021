package maze

import (
	"math/rand"

	"github.com/beka-birhanu/endless-maze-api/game"
	"github.com/zyedidia/generic/mapset"
)

// carveIcey is the iterative depth-first backtracker: walk to a random
// unvisited neighbor, carving as you go, and back up whenever you run out
// of fresh cells. Produces long winding corridors with few junctions.
func carveIcey(g *Grid, cols, rows int, rng *rand.Rand) {
	start := game.Position{X: rng.Intn(cols), Y: rng.Intn(rows)}
	g.carveCell(start.X, start.Y)

	visited := mapset.New[game.Position]()
	visited.Put(start)

	stack := []game.Position{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var candidates []game.Position
		for _, d := range orthogonal {
			n := game.Position{X: cur.X + d.X, Y: cur.Y + d.Y}
			if n.X >= 0 && n.X < cols && n.Y >= 0 && n.Y < rows && !visited.Has(n) {
				candidates = append(candidates, n)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		g.carveBetween(cur.X, cur.Y, next.X, next.Y)
		visited.Put(next)
		stack = append(stack, next)
	}
}
