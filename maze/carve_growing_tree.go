package maze

import (
	"math/rand"

	"github.com/beka-birhanu/endless-maze-api/game"
	"github.com/zyedidia/generic/mapset"
)

// carveGrowingTreeNewest always expands the most recently added active cell,
// which behaves like the depth-first backtracker but keeps dead branches on
// the active list until exhausted.
func carveGrowingTreeNewest(g *Grid, cols, rows int, rng *rand.Rand) {
	carveGrowingTree(g, cols, rows, rng, func(n int) int { return n - 1 })
}

// carveGrowingTreeMixed expands the newest active cell half the time and a
// random one otherwise, blending corridor-heavy and branch-heavy textures.
func carveGrowingTreeMixed(g *Grid, cols, rows int, rng *rand.Rand) {
	carveGrowingTree(g, cols, rows, rng, func(n int) int {
		if rng.Intn(2) == 0 {
			return n - 1
		}
		return rng.Intn(n)
	})
}

func carveGrowingTree(g *Grid, cols, rows int, rng *rand.Rand, pick func(n int) int) {
	start := game.Position{X: rng.Intn(cols), Y: rng.Intn(rows)}
	g.carveCell(start.X, start.Y)

	visited := mapset.New[game.Position]()
	visited.Put(start)

	active := []game.Position{start}
	for len(active) > 0 {
		i := pick(len(active))
		cur := active[i]

		var fresh []game.Position
		for _, d := range orthogonal {
			n := game.Position{X: cur.X + d.X, Y: cur.Y + d.Y}
			if n.X >= 0 && n.X < cols && n.Y >= 0 && n.Y < rows && !visited.Has(n) {
				fresh = append(fresh, n)
			}
		}
		if len(fresh) == 0 {
			active = append(active[:i], active[i+1:]...)
			continue
		}

		next := fresh[rng.Intn(len(fresh))]
		g.carveBetween(cur.X, cur.Y, next.X, next.Y)
		visited.Put(next)
		active = append(active, next)
	}
}
