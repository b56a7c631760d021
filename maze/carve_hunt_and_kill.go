package maze

import (
	"math/rand"

	"github.com/beka-birhanu/endless-maze-api/game"
	"github.com/zyedidia/generic/mapset"
)

// carveHuntAndKill random-walks through unvisited cells, carving as it goes.
// When the walk corners itself it "hunts": scans the grid top-left to
// bottom-right for an unvisited cell bordering the carved region, links it
// in, and resumes walking from there.
func carveHuntAndKill(g *Grid, cols, rows int, rng *rand.Rand) {
	cur := game.Position{X: rng.Intn(cols), Y: rng.Intn(rows)}
	g.carveCell(cur.X, cur.Y)

	visited := mapset.New[game.Position]()
	visited.Put(cur)

	inBounds := func(p game.Position) bool {
		return p.X >= 0 && p.X < cols && p.Y >= 0 && p.Y < rows
	}

	for {
		var fresh []game.Position
		for _, d := range orthogonal {
			n := game.Position{X: cur.X + d.X, Y: cur.Y + d.Y}
			if inBounds(n) && !visited.Has(n) {
				fresh = append(fresh, n)
			}
		}

		if len(fresh) > 0 {
			next := fresh[rng.Intn(len(fresh))]
			g.carveBetween(cur.X, cur.Y, next.X, next.Y)
			visited.Put(next)
			cur = next
			continue
		}

		// Hunt phase.
		found := false
		for cy := 0; cy < rows && !found; cy++ {
			for cx := 0; cx < cols && !found; cx++ {
				cell := game.Position{X: cx, Y: cy}
				if visited.Has(cell) {
					continue
				}
				var carved []game.Position
				for _, d := range orthogonal {
					n := game.Position{X: cx + d.X, Y: cy + d.Y}
					if inBounds(n) && visited.Has(n) {
						carved = append(carved, n)
					}
				}
				if len(carved) == 0 {
					continue
				}
				link := carved[rng.Intn(len(carved))]
				g.carveBetween(cell.X, cell.Y, link.X, link.Y)
				visited.Put(cell)
				cur = cell
				found = true
			}
		}
		if !found {
			return
		}
	}
}
