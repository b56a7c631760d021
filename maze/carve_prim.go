package maze

import (
	"math/rand"

	"github.com/beka-birhanu/endless-maze-api/game"
	"github.com/zyedidia/generic/mapset"
)

// carvePrim grows the maze from a random cell by repeatedly picking a random
// frontier cell (an unvisited neighbor of the carved region) and linking it
// to a random already-carved neighbor.
func carvePrim(g *Grid, cols, rows int, rng *rand.Rand) {
	start := game.Position{X: rng.Intn(cols), Y: rng.Intn(rows)}
	g.carveCell(start.X, start.Y)

	inTree := mapset.New[game.Position]()
	inTree.Put(start)
	queued := mapset.New[game.Position]()

	var frontier []game.Position
	pushFrontier := func(p game.Position) {
		for _, d := range orthogonal {
			n := game.Position{X: p.X + d.X, Y: p.Y + d.Y}
			if n.X < 0 || n.X >= cols || n.Y < 0 || n.Y >= rows {
				continue
			}
			if inTree.Has(n) || queued.Has(n) {
				continue
			}
			queued.Put(n)
			frontier = append(frontier, n)
		}
	}
	pushFrontier(start)

	for len(frontier) > 0 {
		i := rng.Intn(len(frontier))
		cell := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		var carved []game.Position
		for _, d := range orthogonal {
			n := game.Position{X: cell.X + d.X, Y: cell.Y + d.Y}
			if inTree.Has(n) {
				carved = append(carved, n)
			}
		}
		link := carved[rng.Intn(len(carved))]
		g.carveBetween(cell.X, cell.Y, link.X, link.Y)
		inTree.Put(cell)
		pushFrontier(cell)
	}
}
