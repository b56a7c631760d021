package maze

import (
	"log"

	"github.com/beka-birhanu/endless-maze-api/game"
	"github.com/zyedidia/generic/queue"
)

// borderBand is how close to a grid edge a cell must be to qualify as a
// start/exit candidate.
const borderBand = 2

// selectEndpoints picks the start/exit pair among border cells maximizing
// their shortest-path distance. It runs one BFS per border cell, which is
// O(B·C) for B border cells over C total cells; B is only the outer ring
// and the whole thing runs once per level, not per frame.
//
// Ties keep the first pair in enumeration order, so selection over a fixed
// grid is fully deterministic. Of the winning pair, the cell with the
// smaller x+y sum (closer to the origin corner) becomes the start.
func selectEndpoints(g *Grid, logger *log.Logger) (start, exit game.Position) {
	border := g.borderCells()
	if len(border) < 2 {
		logger.Printf("[WARN] fewer than 2 border cells, using corner fallback endpoints")
		return g.fallbackEndpoints()
	}

	bestDist := -1
	var bestA, bestB game.Position
	for i, a := range border {
		dist := g.distancesFrom(a)
		for _, b := range border[i+1:] {
			if d := dist[g.index(b.X, b.Y)]; d > bestDist {
				bestDist = d
				bestA, bestB = a, b
			}
		}
	}

	if bestA.X+bestA.Y <= bestB.X+bestB.Y {
		return bestA, bestB
	}
	return bestB, bestA
}

// borderCells enumerates, in row-major order, every passage cell within
// borderBand cells of a grid edge.
func (g *Grid) borderCells() []game.Position {
	var result []game.Position
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.nearBorder(x, y) {
				continue
			}
			if g.cells[g.index(x, y)] == Passage {
				result = append(result, game.Position{X: x, Y: y})
			}
		}
	}
	return result
}

func (g *Grid) nearBorder(x, y int) bool {
	return x <= borderBand || y <= borderBand ||
		x >= g.width-1-borderBand || y >= g.height-1-borderBand
}

// distancesFrom returns BFS hop counts from src over the passage graph as a
// flat slice parallel to the grid cells; unreachable cells stay -1.
func (g *Grid) distancesFrom(src game.Position) []int {
	dist := make([]int, len(g.cells))
	for i := range dist {
		dist[i] = -1
	}
	dist[g.index(src.X, src.Y)] = 0

	frontier := queue.New[game.Position]()
	frontier.Enqueue(src)
	for !frontier.Empty() {
		cur := frontier.Dequeue()
		for _, d := range orthogonal {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if !g.IsPassage(nx, ny) || dist[g.index(nx, ny)] != -1 {
				continue
			}
			dist[g.index(nx, ny)] = dist[g.index(cur.X, cur.Y)] + 1
			frontier.Enqueue(game.Position{X: nx, Y: ny})
		}
	}
	return dist
}

// fallbackEndpoints returns the passages nearest the top-left and
// bottom-right corners. On a single-passage grid both collapse onto the
// same cell; degenerate by definition, but never a crash.
func (g *Grid) fallbackEndpoints() (game.Position, game.Position) {
	cells := g.WalkableCells()
	start := cells[0]
	exit := cells[0]
	bestStart := start.X + start.Y
	bestExit := (g.width - 1 - exit.X) + (g.height - 1 - exit.Y)
	for _, c := range cells[1:] {
		if d := c.X + c.Y; d < bestStart {
			bestStart = d
			start = c
		}
		if d := (g.width - 1 - c.X) + (g.height - 1 - c.Y); d < bestExit {
			bestExit = d
			exit = c
		}
	}
	return start, exit
}
