package maze

import "math/rand"

// carveBinaryTree links every logical cell to its northern or western
// neighbor, chosen at random where both exist. The top row becomes a single
// west-east corridor and the left column a single north-south one.
func carveBinaryTree(g *Grid, cols, rows int, rng *rand.Rand) {
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			g.carveCell(cx, cy)

			canNorth := cy > 0
			canWest := cx > 0
			switch {
			case canNorth && canWest:
				if rng.Intn(2) == 0 {
					g.carveBetween(cx, cy, cx, cy-1)
				} else {
					g.carveBetween(cx, cy, cx-1, cy)
				}
			case canNorth:
				g.carveBetween(cx, cy, cx, cy-1)
			case canWest:
				g.carveBetween(cx, cy, cx-1, cy)
			}
		}
	}
}
