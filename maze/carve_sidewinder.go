package maze

import "math/rand"

// carveSidewinder carves west-east runs of cells, closing each run at a
// random point with a single passage north. The top row has no north to
// carve into and becomes one long corridor.
func carveSidewinder(g *Grid, cols, rows int, rng *rand.Rand) {
	for cy := 0; cy < rows; cy++ {
		runStart := 0
		for cx := 0; cx < cols; cx++ {
			g.carveCell(cx, cy)

			atEastEnd := cx == cols-1
			closeRun := cy > 0 && (atEastEnd || rng.Intn(2) == 0)
			if closeRun {
				pick := runStart + rng.Intn(cx-runStart+1)
				g.carveBetween(pick, cy, pick, cy-1)
				runStart = cx + 1
			} else if !atEastEnd {
				g.carveBetween(cx, cy, cx+1, cy)
			}
		}
	}
}
