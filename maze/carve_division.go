package maze

import "math/rand"

// carveDividedDivision is recursive division: open the whole cols×rows area
// first, then split it with a wall carrying a single gap and recurse into
// both halves until no region can be divided further.
func carveDividedDivision(g *Grid, cols, rows int, rng *rand.Rand) {
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			g.carveCell(cx, cy)
			if cx < cols-1 {
				g.carveBetween(cx, cy, cx+1, cy)
			}
			if cy < rows-1 {
				g.carveBetween(cx, cy, cx, cy+1)
			}
		}
	}
	divide(g, rng, 0, 0, cols, rows)
}

func divide(g *Grid, rng *rand.Rand, x, y, w, h int) {
	if w < 2 && h < 2 {
		return
	}

	// Split across the longer axis; tie broken at random. Keeps regions
	// from degenerating into long slivers.
	horizontal := h > w || (h == w && rng.Intn(2) == 0)
	if h < 2 {
		horizontal = false
	} else if w < 2 {
		horizontal = true
	}

	if horizontal {
		wallY := y + 1 + rng.Intn(h-1) // wall between rows wallY-1 and wallY
		gap := x + rng.Intn(w)
		for cx := x; cx < x+w; cx++ {
			if cx != gap {
				g.fillBetween(cx, wallY-1, cx, wallY)
			}
		}
		divide(g, rng, x, y, w, wallY-y)
		divide(g, rng, x, wallY, w, h-(wallY-y))
	} else {
		wallX := x + 1 + rng.Intn(w-1)
		gap := y + rng.Intn(h)
		for cy := y; cy < y+h; cy++ {
			if cy != gap {
				g.fillBetween(wallX-1, cy, wallX, cy)
			}
		}
		divide(g, rng, x, y, wallX-x, h)
		divide(g, rng, wallX, y, w-(wallX-x), h)
	}
}
