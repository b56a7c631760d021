package maze

import "math/rand"

// carveEller carves the maze one row at a time, tracking which cells of the
// current row belong to the same connected set. Adjacent cells of different
// sets are randomly merged east-west; every set then drops at least one
// passage south into the next row. The final row merges all remaining sets
// so the whole maze ends up connected.
func carveEller(g *Grid, cols, rows int, rng *rand.Rand) {
	set := make([]int, cols)
	nextID := 1
	for cx := range set {
		set[cx] = nextID
		nextID++
	}

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			g.carveCell(cx, cy)
		}

		lastRow := cy == rows-1
		for cx := 0; cx < cols-1; cx++ {
			if set[cx] == set[cx+1] {
				continue
			}
			if lastRow || rng.Intn(2) == 0 {
				old := set[cx+1]
				for i := range set {
					if set[i] == old {
						set[i] = set[cx]
					}
				}
				g.carveBetween(cx, cy, cx+1, cy)
			}
		}
		if lastRow {
			break
		}

		// Group columns by set in order of first appearance so the
		// carving sequence stays deterministic per seed.
		var order []int
		members := make(map[int][]int)
		for cx, s := range set {
			if _, seen := members[s]; !seen {
				order = append(order, s)
			}
			members[s] = append(members[s], cx)
		}

		next := make([]int, cols)
		for _, s := range order {
			columns := members[s]
			rng.Shuffle(len(columns), func(i, j int) {
				columns[i], columns[j] = columns[j], columns[i]
			})
			drops := 1 + rng.Intn(len(columns))
			for _, cx := range columns[:drops] {
				g.carveBetween(cx, cy, cx, cy+1)
				next[cx] = s
			}
		}
		for cx := range next {
			if next[cx] == 0 {
				next[cx] = nextID
				nextID++
			}
		}
		set = next
	}
}
