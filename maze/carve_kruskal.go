package maze

import "math/rand"

// disjointSet is the union-find structure backing the Kruskal carver, with
// path compression and union by rank.
type disjointSet struct {
	parent *disjointSet
	rank   int
}

func newDisjointSet() *disjointSet {
	s := &disjointSet{}
	s.parent = s
	return s
}

func (s *disjointSet) find() *disjointSet {
	if s != s.parent {
		s.parent = s.parent.find()
	}
	return s.parent
}

func (s *disjointSet) union(other *disjointSet) {
	x := s.find()
	y := other.find()
	if x == y {
		return
	}
	if x.rank > y.rank {
		y.parent = x
		return
	}
	x.parent = y
	if x.rank == y.rank {
		y.rank++
	}
}

type cellEdge struct {
	ax, ay int
	bx, by int
}

// carveKruskal shuffles every potential wall between adjacent cells and
// knocks it down whenever the two sides are not yet connected, per the
// union-find sets.
func carveKruskal(g *Grid, cols, rows int, rng *rand.Rand) {
	sets := make([]*disjointSet, cols*rows)
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			g.carveCell(cx, cy)
			sets[cy*cols+cx] = newDisjointSet()
		}
	}

	var edges []cellEdge
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			if cx < cols-1 {
				edges = append(edges, cellEdge{cx, cy, cx + 1, cy})
			}
			if cy < rows-1 {
				edges = append(edges, cellEdge{cx, cy, cx, cy + 1})
			}
		}
	}
	rng.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	for _, e := range edges {
		a := sets[e.ay*cols+e.ax]
		b := sets[e.by*cols+e.bx]
		if a.find() == b.find() {
			continue
		}
		a.union(b)
		g.carveBetween(e.ax, e.ay, e.bx, e.by)
	}
}
