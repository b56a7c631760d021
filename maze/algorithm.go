package maze

import "math/rand"

// Algorithm identifies one of the carving algorithms. The set is closed:
// unknown keys degrade to DefaultAlgorithm instead of failing generation,
// since the difficulty table is the source of truth for valid keys and any
// drift should not take a level down with it.
type Algorithm string

const (
	BinaryTree       Algorithm = "binary-tree"
	Sidewinder       Algorithm = "sidewinder"
	Eller            Algorithm = "eller"
	Icey             Algorithm = "icey"
	DividedDivision  Algorithm = "divided-division"
	Prim             Algorithm = "prim"
	Kruskal          Algorithm = "kruskal"
	HuntAndKill      Algorithm = "hunt-and-kill"
	Wilson           Algorithm = "wilson"
	GrowingTree      Algorithm = "growing-tree"
	GrowingTreeMixed Algorithm = "growing-tree-mixed"
)

// DefaultAlgorithm is the fallback carver for unknown keys.
const DefaultAlgorithm = Wilson

// A carveFunc carves a perfect maze of cols×rows logical cells into the
// grid: after it returns, every logical cell is open and reachable from
// every other through exactly one path.
type carveFunc func(g *Grid, cols, rows int, rng *rand.Rand)

var carvers = map[Algorithm]carveFunc{
	BinaryTree:       carveBinaryTree,
	Sidewinder:       carveSidewinder,
	Eller:            carveEller,
	Icey:             carveIcey,
	DividedDivision:  carveDividedDivision,
	Prim:             carvePrim,
	Kruskal:          carveKruskal,
	HuntAndKill:      carveHuntAndKill,
	Wilson:           carveWilson,
	GrowingTree:      carveGrowingTreeNewest,
	GrowingTreeMixed: carveGrowingTreeMixed,
}

// Algorithms returns every registered algorithm key.
func Algorithms() []Algorithm {
	return []Algorithm{
		BinaryTree,
		Sidewinder,
		Eller,
		Icey,
		DividedDivision,
		Prim,
		Kruskal,
		HuntAndKill,
		Wilson,
		GrowingTree,
		GrowingTreeMixed,
	}
}

// Known reports whether a is a registered algorithm key.
func Known(a Algorithm) bool {
	_, ok := carvers[a]
	return ok
}
