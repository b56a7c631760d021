// Package difficulty maps a level number onto maze generation parameters.
// The mapping is a pure function of the level: the same level always yields
// the same descriptor, so a stored level number is enough to regenerate a
// player's current maze shape on resume.
package difficulty

import (
	"github.com/beka-birhanu/endless-maze-api/maze"
)

// Descriptor is the per-level generation recipe handed to the maze engine.
// It is derived metadata, recomputed on demand and cheap to persist; the
// maze graph itself never is.
type Descriptor struct {
	Tier         string         `json:"tier"`
	Level        int            `json:"level"`
	Cols         int            `json:"cols"`
	Rows         int            `json:"rows"`
	BraidPercent int            `json:"braidPercent"`
	Algorithm    maze.Algorithm `json:"algorithm"`
}

// maxMazeSize caps the maze cell dimensions regardless of level, keeping
// generation cost bounded (the engine pipeline is blocking and the border
// BFS grows quadratic-ish with size).
const maxMazeSize = 40

// tier is a named band of levels sharing an algorithm pool and braid range.
type tier struct {
	name       string
	lastLevel  int // inclusive; the final tier uses 0 for "unbounded"
	algorithms []maze.Algorithm
	braidMin   int
	braidMax   int
}

var tiers = []tier{
	{
		name:       "novice",
		lastLevel:  5,
		algorithms: []maze.Algorithm{maze.BinaryTree, maze.Sidewinder},
		braidMin:   0,
		braidMax:   0,
	},
	{
		name:       "explorer",
		lastLevel:  12,
		algorithms: []maze.Algorithm{maze.Eller, maze.GrowingTree, maze.Icey},
		braidMin:   5,
		braidMax:   15,
	},
	{
		name:       "pathfinder",
		lastLevel:  20,
		algorithms: []maze.Algorithm{maze.Prim, maze.Kruskal, maze.DividedDivision},
		braidMin:   15,
		braidMax:   25,
	},
	{
		name:       "veteran",
		lastLevel:  30,
		algorithms: []maze.Algorithm{maze.HuntAndKill, maze.GrowingTreeMixed, maze.Wilson},
		braidMin:   25,
		braidMax:   35,
	},
	{
		name:      "endless",
		lastLevel: 0,
		algorithms: []maze.Algorithm{
			maze.Wilson, maze.HuntAndKill, maze.Kruskal,
			maze.GrowingTreeMixed, maze.DividedDivision,
		},
		braidMin: 35,
		braidMax: 50,
	},
}

// ForLevel returns the difficulty descriptor for a level. Levels below 1
// are treated as level 1. Size and braid percentage grow with the level and
// saturate at the tier/global caps, so the sequence is endless but bounded.
func ForLevel(level int) Descriptor {
	if level < 1 {
		level = 1
	}

	t := tiers[len(tiers)-1]
	firstLevel := 1
	for _, candidate := range tiers {
		if candidate.lastLevel == 0 || level <= candidate.lastLevel {
			t = candidate
			break
		}
		firstLevel = candidate.lastLevel + 1
	}

	size := min(6+level, maxMazeSize)
	progress := level - firstLevel
	braid := min(t.braidMin+2*progress, t.braidMax)

	return Descriptor{
		Tier:         t.name,
		Level:        level,
		Cols:         size,
		Rows:         size,
		BraidPercent: braid,
		Algorithm:    t.algorithms[progress%len(t.algorithms)],
	}
}
