package maze

import (
	"github.com/beka-birhanu/endless-maze-api/game"
)

// CellState is the state of a single grid cell.
type CellState uint8

const (
	// Wall cells are not walkable.
	Wall CellState = iota
	// Passage cells are walkable.
	Passage
)

// orthogonal lists the four neighbor offsets in a fixed order (N, E, S, W)
// so that carving is reproducible for a given seed.
var orthogonal = []game.Position{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

// Grid is a rectangular lattice of wall/passage cells backed by a flat
// slice indexed y*width+x. Logical maze cells sit at odd/odd coordinates,
// the cells between them are corridors, and the outermost ring is the
// boundary wall. A Grid is created fully walled and carved in place; it is
// never resized.
type Grid struct {
	width  int
	height int
	cells  []CellState
}

// NewGrid returns a fully walled grid of the given lattice dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
	}
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsWall reports whether the cell at (x, y) is a wall. Out-of-bounds
// coordinates count as walls so neighbor scans need no separate guard.
func (g *Grid) IsWall(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.cells[g.index(x, y)] == Wall
}

// IsPassage reports whether the cell at (x, y) is a walkable passage.
func (g *Grid) IsPassage(x, y int) bool {
	return g.InBounds(x, y) && g.cells[g.index(x, y)] == Passage
}

// Dimensions returns the lattice width and height.
func (g *Grid) Dimensions() (int, int) {
	return g.width, g.height
}

// WalkableCells enumerates every passage cell in row-major order.
func (g *Grid) WalkableCells() []game.Position {
	var cells []game.Position
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[g.index(x, y)] == Passage {
				cells = append(cells, game.Position{X: x, Y: y})
			}
		}
	}
	return cells
}

// PassageCount returns the number of walkable cells.
func (g *Grid) PassageCount() int {
	count := 0
	for _, c := range g.cells {
		if c == Passage {
			count++
		}
	}
	return count
}

func (g *Grid) carve(x, y int) {
	g.cells[g.index(x, y)] = Passage
}

func (g *Grid) fill(x, y int) {
	g.cells[g.index(x, y)] = Wall
}

// passageNeighbors returns the orthogonally adjacent passage cells of (x, y)
// in N, E, S, W order.
func (g *Grid) passageNeighbors(x, y int) []game.Position {
	var result []game.Position
	for _, d := range orthogonal {
		if g.IsPassage(x+d.X, y+d.Y) {
			result = append(result, game.Position{X: x + d.X, Y: y + d.Y})
		}
	}
	return result
}

// logical <-> lattice mapping. A logical cell (cx, cy) of the cols×rows maze
// lives at lattice coordinate (2cx+1, 2cy+1).

func latticeOf(cx, cy int) game.Position {
	return game.Position{X: 2*cx + 1, Y: 2*cy + 1}
}

// carveCell opens the lattice cell of logical cell (cx, cy).
func (g *Grid) carveCell(cx, cy int) {
	p := latticeOf(cx, cy)
	g.carve(p.X, p.Y)
}

// carveBetween opens both logical cells and the corridor between them.
// The two logical cells must be orthogonally adjacent.
func (g *Grid) carveBetween(ax, ay, bx, by int) {
	a := latticeOf(ax, ay)
	b := latticeOf(bx, by)
	g.carve(a.X, a.Y)
	g.carve(b.X, b.Y)
	g.carve((a.X+b.X)/2, (a.Y+b.Y)/2)
}

// fillBetween closes the corridor between two adjacent logical cells,
// leaving the cells themselves open. Used by the division carver.
func (g *Grid) fillBetween(ax, ay, bx, by int) {
	a := latticeOf(ax, ay)
	b := latticeOf(bx, by)
	g.fill((a.X+b.X)/2, (a.Y+b.Y)/2)
}

// linked reports whether two adjacent logical cells have an open corridor.
func (g *Grid) linked(ax, ay, bx, by int) bool {
	a := latticeOf(ax, ay)
	b := latticeOf(bx, by)
	return g.IsPassage((a.X+b.X)/2, (a.Y+b.Y)/2)
}
