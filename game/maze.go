// Package game defines the contracts between the maze engine and the rest of
// the system. Consumers (level service, API, collision, rendering clients)
// only ever see the read surface declared here; the engine exposes no
// mutation once a maze has been generated.
package game

// Position is a cell coordinate inside a maze grid, 0-indexed, x growing
// east and y growing south.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid is the read-only wall/passage query surface of a generated grid.
type Grid interface {
	// IsWall reports whether the cell at (x, y) is a wall. Out-of-bounds
	// coordinates count as walls.
	IsWall(x, y int) bool

	// IsPassage reports whether the cell at (x, y) is a walkable passage.
	IsPassage(x, y int) bool

	// Dimensions returns the grid width and height in cells.
	Dimensions() (width, height int)

	// WalkableCells enumerates every passage cell in row-major order.
	WalkableCells() []Position
}

// Maze is a fully generated maze: a grid plus the start/exit pair chosen by
// the endpoint selector. Both positions are guaranteed to be passage cells.
type Maze interface {
	Grid

	// StartPosition returns the selected entrance cell.
	StartPosition() Position

	// ExitPosition returns the selected goal cell.
	ExitPosition() Position

	// String renders the maze as ASCII, one rune per cell.
	String() string
}
