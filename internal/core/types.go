package core

// Size describes the dimensions of a grid in cells.
type Size struct {
	W int
	H int
}

// Empty reports whether the size describes a degenerate grid.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Cell is the value stored at a board coordinate.
type Cell = uint8

const (
	// Dead is the value of an empty cell.
	Dead Cell = 0
	// Alive is the value of a populated cell.
	Alive Cell = 1
)

// Point addresses a cell by column and row.
type Point struct {
	Col int
	Row int
}
