package core

import "math/rand/v2"

// Board stores a 2D grid of cells in row-major order. Its dimensions never
// change after construction.
type Board struct {
	W, H int
	data []Cell
}

// NewBoard allocates a board with every cell dead. Negative dimensions are
// treated as zero.
func NewBoard(w, h int) *Board {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Board{W: w, H: h, data: make([]Cell, w*h)}
}

// RandomBoard allocates a board where every cell is independently alive with
// probability one half.
func RandomBoard(r *rand.Rand, w, h int) *Board {
	b := NewBoard(w, h)
	FillBinary(r, b.data)
	return b
}

// Size returns the board dimensions.
func (b *Board) Size() Size { return Size{W: b.W, H: b.H} }

// Cells exposes the backing slice so renderers can read values directly.
func (b *Board) Cells() []Cell { return b.data }

// Index returns the linear slice index for coordinates (x, y).
func (b *Board) Index(x, y int) int { return y*b.W + x }

// InBounds reports whether (x, y) addresses a cell on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.W && y < b.H
}

// Get returns the cell at (x, y), or Dead when outside the board.
func (b *Board) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Dead
	}
	return b.data[b.Index(x, y)]
}

// Set writes v at (x, y). Writes outside the board are ignored.
func (b *Board) Set(x, y int, v Cell) {
	if !b.InBounds(x, y) {
		return
	}
	if v != Dead {
		v = Alive
	}
	b.data[b.Index(x, y)] = v
}

// Population counts the alive cells.
func (b *Board) Population() int {
	n := 0
	for _, c := range b.data {
		if c != Dead {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{W: b.W, H: b.H, data: append([]Cell(nil), b.data...)}
}

// Clear kills every cell.
func (b *Board) Clear() {
	for i := range b.data {
		b.data[i] = Dead
	}
}
