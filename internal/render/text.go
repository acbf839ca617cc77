package render

import (
	"bufio"
	"fmt"
	"io"

	"lifepaint/internal/core"
)

// Text writes boards as rows of characters. It is used by headless runs.
type Text struct {
	w   io.Writer
	on  byte
	off byte

	// Frames counts RenderBoard calls.
	Frames int
}

// NewText returns a text renderer writing '#' for alive and '.' for dead
// cells.
func NewText(w io.Writer) *Text {
	return &Text{w: w, on: '#', off: '.'}
}

// RenderGrid prints the grid dimensions once.
func (t *Text) RenderGrid(g core.Geometry) {
	fmt.Fprintf(t.w, "grid %dx%d cell=%dpx\n", g.Cols, g.Rows, g.CellPx)
}

// RenderBoard counts the frame. Use Dump to print the board itself.
func (t *Text) RenderBoard(b *core.Board, _ core.Geometry) {
	t.Frames++
}

// Dump writes every row of b followed by a newline.
func (t *Text) Dump(b *core.Board) error {
	bw := bufio.NewWriter(t.w)
	row := make([]byte, b.W+1)
	row[b.W] = '\n'
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			row[x] = t.off
			if b.Get(x, y) == core.Alive {
				row[x] = t.on
			}
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}
