//go:build ebiten

package render

import (
	"image/color"

	"lifepaint/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter keeps one image of cell pixels and one of gridlines. Both are
// rebuilt lazily on the next Draw after RenderGrid or RenderBoard.
type GridPainter struct {
	geom core.Geometry

	cells      *ebiten.Image
	buf        []byte
	cellsDirty bool

	lines      *ebiten.Image
	linesDirty bool

	OnColor   color.Color
	OffColor  color.Color
	LineColor color.Color
}

// NewGridPainter returns a painter that draws alive cells black on white with
// grey gridlines.
func NewGridPainter() *GridPainter {
	return &GridPainter{
		OnColor:   color.Black,
		OffColor:  color.White,
		LineColor: color.RGBA{R: 125, G: 125, B: 125, A: 255},
	}
}

// RenderGrid records the layout; the gridlines are drawn once on the next
// Draw.
func (gp *GridPainter) RenderGrid(g core.Geometry) {
	gp.geom = g
	gp.linesDirty = true
	if g.Cols > 0 && g.Rows > 0 {
		gp.buf = make([]byte, 4*g.Cols*g.Rows)
	}
}

// RenderBoard converts the board into pixels. The upload happens on the next
// Draw.
func (gp *GridPainter) RenderBoard(b *core.Board, g core.Geometry) {
	if b.W != g.Cols || b.H != g.Rows || len(gp.buf) != 4*len(b.Cells()) {
		return
	}
	fillBinaryRGBA(gp.buf, b.Cells(), gp.OnColor, gp.OffColor)
	gp.cellsDirty = true
}

// Draw blits the board scaled to the cell size and overlays the gridlines.
func (gp *GridPainter) Draw(dst *ebiten.Image) {
	g := gp.geom
	if g.Cols <= 0 || g.Rows <= 0 || g.CellPx <= 0 {
		return
	}
	if gp.cells == nil {
		gp.cells = ebiten.NewImage(g.Cols, g.Rows)
	}
	if gp.cellsDirty {
		gp.cells.WritePixels(gp.buf)
		gp.cellsDirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.CellPx), float64(g.CellPx))
	dst.DrawImage(gp.cells, op)

	if gp.linesDirty || gp.lines == nil {
		gp.drawLines()
	}
	dst.DrawImage(gp.lines, nil)
}

func (gp *GridPainter) drawLines() {
	g := gp.geom
	w, h := g.PixelSize()
	if gp.lines == nil {
		gp.lines = ebiten.NewImage(w, h)
	}
	gp.lines.Clear()
	for _, y := range gridLines(g.Rows, g.CellPx) {
		vector.StrokeLine(gp.lines, 0, y, float32(w), y, 1, gp.LineColor, false)
	}
	for _, x := range gridLines(g.Cols, g.CellPx) {
		vector.StrokeLine(gp.lines, x, 0, x, float32(h), 1, gp.LineColor, false)
	}
	gp.linesDirty = false
}

// FillCell draws a solid rectangle over the cell at p.
func (gp *GridPainter) FillCell(dst *ebiten.Image, p core.Point, c color.Color) {
	px := float32(gp.geom.CellPx)
	vector.DrawFilledRect(dst, float32(p.Col)*px, float32(p.Row)*px, px, px, c, false)
}

// OutlineCell strokes the border of the cell at p.
func (gp *GridPainter) OutlineCell(dst *ebiten.Image, p core.Point, c color.Color) {
	px := float32(gp.geom.CellPx)
	vector.StrokeRect(dst, float32(p.Col)*px+1, float32(p.Row)*px+1, px-2, px-2, 2, c, false)
}
