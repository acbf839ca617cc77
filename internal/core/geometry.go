package core

// DefaultCellPx is the cell edge length used when no override is configured.
const DefaultCellPx = 20

// Geometry is the fixed pixel layout of a board. It is derived once at startup.
type Geometry struct {
	CellPx int
	Cols   int
	Rows   int
}

// ComputeGeometry fits as many whole cells of cellPx pixels as the viewport
// allows. Non-positive inputs produce a zero-sized grid.
func ComputeGeometry(viewportW, viewportH, cellPx int) Geometry {
	g := Geometry{CellPx: cellPx}
	if cellPx <= 0 {
		return g
	}
	if viewportW > 0 {
		g.Cols = viewportW / cellPx
	}
	if viewportH > 0 {
		g.Rows = viewportH / cellPx
	}
	return g
}

// Size returns the grid dimensions in cells.
func (g Geometry) Size() Size { return Size{W: g.Cols, H: g.Rows} }

// PixelSize returns the width and height covered by the grid in pixels.
func (g Geometry) PixelSize() (int, int) {
	return g.Cols * g.CellPx, g.Rows * g.CellPx
}

// CellAt converts a pixel position to the cell beneath it. ok is false when
// the position falls outside the grid.
func (g Geometry) CellAt(px, py int) (Point, bool) {
	if g.CellPx <= 0 || px < 0 || py < 0 {
		return Point{}, false
	}
	p := Point{Col: px / g.CellPx, Row: py / g.CellPx}
	if p.Col >= g.Cols || p.Row >= g.Rows {
		return Point{}, false
	}
	return p, true
}
