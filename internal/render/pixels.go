package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
// buf must hold four bytes per cell.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	if len(buf) < 4*len(cells) {
		return
	}
	onPx := toRGBA(on)
	offPx := toRGBA(off)
	for i, c := range cells {
		px := offPx
		if c != 0 {
			px = onPx
		}
		base := i * 4
		buf[base+0] = px.R
		buf[base+1] = px.G
		buf[base+2] = px.B
		buf[base+3] = px.A
	}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// gridLines returns the pixel offsets of the lines separating n cells of
// cellPx pixels, including both outer edges.
func gridLines(n, cellPx int) []float32 {
	if n <= 0 || cellPx <= 0 {
		return nil
	}
	lines := make([]float32, 0, n+1)
	for i := 0; i <= n; i++ {
		lines = append(lines, float32(i*cellPx))
	}
	return lines
}
