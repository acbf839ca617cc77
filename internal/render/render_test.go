package render

import (
	"bytes"
	"image/color"
	"slices"
	"testing"

	"lifepaint/internal/core"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{1, 0, 1}
	buf := make([]byte, 4*len(cells))
	on := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	off := color.White
	fillBinaryRGBA(buf, cells, on, off)

	want := []byte{
		10, 20, 30, 255,
		255, 255, 255, 255,
		10, 20, 30, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}

	short := make([]byte, 4)
	fillBinaryRGBA(short, cells, on, off)
	if !slices.Equal(short, []byte{0, 0, 0, 0}) {
		t.Fatal("undersized buffer must be left untouched")
	}
}

func TestGridLines(t *testing.T) {
	if got := gridLines(3, 20); !slices.Equal(got, []float32{0, 20, 40, 60}) {
		t.Fatalf("gridLines(3,20) = %v", got)
	}
	if gridLines(0, 20) != nil || gridLines(3, 0) != nil {
		t.Fatal("degenerate grids have no lines")
	}
}

func TestTextRenderer(t *testing.T) {
	var out bytes.Buffer
	r := NewText(&out)
	g := core.ComputeGeometry(60, 40, 20)
	r.RenderGrid(g)

	b := core.NewBoard(g.Cols, g.Rows)
	b.Set(0, 0, core.Alive)
	b.Set(2, 1, core.Alive)
	r.RenderBoard(b, g)
	r.RenderBoard(b, g)
	if r.Frames != 2 {
		t.Fatalf("frames = %d, want 2", r.Frames)
	}
	if err := r.Dump(b); err != nil {
		t.Fatal(err)
	}
	want := "grid 3x2 cell=20px\n#..\n..#\n"
	if out.String() != want {
		t.Fatalf("output %q, want %q", out.String(), want)
	}
}
