//go:build ebiten

package ui

import (
	"image/color"

	"lifepaint/internal/core"
	"lifepaint/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const helpText = `space  play / pause
n      single step
c      clear board
g      random board
x      toggle brush
up/dn  change speed
h      hide help
q      quit`

// Overlay draws the hovered cell and the key help on top of the board.
type Overlay struct {
	geom     core.Geometry
	painter  *render.GridPainter
	showHelp bool
	hover    core.Point
	hovering bool

	// BrushAlive selects the hover color so it previews the paint value.
	BrushAlive bool
}

// NewOverlay constructs an overlay for the provided layout.
func NewOverlay(geom core.Geometry, painter *render.GridPainter) *Overlay {
	return &Overlay{geom: geom, painter: painter, showHelp: true}
}

// Update tracks the cursor and toggles the help text.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
	o.hover, o.hovering = o.geom.CellAt(ebiten.CursorPosition())
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.hovering && o.painter != nil {
		c := color.RGBA{R: 220, G: 60, B: 60, A: 200}
		if o.BrushAlive {
			c = color.RGBA{R: 40, G: 120, B: 220, A: 200}
		}
		o.painter.OutlineCell(screen, o.hover, c)
	}
	if o.showHelp {
		w, _ := o.geom.PixelSize()
		if w > 0 {
			ebitenutil.DebugPrintAt(screen, helpText, 8, 8)
		}
	}
}
