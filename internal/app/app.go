//go:build ebiten

package app

import (
	"time"

	"lifepaint/internal/core"
	"lifepaint/internal/render"
	"lifepaint/internal/session"
	"lifepaint/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the status panel right of the board.
const HUDWidth = 200

var commandKeys = map[ebiten.Key]rune{
	ebiten.KeySpace: session.KeyToggle,
	ebiten.KeyC:     session.KeyClear,
	ebiten.KeyN:     session.KeyStep,
	ebiten.KeyG:     session.KeyRandomize,
	ebiten.KeyX:     session.KeyBrush,
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	last     time.Time
	pointerX int
	pointerY int
	painting bool
}

// New constructs a Game and its session. The session draws its grid through
// the returned Game's painter.
func New(opts session.Options) *Game {
	g := &Game{painter: render.NewGridPainter()}
	g.overlay = ui.NewOverlay(opts.Geometry, g.painter)
	g.sess = session.New(opts, g.painter)
	g.hud = ui.NewHUD(g.sess, HUDWidth)
	return g
}

// Session returns the simulation driven by the game.
func (g *Game) Session() *session.Session { return g.sess }

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, r := range commandKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.sess.OnKey(session.KeyEvent{Rune: r})
		}
		if inpututil.IsKeyJustReleased(key) {
			g.sess.OnKey(session.KeyEvent{Rune: r, Up: true})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.sess.SetRate(g.sess.Scheduler().Rate() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.sess.SetRate(g.sess.Scheduler().Rate() - 1)
	}

	boardW, _ := g.sess.Geometry().PixelSize()
	consumed := g.hud.Update(boardW)
	if !consumed {
		g.updatePointer()
	}
	g.overlay.BrushAlive = g.sess.Brush().Value() == core.Alive
	g.overlay.Update()

	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	g.sess.OnFrame(now.Sub(g.last))
	g.last = now
	return nil
}

func (g *Game) updatePointer() {
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.painting = true
		g.sess.OnPointerDown(x, y)
	case g.painting && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.painting = false
		g.sess.OnPointerMove(x, y)
		g.sess.OnPointerUp()
	case g.painting && (x != g.pointerX || y != g.pointerY):
		g.sess.OnPointerMove(x, y)
	}
	g.pointerX, g.pointerY = x, y
}

// Draw renders the board, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen)
	g.overlay.Draw(screen)
	boardW, _ := g.sess.Geometry().PixelSize()
	g.hud.Draw(screen, boardW)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}

// WindowSize returns the pixel size of the board plus the HUD panel.
func (g *Game) WindowSize() (int, int) {
	w, h := g.sess.Geometry().PixelSize()
	return w + g.hud.Width(), max(h, minWindowHeight)
}

const minWindowHeight = 240
