// Package term runs a session in a terminal. Each terminal cell is one board
// cell; the bottom row shows the status line.
package term

import (
	"errors"
	"fmt"
	"time"

	"lifepaint/internal/core"
	"lifepaint/internal/session"

	"github.com/gdamore/tcell/v2"
)

// FrameInterval is how often the terminal host delivers frame callbacks.
const FrameInterval = 16 * time.Millisecond

// ErrTooSmall is returned when the terminal has no room for a board.
var ErrTooSmall = errors.New("terminal too small")

// Renderer draws boards into a tcell screen.
type Renderer struct {
	screen tcell.Screen
	alive  tcell.Style
	dead   tcell.Style
	status tcell.Style
}

// NewRenderer returns a renderer drawing alive cells as solid blocks.
func NewRenderer(s tcell.Screen) *Renderer {
	return &Renderer{
		screen: s,
		alive:  tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
		dead:   tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
		status: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
	}
}

// RenderGrid clears the screen. Terminal cells already act as gridlines.
func (r *Renderer) RenderGrid(core.Geometry) {
	r.screen.Clear()
}

// RenderBoard writes every cell of b.
func (r *Renderer) RenderBoard(b *core.Board, _ core.Geometry) {
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if b.Get(x, y) == core.Alive {
				r.screen.SetContent(x, y, ' ', nil, r.alive)
				continue
			}
			r.screen.SetContent(x, y, '.', nil, r.dead)
		}
	}
}

// RenderStatus writes text on row y, padded to width.
func (r *Renderer) RenderStatus(text string, y, width int) {
	x := 0
	for _, ch := range text {
		if x >= width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, r.status)
		x++
	}
	for ; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, r.status)
	}
}

// Host translates tcell events into session callbacks.
type Host struct {
	screen   tcell.Screen
	renderer *Renderer
	sess     *session.Session
	width    int
	statusY  int
	pressed  bool
}

// Geometry returns the board layout for a terminal of w columns and h rows:
// one cell per character with the last row reserved for status.
func Geometry(w, h int) core.Geometry {
	return core.ComputeGeometry(w, h-1, 1)
}

// NewHost builds a session sized to the screen.
func NewHost(s tcell.Screen, opts session.Options) (*Host, error) {
	w, h := s.Size()
	opts.Geometry = Geometry(w, h)
	if opts.Geometry.Cols == 0 || opts.Geometry.Rows == 0 {
		return nil, ErrTooSmall
	}
	hst := &Host{screen: s, renderer: NewRenderer(s), width: w, statusY: h - 1}
	next := opts.OnStatus
	opts.OnStatus = func(st session.Status) {
		hst.renderer.RenderStatus(" "+st.String()+"  [q quit]", hst.statusY, hst.width)
		if next != nil {
			next(st)
		}
	}
	hst.sess = session.New(opts, hst.renderer)
	return hst, nil
}

// Session returns the hosted session.
func (h *Host) Session() *session.Session { return h.sess }

// Handle delivers one event. It returns false when the user asked to quit.
func (h *Host) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			h.sess.SetRate(h.sess.Scheduler().Rate() + 1)
		case tcell.KeyDown:
			h.sess.SetRate(h.sess.Scheduler().Rate() - 1)
		case tcell.KeyRune:
			r := ev.Rune()
			if r == 'q' {
				return false
			}
			// Terminals report presses only, so each press is also a release.
			h.sess.OnKey(session.KeyEvent{Rune: r})
			h.sess.OnKey(session.KeyEvent{Rune: r, Up: true})
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		down := ev.Buttons()&tcell.Button1 != 0
		switch {
		case down && !h.pressed:
			h.pressed = true
			h.sess.OnPointerDown(x, y)
		case down:
			h.sess.OnPointerMove(x, y)
		case h.pressed:
			h.pressed = false
			h.sess.OnPointerUp()
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

// Frame advances playback and flushes the screen.
func (h *Host) Frame(delta time.Duration) {
	h.sess.OnFrame(delta)
	h.screen.Show()
}

// Run owns the screen until the user quits. Events and frames are handled on
// the calling goroutine; only event polling runs elsewhere.
func Run(s tcell.Screen, opts session.Options) error {
	if err := s.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer s.Fini()
	s.EnableMouse()
	s.HideCursor()

	host, err := NewHost(s, opts)
	if err != nil {
		return err
	}
	s.Show()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go s.ChannelEvents(events, quit)

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !host.Handle(ev) {
				return nil
			}
			s.Show()
		case now := <-ticker.C:
			host.Frame(now.Sub(last))
			last = now
		}
	}
}
