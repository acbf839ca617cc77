// Package session ties the board, the playback scheduler and the brush into a
// single object driven by host callbacks.
package session

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"lifepaint/internal/brush"
	"lifepaint/internal/core"
	"lifepaint/internal/life"
	"lifepaint/internal/playback"
)

// Handler is the set of callbacks a host delivers. Hosts guarantee the
// callbacks never run concurrently.
type Handler interface {
	OnFrame(delta time.Duration)
	OnPointerDown(x, y int)
	OnPointerMove(x, y int)
	OnPointerUp()
	OnKey(ev KeyEvent)
}

// Renderer draws the grid and board. RenderBoard is called after every
// mutation and must read the board it is given rather than a cached copy.
type Renderer interface {
	RenderGrid(g core.Geometry)
	RenderBoard(b *core.Board, g core.Geometry)
}

// KeyEvent is a key press or release carrying the produced character.
type KeyEvent struct {
	Rune rune
	Up   bool
}

// Key bindings.
const (
	KeyToggle    = ' '
	KeyClear     = 'c'
	KeyStep      = 'n'
	KeyRandomize = 'g'
	KeyBrush     = 'x'
)

// Options configures a Session.
type Options struct {
	Geometry core.Geometry
	Rate     int
	// Brush is the initial paint value.
	Brush core.Cell
	// RNG seeds the initial board and later randomize commands.
	RNG *rand.Rand
	// OnStatus, when set, receives the status after every state change.
	OnStatus func(Status)
}

// Session is one independent simulation instance.
type Session struct {
	geom     core.Geometry
	board    *core.Board
	sched    *playback.Scheduler
	brush    *brush.Controller
	rng      *rand.Rand
	renderer Renderer
	onStatus func(Status)

	generation int
}

// New builds a session with a randomized board, draws the grid once and
// publishes the initial status. r may be nil for headless use.
func New(opts Options, r Renderer) *Session {
	rng := opts.RNG
	if rng == nil {
		rng = core.NewRNG(0)
	}
	s := &Session{
		geom:     opts.Geometry,
		sched:    playback.New(opts.Rate),
		brush:    brush.New(opts.Brush),
		rng:      rng,
		renderer: r,
		onStatus: opts.OnStatus,
	}
	s.board = core.RandomBoard(s.rng, s.geom.Cols, s.geom.Rows)
	if s.renderer != nil {
		s.renderer.RenderGrid(s.geom)
	}
	s.redraw()
	s.publish()
	return s
}

// Geometry returns the fixed layout of the session's grid.
func (s *Session) Geometry() core.Geometry { return s.geom }

// Board returns the current board. The board is replaced on every
// generation, so callers must not hold on to it across callbacks.
func (s *Session) Board() *core.Board { return s.board }

// Generation returns the number of generations computed since the last
// reset.
func (s *Session) Generation() int { return s.generation }

// Scheduler exposes the playback scheduler.
func (s *Session) Scheduler() *playback.Scheduler { return s.sched }

// Brush exposes the edit controller.
func (s *Session) Brush() *brush.Controller { return s.brush }

// OnFrame advances playback by the time elapsed since the previous frame.
func (s *Session) OnFrame(delta time.Duration) {
	if s.sched.Advance(delta, s.advance) > 0 {
		s.redraw()
	}
}

// OnPointerDown starts a stroke at pixel (x, y).
func (s *Session) OnPointerDown(x, y int) {
	p, ok := s.geom.CellAt(x, y)
	if !ok {
		s.brush.Leave()
		return
	}
	if s.brush.Press(s.board, p.Col, p.Row) {
		s.edited()
	}
}

// OnPointerMove extends the current stroke to pixel (x, y).
func (s *Session) OnPointerMove(x, y int) {
	if _, active := s.brush.Last(); !active {
		return
	}
	p, ok := s.geom.CellAt(x, y)
	if !ok {
		s.brush.Leave()
		return
	}
	if s.brush.Drag(s.board, p.Col, p.Row) {
		s.edited()
	}
}

// OnPointerUp ends the current stroke.
func (s *Session) OnPointerUp() { s.brush.Release() }

// OnKey dispatches key bindings. The play toggle fires on release; the other
// commands fire on press.
func (s *Session) OnKey(ev KeyEvent) {
	if ev.Up {
		if ev.Rune == KeyToggle {
			s.TogglePlayback()
		}
		return
	}
	switch ev.Rune {
	case KeyClear:
		s.Clear()
	case KeyStep:
		s.StepOnce()
	case KeyRandomize:
		s.Randomize()
	case KeyBrush:
		s.ToggleBrush()
	}
}

// TogglePlayback flips between playing and paused.
func (s *Session) TogglePlayback() {
	s.sched.Toggle()
	s.publish()
}

// Pause stops playback.
func (s *Session) Pause() {
	s.sched.Pause()
	s.publish()
}

// Clear replaces the board with a blank one and pauses.
func (s *Session) Clear() {
	s.sched.Pause()
	s.board = core.NewBoard(s.geom.Cols, s.geom.Rows)
	s.generation = 0
	s.redraw()
	s.publish()
}

// Randomize replaces the board with a fresh random one and pauses.
func (s *Session) Randomize() {
	s.sched.Pause()
	s.board = core.RandomBoard(s.rng, s.geom.Cols, s.geom.Rows)
	s.generation = 0
	s.redraw()
	s.publish()
}

// StepOnce computes a single generation and pauses.
func (s *Session) StepOnce() {
	s.sched.Pause()
	s.advance()
	s.redraw()
	s.publish()
}

// ToggleBrush swaps the paint value between alive and dead.
func (s *Session) ToggleBrush() {
	s.brush.Toggle()
	s.publish()
}

// SetRate changes the playback rate; invalid values keep the current rate.
func (s *Session) SetRate(rate int) bool {
	ok := s.sched.SetRate(rate)
	s.publish()
	return ok
}

// SetRateText applies a rate typed by the user; invalid input keeps the
// current rate.
func (s *Session) SetRateText(v string) bool {
	ok := s.sched.SetRateText(v)
	s.publish()
	return ok
}

func (s *Session) advance() {
	s.board = life.Step(s.board)
	s.generation++
}

func (s *Session) edited() {
	s.sched.Pause()
	s.redraw()
	s.publish()
}

func (s *Session) redraw() {
	if s.renderer != nil {
		s.renderer.RenderBoard(s.board, s.geom)
	}
}

func (s *Session) publish() {
	if s.onStatus != nil {
		s.onStatus(s.Status())
	}
}

// Status is the user-facing summary of the session.
type Status struct {
	Rate       int
	Brush      core.Cell
	State      playback.State
	Generation int
	Population int
}

// BrushName names the brush the way it appears on screen: dead cells are
// drawn white and alive cells black.
func (st Status) BrushName() string {
	if st.Brush == core.Alive {
		return "black"
	}
	return "white"
}

func (st Status) String() string {
	return fmt.Sprintf("speed: %d, brush: %s, %s", st.Rate, st.BrushName(), st.State)
}

// Status reports the current rate, brush and playback state.
func (s *Session) Status() Status {
	return Status{
		Rate:       s.sched.Rate(),
		Brush:      s.brush.Value(),
		State:      s.sched.State(),
		Generation: s.generation,
		Population: s.board.Population(),
	}
}

// Parameters exposes the status for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	st := s.Status()
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Playback",
				Params: []core.Parameter{
					{Key: "rate", Label: "Speed", Type: core.ParamTypeInt, Value: strconv.Itoa(st.Rate)},
					{Key: "state", Label: "State", Type: core.ParamTypeText, Value: st.State.String()},
				},
			},
			{
				Name: "Board",
				Params: []core.Parameter{
					{Key: "brush", Label: "Brush", Type: core.ParamTypeText, Value: st.BrushName()},
					{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(st.Generation)},
					{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(st.Population)},
					{Key: "size", Label: "Grid", Type: core.ParamTypeText, Value: fmt.Sprintf("%dx%d", s.geom.Cols, s.geom.Rows)},
				},
			},
		},
	}
}

// ParameterControls lists the HUD-adjustable values.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "rate", Label: "Speed", Step: 1, Min: playback.MinRate, Max: playback.MaxRate},
	}
}

// SetIntParameter applies a HUD adjustment.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case "rate":
		return s.SetRate(value)
	}
	return false
}

var (
	_ Handler                        = (*Session)(nil)
	_ core.ParameterControlsProvider = (*Session)(nil)
	_ core.IntParameterSetter        = (*Session)(nil)
)
