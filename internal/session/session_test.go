package session

import (
	"slices"
	"testing"
	"time"

	"lifepaint/internal/core"
	"lifepaint/internal/playback"
)

type recordingRenderer struct {
	grids  int
	boards int
	last   []core.Cell
}

func (r *recordingRenderer) RenderGrid(core.Geometry) { r.grids++ }

func (r *recordingRenderer) RenderBoard(b *core.Board, _ core.Geometry) {
	r.boards++
	r.last = append(r.last[:0], b.Cells()...)
}

// driver replays host callbacks against a Handler.
type driver struct {
	h  Handler
	px int
}

func (d driver) press(col, row int) { d.h.OnPointerDown(col*d.px+d.px/2, row*d.px+d.px/2) }
func (d driver) move(col, row int)  { d.h.OnPointerMove(col*d.px+d.px/2, row*d.px+d.px/2) }
func (d driver) up()                { d.h.OnPointerUp() }
func (d driver) frame(ms int)       { d.h.OnFrame(time.Duration(ms) * time.Millisecond) }

func (d driver) key(r rune) {
	d.h.OnKey(KeyEvent{Rune: r})
	d.h.OnKey(KeyEvent{Rune: r, Up: true})
}

func newTestSession(t *testing.T) (*Session, *recordingRenderer, *[]Status, driver) {
	t.Helper()
	r := &recordingRenderer{}
	var statuses []Status
	s := New(Options{
		Geometry: core.ComputeGeometry(200, 100, 20),
		Rate:     10,
		Brush:    core.Alive,
		RNG:      core.NewRNG(11),
		OnStatus: func(st Status) { statuses = append(statuses, st) },
	}, r)
	return s, r, &statuses, driver{h: s, px: 20}
}

func TestNewRandomizesAndRenders(t *testing.T) {
	s, r, statuses, _ := newTestSession(t)
	if s.Board().W != 10 || s.Board().H != 5 {
		t.Fatalf("board %dx%d, want 10x5", s.Board().W, s.Board().H)
	}
	if r.grids != 1 || r.boards != 1 {
		t.Fatalf("startup rendered grid %d times and board %d times", r.grids, r.boards)
	}
	if len(*statuses) != 1 || (*statuses)[0].State != playback.Paused {
		t.Fatalf("startup status = %v", *statuses)
	}

	again := New(Options{Geometry: s.Geometry(), RNG: core.NewRNG(11)}, nil)
	if !slices.Equal(s.Board().Cells(), again.Board().Cells()) {
		t.Fatal("same seed produced different starting boards")
	}
}

func TestPlaybackSteps(t *testing.T) {
	s, r, _, d := newTestSession(t)
	d.key(KeyClear)
	b := s.Board()
	b.Set(1, 2, core.Alive)
	b.Set(2, 2, core.Alive)
	b.Set(3, 2, core.Alive)

	d.frame(500)
	if s.Generation() != 0 {
		t.Fatal("paused session advanced")
	}

	d.key(KeyToggle)
	if !s.Scheduler().Playing() {
		t.Fatal("space release should start playback")
	}
	before := r.boards
	d.frame(250)
	if s.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", s.Generation())
	}
	if r.boards != before+1 {
		t.Fatal("frame with steps should redraw once")
	}
	// Blinker has period two.
	if s.Board().Get(1, 2) != core.Alive || s.Board().Get(3, 2) != core.Alive || s.Board().Get(2, 1) != core.Dead {
		t.Fatal("blinker did not return to its starting phase")
	}
	if s.Board().Population() != 3 {
		t.Fatalf("population = %d, want 3", s.Board().Population())
	}
	if !slices.Equal(r.last, s.Board().Cells()) {
		t.Fatal("renderer saw a stale board")
	}
}

func TestToggleFiresOnRelease(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	s.OnKey(KeyEvent{Rune: ' '})
	if s.Scheduler().Playing() {
		t.Fatal("space press alone should not toggle")
	}
	s.OnKey(KeyEvent{Rune: ' ', Up: true})
	if !s.Scheduler().Playing() {
		t.Fatal("space release should toggle")
	}
	s.OnKey(KeyEvent{Rune: 'c', Up: true})
	if !s.Scheduler().Playing() {
		t.Fatal("command keys fire on press, not release")
	}
}

func TestCommandsPause(t *testing.T) {
	for _, k := range []rune{KeyClear, KeyStep, KeyRandomize} {
		s, _, _, _ := newTestSession(t)
		s.TogglePlayback()
		s.OnKey(KeyEvent{Rune: k})
		if s.Scheduler().Playing() {
			t.Fatalf("key %q should pause playback", k)
		}
	}
}

func TestClearStepRandomize(t *testing.T) {
	s, _, _, d := newTestSession(t)
	d.key(KeyClear)
	if s.Board().Population() != 0 {
		t.Fatal("clear left live cells")
	}
	d.key(KeyStep)
	if s.Generation() != 1 || s.Board().Population() != 0 {
		t.Fatal("single step on a blank board should stay blank")
	}
	d.key(KeyRandomize)
	if s.Generation() != 0 || s.Board().Population() == 0 {
		t.Fatal("randomize should reset the generation and populate the board")
	}
}

func TestPaintingStrokePauses(t *testing.T) {
	s, _, _, d := newTestSession(t)
	d.key(KeyClear)
	s.TogglePlayback()

	d.press(0, 0)
	if s.Scheduler().Playing() {
		t.Fatal("painting should pause playback")
	}
	d.move(4, 0)
	d.up()
	for x := 0; x <= 4; x++ {
		if s.Board().Get(x, 0) != core.Alive {
			t.Fatalf("cell (%d,0) not painted", x)
		}
	}
	if s.Board().Population() != 5 {
		t.Fatalf("population = %d, want 5", s.Board().Population())
	}
	d.move(6, 0)
	if s.Board().Get(6, 0) != core.Dead {
		t.Fatal("move after release must not paint")
	}
}

func TestPauseMidDragKeepsStroke(t *testing.T) {
	s, _, _, d := newTestSession(t)
	d.key(KeyClear)
	d.press(1, 1)
	d.key(KeyToggle)
	d.key(KeyToggle)
	if p, ok := s.Brush().Last(); !ok || p != (core.Point{Col: 1, Row: 1}) {
		t.Fatalf("stroke lost after toggling playback: %v,%v", p, ok)
	}
	d.move(3, 1)
	if s.Board().Get(2, 1) != core.Alive || s.Board().Get(3, 1) != core.Alive {
		t.Fatal("stroke did not continue after toggling playback")
	}
}

func TestPointerOutsideGrid(t *testing.T) {
	s, _, _, d := newTestSession(t)
	d.key(KeyClear)
	s.OnPointerDown(-5, 10)
	s.OnPointerDown(500, 10)
	if s.Board().Population() != 0 {
		t.Fatal("press outside grid painted")
	}
	d.press(9, 4)
	s.OnPointerMove(300, 90)
	d.move(7, 4)
	if s.Board().Population() != 1 {
		t.Fatalf("re-entering the grid resumed the stroke, population %d", s.Board().Population())
	}
}

func TestBrushToggleAndStatus(t *testing.T) {
	s, _, statuses, d := newTestSession(t)
	if got := s.Status().String(); got != "speed: 10, brush: black, PAUSED" {
		t.Fatalf("status = %q", got)
	}
	d.key(KeyBrush)
	if s.Brush().Value() != core.Dead {
		t.Fatal("brush toggle did not switch to dead")
	}
	last := (*statuses)[len(*statuses)-1]
	if last.String() != "speed: 10, brush: white, PAUSED" {
		t.Fatalf("published status = %q", last.String())
	}
	d.key(KeyToggle)
	last = (*statuses)[len(*statuses)-1]
	if last.State != playback.Playing {
		t.Fatal("status not republished after toggle")
	}
}

func TestRateControl(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	if !s.SetIntParameter("rate", 20) || s.Scheduler().Interval() != 50*time.Millisecond {
		t.Fatal("rate parameter not applied")
	}
	if s.SetIntParameter("rate", 0) || s.Scheduler().Rate() != 20 {
		t.Fatal("zero rate must be rejected")
	}
	if s.SetRateText("fast") || s.Scheduler().Rate() != 20 {
		t.Fatal("non-numeric rate must be rejected")
	}
	if s.SetIntParameter("unknown", 3) {
		t.Fatal("unknown parameter accepted")
	}
	if p, ok := s.Parameters().Lookup("rate"); !ok || p.Value != "20" {
		t.Fatalf("rate parameter = %+v", p)
	}
	ctrls := s.ParameterControls()
	if len(ctrls) != 1 || ctrls[0].Min != playback.MinRate || ctrls[0].Max != playback.MaxRate {
		t.Fatalf("controls = %+v", ctrls)
	}
}

func TestDegenerateSession(t *testing.T) {
	s := New(Options{Geometry: core.ComputeGeometry(10, 10, 20), RNG: core.NewRNG(1)}, nil)
	s.OnPointerDown(0, 0)
	s.OnPointerMove(5, 5)
	s.OnPointerUp()
	s.TogglePlayback()
	s.OnFrame(time.Second)
	s.StepOnce()
	s.Randomize()
	if s.Board().Population() != 0 || len(s.Board().Cells()) != 0 {
		t.Fatal("zero-sized session must stay empty")
	}
}
