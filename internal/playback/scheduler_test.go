package playback

import (
	"testing"
	"time"
)

func TestAdvanceConsumesWholeIntervals(t *testing.T) {
	s := New(10)
	if s.Interval() != 100*time.Millisecond {
		t.Fatalf("interval = %v, want 100ms", s.Interval())
	}
	s.Play()

	calls := 0
	n := s.Advance(250*time.Millisecond, func() { calls++ })
	if n != 2 || calls != 2 {
		t.Fatalf("Advance(250ms) stepped %d times (returned %d), want 2", calls, n)
	}
	if s.Accumulated() != 50*time.Millisecond {
		t.Fatalf("accumulated = %v, want 50ms", s.Accumulated())
	}

	if n := s.Advance(40*time.Millisecond, func() { calls++ }); n != 0 {
		t.Fatalf("Advance(40ms) stepped %d times, want 0", n)
	}
	if n := s.Advance(10*time.Millisecond, func() { calls++ }); n != 1 {
		t.Fatalf("Advance(10ms) stepped %d times, want 1", n)
	}
	if s.Accumulated() != 0 {
		t.Fatalf("accumulated = %v, want 0", s.Accumulated())
	}
}

func TestPausedIgnoresTime(t *testing.T) {
	s := New(10)
	if s.State() != Paused {
		t.Fatal("scheduler must start paused")
	}
	calls := 0
	if n := s.Advance(0, func() { calls++ }); n != 0 || calls != 0 {
		t.Fatal("paused Advance(0) must not step")
	}
	if n := s.Advance(time.Second, func() { calls++ }); n != 0 || calls != 0 {
		t.Fatal("paused Advance must not step")
	}
	if s.Accumulated() != 0 {
		t.Fatal("paused scheduler accumulated time")
	}
}

func TestToggleAndPause(t *testing.T) {
	s := New(10)
	s.Toggle()
	if !s.Playing() || s.State().String() != "PLAYING" {
		t.Fatal("toggle from paused should play")
	}
	s.Toggle()
	if s.Playing() || s.State().String() != "PAUSED" {
		t.Fatal("toggle from playing should pause")
	}
	s.Play()
	s.Pause()
	s.Pause()
	if s.Playing() {
		t.Fatal("Pause must force the paused state")
	}
}

func TestRateChangeAppliesOnNextCheck(t *testing.T) {
	s := New(10)
	s.Play()
	s.Advance(90*time.Millisecond, nil)
	if !s.SetRate(20) {
		t.Fatal("SetRate(20) rejected")
	}
	// 90ms carried over now covers one 50ms interval.
	if n := s.Advance(0, nil); n != 1 {
		t.Fatalf("Advance after rate change stepped %d times, want 1", n)
	}
	if s.Accumulated() != 40*time.Millisecond {
		t.Fatalf("accumulated = %v, want 40ms", s.Accumulated())
	}
}

func TestInvalidRatesKeepPreviousInterval(t *testing.T) {
	s := New(25)
	for _, rate := range []int{0, -3, MaxRate + 1} {
		if s.SetRate(rate) {
			t.Fatalf("SetRate(%d) accepted", rate)
		}
	}
	for _, text := range []string{"", "abc", "NaN", "Inf", "0", "-5", "0.2"} {
		if s.SetRateText(text) {
			t.Fatalf("SetRateText(%q) accepted", text)
		}
	}
	if s.Rate() != 25 || s.Interval() != 40*time.Millisecond {
		t.Fatalf("rate %d interval %v after rejected input", s.Rate(), s.Interval())
	}
	if !s.SetRateText(" 4.6 ") || s.Rate() != 5 {
		t.Fatalf("SetRateText(4.6) gave rate %d, want 5", s.Rate())
	}
}

func TestNewFallsBackToDefault(t *testing.T) {
	if s := New(0); s.Rate() != DefaultRate {
		t.Fatalf("New(0) rate = %d, want %d", s.Rate(), DefaultRate)
	}
}

func TestNegativeDeltaIgnored(t *testing.T) {
	s := New(10)
	s.Play()
	s.Advance(30*time.Millisecond, nil)
	s.Advance(-time.Second, nil)
	if s.Accumulated() != 30*time.Millisecond {
		t.Fatalf("accumulated = %v, want 30ms", s.Accumulated())
	}
}
