// Package playback advances a simulation at a fixed rate independent of the
// host's frame rate.
package playback

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// State is the playback mode.
type State uint8

const (
	// Paused ignores elapsed time.
	Paused State = iota
	// Playing accumulates elapsed time and steps the simulation.
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "PLAYING"
	}
	return "PAUSED"
}

const (
	// MinRate and MaxRate bound the generations per second.
	MinRate = 1
	MaxRate = 60
	// DefaultRate is used when no valid rate is configured.
	DefaultRate = 10
)

// Scheduler is a fixed-step accumulator. The zero value is not usable; call
// New.
type Scheduler struct {
	state       State
	rate        int
	step        time.Duration
	accumulator time.Duration
}

// New constructs a paused Scheduler running at rate generations per second.
// Out-of-range rates fall back to DefaultRate.
func New(rate int) *Scheduler {
	s := &Scheduler{}
	if !s.SetRate(rate) {
		s.SetRate(DefaultRate)
	}
	return s
}

// State reports the current playback mode.
func (s *Scheduler) State() State { return s.state }

// Playing reports whether the scheduler is advancing.
func (s *Scheduler) Playing() bool { return s.state == Playing }

// Toggle flips between Playing and Paused.
func (s *Scheduler) Toggle() {
	if s.state == Playing {
		s.state = Paused
		return
	}
	s.state = Playing
}

// Pause forces the Paused state.
func (s *Scheduler) Pause() { s.state = Paused }

// Play forces the Playing state.
func (s *Scheduler) Play() { s.state = Playing }

// Rate returns the generations per second.
func (s *Scheduler) Rate() int { return s.rate }

// Interval returns the simulated time between generations.
func (s *Scheduler) Interval() time.Duration { return s.step }

// Accumulated returns the time carried toward the next generation.
func (s *Scheduler) Accumulated() time.Duration { return s.accumulator }

// SetRate changes the generations per second. Rates outside
// [MinRate, MaxRate] are rejected and the previous interval is kept. The new
// interval applies from the next accumulation check.
func (s *Scheduler) SetRate(rate int) bool {
	if rate < MinRate || rate > MaxRate {
		return false
	}
	step := time.Second / time.Duration(rate)
	if step <= 0 {
		return false
	}
	s.rate = rate
	s.step = step
	return true
}

// SetRateText parses a rate typed into an input element. Fractional values
// round to the nearest integer; anything unparsable keeps the current rate.
func (s *Scheduler) SetRateText(v string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return s.SetRate(int(math.Round(f)))
}

// Advance feeds elapsed frame time into the accumulator and calls step once
// per whole interval consumed. It returns the number of generations taken.
// Paused schedulers ignore the delta.
func (s *Scheduler) Advance(delta time.Duration, step func()) int {
	if s.state != Playing {
		return 0
	}
	if delta > 0 {
		s.accumulator += delta
	}
	if s.step <= 0 {
		return 0
	}
	n := 0
	for s.accumulator >= s.step {
		if step != nil {
			step()
		}
		s.accumulator -= s.step
		n++
	}
	return n
}
