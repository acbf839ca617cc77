// Package brush paints cells onto a board from pointer strokes.
package brush

import (
	"math"

	"lifepaint/internal/core"
)

// oversample is the number of interpolation points per unit of Manhattan
// distance. Three is enough that no cell on a shallow diagonal is skipped.
const oversample = 3

// Controller tracks the brush value and the cell last painted in the current
// stroke.
type Controller struct {
	value  core.Cell
	last   core.Point
	active bool
}

// New returns a controller painting value.
func New(value core.Cell) *Controller {
	c := &Controller{}
	c.SetValue(value)
	return c
}

// Value returns the cell value written by strokes.
func (c *Controller) Value() core.Cell { return c.value }

// SetValue changes the cell value written by strokes.
func (c *Controller) SetValue(v core.Cell) {
	if v != core.Dead {
		v = core.Alive
	}
	c.value = v
}

// Toggle swaps the brush between alive and dead.
func (c *Controller) Toggle() { c.SetValue(core.Alive - c.value) }

// Last returns the last painted cell of the current stroke.
func (c *Controller) Last() (core.Point, bool) { return c.last, c.active }

// Press starts a stroke at (col, row). A press outside the board ends any
// stroke in progress and writes nothing.
func (c *Controller) Press(b *core.Board, col, row int) bool {
	if !b.InBounds(col, row) {
		c.Release()
		return false
	}
	b.Set(col, row, c.value)
	c.last = core.Point{Col: col, Row: row}
	c.active = true
	return true
}

// Drag extends the current stroke to (col, row), filling every cell between
// the last painted cell and the target. It reports whether the board changed.
func (c *Controller) Drag(b *core.Board, col, row int) bool {
	if !c.active {
		return false
	}
	if col == c.last.Col && row == c.last.Row {
		return false
	}
	if !b.InBounds(col, row) {
		c.Release()
		return false
	}
	lx, ly := c.last.Col, c.last.Row
	d := abs(col-lx) + abs(row-ly)
	if d <= 1 {
		b.Set(col, row, c.value)
	} else {
		steps := d * oversample
		dx := float64(col-lx) / float64(steps)
		dy := float64(row-ly) / float64(steps)
		for t := 0; t <= steps; t++ {
			x := int(math.Round(float64(lx) + dx*float64(t)))
			y := int(math.Round(float64(ly) + dy*float64(t)))
			b.Set(x, y, c.value)
		}
	}
	c.last = core.Point{Col: col, Row: row}
	return true
}

// Leave ends the stroke when the pointer moves off the board, so re-entering
// does not resume painting.
func (c *Controller) Leave() { c.Release() }

// Release ends the stroke.
func (c *Controller) Release() {
	c.active = false
	c.last = core.Point{}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
