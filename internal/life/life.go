// Package life implements the Conway's Game of Life transition on a bounded
// board. Cells beyond the edges count as dead; the board does not wrap.
package life

import "lifepaint/internal/core"

// Step computes the next generation of b into a new board. b is not modified.
func Step(b *core.Board) *core.Board {
	next := core.NewBoard(b.W, b.H)
	StepInto(next, b)
	return next
}

// StepInto writes the generation following src into dst. Both boards must
// share dimensions and must not be the same board.
func StepInto(dst, src *core.Board) {
	if dst == src || dst.W != src.W || dst.H != src.H {
		return
	}
	w, h := src.W, src.H
	cur := src.Cells()
	nxt := dst.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			nxt[idx] = Next(cur[idx], Neighbors(src, x, y))
		}
	}
}

// Neighbors counts the alive cells among the up-to-8 in-bounds neighbors of
// (x, y).
func Neighbors(b *core.Board, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= b.H {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= b.W {
				continue
			}
			if b.Cells()[ny*b.W+nx] != core.Dead {
				n++
			}
		}
	}
	return n
}

// Next applies the B3/S23 rule to a single cell.
func Next(cur core.Cell, neighbors int) core.Cell {
	switch neighbors {
	case 3:
		return core.Alive
	case 2:
		return cur
	default:
		return core.Dead
	}
}
