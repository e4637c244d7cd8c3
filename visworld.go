package main

import "github.com/kamstrup/intmap"

// FlashNFrames is how long a cell stays highlighted after it changes.
const FlashNFrames = 20

// VisWorld is a world parallel to the Game that holds "visual logic". Its role
// is to store data and execute logic for ongoing visual effects. Draw() relies
// on the information in VisWorld to draw things, just like it relies on the
// Game.
//
// The only effect right now is a flash on every cell of the board that changed
// since the previous frame. Cells change when a piece is locked and when lines
// are cleared, so those are the moments that flash.
//
// VisWorld is meant to be updated alongside the Game, in the Update() function.
type VisWorld struct {
	previous Grid
	// Cell index (y * BoardWidth + x) to the number of frames left.
	flashes *intmap.Map[int, int]
}

func NewVisWorld(grid Grid) (v VisWorld) {
	v.previous = grid
	v.flashes = intmap.New[int, int](BoardWidth * BoardHeight)
	return
}

func (v *VisWorld) Step(grid Grid) {
	// Fade existing flashes.
	for idx := range BoardWidth * BoardHeight {
		if n, ok := v.flashes.Get(idx); ok {
			if n <= 1 {
				v.flashes.Del(idx)
			} else {
				v.flashes.Put(idx, n-1)
			}
		}
	}

	// Start new flashes.
	for y := range BoardHeight {
		for x := range BoardWidth {
			if grid[y][x] != v.previous[y][x] {
				v.flashes.Put(y*BoardWidth+x, FlashNFrames)
			}
		}
	}
	v.previous = grid
}

// Flash returns how strong the highlight of a cell is, from 0 (none) to 1
// (the cell changed during the last Step).
func (v *VisWorld) Flash(cell Pt) float64 {
	if !v.previous.InBounds(cell) {
		return 0
	}
	n, ok := v.flashes.Get(cell.Y*BoardWidth + cell.X)
	if !ok {
		return 0
	}
	return float64(n) / FlashNFrames
}
