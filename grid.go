package main

import (
	"fmt"
	"strings"
)

const BoardWidth = 10
const BoardHeight = 20

// Color is the tag stored in an occupied cell. NoColor marks an empty cell.
type Color uint8

const (
	NoColor Color = iota
	Cyan
	Blue
	Orange
	Yellow
	Green
	Magenta
	Red
	// Gray is never produced by the factory. It only shows up on boards loaded
	// from text, for cells that don't belong to any particular shape.
	Gray
)

// colorLetters maps each color to the letter used in the text form of a grid.
// The letters are the names of the shapes that get each color.
var colorLetters = [...]byte{
	NoColor: '.',
	Cyan:    'I',
	Blue:    'J',
	Orange:  'L',
	Yellow:  'O',
	Green:   'S',
	Magenta: 'T',
	Red:     'Z',
	Gray:    '#',
}

func (c Color) Letter() byte {
	if int(c) >= len(colorLetters) {
		return '?'
	}
	return colorLetters[c]
}

func ColorFromLetter(letter byte) (Color, error) {
	for c, l := range colorLetters {
		if l == letter {
			return Color(c), nil
		}
	}
	return NoColor, fmt.Errorf("invalid cell letter '%c'", letter)
}

// Grid holds the color of every cell, row-major, row 0 at the top.
// It is an array, not a slice, so assigning or returning a Grid copies all the
// cells. Whoever gets a Grid from the Board gets a snapshot they can't use to
// change the Board.
type Grid [BoardHeight][BoardWidth]Color

func (g *Grid) InBounds(pt Pt) bool {
	return pt.X >= 0 &&
		pt.Y >= 0 &&
		pt.Y < BoardHeight &&
		pt.X < BoardWidth
}

// Get returns NoColor for points outside the grid.
func (g *Grid) Get(pt Pt) Color {
	if !g.InBounds(pt) {
		return NoColor
	}
	return g[pt.Y][pt.X]
}

func (g *Grid) Occupied(pt Pt) bool {
	return g.Get(pt) != NoColor
}

func (g *Grid) RowFull(y int) bool {
	for x := 0; x < BoardWidth; x++ {
		if g[y][x] == NoColor {
			return false
		}
	}
	return true
}

func (g *Grid) Empty() bool {
	return *g == Grid{}
}

// String returns one line per row, top row first, with '.' for empty cells and
// the color's letter for occupied ones.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(BoardHeight * (BoardWidth + 1))
	for y := range BoardHeight {
		for x := range BoardWidth {
			sb.WriteByte(g[y][x].Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseGrid reads rows in the format produced by String. There can be fewer
// than BoardHeight rows, in which case they are placed at the bottom of the
// grid and the rows above them are empty.
func ParseGrid(rows []string) (g Grid, err error) {
	if len(rows) > BoardHeight {
		return g, fmt.Errorf("too many rows: got %d, max is %d", len(rows), BoardHeight)
	}
	top := BoardHeight - len(rows)
	for i, row := range rows {
		if len(row) != BoardWidth {
			return g, fmt.Errorf("row %d must be exactly %d characters, got %d", i, BoardWidth, len(row))
		}
		for x := range BoardWidth {
			c, err := ColorFromLetter(row[x])
			if err != nil {
				return g, fmt.Errorf("row %d, column %d: %w", i, x, err)
			}
			g[top+i][x] = c
		}
	}
	return g, nil
}
