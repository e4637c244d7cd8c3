package main

// Board rules
// - The board is a grid of BoardWidth x BoardHeight cells. Each cell is empty
// or holds the color of a block that was locked there.
// - A shape at a position is valid if every one of its cells is between the
// left and right walls, above the floor, and not on top of a locked block.
// - Cells above the top of the grid (y < 0) are fine. They are never out of
// bounds and they never collide with anything. This is what allows a piece to
// spawn partially above the board.
// - Only the Board's own methods change the cells. Everyone else gets a copy.

type Board struct {
	cells Grid
}

func NewBoard() *Board {
	return &Board{}
}

func NewBoardFromRows(rows []string) (*Board, error) {
	g, err := ParseGrid(rows)
	if err != nil {
		return nil, err
	}
	return &Board{cells: g}, nil
}

// Grid returns a snapshot of the cells.
func (b *Board) Grid() Grid {
	return b.cells
}

func (b *Board) Get(pt Pt) Color {
	return b.cells.Get(pt)
}

// IsValidPosition checks the bounds first and the occupancy second, for each
// cell. Both have to pass for every cell of the shape.
func (b *Board) IsValidPosition(shape Shape, pos Pt) bool {
	for _, offset := range shape {
		pt := pos.Plus(offset)
		if pt.X < 0 || pt.X >= BoardWidth || pt.Y >= BoardHeight {
			return false
		}
		// Occupied is false above the grid.
		if b.cells.Occupied(pt) {
			return false
		}
	}
	return true
}

// PlacePiece writes color into the cells covered by shape at pos. It does not
// check if the position is valid, the caller must do that. Cells above the grid
// are dropped.
func (b *Board) PlacePiece(shape Shape, pos Pt, color Color) {
	for _, offset := range shape {
		pt := pos.Plus(offset)
		if pt.Y < 0 {
			continue
		}
		Assert(b.cells.InBounds(pt))
		if !b.cells.InBounds(pt) {
			continue
		}
		b.cells[pt.Y][pt.X] = color
	}
}

// ClearLines removes all full rows at once and returns how many there were.
// The rows that are not full keep their order and end up at the bottom of the
// grid. The new rows at the top are empty.
func (b *Board) ClearLines() int {
	var next Grid
	dst := BoardHeight - 1
	for y := BoardHeight - 1; y >= 0; y-- {
		if b.cells.RowFull(y) {
			continue
		}
		next[dst] = b.cells[y]
		dst--
	}
	// dst stops one row above the last row copied, so everything from 0 to dst
	// (inclusive) is new empty space: one row for each cleared line.
	cleared := dst + 1
	b.cells = next
	return cleared
}
