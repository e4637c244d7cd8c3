package main

const ShapeSize = 4

// Shape is the list of cells of a piece, as offsets from the piece's position.
// The offset at index 1 is the pivot used for rotation.
// Shape is an array so copying a Shape copies the offsets. The zero Shape is
// a single cell at the piece's position (4 times the same offset).
type Shape [ShapeSize]Pt

// Rotated returns a new shape with every offset rotated by 90 degrees
// (clockwise on screen) around the pivot. The order of the offsets is kept,
// which means the pivot stays at index 1.
func (s Shape) Rotated() (r Shape) {
	pivot := s[1]
	for i := range s {
		r[i] = s[i].RotatedAround(pivot)
	}
	return
}

// Piece is the falling piece. Every move checks the piece's board before
// committing, so a piece only ever sits at a valid position (except right
// after it is created, which the Game checks).
type Piece struct {
	shape Shape
	color Color
	pos   Pt
	board *Board
}

// SpawnPos is where every new piece starts, horizontally centered, at the top.
var SpawnPos = Pt{BoardWidth/2 - 1, 0}

func NewPiece(shape Shape, color Color, board *Board) *Piece {
	return &Piece{
		shape: shape,
		color: color,
		pos:   SpawnPos,
		board: board,
	}
}

func (p Piece) Shape() Shape {
	return p.shape
}

func (p Piece) Color() Color {
	return p.color
}

func (p Piece) Pos() Pt {
	return p.pos
}

// Cells returns the absolute positions of the piece's cells. Some of them may
// be above the board.
func (p Piece) Cells() (cells [ShapeSize]Pt) {
	for i, offset := range p.shape {
		cells[i] = p.pos.Plus(offset)
	}
	return
}

func (p *Piece) MoveLeft() {
	p.tryMove(Pt{-1, 0})
}

func (p *Piece) MoveRight() {
	p.tryMove(Pt{1, 0})
}

func (p *Piece) MoveDown() {
	p.tryMove(Pt{0, 1})
}

func (p *Piece) CanMoveDown() bool {
	return p.board.IsValidPosition(p.shape, p.pos.Plus(Pt{0, 1}))
}

// Rotate replaces the shape with its rotation if the rotated shape fits at the
// current position. If it doesn't fit, nothing changes. There are no wall kicks,
// the piece is never shifted to make the rotation fit.
func (p *Piece) Rotate() {
	candidate := p.shape.Rotated()
	if p.board.IsValidPosition(candidate, p.pos) {
		p.shape = candidate
	}
}

func (p *Piece) tryMove(delta Pt) {
	candidate := p.pos.Plus(delta)
	if p.board.IsValidPosition(p.shape, candidate) {
		p.pos = candidate
	}
}
