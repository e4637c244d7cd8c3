package main

const NumShapes = 7

type pieceTemplate struct {
	Name  string
	Shape Shape
	Color Color
}

// pieceTemplates is the catalog. The index of a template is what the random
// source picks and what scenarios refer to.
var pieceTemplates = [NumShapes]pieceTemplate{
	{"I", Shape{{0, 1}, {1, 1}, {2, 1}, {3, 1}}, Cyan},
	{"J", Shape{{0, 1}, {1, 1}, {2, 1}, {2, 0}}, Blue},
	{"L", Shape{{0, 1}, {1, 1}, {2, 1}, {0, 0}}, Orange},
	{"O", Shape{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, Yellow},
	{"S", Shape{{1, 0}, {2, 0}, {0, 1}, {1, 1}}, Green},
	{"T", Shape{{1, 0}, {0, 1}, {1, 1}, {2, 1}}, Magenta},
	{"Z", Shape{{0, 0}, {1, 0}, {1, 1}, {2, 1}}, Red},
}

// PieceFactory creates the pieces for one board. It doesn't check if the new
// piece fits, that's the job of whoever asks for the piece.
type PieceFactory struct {
	board *Board
	rand  RandSource
}

func NewPieceFactory(board *Board, rand RandSource) *PieceFactory {
	return &PieceFactory{
		board: board,
		rand:  rand,
	}
}

func (f *PieceFactory) NewPiece() *Piece {
	idx := f.rand.RInt(0, NumShapes-1)
	Assert(idx >= 0 && idx < NumShapes)
	t := pieceTemplates[idx]
	// t.Shape is an array, so the piece gets its own copy of the offsets.
	return NewPiece(t.Shape, t.Color, f.board)
}
