package main

// Game rules
// - The game starts by spawning a piece.
// - Spawning: get a new piece from the factory. If it doesn't fit where it
// starts, the game is over. Otherwise it becomes the current piece.
// - Left, right and rotate are passed to the current piece, which ignores them
// if they are not possible.
// - Down moves the current piece down if it can. If it can't, the piece is
// locked into the board, full lines are cleared and a new piece is spawned.
// - Once the game is over it stays over and every command is ignored.

type GameState int

const (
	Playing GameState = iota
	GameOver
)

func (s GameState) String() string {
	switch s {
	case Playing:
		return "Playing"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// PlayerInput is everything that can happen to the game during one frame.
// Tick is the periodic fall, it has the same effect as Down but comes from the
// clock instead of the player.
type PlayerInput struct {
	Left   bool
	Right  bool
	Down   bool
	Rotate bool
	Tick   bool
}

func (p *PlayerInput) EventOccurred() bool {
	return p.Left || p.Right || p.Down || p.Rotate || p.Tick
}

type Game struct {
	board   *Board
	factory *PieceFactory
	current *Piece
	state   GameState
}

func NewGame(seed int64) *Game {
	board := NewBoard()
	r := NewRand(seed)
	return NewGameWithFactory(board, NewPieceFactory(board, &r))
}

// NewGameWithFactory builds a game around an existing board. The factory must
// create pieces for that same board.
func NewGameWithFactory(board *Board, factory *PieceFactory) *Game {
	Assert(factory.board == board)
	g := &Game{
		board:   board,
		factory: factory,
		state:   Playing,
	}
	g.spawn()
	return g
}

func (g *Game) spawn() {
	g.current = g.factory.NewPiece()
	if !g.board.IsValidPosition(g.current.shape, g.current.pos) {
		g.state = GameOver
	}
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) IsGameOver() bool {
	return g.state == GameOver
}

// Board returns a snapshot of the board's cells. It does not include the
// current piece.
func (g *Game) Board() Grid {
	return g.board.Grid()
}

// CurrentPiece returns a copy of the current piece. Moving the copy does not
// move the game's piece.
func (g *Game) CurrentPiece() Piece {
	return *g.current
}

func (g *Game) MoveLeft() {
	if g.state == GameOver {
		return
	}
	g.current.MoveLeft()
}

func (g *Game) MoveRight() {
	if g.state == GameOver {
		return
	}
	g.current.MoveRight()
}

func (g *Game) Rotate() {
	if g.state == GameOver {
		return
	}
	g.current.Rotate()
}

func (g *Game) MoveDown() {
	if g.state == GameOver {
		return
	}
	if g.current.CanMoveDown() {
		g.current.MoveDown()
		return
	}
	g.board.PlacePiece(g.current.shape, g.current.pos, g.current.color)
	// Nothing is done with the number of cleared lines, there is no score.
	g.board.ClearLines()
	g.spawn()
}

// Step applies one frame of input. The order is fixed so that replaying the
// same inputs always gives the same game: rotate, left, right, down, then the
// tick.
func (g *Game) Step(input PlayerInput) {
	if input.Rotate {
		g.Rotate()
	}
	if input.Left {
		g.MoveLeft()
	}
	if input.Right {
		g.MoveRight()
	}
	if input.Down {
		g.MoveDown()
	}
	if input.Tick {
		g.MoveDown()
	}
}
