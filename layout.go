package main

// Visual areas
// ------------
//
// - The board area: the cells of the Board. Has a fixed size, known at
// compile time.
// - The game area: the board area plus the status line above it and a frame
// around it. Has a fixed size, known at compile time.
// - The debug area: connected to the bottom of the game area, holds the
// playback controls. Its size is known at compile time but the decision to
// display it or not happens at runtime.
// - The screen: contains the game area, the debug area if it is displayed
// and any margins necessary to fill in the application window on the OS. Its
// size is known only at run time.

const CellPixelSize = 40
const BoardAreaWidth = BoardWidth * CellPixelSize
const BoardAreaHeight = BoardHeight * CellPixelSize
const BoardMarginLeft = 40
const BoardMarginRight = 40
const BoardMarginUp = 120
const BoardMarginDown = 40
const GameWidth = BoardAreaWidth + BoardMarginLeft + BoardMarginRight
const GameHeight = BoardAreaHeight + BoardMarginUp + BoardMarginDown
const DebugHeight = 60

// The areas below are all relative to the game area.
var playScreenBoardArea = NewRectangleI(
	BoardMarginLeft,
	BoardMarginUp,
	BoardAreaWidth,
	BoardAreaHeight)
var playScreenStatusArea = NewRectangleI(BoardMarginLeft, 20, BoardAreaWidth, 80)

// The areas below are relative to the debug area.
var debugPlayButton = NewRectangleI(0, 0, DebugHeight, DebugHeight)
var debugPlayBar = NewRectangleI(DebugHeight+10, 0, GameWidth-DebugHeight-20, DebugHeight)

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	defer g.HandlePanic()

	// The screen bitmap gets the aspect ratio of the window and is large
	// enough to contain the game area (and the debug area, if enabled). Either
	// the screen width matches the game width or the screen height matches the
	// game height. Ebitengine then scales the bitmap to the window.
	//
	// The aspect ratio of a rectangle is width / height. If the window is
	// thinner than the game, the game fills the width of the screen and there
	// is space left at the top and the bottom. Otherwise the game fills the
	// height.
	screenAspectRatio := float64(outsideWidth) / float64(outsideHeight)
	gameWidth := GameWidth
	gameHeight := GameHeight
	if g.enableDebugAreas {
		gameHeight += DebugHeight
	}
	gameAspectRatio := float64(gameWidth) / float64(gameHeight)
	if screenAspectRatio < gameAspectRatio {
		screenWidth = gameWidth
		screenHeight = int(float64(screenWidth) / screenAspectRatio)
	} else {
		screenHeight = gameHeight
		screenWidth = int(float64(screenHeight) * screenAspectRatio)
	}

	// Define the game area relative to the total screen area.
	g.gameArea = NewRectangleI(
		(screenWidth-gameWidth)/2,
		(screenHeight-gameHeight)/2,
		GameWidth,
		GameHeight)

	// Define the debug area relative to the total screen area.
	g.debugArea = NewRectangleI(
		g.gameArea.Min.X,
		g.gameArea.Max.Y,
		GameWidth,
		DebugHeight)
	return
}

func (g *Gui) ScreenToDebug(pt Pt) Pt {
	return pt.Minus(g.debugArea.Min)
}

// CellToGame returns the top-left pixel of a board cell, relative to the game
// area.
func CellToGame(cell Pt) Pt {
	return cell.Times(CellPixelSize).Plus(playScreenBoardArea.Min)
}
