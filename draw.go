package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

var colorBackground = color.NRGBA{R: 180, G: 180, B: 180, A: 255}
var colorGameArea = color.NRGBA{R: 30, G: 30, B: 40, A: 255}
var colorEmptyCell = color.NRGBA{R: 45, G: 45, B: 60, A: 255}
var colorGridLine = color.NRGBA{R: 60, G: 60, B: 80, A: 255}
var colorFlash = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var colorText = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
var colorOverlay = color.NRGBA{R: 0, G: 0, B: 0, A: 160}
var colorDebugArea = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
var colorPlayBar = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
var colorPlayCursor = color.NRGBA{R: 251, G: 150, B: 32, A: 255}

var cellColors = [...]color.NRGBA{
	NoColor: colorEmptyCell,
	Cyan:    {R: 0, G: 240, B: 240, A: 255},
	Blue:    {R: 0, G: 80, B: 240, A: 255},
	Orange:  {R: 240, G: 160, B: 0, A: 255},
	Yellow:  {R: 240, G: 240, B: 0, A: 255},
	Green:   {R: 0, G: 240, B: 0, A: 255},
	Magenta: {R: 200, G: 0, B: 240, A: 255},
	Red:     {R: 240, G: 0, B: 0, A: 255},
	Gray:    {R: 128, G: 128, B: 128, A: 255},
}

func CellColor(c Color) color.NRGBA {
	if int(c) >= len(cellColors) {
		return cellColors[Gray]
	}
	return cellColors[c]
}

func (g *Gui) Draw(screen *ebiten.Image) {
	defer g.HandlePanic()

	// The screen bitmap has the aspect ratio of the application window. We fill
	// it with some background. Then, we select the area inside of screen on
	// which we draw all the actually interesting elements of our game.
	screen.Fill(colorBackground)

	game := SubImage(screen, g.gameArea)
	switch g.state {
	case PlayScreen:
		g.DrawPlayScreen(game)
	case PausedScreen:
		g.DrawPlayScreen(game)
		g.DrawOverlay(game, "PAUSED", "P to continue, R to restart")
	case GameOverScreen:
		g.DrawPlayScreen(game)
		g.DrawOverlay(game, "GAME OVER", "R to play again")
	case Playback:
		g.DrawPlayScreen(game)
		if g.game.IsGameOver() {
			g.DrawOverlay(game, "GAME OVER", "")
		}
	default:
		panic("unhandled default case")
	}

	if g.enableDebugAreas {
		g.DrawDebugControls(SubImage(screen, g.debugArea))
	}
}

func (g *Gui) DrawPlayScreen(screen *ebiten.Image) {
	screen.Fill(colorGameArea)

	// Status line.
	status := SubImage(screen, playScreenStatusArea)
	if g.state == Playback {
		g.DrawText(status, g.smallFont, fmt.Sprintf("playback %d / %d",
			g.frameIdx, len(g.playthrough.History)), true, true, colorText)
	} else {
		g.DrawText(status, g.defaultFont, "TETRIS", true, true, colorText)
	}

	// Locked cells.
	grid := g.game.Board()
	for y := range BoardHeight {
		for x := range BoardWidth {
			cell := Pt{x, y}
			c := Blend(CellColor(grid[y][x]), colorFlash, g.visWorld.Flash(cell)*0.7)
			g.DrawCell(screen, cell, c)
		}
	}

	// Current piece, drawn on top of the board. Cells above the board are
	// not visible.
	if !g.game.IsGameOver() {
		piece := g.game.CurrentPiece()
		for _, cell := range piece.Cells() {
			if cell.Y < 0 {
				continue
			}
			g.DrawCell(screen, cell, CellColor(piece.Color()))
		}
	}

	DrawRectOutline(screen, playScreenBoardArea, 2, colorText)
}

func (g *Gui) DrawCell(screen *ebiten.Image, cell Pt, c color.Color) {
	r := NewRectangleI(0, 0, CellPixelSize, CellPixelSize).Plus(CellToGame(cell))
	DrawRect(screen, r, c)
	DrawRectOutline(screen, r, 1, colorGridLine)
}

func (g *Gui) DrawOverlay(screen *ebiten.Image, title string, hint string) {
	DrawRect(screen, NewRectangleI(0, 0, GameWidth, GameHeight), colorOverlay)
	middle := GameHeight / 2
	g.DrawText(SubImage(screen, NewRectangleI(0, middle-80, GameWidth, 80)),
		g.defaultFont, title, true, true, colorText)
	if hint != "" {
		g.DrawText(SubImage(screen, NewRectangleI(0, middle, GameWidth, 60)),
			g.smallFont, hint, true, true, colorText)
	}
}

func (g *Gui) DrawDebugControls(screen *ebiten.Image) {
	screen.Fill(colorDebugArea)

	// Play/pause button.
	button := SubImage(screen, debugPlayButton)
	label := "||"
	if g.playbackPaused {
		label = ">"
	}
	g.DrawText(button, g.smallFont, label, true, true, colorGameArea)

	// Play bar.
	DrawRect(screen, debugPlayBar, colorPlayBar)

	// Playback bar cursor.
	nFrames := max(1, len(g.playthrough.History))
	cursorX := debugPlayBar.Min.X +
		int(g.frameIdx)*debugPlayBar.Width()/nFrames - DebugHeight/4
	DrawRect(screen, NewRectangleI(cursorX, 0, DebugHeight/2, DebugHeight),
		colorPlayCursor)
}

func (g *Gui) DrawText(screen *ebiten.Image, face font.Face, message string,
	centerX bool, centerY bool, color color.Color) {
	// The origin of the text is kind of the lower-left corner of its bounds.
	// If you do text.Draw at (x, y), most of the text will appear above y and
	// a little bit under it. To have all the pixels of the text above y, draw
	// it at (x, y - text.BoundString().Max.Y).
	textSize := text.BoundString(face, message)
	var offsetX int
	if centerX {
		offsetX = (screen.Bounds().Dx() - textSize.Dx()) / 2
	}

	var offsetY int
	if centerY {
		offsetY = (screen.Bounds().Dy() - textSize.Dy()) / 2
	}

	textX := screen.Bounds().Min.X + offsetX
	textY := screen.Bounds().Max.Y - offsetY - textSize.Max.Y
	text.Draw(screen, message, face, textX, textY, color)
}
