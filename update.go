package main

import (
	"log"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// A held key sends its first move right away, then waits KeyRepeatDelay
// frames and then sends a move every KeyRepeatInterval frames.
const KeyRepeatDelay = 15
const KeyRepeatInterval = 4

func KeyRepeats(nFramesPressed int) bool {
	if nFramesPressed == 1 {
		return true
	}
	return nFramesPressed >= KeyRepeatDelay &&
		(nFramesPressed-KeyRepeatDelay)%KeyRepeatInterval == 0
}

func (g *Gui) Update() error {
	defer g.HandlePanic()

	g.pressedKeys = g.pressedKeys[:0]
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys)
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	if g.folderWatcher.FolderContentsChanged() {
		g.LoadGuiData()
	}

	switch g.state {
	case PlayScreen:
		g.UpdatePlayScreen()
	case PausedScreen:
		g.UpdatePausedScreen()
	case GameOverScreen:
		g.UpdateGameOverScreen()
	case Playback:
		g.UpdatePlayback()
	default:
		panic("unhandled default case")
	}

	return nil
}

func (g *Gui) UpdatePlayScreen() {
	if g.JustPressed(ebiten.KeyP) || g.JustPressed(ebiten.KeyEscape) {
		g.state = PausedScreen
		return
	}
	if g.JustPressed(ebiten.KeyR) {
		g.StartNewGame()
		return
	}

	// Get the player input.
	var input PlayerInput
	input.Left = g.Repeats(ebiten.KeyLeft)
	input.Right = g.Repeats(ebiten.KeyRight)
	input.Down = g.Repeats(ebiten.KeyDown)
	input.Rotate = g.JustPressed(ebiten.KeySpace) || g.JustPressed(ebiten.KeyUp)
	g.framesUntilFall--
	if g.framesUntilFall <= 0 {
		input.Tick = true
		g.framesUntilFall = g.FramesPerFall()
	}

	// Save the input in the playthrough.
	g.playthrough.History = append(g.playthrough.History, input)
	if g.RecordToFile && input.EventOccurred() {
		// IMPORTANT: save the playthrough before stepping the Game. If a bug
		// in the Game causes it to crash, we want to save the input that
		// caused the bug before the program crashes.
		WriteFile(g.RecordingFile, g.playthrough.Serialize())
	}

	g.game.Step(input)
	g.visWorld.Step(g.game.Board())
	g.frameIdx++

	if g.game.IsGameOver() {
		g.state = GameOverScreen
		log.Printf("game %s over after %d frames", g.playthrough.Id, g.frameIdx)
	}
}

func (g *Gui) UpdatePausedScreen() {
	if g.JustPressed(ebiten.KeyP) || g.JustPressed(ebiten.KeyEscape) ||
		g.JustPressed(ebiten.KeySpace) {
		g.state = PlayScreen
		return
	}
	if g.JustPressed(ebiten.KeyR) {
		g.StartNewGame()
	}
}

func (g *Gui) UpdateGameOverScreen() {
	// Keep the flashes of the last lock going.
	g.visWorld.Step(g.game.Board())
	if g.JustPressed(ebiten.KeyR) || g.JustPressed(ebiten.KeyEnter) {
		g.StartNewGame()
	}
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

func (g *Gui) Repeats(key ebiten.Key) bool {
	return KeyRepeats(inpututil.KeyPressDuration(key))
}

func (g *Gui) CursorPos() Pt {
	x, y := ebiten.CursorPosition()
	return Pt{x, y}
}

func (g *Gui) UpdatePlayback() {
	nFrames := int64(len(g.playthrough.History))
	if nFrames == 0 {
		return
	}

	cursor := g.ScreenToDebug(g.CursorPos())
	userRequestedPlaybackPause := g.JustPressed(ebiten.KeySpace) ||
		(inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) &&
			debugPlayButton.ContainsPt(cursor))
	if userRequestedPlaybackPause {
		g.playbackPaused = !g.playbackPaused
	}

	// Choose target frame.
	targetFrameIdx := g.frameIdx

	// Compute the target frame index based on where on the play bar the user
	// clicked.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) &&
		debugPlayBar.ContainsPt(cursor) {
		dx := int64(cursor.X - debugPlayBar.Min.X)
		targetFrameIdx = dx * nFrames / int64(debugPlayBar.Width())
	}

	if g.Pressed(ebiten.KeyLeft) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx -= g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyRight) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyLeft) && !g.Pressed(ebiten.KeyShift) {
		if g.playbackPaused {
			targetFrameIdx -= g.FrameSkipArrow
		} else {
			// Going back while playing needs 2 frames, one of them is
			// immediately played forward again below.
			targetFrameIdx -= g.FrameSkipArrow * 2
		}
	}

	if g.Pressed(ebiten.KeyRight) && !g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipArrow
	}

	targetFrameIdx = max(0, min(targetFrameIdx, nFrames))

	if targetFrameIdx != g.frameIdx {
		// Rewind.
		g.game = NewGameFromPlaythrough(g.playthrough)

		// Replay the game.
		for i := int64(0); i < targetFrameIdx; i++ {
			g.game.Step(g.playthrough.History[i])
		}
		g.visWorld = NewVisWorld(g.game.Board())

		g.frameIdx = targetFrameIdx
	}

	if !g.playbackPaused && g.frameIdx < nFrames {
		g.game.Step(g.playthrough.History[g.frameIdx])
		g.visWorld.Step(g.game.Board())
		g.frameIdx++
		if g.frameIdx == nFrames {
			log.Printf("playback of %s reached the end", g.playthrough.Id)
			g.playbackPaused = true
		}
	}
}
