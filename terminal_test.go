package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

type recordedCell struct {
	r     rune
	style tcell.Style
}

// recordingScreen keeps whatever was drawn on it.
type recordingScreen map[Pt]recordedCell

func (s recordingScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	s[Pt{x, y}] = recordedCell{primary, style}
}

func newTestTerminal(cfg Config) *Terminal {
	return NewTerminal(cfg, &embeddedFiles, tcell.NewSimulationScreen("UTF-8"))
}

func TestTerminal_HandleKey(t *testing.T) {
	term := newTestTerminal(Config{Seed: 1, FallIntervalMs: 500})
	start := term.game.CurrentPiece().Pos()

	assert.True(t, term.HandleKey(tcell.KeyLeft, 0))
	assert.Equal(t, start.Plus(Pt{-1, 0}), term.game.CurrentPiece().Pos())
	assert.True(t, term.HandleKey(tcell.KeyDown, 0))
	assert.Equal(t, start.Plus(Pt{-1, 1}), term.game.CurrentPiece().Pos())
	assert.Equal(t, []PlayerInput{{Left: true}, {Down: true}},
		term.playthrough.History)

	// Paused games ignore moves.
	assert.True(t, term.HandleKey(tcell.KeyRune, 'p'))
	assert.True(t, term.HandleKey(tcell.KeyRight, 0))
	assert.Equal(t, start.Plus(Pt{-1, 1}), term.game.CurrentPiece().Pos())
	assert.Len(t, term.playthrough.History, 2)
	assert.True(t, term.HandleKey(tcell.KeyRune, 'p'))
	assert.True(t, term.HandleKey(tcell.KeyRight, 0))
	assert.Equal(t, start.Plus(Pt{0, 1}), term.game.CurrentPiece().Pos())

	// Restart.
	id := term.playthrough.Id
	assert.True(t, term.HandleKey(tcell.KeyRune, 'r'))
	assert.NotEqual(t, id, term.playthrough.Id)
	assert.Empty(t, term.playthrough.History)

	assert.False(t, term.HandleKey(tcell.KeyRune, 'q'))
	assert.False(t, term.HandleKey(tcell.KeyEscape, 0))
	assert.False(t, term.HandleKey(tcell.KeyCtrlC, 0))
}

func TestTerminal_ReplaysLikeTheGame(t *testing.T) {
	term := newTestTerminal(Config{Seed: 1, FallIntervalMs: 500})
	keys := []tcell.Key{tcell.KeyLeft, tcell.KeyUp, tcell.KeyDown,
		tcell.KeyRight, tcell.KeyRight}
	for i := range 400 {
		term.HandleKey(keys[i%len(keys)], 0)
		term.Step(PlayerInput{Tick: true})
	}

	g := NewGameFromPlaythrough(term.playthrough)
	for _, input := range term.playthrough.History {
		g.Step(input)
	}
	assert.Equal(t, term.game.StateBytes(), g.StateBytes())
}

func TestTerminal_Draw(t *testing.T) {
	term := newTestTerminal(Config{
		Seed:           1,
		LoadScenario:   true,
		ScenarioFile:   "data/scenarios/almost-tetris.yaml",
		FallIntervalMs: 500,
	})
	screen := recordingScreen{}
	term.Draw(screen)

	border := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	assert.Equal(t, recordedCell{'│', border}, screen[Pt{0, 0}])
	assert.Equal(t, recordedCell{'│', border}, screen[Pt{21, 19}])
	assert.Equal(t, recordedCell{'─', border}, screen[Pt{5, 20}])

	// Locked cells of the scenario, 2 characters each.
	jStyle := tcell.StyleDefault.Background(tcell.ColorBlue)
	assert.Equal(t, recordedCell{' ', jStyle}, screen[Pt{1, 16}])
	assert.Equal(t, recordedCell{' ', jStyle}, screen[Pt{2, 16}])
	empty := tcell.StyleDefault.Background(tcell.ColorBlack)
	assert.Equal(t, recordedCell{' ', empty}, screen[Pt{19, 16}])

	// The I piece lies on row 1 from column 4 to 7.
	iStyle := tcell.StyleDefault.Background(tcell.ColorAqua)
	assert.Equal(t, recordedCell{' ', iStyle}, screen[Pt{9, 1}])
	assert.Equal(t, recordedCell{' ', iStyle}, screen[Pt{16, 1}])
	assert.Equal(t, recordedCell{' ', empty}, screen[Pt{17, 1}])
}

func TestTerminal_DrawGameOver(t *testing.T) {
	term := newTestTerminal(Config{
		Seed:         1,
		LoadScenario: true,
		ScenarioFile: "data/scenarios/top-out.yaml",
	})
	require.True(t, term.game.IsGameOver())

	screen := recordingScreen{}
	term.Draw(screen)
	assert.Equal(t, 'G', screen[Pt{23, 0}].r)
	assert.Equal(t, 'A', screen[Pt{24, 0}].r)

	// Moves are ignored but quitting still works.
	assert.True(t, term.HandleKey(tcell.KeyLeft, 0))
	assert.Empty(t, term.playthrough.History)
	assert.False(t, term.HandleKey(tcell.KeyRune, 'q'))
}

func TestTerminalColor(t *testing.T) {
	assert.Equal(t, tcell.ColorBlack, TerminalColor(NoColor))
	assert.Equal(t, tcell.ColorFuchsia, TerminalColor(Magenta))
	assert.Equal(t, tcell.ColorGray, TerminalColor(Color(100)))
}
