package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
)

// The terminal frontend draws every cell as two characters, so the board
// looks roughly square.
const TerminalCellWidth = 2

var terminalColors = [...]tcell.Color{
	NoColor: tcell.ColorBlack,
	Cyan:    tcell.ColorAqua,
	Blue:    tcell.ColorBlue,
	Orange:  tcell.ColorOrange,
	Yellow:  tcell.ColorYellow,
	Green:   tcell.ColorGreen,
	Magenta: tcell.ColorFuchsia,
	Red:     tcell.ColorRed,
	Gray:    tcell.ColorGray,
}

// CellSetter is the part of tcell.Screen that drawing needs.
type CellSetter interface {
	SetContent(x int, y int, primary rune, combining []rune, style tcell.Style)
}

// Terminal runs a game in a text terminal. Key events and the fall timer are
// both handled by the goroutine that calls Run, so the Game only ever has one
// driver.
type Terminal struct {
	Config
	FSys        FS
	screen      tcell.Screen
	game        *Game
	playthrough Playthrough
	paused      bool
}

func RunTerminal(cfg Config, fsys FS) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal screen: %w", err)
	}
	defer screen.Fini()

	// The screen owns the terminal, log lines would be drawn over the board.
	previous := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(previous)

	t := NewTerminal(cfg, fsys, screen)
	t.Run()
	return nil
}

func NewTerminal(cfg Config, fsys FS, screen tcell.Screen) *Terminal {
	t := &Terminal{
		Config: cfg,
		FSys:   fsys,
		screen: screen,
	}
	t.StartNewGame()
	return t
}

func (t *Terminal) StartNewGame() {
	t.playthrough = NewPlaythrough(t.NewScenario(t.FSys), t.NewSeed())
	t.game = NewGameFromPlaythrough(t.playthrough)
	t.paused = false
	log.Printf("new game %s, seed %d", t.playthrough.Id, t.playthrough.Seed)
}

func (t *Terminal) Run() {
	ticker := time.NewTicker(time.Duration(max(1, t.FallIntervalMs)) *
		time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			// PollEvent returns nil once the screen is finalized.
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	t.Draw(t.screen)
	t.screen.Show()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !t.HandleKey(ev.Key(), ev.Rune()) {
					return
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		case <-ticker.C:
			if !t.paused && !t.game.IsGameOver() {
				t.Step(PlayerInput{Tick: true})
			}
		}
		t.screen.Clear()
		t.Draw(t.screen)
		t.screen.Show()
	}
}

// HandleKey reacts to one key press and returns false if the player wants to
// quit.
func (t *Terminal) HandleKey(key tcell.Key, r rune) bool {
	var input PlayerInput
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		input.Left = true
	case tcell.KeyRight:
		input.Right = true
	case tcell.KeyDown:
		input.Down = true
	case tcell.KeyUp:
		input.Rotate = true
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case ' ':
			input.Rotate = true
		case 'p':
			t.paused = !t.paused
		case 'r':
			t.StartNewGame()
		}
	}

	if !t.paused && !t.game.IsGameOver() && input.EventOccurred() {
		t.Step(input)
	}
	return true
}

func (t *Terminal) Step(input PlayerInput) {
	t.playthrough.History = append(t.playthrough.History, input)
	if t.RecordToFile {
		WriteFile(t.RecordingFile, t.playthrough.Serialize())
	}
	t.game.Step(input)
}

func (t *Terminal) Draw(s CellSetter) {
	grid := t.game.Board()
	if !t.game.IsGameOver() {
		piece := t.game.CurrentPiece()
		for _, cell := range piece.Cells() {
			if grid.InBounds(cell) {
				grid[cell.Y][cell.X] = piece.Color()
			}
		}
	}

	border := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	right := 1 + BoardWidth*TerminalCellWidth
	for y := range BoardHeight {
		s.SetContent(0, y, '│', nil, border)
		s.SetContent(right, y, '│', nil, border)
		for x := range BoardWidth {
			style := tcell.StyleDefault.Background(TerminalColor(grid[y][x]))
			for i := range TerminalCellWidth {
				s.SetContent(1+x*TerminalCellWidth+i, y, ' ', nil, style)
			}
		}
	}
	for x := 0; x <= right; x++ {
		s.SetContent(x, BoardHeight, '─', nil, border)
	}

	status := ""
	switch {
	case t.game.IsGameOver():
		status = "GAME OVER - r to restart, q to quit"
	case t.paused:
		status = "PAUSED - p to continue"
	}
	DrawString(s, right+2, 0, status, border)
}

func TerminalColor(c Color) tcell.Color {
	if int(c) >= len(terminalColors) {
		return tcell.ColorGray
	}
	return terminalColors[c]
}

func DrawString(s CellSetter, x, y int, str string, style tcell.Style) {
	for i, r := range []rune(str) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
