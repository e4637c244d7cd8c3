package main

import (
	"embed"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// ReleaseVersion is the version of an executable built and given to someone
// to play. It is meant as a unique label for the functionality that a player
// is presented with.
// ReleaseVersion is expected to change very often. Certainly every time a new
// executable is built and sent to someone, it should be tagged with a unique
// ReleaseVersion. It must change when SimulationVersion or InputVersion
// change.
const ReleaseVersion = 1

//go:embed data/*
var embeddedFiles embed.FS

type GuiState int64

const (
	PlayScreen GuiState = iota
	PausedScreen
	GameOverScreen
	Playback
)

type Gui struct {
	Config
	FSys                FS
	game                *Game
	visWorld            VisWorld
	playthrough         Playthrough
	frameIdx            int64
	framesUntilFall     int64
	state               GuiState
	folderWatcher       FolderWatcher
	defaultFont         font.Face
	smallFont           font.Face
	playbackPaused      bool
	pressedKeys         []ebiten.Key
	justPressedKeys     []ebiten.Key // keys pressed in this frame
	FrameSkipShiftArrow int64
	FrameSkipArrow      int64
	enableDebugAreas    bool
	gameArea            Rectangle
	debugArea           Rectangle
	devModeEnabled      bool
}

type Config struct {
	StartState     string `yaml:"StartState"`
	PlaybackFile   string `yaml:"PlaybackFile"`
	RecordToFile   bool   `yaml:"RecordToFile"`
	RecordingFile  string `yaml:"RecordingFile"`
	FallIntervalMs int64  `yaml:"FallIntervalMs"`
	Seed           int64  `yaml:"Seed"`
	LoadScenario   bool   `yaml:"LoadScenario"`
	ScenarioFile   string `yaml:"ScenarioFile"`
}

func DefaultConfig() Config {
	return Config{
		StartState:     "Play",
		RecordingFile:  "recorded-playthrough.tetris1",
		FallIntervalMs: 500,
	}
}

func main() {
	var g Gui
	g.FrameSkipShiftArrow = 10
	g.FrameSkipArrow = 1

	var onDisk bool
	g.FSys, onDisk = DataFS(".", &embeddedFiles)
	if onDisk {
		g.folderWatcher.Folder = "data"
		// Initialize the watcher with the current timestamps of the files,
		// otherwise the first Update() reloads everything for no reason.
		g.folderWatcher.FolderContentsChanged()
	}

	filePassedForPlayback := false
	runInTerminal := false
	if len(os.Args) == 2 {
		switch os.Args[1] {
		case "developer-mode-enabled":
			g.devModeEnabled = true
		case "terminal":
			runInTerminal = true
		default:
			filePassedForPlayback = true
		}
	}

	if runInTerminal {
		g.LoadConfig()
		Check(RunTerminal(g.Config, g.FSys))
		return
	}

	g.LoadGuiData()

	if filePassedForPlayback {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	if g.StartState == "Playback" {
		g.state = Playback
		g.enableDebugAreas = true
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
		g.game = NewGameFromPlaythrough(g.playthrough)
		g.visWorld = NewVisWorld(g.game.Board())
		log.Printf("playing back %s: %d frames", g.playthrough.Id,
			len(g.playthrough.History))
	} else if g.StartState == "Play" {
		g.StartNewGame()
	} else {
		panic(fmt.Errorf("invalid g.StartState: %s", g.StartState))
	}

	err := ebiten.RunGame(&g)
	Check(err)
}

// NewSeed returns the configured seed or, if there is none, a seed based on
// the current time.
func (c *Config) NewSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func (c *Config) NewScenario(fsys FS) (s Scenario) {
	if c.LoadScenario {
		s = LoadScenario(fsys, c.ScenarioFile)
	}
	return
}

func (g *Gui) StartNewGame() {
	g.playthrough = NewPlaythrough(g.NewScenario(g.FSys), g.NewSeed())
	g.game = NewGameFromPlaythrough(g.playthrough)
	g.visWorld = NewVisWorld(g.game.Board())
	g.frameIdx = 0
	g.framesUntilFall = g.FramesPerFall()
	g.state = PlayScreen
	if g.RecordToFile {
		DeleteFile(g.RecordingFile)
	}
	log.Printf("new game %s, seed %d", g.playthrough.Id, g.playthrough.Seed)
}

// FramesPerFall converts the fall interval to a number of Update() calls.
func (c *Config) FramesPerFall() int64 {
	return max(1, c.FallIntervalMs*int64(ebiten.DefaultTPS)/1000)
}

// HandlePanic saves the current playthrough before letting the panic go on,
// so that the crash can be replayed.
func (g *Gui) HandlePanic() {
	r := recover()
	if r == nil {
		return
	}
	if g.state != Playback && len(g.playthrough.History) > 0 {
		name := g.RecordingFile
		if name == "" {
			name = "crash.tetris1"
		}
		// Don't let a failure to write hide the original panic.
		CheckCrashes = false
		WriteFile(name, g.playthrough.Serialize())
		log.Printf("saved playthrough %s to %s", g.playthrough.Id, name)
	}
	panic(r)
}
