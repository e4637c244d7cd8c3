package main

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func (g *Gui) LoadGuiData() {
	g.LoadConfig()
	g.UpdateWindowSize()

	fontData, err := opentype.Parse(goregular.TTF)
	Check(err)

	g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    44,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)

	g.smallFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    24,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)
}

func (g *Gui) LoadConfig() {
	// Read from the disk over and over until a full read is possible.
	// This avoids crashing when a file is read while it is still being
	// written, which happens when the data folder is watched for changes.
	// When reading from the embedded filesystem, crash as soon as possible.
	previousVal := CheckCrashes
	if _, embedded := g.FSys.(*embed.FS); !embedded {
		CheckCrashes = false
	}
	for {
		CheckFailed = nil
		g.Config = DefaultConfig()
		if g.devModeEnabled {
			LoadYAML(g.FSys, "data/config-dev.yaml", &g.Config)
		} else {
			LoadYAML(g.FSys, "data/config.yaml", &g.Config)
		}
		if g.LoadScenario {
			// Only to find out early if the file is broken.
			LoadScenario(g.FSys, g.ScenarioFile)
		}

		if CheckFailed == nil {
			break
		}
	}
	CheckCrashes = previousVal
}

func (g *Gui) UpdateWindowSize() {
	_, height := ebiten.ScreenSizeInFullscreen()
	// Half the game area size fits most monitors, landscape or portrait.
	windowHeight := min(height*8/10, GameHeight/2+DebugHeight)
	windowWidth := windowHeight * GameWidth / (GameHeight + DebugHeight)
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Tetris1")
}
