package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"image/color"
)

// SubImage returns a sub-region of screen.
// r indicates a rectangle inside of screen, in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func SubImage(screen *ebiten.Image, r Rectangle) *ebiten.Image {
	// Ebitengine keeps the coordinates of the parent image in a sub-image.
	// Everything drawn in this package works in local coordinates instead, so
	// translate r here.
	minPt := screen.Bounds().Min
	return screen.SubImage(r.Plus(Pt{minPt.X, minPt.Y}).ToImageRectangle()).(*ebiten.Image)
}

// DrawRect fills r, given in the local coordinates of screen.
func DrawRect(screen *ebiten.Image, r Rectangle, c color.Color) {
	minPt := screen.Bounds().Min
	vector.DrawFilledRect(screen,
		float32(minPt.X+r.Min.X),
		float32(minPt.Y+r.Min.Y),
		float32(r.Width()),
		float32(r.Height()),
		c,
		false)
}

// DrawRectOutline draws the border of r, given in the local coordinates of
// screen.
func DrawRectOutline(screen *ebiten.Image, r Rectangle, width float32, c color.Color) {
	minPt := screen.Bounds().Min
	vector.StrokeRect(screen,
		float32(minPt.X+r.Min.X),
		float32(minPt.Y+r.Min.Y),
		float32(r.Width()),
		float32(r.Height()),
		width,
		c,
		false)
}

// Blend mixes c1 and c2. factor 0 gives c1 and factor 1 gives c2.
func Blend(c1, c2 color.NRGBA, factor float64) color.NRGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-factor) + float64(b)*factor)
	}
	return color.NRGBA{
		R: mix(c1.R, c2.R),
		G: mix(c1.G, c2.G),
		B: mix(c1.B, c2.B),
		A: mix(c1.A, c2.A),
	}
}
