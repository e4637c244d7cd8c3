package main

import "image"

// Rectangle is a pixel area. Min is the top-left corner, Max is the
// bottom-right corner.
type Rectangle struct {
	Min Pt
	Max Pt
}

// NewRectangle builds a rectangle out of any two opposite corners.
func NewRectangle(x1, y1, x2, y2 int) Rectangle {
	return Rectangle{
		Min: Pt{min(x1, x2), min(y1, y2)},
		Max: Pt{max(x1, x2), max(y1, y2)},
	}
}

// NewRectangleI builds a rectangle out of its top-left corner and its size.
func NewRectangleI(x, y, width, height int) Rectangle {
	return Rectangle{Pt{x, y}, Pt{x + width, y + height}}
}

func (r Rectangle) Width() int {
	return r.Max.X - r.Min.X
}

func (r Rectangle) Height() int {
	return r.Max.Y - r.Min.Y
}

func (r Rectangle) ContainsPt(pt Pt) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

func (r Rectangle) Plus(pt Pt) Rectangle {
	return Rectangle{r.Min.Plus(pt), r.Max.Plus(pt)}
}

func (r Rectangle) ToImageRectangle() image.Rectangle {
	return image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
