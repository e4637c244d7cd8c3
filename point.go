package main

// Pt is used both for cells on the board and for offsets inside a shape. Offsets
// can be negative.
type Pt struct {
	X int
	Y int
}

func (p Pt) Plus(other Pt) Pt {
	return Pt{p.X + other.X, p.Y + other.Y}
}

func (p Pt) Minus(other Pt) Pt {
	return Pt{p.X - other.X, p.Y - other.Y}
}

func (p Pt) Times(multiply int) Pt {
	return Pt{p.X * multiply, p.Y * multiply}
}

// RotatedAround returns p rotated by 90 degrees around pivot.
// In screen coordinates (y grows downwards) this is a clockwise rotation.
func (p Pt) RotatedAround(pivot Pt) Pt {
	d := p.Minus(pivot)
	return Pt{-d.Y, d.X}.Plus(pivot)
}
