package types

// Point is a position in logical screen pixels.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in logical screen pixels.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned box whose top-left corner is (X, Y).
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Center returns the middle of the box.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Size returns the box dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains reports whether p lies inside the box, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Center returns the middle of a viewport of this size.
func (s Size) Center() Point {
	return Point{X: s.Width / 2, Y: s.Height / 2}
}
