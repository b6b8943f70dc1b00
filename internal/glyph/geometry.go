package glyph

import "math"

// Point is a 2D coordinate with the origin at the top-left corner.
type Point struct {
	X, Y float64
}

// Box is the size of the area a glyph is drawn into.
type Box struct {
	Width, Height float64
}

// Rect is a Box placed at an origin inside its parent.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Box returns the size of r.
func (r Rect) Box() Box {
	return Box{Width: r.Width, Height: r.Height}
}

// Contains reports whether (x, y) lies inside r. The right and bottom
// edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Outline is a closed polygon: the last vertex repeats the first.
type Outline []Point

// Clone returns a copy of o that shares no memory with it.
func (o Outline) Clone() Outline {
	if o == nil {
		return nil
	}
	c := make(Outline, len(o))
	copy(c, o)
	return c
}

// Translate returns o moved by (dx, dy).
func (o Outline) Translate(dx, dy float64) Outline {
	c := make(Outline, len(o))
	for i, p := range o {
		c[i] = Point{X: p.X + dx, Y: p.Y + dy}
	}
	return c
}

// Equal reports whether o and p have exactly the same vertices.
func (o Outline) Equal(p Outline) bool {
	if len(o) != len(p) {
		return false
	}
	for i := range o {
		if o[i] != p[i] {
			return false
		}
	}
	return true
}

// Closed reports whether the last vertex returns to the first.
func (o Outline) Closed() bool {
	return len(o) > 1 && o[0] == o[len(o)-1]
}

// MaxDistance returns the largest per-vertex displacement between o and p,
// or +Inf when their vertex counts differ.
func (o Outline) MaxDistance(p Outline) float64 {
	if len(o) != len(p) {
		return math.Inf(1)
	}
	var d float64
	for i := range o {
		d = math.Max(d, math.Hypot(o[i].X-p[i].X, o[i].Y-p[i].Y))
	}
	return d
}
