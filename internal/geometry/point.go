package geometry

import "math"

// Point represents a 2D coordinate in float space.
type Point struct {
	X float64
	Y float64
}

// IsFinite reports whether both coordinates are finite (no NaN/Inf).
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Corners holds the four corners of a quadrilateral in fixed winding order:
// top-left, top-right, bottom-right, bottom-left. The ordering is
// caller-guaranteed and never re-derived.
type Corners struct {
	TL Point
	TR Point
	BR Point
	BL Point
}

// NewCorners builds a Corners from four points in TL, TR, BR, BL order.
func NewCorners(tl, tr, br, bl Point) Corners {
	return Corners{TL: tl, TR: tr, BR: br, BL: bl}
}

// Points returns the corners as an array in winding order.
func (c Corners) Points() [4]Point {
	return [4]Point{c.TL, c.TR, c.BR, c.BL}
}

// HasNaN reports whether any of the eight coordinates is NaN.
func (c Corners) HasNaN() bool {
	for _, p := range c.Points() {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return true
		}
	}
	return false
}

// Centroid returns the mean of the four corner points.
func (c Corners) Centroid() Point {
	pts := c.Points()
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	return Point{X: cx / 4, Y: cy / 4}
}
