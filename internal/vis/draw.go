package vis

import (
	"image"
	"image/color"
	"math"

	"github.com/MeKo-Tech/flatten/internal/geometry"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawQuad draws the closed outline of a corner set into dst.
func drawQuad(dst *image.RGBA, pts [4]image.Point, col color.Color, thickness int) {
	for i := range pts {
		drawLine(dst, pts[i], pts[(i+1)%len(pts)], col, thickness)
	}
}

// drawLine draws a line between two points using a simple Bresenham variant.
func drawLine(dst *image.RGBA, a, b image.Point, col color.Color, thickness int) {
	x0, y0 := a.X, a.Y
	x1, y1 := b.X, b.Y
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		drawThickPoint(dst, x0, y0, col, thickness)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func drawThickPoint(dst *image.RGBA, x, y int, col color.Color, thickness int) {
	if thickness < 1 {
		thickness = 1
	}
	r := (thickness - 1) / 2
	for yy := y - r; yy <= y+r; yy++ {
		for xx := x - r; xx <= x+r; xx++ {
			if image.Pt(xx, yy).In(dst.Bounds()) {
				dst.Set(xx, yy, col)
			}
		}
	}
}

// drawMarker draws a small filled square centered on a point.
func drawMarker(dst *image.RGBA, at image.Point, col color.Color, size int) {
	drawThickPoint(dst, at.X, at.Y, col, size)
}

// drawLabel renders a short text label next to a point.
func drawLabel(dst *image.RGBA, text string, at image.Point, col color.Color) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  &image.Uniform{col},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(at.X+4, at.Y-4),
	}
	drawer.DrawString(text)
}

// cornerLabels returns the label and anchor for each corner in winding order.
func cornerLabels(c geometry.Corners) [4]struct {
	Text  string
	Point geometry.Point
} {
	return [4]struct {
		Text  string
		Point geometry.Point
	}{
		{"TL", c.TL},
		{"TR", c.TR},
		{"BR", c.BR},
		{"BL", c.BL},
	}
}
