// Package vis renders diagnostic previews of estimated homographies. A
// preview shows the source and destination quads side by side on one canvas
// with a grid of source samples mapped through the matrix, which makes a
// bad estimate (or an identity fallback) visible at a glance.
package vis

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/MeKo-Tech/flatten/internal/geometry"
	"github.com/MeKo-Tech/flatten/internal/homography"
	"github.com/disintegration/imaging"
)

// Options controls preview rendering.
type Options struct {
	Width       int
	Height      int
	GridSteps   int
	SourceColor color.Color
	DestColor   color.Color
}

// DefaultOptions returns the default preview rendering options.
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      800,
		GridSteps:   8,
		SourceColor: color.RGBA{255, 0, 0, 255},
		DestColor:   color.RGBA{0, 255, 0, 255},
	}
}

// viewport maps world coordinates onto canvas pixels, preserving aspect.
type viewport struct {
	scale float64
	offX  float64
	offY  float64
}

func (v viewport) pixel(p geometry.Point) image.Point {
	return image.Pt(
		int(math.Round(p.X*v.scale+v.offX)),
		int(math.Round(p.Y*v.scale+v.offY)),
	)
}

// fitViewport computes a viewport that fits all given points into a
// width x height canvas with a 10% margin.
func fitViewport(pts []geometry.Point, width, height int) viewport {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		if !p.IsFinite() {
			continue
		}
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if math.IsInf(minX, 1) {
		return viewport{scale: 1}
	}

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}

	margin := 0.1
	usableW := float64(width) * (1 - 2*margin)
	usableH := float64(height) * (1 - 2*margin)
	scale := math.Min(usableW/spanX, usableH/spanY)

	// Center the content
	offX := (float64(width) - spanX*scale) / 2
	offY := (float64(height) - spanY*scale) / 2
	return viewport{
		scale: scale,
		offX:  offX - minX*scale,
		offY:  offY - minY*scale,
	}
}

// Render draws a preview of the transform from src to dst. The source quad
// and its sample grid use SourceColor; the destination quad and the grid
// mapped through m use DestColor.
func Render(src, dst geometry.Corners, m homography.Matrix3x3, opts Options) *image.RGBA {
	if opts.Width < 1 || opts.Height < 1 {
		def := DefaultOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.GridSteps < 1 {
		opts.GridSteps = DefaultOptions().GridSteps
	}
	if opts.SourceColor == nil {
		opts.SourceColor = DefaultOptions().SourceColor
	}
	if opts.DestColor == nil {
		opts.DestColor = DefaultOptions().DestColor
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	srcPts := src.Points()
	dstPts := dst.Points()
	world := make([]geometry.Point, 0, 8)
	world = append(world, srcPts[:]...)
	world = append(world, dstPts[:]...)
	vp := fitViewport(world, opts.Width, opts.Height)

	drawQuad(img, pixelQuad(src, vp), opts.SourceColor, 2)
	drawQuad(img, pixelQuad(dst, vp), opts.DestColor, 2)

	// Grid of bilinear samples across the source quad, mapped through m
	steps := opts.GridSteps
	for i := 0; i <= steps; i++ {
		for j := 0; j <= steps; j++ {
			u := float64(i) / float64(steps)
			v := float64(j) / float64(steps)
			p := bilinear(src, u, v)
			drawMarker(img, vp.pixel(p), opts.SourceColor, 3)

			mx, my := m.Apply(p.X, p.Y)
			mapped := geometry.Point{X: mx, Y: my}
			if mapped.IsFinite() {
				drawMarker(img, vp.pixel(mapped), opts.DestColor, 3)
			}
		}
	}

	for _, l := range cornerLabels(src) {
		drawLabel(img, l.Text, vp.pixel(l.Point), opts.SourceColor)
	}
	for _, l := range cornerLabels(dst) {
		drawLabel(img, l.Text, vp.pixel(l.Point), opts.DestColor)
	}

	return img
}

// bilinear interpolates a point inside the quad at parameters u, v in [0,1].
func bilinear(c geometry.Corners, u, v float64) geometry.Point {
	top := geometry.Point{
		X: c.TL.X + u*(c.TR.X-c.TL.X),
		Y: c.TL.Y + u*(c.TR.Y-c.TL.Y),
	}
	bottom := geometry.Point{
		X: c.BL.X + u*(c.BR.X-c.BL.X),
		Y: c.BL.Y + u*(c.BR.Y-c.BL.Y),
	}
	return geometry.Point{
		X: top.X + v*(bottom.X-top.X),
		Y: top.Y + v*(bottom.Y-top.Y),
	}
}

func pixelQuad(c geometry.Corners, vp viewport) [4]image.Point {
	pts := c.Points()
	var out [4]image.Point
	for i, p := range pts {
		out[i] = vp.pixel(p)
	}
	return out
}

// Save writes the preview image to path. The format follows the file
// extension (png, jpg, ...).
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save preview to %s: %w", path, err)
	}
	return nil
}

// ParseHexColor parses a #RRGGBB hex color string.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: expected #RRGGBB", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{r, g, b, 255}, nil
}
