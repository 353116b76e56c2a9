package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MeKo-Tech/flatten/internal/geometry"
)

// parseQuad parses a corner set from a "x,y;x,y;x,y;x,y" string in
// TL;TR;BR;BL order.
func parseQuad(s string) (geometry.Corners, error) {
	parts := strings.Split(s, ";")
	if len(parts) != 4 {
		return geometry.Corners{}, fmt.Errorf("expected 4 corners separated by ';', got %d", len(parts))
	}

	var pts [4]geometry.Point
	for i, part := range parts {
		p, err := parsePoint(part)
		if err != nil {
			return geometry.Corners{}, fmt.Errorf("corner %d: %w", i+1, err)
		}
		pts[i] = p
	}

	return geometry.NewCorners(pts[0], pts[1], pts[2], pts[3]), nil
}

func parsePoint(s string) (geometry.Point, error) {
	coords := strings.Split(strings.TrimSpace(s), ",")
	if len(coords) != 2 {
		return geometry.Point{}, fmt.Errorf("expected \"x,y\", got %q", s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(coords[0]), 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("invalid x coordinate %q: %w", coords[0], err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(coords[1]), 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("invalid y coordinate %q: %w", coords[1], err)
	}

	return geometry.Point{X: x, Y: y}, nil
}
