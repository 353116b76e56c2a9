package geometry

import "math"

// minMeanDistance is the smallest mean centroid distance for which a scale
// factor is derived; below it the scale stays 1.0 to avoid division blow-up.
const minMeanDistance = 1e-10

// Normalization describes the similarity transform applied by Normalize:
// each point is translated by (Tx, Ty) and then multiplied by Scale.
type Normalization struct {
	Scale float64
	Tx    float64
	Ty    float64
}

// Apply maps a point from original coordinates into normalized coordinates.
func (n Normalization) Apply(p Point) Point {
	return Point{X: (p.X + n.Tx) * n.Scale, Y: (p.Y + n.Ty) * n.Scale}
}

// Unapply maps a point from normalized coordinates back to the original frame.
func (n Normalization) Unapply(p Point) Point {
	return Point{X: p.X/n.Scale - n.Tx, Y: p.Y/n.Scale - n.Ty}
}

// Normalize translates the points so their centroid is at the origin and
// scales them uniformly so the mean distance from the centroid is sqrt(2),
// the classic DLT preconditioning step. It returns the normalized copy and
// the transform parameters so a caller can invert the normalization later.
// Near-coincident point sets (mean distance below 1e-10) keep scale 1.0.
func Normalize(pts [4]Point) ([4]Point, Normalization) {
	var meanX, meanY float64
	for _, p := range pts {
		meanX += p.X
		meanY += p.Y
	}
	meanX /= 4
	meanY /= 4

	var sumDist float64
	for _, p := range pts {
		sumDist += math.Hypot(p.X-meanX, p.Y-meanY)
	}
	avgDist := sumDist / 4

	scale := 1.0
	if avgDist > minMeanDistance {
		scale = math.Sqrt2 / avgDist
	}

	n := Normalization{Scale: scale, Tx: -meanX, Ty: -meanY}
	var out [4]Point
	for i, p := range pts {
		out[i] = n.Apply(p)
	}
	return out, n
}
