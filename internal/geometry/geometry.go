// Package geometry provides the planar primitives the hexagon board is built
// on: points, segments, regular hexagons and the side comparisons used for
// docking. Everything here is pure.
package geometry

import "math"

// Epsilon is the tolerance used for float comparisons on canvas coordinates.
const Epsilon = 1e-9

// Point is a position or a displacement in canvas coordinates.
type Point struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Eq reports whether p and q are equal within Epsilon.
func (p Point) Eq(q Point) bool {
	return nearlyEqual(p.X, q.X) && nearlyEqual(p.Y, q.Y)
}

// Dist is the Euclidean distance between p and q.
func Dist(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Segment is a line segment between two endpoints.
type Segment struct {
	A Point
	B Point
}

func (s Segment) Midpoint() Point {
	return Point{(s.A.X + s.B.X) / 2, (s.A.Y + s.B.Y) / 2}
}

// Translate returns s shifted by d.
func (s Segment) Translate(d Point) Segment {
	return Segment{s.A.Add(d), s.B.Add(d)}
}

func (s Segment) vertical() bool {
	return nearlyEqual(s.A.X, s.B.X)
}

func (s Segment) slope() float64 {
	return (s.B.Y - s.A.Y) / (s.B.X - s.A.X)
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// BoundingBox returns the min and max corners of pts.
func BoundingBox(pts []Point) (min, max Point) {
	if len(pts) == 0 {
		return Point{}, Point{}
	}
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}
