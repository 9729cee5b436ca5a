package geometry

import "math"

// HexagonVertices returns the six vertices of a regular hexagon with the
// given circumradius. Vertex i lies at angle 30°+60°·i, measured with the
// canvas y axis pointing down, so vertex 1 is the bottom point and vertex 4
// the top point. Side i always joins vertex i to vertex (i+1)%6; the docking
// engine depends on that ordering.
func HexagonVertices(center Point, size float64) [6]Point {
	var v [6]Point
	for i := range v {
		a := (30 + 60*float64(i)) * math.Pi / 180
		v[i] = Point{
			X: center.X + size*math.Cos(a),
			Y: center.Y + size*math.Sin(a),
		}
	}
	return v
}

// TopVertex is the index of the vertex with the smallest y.
const TopVertex = 4

// HexagonSides returns the six sides of the hexagon described by v.
func HexagonSides(v [6]Point) [6]Segment {
	var s [6]Segment
	for i := range s {
		s[i] = Segment{A: v[i], B: v[(i+1)%6]}
	}
	return s
}

// Contains reports whether p lies inside or on the boundary of the convex
// polygon poly, whichever way it winds.
func Contains(poly []Point, p Point) bool {
	if len(poly) < 3 {
		return false
	}
	var sign float64
	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		c := cross(b.Sub(a), p.Sub(a))
		if math.Abs(c) <= Epsilon {
			continue
		}
		if sign == 0 {
			sign = c
			continue
		}
		if (c > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

func cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}
