package geometry

import "math"

// SideMidpointDistance is the distance between the midpoints of a and b.
//
// It is only a faithful proximity measure for parallel sides of equal
// length, which is what two same-size regular hexagons present to each
// other. It is not a general segment-to-segment distance.
func SideMidpointDistance(a, b Segment) float64 {
	return Dist(a.Midpoint(), b.Midpoint())
}

// SidesCoincide reports whether a and b are parallel and either intersect
// or are the same set of points. Parallel collinear overlap counts as an
// intersection, so two hexagons sharing an edge report true regardless of
// where their midpoints sit.
func SidesCoincide(a, b Segment) bool {
	if !Parallel(a, b) {
		return false
	}
	return sameSet(a, b) || Intersect(a, b)
}

// Parallel compares the slopes of a and b. A vertical segment has no slope,
// so verticality is decided by x-equality of its endpoints and two segments
// are parallel when both are vertical.
func Parallel(a, b Segment) bool {
	av, bv := a.vertical(), b.vertical()
	if av || bv {
		return av && bv
	}
	return nearlyEqual(a.slope(), b.slope())
}

// Intersect reports whether the closed segments a and b share a point.
func Intersect(a, b Segment) bool {
	o1 := orientation(a.A, a.B, b.A)
	o2 := orientation(a.A, a.B, b.B)
	o3 := orientation(b.A, b.B, a.A)
	o4 := orientation(b.A, b.B, a.B)

	if o1 != o2 && o3 != o4 {
		return true
	}
	switch {
	case o1 == 0 && onSegment(a, b.A):
		return true
	case o2 == 0 && onSegment(a, b.B):
		return true
	case o3 == 0 && onSegment(b, a.A):
		return true
	case o4 == 0 && onSegment(b, a.B):
		return true
	}
	return false
}

func sameSet(a, b Segment) bool {
	return (a.A.Eq(b.A) && a.B.Eq(b.B)) || (a.A.Eq(b.B) && a.B.Eq(b.A))
}

// orientation returns -1, 0 or 1 for clockwise, collinear and
// counter-clockwise turns p→q→r.
func orientation(p, q, r Point) int {
	u, w := q.Sub(p), r.Sub(p)
	v := cross(u, w)
	tol := Epsilon * math.Max(1, math.Hypot(u.X, u.Y)*math.Hypot(w.X, w.Y))
	switch {
	case math.Abs(v) <= tol:
		return 0
	case v > 0:
		return 1
	default:
		return -1
	}
}

// onSegment assumes p is collinear with s.
func onSegment(s Segment, p Point) bool {
	return p.X <= math.Max(s.A.X, s.B.X)+Epsilon &&
		p.X >= math.Min(s.A.X, s.B.X)-Epsilon &&
		p.Y <= math.Max(s.A.Y, s.B.Y)+Epsilon &&
		p.Y >= math.Min(s.A.Y, s.B.Y)-Epsilon
}
