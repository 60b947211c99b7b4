// Package flatten converts Bézier curves into polylines.
package flatten

import "math"

// Point is a local copy of the root point type, kept here to avoid an
// import cycle.
type Point struct {
	X, Y float64
}

// Tolerance is the default maximum distance between a curve and its
// polyline, in device pixels.
const Tolerance = 0.25

// maxDepth bounds recursive subdivision, so a single curve yields at most
// 1<<maxDepth segments.
const maxDepth = 10

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

func (p Point) sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

func (p Point) distance(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Quadratic appends to dst the points approximating the quadratic Bézier
// p0, p1, p2, excluding p0 and ending with p2.
func Quadratic(dst []Point, p0, p1, p2 Point, tolerance float64) []Point {
	if tolerance <= 0 {
		tolerance = Tolerance
	}
	return quadratic(dst, p0, p1, p2, tolerance, 0)
}

func quadratic(dst []Point, p0, p1, p2 Point, tolerance float64, depth int) []Point {
	if depth >= maxDepth || DistanceToSegment(p1, p0, p2) < tolerance {
		return append(dst, p2)
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)
	dst = quadratic(dst, p0, q0, q2, tolerance, depth+1)
	return quadratic(dst, q2, q1, p2, tolerance, depth+1)
}

// Cubic appends to dst the points approximating the cubic Bézier
// p0, p1, p2, p3, excluding p0 and ending with p3.
func Cubic(dst []Point, p0, p1, p2, p3 Point, tolerance float64) []Point {
	if tolerance <= 0 {
		tolerance = Tolerance
	}
	return cubic(dst, p0, p1, p2, p3, tolerance, 0)
}

func cubic(dst []Point, p0, p1, p2, p3 Point, tolerance float64, depth int) []Point {
	d := math.Max(DistanceToSegment(p1, p0, p3), DistanceToSegment(p2, p0, p3))
	if depth >= maxDepth || d < tolerance {
		return append(dst, p3)
	}
	// de Casteljau split at t=0.5.
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)
	dst = cubic(dst, p0, q0, r0, s, tolerance, depth+1)
	return cubic(dst, s, r1, q2, p3, tolerance, depth+1)
}

// DistanceToSegment returns the distance from p to the segment a-b.
func DistanceToSegment(p, a, b Point) float64 {
	ab := b.sub(a)
	l2 := ab.dot(ab)
	if l2 < 1e-20 {
		return p.distance(a)
	}
	t := p.sub(a).dot(ab) / l2
	switch {
	case t <= 0:
		return p.distance(a)
	case t >= 1:
		return p.distance(b)
	}
	return p.distance(a.Lerp(b, t))
}
