package cg

import "math"

// Epsilon is the tolerance used by the Equals methods of geometry types.
const Epsilon = 1e-9

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

var (
	// PointZero is the origin.
	PointZero = Point{}

	// PointNull marks the absence of a point. Its coordinates are NaN.
	PointNull = Point{X: math.NaN(), Y: math.NaN()}
)

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
// It returns ErrDivisionByZero when s is zero.
func (p Point) Div(s float64) (Point, error) {
	if s == 0 {
		return p, ErrDivisionByZero
	}
	return Point{X: p.X / s, Y: p.Y / s}, nil
}

// DivPoint divides p component-wise by q.
// It returns ErrDivisionByZero when either component of q is zero.
func (p Point) DivPoint(q Point) (Point, error) {
	if q.X == 0 || q.Y == 0 {
		return p, ErrDivisionByZero
	}
	return Point{X: p.X / q.X, Y: p.Y / q.Y}, nil
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return p
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Applying transforms the point by t:
//
//	x' = x*M11 + y*M21 + M41
//	y' = x*M12 + y*M22 + M42
func (p Point) Applying(t Transform) Point {
	return Point{
		X: p.X*t.M11 + p.Y*t.M21 + t.M41,
		Y: p.X*t.M12 + p.Y*t.M22 + t.M42,
	}
}

// IsNull reports whether p is PointNull.
func (p Point) IsNull() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// Equals reports whether p and q are equal within Epsilon.
func (p Point) Equals(q Point) bool {
	return floatEquals(p.X, q.X) && floatEquals(p.Y, q.Y)
}

// floatEquals compares with a mixed absolute/relative tolerance.
func floatEquals(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= Epsilon*math.Max(1, math.Abs(a)+math.Abs(b))
}
