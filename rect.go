package cg

import (
	"fmt"
	"math"
)

// Rect is an origin and a size. Negative sizes are representable and are
// never normalized implicitly; the Min/Max/Mid accessors and Width/Height
// report the standardized geometry.
type Rect struct {
	Origin Point
	Size   Size
}

var (
	// RectZero is the rectangle at the origin with zero size.
	RectZero = Rect{}

	// RectNull is the absence of a rectangle. All fields are NaN.
	RectNull = Rect{
		Origin: Point{X: math.NaN(), Y: math.NaN()},
		Size:   Size{Width: math.NaN(), Height: math.NaN()},
	}

	// RectInfinite covers the whole plane.
	RectInfinite = Rect{
		Origin: Point{X: math.Inf(-1), Y: math.Inf(-1)},
		Size:   Size{Width: math.Inf(1), Height: math.Inf(1)},
	}
)

// NewRect creates a rectangle from origin and size components.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// RectFromPoints returns the smallest rectangle containing all pts.
// It returns RectNull for an empty slice.
func RectFromPoints(pts ...Point) Rect {
	if len(pts) == 0 {
		return RectNull
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return NewRect(minX, minY, maxX-minX, maxY-minY)
}

func (r Rect) MinX() float64 { return math.Min(r.Origin.X, r.Origin.X+r.Size.Width) }
func (r Rect) MinY() float64 { return math.Min(r.Origin.Y, r.Origin.Y+r.Size.Height) }
func (r Rect) MaxX() float64 { return math.Max(r.Origin.X, r.Origin.X+r.Size.Width) }
func (r Rect) MaxY() float64 { return math.Max(r.Origin.Y, r.Origin.Y+r.Size.Height) }
func (r Rect) MidX() float64 { return r.Origin.X + r.Size.Width/2 }
func (r Rect) MidY() float64 { return r.Origin.Y + r.Size.Height/2 }

// Width returns the absolute width.
func (r Rect) Width() float64 { return math.Abs(r.Size.Width) }

// Height returns the absolute height.
func (r Rect) Height() float64 { return math.Abs(r.Size.Height) }

// IsEmpty reports whether r equals RectZero.
func (r Rect) IsEmpty() bool {
	return r == RectZero
}

// IsNull reports whether r is RectNull.
func (r Rect) IsNull() bool {
	return math.IsNaN(r.Origin.X) || math.IsNaN(r.Origin.Y) ||
		math.IsNaN(r.Size.Width) || math.IsNaN(r.Size.Height)
}

// IsInfinite reports whether r has an infinite extent.
func (r Rect) IsInfinite() bool {
	return math.IsInf(r.Size.Width, 0) || math.IsInf(r.Size.Height, 0)
}

// Standardized returns an equivalent rectangle with non-negative size.
func (r Rect) Standardized() Rect {
	if r.IsNull() || r.IsInfinite() {
		return r
	}
	return NewRect(r.MinX(), r.MinY(), r.Width(), r.Height())
}

// Corners returns the four corners in counter-clockwise order starting at
// the origin: (minX,minY), (maxX,minY), (maxX,maxY), (minX,maxY) in the
// rectangle's own orientation.
func (r Rect) Corners() [4]Point {
	x0, y0 := r.Origin.X, r.Origin.Y
	x1, y1 := x0+r.Size.Width, y0+r.Size.Height
	return [4]Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

// Applying returns the smallest axis-aligned rectangle containing the four
// transformed corners of r.
func (r Rect) Applying(t Transform) Rect {
	if r.IsNull() || r.IsInfinite() {
		return r
	}
	c := r.Corners()
	for i := range c {
		c[i] = c[i].Applying(t)
	}
	return RectFromPoints(c[:]...)
}

// Union returns the smallest rectangle containing both r and o.
// A null operand is ignored.
func (r Rect) Union(o Rect) Rect {
	switch {
	case r.IsNull():
		return o
	case o.IsNull():
		return r
	case r.IsInfinite() || o.IsInfinite():
		return RectInfinite
	}
	minX := math.Min(r.MinX(), o.MinX())
	minY := math.Min(r.MinY(), o.MinY())
	maxX := math.Max(r.MaxX(), o.MaxX())
	maxY := math.Max(r.MaxY(), o.MaxY())
	return NewRect(minX, minY, maxX-minX, maxY-minY)
}

// UnionPoint extends r to include p.
func (r Rect) UnionPoint(p Point) Rect {
	return r.Union(Rect{Origin: p})
}

// Intersection returns the overlap of r and o, or RectNull when they do
// not overlap.
func (r Rect) Intersection(o Rect) Rect {
	switch {
	case r.IsNull() || o.IsNull():
		return RectNull
	case r.IsInfinite():
		return o
	case o.IsInfinite():
		return r
	}
	minX := math.Max(r.MinX(), o.MinX())
	minY := math.Max(r.MinY(), o.MinY())
	maxX := math.Min(r.MaxX(), o.MaxX())
	maxY := math.Min(r.MaxY(), o.MaxY())
	if maxX < minX || maxY < minY {
		return RectNull
	}
	return NewRect(minX, minY, maxX-minX, maxY-minY)
}

// Intersects reports whether r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return !r.Intersection(o).IsNull()
}

// Inset shrinks the standardized rectangle by dx on each side horizontally
// and dy vertically. Negative values grow it. It returns RectNull when the
// result would have a negative size.
func (r Rect) Inset(dx, dy float64) Rect {
	if r.IsNull() {
		return r
	}
	s := r.Standardized()
	w, h := s.Size.Width-2*dx, s.Size.Height-2*dy
	if w < 0 || h < 0 {
		return RectNull
	}
	return NewRect(s.Origin.X+dx, s.Origin.Y+dy, w, h)
}

// Offset translates r by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{Origin: Point{X: r.Origin.X + dx, Y: r.Origin.Y + dy}, Size: r.Size}
}

// ContainsPoint reports whether p lies in r. The minimum edges are
// inclusive and the maximum edges exclusive.
func (r Rect) ContainsPoint(p Point) bool {
	if r.IsNull() {
		return false
	}
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	if r.IsNull() || o.IsNull() {
		return false
	}
	return o.MinX() >= r.MinX() && o.MaxX() <= r.MaxX() &&
		o.MinY() >= r.MinY() && o.MaxY() <= r.MaxY()
}

// Equals reports whether r and o are equal within Epsilon. Null rectangles
// are equal to each other.
func (r Rect) Equals(o Rect) bool {
	if r.IsNull() || o.IsNull() {
		return r.IsNull() && o.IsNull()
	}
	return r.Origin.Equals(o.Origin) && r.Size.Equals(o.Size)
}

func (r Rect) String() string {
	return fmt.Sprintf("{%g, %g, %g, %g}", r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height)
}
