package cg

import "github.com/gogpu/cg/internal/flatten"

// containsTolerance is the flattening tolerance used by Contains, in path
// units.
const containsTolerance = 0.01

// Polyline is a flattened subpath.
type Polyline struct {
	Points []Point
	// Closed is set for subpaths ended by closeSubpath and for rectangles.
	Closed bool
}

// Flatten converts the path into one polyline per subpath, replacing
// curves with line segments no farther than tolerance from the curve.
// A non-positive tolerance selects the default of a quarter unit.
func (p *Path) Flatten(tolerance float64) []Polyline {
	if p.IsEmpty() {
		return nil
	}
	var (
		out     []Polyline
		cur     *Polyline
		start   Point
		current Point
		buf     []flatten.Point
	)
	flush := func() {
		if cur != nil && len(cur.Points) > 0 {
			out = append(out, *cur)
		}
		cur = nil
	}
	begin := func() {
		if cur == nil {
			cur = &Polyline{Points: []Point{current}}
		}
	}
	for _, e := range p.elements {
		switch e.Kind {
		case MoveToElement:
			flush()
			start, current = e.Points[0], e.Points[0]
			cur = &Polyline{Points: []Point{current}}
		case LineToElement:
			begin()
			current = e.Points[0]
			cur.Points = append(cur.Points, current)
		case QuadCurveToElement:
			begin()
			buf = flatten.Quadratic(buf[:0], fpt(current), fpt(e.Points[0]), fpt(e.Points[1]), tolerance)
			cur.Points = appendFlattened(cur.Points, buf)
			current = e.Points[1]
		case CurveToElement:
			begin()
			buf = flatten.Cubic(buf[:0], fpt(current), fpt(e.Points[0]), fpt(e.Points[1]), fpt(e.Points[2]), tolerance)
			cur.Points = appendFlattened(cur.Points, buf)
			current = e.Points[2]
		case RectToElement:
			flush()
			out = append(out, Polyline{Points: append([]Point(nil), e.Points...), Closed: true})
			start, current = e.Points[0], e.Points[0]
		case CloseSubpathElement:
			if cur != nil {
				cur.Closed = true
				flush()
			}
			current = start
		}
	}
	flush()
	return out
}

func fpt(p Point) flatten.Point { return flatten.Point{X: p.X, Y: p.Y} }

func appendFlattened(dst []Point, src []flatten.Point) []Point {
	for _, q := range src {
		dst = append(dst, Point{X: q.X, Y: q.Y})
	}
	return dst
}

// Contains reports whether pt is inside the path transformed by t under
// rule. Every subpath is treated as closed. Curves are flattened first and
// membership is decided by casting a ray toward +X and summing signed edge
// crossings.
func (p *Path) Contains(pt Point, rule FillRule, t Transform) bool {
	if p.IsEmpty() {
		return false
	}
	polys := p.Flatten(containsTolerance)
	if !t.IsIdentity() {
		for _, poly := range polys {
			for i := range poly.Points {
				poly.Points[i] = poly.Points[i].Applying(t)
			}
		}
	}
	return rule.Fills(windingNumber(polys, pt))
}

// windingNumber returns the signed number of times the polygons wind
// around pt. Edges pointing toward +Y count +1.
func windingNumber(polys []Polyline, pt Point) int {
	w := 0
	for _, poly := range polys {
		n := len(poly.Points)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			a := poly.Points[i]
			b := poly.Points[(i+1)%n]
			if (a.Y <= pt.Y) == (b.Y <= pt.Y) {
				continue
			}
			x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if x > pt.X {
				if b.Y > a.Y {
					w++
				} else {
					w--
				}
			}
		}
	}
	return w
}
