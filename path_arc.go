package cg

import "math"

// kappa places the control points of a quarter-circle cubic.
const kappa = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)

// AddEllipse appends a closed ellipse inscribed in r, made of four cubic
// segments, starting at (maxX, midY) and turning toward +Y.
func (p *Path) AddEllipse(r Rect) { p.addEllipse(Identity(), r) }

// AddRoundedRect appends a closed rounded rectangle. Each corner is a
// quarter ellipse of cornerWidth x cornerHeight, clamped to half the
// rectangle's extent. Negative corner sizes are ignored; zero corner sizes
// append a plain rectangle.
func (p *Path) AddRoundedRect(r Rect, cornerWidth, cornerHeight float64) {
	p.addRoundedRect(Identity(), r, cornerWidth, cornerHeight)
}

// AddArc appends a circular arc around center from startAngle to endAngle
// in radians. When clockwise is false the angle increases along the arc.
// The sweep is at most a full turn. If the path has a current point a
// line to the arc's start is appended first, otherwise the arc starts a
// new subpath.
func (p *Path) AddArc(center Point, radius, startAngle, endAngle float64, clockwise bool) {
	p.addArc(Identity(), center, radius, startAngle, endAngle, clockwise)
}

// AddRelativeArc appends an arc that starts at startAngle and sweeps delta
// radians. Positive deltas increase the angle.
func (p *Path) AddRelativeArc(center Point, radius, startAngle, delta float64) {
	p.relativeArc(Identity(), center, radius, startAngle, delta)
}

// AddArcToPoint appends an arc of the given radius tangent to the line from
// the current point to tangent1End and to the line from tangent1End to
// tangent2End, preceded by a line to the first tangent point. Collinear
// points or a zero radius append a line to tangent1End instead.
func (p *Path) AddArcToPoint(tangent1End, tangent2End Point, radius float64) {
	p.arcToPoint(Identity(), tangent1End, tangent2End, radius)
}

func (p *Path) addEllipse(m Transform, r Rect) {
	if r.IsNull() || r.IsInfinite() {
		return
	}
	c := Pt(r.MidX(), r.MidY())
	rx, ry := r.Width()/2, r.Height()/2
	p.moveTo(m, Pt(c.X+rx, c.Y))
	for i := 0; i < 4; i++ {
		a1 := float64(i) * math.Pi / 2
		p.ellipticSegment(m, c, rx, ry, a1, a1+math.Pi/2)
	}
	p.CloseSubpath()
}

func (p *Path) addRoundedRect(m Transform, r Rect, cw, ch float64) {
	if r.IsNull() || r.IsInfinite() || cw < 0 || ch < 0 {
		return
	}
	if cw == 0 || ch == 0 {
		p.addRect(m, r)
		return
	}
	s := r.Standardized()
	cw = math.Min(cw, s.Width()/2)
	ch = math.Min(ch, s.Height()/2)
	x0, y0, x1, y1 := s.MinX(), s.MinY(), s.MaxX(), s.MaxY()

	p.moveTo(m, Pt(x0+cw, y0))
	p.lineTo(m, Pt(x1-cw, y0))
	p.ellipticSegment(m, Pt(x1-cw, y0+ch), cw, ch, -math.Pi/2, 0)
	p.lineTo(m, Pt(x1, y1-ch))
	p.ellipticSegment(m, Pt(x1-cw, y1-ch), cw, ch, 0, math.Pi/2)
	p.lineTo(m, Pt(x0+cw, y1))
	p.ellipticSegment(m, Pt(x0+cw, y1-ch), cw, ch, math.Pi/2, math.Pi)
	p.lineTo(m, Pt(x0, y0+ch))
	p.ellipticSegment(m, Pt(x0+cw, y0+ch), cw, ch, math.Pi, 3*math.Pi/2)
	p.CloseSubpath()
}

func (p *Path) addArc(m Transform, center Point, radius, start, end float64, clockwise bool) {
	const twoPi = 2 * math.Pi
	delta := end - start
	if clockwise {
		if delta > 0 {
			delta = math.Mod(delta, twoPi) - twoPi
		}
		delta = math.Max(delta, -twoPi)
	} else {
		if delta < 0 {
			delta = math.Mod(delta, twoPi) + twoPi
		}
		delta = math.Min(delta, twoPi)
	}
	p.relativeArc(m, center, radius, start, delta)
}

func (p *Path) relativeArc(m Transform, center Point, radius, start, delta float64) {
	if radius < 0 || math.IsNaN(radius) || math.IsNaN(delta) {
		return
	}
	s := Pt(center.X+radius*math.Cos(start), center.Y+radius*math.Sin(start))
	if p.hasCurrent {
		p.lineTo(m, s)
	} else {
		p.moveTo(m, s)
	}
	if delta == 0 {
		return
	}
	// At most 90 degrees per cubic segment.
	n := int(math.Ceil(math.Abs(delta)/(math.Pi/2) - 1e-9))
	n = max(n, 1)
	step := delta / float64(n)
	for i := 0; i < n; i++ {
		a1 := start + float64(i)*step
		p.ellipticSegment(m, center, radius, radius, a1, a1+step)
	}
}

// ellipticSegment appends one cubic approximating the elliptical arc from
// a1 to a2 (|a2-a1| <= 90 degrees). The current point must already be at
// the segment start.
func (p *Path) ellipticSegment(m Transform, c Point, rx, ry, a1, a2 float64) {
	da := a2 - a1
	t := math.Tan(da / 2)
	alpha := math.Sin(da) * (math.Sqrt(4+3*t*t) - 1) / 3

	sin1, cos1 := math.Sincos(a1)
	sin2, cos2 := math.Sincos(a2)
	p1 := Pt(c.X+rx*cos1, c.Y+ry*sin1)
	p2 := Pt(c.X+rx*cos2, c.Y+ry*sin2)
	c1 := Pt(p1.X-alpha*rx*sin1, p1.Y+alpha*ry*cos1)
	c2 := Pt(p2.X+alpha*rx*sin2, p2.Y-alpha*ry*cos2)
	p.curveTo(m, c1, c2, p2)
}

func (p *Path) arcToPoint(m Transform, t1, t2 Point, radius float64) {
	if !p.hasCurrent || radius < 0 {
		return
	}
	// The current point is stored in path space; the tangent points are in
	// the caller's space.
	p0 := p.current.Applying(m.Inverted())

	v1 := p0.Sub(t1)
	v2 := t2.Sub(t1)
	l1, l2 := v1.Length(), v2.Length()
	cross := v1.Cross(v2)
	if radius == 0 || l1 == 0 || l2 == 0 || math.Abs(cross) <= Epsilon*l1*l2 {
		p.lineTo(m, t1)
		return
	}
	u1, u2 := v1.Mul(1/l1), v2.Mul(1/l2)
	// theta is the angle at t1 between the two tangent lines.
	theta := math.Acos(math.Max(-1, math.Min(1, u1.Dot(u2))))
	d := radius / math.Tan(theta/2)
	// addArc draws the line to the first tangent point.
	tp1 := t1.Add(u1.Mul(d))
	tp2 := t1.Add(u2.Mul(d))
	bisector := u1.Add(u2).Normalize()
	center := t1.Add(bisector.Mul(radius / math.Sin(theta/2)))

	a1 := math.Atan2(tp1.Y-center.Y, tp1.X-center.X)
	a2 := math.Atan2(tp2.Y-center.Y, tp2.X-center.X)
	// Turning from (t1 - p0) to (t2 - t1): a left turn sweeps with
	// increasing angle.
	turn := t1.Sub(p0).Cross(t2.Sub(t1))
	p.addArc(m, center, radius, a1, a2, turn < 0)
}
