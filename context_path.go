package cg

// BeginPath discards the current path.
func (c *Context) BeginPath() { c.path = nil }

func (c *Context) ensurePath() *Path {
	if c.path == nil {
		c.path = NewPath()
	}
	return c.path
}

// MoveTo starts a new subpath at p.
func (c *Context) MoveTo(p Point) { c.ensurePath().moveTo(c.state.CTM, p) }

// AddLineTo appends a line from the current point to p.
func (c *Context) AddLineTo(p Point) {
	if c.path == nil {
		return
	}
	c.path.lineTo(c.state.CTM, p)
}

// AddLines moves to the first point and appends lines through the rest.
func (c *Context) AddLines(pts []Point) {
	if len(pts) == 0 {
		return
	}
	c.ensurePath().addLines(c.state.CTM, pts)
}

// AddRect appends r as a closed subpath.
func (c *Context) AddRect(r Rect) { c.ensurePath().addRect(c.state.CTM, r) }

// AddRects appends each rectangle as a closed subpath.
func (c *Context) AddRects(rs []Rect) {
	for _, r := range rs {
		c.AddRect(r)
	}
}

// AddEllipse appends the ellipse inscribed in r.
func (c *Context) AddEllipse(r Rect) { c.ensurePath().addEllipse(c.state.CTM, r) }

// AddRoundedRect appends a rounded rectangle.
func (c *Context) AddRoundedRect(r Rect, cornerWidth, cornerHeight float64) {
	c.ensurePath().addRoundedRect(c.state.CTM, r, cornerWidth, cornerHeight)
}

// AddArc appends a circular arc. See Path.AddArc.
func (c *Context) AddArc(center Point, radius, startAngle, endAngle float64, clockwise bool) {
	c.ensurePath().addArc(c.state.CTM, center, radius, startAngle, endAngle, clockwise)
}

// AddRelativeArc appends an arc sweeping delta radians. See
// Path.AddRelativeArc.
func (c *Context) AddRelativeArc(center Point, radius, startAngle, delta float64) {
	c.ensurePath().relativeArc(c.state.CTM, center, radius, startAngle, delta)
}

// AddArcToPoint appends a tangent arc. See Path.AddArcToPoint.
func (c *Context) AddArcToPoint(tangent1End, tangent2End Point, radius float64) {
	if c.path == nil {
		return
	}
	c.path.arcToPoint(c.state.CTM, tangent1End, tangent2End, radius)
}

// AddCurveTo appends a cubic Bézier from the current point.
func (c *Context) AddCurveTo(control1, control2, end Point) {
	if c.path == nil {
		return
	}
	c.path.curveTo(c.state.CTM, control1, control2, end)
}

// AddQuadCurveTo appends a quadratic Bézier from the current point.
func (c *Context) AddQuadCurveTo(control, end Point) {
	if c.path == nil {
		return
	}
	c.path.quadCurveTo(c.state.CTM, control, end)
}

// AddPath appends p, whose coordinates are in user space.
func (c *Context) AddPath(p *Path) {
	if p.IsEmpty() {
		return
	}
	c.ensurePath().AddPath(p, c.state.CTM)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	if c.path == nil {
		return
	}
	c.path.CloseSubpath()
}

// Path returns a copy of the current path in device space, or nil when
// there is none.
func (c *Context) Path() *Path { return c.path.Copy() }

// IsPathEmpty reports whether the current path is missing or has no
// elements.
func (c *Context) IsPathEmpty() bool { return c.path.IsEmpty() }

// PathCurrentPoint returns the current point in user space.
func (c *Context) PathCurrentPoint() (Point, bool) {
	p, ok := c.path.CurrentPoint()
	if !ok {
		return p, false
	}
	return c.ConvertToUserSpace(p), true
}

// PathBoundingBox returns the bounding box of the current path in user
// space, or RectNull when there is no path.
func (c *Context) PathBoundingBox() Rect {
	if c.path.IsEmpty() {
		return RectNull
	}
	return c.ConvertRectToUserSpace(c.path.BoundingBox())
}

// PathContains reports whether the user space point p is inside the
// current path, using the fill rule of mode. Stroke-only modes use the
// winding rule.
func (c *Context) PathContains(p Point, mode DrawingMode) bool {
	if c.path.IsEmpty() {
		return false
	}
	return c.path.Contains(c.ConvertToDeviceSpace(p), mode.fillRule(), Identity())
}
