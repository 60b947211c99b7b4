package cg

// CTM returns the current transformation matrix.
func (c *Context) CTM() Transform { return c.state.CTM }

// SetCTM replaces the CTM.
func (c *Context) SetCTM(t Transform) { c.state.CTM = t }

// ScaleBy scales user space. The scale is prepended, so it applies before
// the existing CTM: ctm = scale × ctm.
func (c *Context) ScaleBy(sx, sy float64) {
	c.state.CTM = Scale(sx, sy, 1).Concatenating(c.state.CTM)
}

// TranslateBy appends a translation: ctm = ctm × translate. The offset is
// therefore applied after the existing CTM, in device units.
func (c *Context) TranslateBy(tx, ty float64) {
	c.state.CTM = c.state.CTM.Concatenating(Translate(tx, ty, 0))
}

// RotateBy appends a rotation by angle radians: ctm = ctm × rotate.
func (c *Context) RotateBy(angle float64) {
	c.state.CTM = c.state.CTM.Concatenating(Rotate(angle))
}

// ConcatenateCTM appends t: ctm = ctm × t.
func (c *Context) ConcatenateCTM(t Transform) {
	c.state.CTM = c.state.CTM.Concatenating(t)
}

// ConvertToDeviceSpace maps a user space point to device pixels.
func (c *Context) ConvertToDeviceSpace(p Point) Point {
	return p.Applying(c.state.CTM)
}

// ConvertToUserSpace maps a device pixel position to user space. A
// non-invertible CTM maps through the identity.
func (c *Context) ConvertToUserSpace(p Point) Point {
	return p.Applying(c.state.CTM.Inverted())
}

// ConvertSizeToDeviceSpace maps a user space size to device pixels,
// ignoring translation.
func (c *Context) ConvertSizeToDeviceSpace(s Size) Size {
	return s.Applying(c.state.CTM)
}

// ConvertSizeToUserSpace maps a device size to user space.
func (c *Context) ConvertSizeToUserSpace(s Size) Size {
	return s.Applying(c.state.CTM.Inverted())
}

// ConvertRectToDeviceSpace returns the smallest device rectangle containing
// the four transformed corners of r.
func (c *Context) ConvertRectToDeviceSpace(r Rect) Rect {
	return r.Applying(c.state.CTM)
}

// ConvertRectToUserSpace returns the smallest user space rectangle
// containing the four inversely transformed corners of r.
func (c *Context) ConvertRectToUserSpace(r Rect) Rect {
	return r.Applying(c.state.CTM.Inverted())
}

// ConvertToNormalized maps device pixels to normalized coordinates, where
// the surface spans [-1, 1] on both axes and the top-left pixel corner is
// (-1, 1).
func (c *Context) ConvertToNormalized(p Point) Point {
	return p.Applying(c.normalize)
}

// ConvertFromNormalized maps normalized coordinates back to device pixels.
func (c *Context) ConvertFromNormalized(p Point) Point {
	return p.Applying(c.normalize.Inverted())
}
