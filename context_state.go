package cg

import "fmt"

// GState returns a copy of the current graphics state.
func (c *Context) GState() GState { return c.state }

// SaveGState pushes a copy of the graphics state. The current path is not
// saved.
func (c *Context) SaveGState() {
	c.stack = append(c.stack, c.state)
}

// RestoreGState pops the most recently saved graphics state. It is a no-op
// when nothing was saved.
func (c *Context) RestoreGState() {
	n := len(c.stack)
	if n == 0 {
		Logger().Warn("cg: RestoreGState without matching SaveGState")
		return
	}
	c.state = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

// GStateDepth returns the number of saved graphics states.
func (c *Context) GStateDepth() int { return len(c.stack) }

// SetLineWidth sets the stroke width in user space units. Negative widths
// are ignored.
func (c *Context) SetLineWidth(w float64) {
	if w < 0 {
		return
	}
	c.state.LineWidth = w
}

// LineWidth returns the stroke width.
func (c *Context) LineWidth() float64 { return c.state.LineWidth }

// SetLineCap sets the cap style recorded in the graphics state.
func (c *Context) SetLineCap(cp LineCap) { c.state.LineCap = cp }

// SetLineJoin sets the join style recorded in the graphics state.
func (c *Context) SetLineJoin(j LineJoin) { c.state.LineJoin = j }

// SetMiterLimit sets the miter limit recorded in the graphics state.
func (c *Context) SetMiterLimit(limit float64) { c.state.MiterLimit = limit }

// SetAlpha sets the global alpha, clamped to [0, 1].
func (c *Context) SetAlpha(a float64) { c.state.Alpha = clamp01(a) }

// SetRenderingIntent sets the rendering intent.
func (c *Context) SetRenderingIntent(ri RenderingIntent) { c.state.RenderingIntent = ri }

// SetBlendMode sets the blend mode. Normal, Copy, Clear, PlusLighter,
// Darken and Lighten map to device blend states; the others are recorded
// and draw as Normal.
func (c *Context) SetBlendMode(m BlendMode) {
	if _, ok := m.blendState(); !ok {
		Logger().Debug("cg: blend mode draws as normal", "mode", int(m))
	}
	c.state.BlendMode = m
}

// SetShouldAntialias enables four-sample antialiasing.
func (c *Context) SetShouldAntialias(aa bool) { c.state.ShouldAntialias = aa }

// SetFlatness sets the curve flattening tolerance in device pixels.
// Non-positive values are ignored.
func (c *Context) SetFlatness(f float64) {
	if f > 0 {
		c.state.Flatness = f
	}
}

// SelectFont sets the font name and size of the text state.
func (c *Context) SelectFont(name string, size float64) {
	c.state.FontName = name
	c.state.FontSize = size
}

// SetFontSize sets the font size of the text state.
func (c *Context) SetFontSize(size float64) { c.state.FontSize = size }

// SetCharacterSpacing sets the extra space between glyphs.
func (c *Context) SetCharacterSpacing(spacing float64) { c.state.CharacterSpacing = spacing }

// SetTextDrawingMode sets how glyphs are painted.
func (c *Context) SetTextDrawingMode(m TextDrawingMode) { c.state.TextDrawingMode = m }

// SetTextPosition sets the text position in user space.
func (c *Context) SetTextPosition(p Point) { c.state.TextPosition = p }

// TextPosition returns the text position.
func (c *Context) TextPosition() Point { return c.state.TextPosition }

// SetFillColor sets the fill color and, with it, the fill color space.
func (c *Context) SetFillColor(col Color) { c.state.FillColor = col }

// SetStrokeColor sets the stroke color and, with it, the stroke color space.
func (c *Context) SetStrokeColor(col Color) { c.state.StrokeColor = col }

// FillColor returns the fill color.
func (c *Context) FillColor() Color { return c.state.FillColor }

// StrokeColor returns the stroke color.
func (c *Context) StrokeColor() Color { return c.state.StrokeColor }

// SetFillColorSpace sets the fill color space and resets the fill color to
// the space's default, opaque black.
func (c *Context) SetFillColorSpace(cs ColorSpace) { c.state.FillColor = cs.DefaultColor() }

// SetStrokeColorSpace sets the stroke color space and resets the stroke
// color to the space's default, opaque black.
func (c *Context) SetStrokeColorSpace(cs ColorSpace) { c.state.StrokeColor = cs.DefaultColor() }

// SetFillColorComponents sets the fill color in the current fill color
// space.
func (c *Context) SetFillColorComponents(components ...float64) error {
	col, err := NewColor(c.state.FillColor.ColorSpace(), components...)
	if err != nil {
		return fmt.Errorf("cg: fill color: %w", err)
	}
	c.state.FillColor = col
	return nil
}

// SetStrokeColorComponents sets the stroke color in the current stroke
// color space.
func (c *Context) SetStrokeColorComponents(components ...float64) error {
	col, err := NewColor(c.state.StrokeColor.ColorSpace(), components...)
	if err != nil {
		return fmt.Errorf("cg: stroke color: %w", err)
	}
	c.state.StrokeColor = col
	return nil
}

// SetRGBFillColor sets a DeviceRGB fill color.
func (c *Context) SetRGBFillColor(r, g, b, a float64) { c.state.FillColor = RGBA(r, g, b, a) }

// SetRGBStrokeColor sets a DeviceRGB stroke color.
func (c *Context) SetRGBStrokeColor(r, g, b, a float64) { c.state.StrokeColor = RGBA(r, g, b, a) }

// SetGrayFillColor sets a DeviceGray fill color.
func (c *Context) SetGrayFillColor(gray, a float64) { c.state.FillColor = Gray(gray, a) }

// SetGrayStrokeColor sets a DeviceGray stroke color.
func (c *Context) SetGrayStrokeColor(gray, a float64) { c.state.StrokeColor = Gray(gray, a) }

// SetCMYKFillColor sets a DeviceCMYK fill color.
func (c *Context) SetCMYKFillColor(cy, m, y, k, a float64) { c.state.FillColor = CMYK(cy, m, y, k, a) }

// SetCMYKStrokeColor sets a DeviceCMYK stroke color.
func (c *Context) SetCMYKStrokeColor(cy, m, y, k, a float64) {
	c.state.StrokeColor = CMYK(cy, m, y, k, a)
}
