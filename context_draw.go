package cg

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/cg/gpucore"
	"github.com/gogpu/cg/internal/raster"
	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f64"
)

// DrawingMode selects what DrawPath paints.
type DrawingMode int

const (
	DrawFill DrawingMode = iota
	DrawEOFill
	DrawStroke
	DrawFillStroke
	DrawEOFillStroke
)

func (m DrawingMode) String() string {
	switch m {
	case DrawFill:
		return "fill"
	case DrawEOFill:
		return "eoFill"
	case DrawStroke:
		return "stroke"
	case DrawFillStroke:
		return "fillStroke"
	case DrawEOFillStroke:
		return "eoFillStroke"
	}
	return fmt.Sprintf("DrawingMode(%d)", int(m))
}

func (m DrawingMode) fillRule() FillRule {
	if m == DrawEOFill || m == DrawEOFillStroke {
		return EvenOdd
	}
	return Winding
}

type programKind int

const (
	programFill programKind = iota
	programStroke
)

// DrawPath paints the current path according to mode and clears it. The
// path is cleared on every return, including errors and a missing path.
func (c *Context) DrawPath(mode DrawingMode) error {
	defer c.BeginPath()
	switch mode {
	case DrawFill, DrawEOFill:
		return c.fill(mode.fillRule())
	case DrawStroke:
		return c.stroke()
	case DrawFillStroke, DrawEOFillStroke:
		return errors.Join(c.fill(mode.fillRule()), c.stroke())
	}
	return fmt.Errorf("cg: drawing mode %v: %w", mode, ErrInvalidArgument)
}

// FillPath fills the current path with the fill color using rule and
// clears the path.
func (c *Context) FillPath(rule FillRule) error {
	defer c.BeginPath()
	return c.fill(rule)
}

// EOFillPath fills the current path using the even-odd rule and clears
// the path.
func (c *Context) EOFillPath() error {
	return c.FillPath(EvenOdd)
}

// StrokePath strokes the current path with the stroke color and line width
// and clears the path.
func (c *Context) StrokePath() error {
	defer c.BeginPath()
	return c.stroke()
}

// FillRect fills r. The current path is replaced and cleared.
func (c *Context) FillRect(r Rect) error {
	c.BeginPath()
	c.AddRect(r)
	return c.FillPath(Winding)
}

// FillRects fills each rectangle. The current path is replaced and
// cleared.
func (c *Context) FillRects(rs []Rect) error {
	c.BeginPath()
	c.AddRects(rs)
	return c.FillPath(Winding)
}

// StrokeRect strokes r. The current path is replaced and cleared.
func (c *Context) StrokeRect(r Rect) error {
	c.BeginPath()
	c.AddRect(r)
	return c.StrokePath()
}

// StrokeRectWithWidth strokes r with the given line width without changing
// the graphics state.
func (c *Context) StrokeRectWithWidth(r Rect, width float64) error {
	saved := c.state.LineWidth
	defer func() { c.state.LineWidth = saved }()
	c.SetLineWidth(width)
	return c.StrokeRect(r)
}

// FillEllipse fills the ellipse inscribed in r.
func (c *Context) FillEllipse(r Rect) error {
	c.BeginPath()
	c.AddEllipse(r)
	return c.FillPath(Winding)
}

// StrokeEllipse strokes the ellipse inscribed in r.
func (c *Context) StrokeEllipse(r Rect) error {
	c.BeginPath()
	c.AddEllipse(r)
	return c.StrokePath()
}

// StrokeLineSegments strokes independent segments between consecutive
// pairs of points. A trailing unpaired point is ignored.
func (c *Context) StrokeLineSegments(pts []Point) error {
	c.BeginPath()
	for i := 0; i+1 < len(pts); i += 2 {
		c.MoveTo(pts[i])
		c.AddLineTo(pts[i+1])
	}
	return c.StrokePath()
}

// ClearRect makes r transparent, replacing whatever was drawn there.
func (c *Context) ClearRect(r Rect) error {
	c.BeginPath()
	c.AddRect(r)
	defer c.BeginPath()
	edges := c.fillEdges()
	return c.draw(programFill, edges, Winding, 0, [4]float32{}, gputypes.BlendStateReplace())
}

func (c *Context) fill(rule FillRule) error {
	if c.path.IsEmpty() {
		return nil
	}
	return c.draw(programFill, c.fillEdges(), rule, 0, c.paint(c.state.FillColor), c.blendState())
}

// fillEdges flattens every subpath of the current path and closes it.
func (c *Context) fillEdges() []raster.Edge {
	var edges []raster.Edge
	for _, pl := range c.path.Flatten(c.state.Flatness) {
		edges = raster.Polygon(edges, rasterPoints(pl.Points), true)
	}
	return edges
}

func (c *Context) stroke() error {
	if c.path.IsEmpty() {
		return nil
	}
	var edges []raster.Edge
	for _, pl := range c.path.Flatten(c.state.Flatness) {
		edges = raster.Polygon(edges, rasterPoints(pl.Points), pl.Closed)
	}
	// Widths under one device pixel draw as hairlines.
	width := math.Max(c.state.LineWidth*c.state.CTM.MeanScale(), 1)
	return c.draw(programStroke, edges, Winding, width/2, c.paint(c.state.StrokeColor), c.blendState())
}

func rasterPoints(pts []Point) []raster.Point {
	out := make([]raster.Point, len(pts))
	for i, p := range pts {
		out[i] = raster.Point{X: p.X, Y: p.Y}
	}
	return out
}

// paint returns col as straight RGBA with the global alpha applied.
func (c *Context) paint(col Color) [4]float32 {
	r, g, b, a := col.Straight()
	return [4]float32{float32(r), float32(g), float32(b), float32(a * c.state.Alpha)}
}

func (c *Context) blendState() gputypes.BlendState {
	state, _ := c.state.BlendMode.blendState()
	return state
}

// draw covers the edges' bounding box with a quad and runs the program
// over it. Blend state is restored before returning.
func (c *Context) draw(kind programKind, edges []raster.Edge, rule FillRule, halfWidth float64, color [4]float32, blend gputypes.BlendState) error {
	if c.closed {
		return ErrContextClosed
	}
	if len(edges) == 0 {
		return nil
	}
	n := len(edges)
	edges, truncated, err := raster.Limit(edges, c.maxVertices, c.overflow.raster())
	if err != nil {
		return fmt.Errorf("%w: %d edges, limit %d", ErrVertexLimit, n, c.maxVertices)
	}
	if truncated {
		Logger().Warn("cg: path truncated to vertex limit", "edges", n, "limit", c.maxVertices)
	}

	minX, minY, maxX, maxY, _ := raster.Bounds(edges)
	pad := halfWidth + 1
	vertices, ok := raster.Quad(minX-pad, minY-pad, maxX+pad, maxY+pad, c.width, c.height)
	if !ok {
		return nil
	}

	id, err := c.program(kind)
	if err != nil {
		return err
	}
	dev := c.device
	if err := dev.Use(id); err != nil {
		return fmt.Errorf("cg: use program: %w", err)
	}
	samples := 1
	if c.state.ShouldAntialias {
		samples = 4
	}
	rasterRule := raster.NonZero
	if rule == EvenOdd {
		rasterRule = raster.EvenOdd
	}
	params := raster.Params{Edges: len(edges), Rule: rasterRule, HalfWidth: halfWidth, Samples: samples}
	if err := errors.Join(
		dev.SetUniform(raster.UniformColor, color[:]),
		dev.SetUniform(raster.UniformParams, params.Pack()),
		dev.SetUniform(raster.UniformEdges, raster.Pack(edges)),
	); err != nil {
		return fmt.Errorf("cg: set uniforms: %w", err)
	}

	prev := dev.BlendState()
	dev.SetBlendState(blend)
	defer dev.SetBlendState(prev)

	Logger().Debug("cg: draw", "program", int(kind), "edges", len(edges), "samples", samples)
	if err := dev.DrawPrimitives(vertices, raster.QuadIndices, gputypes.PrimitiveTopologyTriangleList); err != nil {
		return fmt.Errorf("cg: draw primitives: %w", err)
	}
	return nil
}

// program returns the compiled program of the given kind, compiling it on
// first use.
func (c *Context) program(kind programKind) (gpucore.ProgramID, error) {
	if id, ok := c.programs[kind]; ok {
		return id, nil
	}
	src := raster.FillProgram(c.maxVertices)
	if kind == programStroke {
		src = raster.StrokeProgram(c.maxVertices)
	}
	id, err := c.device.Compile(src)
	if err != nil {
		return gpucore.InvalidID, fmt.Errorf("cg: compile %s: %w", src.Label, err)
	}
	c.programs[kind] = id
	return id, nil
}

// DrawImage draws img scaled into r, in user space. The device must
// support texture upload and textured drawing.
func (c *Context) DrawImage(r Rect, img *Image) error {
	if c.closed {
		return ErrContextClosed
	}
	if img == nil || img.Width() == 0 || img.Height() == 0 || r.IsNull() || r.IsEmpty() {
		return nil
	}
	up, ok := c.device.(gpucore.TextureUploader)
	if !ok {
		return fmt.Errorf("cg: draw image: texture upload: %w", ErrUnsupported)
	}
	drawer, ok := c.device.(gpucore.ImageDrawer)
	if !ok {
		return fmt.Errorf("cg: draw image: textured draw: %w", ErrUnsupported)
	}
	tex, err := up.Upload(img.nrgba(), img.Width(), img.Height(), gputypes.TextureFormatRGBA8Unorm)
	if err != nil {
		return fmt.Errorf("cg: draw image: %w", err)
	}
	defer up.DestroyTexture(tex)

	prev := c.device.BlendState()
	c.device.SetBlendState(c.blendState())
	defer c.device.SetBlendState(prev)

	return drawer.DrawTexture(tex, c.imageTransform(r, img))
}

// imageTransform maps image pixels into r and then through the CTM.
func (c *Context) imageTransform(r Rect, img *Image) f64.Aff3 {
	m := c.state.CTM
	sx := r.Size.Width / float64(img.Width())
	sy := r.Size.Height / float64(img.Height())
	ox, oy := r.Origin.X, r.Origin.Y
	return f64.Aff3{
		sx * m.M11, sy * m.M21, ox*m.M11 + oy*m.M21 + m.M41,
		sx * m.M12, sy * m.M22, ox*m.M12 + oy*m.M22 + m.M42,
	}
}
