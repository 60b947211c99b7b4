package cg

import (
	"errors"
	"io"

	"github.com/gogpu/cg/gpucore"
)

// ErrContextClosed is returned by drawing operations after Close.
var ErrContextClosed = errors.New("cg: context closed")

// Context is a drawing surface: it owns the current path, the graphics
// state and its save/restore stack, and draws through a gpucore.Device.
//
// Coordinates passed to path and drawing calls are in user space. The CTM
// maps them to device space (pixels, origin at the top-left, y down) when
// they are appended, so the current path is always stored in device space.
//
// A Context is not safe for concurrent use. Context implements io.Closer.
type Context struct {
	width  int
	height int
	pixmap *Pixmap // nil when drawing through an external device
	device gpucore.Device

	path  *Path // nil when there is no current path
	state GState
	stack []GState

	// normalize maps device pixels to [-1, 1] normalized coordinates.
	normalize Transform

	maxVertices int
	overflow    OverflowPolicy
	programs    map[programKind]gpucore.ProgramID

	closed bool
}

// Ensure Context implements io.Closer
var _ io.Closer = (*Context)(nil)

// NewContext creates a new drawing context with the given dimensions.
// Without options it draws into a new transparent Pixmap through a
// SoftwareDevice:
//
//	ctx := cg.NewContext(800, 600)
//	ctx.SetRGBFillColor(1, 0, 0, 1)
//	ctx.FillRect(cg.NewRect(10, 10, 100, 50))
//	_ = ctx.Pixmap().SavePNG("out.png")
func NewContext(width, height int, opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	c := &Context{
		maxVertices: options.maxVertices,
		overflow:    options.overflow,
		programs:    make(map[programKind]gpucore.ProgramID),
	}

	switch {
	case options.device != nil:
		c.device = options.device
		width, height = c.device.Size()
	case options.pixmap != nil:
		c.pixmap = options.pixmap
		width, height = c.pixmap.Width(), c.pixmap.Height()
	default:
		c.pixmap = NewPixmap(max(width, 1), max(height, 1))
	}
	if c.device == nil {
		c.device = NewSoftwareDevice(c.pixmap)
	}

	c.width, c.height = max(width, 1), max(height, 1)
	// Non-zero extents cannot fail.
	c.normalize, _ = Orthographic(0, float64(c.width), float64(c.height), 0, -1, 1)

	c.state = DefaultGState()
	c.state.ShouldAntialias = options.antialias
	c.state.Flatness = options.tolerance

	Logger().Debug("cg: context created",
		"width", c.width, "height", c.height,
		"maxVertices", c.maxVertices, "overflow", c.overflow.String())
	return c
}

// Width returns the surface width in pixels.
func (c *Context) Width() int { return c.width }

// Height returns the surface height in pixels.
func (c *Context) Height() int { return c.height }

// Device returns the device the context draws through.
func (c *Context) Device() gpucore.Device { return c.device }

// Pixmap returns the software render target, or nil when the context
// draws through an external device.
func (c *Context) Pixmap() *Pixmap { return c.pixmap }

// VertexLimit returns the maximum number of polygon vertices per draw.
func (c *Context) VertexLimit() int { return c.maxVertices }

// Flush submits batched work on devices that batch.
func (c *Context) Flush() error {
	if f, ok := c.device.(gpucore.Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Close releases the programs the context compiled. The device itself is
// owned by the caller. Close is idempotent.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	for kind, id := range c.programs {
		c.device.DestroyProgram(id)
		delete(c.programs, kind)
	}
	c.path = nil
	return nil
}
