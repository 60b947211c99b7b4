// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cgcanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/cg"
	"github.com/gogpu/gpucontext"
)

// Errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operating on a closed canvas.
	ErrCanvasClosed = errors.New("cgcanvas: canvas is closed")

	// ErrInvalidDimensions is returned for non-positive sizes.
	ErrInvalidDimensions = errors.New("cgcanvas: invalid dimensions")

	// ErrNilProvider is returned when New gets a nil DeviceProvider.
	ErrNilProvider = errors.New("cgcanvas: nil DeviceProvider")

	// ErrNoPixels is returned when the context's device cannot hand back
	// its pixels.
	ErrNoPixels = errors.New("cgcanvas: device does not expose its pixels")
)

type textureDestroyer interface {
	Destroy()
}

// pixmapReader is implemented by GPU devices that read their target back.
type pixmapReader interface {
	Pixmap() (*cg.Pixmap, error)
}

// Canvas is a cg drawing surface that is shown in a gogpu window as a
// texture.
type Canvas struct {
	ctx      *cg.Context
	opts     []cg.ContextOption
	provider gpucontext.DeviceProvider

	texture    any // gpucontext.Texture, or *pendingTexture before RenderTo
	oldTexture any // replaced texture awaiting destruction

	dirty       bool
	sizeChanged bool
	width       int
	height      int
	closed      bool
}

// New creates a canvas of the given size. opts configure the underlying
// cg.Context; by default it renders into a Pixmap through the software
// device.
func New(provider gpucontext.DeviceProvider, width, height int, opts ...cg.ContextOption) (*Canvas, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	c := &Canvas{
		opts:     opts,
		provider: provider,
		width:    width,
		height:   height,
		dirty:    true,
	}
	c.ctx = cg.NewContext(width, height, opts...)
	cg.Logger().Debug("cgcanvas: created", "width", width, "height", height,
		"adapter", provider.AdapterInfo().Name)
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(provider gpucontext.DeviceProvider, width, height int, opts ...cg.ContextOption) *Canvas {
	c, err := New(provider, width, height, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Context returns the drawing context, or nil after Close. Drawing through
// it directly requires MarkDirty before the next Flush.
func (c *Canvas) Context() *cg.Context {
	if c.closed {
		return nil
	}
	return c.ctx
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// MarkDirty forces the next Flush to upload.
func (c *Canvas) MarkDirty() { c.dirty = true }

// IsDirty reports whether the pixels changed since the last upload.
func (c *Canvas) IsDirty() bool { return c.dirty }

// Draw runs fn on the context and marks the canvas dirty.
func (c *Canvas) Draw(fn func(*cg.Context) error) error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.dirty = true
	return fn(c.ctx)
}

// Resize changes the canvas size. The context is recreated with the
// canvas options, so its contents and graphics state start over.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if c.width == width && c.height == height {
		return nil
	}
	if err := c.ctx.Close(); err != nil {
		return fmt.Errorf("cgcanvas: close context: %w", err)
	}
	c.ctx = cg.NewContext(width, height, c.opts...)
	c.width, c.height = width, height
	c.sizeChanged = true
	c.dirty = true
	return nil
}

// Flush brings the texture up to date and returns it. Before the first
// RenderTo the returned value holds the pixels awaiting texture creation.
func (c *Canvas) Flush() (any, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}
	if c.sizeChanged {
		if c.texture != nil {
			destroyTexture(c.oldTexture)
			c.oldTexture = c.texture
			c.texture = nil
		}
		c.sizeChanged = false
	}
	if !c.dirty && c.texture != nil {
		return c.texture, nil
	}

	data, err := c.pixels()
	if err != nil {
		return nil, err
	}
	if c.texture == nil {
		c.texture = &pendingTexture{width: c.width, height: c.height, data: data}
		c.dirty = false
		return c.texture, nil
	}
	switch t := c.texture.(type) {
	case *pendingTexture:
		t.data = data
	case gpucontext.TextureUpdater:
		if err := t.UpdateData(data); err != nil {
			return nil, fmt.Errorf("cgcanvas: texture update failed: %w", err)
		}
	}
	c.dirty = false
	return c.texture, nil
}

// pixels flushes the context and returns its RGBA bytes.
func (c *Canvas) pixels() ([]byte, error) {
	if err := c.ctx.Flush(); err != nil {
		return nil, fmt.Errorf("cgcanvas: flush: %w", err)
	}
	if pm := c.ctx.Pixmap(); pm != nil {
		return pm.Data(), nil
	}
	r, ok := c.ctx.Device().(pixmapReader)
	if !ok {
		return nil, ErrNoPixels
	}
	pm, err := r.Pixmap()
	if err != nil {
		return nil, fmt.Errorf("cgcanvas: read back: %w", err)
	}
	return pm.Data(), nil
}

// Texture returns the current texture, or nil before the first Flush.
func (c *Canvas) Texture() any { return c.texture }

// Provider returns the device provider, or nil after Close.
func (c *Canvas) Provider() gpucontext.DeviceProvider {
	if c.closed {
		return nil
	}
	return c.provider
}

// Close releases the textures and the context. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	destroyTexture(c.oldTexture)
	destroyTexture(c.texture)
	c.oldTexture, c.texture = nil, nil

	var err error
	if c.ctx != nil {
		err = c.ctx.Close()
		c.ctx = nil
	}
	c.provider = nil
	return err
}

func destroyTexture(t any) {
	if d, ok := t.(textureDestroyer); ok {
		d.Destroy()
	}
}

// pendingTexture holds pixels until a TextureCreator is available.
type pendingTexture struct {
	width  int
	height int
	data   []byte
}
