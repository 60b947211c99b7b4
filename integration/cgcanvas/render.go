// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cgcanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

var (
	// ErrInvalidTexture is returned when the canvas texture does not
	// implement gpucontext.Texture.
	ErrInvalidTexture = errors.New("cgcanvas: texture does not implement gpucontext.Texture")

	// ErrNoTextureCreator is returned when the drawer has no texture
	// creator.
	ErrNoTextureCreator = errors.New("cgcanvas: drawer has no TextureCreator")
)

// RenderTo draws the canvas at the window origin.
func (c *Canvas) RenderTo(dc gpucontext.TextureDrawer) error {
	return c.RenderToPosition(dc, 0, 0)
}

// RenderToPosition flushes the canvas and draws its texture with the
// top-left corner at (x, y) window pixels. The texture is created through
// dc's TextureCreator on first use.
func (c *Canvas) RenderToPosition(dc gpucontext.TextureDrawer, x, y float32) error {
	if c.closed {
		return ErrCanvasClosed
	}
	tex, err := c.Flush()
	if err != nil {
		return err
	}

	if pending, ok := tex.(*pendingTexture); ok {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrNoTextureCreator
		}
		created, err := creator.NewTextureFromRGBA(pending.width, pending.height, pending.data)
		if err != nil {
			return fmt.Errorf("cgcanvas: NewTextureFromRGBA failed: %w", err)
		}
		// cg pixmaps hold straight alpha.
		if pt, ok := created.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(false)
		}
		c.texture = created
		tex = created
		destroyTexture(c.oldTexture)
		c.oldTexture = nil
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidTexture
	}
	return dc.DrawTexture(gpuTex, x, y)
}
