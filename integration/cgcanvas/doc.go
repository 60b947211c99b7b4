// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cgcanvas draws cg content into gogpu windows.
//
// The data flow is:
//
//	cg.Context (draw) -> Pixmap (CPU) -> GPU Texture -> Window
//
// Canvas owns a cg.Context that renders into a Pixmap. Flush uploads the
// pixels when they changed, and RenderTo draws the texture through any
// gpucontext.TextureDrawer, typically the draw context of a gogpu window.
//
// # Usage
//
//	canvas, err := cgcanvas.New(app.GPUContextProvider(), 800, 600)
//	if err != nil {
//	    return err
//	}
//	defer canvas.Close()
//
//	err = canvas.Draw(func(ctx *cg.Context) error {
//	    ctx.SetRGBFillColor(1, 0, 0, 1)
//	    return ctx.FillRect(cg.NewRect(100, 100, 200, 150))
//	})
//
//	// In the window's draw callback:
//	canvas.RenderTo(dc)
//
// # Thread Safety
//
// Canvas is not safe for concurrent use.
//
// # Integration Without Circular Imports
//
// The package only depends on gpucontext interfaces, so it never imports
// gogpu itself.
package cgcanvas
