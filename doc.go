// Package cg is a device-independent 2D drawing library.
//
// # Overview
//
// Callers build geometric paths in user space, manipulate a current
// transformation matrix (CTM) and issue fill, stroke and image operations
// against a graphics context. The context bakes the CTM into every path
// element at append time, so a finished path is already in device (pixel)
// space when it reaches the rasterizer.
//
// # Quick Start
//
//	c := cg.NewContext(256, 256)
//	c.SetFillColor(cg.RGB(1, 0, 0))
//	c.AddEllipse(cg.NewRect(28, 28, 200, 200))
//	if err := c.FillPath(cg.Winding); err != nil {
//		log.Fatal(err)
//	}
//	_ = c.Pixmap().SavePNG("circle.png")
//
// # Coordinate Spaces
//
//   - User space: coordinates passed to path and drawing calls.
//   - Device space: pixels of the target surface, origin top-left, Y down.
//   - Normalized space: [-1, 1] on both axes, the space vertices are
//     submitted in. See [Context.ConvertToNormalized].
//
// Transforms use row vectors: a point is applied as
// x' = x*M11 + y*M21 + M41, y' = x*M12 + y*M22 + M42, and
// p.Applying(a.Concatenating(b)) applies a first, then b.
//
// # Rasterization
//
// Fills and strokes are not tessellated. The context flattens the path into
// an edge list, uploads it as uniforms and draws the bounding quad with a
// program whose fragment stage ray-casts the edges at each pixel center.
// The program is compiled by a [gpucore.Device]: [SoftwareDevice] runs the
// CPU kernel that mirrors the WGSL, backend/wgpu compiles the WGSL through
// naga and runs it on a GPU.
//
// The number of polygon vertices per draw is bounded (see
// [WithVertexLimit]); paths beyond the bound are rejected with
// [ErrVertexLimit] unless [OverflowTruncate] is selected.
//
// # Concurrency
//
// A Context and its Path are owned by one goroutine at a time. Predeclared
// color spaces are immutable and may be shared freely.
package cg

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
