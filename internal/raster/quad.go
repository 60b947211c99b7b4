// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "math"

// QuadIndices draws a quad as two triangles.
var QuadIndices = []uint16{0, 1, 2, 2, 3, 0}

// Quad returns the corners of the pixel-aligned rectangle covering
// [minX, maxX] x [minY, maxY], clipped to a width x height target, as
// normalized device coordinates in the order top-left, top-right,
// bottom-right, bottom-left. ok is false when nothing of the rectangle is
// on the target.
func Quad(minX, minY, maxX, maxY float64, width, height int) (vertices []float32, ok bool) {
	x0 := math.Max(math.Floor(minX), 0)
	y0 := math.Max(math.Floor(minY), 0)
	x1 := math.Min(math.Ceil(maxX), float64(width))
	y1 := math.Min(math.Ceil(maxY), float64(height))
	if !(x1 > x0 && y1 > y0) {
		return nil, false
	}
	w, h := float64(width), float64(height)
	nx := func(x float64) float32 { return float32(x/w*2 - 1) }
	ny := func(y float64) float32 { return float32(1 - y/h*2) }
	return []float32{
		nx(x0), ny(y0),
		nx(x1), ny(y0),
		nx(x1), ny(y1),
		nx(x0), ny(y1),
	}, true
}
