// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"math"

	"github.com/gogpu/cg/gpucore"
)

// FillKernel is the CPU fragment stage of the fill program.
func FillKernel(u gpucore.Uniforms) gpucore.FragmentFunc {
	p := UnpackParams(u.Vec4(UniformParams, 0))
	edges := Unpack(u[UniformEdges], p.Edges)
	return sampled(u.Vec4(UniformColor, 0), p.Samples, func(x, y float64) bool {
		return p.Rule.Fills(Winding(edges, x, y))
	})
}

// StrokeKernel is the CPU fragment stage of the stroke program.
func StrokeKernel(u gpucore.Uniforms) gpucore.FragmentFunc {
	p := UnpackParams(u.Vec4(UniformParams, 0))
	edges := Unpack(u[UniformEdges], p.Edges)
	hw := p.HalfWidth
	return sampled(u.Vec4(UniformColor, 0), p.Samples, func(x, y float64) bool {
		for _, e := range edges {
			if SegmentDistance(x, y, e) <= hw {
				return true
			}
		}
		return false
	})
}

func sampled(color [4]float32, samples int, inside func(x, y float64) bool) gpucore.FragmentFunc {
	return func(x, y float64) ([4]float32, bool) {
		var cov float64
		if samples > 1 {
			for _, o := range sampleOffsets {
				if inside(x+o[0], y+o[1]) {
					cov += 0.25
				}
			}
		} else if inside(x, y) {
			cov = 1
		}
		if cov <= 0 {
			return [4]float32{}, false
		}
		return [4]float32{color[0], color[1], color[2], color[3] * float32(cov)}, true
	}
}

// Winding returns the signed number of edges crossed by a ray from (x, y)
// toward +X. Downward edges (increasing y) count +1.
func Winding(edges []Edge, x, y float64) int {
	w := 0
	for _, e := range edges {
		if (e.Y0 <= y) == (e.Y1 <= y) {
			continue
		}
		ix := e.X0 + (y-e.Y0)*(e.X1-e.X0)/(e.Y1-e.Y0)
		if ix > x {
			if e.Y1 > e.Y0 {
				w++
			} else {
				w--
			}
		}
	}
	return w
}

// SegmentDistance returns the distance from (x, y) to the segment e.
func SegmentDistance(x, y float64, e Edge) float64 {
	dx, dy := e.X1-e.X0, e.Y1-e.Y0
	l2 := dx*dx + dy*dy
	t := 0.0
	if l2 > 0 {
		t = ((x-e.X0)*dx + (y-e.Y0)*dy) / l2
		t = math.Max(0, math.Min(1, t))
	}
	return math.Hypot(x-(e.X0+dx*t), y-(e.Y0+dy*t))
}
