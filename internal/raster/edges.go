// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"errors"
	"fmt"
	"math"
)

// ErrTooManyEdges is returned by Limit under the Reject policy.
var ErrTooManyEdges = errors.New("raster: edge count exceeds vertex limit")

// Vertex limit bounds. MaxMaxVertices keeps the uniform block (color,
// params and one vec4 per edge) within a 64 KiB uniform binding.
const (
	DefaultMaxVertices = 256
	MinMaxVertices     = 3
	MaxMaxVertices     = (65536 - 2*16) / 16
)

// ClampVertices clamps a requested vertex limit to the supported range.
func ClampVertices(n int) int {
	return min(max(n, MinMaxVertices), MaxMaxVertices)
}

// Point is a device-space point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Edge is a directed segment in device pixels.
type Edge struct {
	X0, Y0, X1, Y1 float64
}

// Polygon appends the edges of a polyline. When closed is set an edge from
// the last point back to the first is added. Repeated points yield no
// edges.
func Polygon(dst []Edge, pts []Point, closed bool) []Edge {
	n := len(pts)
	if n < 2 {
		return dst
	}
	for i := 1; i < n; i++ {
		dst = appendEdge(dst, pts[i-1], pts[i])
	}
	if closed {
		dst = appendEdge(dst, pts[n-1], pts[0])
	}
	return dst
}

func appendEdge(dst []Edge, a, b Point) []Edge {
	if a == b {
		return dst
	}
	return append(dst, Edge{X0: a.X, Y0: a.Y, X1: b.X, Y1: b.Y})
}

// Policy decides what happens when a draw has more edges than the vertex
// limit allows.
type Policy int

const (
	// Reject fails the draw with ErrTooManyEdges.
	Reject Policy = iota
	// Truncate keeps the first edges up to the limit.
	Truncate
)

func (p Policy) String() string {
	switch p {
	case Reject:
		return "reject"
	case Truncate:
		return "truncate"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// Limit applies the vertex bound. truncated reports whether edges were
// dropped.
func Limit(edges []Edge, maxEdges int, policy Policy) (out []Edge, truncated bool, err error) {
	if len(edges) <= maxEdges {
		return edges, false, nil
	}
	if policy == Truncate {
		return edges[:maxEdges], true, nil
	}
	return nil, false, fmt.Errorf("%w: %d > %d", ErrTooManyEdges, len(edges), maxEdges)
}

// Pack encodes edges as the edges uniform, one vec4 per edge.
func Pack(edges []Edge) []float32 {
	out := make([]float32, 0, len(edges)*4)
	for _, e := range edges {
		out = append(out, float32(e.X0), float32(e.Y0), float32(e.X1), float32(e.Y1))
	}
	return out
}

// Unpack decodes n edges from an edges uniform.
func Unpack(v []float32, n int) []Edge {
	n = min(n, len(v)/4)
	out := make([]Edge, max(n, 0))
	for i := range out {
		out[i] = Edge{
			X0: float64(v[i*4]),
			Y0: float64(v[i*4+1]),
			X1: float64(v[i*4+2]),
			Y1: float64(v[i*4+3]),
		}
	}
	return out
}

// Bounds returns the bounding box of the edges. ok is false for an empty
// list.
func Bounds(edges []Edge) (minX, minY, maxX, maxY float64, ok bool) {
	if len(edges) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, e := range edges {
		minX = math.Min(minX, math.Min(e.X0, e.X1))
		minY = math.Min(minY, math.Min(e.Y0, e.Y1))
		maxX = math.Max(maxX, math.Max(e.X0, e.X1))
		maxY = math.Max(maxY, math.Max(e.Y0, e.Y1))
	}
	return minX, minY, maxX, maxY, true
}
