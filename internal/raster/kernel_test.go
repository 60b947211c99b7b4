// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"math"
	"testing"

	"github.com/gogpu/cg/gpucore"
)

func square(x, y, s float64) []Edge {
	return Polygon(nil, []Point{{x, y}, {x + s, y}, {x + s, y + s}, {x, y + s}}, true)
}

func uniformsFor(edges []Edge, p Params, color [4]float32) gpucore.Uniforms {
	p.Edges = len(edges)
	return gpucore.Uniforms{
		UniformColor:  color[:],
		UniformParams: p.Pack(),
		UniformEdges:  Pack(edges),
	}
}

func TestWindingSquare(t *testing.T) {
	edges := square(0, 0, 10)
	tests := []struct {
		name string
		x, y float64
		want int
	}{
		{"inside", 5, 5, 1},
		{"left", -1, 5, 0},
		{"right", 11, 5, 0},
		{"above", 5, -1, 0},
		{"below", 5, 11, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Winding(edges, tt.x, tt.y); math.Abs(float64(got)) != float64(tt.want) {
				t.Errorf("Winding(%v, %v) = %d, want ±%d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFillKernelRules(t *testing.T) {
	// Two overlapping squares with the same orientation: the overlap is
	// wound twice.
	edges := append(square(0, 0, 10), square(5, 5, 10)...)
	red := [4]float32{1, 0, 0, 1}

	nonzero := FillKernel(uniformsFor(edges, Params{Rule: NonZero, Samples: 1}, red))
	evenodd := FillKernel(uniformsFor(edges, Params{Rule: EvenOdd, Samples: 1}, red))

	if _, keep := nonzero(7.5, 7.5); !keep {
		t.Error("nonzero should fill the doubly wound overlap")
	}
	if _, keep := evenodd(7.5, 7.5); keep {
		t.Error("even-odd should leave the doubly wound overlap empty")
	}
	for _, f := range []gpucore.FragmentFunc{nonzero, evenodd} {
		c, keep := f(2.5, 2.5)
		if !keep || c != red {
			t.Errorf("single region = %v, %v; want %v", c, keep, red)
		}
		if _, keep := f(20.5, 2.5); keep {
			t.Error("outside sample should be discarded")
		}
	}
}

func TestFillKernelAntialias(t *testing.T) {
	// Vertical edge through the middle of pixel column 4.
	edges := Polygon(nil, []Point{{0, 0}, {4.5, 0}, {4.5, 10}, {0, 10}}, true)
	f := FillKernel(uniformsFor(edges, Params{Samples: 4}, [4]float32{0, 0, 1, 1}))

	c, keep := f(4.5, 5.5)
	if !keep {
		t.Fatal("half-covered pixel was discarded")
	}
	if c[3] != 0.5 {
		t.Errorf("alpha = %v, want 0.5", c[3])
	}
	if c, _ := f(2.5, 5.5); c[3] != 1 {
		t.Errorf("interior alpha = %v, want 1", c[3])
	}
}

func TestFillKernelUsesEdgeCount(t *testing.T) {
	edges := square(0, 0, 10)
	u := uniformsFor(edges, Params{}, [4]float32{1, 1, 1, 1})
	// A larger uniform with stale data past the count must be ignored.
	u[UniformEdges] = append(u[UniformEdges], Pack(square(20, 20, 5))...)
	f := FillKernel(u)
	if _, keep := f(22.5, 22.5); keep {
		t.Error("edges past the count were used")
	}
}

func TestStrokeKernel(t *testing.T) {
	seg := []Edge{{X0: 0, Y0: 5, X1: 10, Y1: 5}}
	f := StrokeKernel(uniformsFor(seg, Params{HalfWidth: 1, Samples: 1}, [4]float32{0, 1, 0, 1}))

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"on the line", 5.5, 5.5, true},
		{"within half width", 5.5, 4.5, true},
		{"outside", 5.5, 7.5, false},
		{"round cap", 10.5, 5.5, true},
		{"beyond cap", 11.5, 5.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, keep := f(tt.x, tt.y); keep != tt.want {
				t.Errorf("keep(%v, %v) = %v, want %v", tt.x, tt.y, keep, tt.want)
			}
		})
	}
}

func TestSegmentDistance(t *testing.T) {
	e := Edge{X0: 0, Y0: 0, X1: 10, Y1: 0}
	if d := SegmentDistance(5, 3, e); d != 3 {
		t.Errorf("perpendicular distance = %v, want 3", d)
	}
	if d := SegmentDistance(13, 4, e); d != 5 {
		t.Errorf("distance past the end = %v, want 5", d)
	}
	if d := SegmentDistance(3, 4, Edge{}); d != 5 {
		t.Errorf("distance to a point = %v, want 5", d)
	}
}

func TestParamsRoundTrip(t *testing.T) {
	p := Params{Edges: 12, Rule: EvenOdd, HalfWidth: 2.5, Samples: 4}
	var v [4]float32
	copy(v[:], p.Pack())
	if got := UnpackParams(v); got != p {
		t.Errorf("UnpackParams(Pack()) = %+v, want %+v", got, p)
	}
}
