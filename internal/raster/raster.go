// Package raster implements path fill and stroke as device programs.
//
// A path reaches this package already flattened into device-space edges.
// Drawing covers the edges' bounding box with one quad; the fragment stage
// then decides per sample whether the sample is inside, by casting a ray
// toward +X and summing signed edge crossings (fill) or by measuring the
// distance to the nearest segment (stroke). Each program exists twice with
// identical semantics: as WGSL for devices with a shader compiler and as a
// Go kernel for devices without one.
package raster

// Rule selects how a winding number maps to coverage.
type Rule int

const (
	// NonZero fills samples with a non-zero winding number.
	NonZero Rule = iota
	// EvenOdd fills samples with an odd winding number.
	EvenOdd
)

// Fills reports whether a sample with winding number w is inside.
func (r Rule) Fills(w int) bool {
	if r == EvenOdd {
		return w%2 != 0
	}
	return w != 0
}

// Uniform names shared by the fill and stroke programs.
const (
	UniformColor  = "color"
	UniformParams = "params"
	UniformEdges  = "edges"
)

// Params is the decoded params uniform.
type Params struct {
	Edges     int
	Rule      Rule
	HalfWidth float64
	// Samples is 1 or 4. Four samples sit at quarter-pixel offsets
	// around the pixel center.
	Samples int
}

// Pack encodes p as the params vec4.
func (p Params) Pack() []float32 {
	samples := 1
	if p.Samples > 1 {
		samples = 4
	}
	return []float32{float32(p.Edges), float32(p.Rule), float32(p.HalfWidth), float32(samples)}
}

// UnpackParams decodes the params vec4.
func UnpackParams(v [4]float32) Params {
	p := Params{
		Edges:     int(v[0]),
		Rule:      NonZero,
		HalfWidth: float64(v[2]),
		Samples:   1,
	}
	if v[1] > 0.5 {
		p.Rule = EvenOdd
	}
	if v[3] > 1.5 {
		p.Samples = 4
	}
	return p
}

// sampleOffsets are the sub-pixel positions used when Samples is 4.
var sampleOffsets = [4][2]float64{
	{-0.25, -0.25},
	{0.25, -0.25},
	{-0.25, 0.25},
	{0.25, 0.25},
}
