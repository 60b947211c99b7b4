package cg

import (
	"github.com/gogpu/cg/gpucore"
	"github.com/gogpu/cg/internal/raster"
)

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Default software rendering into a new pixmap
//	ctx := cg.NewContext(800, 600)
//
//	// GPU device (dependency injection)
//	ctx := cg.NewContext(800, 600, cg.WithDevice(dev))
type ContextOption func(*contextOptions)

// OverflowPolicy decides what happens when a path has more polygon
// vertices than the context's vertex limit.
type OverflowPolicy int

const (
	// OverflowReject fails the draw with ErrVertexLimit.
	OverflowReject OverflowPolicy = iota
	// OverflowTruncate draws the first edges up to the limit and logs a
	// warning.
	OverflowTruncate
)

func (p OverflowPolicy) String() string {
	return p.raster().String()
}

func (p OverflowPolicy) raster() raster.Policy {
	if p == OverflowTruncate {
		return raster.Truncate
	}
	return raster.Reject
}

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	device      gpucore.Device
	pixmap      *Pixmap
	maxVertices int
	overflow    OverflowPolicy
	antialias   bool
	tolerance   float64
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		maxVertices: raster.DefaultMaxVertices,
		overflow:    OverflowReject,
		tolerance:   0.25,
	}
}

// WithDevice renders through dev instead of a software device. The
// context takes its dimensions from the device.
func WithDevice(dev gpucore.Device) ContextOption {
	return func(o *contextOptions) {
		o.device = dev
	}
}

// WithPixmap sets the pixmap the default software device draws into. The
// context takes its dimensions from the pixmap. Ignored with WithDevice.
func WithPixmap(pm *Pixmap) ContextOption {
	return func(o *contextOptions) {
		o.pixmap = pm
	}
}

// WithVertexLimit sets the maximum number of polygon vertices per draw.
// Values are clamped to [3, 4094]; the default is 256.
func WithVertexLimit(n int) ContextOption {
	return func(o *contextOptions) {
		o.maxVertices = raster.ClampVertices(n)
	}
}

// WithOverflowPolicy sets what happens when a draw exceeds the vertex
// limit. The default is OverflowReject.
func WithOverflowPolicy(p OverflowPolicy) ContextOption {
	return func(o *contextOptions) {
		o.overflow = p
	}
}

// WithAntialias sets the initial antialiasing flag of the graphics state.
// Antialiased draws take four samples per pixel.
func WithAntialias(enabled bool) ContextOption {
	return func(o *contextOptions) {
		o.antialias = enabled
	}
}

// WithTolerance sets the initial flatness, the maximum distance in device
// pixels between a curve and its flattened segments.
func WithTolerance(px float64) ContextOption {
	return func(o *contextOptions) {
		if px > 0 {
			o.tolerance = px
		}
	}
}
