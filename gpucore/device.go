package gpucore

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f64"
)

// Device errors.
var (
	// ErrUnknownProgram is returned for a ProgramID the device did not
	// compile or has already destroyed.
	ErrUnknownProgram = errors.New("gpucore: unknown program")

	// ErrUnknownUniform is returned when setting a uniform the current
	// program does not declare.
	ErrUnknownUniform = errors.New("gpucore: unknown uniform")

	// ErrNoProgram is returned when drawing or setting uniforms before
	// Use.
	ErrNoProgram = errors.New("gpucore: no program in use")

	// ErrInvalidVertexData is returned for odd vertex slices and
	// out-of-range indices.
	ErrInvalidVertexData = errors.New("gpucore: invalid vertex data")

	// ErrUnknownTexture is returned for a TextureID the device did not
	// upload.
	ErrUnknownTexture = errors.New("gpucore: unknown texture")
)

// Device is the rasterization service the drawing core renders through.
//
// A Device is not safe for concurrent use; it belongs to the goroutine that
// owns the drawing context.
type Device interface {
	// Compile builds a program from its sources.
	Compile(src ProgramSource) (ProgramID, error)

	// Use makes a program current for subsequent SetUniform and
	// DrawPrimitives calls.
	Use(id ProgramID) error

	// SetUniform sets a uniform of the current program. Values shorter
	// than the declaration leave the remaining slots zero; longer values
	// are an error.
	SetUniform(name string, value []float32) error

	// SetBlendState sets how fragment output combines with the target.
	SetBlendState(state gputypes.BlendState)

	// BlendState returns the blend state set last.
	BlendState() gputypes.BlendState

	// DrawPrimitives draws indexed primitives. vertices holds (x, y) pairs
	// in normalized device coordinates.
	DrawPrimitives(vertices []float32, indices []uint16, topology gputypes.PrimitiveTopology) error

	// DestroyProgram releases a program. Unknown IDs are ignored.
	DestroyProgram(id ProgramID)

	// Size returns the target dimensions in pixels.
	Size() (width, height int)
}

// TextureUploader is implemented by devices that accept texture uploads.
type TextureUploader interface {
	// Upload copies tightly packed pixels of the given format into a new
	// texture.
	Upload(pixels []byte, width, height int, format gputypes.TextureFormat) (TextureID, error)

	// DestroyTexture releases a texture. Unknown IDs are ignored.
	DestroyTexture(id TextureID)
}

// ImageDrawer is implemented by devices that can draw a texture through an
// affine map from texture pixels to target pixels.
type ImageDrawer interface {
	DrawTexture(id TextureID, m f64.Aff3) error
}

// Flusher is implemented by devices that batch work.
type Flusher interface {
	Flush() error
}

// ValidateDraw checks vertex and index data against the topology. It is a
// helper for Device implementations.
func ValidateDraw(vertices []float32, indices []uint16, topology gputypes.PrimitiveTopology) error {
	if len(vertices)%2 != 0 {
		return fmt.Errorf("%w: %d floats is not a whole number of vertices", ErrInvalidVertexData, len(vertices))
	}
	n := len(vertices) / 2
	for _, i := range indices {
		if int(i) >= n {
			return fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidVertexData, i, n)
		}
	}
	if topology == gputypes.PrimitiveTopologyTriangleList && len(indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a whole number of triangles", ErrInvalidVertexData, len(indices))
	}
	return nil
}
