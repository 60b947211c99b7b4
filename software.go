package cg

import (
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/gogpu/cg/gpucore"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// SoftwareDevice is a gpucore.Device that renders into a Pixmap on the CPU.
// Programs run through their Go kernels; WGSL sources are only checked when
// shader validation is enabled.
//
// It also implements gpucore.TextureUploader and gpucore.ImageDrawer.
type SoftwareDevice struct {
	pixmap   *Pixmap
	programs gpucore.ProgramTable
	blend    gputypes.BlendState

	textures    map[gpucore.TextureID]*image.NRGBA
	nextTexture gpucore.TextureID

	validate bool
	log      *slog.Logger
}

// SoftwareOption configures a SoftwareDevice.
type SoftwareOption func(*SoftwareDevice)

// WithShaderValidation makes Compile translate the program's WGSL with
// naga and fail on errors, so programs that would not build on a GPU
// backend are caught on the CPU too.
func WithShaderValidation() SoftwareOption {
	return func(d *SoftwareDevice) {
		d.validate = true
	}
}

// NewSoftwareDevice creates a device drawing into pm.
func NewSoftwareDevice(pm *Pixmap, opts ...SoftwareOption) *SoftwareDevice {
	d := &SoftwareDevice{
		pixmap:   pm,
		blend:    gputypes.BlendStateReplace(),
		textures: make(map[gpucore.TextureID]*image.NRGBA),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetLogger sets the logger used for debug output. Nil makes the device
// follow the cg logger again.
func (d *SoftwareDevice) SetLogger(l *slog.Logger) {
	d.log = l
}

func (d *SoftwareDevice) logger() *slog.Logger {
	if d.log != nil {
		return d.log
	}
	return Logger()
}

// Pixmap returns the render target.
func (d *SoftwareDevice) Pixmap() *Pixmap {
	return d.pixmap
}

// Size returns the target dimensions.
func (d *SoftwareDevice) Size() (width, height int) {
	return d.pixmap.Width(), d.pixmap.Height()
}

// Compile registers a program. The program must carry a CPU kernel.
func (d *SoftwareDevice) Compile(src gpucore.ProgramSource) (gpucore.ProgramID, error) {
	if src.Kernel == nil {
		return gpucore.InvalidID, fmt.Errorf("cg: program %q has no CPU kernel: %w", src.Label, ErrUnsupported)
	}
	if d.validate {
		if err := validateWGSL(src); err != nil {
			return gpucore.InvalidID, err
		}
	}
	p := d.programs.Add(src)
	d.logger().Debug("cg: program compiled", "label", src.Label, "id", p.ID, "uniformBytes", src.UniformSize())
	return p.ID, nil
}

func validateWGSL(src gpucore.ProgramSource) error {
	stages := []string{src.Vertex}
	if src.Fragment != src.Vertex {
		stages = append(stages, src.Fragment)
	}
	for _, s := range stages {
		if s == "" {
			continue
		}
		if _, err := naga.Compile(s); err != nil {
			return fmt.Errorf("cg: program %q: %w", src.Label, err)
		}
	}
	return nil
}

// Use makes a program current.
func (d *SoftwareDevice) Use(id gpucore.ProgramID) error {
	_, err := d.programs.Use(id)
	return err
}

// SetUniform sets a uniform of the current program.
func (d *SoftwareDevice) SetUniform(name string, value []float32) error {
	_, err := d.programs.SetUniform(name, value)
	return err
}

// SetBlendState sets the blend state for subsequent draws.
func (d *SoftwareDevice) SetBlendState(state gputypes.BlendState) {
	d.blend = state
}

// BlendState returns the current blend state.
func (d *SoftwareDevice) BlendState() gputypes.BlendState {
	return d.blend
}

// DestroyProgram releases a program.
func (d *SoftwareDevice) DestroyProgram(id gpucore.ProgramID) {
	d.programs.Remove(id)
}

// DrawPrimitives rasterizes triangles with the current program. Pixels are
// sampled at their centers; a pixel on an edge shared by two triangles is
// drawn once (top-left rule).
func (d *SoftwareDevice) DrawPrimitives(vertices []float32, indices []uint16, topology gputypes.PrimitiveTopology) error {
	prog, err := d.programs.Current()
	if err != nil {
		return err
	}
	if err := gpucore.ValidateDraw(vertices, indices, topology); err != nil {
		return err
	}
	tris, err := triangles(indices, topology)
	if err != nil {
		return err
	}
	frag := prog.Source.Kernel(prog.Uniforms)
	w, h := d.Size()
	pts := make([]devicePoint, len(vertices)/2)
	for i := range pts {
		pts[i] = devicePoint{
			x: (float64(vertices[i*2]) + 1) / 2 * float64(w),
			y: (1 - float64(vertices[i*2+1])) / 2 * float64(h),
		}
	}
	for _, t := range tris {
		d.fillTriangle(pts[t[0]], pts[t[1]], pts[t[2]], frag)
	}
	return nil
}

func triangles(indices []uint16, topology gputypes.PrimitiveTopology) ([][3]uint16, error) {
	var out [][3]uint16
	switch topology {
	case gputypes.PrimitiveTopologyTriangleList:
		for i := 0; i+2 < len(indices); i += 3 {
			out = append(out, [3]uint16{indices[i], indices[i+1], indices[i+2]})
		}
	case gputypes.PrimitiveTopologyTriangleStrip:
		for i := 0; i+2 < len(indices); i++ {
			if i%2 == 0 {
				out = append(out, [3]uint16{indices[i], indices[i+1], indices[i+2]})
			} else {
				out = append(out, [3]uint16{indices[i+1], indices[i], indices[i+2]})
			}
		}
	default:
		return nil, fmt.Errorf("cg: topology %v: %w", topology, ErrUnsupported)
	}
	return out, nil
}

type devicePoint struct{ x, y float64 }

// edgeFn is twice the signed area of (a, b, p); positive when p is on the
// interior side of a clockwise (y down) triangle.
func edgeFn(a, b devicePoint, px, py float64) float64 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// topLeft reports whether a->b is a top or left edge of a triangle with
// positive area.
func topLeft(a, b devicePoint) bool {
	dy := b.y - a.y
	return dy < 0 || (dy == 0 && b.x > a.x)
}

func (d *SoftwareDevice) fillTriangle(a, b, c devicePoint, frag gpucore.FragmentFunc) {
	area := edgeFn(a, b, c.x, c.y)
	if area == 0 {
		return
	}
	if area < 0 {
		b, c = c, b
	}
	w, h := d.Size()
	x0 := max(int(math.Floor(min(a.x, b.x, c.x))), 0)
	y0 := max(int(math.Floor(min(a.y, b.y, c.y))), 0)
	x1 := min(int(math.Ceil(max(a.x, b.x, c.x))), w)
	y1 := min(int(math.Ceil(max(a.y, b.y, c.y))), h)

	tl0, tl1, tl2 := topLeft(b, c), topLeft(c, a), topLeft(a, b)
	covered := func(e float64, tl bool) bool { return e > 0 || (e == 0 && tl) }

	for y := y0; y < y1; y++ {
		py := float64(y) + 0.5
		for x := x0; x < x1; x++ {
			px := float64(x) + 0.5
			if !covered(edgeFn(b, c, px, py), tl0) ||
				!covered(edgeFn(c, a, px, py), tl1) ||
				!covered(edgeFn(a, b, px, py), tl2) {
				continue
			}
			src, keep := frag(px, py)
			if !keep {
				continue
			}
			d.pixmap.setPixel(x, y, blendPixel(d.blend, src, d.pixmap.pixel(x, y)))
		}
	}
}

// Upload copies 8-bit RGBA or BGRA pixels into a new texture.
func (d *SoftwareDevice) Upload(pixels []byte, width, height int, format gputypes.TextureFormat) (gpucore.TextureID, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return gpucore.InvalidID, fmt.Errorf("cg: texture %dx%d with %d bytes: %w", width, height, len(pixels), ErrInvalidArgument)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	switch format {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb:
		copy(img.Pix, pixels)
	case gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatBGRA8UnormSrgb:
		for i := 0; i < len(pixels); i += 4 {
			img.Pix[i+0] = pixels[i+2]
			img.Pix[i+1] = pixels[i+1]
			img.Pix[i+2] = pixels[i+0]
			img.Pix[i+3] = pixels[i+3]
		}
	default:
		return gpucore.InvalidID, fmt.Errorf("cg: texture format %v: %w", format, ErrUnsupported)
	}
	d.nextTexture++
	d.textures[d.nextTexture] = img
	return d.nextTexture, nil
}

// DestroyTexture releases a texture.
func (d *SoftwareDevice) DestroyTexture(id gpucore.TextureID) {
	delete(d.textures, id)
}

// DrawTexture composites a texture over the target through m, which maps
// texture pixels to target pixels, with bilinear filtering.
func (d *SoftwareDevice) DrawTexture(id gpucore.TextureID, m f64.Aff3) error {
	src, ok := d.textures[id]
	if !ok {
		return fmt.Errorf("%w: %d", gpucore.ErrUnknownTexture, id)
	}
	pm := d.pixmap
	dst := &image.NRGBA{Pix: pm.data, Stride: pm.width * 4, Rect: image.Rect(0, 0, pm.width, pm.height)}
	draw.BiLinear.Transform(dst, m, src, src.Bounds(), draw.Over, nil)
	return nil
}
