// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package wgpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/cg"
	"github.com/gogpu/cg/gpucore"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"golang.org/x/image/math/f64"
)

//go:embed shaders/blit.wgsl
var blitShaderWGSL string

// texture is an uploaded image.
type texture struct {
	tex           hal.Texture
	view          hal.TextureView
	width, height int
}

func (t *texture) destroy(dev hal.Device) {
	if t.view != nil {
		dev.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.tex != nil {
		dev.DestroyTexture(t.tex)
		t.tex = nil
	}
}

// blitLayout is the vertex layout of the blit program: position and uv,
// both vec2.
var blitLayout = []gputypes.VertexBufferLayout{{
	ArrayStride: 16,
	StepMode:    gputypes.VertexStepModeVertex,
	Attributes: []gputypes.VertexAttribute{
		{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
		{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
	},
}}

// uploadFormat maps a pixel format to the texture format that keeps the
// bytes unchanged when sampled. sRGB variants are stored as plain unorm so
// blending happens on encoded values like the software device does.
func uploadFormat(format gputypes.TextureFormat) (gputypes.TextureFormat, bool) {
	switch format {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb:
		return gputypes.TextureFormatRGBA8Unorm, true
	case gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatBGRA8UnormSrgb:
		return gputypes.TextureFormatBGRA8Unorm, true
	}
	return 0, false
}

// Upload copies tightly packed 8-bit RGBA or BGRA pixels into a new sampled
// texture.
func (d *Device) Upload(pixels []byte, width, height int, format gputypes.TextureFormat) (gpucore.TextureID, error) {
	if d.closed {
		return gpucore.InvalidID, ErrDeviceClosed
	}
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return gpucore.InvalidID, fmt.Errorf("wgpu: texture %dx%d with %d bytes: %w", width, height, len(pixels), cg.ErrInvalidArgument)
	}
	texFormat, ok := uploadFormat(format)
	if !ok {
		return gpucore.InvalidID, fmt.Errorf("wgpu: texture format %v: %w", format, cg.ErrUnsupported)
	}

	size := hal.Extent3D{Width: uint32(width), Height: uint32(height), DepthOrArrayLayers: 1}
	t := &texture{width: width, height: height}
	var err error
	t.tex, err = d.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "cg.image",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        texFormat,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return gpucore.InvalidID, fmt.Errorf("wgpu: create texture: %w", err)
	}
	t.view, err = d.device.CreateTextureView(t.tex, &hal.TextureViewDescriptor{
		Label:         "cg.image.view",
		Format:        texFormat,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		t.destroy(d.device)
		return gpucore.InvalidID, fmt.Errorf("wgpu: create texture view: %w", err)
	}
	err = d.queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: t.tex, Aspect: gputypes.TextureAspectAll},
		pixels,
		&hal.ImageDataLayout{BytesPerRow: uint32(width * 4), RowsPerImage: uint32(height)},
		&size,
	)
	if err != nil {
		t.destroy(d.device)
		return gpucore.InvalidID, fmt.Errorf("wgpu: write texture: %w", err)
	}

	d.nextTexture++
	d.textures[d.nextTexture] = t
	d.logger().Debug("wgpu: texture uploaded", "id", uint64(d.nextTexture), "width", width, "height", height)
	return d.nextTexture, nil
}

// DestroyTexture waits for pending draws, then releases the texture.
// Unknown IDs are ignored.
func (d *Device) DestroyTexture(id gpucore.TextureID) {
	t, ok := d.textures[id]
	if !ok {
		return
	}
	delete(d.textures, id)
	if err := d.Flush(); err != nil {
		d.logger().Warn("wgpu: flush before texture destroy failed", "err", err)
	}
	t.destroy(d.device)
}

// DrawTexture draws a texture through m, which maps texture pixels to target
// pixels, with bilinear filtering and the current blend state.
func (d *Device) DrawTexture(id gpucore.TextureID, m f64.Aff3) error {
	if d.closed {
		return ErrDeviceClosed
	}
	t, ok := d.textures[id]
	if !ok {
		return fmt.Errorf("%w: %d", gpucore.ErrUnknownTexture, id)
	}
	if err := d.ensureBlit(); err != nil {
		return err
	}
	rp, err := d.pipeline(d.blit, d.blend, gputypes.PrimitiveTopologyTriangleList)
	if err != nil {
		return err
	}

	f := &frame{}
	vb, err := d.uploadBuffer(f, "cg.blit.vertices", float32Bytes(d.blitQuad(t, m)), gputypes.BufferUsageVertex)
	if err != nil {
		f.release(d.device)
		return err
	}
	ib, err := d.uploadBuffer(f, "cg.blit.indices", uint16Bytes([]uint16{0, 1, 2, 2, 3, 0}), gputypes.BufferUsageIndex)
	if err != nil {
		f.release(d.device)
		return err
	}
	group, err := d.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "cg.blit.bg",
		Layout: d.blit.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.TextureViewBinding{TextureView: t.view.NativeHandle()}},
			{Binding: 1, Resource: gputypes.SamplerBinding{Sampler: d.sampler.NativeHandle()}},
		},
	})
	if err != nil {
		f.release(d.device)
		return fmt.Errorf("wgpu: blit bind group: %w", err)
	}
	f.groups = append(f.groups, group)

	return d.submit("cg.blit", f, func(enc hal.CommandEncoder) error {
		pass := enc.BeginRenderPass(d.loadPass("cg.blit"))
		pass.SetPipeline(rp)
		pass.SetBindGroup(0, group, nil)
		pass.SetVertexBuffer(0, vb, 0)
		pass.SetIndexBuffer(ib, gputypes.IndexFormatUint16, 0)
		pass.DrawIndexed(6, 1, 0, 0, 0)
		pass.End()
		return nil
	})
}

// blitQuad returns the texture's corners mapped through m into normalized
// device coordinates, interleaved with their uv.
func (d *Device) blitQuad(t *texture, m f64.Aff3) []float32 {
	w, h := float64(t.width), float64(t.height)
	corners := [4][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	out := make([]float32, 0, 16)
	for i, c := range corners {
		x := m[0]*c[0] + m[1]*c[1] + m[2]
		y := m[3]*c[0] + m[4]*c[1] + m[5]
		out = append(out,
			float32(x/float64(d.width)*2-1),
			float32(1-y/float64(d.height)*2),
			uvs[i][0], uvs[i][1])
	}
	return out
}

// ensureBlit creates the blit program and its sampler on first use.
func (d *Device) ensureBlit() error {
	if d.blit != nil {
		return nil
	}
	src := gpucore.ProgramSource{Label: "cg.blit", Vertex: blitShaderWGSL, Fragment: blitShaderWGSL}
	entries := []gputypes.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: gputypes.ShaderStageFragment,
			Texture: &gputypes.TextureBindingLayout{
				SampleType:    gputypes.TextureSampleTypeFloat,
				ViewDimension: gputypes.TextureViewDimension2D,
			},
		},
		{
			Binding:    1,
			Visibility: gputypes.ShaderStageFragment,
			Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
		},
	}
	p, err := d.newProgram(src, entries, blitLayout)
	if err != nil {
		return err
	}
	sampler, err := d.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "cg.blit.sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeNearest,
		LodMaxClamp:  32,
	})
	if err != nil {
		p.destroy(d.device)
		return fmt.Errorf("wgpu: create sampler: %w", err)
	}
	d.blit, d.sampler = p, sampler
	return nil
}
