// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package wgpu

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/cg"
	"github.com/gogpu/cg/backend"
	"github.com/gogpu/cg/gpucore"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	_ "github.com/gogpu/wgpu/hal/allbackends"
)

// targetFormat is the format of the offscreen render target.
const targetFormat = gputypes.TextureFormatRGBA8Unorm

// ErrNoAdapter is returned by Open when no hardware backend exposes an
// adapter.
var ErrNoAdapter = errors.New("wgpu: no GPU adapter found")

// ErrDeviceClosed is returned by operations on a closed Device.
var ErrDeviceClosed = errors.New("wgpu: device closed")

// preferredBackends lists hal backends in the order Open tries them. The
// noop backend is excluded because it renders nothing.
var preferredBackends = []gputypes.Backend{
	gputypes.BackendVulkan,
	gputypes.BackendMetal,
	gputypes.BackendDX12,
	gputypes.BackendGL,
}

func init() {
	backend.Register(backend.BackendWGPU, func(width, height int) (gpucore.Device, error) {
		return Open(width, height)
	})
}

// GPUInfo describes the adapter a Device renders on.
type GPUInfo struct {
	Name       string
	Vendor     string
	DeviceType gputypes.DeviceType
	Backend    gputypes.Backend
	Driver     string
}

// String returns a human-readable description of the GPU.
func (g GPUInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", g.Name, g.DeviceType, g.Backend)
}

// Device is a gpucore.Device that renders into an offscreen texture on a
// hal device.
//
// Device is not safe for concurrent use.
type Device struct {
	device hal.Device
	queue  hal.Queue

	width, height int

	target     hal.Texture
	targetView hal.TextureView

	programs gpucore.ProgramTable
	compiled map[gpucore.ProgramID]*program
	blend    gputypes.BlendState

	textures    map[gpucore.TextureID]*texture
	nextTexture gpucore.TextureID
	blit        *program
	sampler     hal.Sampler

	// pending holds per-draw resources until the next Flush.
	pending []*frame

	limits gputypes.Limits
	info   GPUInfo
	owned  *ownedDevice
	log    *slog.Logger

	closed bool
}

// ownedDevice holds the objects Open created so Close can release them.
type ownedDevice struct {
	instance hal.Instance
	adapter  hal.Adapter
}

// New wraps an existing hal device and queue. The device renders into a
// width x height target it creates and clears to transparent. The caller
// keeps ownership of device and queue.
func New(device hal.Device, queue hal.Queue, width, height int, opts ...Option) (*Device, error) {
	cfg := newConfig(opts)
	if device == nil || queue == nil {
		return nil, fmt.Errorf("wgpu: nil device or queue: %w", cg.ErrInvalidArgument)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("wgpu: invalid target size %dx%d: %w", width, height, cg.ErrInvalidArgument)
	}
	d := &Device{
		device:   device,
		queue:    queue,
		width:    width,
		height:   height,
		compiled: make(map[gpucore.ProgramID]*program),
		textures: make(map[gpucore.TextureID]*texture),
		blend:    gputypes.BlendStateReplace(),
	}
	d.log = cfg.log
	d.limits = cfg.limits
	if err := d.createTarget(); err != nil {
		d.releaseTarget()
		return nil, err
	}
	if err := d.clearTarget(); err != nil {
		d.releaseTarget()
		return nil, err
	}
	return d, nil
}

// Open creates a Device on the first hal backend that exposes an adapter.
// Discrete GPUs are preferred over integrated ones.
func Open(width, height int, opts ...Option) (*Device, error) {
	width, height = max(width, 1), max(height, 1)
	cfg := newConfig(opts)

	var errs []error
	for _, variant := range cfg.backends {
		b, ok := hal.GetBackend(variant)
		if !ok {
			continue
		}
		d, err := openBackend(b, width, height, opts)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", variant, err))
			continue
		}
		return d, nil
	}
	return nil, errors.Join(append([]error{ErrNoAdapter}, errs...)...)
}

func openBackend(b hal.Backend, width, height int, opts []Option) (*Device, error) {
	instance, err := b.CreateInstance(&hal.InstanceDescriptor{})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}
	exposed, ok := selectAdapter(instance.EnumerateAdapters(nil))
	if !ok {
		instance.Destroy()
		return nil, ErrNoAdapter
	}
	opened, err := exposed.Adapter.Open(0, newConfig(opts).limits)
	if err != nil {
		exposed.Adapter.Destroy()
		instance.Destroy()
		return nil, fmt.Errorf("open adapter %q: %w", exposed.Info.Name, err)
	}
	d, err := New(opened.Device, opened.Queue, width, height, opts...)
	if err != nil {
		opened.Device.Destroy()
		exposed.Adapter.Destroy()
		instance.Destroy()
		return nil, err
	}
	d.owned = &ownedDevice{instance: instance, adapter: exposed.Adapter}
	d.info = GPUInfo{
		Name:       exposed.Info.Name,
		Vendor:     exposed.Info.Vendor,
		DeviceType: exposed.Info.DeviceType,
		Backend:    exposed.Info.Backend,
		Driver:     exposed.Info.Driver,
	}
	d.logger().Info("wgpu: device opened", "gpu", d.info.String(), "driver", d.info.Driver,
		"width", width, "height", height)
	return d, nil
}

// selectAdapter picks a discrete GPU, then an integrated one, then whatever
// comes first.
func selectAdapter(adapters []hal.ExposedAdapter) (hal.ExposedAdapter, bool) {
	if len(adapters) == 0 {
		return hal.ExposedAdapter{}, false
	}
	for _, want := range []gputypes.DeviceType{gputypes.DeviceTypeDiscreteGPU, gputypes.DeviceTypeIntegratedGPU} {
		for _, a := range adapters {
			if a.Info.DeviceType == want {
				return a, true
			}
		}
	}
	return adapters[0], true
}

// GPUInfo returns the adapter description. It is zero for devices built
// with New.
func (d *Device) GPUInfo() GPUInfo {
	return d.info
}

// SetLogger sets the logger for device diagnostics. Nil makes the device
// follow the cg logger again.
func (d *Device) SetLogger(l *slog.Logger) {
	d.log = l
}

func (d *Device) logger() *slog.Logger {
	if d.log != nil {
		return d.log
	}
	return cg.Logger()
}

// Size returns the target dimensions in pixels.
func (d *Device) Size() (width, height int) {
	return d.width, d.height
}

// SetBlendState sets how fragment output combines with the target.
func (d *Device) SetBlendState(state gputypes.BlendState) {
	d.blend = state
}

// BlendState returns the blend state set last.
func (d *Device) BlendState() gputypes.BlendState {
	return d.blend
}

// Close waits for outstanding work and releases every GPU object the device
// created. Close is idempotent.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	err := d.Flush()
	for id, p := range d.compiled {
		p.destroy(d.device)
		d.programs.Remove(id)
		delete(d.compiled, id)
	}
	if d.blit != nil {
		d.blit.destroy(d.device)
		d.blit = nil
	}
	for id, t := range d.textures {
		t.destroy(d.device)
		delete(d.textures, id)
	}
	if d.sampler != nil {
		d.device.DestroySampler(d.sampler)
		d.sampler = nil
	}
	d.releaseTarget()
	d.closed = true

	if d.owned != nil {
		d.device.Destroy()
		d.owned.adapter.Destroy()
		d.owned.instance.Destroy()
		d.owned = nil
	}
	d.logger().Info("wgpu: device closed")
	return err
}

func (d *Device) createTarget() error {
	tex, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "cg.target",
		Size:          hal.Extent3D{Width: uint32(d.width), Height: uint32(d.height), DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        targetFormat,
		Usage: gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc |
			gputypes.TextureUsageTextureBinding,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create target: %w", err)
	}
	d.target = tex

	view, err := d.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "cg.target.view",
		Format:        targetFormat,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create target view: %w", err)
	}
	d.targetView = view
	return nil
}

func (d *Device) releaseTarget() {
	if d.targetView != nil {
		d.device.DestroyTextureView(d.targetView)
		d.targetView = nil
	}
	if d.target != nil {
		d.device.DestroyTexture(d.target)
		d.target = nil
	}
}

// clearTarget clears the target to transparent black in its own pass.
func (d *Device) clearTarget() error {
	return d.submit("cg.clear", &frame{}, func(enc hal.CommandEncoder) error {
		pass := enc.BeginRenderPass(&hal.RenderPassDescriptor{
			Label: "cg.clear",
			ColorAttachments: []hal.RenderPassColorAttachment{{
				View:       d.targetView,
				LoadOp:     gputypes.LoadOpClear,
				StoreOp:    gputypes.StoreOpStore,
				ClearValue: gputypes.Color{},
			}},
		})
		pass.End()
		return nil
	})
}

// submit records commands with fn and submits them. On success f joins the
// pending frames and is released by the next Flush; on failure it is
// released immediately.
func (d *Device) submit(label string, f *frame, fn func(enc hal.CommandEncoder) error) error {
	enc, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: label})
	if err != nil {
		f.release(d.device)
		return fmt.Errorf("wgpu: create encoder: %w", err)
	}
	f.encoder = enc
	if err := enc.BeginEncoding(label); err != nil {
		f.release(d.device)
		return fmt.Errorf("wgpu: begin encoding: %w", err)
	}
	if err := fn(enc); err != nil {
		enc.DiscardEncoding()
		f.release(d.device)
		return err
	}
	cmd, err := enc.EndEncoding()
	if err != nil {
		f.release(d.device)
		return fmt.Errorf("wgpu: end encoding: %w", err)
	}
	f.cmd = cmd
	if _, err := d.queue.Submit([]hal.CommandBuffer{cmd}); err != nil {
		f.release(d.device)
		return fmt.Errorf("wgpu: submit: %w", err)
	}
	d.pending = append(d.pending, f)
	return nil
}

// Flush waits for submitted work and releases per-draw resources.
func (d *Device) Flush() error {
	if len(d.pending) == 0 {
		return nil
	}
	err := d.device.WaitIdle()
	for _, f := range d.pending {
		f.release(d.device)
	}
	d.logger().Debug("wgpu: flushed", "frames", len(d.pending))
	d.pending = d.pending[:0]
	if err != nil {
		return fmt.Errorf("wgpu: wait idle: %w", err)
	}
	return nil
}

// frame holds the objects one submission uses.
type frame struct {
	encoder hal.CommandEncoder
	cmd     hal.CommandBuffer
	buffers []hal.Buffer
	groups  []hal.BindGroup
}

func (f *frame) release(dev hal.Device) {
	if f.cmd != nil {
		dev.FreeCommandBuffer(f.cmd)
		f.cmd = nil
	}
	if f.encoder != nil {
		f.encoder.Destroy()
		f.encoder = nil
	}
	for _, g := range f.groups {
		dev.DestroyBindGroup(g)
	}
	for _, b := range f.buffers {
		dev.DestroyBuffer(b)
	}
	f.groups, f.buffers = nil, nil
}
