// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package wgpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/cg"
	"github.com/gogpu/cg/gpucore"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// DrawPrimitives draws indexed triangles with the current program and blend
// state in one render pass that loads and stores the target.
func (d *Device) DrawPrimitives(vertices []float32, indices []uint16, topology gputypes.PrimitiveTopology) error {
	if d.closed {
		return ErrDeviceClosed
	}
	entry, err := d.programs.Current()
	if err != nil {
		return err
	}
	if err := gpucore.ValidateDraw(vertices, indices, topology); err != nil {
		return err
	}
	switch topology {
	case gputypes.PrimitiveTopologyTriangleList, gputypes.PrimitiveTopologyTriangleStrip:
	default:
		return fmt.Errorf("wgpu: topology %v: %w", topology, cg.ErrUnsupported)
	}
	if len(indices) == 0 {
		return nil
	}

	p := d.compiled[entry.ID]
	rp, err := d.pipeline(p, d.blend, topology)
	if err != nil {
		return err
	}

	f := &frame{}
	vb, err := d.uploadBuffer(f, p.label+".vertices", float32Bytes(vertices), gputypes.BufferUsageVertex)
	if err != nil {
		f.release(d.device)
		return err
	}
	ib, err := d.uploadBuffer(f, p.label+".indices", uint16Bytes(indices), gputypes.BufferUsageIndex)
	if err != nil {
		f.release(d.device)
		return err
	}
	var group hal.BindGroup
	if p.bindLayout != nil {
		data := packUniforms(entry)
		ub, err := d.uploadBuffer(f, p.label+".uniforms", data, gputypes.BufferUsageUniform)
		if err != nil {
			f.release(d.device)
			return err
		}
		group, err = d.device.CreateBindGroup(&hal.BindGroupDescriptor{
			Label:  p.label + ".bg",
			Layout: p.bindLayout,
			Entries: []gputypes.BindGroupEntry{{
				Binding:  0,
				Resource: gputypes.BufferBinding{Buffer: ub.NativeHandle(), Size: uint64(len(data))},
			}},
		})
		if err != nil {
			f.release(d.device)
			return fmt.Errorf("wgpu: bind group for %q: %w", p.label, err)
		}
		f.groups = append(f.groups, group)
	}

	d.logger().Debug("wgpu: draw", "program", p.label, "vertices", len(vertices)/2, "indices", len(indices))
	return d.submit(p.label, f, func(enc hal.CommandEncoder) error {
		pass := enc.BeginRenderPass(d.loadPass(p.label))
		pass.SetPipeline(rp)
		if group != nil {
			pass.SetBindGroup(0, group, nil)
		}
		pass.SetVertexBuffer(0, vb, 0)
		pass.SetIndexBuffer(ib, gputypes.IndexFormatUint16, 0)
		pass.DrawIndexed(uint32(len(indices)), 1, 0, 0, 0)
		pass.End()
		return nil
	})
}

// loadPass describes a render pass that keeps the target's contents.
func (d *Device) loadPass(label string) *hal.RenderPassDescriptor {
	return &hal.RenderPassDescriptor{
		Label: label,
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:    d.targetView,
			LoadOp:  gputypes.LoadOpLoad,
			StoreOp: gputypes.StoreOpStore,
		}},
	}
}

// uploadBuffer creates a buffer holding data and adds it to f.
func (d *Device) uploadBuffer(f *frame, label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create %s: %w", label, err)
	}
	f.buffers = append(f.buffers, buf)
	if err := d.queue.WriteBuffer(buf, 0, data); err != nil {
		return nil, fmt.Errorf("wgpu: write %s: %w", label, err)
	}
	return buf, nil
}

func float32Bytes(v []float32) []byte {
	out := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(f))
	}
	return out
}

// uint16Bytes encodes indices, padding the result to a multiple of four
// bytes as buffer writes require.
func uint16Bytes(v []uint16) []byte {
	out := make([]byte, (len(v)*2+3)&^3)
	for i, x := range v {
		binary.LittleEndian.PutUint16(out[i*2:], x)
	}
	return out
}
