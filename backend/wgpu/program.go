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

// pipelineKey identifies a render pipeline variant of a program.
type pipelineKey struct {
	blend    gputypes.BlendState
	topology gputypes.PrimitiveTopology
}

// program is a compiled gpucore program: shader modules, layouts, and the
// pipelines built for it so far.
type program struct {
	label    string
	vertex   hal.ShaderModule
	fragment hal.ShaderModule

	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	buffers    []gputypes.VertexBufferLayout
	pipelines  map[pipelineKey]hal.RenderPipeline
}

// positionLayout is the vertex layout of the path programs: one vec2 per
// vertex at location 0.
var positionLayout = []gputypes.VertexBufferLayout{{
	ArrayStride: 8,
	StepMode:    gputypes.VertexStepModeVertex,
	Attributes: []gputypes.VertexAttribute{
		{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
	},
}}

// Compile translates the program's WGSL with naga and creates its shader
// modules and layouts. Pipelines are created lazily on first draw with each
// blend state and topology.
func (d *Device) Compile(src gpucore.ProgramSource) (gpucore.ProgramID, error) {
	if d.closed {
		return gpucore.InvalidID, ErrDeviceClosed
	}
	if src.Vertex == "" || src.Fragment == "" {
		return gpucore.InvalidID, fmt.Errorf("wgpu: program %q has no WGSL source: %w", src.Label, cg.ErrInvalidArgument)
	}

	if size := uint64(src.UniformSize()); size > d.limits.MaxUniformBufferBindingSize {
		return gpucore.InvalidID, fmt.Errorf("wgpu: program %q needs %d uniform bytes, device allows %d: %w",
			src.Label, size, d.limits.MaxUniformBufferBindingSize, cg.ErrInvalidArgument)
	}

	var entries []gputypes.BindGroupLayoutEntry
	if src.UniformSize() > 0 {
		entries = []gputypes.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: gputypes.ShaderStagesVertexFragment,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		}}
	}
	p, err := d.newProgram(src, entries, positionLayout)
	if err != nil {
		return gpucore.InvalidID, err
	}
	entry := d.programs.Add(src)
	d.compiled[entry.ID] = p
	d.logger().Debug("wgpu: program compiled", "label", src.Label, "id", uint64(entry.ID), "uniformBytes", src.UniformSize())
	return entry.ID, nil
}

// newProgram creates shader modules and layouts. entries describe bind group
// 0; an empty list means the program binds nothing.
func (d *Device) newProgram(src gpucore.ProgramSource, entries []gputypes.BindGroupLayoutEntry, buffers []gputypes.VertexBufferLayout) (*program, error) {
	p := &program{
		label:     src.Label,
		buffers:   buffers,
		pipelines: make(map[pipelineKey]hal.RenderPipeline),
	}

	var err error
	p.vertex, err = d.shaderModule(src.Label+".vs", src.Vertex)
	if err != nil {
		return nil, err
	}
	if src.Fragment == src.Vertex {
		p.fragment = p.vertex
	} else {
		p.fragment, err = d.shaderModule(src.Label+".fs", src.Fragment)
		if err != nil {
			p.destroy(d.device)
			return nil, err
		}
	}

	var layouts []hal.BindGroupLayout
	if len(entries) > 0 {
		p.bindLayout, err = d.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
			Label:   src.Label + ".bgl",
			Entries: entries,
		})
		if err != nil {
			p.destroy(d.device)
			return nil, fmt.Errorf("wgpu: bind group layout for %q: %w", src.Label, err)
		}
		layouts = []hal.BindGroupLayout{p.bindLayout}
	}
	p.pipeLayout, err = d.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            src.Label + ".layout",
		BindGroupLayouts: layouts,
	})
	if err != nil {
		p.destroy(d.device)
		return nil, fmt.Errorf("wgpu: pipeline layout for %q: %w", src.Label, err)
	}
	return p, nil
}

// pipeline returns the render pipeline for the blend state and topology,
// creating it on first use.
func (d *Device) pipeline(p *program, blend gputypes.BlendState, topology gputypes.PrimitiveTopology) (hal.RenderPipeline, error) {
	key := pipelineKey{blend: blend, topology: topology}
	if rp, ok := p.pipelines[key]; ok {
		return rp, nil
	}

	primitive := gputypes.PrimitiveState{
		Topology:  topology,
		FrontFace: gputypes.FrontFaceCCW,
		CullMode:  gputypes.CullModeNone,
	}
	if topology == gputypes.PrimitiveTopologyTriangleStrip {
		f := gputypes.IndexFormatUint16
		primitive.StripIndexFormat = &f
	}
	rp, err := d.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  p.label,
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.vertex,
			EntryPoint: "vs_main",
			Buffers:    p.buffers,
		},
		Primitive:   primitive,
		Multisample: gputypes.MultisampleState{Count: 1, Mask: 0xFFFFFFFF},
		Fragment: &hal.FragmentState{
			Module:     p.fragment,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{{
				Format:    targetFormat,
				Blend:     &blend,
				WriteMask: gputypes.ColorWriteMaskAll,
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create pipeline for %q: %w", p.label, err)
	}
	p.pipelines[key] = rp
	d.logger().Debug("wgpu: pipeline created", "label", p.label, "variants", len(p.pipelines))
	return rp, nil
}

func (p *program) destroy(dev hal.Device) {
	for k, rp := range p.pipelines {
		dev.DestroyRenderPipeline(rp)
		delete(p.pipelines, k)
	}
	if p.pipeLayout != nil {
		dev.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.bindLayout != nil {
		dev.DestroyBindGroupLayout(p.bindLayout)
		p.bindLayout = nil
	}
	if p.fragment != nil && p.fragment != p.vertex {
		dev.DestroyShaderModule(p.fragment)
	}
	p.fragment = nil
	if p.vertex != nil {
		dev.DestroyShaderModule(p.vertex)
		p.vertex = nil
	}
}

// Use makes a program current.
func (d *Device) Use(id gpucore.ProgramID) error {
	_, err := d.programs.Use(id)
	return err
}

// SetUniform sets a uniform of the current program. The value is packed into
// the uniform buffer at draw time.
func (d *Device) SetUniform(name string, value []float32) error {
	_, err := d.programs.SetUniform(name, value)
	return err
}

// packUniforms lays the program's uniforms out contiguously in declaration
// order as little-endian float32s.
func packUniforms(p *gpucore.Program) []byte {
	out := make([]byte, p.Source.UniformSize())
	off := 0
	for _, decl := range p.Source.Uniforms {
		for _, v := range p.Uniforms[decl.Name] {
			binary.LittleEndian.PutUint32(out[off:], math.Float32bits(v))
			off += 4
		}
	}
	return out
}

// DestroyProgram waits for pending draws, then releases the program and its
// pipelines. Unknown IDs are ignored.
func (d *Device) DestroyProgram(id gpucore.ProgramID) {
	entry := d.programs.Remove(id)
	if entry == nil {
		return
	}
	p := d.compiled[id]
	delete(d.compiled, id)
	if err := d.Flush(); err != nil {
		d.logger().Warn("wgpu: flush before program destroy failed", "label", entry.Source.Label, "err", err)
	}
	p.destroy(d.device)
}
