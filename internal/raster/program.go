// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	_ "embed"
	"strconv"
	"strings"

	"github.com/gogpu/cg/gpucore"
)

//go:embed shaders/fill.wgsl
var fillShaderWGSL string

//go:embed shaders/stroke.wgsl
var strokeShaderWGSL string

// maxEdgesToken is replaced by the edge capacity in the WGSL sources.
const maxEdgesToken = "MAX_EDGES"

// FillProgram returns the fill program sized for maxEdges edges.
func FillProgram(maxEdges int) gpucore.ProgramSource {
	src := specialize(fillShaderWGSL, maxEdges)
	return gpucore.ProgramSource{
		Label:    "cg.fill." + strconv.Itoa(maxEdges),
		Vertex:   src,
		Fragment: src,
		Uniforms: uniformDecls(maxEdges),
		Kernel:   FillKernel,
	}
}

// StrokeProgram returns the stroke program sized for maxEdges segments.
func StrokeProgram(maxEdges int) gpucore.ProgramSource {
	src := specialize(strokeShaderWGSL, maxEdges)
	return gpucore.ProgramSource{
		Label:    "cg.stroke." + strconv.Itoa(maxEdges),
		Vertex:   src,
		Fragment: src,
		Uniforms: uniformDecls(maxEdges),
		Kernel:   StrokeKernel,
	}
}

func specialize(src string, maxEdges int) string {
	return strings.ReplaceAll(src, maxEdgesToken, strconv.Itoa(max(maxEdges, 1)))
}

func uniformDecls(maxEdges int) []gpucore.UniformDecl {
	return []gpucore.UniformDecl{
		{Name: UniformColor, Vec4s: 1},
		{Name: UniformParams, Vec4s: 1},
		{Name: UniformEdges, Vec4s: max(maxEdges, 1)},
	}
}
