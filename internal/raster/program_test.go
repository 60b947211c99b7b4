// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"strings"
	"testing"

	"github.com/gogpu/naga"
)

func TestProgramSources(t *testing.T) {
	for _, src := range []struct {
		name string
		wgsl string
		prog func(int) string
	}{
		{"fill", fillShaderWGSL, func(n int) string { return FillProgram(n).Fragment }},
		{"stroke", strokeShaderWGSL, func(n int) string { return StrokeProgram(n).Fragment }},
	} {
		t.Run(src.name, func(t *testing.T) {
			if src.wgsl == "" {
				t.Fatal("shader source is empty")
			}
			got := src.prog(64)
			for _, want := range []string{"fn vs_main", "fn fs_main", "array<vec4<f32>, 64>"} {
				if !strings.Contains(got, want) {
					t.Errorf("program source missing %q", want)
				}
			}
			if strings.Contains(got, maxEdgesToken) {
				t.Error("edge capacity token was not replaced")
			}
		})
	}
}

func TestProgramUniformLayout(t *testing.T) {
	p := FillProgram(16)
	if p.Kernel == nil {
		t.Fatal("fill program has no CPU kernel")
	}
	if got := p.UniformOffset(UniformEdges); got != 32 {
		t.Errorf("edges offset = %d, want 32", got)
	}
	if got := p.UniformSize(); got != (2+16)*16 {
		t.Errorf("uniform size = %d, want %d", got, (2+16)*16)
	}
}

func TestProgramsCompile(t *testing.T) {
	for name, src := range map[string]string{
		"fill":   FillProgram(DefaultMaxVertices).Fragment,
		"stroke": StrokeProgram(DefaultMaxVertices).Fragment,
	} {
		t.Run(name, func(t *testing.T) {
			spirv, err := naga.Compile(src)
			if err != nil {
				if strings.Contains(err.Error(), "not yet implemented") || strings.Contains(err.Error(), "not supported") {
					t.Skipf("Skipping: naga feature not yet implemented: %v", err)
				}
				t.Fatalf("failed to compile %s shader: %v", name, err)
			}
			if len(spirv) < 4 {
				t.Fatal("SPIR-V too short")
			}
			magic := uint32(spirv[0]) | uint32(spirv[1])<<8 | uint32(spirv[2])<<16 | uint32(spirv[3])<<24
			if magic != 0x07230203 {
				t.Errorf("invalid SPIR-V magic: 0x%08X, want 0x07230203", magic)
			}
		})
	}
}
