// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package wgpu provides a GPU rasterization device built on gogpu/wgpu.
//
// The device renders into an offscreen RGBA8 texture through the hal layer of
// the Pure Go WebGPU implementation, which drives Vulkan, Metal, DX12 or GLES
// depending on the platform. Programs are compiled from the WGSL sources the
// drawing core supplies; the hal backend translates WGSL with naga.
//
// # Usage
//
// Importing the package registers the "wgpu" backend:
//
//	import _ "github.com/gogpu/cg/backend/wgpu"
//
//	dev, name, err := backend.Open(800, 600)
//
// A Device can also wrap an existing hal device and queue, for example one
// owned by a windowing integration:
//
//	dev, err := wgpu.New(halDevice, halQueue, 800, 600)
//	ctx := cg.NewContext(800, 600, cg.WithDevice(dev))
//
// Draws are recorded and submitted one render pass at a time. Per-draw
// buffers live until Flush, which waits for the queue and releases them.
// Pixmap reads the target back to the CPU.
//
// # Build tags
//
// Build with -tags nogpu to exclude the package body on platforms without a
// GPU stack.
package wgpu
