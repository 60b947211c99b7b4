// Package gpucore defines the device contract the cg drawing core renders
// through.
//
// The core never talks to a GPU API directly. It compiles small programs,
// sets uniforms, and submits vertex/index data through the [Device]
// interface, and treats everything behind it as an opaque service:
//
//	          +-------------------+
//	          |     cg.Context    |
//	          | (paths, CTM, fill)|
//	          +---------+---------+
//	                    |
//	          +---------v---------+
//	          |  gpucore.Device   |
//	          +---------+---------+
//	                    |
//	     +--------------+--------------+
//	     |                             |
//	+----v-------------+     +---------v--------+
//	| cg.SoftwareDevice|     |   backend/wgpu   |
//	|  (CPU kernels)   |     |   (hal.Device)   |
//	+------------------+     +------------------+
//
// # Programs
//
// A [ProgramSource] carries WGSL vertex and fragment stages together with a
// CPU [KernelFunc] that evaluates the same fragment stage. Devices with a
// shader compiler use the WGSL; devices without one run the kernel once per
// covered sample. Both see the same uniforms, declared up front in
// [ProgramSource.Uniforms] as arrays of vec4 slots.
//
// # Vertex Data
//
// Vertices are tightly packed (x, y) pairs in normalized device
// coordinates, where (-1, 1) is the top-left corner of the target and
// (1, -1) the bottom-right. Indices select vertices according to the
// primitive topology; only triangle lists are required.
//
// # Optional Capabilities
//
// Texture upload ([TextureUploader]), textured drawing ([ImageDrawer]) and
// explicit submission ([Flusher]) are discovered with type assertions.
// Callers fall back or return an error when a device lacks one.
package gpucore
