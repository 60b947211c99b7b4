package gpucore

// Resource IDs
//
// These opaque IDs represent device resources. Each device maintains a
// mapping between IDs and its own objects.

// ProgramID is an opaque handle to a compiled program.
type ProgramID uint64

// TextureID is an opaque handle to an uploaded texture.
type TextureID uint64

// InvalidID is the zero value, representing an invalid/null resource.
const InvalidID = 0

// UniformDecl declares one uniform of a program. Every uniform is an array
// of Vec4s four-component float slots, matching WGSL array<vec4<f32>, N>
// layout rules so the same bytes can be copied into a uniform buffer.
type UniformDecl struct {
	Name  string
	Vec4s int
}

// Floats returns the number of float32 values the uniform occupies.
func (d UniformDecl) Floats() int {
	return d.Vec4s * 4
}

// Uniforms maps uniform names to their current values.
type Uniforms map[string][]float32

// Vec4 returns slot i of the named uniform, or zeros when it is unset or
// too short.
func (u Uniforms) Vec4(name string, i int) [4]float32 {
	var out [4]float32
	v := u[name]
	if (i+1)*4 > len(v) {
		return out
	}
	copy(out[:], v[i*4:i*4+4])
	return out
}

// FragmentFunc evaluates the fragment stage at a pixel center in pixel
// coordinates (x to the right, y down). It returns straight-alpha RGBA in
// [0, 1]. keep is false where the fragment stage discards, leaving the
// target untouched whatever the blend state.
type FragmentFunc func(x, y float64) (rgba [4]float32, keep bool)

// KernelFunc binds uniforms to a fragment function. Devices call it once per
// draw, so per-draw decoding of uniforms happens outside the sample loop.
type KernelFunc func(u Uniforms) FragmentFunc

// ProgramSource describes a program to compile.
type ProgramSource struct {
	// Label is used in logs and backend object labels.
	Label string

	// Vertex and Fragment are WGSL sources with entry points vs_main and
	// fs_main. They may live in the same module.
	Vertex   string
	Fragment string

	// Uniforms lists the program's uniforms in binding order. Backends lay
	// them out contiguously in one uniform buffer.
	Uniforms []UniformDecl

	// Kernel is the CPU rendition of the fragment stage.
	Kernel KernelFunc
}

// UniformSize returns the total size of the program's uniforms in bytes.
func (s ProgramSource) UniformSize() int {
	n := 0
	for _, d := range s.Uniforms {
		n += d.Floats() * 4
	}
	return n
}

// UniformOffset returns the byte offset of the named uniform, or -1 when the
// program does not declare it.
func (s ProgramSource) UniformOffset(name string) int {
	off := 0
	for _, d := range s.Uniforms {
		if d.Name == name {
			return off
		}
		off += d.Floats() * 4
	}
	return -1
}

// Uniform returns the declaration of the named uniform.
func (s ProgramSource) Uniform(name string) (UniformDecl, bool) {
	for _, d := range s.Uniforms {
		if d.Name == name {
			return d, true
		}
	}
	return UniformDecl{}, false
}
