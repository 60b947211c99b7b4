package cg

import (
	"testing"

	"github.com/gogpu/cg/gpucore"
	"github.com/gogpu/cg/internal/raster"
	"github.com/gogpu/gputypes"
)

// mockDevice is a test device for DI testing. It records calls and draws
// nothing.
type mockDevice struct {
	width, height int
	programs      gpucore.ProgramTable
	blend         gputypes.BlendState
	blendHistory  []gputypes.BlendState
	draws         int
	destroyed     []gpucore.ProgramID
}

func newMockDevice(w, h int) *mockDevice {
	return &mockDevice{width: w, height: h, blend: gputypes.BlendStateReplace()}
}

func (m *mockDevice) Compile(src gpucore.ProgramSource) (gpucore.ProgramID, error) {
	return m.programs.Add(src).ID, nil
}

func (m *mockDevice) Use(id gpucore.ProgramID) error {
	_, err := m.programs.Use(id)
	return err
}

func (m *mockDevice) SetUniform(name string, value []float32) error {
	_, err := m.programs.SetUniform(name, value)
	return err
}

func (m *mockDevice) SetBlendState(s gputypes.BlendState) {
	m.blend = s
	m.blendHistory = append(m.blendHistory, s)
}

func (m *mockDevice) BlendState() gputypes.BlendState { return m.blend }

func (m *mockDevice) DrawPrimitives(vertices []float32, indices []uint16, topology gputypes.PrimitiveTopology) error {
	if _, err := m.programs.Current(); err != nil {
		return err
	}
	m.draws++
	return gpucore.ValidateDraw(vertices, indices, topology)
}

func (m *mockDevice) DestroyProgram(id gpucore.ProgramID) {
	m.programs.Remove(id)
	m.destroyed = append(m.destroyed, id)
}

func (m *mockDevice) Size() (int, int) { return m.width, m.height }

// TestNewContextDefault tests that NewContext uses a software device by
// default.
func TestNewContextDefault(t *testing.T) {
	ctx := NewContext(100, 80)
	if ctx.Width() != 100 || ctx.Height() != 80 {
		t.Errorf("size = %dx%d, want 100x80", ctx.Width(), ctx.Height())
	}
	if ctx.Pixmap() == nil {
		t.Fatal("default context has no pixmap")
	}
	if _, ok := ctx.Device().(*SoftwareDevice); !ok {
		t.Errorf("Device() = %T, want *SoftwareDevice", ctx.Device())
	}
	if ctx.VertexLimit() != raster.DefaultMaxVertices {
		t.Errorf("VertexLimit() = %d, want %d", ctx.VertexLimit(), raster.DefaultMaxVertices)
	}
	if !ctx.CTM().IsIdentity() {
		t.Errorf("CTM() = %v, want identity", ctx.CTM())
	}
	if ctx.GState().ShouldAntialias {
		t.Error("antialiasing should default to off")
	}
}

// TestWithDevice tests device injection.
func TestWithDevice(t *testing.T) {
	dev := newMockDevice(64, 32)
	ctx := NewContext(1, 1, WithDevice(dev))
	if ctx.Width() != 64 || ctx.Height() != 32 {
		t.Errorf("size = %dx%d, want the device size 64x32", ctx.Width(), ctx.Height())
	}
	if ctx.Pixmap() != nil {
		t.Error("context with an external device should have no pixmap")
	}
}

// TestWithPixmap tests drawing into a caller-provided pixmap.
func TestWithPixmap(t *testing.T) {
	pm := NewPixmap(20, 10)
	ctx := NewContext(0, 0, WithPixmap(pm))
	if ctx.Pixmap() != pm {
		t.Error("Pixmap() is not the provided pixmap")
	}
	if ctx.Width() != 20 || ctx.Height() != 10 {
		t.Errorf("size = %dx%d, want 20x10", ctx.Width(), ctx.Height())
	}
}

func TestWithVertexLimitClamps(t *testing.T) {
	tests := []struct{ in, want int }{
		{1, 3},
		{16, 16},
		{100000, 4094},
	}
	for _, tt := range tests {
		if got := NewContext(4, 4, WithVertexLimit(tt.in)).VertexLimit(); got != tt.want {
			t.Errorf("WithVertexLimit(%d) gives %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestWithAntialiasAndTolerance(t *testing.T) {
	ctx := NewContext(4, 4, WithAntialias(true), WithTolerance(0.1))
	if !ctx.GState().ShouldAntialias {
		t.Error("WithAntialias(true) not applied")
	}
	if ctx.GState().Flatness != 0.1 {
		t.Errorf("Flatness = %v, want 0.1", ctx.GState().Flatness)
	}
	ctx = NewContext(4, 4, WithTolerance(-1))
	if ctx.GState().Flatness != 0.25 {
		t.Errorf("non-positive tolerance changed flatness to %v", ctx.GState().Flatness)
	}
}

func TestOverflowPolicyString(t *testing.T) {
	if OverflowReject.String() != "reject" || OverflowTruncate.String() != "truncate" {
		t.Errorf("policy names = %q, %q", OverflowReject, OverflowTruncate)
	}
}
