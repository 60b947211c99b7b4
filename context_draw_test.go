package cg

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/vector"
)

func rgba8(pm *Pixmap, x, y int) [4]uint8 {
	i := (y*pm.Width() + x) * 4
	d := pm.Data()
	return [4]uint8{d[i], d[i+1], d[i+2], d[i+3]}
}

var (
	red         = [4]uint8{255, 0, 0, 255}
	transparent = [4]uint8{}
)

func TestFillRectPixels(t *testing.T) {
	ctx := NewContext(8, 8)
	ctx.SetRGBFillColor(1, 0, 0, 1)
	if err := ctx.FillRect(NewRect(2, 2, 4, 4)); err != nil {
		t.Fatal(err)
	}
	pm := ctx.Pixmap()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := transparent
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				want = red
			}
			if got := rgba8(pm, x, y); got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if !ctx.IsPathEmpty() {
		t.Error("FillRect left a current path")
	}
}

func TestFillMatchesVectorRasterizer(t *testing.T) {
	const w, h = 32, 32
	tri := []Point{{3.3, 2.1}, {29.7, 11.4}, {9.2, 28.8}}

	ctx := NewContext(w, h)
	ctx.SetRGBFillColor(0, 0, 0, 1)
	ctx.AddLines(tri)
	ctx.ClosePath()
	if err := ctx.DrawPath(DrawFill); err != nil {
		t.Fatal(err)
	}

	z := vector.NewRasterizer(w, h)
	z.MoveTo(float32(tri[0].X), float32(tri[0].Y))
	z.LineTo(float32(tri[1].X), float32(tri[1].Y))
	z.LineTo(float32(tri[2].X), float32(tri[2].Y))
	z.ClosePath()
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	// Partially covered pixels depend on the sample position; only fully
	// covered and untouched pixels must agree.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cov := mask.AlphaAt(x, y).A
			got := rgba8(ctx.Pixmap(), x, y)[3]
			switch {
			case cov == 255 && got != 255:
				t.Errorf("pixel (%d, %d) fully covered but alpha %d", x, y, got)
			case cov == 0 && got != 0:
				t.Errorf("pixel (%d, %d) outside but alpha %d", x, y, got)
			}
		}
	}
}

func TestFillRules(t *testing.T) {
	tests := []struct {
		mode    DrawingMode
		overlap bool
	}{
		{DrawFill, true},
		{DrawEOFill, false},
		{DrawFillStroke, true},
		{DrawEOFillStroke, false},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			ctx := NewContext(20, 20)
			ctx.SetRGBFillColor(1, 0, 0, 1)
			ctx.SetRGBStrokeColor(1, 0, 0, 1)
			ctx.AddRect(NewRect(0, 0, 10, 10))
			ctx.AddRect(NewRect(5, 5, 10, 10))
			if err := ctx.DrawPath(tt.mode); err != nil {
				t.Fatal(err)
			}
			pm := ctx.Pixmap()
			if got := rgba8(pm, 2, 2); got != red {
				t.Errorf("single coverage pixel = %v, want red", got)
			}
			got := rgba8(pm, 7, 7) == red
			if got != tt.overlap {
				t.Errorf("overlap painted = %v, want %v", got, tt.overlap)
			}
		})
	}
}

func TestDrawPathClearsPath(t *testing.T) {
	modes := []DrawingMode{DrawFill, DrawEOFill, DrawStroke, DrawFillStroke, DrawEOFillStroke, DrawingMode(99)}
	for _, mode := range modes {
		ctx := NewContext(10, 10)
		ctx.AddRect(NewRect(1, 1, 3, 3))
		err := ctx.DrawPath(mode)
		if mode == DrawingMode(99) {
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("invalid mode error = %v", err)
			}
		} else if err != nil {
			t.Errorf("%v: %v", mode, err)
		}
		if !ctx.IsPathEmpty() {
			t.Errorf("%v left a current path", mode)
		}
	}

	// Drawing without a path is a no-op.
	ctx := NewContext(10, 10)
	if err := ctx.DrawPath(DrawFillStroke); err != nil {
		t.Errorf("DrawPath without path: %v", err)
	}
}

func TestVertexLimitReject(t *testing.T) {
	ctx := NewContext(40, 40, WithVertexLimit(8))
	ctx.AddEllipse(NewRect(0, 0, 40, 40))
	err := ctx.DrawPath(DrawFill)
	if !errors.Is(err, ErrVertexLimit) {
		t.Fatalf("err = %v, want ErrVertexLimit", err)
	}
	if !ctx.IsPathEmpty() {
		t.Error("rejected path was not cleared")
	}
	for i := 0; i < len(ctx.Pixmap().Data()); i++ {
		if ctx.Pixmap().Data()[i] != 0 {
			t.Fatal("rejected path drew pixels")
		}
	}
}

func TestVertexLimitTruncate(t *testing.T) {
	ctx := NewContext(40, 40, WithVertexLimit(8), WithOverflowPolicy(OverflowTruncate))
	ctx.AddEllipse(NewRect(0, 0, 40, 40))
	if err := ctx.DrawPath(DrawFill); err != nil {
		t.Fatalf("truncated draw failed: %v", err)
	}
}

func TestDrawRestoresBlendState(t *testing.T) {
	dev := newMockDevice(16, 16)
	dev.SetBlendState(gputypes.BlendStatePremultiplied())
	ctx := NewContext(0, 0, WithDevice(dev))

	ctx.SetBlendMode(BlendModeCopy)
	if err := ctx.FillRect(NewRect(0, 0, 4, 4)); err != nil {
		t.Fatal(err)
	}
	if dev.draws != 1 {
		t.Fatalf("draws = %d, want 1", dev.draws)
	}
	want := []gputypes.BlendState{
		gputypes.BlendStatePremultiplied(),
		gputypes.BlendStateReplace(),
		gputypes.BlendStatePremultiplied(),
	}
	if len(dev.blendHistory) != len(want) {
		t.Fatalf("blend history = %v, want %v", dev.blendHistory, want)
	}
	for i := range want {
		if dev.blendHistory[i] != want[i] {
			t.Errorf("blend state %d = %v, want %v", i, dev.blendHistory[i], want[i])
		}
	}
}

func TestFillAlphaBlending(t *testing.T) {
	ctx := NewContext(4, 4)
	ctx.Pixmap().Clear(RGB(1, 1, 1))
	ctx.SetRGBFillColor(1, 0, 0, 1)
	ctx.SetAlpha(0.5)
	if err := ctx.FillRect(NewRect(0, 0, 4, 4)); err != nil {
		t.Fatal(err)
	}
	want := [4]uint8{255, 128, 128, 255}
	if got := rgba8(ctx.Pixmap(), 1, 1); got != want {
		t.Errorf("blended pixel = %v, want %v", got, want)
	}
}

func TestAntialiasPartialCoverage(t *testing.T) {
	ctx := NewContext(8, 8, WithAntialias(true))
	ctx.SetRGBFillColor(1, 1, 1, 1)
	if err := ctx.FillRect(NewRect(2.5, 0, 5.5, 8)); err != nil {
		t.Fatal(err)
	}
	pm := ctx.Pixmap()
	if a := rgba8(pm, 2, 4)[3]; a != 128 {
		t.Errorf("edge pixel alpha = %d, want 128", a)
	}
	if a := rgba8(pm, 4, 4)[3]; a != 255 {
		t.Errorf("interior pixel alpha = %d, want 255", a)
	}
	if a := rgba8(pm, 1, 4)[3]; a != 0 {
		t.Errorf("outside pixel alpha = %d, want 0", a)
	}
}

func TestStrokeRect(t *testing.T) {
	ctx := NewContext(20, 20)
	ctx.SetRGBStrokeColor(1, 0, 0, 1)
	if err := ctx.StrokeRectWithWidth(NewRect(5, 5, 10, 10), 2); err != nil {
		t.Fatal(err)
	}
	if ctx.LineWidth() != 1 {
		t.Errorf("StrokeRectWithWidth changed line width to %v", ctx.LineWidth())
	}
	pm := ctx.Pixmap()
	tests := []struct {
		x, y int
		want [4]uint8
	}{
		{5, 10, red},          // on the left edge
		{4, 10, red},          // within half the width outside
		{14, 10, red},         // right edge
		{10, 10, transparent}, // center
		{2, 10, transparent},  // beyond the stroke
	}
	for _, tt := range tests {
		if got := rgba8(pm, tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestStrokeScalesWithCTM(t *testing.T) {
	ctx := NewContext(20, 20)
	ctx.SetRGBStrokeColor(1, 0, 0, 1)
	ctx.ScaleBy(2, 2)
	ctx.SetLineWidth(2)
	ctx.MoveTo(Pt(0, 5))
	ctx.AddLineTo(Pt(10, 5))
	if err := ctx.StrokePath(); err != nil {
		t.Fatal(err)
	}
	// The line sits at device y=10 with a device width of 4.
	pm := ctx.Pixmap()
	for _, y := range []int{8, 9, 10, 11} {
		if got := rgba8(pm, 10, y); got != red {
			t.Errorf("pixel (10, %d) = %v, want red", y, got)
		}
	}
	if got := rgba8(pm, 10, 13); got != transparent {
		t.Errorf("pixel (10, 13) = %v, want transparent", got)
	}
}

func TestClearRect(t *testing.T) {
	ctx := NewContext(8, 8)
	ctx.Pixmap().Clear(RGB(1, 0, 0))
	ctx.MoveTo(Pt(0, 0))
	if err := ctx.ClearRect(NewRect(2, 2, 3, 3)); err != nil {
		t.Fatal(err)
	}
	pm := ctx.Pixmap()
	if got := rgba8(pm, 3, 3); got != transparent {
		t.Errorf("cleared pixel = %v, want transparent", got)
	}
	if got := rgba8(pm, 0, 0); got != red {
		t.Errorf("pixel outside the cleared rect = %v, want red", got)
	}
	if got := rgba8(pm, 5, 5); got != red {
		t.Errorf("pixel past the cleared rect = %v, want red", got)
	}
	if !ctx.IsPathEmpty() {
		t.Error("ClearRect left a current path")
	}
}

func TestDrawImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.SetNRGBA(x, y, color.NRGBA{0, 0, 255, 255})
		}
	}
	ctx := NewContext(8, 8)
	if err := ctx.DrawImage(NewRect(0, 0, 4, 4), NewImage(src)); err != nil {
		t.Fatal(err)
	}
	pm := ctx.Pixmap()
	if got, want := rgba8(pm, 1, 1), [4]uint8{0, 0, 255, 255}; got != want {
		t.Errorf("image pixel = %v, want %v", got, want)
	}
	if got := rgba8(pm, 6, 6); got != transparent {
		t.Errorf("pixel outside the image = %v, want transparent", got)
	}
	if n := len(ctx.Device().(*SoftwareDevice).textures); n != 0 {
		t.Errorf("%d textures left after DrawImage", n)
	}
}

func TestDrawImageUnsupported(t *testing.T) {
	ctx := NewContext(0, 0, WithDevice(newMockDevice(8, 8)))
	err := ctx.DrawImage(NewRect(0, 0, 4, 4), NewImage(image.NewNRGBA(image.Rect(0, 0, 1, 1))))
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}
}

func TestCloseDestroysPrograms(t *testing.T) {
	dev := newMockDevice(8, 8)
	ctx := NewContext(0, 0, WithDevice(dev))
	if err := ctx.FillRect(NewRect(0, 0, 2, 2)); err != nil {
		t.Fatal(err)
	}
	if err := ctx.StrokeRect(NewRect(0, 0, 2, 2)); err != nil {
		t.Fatal(err)
	}
	if err := ctx.FillRect(NewRect(0, 0, 2, 2)); err != nil {
		t.Fatal(err)
	}
	if dev.programs.Len() != 2 {
		t.Fatalf("compiled %d programs, want one per kind", dev.programs.Len())
	}

	if err := ctx.Close(); err != nil {
		t.Fatal(err)
	}
	if len(dev.destroyed) != 2 || dev.programs.Len() != 0 {
		t.Errorf("destroyed %v, %d programs remain", dev.destroyed, dev.programs.Len())
	}
	if err := ctx.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if err := ctx.FillRect(NewRect(0, 0, 2, 2)); !errors.Is(err, ErrContextClosed) {
		t.Errorf("draw after Close = %v, want ErrContextClosed", err)
	}
}
