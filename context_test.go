package cg

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestContextConvertRoundTrip(t *testing.T) {
	ctx := NewContext(200, 100)
	ctx.TranslateBy(40, 10)
	ctx.ScaleBy(2, 3)
	ctx.RotateBy(math.Pi / 6)

	for _, p := range []Point{{0, 0}, {1, 1}, {-12.5, 7}, {1e4, -3e3}} {
		d := ctx.ConvertToDeviceSpace(p)
		test.T(t, ctx.ConvertToUserSpace(d), p)
	}
	s := Sz(3, 4)
	test.T(t, ctx.ConvertSizeToUserSpace(ctx.ConvertSizeToDeviceSpace(s)), s)
}

func TestContextScaleTranslateAsymmetry(t *testing.T) {
	// ScaleBy prepends: the scale acts in user space, before the
	// translation already in the CTM.
	a := NewContext(10, 10)
	a.TranslateBy(10, 0)
	a.ScaleBy(2, 2)
	test.T(t, a.ConvertToDeviceSpace(Pt(1, 0)), Pt(12, 0))

	// Concatenating the same scale appends it instead.
	b := NewContext(10, 10)
	b.TranslateBy(10, 0)
	b.ConcatenateCTM(Scale(2, 2, 1))
	test.T(t, b.ConvertToDeviceSpace(Pt(1, 0)), Pt(22, 0))

	// TranslateBy appends: the offset is in device units.
	c := NewContext(10, 10)
	c.ScaleBy(2, 2)
	c.TranslateBy(10, 0)
	test.T(t, c.ConvertToDeviceSpace(Pt(1, 0)), Pt(12, 0))
}

func TestContextRotatedRectToDevice(t *testing.T) {
	ctx := NewContext(10, 10)
	ctx.RotateBy(math.Pi / 2)
	got := ctx.ConvertRectToDeviceSpace(NewRect(0, 0, 4, 2))
	test.T(t, got, NewRect(-2, 0, 2, 4))
}

func TestContextNormalized(t *testing.T) {
	ctx := NewContext(200, 100)
	test.T(t, ctx.ConvertToNormalized(Pt(0, 0)), Pt(-1, 1))
	test.T(t, ctx.ConvertToNormalized(Pt(200, 100)), Pt(1, -1))
	test.T(t, ctx.ConvertToNormalized(Pt(100, 50)), Pt(0, 0))
	p := Pt(37, 81)
	test.T(t, ctx.ConvertFromNormalized(ctx.ConvertToNormalized(p)), p)
}

func TestContextSingularCTM(t *testing.T) {
	ctx := NewContext(10, 10)
	ctx.ScaleBy(0, 1)
	// The inverse of a singular CTM is the identity.
	test.T(t, ctx.ConvertToUserSpace(Pt(3, 4)), Pt(3, 4))
}

func TestContextPathUsesCTM(t *testing.T) {
	ctx := NewContext(100, 100)
	ctx.TranslateBy(10, 20)
	ctx.MoveTo(Pt(0, 0))
	ctx.AddLineTo(Pt(5, 5))

	els := ctx.Path().Elements()
	test.T(t, len(els), 2)
	test.T(t, els[0].Points[0], Pt(10, 20))
	test.T(t, els[1].Points[0], Pt(15, 25))

	cur, ok := ctx.PathCurrentPoint()
	test.That(t, ok)
	test.T(t, cur, Pt(5, 5))
	test.T(t, ctx.PathBoundingBox(), NewRect(0, 0, 5, 5))
}

func TestContextPathNoOps(t *testing.T) {
	ctx := NewContext(10, 10)
	ctx.AddLineTo(Pt(1, 1))
	ctx.AddCurveTo(Pt(1, 1), Pt(2, 2), Pt(3, 3))
	ctx.AddQuadCurveTo(Pt(1, 1), Pt(2, 2))
	ctx.AddArcToPoint(Pt(1, 0), Pt(1, 1), 1)
	ctx.ClosePath()
	test.That(t, ctx.IsPathEmpty(), "operations without a current point must be no-ops")
	test.That(t, ctx.Path() == nil)
	_, ok := ctx.PathCurrentPoint()
	test.That(t, !ok)
	test.That(t, ctx.PathBoundingBox().IsNull())
}

func TestContextPathContains(t *testing.T) {
	ctx := NewContext(100, 100)
	ctx.ScaleBy(2, 2)
	ctx.AddRect(NewRect(0, 0, 10, 10))
	ctx.AddRect(NewRect(5, 5, 10, 10))

	test.That(t, ctx.PathContains(Pt(7, 7), DrawFill), "overlap is inside under winding")
	test.That(t, !ctx.PathContains(Pt(7, 7), DrawEOFill), "overlap is outside under even-odd")
	test.That(t, ctx.PathContains(Pt(2, 2), DrawEOFillStroke))
	test.That(t, !ctx.PathContains(Pt(18, 2), DrawFill))
}

func TestContextSaveRestoreExcludesPath(t *testing.T) {
	ctx := NewContext(100, 100)
	ctx.MoveTo(Pt(1, 1))

	ctx.SaveGState()
	test.T(t, ctx.GStateDepth(), 1)
	ctx.SetRGBFillColor(1, 0, 0, 1)
	ctx.SetGrayStrokeColor(0.5, 1)
	ctx.SetLineWidth(7)
	ctx.TranslateBy(3, 4)
	ctx.SetBlendMode(BlendModeMultiply)
	ctx.SetRenderingIntent(RenderingIntentPerceptual)
	ctx.SelectFont("Courier", 20)
	ctx.SetTextPosition(Pt(9, 9))
	ctx.AddLineTo(Pt(2, 2))
	ctx.RestoreGState()

	test.T(t, ctx.GStateDepth(), 0)
	test.That(t, ctx.FillColor().Equal(ColorSpaceDeviceRGB.DefaultColor()), "fill color restored")
	test.That(t, ctx.StrokeColor().ColorSpace() == ColorSpaceDeviceRGB, "stroke color space restored")
	test.Float(t, ctx.LineWidth(), 1)
	test.That(t, ctx.CTM().IsIdentity())
	test.T(t, ctx.GState().BlendMode, BlendModeNormal)
	test.T(t, ctx.GState().RenderingIntent, RenderingIntentDefault)
	test.String(t, ctx.GState().FontName, "Helvetica")
	test.T(t, ctx.TextPosition(), PointZero)

	// The path kept the line added while the state was saved.
	test.T(t, len(ctx.Path().Elements()), 2)
}

func TestContextRestoreWithoutSave(t *testing.T) {
	ctx := NewContext(10, 10)
	ctx.SetLineWidth(3)
	ctx.RestoreGState()
	test.Float(t, ctx.LineWidth(), 3)
	test.T(t, ctx.GStateDepth(), 0)
}

func TestContextNestedSaves(t *testing.T) {
	ctx := NewContext(10, 10)
	for i := 1; i <= 3; i++ {
		ctx.SaveGState()
		ctx.SetLineWidth(float64(i))
	}
	for i := 3; i >= 1; i-- {
		test.Float(t, ctx.LineWidth(), float64(i))
		ctx.RestoreGState()
	}
	test.Float(t, ctx.LineWidth(), 1)
}

func TestContextColorSpaces(t *testing.T) {
	ctx := NewContext(10, 10)
	ctx.SetFillColorSpace(ColorSpaceDeviceCMYK)
	test.T(t, ctx.FillColor().ColorSpace(), ColorSpaceDeviceCMYK)
	test.Error(t, ctx.SetFillColorComponents(0, 1, 1, 0, 1))
	test.That(t, ctx.SetFillColorComponents(1, 0) != nil, "wrong component count must fail")

	ctx.SetStrokeColorSpace(ColorSpaceDeviceGray)
	test.Error(t, ctx.SetStrokeColorComponents(0.25, 1))
	test.T(t, ctx.StrokeColor().Components(), []float64{0.25, 1})
}

func TestContextStateSetters(t *testing.T) {
	ctx := NewContext(10, 10)
	ctx.SetLineWidth(-2)
	test.Float(t, ctx.LineWidth(), 1)
	ctx.SetAlpha(3)
	test.Float(t, ctx.GState().Alpha, 1)
	ctx.SetFlatness(0)
	test.Float(t, ctx.GState().Flatness, 0.25)
	ctx.SetLineCap(LineCapRound)
	ctx.SetLineJoin(LineJoinBevel)
	ctx.SetMiterLimit(4)
	ctx.SetCharacterSpacing(1.5)
	ctx.SetTextDrawingMode(TextStroke)
	ctx.SetFontSize(30)
	g := ctx.GState()
	test.T(t, g.LineCap, LineCapRound)
	test.T(t, g.LineJoin, LineJoinBevel)
	test.Float(t, g.MiterLimit, 4)
	test.Float(t, g.CharacterSpacing, 1.5)
	test.T(t, g.TextDrawingMode, TextStroke)
	test.Float(t, g.FontSize, 30)
}
