package cg

import "github.com/gogpu/gputypes"

// LineCap is the shape of the ends of stroked open subpaths.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	}
	return "unknown"
}

// LineJoin is the shape of the corners of stroked paths.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	}
	return "unknown"
}

// RenderingIntent selects how out-of-gamut colors are mapped.
type RenderingIntent int

const (
	RenderingIntentDefault RenderingIntent = iota
	RenderingIntentAbsoluteColorimetric
	RenderingIntentRelativeColorimetric
	RenderingIntentPerceptual
	RenderingIntentSaturation
)

// BlendMode selects how drawing composites with the surface.
type BlendMode int

const (
	BlendModeNormal BlendMode = iota
	BlendModeMultiply
	BlendModeScreen
	BlendModeOverlay
	BlendModeDarken
	BlendModeLighten
	BlendModeColorDodge
	BlendModeColorBurn
	BlendModeSoftLight
	BlendModeHardLight
	BlendModeDifference
	BlendModeExclusion
	BlendModeHue
	BlendModeSaturation
	BlendModeColor
	BlendModeLuminosity
	BlendModeClear
	BlendModeCopy
	BlendModePlusLighter
)

// blendState returns the device blend state for m. Modes that need the
// destination color in the fragment stage draw as BlendModeNormal; ok is
// false for them.
func (m BlendMode) blendState() (state gputypes.BlendState, ok bool) {
	switch m {
	case BlendModeNormal:
		return gputypes.BlendStateAlpha(), true
	case BlendModeCopy:
		return gputypes.BlendStateReplace(), true
	case BlendModeClear:
		zero := gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorZero,
			DstFactor: gputypes.BlendFactorZero,
			Operation: gputypes.BlendOperationAdd,
		}
		return gputypes.BlendState{Color: zero, Alpha: zero}, true
	case BlendModePlusLighter:
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorSrcAlpha,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
		}, true
	case BlendModeDarken:
		return minMaxBlend(gputypes.BlendOperationMin), true
	case BlendModeLighten:
		return minMaxBlend(gputypes.BlendOperationMax), true
	}
	return gputypes.BlendStateAlpha(), false
}

func minMaxBlend(op gputypes.BlendOperation) gputypes.BlendState {
	c := gputypes.BlendComponent{
		SrcFactor: gputypes.BlendFactorOne,
		DstFactor: gputypes.BlendFactorOne,
		Operation: op,
	}
	return gputypes.BlendState{Color: c, Alpha: gputypes.BlendStateAlpha().Alpha}
}

// TextDrawingMode selects how glyphs are painted.
type TextDrawingMode int

const (
	TextFill TextDrawingMode = iota
	TextStroke
	TextFillStroke
	TextInvisible
	TextFillClip
	TextStrokeClip
	TextFillStrokeClip
	TextClip
)

// GState is a snapshot of a context's graphics state. It is a plain value:
// SaveGState pushes a copy and RestoreGState pops one. The current path is
// not part of the graphics state.
type GState struct {
	CTM Transform

	// FillColor and StrokeColor carry their color spaces.
	FillColor   Color
	StrokeColor Color

	LineWidth  float64
	LineCap    LineCap
	LineJoin   LineJoin
	MiterLimit float64

	// Alpha scales the alpha of everything drawn.
	Alpha           float64
	RenderingIntent RenderingIntent
	BlendMode       BlendMode
	ShouldAntialias bool

	// Flatness is the maximum distance, in device pixels, between a curve
	// and the segments that replace it when drawing.
	Flatness float64

	FontName         string
	FontSize         float64
	CharacterSpacing float64
	TextDrawingMode  TextDrawingMode
	TextPosition     Point
}

// DefaultGState returns the state of a new context: identity CTM, opaque
// black fill and stroke in DeviceRGB, one-unit butt-capped mitered lines.
func DefaultGState() GState {
	black := ColorSpaceDeviceRGB.DefaultColor()
	return GState{
		CTM:         Identity(),
		FillColor:   black,
		StrokeColor: black,
		LineWidth:   1,
		LineCap:     LineCapButt,
		LineJoin:    LineJoinMiter,
		MiterLimit:  10,
		Alpha:       1,
		Flatness:    0.25,
		FontName:    "Helvetica",
		FontSize:    12,
	}
}
