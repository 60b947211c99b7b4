package cg

import "github.com/gogpu/gputypes"

// blendPixel combines a fragment with the target pixel the way a GPU color
// attachment with the given blend state would. Both colors are straight
// alpha; the blend constant is transparent black.
func blendPixel(state gputypes.BlendState, src, dst [4]float32) [4]float32 {
	var out [4]float32
	for i := 0; i < 3; i++ {
		out[i] = blendComponent(state.Color, i, src, dst)
	}
	out[3] = blendComponent(state.Alpha, 3, src, dst)
	return out
}

func blendComponent(c gputypes.BlendComponent, ch int, src, dst [4]float32) float32 {
	sf := blendFactor(c.SrcFactor, gputypes.BlendFactorOne, ch, src, dst)
	df := blendFactor(c.DstFactor, gputypes.BlendFactorZero, ch, src, dst)
	s, d := src[ch], dst[ch]
	switch c.Operation {
	case gputypes.BlendOperationSubtract:
		return s*sf - d*df
	case gputypes.BlendOperationReverseSubtract:
		return d*df - s*sf
	case gputypes.BlendOperationMin:
		return min(s, d)
	case gputypes.BlendOperationMax:
		return max(s, d)
	}
	return s*sf + d*df
}

// blendFactor evaluates f for channel ch. An undefined factor falls back
// to def.
func blendFactor(f, def gputypes.BlendFactor, ch int, src, dst [4]float32) float32 {
	if f == gputypes.BlendFactorUndefined {
		f = def
	}
	switch f {
	case gputypes.BlendFactorZero:
		return 0
	case gputypes.BlendFactorOne:
		return 1
	case gputypes.BlendFactorSrc:
		return src[ch]
	case gputypes.BlendFactorOneMinusSrc:
		return 1 - src[ch]
	case gputypes.BlendFactorSrcAlpha:
		return src[3]
	case gputypes.BlendFactorOneMinusSrcAlpha:
		return 1 - src[3]
	case gputypes.BlendFactorDst:
		return dst[ch]
	case gputypes.BlendFactorOneMinusDst:
		return 1 - dst[ch]
	case gputypes.BlendFactorDstAlpha:
		return dst[3]
	case gputypes.BlendFactorOneMinusDstAlpha:
		return 1 - dst[3]
	case gputypes.BlendFactorSrcAlphaSaturated:
		if ch == 3 {
			return 1
		}
		return min(src[3], 1-dst[3])
	case gputypes.BlendFactorOneMinusConstant:
		return 1
	}
	// BlendFactorConstant with a zero constant.
	return 0
}
