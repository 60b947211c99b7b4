package cg

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a set of components in a color space. The last component is
// always alpha. Colors are immutable; equality and hashing are structural
// over the color space and components.
type Color struct {
	space      ColorSpace
	components []float64
}

// NewColor creates a color in space. components must hold the space's
// component count plus one alpha value.
func NewColor(space ColorSpace, components ...float64) (Color, error) {
	if want := space.NumberOfComponents() + 1; len(components) != want {
		return Color{}, fmt.Errorf("cg: color space %s takes %d components, got %d: %w",
			space, want, len(components), ErrInvalidArgument)
	}
	return Color{space: space, components: append([]float64(nil), components...)}, nil
}

// RGB creates an opaque DeviceRGB color.
func RGB(r, g, b float64) Color {
	return Color{space: ColorSpaceDeviceRGB, components: []float64{r, g, b, 1}}
}

// RGBA creates a DeviceRGB color with alpha.
func RGBA(r, g, b, a float64) Color {
	return Color{space: ColorSpaceDeviceRGB, components: []float64{r, g, b, a}}
}

// Gray creates a DeviceGray color with alpha.
func Gray(g, a float64) Color {
	return Color{space: ColorSpaceDeviceGray, components: []float64{g, a}}
}

// CMYK creates a DeviceCMYK color with alpha.
func CMYK(c, m, y, k, a float64) Color {
	return Color{space: ColorSpaceDeviceCMYK, components: []float64{c, m, y, k, a}}
}

// Named returns the SVG/CSS color with the given name, such as
// "cornflowerblue", in sRGB.
func Named(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, false
	}
	return Color{space: ColorSpaceSRGB, components: []float64{
		float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255,
	}}, true
}

// Hex creates an sRGB color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without a
// leading '#'. Malformed input yields opaque black.
func Hex(hex string) Color {
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b uint32
	a := uint32(255)
	switch len(hex) {
	case 3:
		r, g, b = parseHex(hex[0:1])*17, parseHex(hex[1:2])*17, parseHex(hex[2:3])*17
	case 4:
		r, g, b, a = parseHex(hex[0:1])*17, parseHex(hex[1:2])*17, parseHex(hex[2:3])*17, parseHex(hex[3:4])*17
	case 6:
		r, g, b = parseHex(hex[0:2]), parseHex(hex[2:4]), parseHex(hex[4:6])
	case 8:
		r, g, b, a = parseHex(hex[0:2]), parseHex(hex[2:4]), parseHex(hex[4:6]), parseHex(hex[6:8])
	default:
		return Color{space: ColorSpaceSRGB, components: []float64{0, 0, 0, 1}}
	}
	return Color{space: ColorSpaceSRGB, components: []float64{
		float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255,
	}}
}

func parseHex(s string) uint32 {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			v += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			v += uint32(c - 'A' + 10)
		default:
			return 0
		}
	}
	return v
}

// ColorSpace returns the color's color space.
func (c Color) ColorSpace() ColorSpace { return c.space }

// Components returns a copy of the components, alpha last.
func (c Color) Components() []float64 {
	return append([]float64(nil), c.components...)
}

// Alpha returns the alpha component, or 0 for the zero Color.
func (c Color) Alpha() float64 {
	if len(c.components) == 0 {
		return 0
	}
	return c.components[len(c.components)-1]
}

// WithAlpha returns a copy of c with alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	if len(c.components) == 0 {
		return c
	}
	comps := c.Components()
	comps[len(comps)-1] = a
	return Color{space: c.space, components: comps}
}

// Equal reports whether c and o have the same color space and components.
func (c Color) Equal(o Color) bool {
	if c.space != o.space || len(c.components) != len(o.components) {
		return false
	}
	for i, v := range c.components {
		if v != o.components[i] {
			return false
		}
	}
	return true
}

// Hash returns a hash consistent with Equal.
func (c Color) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(c.space.name))
	var buf [8]byte
	buf[0] = byte(c.space.model)
	_, _ = h.Write(buf[:1])
	for _, v := range c.components {
		bits := math.Float64bits(v)
		for i := range buf {
			buf[i] = byte(bits >> (8 * i))
		}
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// Straight returns non-premultiplied red, green, blue and alpha in [0, 1],
// converting gray and CMYK naively. Components are clamped.
func (c Color) Straight() (r, g, b, a float64) {
	comp := func(i int) float64 {
		if i < len(c.components) {
			return clamp01(c.components[i])
		}
		return 0
	}
	a = clamp01(c.Alpha())
	switch c.space.model {
	case ModelMonochrome:
		g := comp(0)
		return g, g, g, a
	case ModelCMYK:
		k := comp(3)
		return (1 - comp(0)) * (1 - k), (1 - comp(1)) * (1 - k), (1 - comp(2)) * (1 - k), a
	default:
		return comp(0), comp(1), comp(2), a
	}
}

// RGBA implements color.Color. Values are alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	sr, sg, sb, sa := c.Straight()
	return uint32(sr*sa*0xffff + 0.5), uint32(sg*sa*0xffff + 0.5),
		uint32(sb*sa*0xffff + 0.5), uint32(sa*0xffff + 0.5)
}

func (c Color) String() string {
	return fmt.Sprintf("%s%v", c.space.name, c.components)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
