package cg

// ColorSpaceModel identifies how a color space's components are interpreted.
type ColorSpaceModel int

const (
	ModelMonochrome ColorSpaceModel = iota
	ModelRGB
	ModelCMYK
)

// String returns the model name.
func (m ColorSpaceModel) String() string {
	switch m {
	case ModelMonochrome:
		return "Monochrome"
	case ModelRGB:
		return "RGB"
	case ModelCMYK:
		return "CMYK"
	default:
		return "Unknown"
	}
}

// ColorSpace tags color components with their interpretation. Values are
// immutable and comparable; two color spaces are equal when name and model
// match.
type ColorSpace struct {
	name  string
	model ColorSpaceModel
}

// Predeclared color spaces. They are constructed once and never mutated,
// so any goroutine may read them.
var (
	ColorSpaceDeviceGray  = NewColorSpace("DeviceGray", ModelMonochrome)
	ColorSpaceGenericGray = NewColorSpace("GenericGray", ModelMonochrome)
	ColorSpaceDeviceRGB   = NewColorSpace("DeviceRGB", ModelRGB)
	ColorSpaceSRGB        = NewColorSpace("sRGB", ModelRGB)
	ColorSpaceDeviceCMYK  = NewColorSpace("DeviceCMYK", ModelCMYK)
)

// NewColorSpace returns a color space value.
func NewColorSpace(name string, model ColorSpaceModel) ColorSpace {
	return ColorSpace{name: name, model: model}
}

// Name returns the color space name.
func (cs ColorSpace) Name() string { return cs.name }

// Model returns the color space model.
func (cs ColorSpace) Model() ColorSpaceModel { return cs.model }

// NumberOfComponents returns the number of color components, excluding
// alpha.
func (cs ColorSpace) NumberOfComponents() int {
	switch cs.model {
	case ModelMonochrome:
		return 1
	case ModelRGB:
		return 3
	case ModelCMYK:
		return 4
	default:
		return 0
	}
}

func (cs ColorSpace) String() string { return cs.name }

// DefaultColor returns opaque black in cs.
func (cs ColorSpace) DefaultColor() Color {
	comps := make([]float64, cs.NumberOfComponents()+1)
	if cs.model == ModelCMYK {
		comps[3] = 1
	}
	comps[len(comps)-1] = 1
	return Color{space: cs, components: comps}
}
