package cg

// Size is a width and height pair.
type Size struct {
	Width, Height float64
}

// SizeZero is the zero size.
var SizeZero = Size{}

// Sz is a convenience function to create a Size.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// Applying transforms the size by the linear part of t. Translation is
// ignored.
func (s Size) Applying(t Transform) Size {
	return Size{
		Width:  s.Width*t.M11 + s.Height*t.M21,
		Height: s.Width*t.M12 + s.Height*t.M22,
	}
}

// Mul scales both dimensions.
func (s Size) Mul(f float64) Size {
	return Size{Width: s.Width * f, Height: s.Height * f}
}

// Div divides both dimensions by f.
// It returns ErrDivisionByZero when f is zero.
func (s Size) Div(f float64) (Size, error) {
	if f == 0 {
		return s, ErrDivisionByZero
	}
	return Size{Width: s.Width / f, Height: s.Height / f}, nil
}

// Equals reports whether s and o are equal within Epsilon.
func (s Size) Equals(o Size) bool {
	return floatEquals(s.Width, o.Width) && floatEquals(s.Height, o.Height)
}
