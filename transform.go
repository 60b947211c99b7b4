package cg

import (
	"fmt"
	"math"
)

// Transform is a 4x4 matrix representing a 2D affine map in homogeneous
// coordinates. Points are row vectors, so translation lives in the fourth
// row (M41, M42, M43) and a.Concatenating(b) applies a first, then b.
//
// The zero value is not the identity; use Identity.
type Transform struct {
	M11, M12, M13, M14 float64
	M21, M22, M23, M24 float64
	M31, M32, M33, M34 float64
	M41, M42, M43, M44 float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{M11: 1, M22: 1, M33: 1, M44: 1}
}

// Scale returns a scaling transform.
func Scale(sx, sy, sz float64) Transform {
	return Transform{M11: sx, M22: sy, M33: sz, M44: 1}
}

// Translate returns a translation transform.
func Translate(tx, ty, tz float64) Transform {
	t := Identity()
	t.M41, t.M42, t.M43 = tx, ty, tz
	return t
}

// Rotate returns a rotation by angle radians around the z axis. Positive
// angles turn +X toward +Y.
func Rotate(angle float64) Transform {
	s, c := math.Sincos(angle)
	t := Identity()
	t.M11, t.M12 = c, s
	t.M21, t.M22 = -s, c
	return t
}

// Orthographic returns the projection mapping the box [left, right] x
// [bottom, top] x [near, far] onto [-1, 1] on every axis. It returns
// ErrDivisionByZero when any extent is zero.
func Orthographic(left, right, bottom, top, near, far float64) (Transform, error) {
	w, h, d := right-left, top-bottom, far-near
	if w == 0 || h == 0 || d == 0 {
		return Identity(), ErrDivisionByZero
	}
	return Transform{
		M11: 2 / w,
		M22: 2 / h,
		M33: -2 / d,
		M41: -(right + left) / w,
		M42: -(top + bottom) / h,
		M43: -(far + near) / d,
		M44: 1,
	}, nil
}

// Concatenating returns the matrix product t x o. Applying the result is
// the same as applying t and then o.
func (t Transform) Concatenating(o Transform) Transform {
	a := t.rows()
	b := o.rows()
	var r [4][4]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j] + a[i][3]*b[3][j]
		}
	}
	return fromRows(r)
}

// Determinant returns the determinant of the upper-left 3x3 block.
func (t Transform) Determinant() float64 {
	return t.M11*(t.M22*t.M33-t.M23*t.M32) -
		t.M12*(t.M21*t.M33-t.M23*t.M31) +
		t.M13*(t.M21*t.M32-t.M22*t.M31)
}

// IsInvertible reports whether the determinant is non-zero.
func (t Transform) IsInvertible() bool {
	return t.Determinant() != 0
}

// Inverted returns the inverse of an affine transform, computed from the
// adjugate of the upper-left 3x3 block and the translation row. A singular
// transform yields Identity, not an error; use IsInvertible to tell the
// cases apart.
func (t Transform) Inverted() Transform {
	det := t.Determinant()
	if det == 0 {
		return Identity()
	}
	inv := 1 / det
	r := Transform{
		M11: (t.M22*t.M33 - t.M23*t.M32) * inv,
		M12: (t.M13*t.M32 - t.M12*t.M33) * inv,
		M13: (t.M12*t.M23 - t.M13*t.M22) * inv,
		M21: (t.M23*t.M31 - t.M21*t.M33) * inv,
		M22: (t.M11*t.M33 - t.M13*t.M31) * inv,
		M23: (t.M13*t.M21 - t.M11*t.M23) * inv,
		M31: (t.M21*t.M32 - t.M22*t.M31) * inv,
		M32: (t.M12*t.M31 - t.M11*t.M32) * inv,
		M33: (t.M11*t.M22 - t.M12*t.M21) * inv,
		M44: 1,
	}
	// Translation row: -T * L^-1.
	r.M41 = -(t.M41*r.M11 + t.M42*r.M21 + t.M43*r.M31)
	r.M42 = -(t.M41*r.M12 + t.M42*r.M22 + t.M43*r.M32)
	r.M43 = -(t.M41*r.M13 + t.M42*r.M23 + t.M43*r.M33)
	return r
}

// IsIdentity reports whether t is exactly the identity.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// MeanScale returns the geometric mean of the 2D scale factors, the factor
// by which t scales areas' linear dimensions on average.
func (t Transform) MeanScale() float64 {
	return math.Sqrt(math.Abs(t.M11*t.M22 - t.M12*t.M21))
}

// Equals reports whether every element of t and o is equal within Epsilon.
func (t Transform) Equals(o Transform) bool {
	a, b := t.rows(), o.rows()
	for i := range a {
		for j := range a[i] {
			if !floatEquals(a[i][j], b[i][j]) {
				return false
			}
		}
	}
	return true
}

func (t Transform) String() string {
	return fmt.Sprintf("[%g %g %g %g; %g %g %g %g; %g %g %g %g; %g %g %g %g]",
		t.M11, t.M12, t.M13, t.M14,
		t.M21, t.M22, t.M23, t.M24,
		t.M31, t.M32, t.M33, t.M34,
		t.M41, t.M42, t.M43, t.M44)
}

func (t Transform) rows() [4][4]float64 {
	return [4][4]float64{
		{t.M11, t.M12, t.M13, t.M14},
		{t.M21, t.M22, t.M23, t.M24},
		{t.M31, t.M32, t.M33, t.M34},
		{t.M41, t.M42, t.M43, t.M44},
	}
}

func fromRows(r [4][4]float64) Transform {
	return Transform{
		M11: r[0][0], M12: r[0][1], M13: r[0][2], M14: r[0][3],
		M21: r[1][0], M22: r[1][1], M23: r[1][2], M24: r[1][3],
		M31: r[2][0], M32: r[2][1], M33: r[2][2], M34: r[2][3],
		M41: r[3][0], M42: r[3][1], M43: r[3][2], M44: r[3][3],
	}
}
