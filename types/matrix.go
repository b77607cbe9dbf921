package types

import "golang.org/x/image/math/f32"

// Mat4 is a row-major 4x4 matrix: row i occupies indices [4*i, 4*i+4).
type Mat4 f32.Mat4

// Mat3 is a row-major 3x3 matrix, typically the upper-left block of a Mat4.
type Mat3 f32.Mat3

// Ident4 returns the 4x4 identity matrix.
func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate4 builds a translation matrix.
func Translate4(t Vec3) Mat4 {
	m := Ident4()
	m[3] = t[0]
	m[7] = t[1]
	m[11] = t[2]
	return m
}

// Scale4 builds a scaling matrix.
func Scale4(s Vec3) Mat4 {
	return Mat4{
		s[0], 0, 0, 0,
		0, s[1], 0, 0,
		0, 0, s[2], 0,
		0, 0, 0, 1,
	}
}

// Mul multiplies two matrices (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * other[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// MulVec4 transforms a Vec4 by the matrix.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]*v[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]*v[3],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]*v[3],
		m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]*v[3],
	}
}

// MulPoint3 transforms a point (implicit w=1) and drops back to a Vec3.
func (m Mat4) MulPoint3(v Vec3) Vec3 {
	return m.MulVec4(v.Vec4(1)).Vec3()
}
