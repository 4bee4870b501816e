// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package linear

// Mat3 is a 3×3 float32 matrix in row-major order. Rotation matrices store
// their basis axes as rows, so Row(0..2) yields the local X, Y, Z axes.
type Mat3 [9]float32

// Identity3 returns the 3×3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3FromRows builds a matrix with the given row vectors.
func Mat3FromRows(x, y, z Vec3) Mat3 {
	return Mat3{
		x.X, x.Y, x.Z,
		y.X, y.Y, y.Z,
		z.X, z.Y, z.Z,
	}
}

// Row returns row i as a vector.
func (m Mat3) Row(i int) Vec3 {
	return Vec3{m[3*i], m[3*i+1], m[3*i+2]}
}

// Col returns column i as a vector.
func (m Mat3) Col(i int) Vec3 {
	return Vec3{m[i], m[i+3], m[i+6]}
}

// MulVec3 returns m * v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Mul returns the matrix product m * n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float32
			for k := 0; k < 3; k++ {
				s += m[3*i+k] * n[3*k+j]
			}
			r[3*i+j] = s
		}
	}
	return r
}

// Transpose returns the transpose of m. For orthonormal rotation matrices
// this is the inverse.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Transform is a rigid local-to-world transform: a rotation followed by a
// translation. Apply maps a local point p to Rot*p + Origin.
type Transform struct {
	Rot    Mat3
	Origin Vec3
}

// IdentityTransform returns the identity transform.
func IdentityTransform() Transform {
	return Transform{Rot: Identity3()}
}

// TranslationTransform returns a pure translation by origin.
func TranslationTransform(origin Vec3) Transform {
	return Transform{Rot: Identity3(), Origin: origin}
}

// Apply maps the local point p into the parent space.
func (t Transform) Apply(p Vec3) Vec3 {
	return t.Rot.MulVec3(p).Add(t.Origin)
}

// ApplyVec maps the local direction v into the parent space, ignoring the
// translation component.
func (t Transform) ApplyVec(v Vec3) Vec3 {
	return t.Rot.MulVec3(v)
}

// Inverse returns the inverse transform. The rotation must be orthonormal.
func (t Transform) Inverse() Transform {
	rt := t.Rot.Transpose()
	return Transform{
		Rot:    rt,
		Origin: rt.MulVec3(t.Origin).Negated(),
	}
}

// IsIdentity reports whether t is exactly the identity transform.
func (t Transform) IsIdentity() bool {
	return t == IdentityTransform()
}
