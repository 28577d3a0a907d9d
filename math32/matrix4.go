// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "fmt"

// Matrix4 is 4x4 matrix organized internally as column matrix,
// so element (row r, column c) is at index c*4 + r. Vectors are
// treated as columns, and a product a*b applies b first.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() *Matrix4 {
	m := &Matrix4{}
	m.SetIdentity()
	return m
}

// Set sets all the elements of this matrix row by row starting at row1, column1,
// row1, column2, row1, column3 and so forth.
func (m *Matrix4) Set(n11, n12, n13, n14, n21, n22, n23, n24, n31, n32, n33, n34, n41, n42, n43, n44 float32) {
	m[0] = n11
	m[4] = n12
	m[8] = n13
	m[12] = n14
	m[1] = n21
	m[5] = n22
	m[9] = n23
	m[13] = n24
	m[2] = n31
	m[6] = n32
	m[10] = n33
	m[14] = n34
	m[3] = n41
	m[7] = n42
	m[11] = n43
	m[15] = n44
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	m.Set(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// SetZero sets this matrix as the zero matrix.
func (m *Matrix4) SetZero() {
	*m = Matrix4{}
}

// At returns the element at the given row and column.
func (m *Matrix4) At(row, col int) float32 {
	return m[col*4+row]
}

// Column returns the given column as a [Vector4].
func (m *Matrix4) Column(col int) Vector4 {
	i := col * 4
	return Vec4(m[i], m[i+1], m[i+2], m[i+3])
}

func (m Matrix4) String() string {
	return fmt.Sprintf("[%v %v %v %v]\n[%v %v %v %v]\n[%v %v %v %v]\n[%v %v %v %v]",
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15])
}

// SetTranslation sets this matrix to a translation matrix from the specified x, y and z values.
func (m *Matrix4) SetTranslation(x, y, z float32) {
	m.Set(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// SetScale sets this matrix to a scale transformation matrix using the specified x, y and z values.
func (m *Matrix4) SetScale(x, y, z float32) {
	m.Set(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// SetRotationX sets this matrix to a rotation matrix of angle theta (in radians) around the X axis.
func (m *Matrix4) SetRotationX(theta float32) {
	s, c := Sincos(theta)
	m.Set(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// SetRotationY sets this matrix to a rotation matrix of angle theta (in radians) around the Y axis.
func (m *Matrix4) SetRotationY(theta float32) {
	s, c := Sincos(theta)
	m.Set(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// SetRotationZ sets this matrix to a rotation matrix of angle theta (in radians) around the Z axis.
func (m *Matrix4) SetRotationZ(theta float32) {
	s, c := Sincos(theta)
	m.Set(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Mul returns this matrix times other matrix (this matrix is unchanged).
// The result applies other first and then this matrix.
func (m *Matrix4) Mul(other *Matrix4) *Matrix4 {
	nm := &Matrix4{}
	nm.MulMatrices(m, other)
	return nm
}

// SetPremul sets this matrix to other times this matrix, so other is applied
// after the transform already held by this matrix.
func (m *Matrix4) SetPremul(other *Matrix4) {
	m.MulMatrices(other, m)
}

// MulMatrices sets this matrix to matrix multiplication of specified matrices a * b.
// Either argument may alias this matrix.
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	var r Matrix4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			r[c*4+row] = a[row]*b[c*4] + a[4+row]*b[c*4+1] + a[8+row]*b[c*4+2] + a[12+row]*b[c*4+3]
		}
	}
	*m = r
}

// Determinant calculates and returns the determinant of this matrix.
func (m *Matrix4) Determinant() float32 {
	n11, n12, n13, n14 := m[0], m[4], m[8], m[12]
	n21, n22, n23, n24 := m[1], m[5], m[9], m[13]
	n31, n32, n33, n34 := m[2], m[6], m[10], m[14]
	n41, n42, n43, n44 := m[3], m[7], m[11], m[15]

	return n41*(n14*n23*n32-n13*n24*n32-n14*n22*n33+n12*n24*n33+n13*n22*n34-n12*n23*n34) +
		n42*(n11*n23*n34-n11*n24*n33+n14*n21*n33-n13*n21*n34+n13*n24*n31-n14*n23*n31) +
		n43*(n11*n24*n32-n11*n22*n34-n14*n21*n32+n12*n21*n34+n14*n22*n31-n12*n24*n31) +
		n44*(-n13*n22*n31-n11*n23*n32+n11*n22*n33+n13*n21*n32-n12*n21*n33+n12*n23*n31)
}

// SetPerspective sets this matrix to a perspective projection matrix
// with the specified vertical field of view in degrees,
// aspect ratio (width/height) and near and far planes.
// The clip volume is the GL convention, with z in [-1, 1].
// A far plane of +Inf gives an infinite projection.
func (m *Matrix4) SetPerspective(fov, aspect, near, far float32) {
	f := 1 / Tan(DegToRad(fov)*0.5)
	m.SetZero()
	m[0] = f / aspect
	m[5] = f
	m[11] = -1
	if IsInf(far, 1) {
		m[10] = -1
		m[14] = -2 * near
		return
	}
	nf := 1 / (near - far)
	m[10] = (far + near) * nf
	m[14] = 2 * far * near * nf
}

// lookAtEpsilon is the distance below which eye and target are treated as equal.
const lookAtEpsilon = 0.000001

// SetLookAt sets this matrix to a view matrix for a camera at eye
// looking toward target, with up defining the camera's vertical axis.
// The camera looks down its own -Z axis. If eye and target coincide the
// result is the identity; if up is parallel to the view direction the
// affected axes are zero and the matrix is singular.
func (m *Matrix4) SetLookAt(eye, target, up Vector3) {
	d := eye.Sub(target)
	if Abs(d.X) < lookAtEpsilon && Abs(d.Y) < lookAtEpsilon && Abs(d.Z) < lookAtEpsilon {
		m.SetIdentity()
		return
	}
	z := d.Normal()
	x := up.Cross(z)
	if x.Length() == 0 {
		x = Vector3{}
	} else {
		x = x.Normal()
	}
	y := z.Cross(x)
	if y.Length() == 0 {
		y = Vector3{}
	} else {
		y = y.Normal()
	}
	m.Set(
		x.X, x.Y, x.Z, -x.Dot(eye),
		y.X, y.Y, y.Z, -y.Dot(eye),
		z.X, z.Y, z.Z, -z.Dot(eye),
		0, 0, 0, 1,
	)
}

// LookAt returns a new view matrix; see [Matrix4.SetLookAt].
func LookAt(eye, target, up Vector3) *Matrix4 {
	m := &Matrix4{}
	m.SetLookAt(eye, target, up)
	return m
}
