// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector4 is a point or direction in homogeneous coordinates.
type Vector4 struct {
	X, Y, Z, W float32
}

// Vec4 returns a new [Vector4].
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{x, y, z, w}
}

// Vector4FromVector3 returns v extended with the given w:
// 1 for a point and 0 for a direction.
func Vector4FromVector3(v Vector3, w float32) Vector4 {
	return Vector4{v.X, v.Y, v.Z, w}
}

func (v Vector4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// MulMatrix4 returns m * v.
func (v Vector4) MulMatrix4(m *Matrix4) Vector4 {
	return Vector4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}
