// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform builds the model, view and projection matrices
// used to place geometry in front of the camera.
package transform

import "cogentcore.org/gpudemo/math32"

// Transform is a translation, per-axis rotation (in radians)
// and scale that together produce a model matrix.
type Transform struct {

	// Translation is applied last, moving the model into place.
	Translation math32.Vector3 `toml:"translation" yaml:"translation"`

	// Rotation is the rotation in radians about the X, Y and Z axes,
	// applied in that order.
	Rotation math32.Vector3 `toml:"rotation" yaml:"rotation"`

	// Scale is applied first.
	Scale math32.Vector3 `toml:"scale" yaml:"scale"`
}

// NewTransform returns the identity transform: no translation,
// no rotation and unit scale.
func NewTransform() Transform {
	return Transform{Scale: math32.Vec3(1, 1, 1)}
}

// Matrix returns the model matrix for the transform.
func (tr Transform) Matrix() math32.Matrix4 {
	return ComposeModelMatrix(tr.Translation, tr.Rotation, tr.Scale)
}

// ComposeModelMatrix returns the model matrix T * Rz * Ry * Rx * S:
// scale is applied first, then the rotations about X, Y and Z in that
// order, and finally the translation. Non-finite inputs are not checked
// and propagate into the result.
func ComposeModelMatrix(translation, rotation, scale math32.Vector3) math32.Matrix4 {
	var rx, ry, rz, sc, tr math32.Matrix4
	rx.SetRotationX(rotation.X)
	ry.SetRotationY(rotation.Y)
	rz.SetRotationZ(rotation.Z)
	sc.SetScale(scale.X, scale.Y, scale.Z)
	tr.SetTranslation(translation.X, translation.Y, translation.Z)

	var m math32.Matrix4
	m.MulMatrices(&rx, &sc)
	m.MulMatrices(&ry, &m)
	m.MulMatrices(&rz, &m)
	m.MulMatrices(&tr, &m)
	return m
}
