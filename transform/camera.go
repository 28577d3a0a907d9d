// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import "cogentcore.org/gpudemo/math32"

const (
	// FieldOfView is the vertical field of view of the projection, in radians (72°).
	FieldOfView = 2 * math32.Pi / 5

	// Near is the distance to the near clipping plane.
	Near = 0.1

	// Far is the distance to the far clipping plane.
	Far = 100.0

	// ZoomMax is the maximum zoom passed on to camera controllers.
	ZoomMax = 100

	// ZoomSpeed is the zoom speed passed on to camera controllers.
	ZoomSpeed = 2
)

// CameraOptions configures an interactive camera controller.
// It is not used in any of the matrix computations here.
type CameraOptions struct {
	Eye       math32.Vector3
	Center    math32.Vector3
	ZoomMax   float32
	ZoomSpeed float32
}

// ViewProjection holds the camera matrices for one aspect ratio.
type ViewProjection struct {

	// View transforms world coordinates into camera-centered coordinates.
	View math32.Matrix4

	// Projection transforms camera coordinates into clip coordinates.
	Projection math32.Matrix4

	// ViewProjection is Projection * View.
	ViewProjection math32.Matrix4

	// CameraOptions echoes the camera placement for a camera controller.
	CameraOptions CameraOptions
}

// Camera is the placement of the camera in the scene.
type Camera struct {

	// Aspect is the width / height ratio of the render surface.
	Aspect float32 `toml:"aspect" yaml:"aspect"`

	// Eye is the position of the camera.
	Eye math32.Vector3 `toml:"eye" yaml:"eye"`

	// Target is the point the camera looks at.
	Target math32.Vector3 `toml:"target" yaml:"target"`

	// Up is the direction of the camera's vertical axis.
	Up math32.Vector3 `toml:"up" yaml:"up"`
}

// DefaultCamera returns a camera at (2, 2, 4) looking at the origin
// with +Y up and an aspect ratio of 1.
func DefaultCamera() Camera {
	return Camera{
		Aspect: 1,
		Eye:    math32.Vec3(2, 2, 4),
		Up:     math32.Vec3(0, 1, 0),
	}
}

// ViewProjection returns the matrices for the camera.
func (c Camera) ViewProjection() ViewProjection {
	return BuildViewProjection(c.Aspect, c.Eye, c.Target, c.Up)
}

// WithAspect returns a copy of the camera with the given aspect ratio.
func (c Camera) WithAspect(aspect float32) Camera {
	c.Aspect = aspect
	return c
}

// BuildViewProjection returns the view, projection and combined matrices
// for a camera at eye looking toward target. The projection is a
// perspective with a [FieldOfView] vertical field of view between
// [Near] and [Far]. Degenerate placements are not reported: eye equal
// to target gives an identity view, and up parallel to the view
// direction gives a singular one.
func BuildViewProjection(aspect float32, eye, target, up math32.Vector3) ViewProjection {
	vp := ViewProjection{}
	vp.Projection.SetPerspective(math32.RadToDeg(FieldOfView), aspect, Near, Far)
	vp.View.SetLookAt(eye, target, up)
	vp.ViewProjection.MulMatrices(&vp.Projection, &vp.View)
	vp.CameraOptions = CameraOptions{
		Eye:       eye,
		Center:    target,
		ZoomMax:   ZoomMax,
		ZoomSpeed: ZoomSpeed,
	}
	return vp
}

// ModelViewProjection returns ViewProjection * model.
func (vp *ViewProjection) ModelViewProjection(model *math32.Matrix4) math32.Matrix4 {
	var m math32.Matrix4
	m.MulMatrices(&vp.ViewProjection, model)
	return m
}
