// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo renders the demo scene: each frame it computes the
// model-view-projection matrix for the current rotation, writes it to
// a uniform buffer, and clears and presents the surface.
package demo

import (
	"context"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gpudemo/anim"
	"cogentcore.org/gpudemo/gpu"
	"cogentcore.org/gpudemo/math32"
	"cogentcore.org/gpudemo/scene"
	"cogentcore.org/gpudemo/transform"
)

// Renderer draws a [scene.Scene] to a [gpu.Context].
type Renderer struct {
	gc *gpu.Context

	// scene is the scene being drawn; only used on the render goroutine.
	scene *scene.Scene

	// rotation is the animation state, added to the
	// rotation of the scene model.
	rotation math32.Vector3

	index gpu.Buffer
	mvp   gpu.Buffer

	frames int

	// mu guards pending.
	mu sync.Mutex

	// pending is a scene set by SetScene, applied on the next Draw.
	pending *scene.Scene
}

// NewRenderer returns a renderer for the given scene, uploading its
// indices and allocating the matrix uniform buffer. A nil scene means
// [scene.Default].
func NewRenderer(gc *gpu.Context, sc *scene.Scene) (*Renderer, error) {
	if sc == nil {
		sc = scene.Default()
	}
	r := &Renderer{gc: gc}
	mvp, err := gpu.NewUniformBuffer(gc.Device, gpu.MatrixSize)
	if err != nil {
		return nil, err
	}
	r.mvp = mvp
	if err := r.apply(sc); err != nil {
		r.Release()
		return nil, err
	}
	return r, nil
}

// apply uploads the indices of sc and makes it the current scene,
// restarting the animation from the scene model rotation.
func (r *Renderer) apply(sc *scene.Scene) error {
	if err := sc.Validate(); err != nil {
		return err
	}
	ib, err := gpu.NewIndexBuffer(r.gc.Device, sc.Indices)
	if err != nil {
		return err
	}
	if r.index != nil {
		r.index.Release()
	}
	r.index = ib
	r.scene = sc
	r.rotation.SetZero()
	return nil
}

// SetScene sets the scene to draw from the next frame on.
// It is safe to call from any goroutine.
func (r *Renderer) SetScene(sc *scene.Scene) {
	r.mu.Lock()
	r.pending = sc
	r.mu.Unlock()
}

// Scene returns the scene being drawn.
func (r *Renderer) Scene() *scene.Scene {
	return r.scene
}

// Rotation returns the animation state, which is advanced
// by [anim.RunAnimationLoop] before each frame. It is added to
// the scene model rotation, which is held when not animating.
func (r *Renderer) Rotation() *math32.Vector3 {
	return &r.rotation
}

// IndexBuffer returns the index buffer of the current scene.
func (r *Renderer) IndexBuffer() gpu.Buffer {
	return r.index
}

// MatrixBuffer returns the uniform buffer holding the
// model-view-projection matrix.
func (r *Renderer) MatrixBuffer() gpu.Buffer {
	return r.mvp
}

// Frames returns the number of frames drawn.
func (r *Renderer) Frames() int {
	return r.frames
}

// ModelViewProjection returns the matrix for the current rotation,
// using the aspect ratio of the surface.
func (r *Renderer) ModelViewProjection() math32.Matrix4 {
	sc := r.scene
	vp := sc.Camera.WithAspect(r.gc.Aspect()).ViewProjection()
	model := transform.ComposeModelMatrix(sc.Model.Translation, sc.Model.Rotation.Add(r.rotation), sc.Model.Scale)
	return vp.ModelViewProjection(&model)
}

// Draw draws one frame. It returns [gpu.ErrReleased] once the
// context has been released.
func (r *Renderer) Draw() error {
	if r.gc.Released() {
		return errors.Log(gpu.ErrReleased)
	}
	r.mu.Lock()
	pending := r.pending
	r.pending = nil
	r.mu.Unlock()
	if pending != nil {
		// a bad scene keeps the current one
		errors.Log(r.apply(pending))
	}

	m := r.ModelViewProjection()
	if err := gpu.WriteMatrix(r.gc.Device, r.mvp, &m); err != nil {
		return err
	}
	if err := r.gc.Surface.Present(r.gc.Device, gpu.Color(r.scene.Clear)); err != nil {
		return errors.Log(err)
	}
	r.frames++
	return nil
}

// Run draws frames of lp until ctx is done, a frame fails, or a
// frame returns [anim.Stop]. The model rotates if both animate and
// the starting scene's Animate are true; otherwise it is held at the
// scene model rotation.
func (r *Renderer) Run(ctx context.Context, lp anim.Loop, animate bool) error {
	return anim.RunAnimationLoop(ctx, lp, r.Draw, r.Rotation(), animate && r.scene.Animate)
}

// Release releases the buffers of the renderer.
func (r *Renderer) Release() {
	if r.index != nil {
		r.index.Release()
		r.index = nil
	}
	if r.mvp != nil {
		r.mvp.Release()
		r.mvp = nil
	}
}
