// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim drives per-frame animation: it runs a draw function
// once per frame of a [Loop], advancing a rotation before each frame.
package anim

import (
	"context"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gpudemo/math32"
)

// RotationStep is the amount, in radians, added to each rotation
// component per frame while animating.
const RotationStep = 0.01

// Stop can be returned by a draw or frame function to end the loop
// without an error.
var Stop = errors.New("anim: stop")

// Advance updates the rotation for one frame. If animate is true each
// component is incremented by [RotationStep]; otherwise the rotation is
// reset to zero in place.
func Advance(rotation *math32.Vector3, animate bool) {
	if !animate {
		rotation.SetZero()
		return
	}
	rotation.SetAddScalar(RotationStep)
}

// RunAnimationLoop calls draw once per frame of lp, calling [Advance]
// on rotation before each draw. A nil rotation is replaced by a new zero
// vector owned by the loop. It runs until ctx is done, draw returns an
// error, or draw returns [Stop], in which case the result is nil.
// Errors from draw are returned unchanged.
func RunAnimationLoop(ctx context.Context, lp Loop, draw func() error, rotation *math32.Vector3, animate bool) error {
	if rotation == nil {
		rotation = &math32.Vector3{}
	}
	err := lp.Run(ctx, func() error {
		Advance(rotation, animate)
		return draw()
	})
	if errors.Is(err, Stop) {
		return nil
	}
	return err
}
