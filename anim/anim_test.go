// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"context"
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gpudemo/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance(t *testing.T) {
	r := math32.Vec3(1, 2, 3)
	Advance(&r, true)
	assert.InDelta(t, 1.01, r.X, 1e-6)
	assert.InDelta(t, 2.01, r.Y, 1e-6)
	assert.InDelta(t, 3.01, r.Z, 1e-6)

	Advance(&r, false)
	assert.Equal(t, math32.Vector3{}, r)
}

func TestRunAnimationLoopFrames(t *testing.T) {
	for _, n := range []int{1, 10, 100} {
		rot := math32.Vector3{}
		frames := 0
		err := RunAnimationLoop(context.Background(), Limit(Immediate{}, n), func() error {
			frames++
			// the rotation is advanced before each draw
			assert.InDelta(t, RotationStep*float32(frames), rot.X, 1e-4)
			return nil
		}, &rot, true)
		require.NoError(t, err)
		assert.Equal(t, n, frames)
		want := RotationStep * float32(n)
		assert.InDelta(t, want, rot.X, 1e-4)
		assert.InDelta(t, want, rot.Y, 1e-4)
		assert.InDelta(t, want, rot.Z, 1e-4)
	}
}

func TestRunAnimationLoopResetInPlace(t *testing.T) {
	rot := math32.Vec3(1, 2, 3)
	p := &rot
	err := RunAnimationLoop(context.Background(), Limit(Immediate{}, 3), func() error {
		assert.Equal(t, math32.Vector3{}, *p)
		return nil
	}, p, false)
	require.NoError(t, err)
	assert.Equal(t, math32.Vector3{}, rot)
}

func TestRunAnimationLoopNilRotation(t *testing.T) {
	frames := 0
	err := RunAnimationLoop(context.Background(), Limit(Immediate{}, 5), func() error {
		frames++
		return nil
	}, nil, true)
	require.NoError(t, err)
	assert.Equal(t, 5, frames)
}

func TestRunAnimationLoopStop(t *testing.T) {
	frames := 0
	err := RunAnimationLoop(context.Background(), Immediate{}, func() error {
		frames++
		if frames == 7 {
			return Stop
		}
		return nil
	}, nil, true)
	assert.NoError(t, err)
	assert.Equal(t, 7, frames)
}

func TestRunAnimationLoopError(t *testing.T) {
	errDraw := errors.New("draw failed")
	rot := math32.Vector3{}
	frames := 0
	err := RunAnimationLoop(context.Background(), Immediate{}, func() error {
		frames++
		if frames == 3 {
			return errDraw
		}
		return nil
	}, &rot, true)
	assert.Equal(t, errDraw, err)
	assert.Equal(t, 3, frames)
	assert.InDelta(t, 0.03, rot.Z, 1e-6)
}

func TestRunAnimationLoopCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	frames := 0
	err := RunAnimationLoop(ctx, Immediate{}, func() error {
		frames++
		return nil
	}, nil, true)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, frames)
}
