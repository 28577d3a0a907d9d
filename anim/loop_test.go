// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"context"
	"testing"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImmediateCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	frames := 0
	err := Immediate{}.Run(ctx, func() error {
		frames++
		if frames == 3 {
			cancel()
		}
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, frames)
}

func TestTicker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	frames := 0
	err := Ticker{FPS: 1000}.Run(ctx, func() error {
		frames++
		if frames == 4 {
			cancel()
		}
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 4, frames)

	errFrame := errors.New("frame")
	err = Ticker{}.Run(context.Background(), func() error { return errFrame })
	assert.Equal(t, errFrame, err)
}

// fakeClock is a manual clock for [FixedStep].
type fakeClock struct {
	now    time.Time
	sleeps int
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps++
	c.now = c.now.Add(d)
}

func (c *fakeClock) elapsed(start time.Time) time.Duration {
	return c.now.Sub(start)
}

func TestFixedStep(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	start := clk.now
	fs := FixedStep{Step: 10 * time.Millisecond, Now: clk.Now, Sleep: clk.Sleep}

	var times []time.Duration
	err := Limit(fs, 5).Run(context.Background(), func() error {
		times = append(times, clk.elapsed(start))
		return nil
	})
	require.NoError(t, err)
	ms := time.Millisecond
	assert.Equal(t, []time.Duration{10 * ms, 20 * ms, 30 * ms, 40 * ms, 50 * ms}, times)
	assert.Equal(t, 5, clk.sleeps)
}

func TestFixedStepCatchUp(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	start := clk.now
	fs := FixedStep{Step: 10 * time.Millisecond, MaxCatchUp: 3, Now: clk.Now, Sleep: clk.Sleep}

	var times []time.Duration
	err := Limit(fs, 5).Run(context.Background(), func() error {
		times = append(times, clk.elapsed(start))
		if len(times) == 1 {
			// one slow frame builds a backlog of 10 steps
			clk.now = clk.now.Add(100 * time.Millisecond)
		}
		return nil
	})
	require.NoError(t, err)
	ms := time.Millisecond
	// only 3 of the 10 missed frames are run, then the loop is back on schedule
	assert.Equal(t, []time.Duration{10 * ms, 110 * ms, 110 * ms, 110 * ms, 120 * ms}, times)
}

func TestFixedStepCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	frames := 0
	err := FixedStep{Step: time.Millisecond}.Run(ctx, func() error {
		frames++
		if frames == 2 {
			cancel()
		}
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, frames)
}

func TestLimit(t *testing.T) {
	frames := 0
	count := func() error {
		frames++
		return nil
	}
	require.NoError(t, Limit(Immediate{}, 0).Run(context.Background(), count))
	assert.Equal(t, 0, frames)

	require.NoError(t, Limit(Immediate{}, 12).Run(context.Background(), count))
	assert.Equal(t, 12, frames)

	errFrame := errors.New("frame")
	err := Limit(Immediate{}, 12).Run(context.Background(), func() error { return errFrame })
	assert.Equal(t, errFrame, err)

	// nested limits stop at the smaller count
	frames = 0
	require.NoError(t, Limit(Limit(Immediate{}, 3), 10).Run(context.Background(), count))
	assert.Equal(t, 3, frames)
}

func TestMeasure(t *testing.T) {
	frames := 0
	err := Limit(Measure(Immediate{}, time.Nanosecond), 20).Run(context.Background(), func() error {
		frames++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 20, frames)

	errFrame := errors.New("frame")
	err = Measure(Immediate{}, 0).Run(context.Background(), func() error { return errFrame })
	assert.Equal(t, errFrame, err)
}
