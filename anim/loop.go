// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"context"
	"log/slog"
	"time"

	"cogentcore.org/core/base/errors"
)

// Loop schedules frames. Run calls frame once per frame until ctx is
// done (returning ctx.Err()) or frame returns a non-nil error, which
// Run returns as is.
type Loop interface {
	Run(ctx context.Context, frame func() error) error
}

// LoopFunc is a function that implements [Loop].
type LoopFunc func(ctx context.Context, frame func() error) error

func (f LoopFunc) Run(ctx context.Context, frame func() error) error {
	return f(ctx, frame)
}

// Immediate runs frames back to back with no pacing.
type Immediate struct{}

func (Immediate) Run(ctx context.Context, frame func() error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := frame(); err != nil {
			return err
		}
	}
}

// Ticker runs one frame per tick of a [time.Ticker]. It approximates
// a display-synchronized loop where no vsync signal is available.
type Ticker struct {

	// FPS is the number of frames per second; 0 means 60.
	FPS int
}

func (tk Ticker) Run(ctx context.Context, frame func() error) error {
	fps := tk.FPS
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := frame(); err != nil {
				return err
			}
		}
	}
}

// FixedStep runs one frame for every Step of elapsed time. When the
// frame function falls behind it runs up to MaxCatchUp frames back to
// back and drops the rest of the backlog.
type FixedStep struct {

	// Step is the time per frame; 0 means 1/60 s.
	Step time.Duration

	// MaxCatchUp is the maximum number of frames run back to back; 0 means 4.
	MaxCatchUp int

	// Now returns the current time; nil means [time.Now].
	Now func() time.Time

	// Sleep waits for the given duration; nil means a timer that
	// also returns early when the context is done.
	Sleep func(d time.Duration)
}

func (fs FixedStep) Run(ctx context.Context, frame func() error) error {
	step := fs.Step
	if step <= 0 {
		step = time.Second / 60
	}
	maxCatch := fs.MaxCatchUp
	if maxCatch <= 0 {
		maxCatch = 4
	}
	now := fs.Now
	if now == nil {
		now = time.Now
	}
	sleep := fs.Sleep
	if sleep == nil {
		sleep = func(d time.Duration) {
			t := time.NewTimer(d)
			defer t.Stop()
			select {
			case <-ctx.Done():
			case <-t.C:
			}
		}
	}

	last := now()
	var acc time.Duration
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		t := now()
		acc += t.Sub(last)
		last = t
		n := int(acc / step)
		if n == 0 {
			sleep(step - acc)
			continue
		}
		acc -= time.Duration(n) * step
		if n > maxCatch {
			n = maxCatch
		}
		for range n {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := frame(); err != nil {
				return err
			}
		}
	}
}

// Limit returns a loop that stops without error after n frames of lp.
// If n <= 0 no frames are run.
func Limit(lp Loop, n int) Loop {
	return LoopFunc(func(ctx context.Context, frame func() error) error {
		if n <= 0 {
			return nil
		}
		count := 0
		err := lp.Run(ctx, func() error {
			if err := frame(); err != nil {
				return err
			}
			count++
			if count >= n {
				return Stop
			}
			return nil
		})
		if errors.Is(err, Stop) {
			return nil
		}
		return err
	})
}

// Measure returns a loop that logs the frames per second of lp at
// debug level, averaged over each period of the given duration.
// A zero duration means 10 seconds.
func Measure(lp Loop, every time.Duration) Loop {
	if every <= 0 {
		every = 10 * time.Second
	}
	return LoopFunc(func(ctx context.Context, frame func() error) error {
		frameCount := 0
		stTime := time.Now()
		return lp.Run(ctx, func() error {
			if err := frame(); err != nil {
				return err
			}
			frameCount++
			eTime := time.Now()
			dur := eTime.Sub(stTime)
			if dur >= every {
				fps := float64(frameCount) / dur.Seconds()
				slog.Debug("anim: frame rate", "fps", fps, "frames", frameCount)
				frameCount = 0
				stTime = eTime
			}
			return nil
		})
	})
}
