// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gpudemo/anim"
	"cogentcore.org/gpudemo/demo"
	"cogentcore.org/gpudemo/gpu"
	"cogentcore.org/gpudemo/logx"
	"cogentcore.org/gpudemo/scene"
	"golang.org/x/sync/errgroup"
)

// setupLogging installs the terminal log handler at the configured level.
func setupLogging(c *Config) error {
	level, err := logx.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	logx.Init(level)
	return nil
}

// run initializes the gpu on host and draws the scene until ctx is done,
// the frame limit is reached, or poll returns false, all of which are
// a normal exit. poll is called before each frame; nil means always
// continue. If c.Watch is set, the scene file is reloaded in the
// background whenever it changes.
func run(ctx context.Context, c *Config, host gpu.Host, poll func() bool) error {
	lp, err := c.FrameLoop()
	if err != nil {
		return err
	}
	sc, err := c.LoadScene()
	if err != nil {
		return err
	}

	gc, err := gpu.Init(ctx, host, c.GPUConfig())
	if err != nil {
		return err
	}
	defer gc.Release()

	r, err := demo.NewRenderer(gc, sc)
	if err != nil {
		return err
	}
	defer r.Release()

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	if c.Watch {
		if c.Scene == "" {
			slog.Warn("gpudemo: no scene file to watch")
		} else {
			g.Go(func() error {
				return scene.Watch(ctx, c.Scene, r.SetScene)
			})
		}
	}

	if poll != nil {
		lp = polled(lp, poll)
	}
	err = r.Run(ctx, lp, c.Animate)
	cancel()
	if werr := g.Wait(); werr != nil {
		return werr
	}
	if err != nil && parent.Err() != nil && errors.Is(err, parent.Err()) {
		err = nil
	}
	slog.Info("gpudemo: done", "frames", r.Frames())
	return err
}

// polled returns a loop that stops when poll returns false before a frame.
func polled(lp anim.Loop, poll func() bool) anim.Loop {
	return anim.LoopFunc(func(ctx context.Context, frame func() error) error {
		return lp.Run(ctx, func() error {
			if !poll() {
				return anim.Stop
			}
			return frame()
		})
	})
}
