// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gpudemo draws an animated WebGPU scene in a window,
// or in a canvas element when built for the web.
package main

import (
	"fmt"
	"time"

	"cogentcore.org/gpudemo/anim"
	"cogentcore.org/gpudemo/gpu"
	"cogentcore.org/gpudemo/scene"
)

// Config is the configuration information for the gpudemo cli.
type Config struct {

	// Scene is an optional TOML or YAML scene file to draw
	// instead of the default scene.
	Scene string `posarg:"0" required:"-"`

	// Watch reloads the scene file whenever it changes.
	Watch bool `flag:"w,watch"`

	// Animate rotates the model each frame.
	Animate bool `default:"true"`

	// Loop is the frame loop: default, ticker, fixed or immediate.
	// The default loop is the browser animation frame on the web,
	// and a ticker elsewhere.
	Loop string `default:"default"`

	// FPS is the frame rate of the ticker and fixed loops.
	FPS int `default:"60"`

	// Frames is the number of frames to draw before exiting;
	// 0 means no limit.
	Frames int

	// Width is the initial window width on desktop.
	Width int `default:"800"`

	// Height is the initial window height on desktop.
	Height int `default:"600"`

	// Surface is the id of the canvas element on the web.
	Surface string `default:"canvas-webgpu"`

	// Container is the id of the element the canvas is sized to on the web.
	Container string `default:"canvas-block-div"`

	// LogLevel is the minimum level of log messages shown:
	// debug, info, warn or error. Frame rates are logged at debug.
	LogLevel string
}

// GPUConfig returns the surface ids to initialize with.
func (c *Config) GPUConfig() gpu.Config {
	return gpu.Config{SurfaceID: c.Surface, ContainerID: c.Container}
}

// FrameLoop returns the frame loop selected by c, including the
// frame rate reporting and the frame limit.
func (c *Config) FrameLoop() (anim.Loop, error) {
	var lp anim.Loop
	switch c.Loop {
	case "", "default":
		lp = anim.Default()
	case "ticker":
		lp = anim.Ticker{FPS: c.FPS}
	case "fixed":
		fps := c.FPS
		if fps <= 0 {
			fps = 60
		}
		lp = anim.FixedStep{Step: time.Second / time.Duration(fps)}
	case "immediate":
		lp = anim.Immediate{}
	default:
		return nil, fmt.Errorf("unknown loop %q (must be default, ticker, fixed or immediate)", c.Loop)
	}
	lp = anim.Measure(lp, 0)
	if c.Frames > 0 {
		lp = anim.Limit(lp, c.Frames)
	}
	return lp, nil
}

// LoadScene returns the scene file, or the default scene if there is none.
func (c *Config) LoadScene() (*scene.Scene, error) {
	if c.Scene == "" {
		return scene.Default(), nil
	}
	return scene.Open(c.Scene)
}
