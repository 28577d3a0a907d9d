// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package main

import (
	"context"
	"image"
	"os"
	"os/signal"
	"runtime"

	"cogentcore.org/core/cli"
	"cogentcore.org/gpudemo/gpu/desktop"
)

func init() {
	// must lock main thread for glfw
	runtime.LockOSThread()
}

func main() {
	opts := cli.DefaultOptions("gpudemo", "Draws an animated WebGPU scene.")
	cli.Run(opts, &Config{}, &cli.Cmd[*Config]{
		Func: Run,
		Name: "run",
		Doc:  "opens a window and draws the scene until it is closed",
		Root: true,
	})
}

// Run opens a window and draws the scene in it.
func Run(c *Config) error {
	if err := setupLogging(c); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	host := desktop.NewHost("gpudemo", image.Pt(c.Width, c.Height))
	defer host.Terminate()
	return run(ctx, c, host, host.PollEvents)
}
