// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/core/cli"
	"cogentcore.org/gpudemo/anim"
	"cogentcore.org/gpudemo/gpu/gputest"
	"cogentcore.org/gpudemo/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) *Config {
	t.Helper()
	c := &Config{}
	require.NoError(t, cli.SetFromDefaults(c))
	return c
}

func TestConfigDefaults(t *testing.T) {
	c := defaultConfig(t)
	assert.True(t, c.Animate)
	assert.Equal(t, "default", c.Loop)
	assert.Equal(t, 60, c.FPS)
	assert.Equal(t, 800, c.Width)
	assert.Equal(t, 600, c.Height)
	gcfg := c.GPUConfig()
	assert.Equal(t, "canvas-webgpu", gcfg.SurfaceID)
	assert.Equal(t, "canvas-block-div", gcfg.ContainerID)
}

func TestFrameLoop(t *testing.T) {
	c := defaultConfig(t)
	for _, name := range []string{"", "default", "ticker", "fixed", "immediate"} {
		c.Loop = name
		lp, err := c.FrameLoop()
		require.NoError(t, err, name)
		assert.NotNil(t, lp, name)
	}
	c.Loop = "vsync"
	_, err := c.FrameLoop()
	assert.ErrorContains(t, err, `"vsync"`)
}

func TestFrameLoopLimit(t *testing.T) {
	c := defaultConfig(t)
	c.Loop = "immediate"
	c.Frames = 4
	lp, err := c.FrameLoop()
	require.NoError(t, err)
	n := 0
	require.NoError(t, lp.Run(context.Background(), func() error { n++; return nil }))
	assert.Equal(t, 4, n)
}

func TestLoadScene(t *testing.T) {
	c := defaultConfig(t)
	sc, err := c.LoadScene()
	require.NoError(t, err)
	assert.Equal(t, scene.Default(), sc)

	c.Scene = filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(c.Scene, []byte("animate: false\n"), 0666))
	sc, err = c.LoadScene()
	require.NoError(t, err)
	assert.False(t, sc.Animate)
}

func TestRun(t *testing.T) {
	c := defaultConfig(t)
	c.Loop = "immediate"
	c.Frames = 5
	host := gputest.NewHost()
	require.NoError(t, run(context.Background(), c, host, nil))

	sf := host.LastSurface
	assert.Len(t, sf.Presents, 5)
	assert.True(t, sf.Released)
	assert.True(t, host.LastDevice.Released)
	assert.True(t, host.LastAdapter.Released)
	for _, b := range host.LastDevice.Buffers {
		assert.True(t, b.Released, b.Label)
	}
}

func TestRunPoll(t *testing.T) {
	c := defaultConfig(t)
	c.Loop = "immediate"
	host := gputest.NewHost()
	polls := 0
	err := run(context.Background(), c, host, func() bool {
		polls++
		return polls <= 2
	})
	require.NoError(t, err)
	assert.Len(t, host.LastSurface.Presents, 2)
}

func TestRunUnsupported(t *testing.T) {
	c := defaultConfig(t)
	host := gputest.NewHost()
	host.NoGPU = true
	assert.Error(t, run(context.Background(), c, host, nil))
}

func TestRunWatch(t *testing.T) {
	c := defaultConfig(t)
	c.Loop = "ticker"
	c.FPS = 100
	c.Watch = true
	c.Scene = filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(c.Scene, []byte("clear = [0, 0, 0, 1]\n"), 0666))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	host := gputest.NewHost()
	require.NoError(t, run(ctx, c, host, nil))
	assert.NotEmpty(t, host.LastSurface.Presents)
}

func TestPolled(t *testing.T) {
	lp := polled(anim.Immediate{}, func() bool { return false })
	err := lp.Run(context.Background(), func() error {
		t.Fatal("frame called")
		return nil
	})
	assert.ErrorIs(t, err, anim.Stop)
}
