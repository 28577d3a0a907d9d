// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu_test

import (
	"context"
	"image"
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gpudemo/gpu"
	"cogentcore.org/gpudemo/gpu/gputest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitUnsupported(t *testing.T) {
	h := gputest.NewHost()
	h.NoGPU = true
	gc, err := gpu.Init(context.Background(), h, gpu.Config{})
	assert.ErrorIs(t, err, gpu.ErrUnsupportedPlatform)
	assert.Nil(t, gc)
	// nothing past the support check has happened
	assert.Equal(t, []string{"supported"}, h.Events)
	assert.Nil(t, h.LastSurface)
	assert.Nil(t, h.LastAdapter)
	assert.Nil(t, h.LastDevice)
	assert.False(t, h.HasResizeHandler())
}

func TestInit(t *testing.T) {
	h := gputest.NewHost()
	h.Format = gpu.TextureFormatRGBA8Unorm
	gc, err := gpu.Init(context.Background(), h, gpu.Config{})
	require.NoError(t, err)
	defer gc.Release()

	assert.Equal(t, []string{
		"supported",
		"surface canvas-webgpu canvas-block-div",
		"surface.size 640x480",
		"resize.add",
		"adapter",
		"device",
		"format",
		"surface.configure",
	}, h.Events)

	assert.Equal(t, gpu.TextureFormatRGBA8Unorm, gc.Format)
	assert.Same(t, h.LastDevice, gc.Device)
	assert.Same(t, h.LastAdapter, gc.Adapter)
	assert.Same(t, h.LastSurface, gc.Surface)
	assert.Equal(t, gpu.SurfaceConfig{Format: gpu.TextureFormatRGBA8Unorm, AlphaMode: gpu.AlphaPremultiplied}, h.LastSurface.Config)
	assert.Equal(t, image.Pt(640, 480), gc.Size())
	assert.InDelta(t, 640.0/480.0, gc.Aspect(), 1e-6)
}

func TestInitCustomIDs(t *testing.T) {
	h := gputest.NewHost()
	h.Surfaces = []string{"view", "frame"}
	gc, err := gpu.Init(context.Background(), h, gpu.Config{SurfaceID: "view", ContainerID: "frame"})
	require.NoError(t, err)
	defer gc.Release()
	assert.Equal(t, "view", h.LastSurface.ID)
	assert.Equal(t, gpu.TextureFormatBGRA8Unorm, gc.Format)
}

func TestInitSurfaceNotFound(t *testing.T) {
	h := gputest.NewHost()
	h.Surfaces = []string{gpu.DefaultSurfaceID}
	gc, err := gpu.Init(context.Background(), h, gpu.Config{})
	assert.ErrorIs(t, err, gpu.ErrSurfaceNotFound)
	assert.Nil(t, gc)
	assert.Nil(t, h.LastAdapter)
	assert.False(t, h.HasResizeHandler())
}

func TestInitResize(t *testing.T) {
	h := gputest.NewHost()
	gc, err := gpu.Init(context.Background(), h, gpu.Config{})
	require.NoError(t, err)

	h.Resize(image.Pt(800, 200))
	assert.Equal(t, image.Pt(800, 200), gc.Size())
	assert.InDelta(t, 4, gc.Aspect(), 1e-6)
	h.Resize(image.Pt(300, 300))
	assert.Equal(t, []image.Point{{640, 480}, {800, 200}, {300, 300}}, h.LastSurface.Sizes)

	h.Resize(image.Point{})
	assert.Equal(t, float32(1), gc.Aspect())

	gc.Release()
	assert.False(t, h.HasResizeHandler())
	h.Resize(image.Pt(10, 10))
	assert.Len(t, h.LastSurface.Sizes, 4)
}

func TestInitFailures(t *testing.T) {
	errHost := errors.New("host failure")
	tests := []struct {
		name     string
		setup    func(h *gputest.Host)
		released []string
	}{
		{"adapter", func(h *gputest.Host) { h.FailAdapter = errHost },
			[]string{"resize.remove", "surface.release"}},
		{"device", func(h *gputest.Host) { h.FailDevice = errHost },
			[]string{"resize.remove", "surface.release", "adapter.release"}},
		{"configure", func(h *gputest.Host) { h.FailConfigure = errHost },
			[]string{"resize.remove", "surface.release", "device.release", "adapter.release"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := gputest.NewHost()
			tt.setup(h)
			gc, err := gpu.Init(context.Background(), h, gpu.Config{})
			assert.ErrorIs(t, err, errHost)
			assert.Nil(t, gc)
			assert.False(t, h.HasResizeHandler())
			n := len(h.Events)
			require.GreaterOrEqual(t, n, len(tt.released))
			assert.Equal(t, tt.released, h.Events[n-len(tt.released):])
		})
	}
}

func TestInitCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h := gputest.NewHost()
	gc, err := gpu.Init(ctx, h, gpu.Config{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, gc)
	assert.True(t, h.HasEvent("surface.release"))
}

func TestContextRelease(t *testing.T) {
	h := gputest.NewHost()
	gc, err := gpu.Init(context.Background(), h, gpu.Config{})
	require.NoError(t, err)
	sf, dev, ad := h.LastSurface, h.LastDevice, h.LastAdapter
	assert.False(t, gc.Released())

	gc.Release()
	assert.True(t, gc.Released())
	n := len(h.Events)
	assert.Equal(t, []string{"resize.remove", "surface.release", "device.release", "adapter.release"}, h.Events[n-4:])
	assert.True(t, sf.Released)
	assert.True(t, dev.Released)
	assert.True(t, ad.Released)

	gc.Release()
	assert.Len(t, h.Events, n)

	var nilContext *gpu.Context
	assert.NotPanics(t, nilContext.Release)
	assert.True(t, nilContext.Released())
}
