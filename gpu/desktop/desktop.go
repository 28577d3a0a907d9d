// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

// Package desktop provides the native [gpu.Host], using a GLFW window
// as the surface and wgpu-native for the device.
//
// GLFW must be used from the main thread: callers should lock it with
// runtime.LockOSThread in an init function, and call [Host.PollEvents]
// and [Host.Terminate] from it.
package desktop

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gpudemo/gpu"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Host is the desktop implementation of [gpu.Host]. It opens one window,
// which is both the surface and its container.
type Host struct {

	// Title is the window title.
	Title string

	// Size is the initial window size.
	Size image.Point

	instance *wgpu.Instance
	window   *glfw.Window
	onResize func()
	inited   bool
}

// NewHost returns a new host that opens a window with the given
// title and size.
func NewHost(title string, size image.Point) *Host {
	return &Host{Title: title, Size: size}
}

// init initializes GLFW and the wgpu instance.
// IMPORTANT: must be called on the main thread.
func (h *Host) init() error {
	if h.inited {
		return nil
	}
	if err := glfw.Init(); err != nil {
		return err
	}
	h.instance = wgpu.CreateInstance(nil)
	if h.instance == nil {
		glfw.Terminate()
		return errors.New("gpu/desktop: could not create wgpu instance")
	}
	h.inited = true
	return nil
}

func (h *Host) Supported() bool {
	return errors.Log(h.init()) == nil
}

// Surface opens the window. The ids are not used, as the window
// has no enclosing layout.
func (h *Host) Surface(surfaceID, containerID string) (gpu.Surface, error) {
	if err := h.init(); err != nil {
		return nil, err
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(h.Size.X, h.Size.Y, h.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating window: %w", gpu.ErrSurfaceNotFound, err)
	}
	h.window = window
	sf := h.instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		if h.onResize != nil {
			h.onResize()
		}
	})
	return &Surface{window: window, surface: sf}, nil
}

func (h *Host) RequestAdapter(ctx context.Context, sf gpu.Surface) (gpu.Adapter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s, ok := sf.(*Surface)
	if !ok {
		return nil, fmt.Errorf("gpu/desktop: foreign surface %T", sf)
	}
	ad, err := h.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: s.surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, err
	}
	return &Adapter{adapter: ad}, nil
}

// PreferredFormat returns the first format the surface supports
// with the adapter, which is the preferred one.
func (h *Host) PreferredFormat(ad gpu.Adapter, sf gpu.Surface) gpu.TextureFormat {
	a, aok := ad.(*Adapter)
	s, sok := sf.(*Surface)
	if !aok || !sok {
		return gpu.TextureFormatBGRA8Unorm
	}
	caps := s.surface.GetCapabilities(a.adapter)
	if len(caps.Formats) == 0 {
		return gpu.TextureFormatBGRA8Unorm
	}
	for f, wf := range formats {
		if wf == caps.Formats[0] {
			return f
		}
	}
	slog.Warn("gpu/desktop: unknown preferred format, using bgra8unorm", "format", caps.Formats[0])
	return gpu.TextureFormatBGRA8Unorm
}

func (h *Host) OnResize(fn func()) func() {
	h.onResize = fn
	return func() {
		h.onResize = nil
	}
}

// PollEvents processes pending window events, calling the resize handler
// as needed. It returns false once the window has been asked to close.
func (h *Host) PollEvents() bool {
	if h.window == nil || h.window.ShouldClose() {
		return false
	}
	glfw.PollEvents()
	return true
}

// Terminate shuts down GLFW; call as the last thing before quitting.
func (h *Host) Terminate() {
	if !h.inited {
		return
	}
	if h.instance != nil {
		h.instance.Release()
		h.instance = nil
	}
	glfw.Terminate()
	h.inited = false
}

// formats maps texture format names to wgpu formats.
var formats = map[gpu.TextureFormat]wgpu.TextureFormat{
	gpu.TextureFormatBGRA8Unorm:     wgpu.TextureFormatBGRA8Unorm,
	gpu.TextureFormatRGBA8Unorm:     wgpu.TextureFormatRGBA8Unorm,
	gpu.TextureFormatBGRA8UnormSrgb: wgpu.TextureFormatBGRA8UnormSrgb,
	gpu.TextureFormatRGBA8UnormSrgb: wgpu.TextureFormatRGBA8UnormSrgb,
	gpu.TextureFormatRGBA16Float:    wgpu.TextureFormatRGBA16Float,
}

// alphaModes maps alpha mode names to wgpu alpha modes.
var alphaModes = map[gpu.AlphaMode]wgpu.CompositeAlphaMode{
	gpu.AlphaOpaque:        wgpu.CompositeAlphaModeOpaque,
	gpu.AlphaPremultiplied: wgpu.CompositeAlphaModePremultiplied,
}
