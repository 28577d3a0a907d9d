// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package desktop

import (
	"fmt"
	"image"
	"log/slog"
	"slices"

	"cogentcore.org/gpudemo/gpu"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Surface is a GLFW window surface.
type Surface struct {
	window  *glfw.Window
	surface *wgpu.Surface

	size   image.Point
	device *Device
	config *wgpu.SurfaceConfiguration
}

// ContainerSize returns the framebuffer size of the window.
func (s *Surface) ContainerSize() image.Point {
	w, h := s.window.GetFramebufferSize()
	return image.Pt(w, h)
}

func (s *Surface) Size() image.Point {
	return s.size
}

// SetSize records the size and reconfigures the surface for it,
// once configured. Empty sizes, as for a minimized window, are
// not configured.
func (s *Surface) SetSize(size image.Point) {
	s.size = size
	if s.config == nil || size.X <= 0 || size.Y <= 0 {
		return
	}
	s.config.Width = uint32(size.X)
	s.config.Height = uint32(size.Y)
	s.surface.Configure(s.device.adapter, s.device.device, s.config)
}

// Configure configures the surface. If the requested alpha mode is not
// supported, the first supported mode is used instead.
func (s *Surface) Configure(dev gpu.Device, cfg gpu.SurfaceConfig) error {
	d, ok := dev.(*Device)
	if !ok {
		return fmt.Errorf("gpu/desktop: foreign device %T", dev)
	}
	format, ok := formats[cfg.Format]
	if !ok {
		return fmt.Errorf("gpu/desktop: unsupported texture format %q", cfg.Format)
	}
	caps := s.surface.GetCapabilities(d.adapter)
	alpha, ok := alphaModes[cfg.AlphaMode]
	if !ok {
		return fmt.Errorf("gpu/desktop: unsupported alpha mode %q", cfg.AlphaMode)
	}
	if len(caps.AlphaModes) > 0 && !slices.Contains(caps.AlphaModes, alpha) {
		slog.Warn("gpu/desktop: alpha mode not supported by surface, using first supported mode", "requested", cfg.AlphaMode, "using", caps.AlphaModes[0])
		alpha = caps.AlphaModes[0]
	}
	size := s.size
	if size.X <= 0 || size.Y <= 0 {
		size = s.ContainerSize()
	}
	s.device = d
	s.config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       uint32(size.X),
		Height:      uint32(size.Y),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   alpha,
	}
	s.surface.Configure(d.adapter, d.device, s.config)
	return nil
}

// Present clears the current surface texture and presents it.
func (s *Surface) Present(dev gpu.Device, clear gpu.Color) error {
	d, ok := dev.(*Device)
	if !ok {
		return fmt.Errorf("gpu/desktop: foreign device %T", dev)
	}
	if s.config == nil {
		return fmt.Errorf("gpu/desktop: surface is not configured")
	}
	tex, err := s.surface.GetCurrentTexture()
	if err != nil {
		return err
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		return err
	}
	defer view.Release()

	cmd, err := d.device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer cmd.Release()
	rp := cmd.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:   view,
			LoadOp: wgpu.LoadOpClear,
			ClearValue: wgpu.Color{
				R: clear[0],
				G: clear[1],
				B: clear[2],
				A: clear[3],
			},
			StoreOp: wgpu.StoreOpStore,
		}},
	})
	rp.End()
	rp.Release() // must happen before Finish
	cmdBuffer, err := cmd.Finish(nil)
	if err != nil {
		return err
	}
	defer cmdBuffer.Release()
	d.queue.Submit(cmdBuffer)
	s.surface.Present()
	return nil
}

// Release releases the surface and destroys the window.
func (s *Surface) Release() {
	if s.surface != nil {
		s.surface.Release()
		s.surface = nil
	}
	if s.window != nil {
		s.window.Destroy()
		s.window = nil
	}
	s.config = nil
	s.device = nil
}
