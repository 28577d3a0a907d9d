// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/core/base/errors"
)

// Config specifies the surface that [Init] presents to.
type Config struct {

	// SurfaceID is the id of the surface element; empty means [DefaultSurfaceID].
	SurfaceID string

	// ContainerID is the id of the layout element the surface is sized to;
	// empty means [DefaultContainerID].
	ContainerID string
}

func (cfg *Config) defaults() {
	if cfg.SurfaceID == "" {
		cfg.SurfaceID = DefaultSurfaceID
	}
	if cfg.ContainerID == "" {
		cfg.ContainerID = DefaultContainerID
	}
}

// Context is an initialized device and surface, ready for rendering.
// It owns all of its handles, which are released by [Context.Release].
type Context struct {

	// Device is the logical device.
	Device Device

	// Surface is the presentation surface, configured for Device.
	Surface Surface

	// Format is the texture format the surface is configured with.
	Format TextureFormat

	// Adapter is the adapter Device was requested from.
	Adapter Adapter

	// removeResize removes the resize handler.
	removeResize func()

	released bool
}

// Init acquires a device and configures the surface given by cfg
// for presentation. It returns [ErrUnsupportedPlatform] before doing
// anything else if the host has no WebGPU support. The surface is sized
// to its container, and kept that size by a resize handler. The surface
// is configured with the host's preferred format and premultiplied alpha.
// If any step fails, everything acquired so far is released.
func Init(ctx context.Context, host Host, cfg Config) (*Context, error) {
	if !host.Supported() {
		return nil, errors.Log(ErrUnsupportedPlatform)
	}
	cfg.defaults()
	sf, err := host.Surface(cfg.SurfaceID, cfg.ContainerID)
	if err != nil {
		return nil, errors.Log(err)
	}
	if sf == nil {
		return nil, errors.Log(fmt.Errorf("%w: %q", ErrSurfaceNotFound, cfg.SurfaceID))
	}

	gc := &Context{Surface: sf}
	gc.resize()
	gc.removeResize = host.OnResize(gc.resize)

	ad, err := host.RequestAdapter(ctx, sf)
	if err != nil {
		gc.Release()
		return nil, errors.Log(fmt.Errorf("gpu: requesting adapter: %w", err))
	}
	gc.Adapter = ad
	if Debug {
		slog.Info("gpu: adapter", "info", ad.Info())
	}

	dev, err := ad.RequestDevice(ctx)
	if err != nil {
		gc.Release()
		return nil, errors.Log(fmt.Errorf("gpu: requesting device: %w", err))
	}
	gc.Device = dev

	gc.Format = host.PreferredFormat(ad, sf)
	err = sf.Configure(dev, SurfaceConfig{Format: gc.Format, AlphaMode: AlphaPremultiplied})
	if err != nil {
		gc.Release()
		return nil, errors.Log(fmt.Errorf("gpu: configuring surface: %w", err))
	}
	if Debug {
		slog.Info("gpu: surface configured", "format", gc.Format, "size", sf.Size())
	}
	return gc, nil
}

// resize sets the surface size to its container size.
func (gc *Context) resize() {
	gc.Surface.SetSize(gc.Surface.ContainerSize())
}

// Size returns the current surface size.
func (gc *Context) Size() image.Point {
	return gc.Surface.Size()
}

// Aspect returns the width / height ratio of the surface,
// or 1 if it has no area.
func (gc *Context) Aspect() float32 {
	return aspect(gc.Size())
}

// Released returns whether [Context.Release] has been called.
func (gc *Context) Released() bool {
	return gc == nil || gc.released
}

// Release removes the resize handler and releases the surface,
// device and adapter. It is safe to call more than once.
func (gc *Context) Release() {
	if gc == nil || gc.released {
		return
	}
	gc.released = true
	if gc.removeResize != nil {
		gc.removeResize()
		gc.removeResize = nil
	}
	if gc.Surface != nil {
		gc.Surface.Release()
	}
	if gc.Device != nil {
		gc.Device.Release()
		gc.Device = nil
	}
	if gc.Adapter != nil {
		gc.Adapter.Release()
		gc.Adapter = nil
	}
}
