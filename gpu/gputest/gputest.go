// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides an in-memory [gpu.Host] that records
// every call made on it, for testing code that uses the gpu package
// without a GPU.
package gputest

import (
	"context"
	"fmt"
	"image"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gpudemo/gpu"
)

// Host is a fake [gpu.Host]. The exported fields before Events configure
// its behavior; the rest record what happened.
type Host struct {

	// NoGPU makes Supported return false.
	NoGPU bool

	// Container is the size of the surface container.
	Container image.Point

	// Format is the preferred format; empty means bgra8unorm.
	Format gpu.TextureFormat

	// Surfaces are the ids of the existing surfaces and containers;
	// nil means the default ids.
	Surfaces []string

	// FailAdapter, FailDevice, FailConfigure and FailBuffer make the
	// corresponding operation return an error.
	FailAdapter, FailDevice, FailConfigure, FailBuffer error

	// Events records each operation in order, such as "surface" or
	// "device.release".
	Events []string

	// LastSurface is the surface returned by the last call to [Host.Surface].
	LastSurface *Surface

	// LastAdapter is the last adapter returned.
	LastAdapter *Adapter

	// LastDevice is the last device returned.
	LastDevice *Device

	// resize is the installed resize handler.
	resize func()
}

// NewHost returns a host with a 640x480 container.
func NewHost() *Host {
	return &Host{Container: image.Pt(640, 480)}
}

func (h *Host) event(format string, args ...any) {
	h.Events = append(h.Events, fmt.Sprintf(format, args...))
}

// HasEvent returns whether the event has been recorded.
func (h *Host) HasEvent(ev string) bool {
	return slices.Contains(h.Events, ev)
}

func (h *Host) Supported() bool {
	h.event("supported")
	return !h.NoGPU
}

func (h *Host) Surface(surfaceID, containerID string) (gpu.Surface, error) {
	h.event("surface %s %s", surfaceID, containerID)
	ids := h.Surfaces
	if ids == nil {
		ids = []string{gpu.DefaultSurfaceID, gpu.DefaultContainerID}
	}
	for _, id := range []string{surfaceID, containerID} {
		if !slices.Contains(ids, id) {
			return nil, fmt.Errorf("%w: %q", gpu.ErrSurfaceNotFound, id)
		}
	}
	h.LastSurface = &Surface{host: h, ID: surfaceID}
	return h.LastSurface, nil
}

func (h *Host) RequestAdapter(ctx context.Context, sf gpu.Surface) (gpu.Adapter, error) {
	h.event("adapter")
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if h.FailAdapter != nil {
		return nil, h.FailAdapter
	}
	h.LastAdapter = &Adapter{host: h}
	return h.LastAdapter, nil
}

func (h *Host) PreferredFormat(ad gpu.Adapter, sf gpu.Surface) gpu.TextureFormat {
	h.event("format")
	if h.Format == "" {
		return gpu.TextureFormatBGRA8Unorm
	}
	return h.Format
}

func (h *Host) OnResize(fn func()) func() {
	h.event("resize.add")
	h.resize = fn
	return func() {
		h.event("resize.remove")
		h.resize = nil
	}
}

// HasResizeHandler returns whether a resize handler is installed.
func (h *Host) HasResizeHandler() bool {
	return h.resize != nil
}

// Resize sets the container size and calls the resize handler, if any.
func (h *Host) Resize(size image.Point) {
	h.Container = size
	if h.resize != nil {
		h.resize()
	}
}

// Surface is a fake [gpu.Surface].
type Surface struct {
	host *Host

	// ID is the surface id.
	ID string

	// Sizes records every size set, in order.
	Sizes []image.Point

	// Config is the last configuration.
	Config gpu.SurfaceConfig

	// Configured is whether Configure has succeeded.
	Configured bool

	// Presents records the clear color of each presented frame.
	Presents []gpu.Color

	// Released is whether Release has been called.
	Released bool
}

func (s *Surface) ContainerSize() image.Point {
	return s.host.Container
}

func (s *Surface) Size() image.Point {
	if len(s.Sizes) == 0 {
		return image.Point{}
	}
	return s.Sizes[len(s.Sizes)-1]
}

func (s *Surface) SetSize(size image.Point) {
	s.host.event("surface.size %dx%d", size.X, size.Y)
	s.Sizes = append(s.Sizes, size)
}

func (s *Surface) Configure(dev gpu.Device, cfg gpu.SurfaceConfig) error {
	s.host.event("surface.configure")
	if s.host.FailConfigure != nil {
		return s.host.FailConfigure
	}
	s.Config = cfg
	s.Configured = true
	return nil
}

func (s *Surface) Present(dev gpu.Device, clear gpu.Color) error {
	if !s.Configured || s.Released {
		return errors.New("gputest: present on unconfigured surface")
	}
	s.Presents = append(s.Presents, clear)
	return nil
}

func (s *Surface) Release() {
	s.host.event("surface.release")
	s.Released = true
}

// Adapter is a fake [gpu.Adapter].
type Adapter struct {
	host *Host

	// Released is whether Release has been called.
	Released bool
}

func (a *Adapter) RequestDevice(ctx context.Context) (gpu.Device, error) {
	a.host.event("device")
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if a.host.FailDevice != nil {
		return nil, a.host.FailDevice
	}
	a.host.LastDevice = &Device{host: a.host}
	return a.host.LastDevice, nil
}

func (a *Adapter) Info() string {
	return "gputest adapter"
}

func (a *Adapter) Release() {
	a.host.event("adapter.release")
	a.Released = true
}

// Device is a fake [gpu.Device].
type Device struct {
	host *Host

	// Buffers are all of the buffers created, in order.
	Buffers []*Buffer

	// Released is whether Release has been called.
	Released bool
}

func (d *Device) CreateBuffer(desc *gpu.BufferDescriptor) (gpu.Buffer, error) {
	d.host.event("buffer %s", desc.Label)
	if d.host.FailBuffer != nil {
		return nil, d.host.FailBuffer
	}
	b := &Buffer{
		Label:  desc.Label,
		Data:   make([]byte, desc.Size),
		usage:  desc.Usage,
		Mapped: desc.MappedAtCreation,
	}
	d.Buffers = append(d.Buffers, b)
	return b, nil
}

func (d *Device) WriteBuffer(buf gpu.Buffer, offset uint64, data []byte) error {
	b, ok := buf.(*Buffer)
	if !ok {
		return fmt.Errorf("gputest: foreign buffer %T", buf)
	}
	if b.Mapped {
		return errors.New("gputest: write to mapped buffer")
	}
	if !b.usage.Has(gpu.BufferUsageCopyDst) {
		return errors.New("gputest: write to buffer without CopyDst usage")
	}
	b.Writes++
	return b.copy(offset, data)
}

func (d *Device) Release() {
	d.host.event("device.release")
	d.Released = true
}

// Buffer is a fake [gpu.Buffer] backed by a byte slice.
type Buffer struct {

	// Label is the buffer label.
	Label string

	// Data is the contents of the buffer.
	Data []byte

	// Mapped is whether the buffer is currently mapped.
	Mapped bool

	// Writes is the number of queued writes.
	Writes int

	// Released is whether Release has been called.
	Released bool

	usage gpu.BufferUsage
}

func (b *Buffer) Size() uint64           { return uint64(len(b.Data)) }
func (b *Buffer) Usage() gpu.BufferUsage { return b.usage }

func (b *Buffer) WriteMapped(offset uint64, data []byte) error {
	if !b.Mapped {
		return errors.New("gputest: buffer is not mapped")
	}
	return b.copy(offset, data)
}

func (b *Buffer) copy(offset uint64, data []byte) error {
	if offset+uint64(len(data)) > uint64(len(b.Data)) {
		return fmt.Errorf("gputest: write of %d bytes at %d overflows %d byte buffer", len(data), offset, len(b.Data))
	}
	copy(b.Data[offset:], data)
	return nil
}

func (b *Buffer) Unmap() {
	b.Mapped = false
}

func (b *Buffer) Release() {
	b.Released = true
}
