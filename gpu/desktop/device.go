// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package desktop

import (
	"context"
	"fmt"

	"cogentcore.org/gpudemo/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// Adapter is a wgpu adapter.
type Adapter struct {
	adapter *wgpu.Adapter
}

func (a *Adapter) RequestDevice(ctx context.Context) (gpu.Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dev, err := a.adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "gpudemo",
	})
	if err != nil {
		return nil, err
	}
	return &Device{adapter: a.adapter, device: dev, queue: dev.GetQueue()}, nil
}

func (a *Adapter) Info() string {
	return fmt.Sprintf("%+v", a.adapter.GetInfo())
}

func (a *Adapter) Release() {
	a.adapter.Release()
}

// Device is a wgpu device and its queue.
type Device struct {
	adapter *wgpu.Adapter
	device  *wgpu.Device
	queue   *wgpu.Queue
}

func (d *Device) CreateBuffer(desc *gpu.BufferDescriptor) (gpu.Buffer, error) {
	buf, err := d.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            desc.Label,
		Size:             desc.Size,
		Usage:            wgpu.BufferUsage(desc.Usage),
		MappedAtCreation: desc.MappedAtCreation,
	})
	if err != nil {
		return nil, err
	}
	return &Buffer{buffer: buf, size: desc.Size, usage: desc.Usage}, nil
}

func (d *Device) WriteBuffer(buf gpu.Buffer, offset uint64, data []byte) error {
	b, ok := buf.(*Buffer)
	if !ok {
		return fmt.Errorf("gpu/desktop: foreign buffer %T", buf)
	}
	return d.queue.WriteBuffer(b.buffer, offset, data)
}

func (d *Device) Release() {
	d.queue.Release()
	d.device.Release()
}

// Buffer is a wgpu buffer.
type Buffer struct {
	buffer *wgpu.Buffer
	size   uint64
	usage  gpu.BufferUsage
}

func (b *Buffer) Size() uint64           { return b.size }
func (b *Buffer) Usage() gpu.BufferUsage { return b.usage }

func (b *Buffer) WriteMapped(offset uint64, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	bm := b.buffer.GetMappedRange(uint(offset), uint(len(data)))
	if len(bm) < len(data) {
		return fmt.Errorf("gpu/desktop: mapped range of %d bytes is smaller than %d", len(bm), len(data))
	}
	copy(bm, data)
	return nil
}

func (b *Buffer) Unmap() {
	b.buffer.Unmap()
}

func (b *Buffer) Release() {
	b.buffer.Release()
}
