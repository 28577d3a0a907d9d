// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"context"
	"image"
)

// Host is a platform that can provide WebGPU adapters and
// presentation surfaces.
type Host interface {

	// Supported returns whether the platform has WebGPU support at all.
	Supported() bool

	// Surface returns the surface with the given id, whose size tracks
	// the container with the given id. It returns an error wrapping
	// [ErrSurfaceNotFound] if either does not exist.
	Surface(surfaceID, containerID string) (Surface, error)

	// RequestAdapter requests an adapter that can present to sf.
	RequestAdapter(ctx context.Context, sf Surface) (Adapter, error)

	// PreferredFormat returns the preferred texture format for presenting
	// to sf from the given adapter.
	PreferredFormat(ad Adapter, sf Surface) TextureFormat

	// OnResize installs fn as a handler for resize events of the
	// surface container. The returned function removes the handler.
	OnResize(fn func()) (remove func())
}

// Surface is a presentation surface, such as a canvas or window.
type Surface interface {

	// ContainerSize returns the current size of the layout container.
	ContainerSize() image.Point

	// Size returns the current size of the surface in pixels.
	Size() image.Point

	// SetSize sets the size of the surface in pixels.
	SetSize(size image.Point)

	// Configure configures the surface for presentation from dev.
	Configure(dev Device, cfg SurfaceConfig) error

	// Present clears the current surface texture to the given color
	// and presents it.
	Present(dev Device, clear Color) error

	// Release releases the surface configuration.
	Release()
}

// Adapter is a physical GPU adapter.
type Adapter interface {

	// RequestDevice requests a logical device from the adapter.
	RequestDevice(ctx context.Context) (Device, error)

	// Info returns a description of the adapter for logging.
	Info() string

	Release()
}

// Device is a logical GPU device.
type Device interface {

	// CreateBuffer creates a new buffer on the device.
	CreateBuffer(desc *BufferDescriptor) (Buffer, error)

	// WriteBuffer queues a write of data to buf at the given byte offset.
	WriteBuffer(buf Buffer, offset uint64, data []byte) error

	Release()
}

// Buffer is a block of device memory.
type Buffer interface {

	// Size returns the size of the buffer in bytes.
	Size() uint64

	// Usage returns the usage flags the buffer was created with.
	Usage() BufferUsage

	// WriteMapped copies data into the mapped range of the buffer
	// starting at offset. The buffer must be mapped.
	WriteMapped(offset uint64, data []byte) error

	// Unmap unmaps the buffer, making its contents available to the device.
	Unmap()

	Release()
}
