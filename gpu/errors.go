// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

var (
	// ErrUnsupportedPlatform is returned by [Init] when the host
	// has no WebGPU support.
	ErrUnsupportedPlatform = errors.New("gpu: WebGPU is not supported on this platform")

	// ErrSurfaceNotFound is returned by [Init] when the surface
	// or its container does not exist.
	ErrSurfaceNotFound = errors.New("gpu: surface not found")

	// ErrReleased is returned when drawing with a released [Context].
	ErrReleased = errors.New("gpu: context has been released")
)

// AllocationError is returned when the device fails to allocate a buffer.
type AllocationError struct {

	// Size is the requested size in bytes.
	Size uint64

	// Usage is the requested usage.
	Usage BufferUsage

	// Err is the error reported by the device.
	Err error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("gpu: allocating %d byte buffer with usage %v: %v", e.Size, e.Usage, e.Err)
}

func (e *AllocationError) Unwrap() error {
	return e.Err
}
