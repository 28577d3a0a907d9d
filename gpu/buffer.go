// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/gpudemo/math32"
	"github.com/cogentcore/webgpu/wgpu"
)

// MatrixSize is the size in bytes of a [math32.Matrix4] in device memory.
const MatrixSize = 16 * 4

// NewIndexBuffer creates a buffer holding data as little-endian uint32
// values, sized exactly to the data. The buffer is written while mapped
// at creation and is unmapped before it is returned. The usage flags are
// OR-ed together, defaulting to Index | CopyDst. An allocation failure
// is returned as an [*AllocationError].
func NewIndexBuffer(dev Device, data []uint32, usage ...BufferUsage) (Buffer, error) {
	u := BufferUsageIndex | BufferUsageCopyDst
	if len(usage) > 0 {
		u = BufferUsageNone
		for _, f := range usage {
			u |= f
		}
	}
	b := IndexBytes(data)
	size := uint64(len(b))
	buf, err := dev.CreateBuffer(&BufferDescriptor{
		Label:            "index",
		Size:             size,
		Usage:            u,
		MappedAtCreation: true,
	})
	if err != nil {
		return nil, errors.Log(&AllocationError{Size: size, Usage: u, Err: err})
	}
	if err := buf.WriteMapped(0, b); errors.Log(err) != nil {
		buf.Unmap()
		buf.Release()
		return nil, err
	}
	buf.Unmap()
	return buf, nil
}

// IndexBytes returns the bytes of data, 4 per value, in the
// little-endian order of every WebGPU target. The result shares
// memory with data.
func IndexBytes(data []uint32) []byte {
	if len(data) == 0 {
		return nil
	}
	return wgpu.ToBytes(data)
}

// NewUniformBuffer creates an unmapped uniform buffer of the given size
// that can be written with [Device.WriteBuffer].
func NewUniformBuffer(dev Device, size uint64) (Buffer, error) {
	u := BufferUsageUniform | BufferUsageCopyDst
	buf, err := dev.CreateBuffer(&BufferDescriptor{
		Label: "uniform",
		Size:  size,
		Usage: u,
	})
	if err != nil {
		return nil, errors.Log(&AllocationError{Size: size, Usage: u, Err: err})
	}
	return buf, nil
}

// MatrixBytes returns the bytes of the column-major float32 elements
// of m. The result shares memory with m.
func MatrixBytes(m *math32.Matrix4) []byte {
	return wgpu.ToBytes(m[:])
}

// WriteMatrix writes m to the start of buf.
func WriteMatrix(dev Device, buf Buffer, m *math32.Matrix4) error {
	return errors.Log(dev.WriteBuffer(buf, 0, MatrixBytes(m)))
}
