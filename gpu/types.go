// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"strconv"
	"strings"
)

// BufferUsage is a set of WebGPU buffer usage flags.
// The values are the GPUBufferUsage bits, so they can be passed
// directly to a WebGPU implementation.
type BufferUsage uint32

const (
	BufferUsageMapRead      BufferUsage = 0x0001
	BufferUsageMapWrite     BufferUsage = 0x0002
	BufferUsageCopySrc      BufferUsage = 0x0004
	BufferUsageCopyDst      BufferUsage = 0x0008
	BufferUsageIndex        BufferUsage = 0x0010
	BufferUsageVertex       BufferUsage = 0x0020
	BufferUsageUniform      BufferUsage = 0x0040
	BufferUsageStorage      BufferUsage = 0x0080
	BufferUsageIndirect     BufferUsage = 0x0100
	BufferUsageQueryResolve BufferUsage = 0x0200

	// BufferUsageNone is the empty usage set.
	BufferUsageNone BufferUsage = 0
)

var bufferUsageNames = []struct {
	flag BufferUsage
	name string
}{
	{BufferUsageMapRead, "MapRead"},
	{BufferUsageMapWrite, "MapWrite"},
	{BufferUsageCopySrc, "CopySrc"},
	{BufferUsageCopyDst, "CopyDst"},
	{BufferUsageIndex, "Index"},
	{BufferUsageVertex, "Vertex"},
	{BufferUsageUniform, "Uniform"},
	{BufferUsageStorage, "Storage"},
	{BufferUsageIndirect, "Indirect"},
	{BufferUsageQueryResolve, "QueryResolve"},
}

// Has returns whether all of the given flags are set.
func (u BufferUsage) Has(flags BufferUsage) bool {
	return u&flags == flags
}

// String returns the flag names joined by |.
func (u BufferUsage) String() string {
	if u == BufferUsageNone {
		return "None"
	}
	var names []string
	for _, f := range bufferUsageNames {
		if u.Has(f.flag) {
			names = append(names, f.name)
			u &^= f.flag
		}
	}
	if u != 0 {
		names = append(names, "0x"+strconv.FormatUint(uint64(u), 16))
	}
	return strings.Join(names, "|")
}

// TextureFormat is a WebGPU texture format name, such as "bgra8unorm".
type TextureFormat string

const (
	TextureFormatUndefined      TextureFormat = ""
	TextureFormatBGRA8Unorm     TextureFormat = "bgra8unorm"
	TextureFormatRGBA8Unorm     TextureFormat = "rgba8unorm"
	TextureFormatBGRA8UnormSrgb TextureFormat = "bgra8unorm-srgb"
	TextureFormatRGBA8UnormSrgb TextureFormat = "rgba8unorm-srgb"
	TextureFormatRGBA16Float    TextureFormat = "rgba16float"
)

// AlphaMode is a WebGPU canvas alpha mode name.
type AlphaMode string

const (
	// AlphaOpaque ignores the alpha channel of the surface.
	AlphaOpaque AlphaMode = "opaque"

	// AlphaPremultiplied composites the surface with color
	// values already multiplied by alpha.
	AlphaPremultiplied AlphaMode = "premultiplied"
)

// SurfaceConfig is the presentation configuration of a [Surface].
type SurfaceConfig struct {

	// Format is the pixel format of the surface textures.
	Format TextureFormat

	// AlphaMode is how the surface is composited with the page or desktop.
	AlphaMode AlphaMode
}

// BufferDescriptor describes a buffer to create on a [Device].
type BufferDescriptor struct {

	// Label is a debugging name for the buffer.
	Label string

	// Size is the size of the buffer in bytes.
	Size uint64

	// Usage is the set of ways the buffer may be used.
	Usage BufferUsage

	// MappedAtCreation is whether the buffer is mapped for writing
	// when created, until [Buffer.Unmap] is called.
	MappedAtCreation bool
}

// Color is an RGBA clear color with components in [0, 1].
type Color [4]float64

// aspect returns the width / height ratio of size, or 1 for an empty size.
func aspect(size image.Point) float32 {
	if size.X <= 0 || size.Y <= 0 {
		return 1
	}
	return float32(size.X) / float32(size.Y)
}
