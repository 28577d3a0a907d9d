// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu acquires a WebGPU device and presentation surface from a
// platform [Host] and uploads buffer data to the device.
// The platform hosts live in the web (browser) and desktop (GLFW and
// wgpu-native) subpackages; gputest provides an in-memory host.
package gpu

var (
	// Debug is whether to log adapter, device and surface configuration
	// details during [Init].
	Debug = false
)

const (
	// DefaultSurfaceID is the element id of the canvas used as the surface.
	DefaultSurfaceID = "canvas-webgpu"

	// DefaultContainerID is the element id of the layout element
	// whose size the surface tracks.
	DefaultContainerID = "canvas-block-div"
)
