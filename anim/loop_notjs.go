// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package anim

// Default returns the default loop for the platform,
// which is a 60 fps [Ticker] outside of the web.
func Default() Loop {
	return Ticker{FPS: 60}
}
