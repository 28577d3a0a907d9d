// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package anim

import (
	"context"
	"syscall/js"
)

// AnimationFrame runs one frame per browser animation frame, using a
// requestAnimationFrame callback that re-arms itself after each frame.
// The frame function runs inside a JavaScript callback, so it must not
// block on promises.
type AnimationFrame struct{}

func (AnimationFrame) Run(ctx context.Context, frame func() error) error {
	done := make(chan error, 1)
	var f js.Func
	f = js.FuncOf(func(this js.Value, args []js.Value) any {
		if err := ctx.Err(); err != nil {
			done <- err
			return nil
		}
		if err := frame(); err != nil {
			done <- err
			return nil
		}
		js.Global().Call("requestAnimationFrame", f)
		return nil
	})
	defer f.Release()
	js.Global().Call("requestAnimationFrame", f)
	return <-done
}

// Default returns the default loop for the platform, which is
// [AnimationFrame] on the web.
func Default() Loop {
	return AnimationFrame{}
}
