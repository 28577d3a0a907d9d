// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

// Package web provides the browser [gpu.Host], using navigator.gpu
// and an HTML canvas as the surface.
package web

import (
	"context"
	"fmt"
	"image"
	"strings"
	"syscall/js"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gpudemo/gpu"
	"github.com/cogentcore/webgpu/jsx"
)

// Host is the browser implementation of [gpu.Host].
type Host struct{}

// NewHost returns a new browser host.
func NewHost() *Host {
	return &Host{}
}

func navigatorGPU() js.Value {
	return js.Global().Get("navigator").Get("gpu")
}

func (h *Host) Supported() bool {
	return navigatorGPU().Truthy()
}

func (h *Host) Surface(surfaceID, containerID string) (gpu.Surface, error) {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", surfaceID)
	if !canvas.Truthy() {
		return nil, fmt.Errorf("%w: no canvas %q", gpu.ErrSurfaceNotFound, surfaceID)
	}
	container := doc.Call("getElementById", containerID)
	if !container.Truthy() {
		return nil, fmt.Errorf("%w: no container %q", gpu.ErrSurfaceNotFound, containerID)
	}
	ctx := canvas.Call("getContext", "webgpu")
	if !ctx.Truthy() {
		return nil, fmt.Errorf("gpu/web: canvas %q has no webgpu context", surfaceID)
	}
	return &Surface{canvas: canvas, container: container, context: ctx}, nil
}

func (h *Host) RequestAdapter(ctx context.Context, sf gpu.Surface) (gpu.Adapter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := await(navigatorGPU().Call("requestAdapter", map[string]any{
		"powerPreference": "high-performance",
	}))
	if err != nil {
		return nil, err
	}
	if !v.Truthy() {
		return nil, errors.New("gpu/web: no adapter available")
	}
	return &Adapter{value: v}, nil
}

func (h *Host) PreferredFormat(ad gpu.Adapter, sf gpu.Surface) gpu.TextureFormat {
	return gpu.TextureFormat(navigatorGPU().Call("getPreferredCanvasFormat").String())
}

func (h *Host) OnResize(fn func()) func() {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	win := js.Global()
	win.Call("addEventListener", "resize", f)
	return func() {
		win.Call("removeEventListener", "resize", f)
		f.Release()
	}
}

// await waits for the promise v and returns its result,
// or an error if it is rejected.
func await(v js.Value) (js.Value, error) {
	res, ok := jsx.Await(v)
	if !ok {
		return res, fmt.Errorf("gpu/web: %s", jsString(res))
	}
	return res, nil
}

// call calls the given method, returning any JavaScript exception as an error.
func call(v js.Value, method string, args ...any) (res js.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			je, ok := r.(js.Error)
			if !ok {
				panic(r)
			}
			err = je
		}
	}()
	return v.Call(method, args...), nil
}

func jsString(v js.Value) string {
	if v.Type() == js.TypeObject && v.Get("message").Type() == js.TypeString {
		return v.Get("message").String()
	}
	return v.String()
}

// Surface is an HTML canvas configured with a webgpu context.
type Surface struct {
	canvas    js.Value
	container js.Value
	context   js.Value

	configured bool
}

func (s *Surface) ContainerSize() image.Point {
	return image.Pt(s.container.Get("offsetWidth").Int(), s.container.Get("offsetHeight").Int())
}

func (s *Surface) Size() image.Point {
	return image.Pt(s.canvas.Get("width").Int(), s.canvas.Get("height").Int())
}

func (s *Surface) SetSize(size image.Point) {
	s.canvas.Set("width", size.X)
	s.canvas.Set("height", size.Y)
}

func (s *Surface) Configure(dev gpu.Device, cfg gpu.SurfaceConfig) error {
	d, ok := dev.(*Device)
	if !ok {
		return fmt.Errorf("gpu/web: cannot configure canvas with %T", dev)
	}
	_, err := call(s.context, "configure", map[string]any{
		"device":    d.value,
		"format":    string(cfg.Format),
		"alphaMode": string(cfg.AlphaMode),
	})
	if err != nil {
		return err
	}
	s.configured = true
	return nil
}

func (s *Surface) Present(dev gpu.Device, clear gpu.Color) error {
	d, ok := dev.(*Device)
	if !ok {
		return fmt.Errorf("gpu/web: cannot present with %T", dev)
	}
	tex, err := call(s.context, "getCurrentTexture")
	if err != nil {
		return err
	}
	enc := d.value.Call("createCommandEncoder")
	pass := enc.Call("beginRenderPass", map[string]any{
		"colorAttachments": []any{map[string]any{
			"view":       tex.Call("createView"),
			"clearValue": map[string]any{"r": clear[0], "g": clear[1], "b": clear[2], "a": clear[3]},
			"loadOp":     "clear",
			"storeOp":    "store",
		}},
	})
	pass.Call("end")
	d.queue.Call("submit", []any{enc.Call("finish")})
	// the browser presents the canvas texture at the end of the task
	return nil
}

func (s *Surface) Release() {
	if s.configured {
		s.context.Call("unconfigure")
		s.configured = false
	}
}

// Adapter is a GPUAdapter.
type Adapter struct {
	value js.Value
}

func (a *Adapter) RequestDevice(ctx context.Context) (gpu.Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := await(a.value.Call("requestDevice"))
	if err != nil {
		return nil, err
	}
	if !v.Truthy() {
		return nil, errors.New("gpu/web: no device available")
	}
	return &Device{value: v, queue: v.Get("queue")}, nil
}

func (a *Adapter) Info() string {
	info := a.value.Get("info")
	if !info.Truthy() {
		return "unknown"
	}
	var parts []string
	for _, k := range []string{"vendor", "architecture", "device", "description"} {
		if s := info.Get(k); s.Type() == js.TypeString && s.String() != "" {
			parts = append(parts, s.String())
		}
	}
	return strings.Join(parts, " ")
}

// Release is a no-op, as GPUAdapter has no explicit release.
func (a *Adapter) Release() {}

// Device is a GPUDevice and its queue.
type Device struct {
	value js.Value
	queue js.Value
}

func (d *Device) CreateBuffer(desc *gpu.BufferDescriptor) (gpu.Buffer, error) {
	v, err := call(d.value, "createBuffer", map[string]any{
		"label":            desc.Label,
		"size":             desc.Size,
		"usage":            uint32(desc.Usage),
		"mappedAtCreation": desc.MappedAtCreation,
	})
	if err != nil {
		return nil, err
	}
	return &Buffer{value: v, size: desc.Size, usage: desc.Usage}, nil
}

func (d *Device) WriteBuffer(buf gpu.Buffer, offset uint64, data []byte) error {
	b, ok := buf.(*Buffer)
	if !ok {
		return fmt.Errorf("gpu/web: cannot write to %T", buf)
	}
	_, err := call(d.queue, "writeBuffer", b.value, offset, jsx.BytesToJS(data))
	return err
}

func (d *Device) Release() {
	d.value.Call("destroy")
}

// Buffer is a GPUBuffer.
type Buffer struct {
	value js.Value
	size  uint64
	usage gpu.BufferUsage
}

func (b *Buffer) Size() uint64           { return b.size }
func (b *Buffer) Usage() gpu.BufferUsage { return b.usage }

func (b *Buffer) WriteMapped(offset uint64, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	rng, err := call(b.value, "getMappedRange")
	if err != nil {
		return err
	}
	dst := js.Global().Get("Uint8Array").New(rng, offset, len(data))
	js.CopyBytesToJS(dst, data)
	return nil
}

func (b *Buffer) Unmap() {
	b.value.Call("unmap")
}

func (b *Buffer) Release() {
	b.value.Call("destroy")
}
