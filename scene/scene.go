// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the description of what the demo draws,
// which can be loaded from TOML or YAML files and reloaded when
// the file changes.
package scene

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gpudemo/transform"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Scene describes the geometry, placement and camera of the demo.
type Scene struct {

	// Model is the model transform. Its rotation is the starting
	// rotation of the animation.
	Model transform.Transform `toml:"model" yaml:"model"`

	// Camera is the camera placement.
	Camera transform.Camera `toml:"camera" yaml:"camera"`

	// Indices are the triangle list indices uploaded to the index buffer.
	Indices []uint32 `toml:"indices" yaml:"indices"`

	// Clear is the RGBA color the surface is cleared to each frame.
	Clear [4]float64 `toml:"clear" yaml:"clear"`

	// Animate is whether the model rotates each frame.
	Animate bool `toml:"animate" yaml:"animate"`
}

// Default returns the default scene: a unit quad made of two triangles
// with the identity transform, the default camera and animation on.
func Default() *Scene {
	return &Scene{
		Model:   transform.NewTransform(),
		Camera:  transform.DefaultCamera(),
		Indices: []uint32{0, 1, 2, 2, 3, 0},
		Clear:   [4]float64{0.2, 0.247, 0.314, 1},
		Animate: true,
	}
}

// Validate returns an error if the indices do not form whole triangles.
func (sc *Scene) Validate() error {
	if len(sc.Indices)%3 != 0 {
		return fmt.Errorf("scene: %d indices is not a whole number of triangles", len(sc.Indices))
	}
	return nil
}

// Format is a scene file format.
type Format int

const (
	TOML Format = iota
	YAML
)

// FormatForPath returns the format for the file extension of path.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("scene: unknown file format for %q", path)
}

// Decode decodes a scene in the given format from data,
// starting from [Default] so that missing keys keep their defaults.
func Decode(data []byte, f Format) (*Scene, error) {
	sc := Default()
	var err error
	switch f {
	case TOML:
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(sc)
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(sc)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	}
	if err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// Open reads the scene in the given TOML or YAML file,
// determined by its extension.
func Open(path string) (*Scene, error) {
	f, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	return sc, nil
}

// Save writes the scene to the given TOML or YAML file,
// determined by its extension.
func (sc *Scene) Save(path string) error {
	f, err := FormatForPath(path)
	if err != nil {
		return err
	}
	var data []byte
	switch f {
	case TOML:
		data, err = toml.Marshal(sc)
	case YAML:
		data, err = yaml.Marshal(sc)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0666)
}
