// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/gpudemo/math32"
	"cogentcore.org/gpudemo/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	sc := Default()
	assert.Equal(t, transform.NewTransform(), sc.Model)
	assert.Equal(t, transform.DefaultCamera(), sc.Camera)
	assert.Equal(t, []uint32{0, 1, 2, 2, 3, 0}, sc.Indices)
	assert.True(t, sc.Animate)
	require.NoError(t, sc.Validate())

	// each call returns a fresh scene
	sc.Indices[0] = 9
	sc.Model.Scale.X = 5
	assert.Equal(t, uint32(0), Default().Indices[0])
	assert.Equal(t, float32(1), Default().Model.Scale.X)
}

const tomlScene = `
animate = false
indices = [0, 1, 2]

[model]
translation = {x = 1, y = 2, z = 3}

[camera]
eye = {x = 0, y = 0, z = 10}
`

const yamlScene = `
animate: false
indices: [0, 1, 2]
clear: [0, 0, 0, 1]
model:
  rotation: {x: 0.5}
camera:
  aspect: 2
`

func TestDecodeTOML(t *testing.T) {
	sc, err := Decode([]byte(tomlScene), TOML)
	require.NoError(t, err)
	assert.False(t, sc.Animate)
	assert.Equal(t, []uint32{0, 1, 2}, sc.Indices)
	assert.Equal(t, math32.Vec3(1, 2, 3), sc.Model.Translation)
	assert.Equal(t, math32.Vec3(0, 0, 10), sc.Camera.Eye)

	// missing keys keep their defaults
	assert.Equal(t, math32.Vec3(1, 1, 1), sc.Model.Scale)
	assert.Equal(t, math32.Vec3(0, 1, 0), sc.Camera.Up)
	assert.Equal(t, float32(1), sc.Camera.Aspect)
	assert.Equal(t, Default().Clear, sc.Clear)
}

func TestDecodeYAML(t *testing.T) {
	sc, err := Decode([]byte(yamlScene), YAML)
	require.NoError(t, err)
	assert.False(t, sc.Animate)
	assert.Equal(t, [4]float64{0, 0, 0, 1}, sc.Clear)
	assert.Equal(t, math32.Vec3(0.5, 0, 0), sc.Model.Rotation)
	assert.Equal(t, float32(2), sc.Camera.Aspect)
	assert.Equal(t, math32.Vec3(2, 2, 4), sc.Camera.Eye)

	sc, err = Decode(nil, YAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), sc)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte("indices = [0, 1]"), TOML)
	assert.ErrorContains(t, err, "triangles")

	_, err = Decode([]byte("colour = 1"), TOML)
	assert.Error(t, err)

	_, err = Decode([]byte("animate: [1"), YAML)
	assert.Error(t, err)

	_, err = FormatForPath("scene.json")
	assert.Error(t, err)
}

func TestOpenSave(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"scene.toml", "scene.yaml", "scene.yml"} {
		sc := Default()
		sc.Model.Rotation = math32.Vec3(0.25, 0.5, 0)
		sc.Indices = []uint32{3, 2, 1}
		sc.Animate = false
		path := filepath.Join(dir, name)
		require.NoError(t, sc.Save(path))

		got, err := Open(path)
		require.NoError(t, err, name)
		assert.Equal(t, sc, got, name)
	}

	_, err := Open(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte("animate = true"), 0666))

	ctx, cancel := context.WithCancel(context.Background())
	scenes := make(chan *Scene, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(sc *Scene) { scenes <- sc })
	}()

	// the watcher starts asynchronously, so keep rewriting until a reload arrives
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	timeout := time.After(10 * time.Second)
	var got *Scene
	for got == nil {
		select {
		case sc := <-scenes:
			if !sc.Animate {
				got = sc
			}
		case <-ticker.C:
			require.NoError(t, os.WriteFile(path, []byte(tomlScene), 0666))
		case <-timeout:
			t.Fatal("timed out waiting for scene reload")
		}
	}
	assert.Equal(t, math32.Vec3(1, 2, 3), got.Model.Translation)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatchUnknownFormat(t *testing.T) {
	err := Watch(context.Background(), "scene.txt", func(*Scene) {})
	assert.Error(t, err)
}
