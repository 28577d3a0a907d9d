// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch calls fn with the newly loaded scene each time the file at path
// is written or created, until ctx is done. Files that fail to load are
// logged and skipped. The enclosing directory is watched, so that editors
// that save by replacing the file are handled. It does not return until
// ctx is done, so it should typically be called in a separate goroutine.
func Watch(ctx context.Context, path string, fn func(sc *Scene)) error {
	if _, err := FormatForPath(path); err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			sc, err := Open(abs)
			if errors.Log(err) != nil {
				continue
			}
			slog.Info("scene: reloaded", "path", path)
			fn(sc)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
