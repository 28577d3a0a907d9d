// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up leveled, colored [log/slog] output
// for terminal programs.
package logx

import (
	"fmt"
	"log/slog"
	"strings"
)

// UserLevel is the verbosity level that the user has selected for
// what logging messages should be shown. Messages at levels at or
// above this level are shown. The default depends on the build tags:
// [slog.LevelDebug] with debug, [slog.LevelWarn] with release,
// and [slog.LevelInfo] otherwise.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] corresponding to the given
// user flag options:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so if both vv and q
// are specified, it still returns [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// ParseLevel returns the level with the given name, which is one of
// debug, info, warn or error (case insensitive), optionally followed
// by an offset such as "debug-2", as accepted by [slog.Level.UnmarshalText].
// An empty name returns the default level.
func ParseLevel(name string) (slog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return defaultUserLevel, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return defaultUserLevel, fmt.Errorf("logx: invalid level %q: %w", name, err)
	}
	return l, nil
}
