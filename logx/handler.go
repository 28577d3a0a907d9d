// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/muesli/termenv"
)

// levelVar holds [UserLevel] for the default logger, so that
// [SetLevel] takes effect on existing loggers.
var levelVar slog.LevelVar

// Init sets [UserLevel] and installs a [Handler] writing to stderr as the
// default slog logger, colored according to the terminal's capabilities.
func Init(level slog.Level) {
	SetLevel(level)
	slog.SetDefault(slog.New(NewHandler(os.Stderr, &levelVar, termenv.EnvColorProfile())))
}

// SetLevel sets [UserLevel] and the level of the logger installed by [Init].
func SetLevel(level slog.Level) {
	UserLevel = level
	levelVar.Set(level)
}

// Handler is a [slog.Handler] that writes the level name of each record,
// colored by severity, followed by the record in [slog.TextHandler] format.
type Handler struct {
	slog.Handler
	mu      *sync.Mutex
	w       io.Writer
	profile termenv.Profile
}

// NewHandler returns a new [Handler] writing records at or above
// level to w, using the given color profile. [termenv.Ascii]
// disables colors.
func NewHandler(w io.Writer, level slog.Leveler, profile termenv.Profile) *Handler {
	th := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return &Handler{Handler: th, mu: &sync.Mutex{}, w: w, profile: profile}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := io.WriteString(h.w, ColorLevel(h.profile, r.Level)+" "); err != nil {
		return err
	}
	return h.Handler.Handle(ctx, r)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs), mu: h.mu, w: h.w, profile: h.profile}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name), mu: h.mu, w: h.w, profile: h.profile}
}

// ColorLevel returns the name of the level colored by severity
// using the given profile.
func ColorLevel(profile termenv.Profile, level slog.Level) string {
	var c string
	switch {
	case level >= slog.LevelError:
		c = "1" // red
	case level >= slog.LevelWarn:
		c = "3" // yellow
	case level >= slog.LevelInfo:
		c = "4" // blue
	default:
		c = "8" // gray
	}
	return profile.String(level.String()).Foreground(profile.Color(c)).String()
}
