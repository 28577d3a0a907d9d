// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package main

import (
	"context"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/gpudemo/gpu/web"
)

func main() {
	// there are no command line arguments on the web
	c := &Config{}
	if cli.SetFromDefaults(c) != nil {
		return
	}
	errors.Log(Run(c))
}

// Run draws the scene in the canvas of the page.
func Run(c *Config) error {
	if err := setupLogging(c); err != nil {
		return err
	}
	return run(context.Background(), c, web.NewHost(), nil)
}
