// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is the float32 vector and 4x4 matrix math used to
// place and project the demo model. Matrices are column-major, with
// the element at row r and column c stored at index c*4+r, which is
// the layout uniform buffers expect.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// Scalar functions forward to chewxy/math32, which computes
// in float32 without converting through float64.

// Pi is the float32 value of π.
const Pi = math.Pi

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// DegToRad converts degrees to radians.
func DegToRad(degrees float32) float32 { return degrees * (Pi / 180) }

// RadToDeg converts radians to degrees.
func RadToDeg(radians float32) float32 { return radians * (180 / Pi) }

func Abs(x float32) float32 { return math32.Abs(x) }
func Sqrt(x float32) float32 { return math32.Sqrt(x) }
func Tan(x float32) float32 { return math32.Tan(x) }
func Sincos(x float32) (sin, cos float32) { return math32.Sincos(x) }
func IsInf(x float32, sign int) bool { return math32.IsInf(x, sign) }
func IsNaN(x float32) bool { return math32.IsNaN(x) }
func NaN() float32 { return math32.NaN() }
