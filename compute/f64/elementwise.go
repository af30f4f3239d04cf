// Copyright ©2024 The Riemann Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package f64

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sin stores sin(x[i]) in dst[i]. dst and x must have the same length.
func Sin(dst, x []float64) {
	if len(dst) != len(x) {
		panic("f64: slice length mismatch")
	}
	for i, v := range x {
		dst[i] = math.Sin(v)
	}
}

// Cos stores cos(x[i]) in dst[i]. dst and x must have the same length.
func Cos(dst, x []float64) {
	if len(dst) != len(x) {
		panic("f64: slice length mismatch")
	}
	for i, v := range x {
		dst[i] = math.Cos(v)
	}
}

// SinCosProductSum returns Σ sin(x[i])·cos(x[i]), using s and c as scratch.
// All three slices must have the same length.
func SinCosProductSum(x, s, c []float64) float64 {
	Sin(s, x)
	Cos(c, x)
	floats.Mul(s, c)
	return floats.Sum(s)
}
