// Copyright ©2024 The Riemann Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package riemann approximates ∫ sin(x)cos(x) dx with a left-endpoint
// Riemann sum and benchmarks a ladder of implementations of that sum.
//
// Integrate is the reference routine. The kernels returned by Kernels
// compute the same sum with progressively less overhead:
//   - interpreted: boxed values and an indirect call per sample (baseline)
//   - vectorized:  block-wise arrays reduced with gonum/floats
//   - typed:       a concrete float64 loop
//   - sincos:      one math.Sincos call per sample
//   - native:      one accumulator per vector lane, sized from CPU features
//   - parallel:    the native kernel split across a worker pool
//
// A Harness times kernels against the baseline and a Recorder keeps each
// run as a JSON session file that the compare command can diff.
package riemann
