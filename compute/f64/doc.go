// Copyright ©2024 The Riemann Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package f64 provides the float64 building blocks the integration kernels
// are assembled from: grid generation, element-wise trigonometry and
// multi-accumulator reductions.
package f64
