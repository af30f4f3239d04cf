// Copyright ©2024 The Riemann Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package f64

import "math"

// MaxLanes is the widest accumulator split SinCosSumLanes supports.
const MaxLanes = 8

// SinCosSum returns Σ sin(a+i·dx)·cos(a+i·dx) for i in [lo, hi) with a
// single accumulator.
func SinCosSum(a, dx float64, lo, hi int) float64 {
	s := 0.0
	for i := lo; i < hi; i++ {
		sn, cs := math.Sincos(a + float64(i)*dx)
		s += sn * cs
	}
	return s
}

// SinCosSumLanes computes the same sum as SinCosSum with lanes independent
// accumulators, which breaks the loop-carried dependency on a single sum.
// lanes is clamped to [1, MaxLanes]. The lane sums are combined in lane
// order, so the result is deterministic but may differ from SinCosSum in
// the last few bits.
func SinCosSumLanes(a, dx float64, lo, hi, lanes int) float64 {
	if lanes < 1 {
		lanes = 1
	}
	if lanes > MaxLanes {
		lanes = MaxLanes
	}
	if lanes == 1 {
		return SinCosSum(a, dx, lo, hi)
	}

	var acc [MaxLanes]float64
	i := lo
	for ; i+lanes <= hi; i += lanes {
		for l := 0; l < lanes; l++ {
			sn, cs := math.Sincos(a + float64(i+l)*dx)
			acc[l] += sn * cs
		}
	}

	// Handle remainder
	for l := 0; i < hi; i, l = i+1, l+1 {
		sn, cs := math.Sincos(a + float64(i)*dx)
		acc[l] += sn * cs
	}

	s := 0.0
	for l := 0; l < lanes; l++ {
		s += acc[l]
	}
	return s
}
