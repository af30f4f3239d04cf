// Copyright ©2024 The Riemann Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package f64

// LeftEndpoints fills dst with the left endpoints a + (offset+j)*dx.
// Each point is computed from its index rather than by repeated addition so
// that a block-wise grid matches a point-by-point loop bit for bit.
func LeftEndpoints(dst []float64, a, dx float64, offset int) {
	for j := range dst {
		dst[j] = a + float64(offset+j)*dx
	}
}
