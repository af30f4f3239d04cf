// Copyright ©2024 The Riemann Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command riemann integrates sin(x)cos(x) over [a, b] and prints the result
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/LynnColeArt/riemann"
)

func main() {
	var (
		a      = flag.Float64("a", riemann.DefaultLower, "Lower bound")
		b      = flag.Float64("b", riemann.DefaultUpper, "Upper bound")
		n      = flag.Int("n", riemann.DefaultSamples, "Number of subdivisions")
		kernel = flag.String("kernel", "", "Kernel to use (default: reference routine)")
	)
	flag.Parse()

	var (
		x   float64
		err error
	)
	if *kernel == "" {
		x, err = riemann.Integrate(*a, *b, *n)
	} else {
		var k riemann.Kernel
		k, err = riemann.Lookup(*kernel)
		if err == nil {
			x, err = k.Integrate(*a, *b, *n)
		}
	}
	if err != nil {
		log.Fatalf("Integration failed: %v", err)
	}

	fmt.Println(riemann.FormatValue(x, riemann.Exact(*a, *b)))
}
