// Copyright ©2024 The Riemann Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command riemann-compare compares a benchmark session against a baseline session
package main

import (
	"flag"
	"log"
	"os"

	"github.com/LynnColeArt/riemann"
)

func main() {
	var (
		baselineFile = flag.String("baseline", "", "Baseline session file")
		currentFile  = flag.String("current", "", "Current session file (default: latest in -log-dir)")
		logDir       = flag.String("log-dir", "benchmark_logs", "Directory searched when -current is empty")
		tolerance    = flag.Float64("tol", riemann.DefaultAgreement, "Numerical tolerance")
		perfRegress  = flag.Float64("perf-regress", 1.1, "Performance regression threshold (1.1 = 10% slower)")
	)
	flag.Parse()

	if *baselineFile == "" {
		log.Fatal("Usage: riemann-compare -baseline <session.json> [-current <session.json>]")
	}

	baseline, err := riemann.LoadSession(*baselineFile)
	if err != nil {
		log.Fatalf("Failed to load baseline: %v", err)
	}

	path := *currentFile
	if path == "" {
		path, err = riemann.LatestSession(*logDir)
		if err != nil {
			log.Fatalf("Failed to find current session: %v", err)
		}
	}
	current, err := riemann.LoadSession(path)
	if err != nil {
		log.Fatalf("Failed to load current results: %v", err)
	}

	comparisons := riemann.CompareSessions(baseline, current, *tolerance, *perfRegress)
	riemann.PrintComparison(os.Stdout, comparisons)

	if riemann.HasFailures(comparisons) {
		os.Exit(1)
	}
}
