// Copyright ©2024 The Riemann Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command riemann-bench times every integration kernel against the baseline
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/LynnColeArt/riemann"
)

func main() {
	var (
		n           = flag.Int("n", riemann.DefaultSamples, "Number of subdivisions")
		trials      = flag.Int("trials", riemann.DefaultTrials, "Timed runs per kernel")
		a           = flag.Float64("a", riemann.DefaultLower, "Lower bound")
		b           = flag.Float64("b", riemann.DefaultUpper, "Upper bound")
		base        = flag.String("base", riemann.DefaultBaseline, "Baseline kernel")
		only        = flag.String("kernels", "", "Comma-separated kernels to run (default: all)")
		logDir      = flag.String("log-dir", "benchmark_logs", "Directory for session files")
		session     = flag.String("session", "riemann", "Session name")
		convergence = flag.Int("convergence", 0, "Also print a convergence study with this many doublings")
		cpuprofile  = flag.String("cpuprofile", "", "Write CPU profile to file")
		verbose     = flag.Bool("v", false, "Verbose output")
	)
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatalf("Failed to create CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("Failed to start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *n, *trials, *a, *b, *base, *only, *logDir, *session, *convergence, *verbose); err != nil {
		log.Printf("Benchmark failed: %v", err)
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func run(ctx context.Context, n, trials int, a, b float64, base, only, logDir, session string, doublings int, verbose bool) error {
	kernels, err := selectKernels(only)
	if err != nil {
		return err
	}
	if doublings > riemann.MaxDoublings {
		return riemann.NewInvalidArgError("run", fmt.Sprintf("-convergence must be at most %d", riemann.MaxDoublings))
	}

	cfg := riemann.DefaultHarnessConfig()
	cfg.Samples = n
	cfg.Trials = trials
	cfg.Lower = a
	cfg.Upper = b
	cfg.Baseline = base

	if verbose {
		v, _ := riemann.Version()
		fmt.Println("=== Riemann Benchmark ===")
		fmt.Printf("Date: %s\n", time.Now().Format(time.RFC3339))
		fmt.Printf("Go Version: %s\n", runtime.Version())
		fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
		fmt.Printf("CPU: %d cores\n", runtime.NumCPU())
		fmt.Printf("Module Version: %s\n", v)
		fmt.Println(riemann.GetCPUInfo())
		fmt.Printf("Accumulator lanes: %d\n", riemann.AccumulatorLanes())
		fmt.Printf("Workload: N=%d over [%g, %g], %d trials\n\n", n, a, b, trials)
	}

	h, err := riemann.NewHarness(cfg)
	if err != nil {
		return err
	}

	rec, err := riemann.NewRecorder(logDir, session, h.Config())
	if err != nil {
		return err
	}
	h.OnResult(func(r riemann.Result) {
		if err := rec.Record(r); err != nil {
			log.Printf("Failed to record %s: %v", r.Kernel, err)
		}
	})
	results, err := h.Run(ctx, kernels)
	if err != nil {
		return err
	}

	fmt.Println(riemann.FormatValue(results[0].Value, riemann.Exact(a, b)))
	if err := riemann.Report(os.Stdout, results); err != nil {
		return err
	}

	if verbose {
		riemann.PrintSessionSummary(os.Stdout, rec.Session())
	}
	fmt.Printf("\nSession saved to %s\n", rec.Path())

	if doublings > 0 {
		rows, err := riemann.ConvergenceStudy(a, b, 1000, doublings)
		if err != nil {
			return err
		}
		fmt.Println("\nConvergence:")
		riemann.PrintConvergence(os.Stdout, rows)
	}

	for _, r := range results {
		if r.Status == riemann.StatusFail {
			return riemann.NewNumericalError("Run", fmt.Sprintf("kernel %s disagrees with baseline", r.Kernel))
		}
	}
	return nil
}

func selectKernels(only string) ([]riemann.Kernel, error) {
	if only == "" {
		return riemann.Kernels(), nil
	}
	var ks []riemann.Kernel
	for _, name := range strings.Split(only, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		k, err := riemann.Lookup(name)
		if err != nil {
			return nil, err
		}
		ks = append(ks, k)
	}
	return ks, nil
}
