package riemann

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"
)

// Comparison status values
const (
	ComparePass   = "PASS"
	CompareFail   = "FAIL"
	CompareSlower = "SLOWER"
	CompareFaster = "FASTER"
)

// fasterThreshold is the speedup above which a kernel is reported as faster
const fasterThreshold = 1.2

// ComparisonResult describes how one kernel moved between two sessions
type ComparisonResult struct {
	Kernel string
	Status string

	BaselineDuration time.Duration
	CurrentDuration  time.Duration
	SpeedupFactor    float64

	ValueDiff float64
	Message   string
}

// CompareSessions matches kernels by name. A kernel missing from current or
// whose value moved by more than tolerance fails; otherwise it is SLOWER
// when its minimum time grew by more than perfRegress, FASTER when it shrank
// by more than 20%, and PASS in between.
func CompareSessions(baseline, current Session, tolerance, perfRegress float64) []ComparisonResult {
	currentMap := make(map[string]Result, len(current.Results))
	for _, r := range current.Results {
		currentMap[r.Kernel] = r
	}

	comparisons := make([]ComparisonResult, 0, len(baseline.Results))
	for _, base := range baseline.Results {
		comp := ComparisonResult{
			Kernel:           base.Kernel,
			BaselineDuration: base.Min,
		}

		curr, ok := currentMap[base.Kernel]
		if !ok {
			comp.Status = CompareFail
			comp.Message = "kernel missing in current results"
			comparisons = append(comparisons, comp)
			continue
		}

		comp.CurrentDuration = curr.Min
		if curr.Min > 0 {
			comp.SpeedupFactor = float64(base.Min) / float64(curr.Min)
		}
		comp.ValueDiff = math.Abs(base.Value - curr.Value)

		switch {
		case comp.ValueDiff > tolerance || math.IsNaN(comp.ValueDiff):
			comp.Status = CompareFail
			comp.Message = fmt.Sprintf("numerical difference %.3e", comp.ValueDiff)
		case curr.Status == StatusFail:
			comp.Status = CompareFail
			comp.Message = "kernel disagreed with its baseline"
		case comp.SpeedupFactor > 0 && comp.SpeedupFactor < 1.0/perfRegress:
			comp.Status = CompareSlower
			comp.Message = fmt.Sprintf("performance regression: %.2fx slower", 1.0/comp.SpeedupFactor)
		case comp.SpeedupFactor > fasterThreshold:
			comp.Status = CompareFaster
			comp.Message = fmt.Sprintf("performance improvement: %.2fx faster", comp.SpeedupFactor)
		default:
			comp.Status = ComparePass
		}
		comparisons = append(comparisons, comp)
	}
	return comparisons
}

// HasFailures reports whether any comparison failed
func HasFailures(comparisons []ComparisonResult) bool {
	for _, c := range comparisons {
		if c.Status == CompareFail {
			return true
		}
	}
	return false
}

// PrintComparison writes a human-readable comparison report
func PrintComparison(w io.Writer, comparisons []ComparisonResult) {
	fmt.Fprintln(w, "=== Riemann Session Comparison ===")
	fmt.Fprintln(w)

	statusCount := make(map[string]int)
	for _, comp := range comparisons {
		statusCount[comp.Status]++
	}

	fmt.Fprintf(w, "Total kernels: %d\n", len(comparisons))
	for _, s := range []string{ComparePass, CompareFail, CompareSlower, CompareFaster} {
		fmt.Fprintf(w, "  %-7s %d\n", s+":", statusCount[s])
	}
	fmt.Fprintln(w)

	if statusCount[CompareFail] > 0 {
		fmt.Fprintln(w, "FAILURES:")
		for _, comp := range comparisons {
			if comp.Status == CompareFail {
				fmt.Fprintf(w, "  %s: %s\n", comp.Kernel, comp.Message)
			}
		}
		fmt.Fprintln(w)
	}

	if statusCount[CompareSlower] > 0 || statusCount[CompareFaster] > 0 {
		fmt.Fprintln(w, "PERFORMANCE CHANGES:")
		for _, comp := range comparisons {
			if comp.Status == CompareSlower || comp.Status == CompareFaster {
				fmt.Fprintf(w, "  %s: %s (%.3fms -> %.3fms)\n",
					comp.Kernel, comp.Message,
					Milliseconds(comp.BaselineDuration),
					Milliseconds(comp.CurrentDuration))
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "DETAILED RESULTS:")
	fmt.Fprintf(w, "%-14s %-7s %12s %12s %8s %12s\n",
		"Kernel", "Status", "Baseline", "Current", "Speedup", "Value Δ")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for _, comp := range comparisons {
		fmt.Fprintf(w, "%-14s %-7s %12.3f %12.3f %8.2f %12.2e\n",
			comp.Kernel,
			comp.Status,
			Milliseconds(comp.BaselineDuration),
			Milliseconds(comp.CurrentDuration),
			comp.SpeedupFactor,
			comp.ValueDiff)
	}
}
