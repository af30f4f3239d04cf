// Package riemann configuration constants
package riemann

import "math"

// Default workload, matching the reference demonstration
const (
	// Number of subdivisions used by the benchmark harness
	DefaultSamples = 500000

	// Lower integration bound
	DefaultLower = 0.0

	// Upper integration bound (π/2)
	DefaultUpper = math.Pi / 2

	// Exact value of ∫ sin(x)cos(x) dx over [0, π/2]
	ExactValue = 0.5
)

// Harness parameters
const (
	// Timed runs per kernel; the minimum is reported
	DefaultTrials = 5

	// Kernel every speedup is measured against
	DefaultBaseline = "interpreted"

	// Absolute agreement required between a kernel and the baseline
	DefaultAgreement = 1e-9
)

// Kernel tuning parameters
const (
	// Grid points materialised at once by the vectorized kernel. The grid
	// and its sin and cos scratch slices (3 × 8 bytes per point) stay in L2.
	VectorBlockSize = L2CacheSize / 64

	// Below this many samples the parallel kernel runs on one goroutine
	ParallelThreshold = 1 << 14
)

// L2 cache size per core (typical for modern CPUs)
const L2CacheSize = 256 * 1024 // 256KB

// Maximum ULP difference for float64 comparisons
const MaxULPDiff = 4
