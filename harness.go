package riemann

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Result status values
const (
	StatusPass = "pass"
	StatusFail = "fail"
)

// Exact returns the closed form ∫_a^b sin(x)cos(x) dx = (sin²b - sin²a)/2
func Exact(a, b float64) float64 {
	sa, sb := math.Sin(a), math.Sin(b)
	return (sb*sb - sa*sa) / 2
}

// HarnessConfig controls a benchmark run
type HarnessConfig struct {
	Samples   int
	Trials    int
	Lower     float64
	Upper     float64
	Baseline  string
	Tolerance ToleranceConfig

	// OnResult, if set, is called as soon as each kernel finishes
	OnResult func(Result)
}

// DefaultHarnessConfig returns the reference workload: N=500000 over [0, π/2]
func DefaultHarnessConfig() HarnessConfig {
	return HarnessConfig{
		Samples:   DefaultSamples,
		Trials:    DefaultTrials,
		Lower:     DefaultLower,
		Upper:     DefaultUpper,
		Baseline:  DefaultBaseline,
		Tolerance: DefaultTolerance(),
	}
}

// Result captures the timing and accuracy of one kernel
type Result struct {
	Kernel   string        `json:"kernel"`
	Status   string        `json:"status"`
	Value    float64       `json:"value"`
	Trials   int           `json:"trials"`
	Min      time.Duration `json:"min_ns"`
	Mean     time.Duration `json:"mean_ns"`
	StdDev   time.Duration `json:"stddev_ns"`
	Speedup  float64       `json:"speedup"`
	AbsError float64       `json:"abs_error"` // against the closed form
	Drift    float64       `json:"drift"`     // against the baseline value
}

// Harness times kernels against a baseline
type Harness struct {
	cfg HarnessConfig
}

// Validate checks the workload parameters
func (cfg HarnessConfig) Validate() error {
	if cfg.Samples < 1 {
		return ErrInvalidSamples
	}
	if cfg.Trials < 1 {
		return ErrInvalidTrials
	}
	return nil
}

// NewHarness validates cfg and returns a harness
func NewHarness(cfg HarnessConfig) (*Harness, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Baseline == "" {
		cfg.Baseline = DefaultBaseline
	}
	if cfg.Tolerance == (ToleranceConfig{}) {
		cfg.Tolerance = DefaultTolerance()
	}
	return &Harness{cfg: cfg}, nil
}

// OnResult replaces the per-result callback
func (h *Harness) OnResult(fn func(Result)) {
	h.cfg.OnResult = fn
}

// Config returns the effective configuration
func (h *Harness) Config() HarnessConfig {
	return h.cfg
}

// Run times each kernel and returns one result per kernel, baseline first.
// The baseline is added to the run when ks does not contain it.
func (h *Harness) Run(ctx context.Context, ks []Kernel) ([]Result, error) {
	if len(ks) == 0 {
		return nil, ErrNoKernels
	}

	ordered, err := h.withBaseline(ks)
	if err != nil {
		return nil, err
	}

	exact := Exact(h.cfg.Lower, h.cfg.Upper)
	results := make([]Result, 0, len(ordered))
	var base Result
	for i, k := range ordered {
		r, err := h.measure(ctx, k)
		if err != nil {
			return results, err
		}
		r.AbsError = math.Abs(r.Value - exact)
		if i == 0 {
			base = r
		}
		r.Drift = math.Abs(r.Value - base.Value)
		r.Speedup = speedup(base.Min, r.Min)
		r.Status = StatusPass
		if !Float64NearEqual(base.Value, r.Value, h.cfg.Tolerance) {
			r.Status = StatusFail
		}
		results = append(results, r)
		if h.cfg.OnResult != nil {
			h.cfg.OnResult(r)
		}
	}
	return results, nil
}

func (h *Harness) withBaseline(ks []Kernel) ([]Kernel, error) {
	ordered := make([]Kernel, 0, len(ks)+1)
	for _, k := range ks {
		if k.Name == h.cfg.Baseline {
			ordered = append(ordered, k)
		}
	}
	if len(ordered) == 0 {
		base, err := Lookup(h.cfg.Baseline)
		if err != nil {
			return nil, err
		}
		ordered = append(ordered, base)
	}
	for _, k := range ks {
		if k.Name != h.cfg.Baseline {
			ordered = append(ordered, k)
		}
	}
	return ordered, nil
}

func (h *Harness) measure(ctx context.Context, k Kernel) (Result, error) {
	if k.Func == nil {
		return Result{}, NewInvalidArgError("Run", fmt.Sprintf("kernel %q has no function", k.Name))
	}
	times := make([]float64, h.cfg.Trials)
	var value float64
	for t := 0; t < h.cfg.Trials; t++ {
		if err := ctx.Err(); err != nil {
			return Result{}, NewExecutionError("Run", fmt.Sprintf("cancelled while timing %s", k.Name), err)
		}
		start := time.Now()
		value = k.Func(h.cfg.Lower, h.cfg.Upper, h.cfg.Samples)
		times[t] = float64(time.Since(start))
	}

	r := Result{
		Kernel: k.Name,
		Value:  value,
		Trials: h.cfg.Trials,
		Min:    time.Duration(floats.Min(times)),
		Mean:   time.Duration(stat.Mean(times, nil)),
	}
	if len(times) > 1 {
		r.StdDev = time.Duration(stat.StdDev(times, nil))
	}
	return r, nil
}

// speedup returns base/cur. Two zero timings are treated as equal; a zero
// current timing against a measurable base has no finite ratio and yields 0.
func speedup(base, cur time.Duration) float64 {
	switch {
	case cur > 0:
		return float64(base) / float64(cur)
	case base == 0:
		return 1
	default:
		return 0
	}
}

// Milliseconds converts a duration to fractional milliseconds
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// FormatResult renders "<label>: <ms> ms (<ratio>x faster than base)".
// A result without a usable ratio is rendered with "n/a" in its place.
func FormatResult(r Result) string {
	if r.Speedup <= 0 {
		return fmt.Sprintf("%s: %.3f ms (n/a faster than base)", r.Kernel, Milliseconds(r.Min))
	}
	return fmt.Sprintf("%s: %.3f ms (%.2fx faster than base)", r.Kernel, Milliseconds(r.Min), r.Speedup)
}

// FormatValue renders the integration result line
func FormatValue(x, want float64) string {
	return fmt.Sprintf("integration returns %.4f (the answer is %.4f)", x, want)
}

// Report writes one comparison line per result and flags disagreeing kernels
func Report(w io.Writer, results []Result) error {
	for _, r := range results {
		line := FormatResult(r)
		if r.Status == StatusFail {
			line += fmt.Sprintf(" MISMATCH: drift %.3e", r.Drift)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
