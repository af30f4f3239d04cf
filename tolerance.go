// Package riemann tolerance-based verification for floating-point comparisons
package riemann

import (
	"fmt"
	"math"
)

// ToleranceConfig defines tolerance parameters for floating-point comparison
type ToleranceConfig struct {
	// AbsTol is the absolute tolerance for values near zero
	AbsTol float64

	// RelTol is the relative tolerance as a fraction of the larger value
	RelTol float64

	// ULPTol is the maximum allowed difference in ULPs (Units in Last Place)
	ULPTol int64

	// CheckNaN determines if NaN values should be considered equal
	CheckNaN bool

	// CheckInf determines if Inf values should be considered equal
	CheckInf bool
}

// DefaultTolerance is what kernels must meet against the baseline
func DefaultTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   DefaultAgreement,
		RelTol:   1e-9,
		ULPTol:   MaxULPDiff,
		CheckNaN: true,
		CheckInf: true,
	}
}

// StrictTolerance is for implementations that evaluate the same expressions
// in the same order as Integrate
func StrictTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   1e-14,
		RelTol:   1e-13,
		ULPTol:   1,
		CheckNaN: true,
		CheckInf: true,
	}
}

// Float64NearEqual checks if two float64 values are equal within tolerance
func Float64NearEqual(a, b float64, tol ToleranceConfig) bool {
	// Handle special cases
	if math.IsNaN(a) || math.IsNaN(b) {
		return tol.CheckNaN && math.IsNaN(a) && math.IsNaN(b)
	}

	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return tol.CheckInf && a == b
	}

	// Check if exactly equal (handles ±0)
	if a == b {
		return true
	}

	diff := math.Abs(a - b)

	if diff <= tol.AbsTol {
		return true
	}

	larger := math.Max(math.Abs(a), math.Abs(b))
	if diff <= larger*tol.RelTol {
		return true
	}

	if tol.ULPTol > 0 && Float64ULPDiff(a, b) <= tol.ULPTol {
		return true
	}

	return false
}

// Float64ULPDiff computes the difference in ULPs between two float64 values
func Float64ULPDiff(a, b float64) int64 {
	if a == b {
		return 0
	}

	aBits := math.Float64bits(a)
	bBits := math.Float64bits(b)

	// Different signs, can't use simple subtraction
	if (aBits^bBits)&(1<<63) != 0 {
		return math.MaxInt64
	}

	if aBits > bBits {
		return int64(aBits - bBits)
	}
	return int64(bBits - aBits)
}

// Agreement describes how far a value is from a reference
type Agreement struct {
	Reference float64
	Value     float64
	AbsError  float64
	RelError  float64
	ULPError  int64
	Within    bool
}

// Compare measures value against reference under tol
func Compare(reference, value float64, tol ToleranceConfig) Agreement {
	ag := Agreement{
		Reference: reference,
		Value:     value,
		AbsError:  math.Abs(reference - value),
		ULPError:  Float64ULPDiff(reference, value),
		Within:    Float64NearEqual(reference, value, tol),
	}
	if reference != 0 {
		ag.RelError = ag.AbsError / math.Abs(reference)
	}
	return ag
}

// String formats the agreement for display
func (ag Agreement) String() string {
	status := "PASS"
	if !ag.Within {
		status = "FAIL"
	}
	return fmt.Sprintf("%s: value %.12g vs reference %.12g (abs %.3e, rel %.3e, ulp %d)",
		status, ag.Value, ag.Reference, ag.AbsError, ag.RelError, ag.ULPError)
}
