package riemann

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// CPUFeatures tracks available CPU instruction set extensions
type CPUFeatures struct {
	HasSSE4    bool
	HasAVX     bool
	HasAVX2    bool
	HasFMA     bool
	HasAVX512F bool // Foundation
	HasASIMD   bool // arm64 NEON
	HasSVE     bool
}

// Global CPU feature detection
var cpuFeatures CPUFeatures

func init() {
	detectCPUFeatures()
}

// detectCPUFeatures populates the global cpuFeatures struct
func detectCPUFeatures() {
	cpuFeatures = CPUFeatures{
		HasSSE4:    cpu.X86.HasSSE41 || cpu.X86.HasSSE42,
		HasAVX:     cpu.X86.HasAVX,
		HasAVX2:    cpu.X86.HasAVX2,
		HasFMA:     cpu.X86.HasFMA,
		HasAVX512F: cpu.X86.HasAVX512F,
		HasASIMD:   runtime.GOARCH == "arm64" && cpu.ARM64.HasASIMD,
		HasSVE:     runtime.GOARCH == "arm64" && cpu.ARM64.HasSVE,
	}
}

// DetectedFeatures returns the features found at start-up
func DetectedFeatures() CPUFeatures {
	return cpuFeatures
}

// Lanes returns the number of float64 values one vector register holds.
// The native kernel keeps one independent accumulator per lane so the
// additions can retire in parallel.
func (f CPUFeatures) Lanes() int {
	switch {
	case f.HasAVX512F:
		return 8
	case f.HasAVX2, f.HasAVX:
		return 4
	case f.HasSSE4, f.HasASIMD, f.HasSVE:
		return 2
	default:
		return 1
	}
}

// AccumulatorLanes returns the lane count for the host CPU
func AccumulatorLanes() int {
	return cpuFeatures.Lanes()
}

// GetCPUInfo returns a string describing available CPU features
func GetCPUInfo() string {
	return cpuFeatures.String()
}

func (f CPUFeatures) String() string {
	features := []string{}

	if f.HasSSE4 {
		features = append(features, "SSE4")
	}
	if f.HasAVX {
		features = append(features, "AVX")
	}
	if f.HasAVX2 {
		features = append(features, "AVX2")
	}
	if f.HasFMA {
		features = append(features, "FMA")
	}
	if f.HasAVX512F {
		features = append(features, "AVX512F")
	}
	if f.HasASIMD {
		features = append(features, "ASIMD")
	}
	if f.HasSVE {
		features = append(features, "SVE")
	}

	if len(features) == 0 {
		return "No SIMD extensions detected"
	}
	return "CPU features: " + strings.Join(features, ", ")
}
