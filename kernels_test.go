package riemann

import (
	"fmt"
	"math"
	"testing"
)

func TestKernelsAgreeWithIntegrate(t *testing.T) {
	workloads := []struct {
		a, b float64
		n    int
	}{
		{0, math.Pi / 2, 1},
		{0, math.Pi / 2, 7},
		{0, math.Pi / 2, VectorBlockSize + 3},
		{0, math.Pi / 2, ParallelThreshold + 17},
		{0, math.Pi / 2, DefaultSamples},
		{-1, 2, 12345},
		{0, math.Pi, 100000},
	}

	for _, k := range Kernels() {
		for _, w := range workloads {
			t.Run(fmt.Sprintf("%s/N_%d", k.Name, w.n), func(t *testing.T) {
				want, err := Integrate(w.a, w.b, w.n)
				if err != nil {
					t.Fatal(err)
				}
				got, err := k.Integrate(w.a, w.b, w.n)
				if err != nil {
					t.Fatal(err)
				}
				tol := DefaultTolerance()
				if k.Name == "typed" {
					// same loop as Integrate
					tol = StrictTolerance()
				}
				if !Float64NearEqual(want, got, tol) {
					t.Errorf("%s(%g, %g, %d) = %.16f, Integrate = %.16f", k.Name, w.a, w.b, w.n, got, want)
				}
			})
		}
	}
}

func TestKernelsZeroWidth(t *testing.T) {
	for _, k := range Kernels() {
		got, err := k.Integrate(0.75, 0.75, 1000)
		if err != nil {
			t.Fatal(err)
		}
		if got != 0 {
			t.Errorf("%s: zero-width interval gave %v", k.Name, got)
		}
	}
}

func TestKernelsRejectBadSampleCount(t *testing.T) {
	for _, k := range Kernels() {
		if _, err := k.Integrate(0, 1, 0); err != ErrInvalidSamples {
			t.Errorf("%s: expected ErrInvalidSamples, got %v", k.Name, err)
		}
	}
}

func TestKernelOrder(t *testing.T) {
	want := []string{"interpreted", "vectorized", "typed", "sincos", "native", "parallel"}
	ks := Kernels()
	if len(ks) != len(want) {
		t.Fatalf("expected %d kernels, got %d", len(want), len(ks))
	}
	for i, k := range ks {
		if k.Name != want[i] {
			t.Errorf("kernel %d: expected %s, got %s", i, want[i], k.Name)
		}
		if k.Description == "" {
			t.Errorf("kernel %s has no description", k.Name)
		}
	}
	if ks[0].Name != DefaultBaseline {
		t.Errorf("first kernel %s is not the default baseline %s", ks[0].Name, DefaultBaseline)
	}

	// Kernels returns a copy
	ks[0].Name = "mutated"
	if Kernels()[0].Name != DefaultBaseline {
		t.Error("mutating the returned slice changed the registry")
	}
}

func TestLookup(t *testing.T) {
	k, err := Lookup("sincos")
	if err != nil {
		t.Fatal(err)
	}
	if k.Name != "sincos" {
		t.Errorf("Lookup returned %s", k.Name)
	}

	_, err = Lookup("simd8")
	if err == nil {
		t.Fatal("expected error for unknown kernel")
	}
	if !IsNotFoundError(err) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestInterpretedMatchesTyped(t *testing.T) {
	// Same expression in the same order; only fused multiply-adds may differ.
	a, b, n := 0.0, math.Pi/2, 4096
	x := integrateInterpreted(a, b, n)
	y := integrateTyped(a, b, n)
	if !Float64NearEqual(x, y, ToleranceConfig{AbsTol: 1e-12}) {
		t.Errorf("interpreted %.17g != typed %.17g", x, y)
	}
}

func BenchmarkKernels(b *testing.B) {
	for _, k := range Kernels() {
		b.Run(k.Name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				k.Func(DefaultLower, DefaultUpper, DefaultSamples)
			}
		})
	}
}
