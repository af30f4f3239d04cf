package riemann

import "math"

// Integrand is a real function of one variable
type Integrand func(x float64) float64

// SinCos is the integrand sin(x)·cos(x)
func SinCos(x float64) float64 {
	return math.Sin(x) * math.Cos(x)
}

// Integrate approximates ∫_a^b sin(x)cos(x) dx with a left-endpoint Riemann
// sum over n subdivisions:
//
//	dx = (b-a)/n
//	s  = Σ_{i=0}^{n-1} sin(a+i·dx)·cos(a+i·dx)
//	result = s·dx
//
// The left rule has O(1/n) error. n must be at least 1; a smaller n is
// rejected with ErrInvalidSamples before any division takes place.
// a == b yields 0 and a > b yields the negated integral.
func Integrate(a, b float64, n int) (float64, error) {
	if n < 1 {
		return 0, ErrInvalidSamples
	}
	dx := (b - a) / float64(n)
	s := 0.0
	for i := 0; i < n; i++ {
		x := a + float64(i)*dx
		s += math.Sin(x) * math.Cos(x)
	}
	return s * dx, nil
}

// IntegrateFunc applies the same left-endpoint rule to an arbitrary integrand.
func IntegrateFunc(f Integrand, a, b float64, n int) (float64, error) {
	if n < 1 {
		return 0, ErrInvalidSamples
	}
	if f == nil {
		return 0, NewInvalidArgError("IntegrateFunc", "nil integrand")
	}
	dx := (b - a) / float64(n)
	s := 0.0
	for i := 0; i < n; i++ {
		s += f(a + float64(i)*dx)
	}
	return s * dx, nil
}
