package riemann

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/integrate"

	"github.com/LynnColeArt/riemann/compute/f64"
)

// MaxDoublings bounds ConvergenceStudy so the largest grid stays at a few
// hundred million points for the default starting n.
const MaxDoublings = 20

// ConvergenceRow compares the left rule with the trapezoidal rule at one n
type ConvergenceRow struct {
	N         int
	Left      float64
	LeftError float64
	LeftRatio float64 // previous row's error / this row's error
	Trap      float64
	TrapError float64
	TrapRatio float64
}

// ConvergenceStudy evaluates both rules on [a, b] for n, 2n, 4n, ... doubling
// steps times. A ratio near 2 between successive errors means first-order
// convergence, near 4 means second order. The left rule is first order in
// general but picks up a second-order rate when f(a) == f(b), as on [0, π/2].
func ConvergenceStudy(a, b float64, n, doublings int) ([]ConvergenceRow, error) {
	if n < 1 {
		return nil, ErrInvalidSamples
	}
	if doublings < 0 || doublings > MaxDoublings {
		return nil, NewInvalidArgError("ConvergenceStudy",
			fmt.Sprintf("doublings must be between 0 and %d", MaxDoublings))
	}

	exact := Exact(a, b)
	rows := make([]ConvergenceRow, 0, doublings+1)
	for k := 0; k <= doublings; k++ {
		m := n << k
		left, err := Integrate(a, b, m)
		if err != nil {
			return nil, err
		}
		trap := trapezoid(a, b, m)

		row := ConvergenceRow{
			N:         m,
			Left:      left,
			LeftError: math.Abs(left - exact),
			Trap:      trap,
			TrapError: math.Abs(trap - exact),
		}
		if k > 0 {
			prev := rows[k-1]
			row.LeftRatio = ratio(prev.LeftError, row.LeftError)
			row.TrapRatio = ratio(prev.TrapError, row.TrapError)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func ratio(prev, cur float64) float64 {
	if cur == 0 {
		return math.Inf(1)
	}
	return prev / cur
}

// trapezoid samples sin(x)cos(x) on the n+1 grid points and hands them to
// gonum's trapezoidal rule.
func trapezoid(a, b float64, n int) float64 {
	dx := (b - a) / float64(n)
	x := make([]float64, n+1)
	f64.LeftEndpoints(x, a, dx, 0)
	x[n] = b
	f := make([]float64, n+1)
	for i, v := range x {
		f[i] = SinCos(v)
	}
	if b < a {
		// gonum requires ascending abscissae
		for i, j := 0, n; i < j; i, j = i+1, j-1 {
			x[i], x[j] = x[j], x[i]
			f[i], f[j] = f[j], f[i]
		}
		return -integrate.Trapezoidal(x, f)
	}
	return integrate.Trapezoidal(x, f)
}

// PrintConvergence writes the study as a table
func PrintConvergence(w io.Writer, rows []ConvergenceRow) {
	fmt.Fprintf(w, "%10s %14s %10s %14s %10s\n", "N", "left error", "ratio", "trap error", "ratio")
	for i, r := range rows {
		if i == 0 {
			fmt.Fprintf(w, "%10d %14.6e %10s %14.6e %10s\n", r.N, r.LeftError, "-", r.TrapError, "-")
			continue
		}
		fmt.Fprintf(w, "%10d %14.6e %10.3f %14.6e %10.3f\n", r.N, r.LeftError, r.LeftRatio, r.TrapError, r.TrapRatio)
	}
}
