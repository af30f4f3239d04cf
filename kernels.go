package riemann

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/LynnColeArt/riemann/compute/f64"
)

// KernelFunc computes the left-endpoint sum of sin(x)cos(x) over [a, b] with
// n subdivisions. Kernel functions assume n >= 1.
type KernelFunc func(a, b float64, n int) float64

// Kernel is one named implementation of the integral
type Kernel struct {
	Name        string
	Description string
	Func        KernelFunc
}

// Integrate runs the kernel after validating n
func (k Kernel) Integrate(a, b float64, n int) (float64, error) {
	if n < 1 {
		return 0, ErrInvalidSamples
	}
	return k.Func(a, b, n), nil
}

// Kernels are listed from slowest to fastest; the first one is the baseline.
var kernels = []Kernel{
	{
		Name:        "interpreted",
		Description: "boxed values and an indirect integrand call per sample",
		Func:        integrateInterpreted,
	},
	{
		Name:        "vectorized",
		Description: "block-wise grid, element-wise sin and cos, gonum reduction",
		Func:        integrateVectorized,
	},
	{
		Name:        "typed",
		Description: "concrete float64 loop with math.Sin and math.Cos",
		Func:        integrateTyped,
	},
	{
		Name:        "sincos",
		Description: "one math.Sincos call per sample",
		Func:        integrateSincos,
	},
	{
		Name:        "native",
		Description: "math.Sincos with one accumulator per vector lane",
		Func:        integrateNative,
	},
	{
		Name:        "parallel",
		Description: "native kernel split across a worker pool",
		Func:        integrateParallel,
	},
}

// Kernels returns every registered kernel in benchmark order
func Kernels() []Kernel {
	out := make([]Kernel, len(kernels))
	copy(out, kernels)
	return out
}

// Lookup finds a kernel by name
func Lookup(name string) (Kernel, error) {
	for _, k := range kernels {
		if k.Name == name {
			return k, nil
		}
	}
	return Kernel{}, NewNotFoundError("Lookup", fmt.Sprintf("unknown kernel %q", name))
}

// integrateInterpreted keeps every value behind an interface, so each step
// pays for type assertions, allocation and an indirect call.
func integrateInterpreted(a, b float64, n int) float64 {
	var f any = Integrand(SinCos)
	var dx any = (b - a) / float64(n)
	var s any = 0.0
	for i := 0; i < n; i++ {
		var x any = a + float64(i)*dx.(float64)
		s = s.(float64) + f.(Integrand)(x.(float64))
	}
	return s.(float64) * dx.(float64)
}

func integrateVectorized(a, b float64, n int) float64 {
	dx := (b - a) / float64(n)
	size := min(n, VectorBlockSize)
	x := make([]float64, size)
	sn := make([]float64, size)
	cs := make([]float64, size)

	s := 0.0
	for off := 0; off < n; off += size {
		m := min(size, n-off)
		f64.LeftEndpoints(x[:m], a, dx, off)
		s += f64.SinCosProductSum(x[:m], sn[:m], cs[:m])
	}
	return s * dx
}

func integrateTyped(a, b float64, n int) float64 {
	dx := (b - a) / float64(n)
	s := 0.0
	for i := 0; i < n; i++ {
		x := a + float64(i)*dx
		s += math.Sin(x) * math.Cos(x)
	}
	return s * dx
}

func integrateSincos(a, b float64, n int) float64 {
	dx := (b - a) / float64(n)
	return f64.SinCosSum(a, dx, 0, n) * dx
}

func integrateNative(a, b float64, n int) float64 {
	dx := (b - a) / float64(n)
	return f64.SinCosSumLanes(a, dx, 0, n, AccumulatorLanes()) * dx
}

var (
	sharedPoolOnce sync.Once
	sharedPool     *WorkerPool
)

// kernelPool returns the process-wide pool used by the parallel kernel
func kernelPool() *WorkerPool {
	sharedPoolOnce.Do(func() {
		sharedPool = NewWorkerPool(runtime.NumCPU())
	})
	return sharedPool
}

func integrateParallel(a, b float64, n int) float64 {
	dx := (b - a) / float64(n)
	lanes := AccumulatorLanes()
	if n < ParallelThreshold {
		return f64.SinCosSumLanes(a, dx, 0, n, lanes) * dx
	}
	s := kernelPool().ParallelSum(n, func(lo, hi int) float64 {
		return f64.SinCosSumLanes(a, dx, lo, hi, lanes)
	})
	return s * dx
}
