package riemann

import (
	"sync/atomic"
	"testing"
)

func TestWorkerPoolSubmit(t *testing.T) {
	pool := NewWorkerPool(4)
	if pool.Workers() != 4 {
		t.Fatalf("expected 4 workers, got %d", pool.Workers())
	}

	var count atomic.Int64
	for i := 0; i < 100; i++ {
		pool.Submit(func() { count.Add(1) })
	}
	pool.Close()

	if got := count.Load(); got != 100 {
		t.Errorf("expected 100 tasks to run, got %d", got)
	}
}

func TestWorkerPoolDefaultSize(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Close()
	if pool.Workers() < 1 {
		t.Errorf("expected at least one worker, got %d", pool.Workers())
	}
}

func TestParallelSum(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	cases := []struct {
		name string
		n    int
	}{
		{"empty", 0},
		{"fewer items than workers", 2},
		{"uneven split", 10},
		{"large", 100000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var calls atomic.Int64
			got := pool.ParallelSum(tc.n, func(lo, hi int) float64 {
				calls.Add(1)
				s := 0.0
				for i := lo; i < hi; i++ {
					s += float64(i)
				}
				return s
			})
			want := float64(tc.n) * float64(tc.n-1) / 2
			if tc.n == 0 {
				want = 0
			}
			if got != want {
				t.Errorf("ParallelSum(%d) = %v, want %v", tc.n, got, want)
			}
			if c := calls.Load(); c > 3 {
				t.Errorf("expected at most 3 chunks, got %d", c)
			}
		})
	}
}

func TestParallelSumDeterministic(t *testing.T) {
	pool := NewWorkerPool(8)
	defer pool.Close()

	fn := func(lo, hi int) float64 {
		s := 0.0
		for i := lo; i < hi; i++ {
			s += 1.0 / float64(i+1)
		}
		return s
	}
	first := pool.ParallelSum(1<<16, fn)
	for i := 0; i < 10; i++ {
		if got := pool.ParallelSum(1<<16, fn); got != first {
			t.Fatalf("run %d: %v != %v", i, got, first)
		}
	}
}
