package riemann

import (
	"runtime"
	"sync"
)

// WorkerPool manages a pool of worker goroutines for kernel execution
type WorkerPool struct {
	workers int
	tasks   chan func()
	wg      sync.WaitGroup
}

// NewWorkerPool creates a new worker pool
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		workers: workers,
		tasks:   make(chan func(), workers*2),
	}

	// Start workers
	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}

	return pool
}

// Workers returns the number of goroutines in the pool
func (wp *WorkerPool) Workers() int {
	return wp.workers
}

// worker processes tasks from the queue
func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.tasks {
		task()
	}
}

// Submit adds a task to the pool
func (wp *WorkerPool) Submit(task func()) {
	wp.tasks <- task
}

// Close shuts down the worker pool
func (wp *WorkerPool) Close() {
	close(wp.tasks)
	wp.wg.Wait()
}

// ParallelSum splits [0, n) into one contiguous chunk per worker, runs fn on
// each chunk and adds the partial results in chunk order. The result only
// depends on n and the pool size, never on scheduling.
func (wp *WorkerPool) ParallelSum(n int, fn func(lo, hi int) float64) float64 {
	if n <= 0 {
		return 0
	}
	chunks := wp.workers
	if chunks > n {
		chunks = n
	}
	per := (n + chunks - 1) / chunks
	partial := make([]float64, chunks)

	var wg sync.WaitGroup
	wg.Add(chunks)
	for c := 0; c < chunks; c++ {
		c := c
		lo := c * per
		hi := lo + per
		if hi > n {
			hi = n
		}
		wp.Submit(func() {
			defer wg.Done()
			if lo < hi {
				partial[c] = fn(lo, hi)
			}
		})
	}
	wg.Wait()

	s := 0.0
	for _, p := range partial {
		s += p
	}
	return s
}
