// Copyright 2025 The go-lanes Authors. SPDX-License-Identifier: Apache-2.0

// Package workpool provides a persistent worker pool for partitioning
// large batch operations across goroutines. Partitions are contiguous,
// disjoint index ranges whose starts fall on a caller-chosen granule
// (normally the lane count), so no partition ever splits a lane group.
//
// Usage:
//
//	pool := workpool.New(0) // 0 = GOMAXPROCS, capped by LANES_WORKERS
//	defer pool.Close()
//
//	pool.Run(n, lane.MaxLanes[float32](), func(start, end int) {
//	    process(data[start:end])
//	})
package workpool

import (
	"os"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"

	"k8s.io/klog/v2"
)

// WorkersEnv caps the default worker count (the value used when New is
// called with workers <= 0). Explicit worker counts are never capped.
const WorkersEnv = "LANES_WORKERS"

// Pool is a persistent set of workers reused across many Run calls,
// avoiding per-call goroutine spawn overhead.
type Pool struct {
	workers   int
	workC     chan workItem
	closeOnce sync.Once
	closed    atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with the given number of workers, spawned
// immediately and persisting until Close. workers <= 0 selects
// GOMAXPROCS, or LANES_WORKERS when set to a positive integer.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
		if env := os.Getenv(WorkersEnv); env != "" {
			if k, err := strconv.Atoi(env); err == nil && k > 0 {
				workers = k
			}
		}
	}

	p := &Pool{
		workers: workers,
		workC:   make(chan workItem, workers*2),
	}
	for range workers {
		go p.worker()
	}
	klog.V(2).Infof("workpool: %d workers", workers)
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the pool's worker count.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Close shuts the pool down after pending work completes. Safe to call
// more than once; Run on a closed pool degrades to sequential execution.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Run splits [0, n) into one contiguous range per worker and blocks until
// every range has been processed. Every range start is a multiple of
// granule, so callers partitioning lane groups never see a split group;
// the final range absorbs the remainder. granule <= 0 means 1.
func (p *Pool) Run(n, granule int, fn func(start, end int)) {
	p.RunParts(n, granule, func(_, start, end int) { fn(start, end) })
}

// RunParts is Run with a stable partition index passed to fn. Partition
// indexes are dense in [0, NumWorkers()) and fixed for a given n, granule
// and pool size, so callers can combine per-partition results in a
// deterministic order.
func (p *Pool) RunParts(n, granule int, fn func(part, start, end int)) {
	if n <= 0 {
		return
	}
	if granule <= 0 {
		granule = 1
	}

	if p.closed.Load() {
		fn(0, 0, n)
		return
	}

	// One chunk per worker, rounded up to the granule. Workers that
	// would start past n are not dispatched.
	groups := (n + granule - 1) / granule
	workers := min(p.workers, groups)
	if workers <= 1 {
		fn(0, 0, n)
		return
	}
	chunk := (groups + workers - 1) / workers * granule

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		start := i * chunk
		if start >= n {
			wg.Done()
			continue
		}
		end := min(start+chunk, n)
		p.workC <- workItem{
			fn:      func() { fn(i, start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()
}
