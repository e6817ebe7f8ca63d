// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import (
	"runtime"
	"sync"
)

// ParallelRange splits [0, n) into contiguous disjoint chunks, one
// per available processor, and runs fn on each chunk concurrently,
// blocking until every chunk completes. fn needs no internal
// synchronization as long as it only touches indices in [start, end).
func ParallelRange(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	if workers == 1 {
		fn(0, n)
		return
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}

// chunkCount returns the number of per-worker buffers to pass to
// runChunks(n, ...): every worker index runChunks hands out is below
// it, though rounding of the chunk size can leave some unused.
func chunkCount(n int) int {
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// runChunks is ParallelRange with the worker index threaded through,
// so fn can index into a per-worker buffer.
func runChunks(n, workers int, fn func(w, start, end int)) {
	if n <= 0 {
		return
	}
	if workers < 1 {
		workers = 1
	}
	if workers == 1 {
		fn(0, 0, n)
		return
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	w := 0
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			fn(w, start, end)
		}(w, start, end)
		w++
	}
	wg.Wait()
}
