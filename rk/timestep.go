// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rk

import (
	"sync"

	"github.com/cpmech/demon/cloud"
	"github.com/cpmech/demon/force"
)

// ModifyTimestep scans every distinct particle pair: while any pair's
// separation is <= d, both d and tau are divided by 10 and the cloud
// is re-scanned at the stricter d. Each call starts from the fixed
// reference d0, so the step recovers to initDt once every pair
// separates beyond d0 again. The scan is parallelized over i; a mutex
// guards the recheck-then-reduce so concurrent triggers never divide
// twice for one violation.
func ModifyTimestep(c *cloud.Cloud, d0, initDt float64) (d, tau float64) {
	d, tau = d0, initDt
	n := c.Len()
	dim := c.Dim()
	if n < 2 {
		return d, tau
	}
	var mu sync.Mutex
	for {
		reduced := false
		force.ParallelRange(n, func(start, end int) {
			for i := start; i < end; i++ {
				for j := i + 1; j < n; j++ {
					r2 := 0.0
					for a := 0; a < dim; a++ {
						delta := c.Position(a)[i] - c.Position(a)[j]
						r2 += delta * delta
					}
					mu.Lock()
					if r2 <= d*d {
						d /= 10
						tau /= 10
						reduced = true
					}
					mu.Unlock()
				}
			}
		})
		if !reduced {
			return d, tau
		}
	}
}
