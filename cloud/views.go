// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cloud

// viewCoef holds the view coefficients: view k of coordinate A is
// A + viewCoef[k-1]*slope[k-2](A), with the zeroth slope taken as 0.
var viewCoef = [4]float64{0, 0.5, 0.5, 1.0}

// ViewPosition returns the substep-k view of axis a's position for
// particle i: the value force kernels read while evaluating RK4 stage
// k. Views are computed from the base array and the (k-1)-th slope
// band on every call; no per-substep cache is kept.
func (c *Cloud) ViewPosition(a, k, i int) float64 {
	if k == 1 {
		return c.pos[a][i]
	}
	return c.pos[a][i] + viewCoef[k-1]*c.posSlope[a][k-2][i]
}

// ViewVelocity returns the substep-k view of axis a's velocity for
// particle i, analogous to ViewPosition.
func (c *Cloud) ViewVelocity(a, k, i int) float64 {
	if k == 1 {
		return c.vel[a][i]
	}
	return c.vel[a][i] + viewCoef[k-1]*c.velSlope[a][k-2][i]
}

// ViewPositionRev is the partner-side read used by the Coulomb pair
// loop. Kernels read one particle per iteration, so there is no lane
// to reverse and it returns exactly ViewPosition.
func (c *Cloud) ViewPositionRev(a, k, i int) float64 { return c.ViewPosition(a, k, i) }
