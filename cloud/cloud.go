// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cloud holds the particle state shared by the force kernels
// and the integrator: a struct-of-arrays over N particles with
// positions, velocities, mass, charge, a transient force accumulator,
// and four RK4 slope bands per axis.
package cloud

import "github.com/cpmech/demon/config"

// LaneWidth is the multiple to which per-particle arrays are padded.
// Kernels and the parallel chunk splitter step one particle at a time
// and do not stride by it.
const LaneWidth = 2

// Cloud is the sole owner of every per-particle array. Kernels and the
// integrator hold a non-owning *Cloud: kernels write only to the force
// accumulator, and the integrator writes the slope bands and advances
// positions and velocities. Neither reassigns or resizes its arrays.
type Cloud struct {
	n         int // logical particle count, as requested by New
	padded    int // n rounded up to a multiple of LaneWidth; array length
	dim       int // 1, 2, or 3
	cloudSize float64

	// current position/velocity per axis; axis slices beyond dim are nil.
	pos [3][]float64
	vel [3][]float64

	mass   []float64
	charge []float64

	// force accumulator per axis; zeroed after each substep's slope capture.
	force [3][]float64

	// velSlope[axis][k-1] and posSlope[axis][k-1] hold the four RK4
	// slope bands per axis.
	velSlope [3][4][]float64
	posSlope [3][4][]float64
}

// New allocates a Cloud for n particles in the given dimension.
// Per-particle arrays are over-allocated to the next multiple of
// LaneWidth; Len and the per-particle loops of kernels and the
// integrator stop at the logical n (ZeroForce clears the padding too).
// cloudSize is the half-width used by the grid initializers in init.go.
func New(n int, dim int, cloudSize float64) (*Cloud, error) {
	if dim < 1 || dim > 3 {
		return nil, config.Errf("dimension must be 1, 2, or 3, got %d", dim)
	}
	if n < 1 {
		return nil, config.Errf("particle count must be positive, got %d", n)
	}
	if cloudSize <= 0 {
		return nil, config.Errf("cloud size must be positive, got %g", cloudSize)
	}
	padded := n
	if rem := padded % LaneWidth; rem != 0 {
		padded += LaneWidth - rem
	}
	c := &Cloud{n: n, padded: padded, dim: dim, cloudSize: cloudSize}
	c.mass = make([]float64, padded)
	c.charge = make([]float64, padded)
	for a := 0; a < dim; a++ {
		c.pos[a] = make([]float64, padded)
		c.vel[a] = make([]float64, padded)
		c.force[a] = make([]float64, padded)
		for k := 0; k < 4; k++ {
			c.velSlope[a][k] = make([]float64, padded)
			c.posSlope[a][k] = make([]float64, padded)
		}
	}
	return c, nil
}

// Len returns N, the logical particle count; the padding introduced
// by LaneWidth is invisible to kernels and the integrator.
func (c *Cloud) Len() int { return c.n }

// Dim returns the configured dimension (1, 2, or 3).
func (c *Cloud) Dim() int { return c.dim }

// CloudSize returns the half-width passed to New.
func (c *Cloud) CloudSize() float64 { return c.cloudSize }

// Position returns the live position array for axis a (0=x, 1=y, 2=z).
// It is nil if a >= Dim(). Callers must not retain it across a step.
func (c *Cloud) Position(a int) []float64 { return c.pos[a] }

// Velocity returns the live velocity array for axis a.
func (c *Cloud) Velocity(a int) []float64 { return c.vel[a] }

// Force returns the mutable force-accumulator array for axis a. Kernels
// add into this; nothing else writes to it except ZeroForce.
func (c *Cloud) Force(a int) []float64 { return c.force[a] }

// Mass returns the per-particle mass array (read-only for kernels).
func (c *Cloud) Mass() []float64 { return c.mass }

// Charge returns the per-particle charge array (read-only for kernels).
func (c *Cloud) Charge() []float64 { return c.charge }

// VelSlope returns the k-th (1-indexed) velocity-slope band for axis a.
func (c *Cloud) VelSlope(a, k int) []float64 { return c.velSlope[a][k-1] }

// PosSlope returns the k-th (1-indexed) position-slope band for axis a.
func (c *Cloud) PosSlope(a, k int) []float64 { return c.posSlope[a][k-1] }

// ZeroForce clears every active axis's force accumulator. Called by
// the integrator after each substep's slope capture.
func (c *Cloud) ZeroForce() {
	for a := 0; a < c.dim; a++ {
		f := c.force[a]
		for i := range f {
			f[i] = 0
		}
	}
}
