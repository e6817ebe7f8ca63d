// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rk

import (
	"math"

	"github.com/cpmech/demon/cloud"
	"github.com/cpmech/demon/force"
)

// RowWriter is the persistence capability the integrator needs to
// append one row per outer step. persist.Writer implements it; the
// interface lives here so rk has no dependency on persist.
type RowWriter interface {
	WriteRow(t float64, c *cloud.Cloud) error
}

// Integrator owns the Cloud and Registry for one run and drives the
// RK4 outer loop.
type Integrator struct {
	Cloud    *cloud.Cloud
	Registry *force.Registry
	Writer   RowWriter
	InitDt   float64 // target step; adaptive contraction never exceeds this
	D0       float64 // fixed reference safety distance

	step uint64
}

// NewIntegrator builds an Integrator over c, driven by reg, appending
// rows to w.
func NewIntegrator(c *cloud.Cloud, reg *force.Registry, w RowWriter, initDt, d0 float64) *Integrator {
	return &Integrator{Cloud: c, Registry: reg, Writer: w, InitDt: initDt, D0: d0}
}

// Run advances the cloud from startTime to tEnd, emitting one
// persisted row per outer step, until t >= tEnd or a fatal condition
// is hit.
func (ig *Integrator) Run(startTime, tEnd float64) error {
	c := ig.Cloud
	n := c.Len()
	dim := c.Dim()
	t := startTime

	for t < tEnd {
		_, dt := ModifyTimestep(c, ig.D0, ig.InitDt)

		ig.Registry.BeginStep(ig.step)

		// t1 = t, t2 = t3 = t + dt/2, t4 = t + dt
		substepTime := [5]float64{0, t, t + dt/2, t + dt/2, t + dt}

		for k := 1; k <= 4; k++ {
			if err := ig.Registry.ForceK(k, substepTime[k]); err != nil {
				return err
			}
			force.ParallelRange(n, func(start, end int) {
				for i := start; i < end; i++ {
					for a := 0; a < dim; a++ {
						m := c.Mass()[i]
						c.VelSlope(a, k)[i] = dt * c.Force(a)[i] / m
						c.PosSlope(a, k)[i] = dt * c.ViewVelocity(a, k, i)
					}
				}
			})
			c.ZeroForce()
		}

		force.ParallelRange(n, func(start, end int) {
			for i := start; i < end; i++ {
				for a := 0; a < dim; a++ {
					v1, v2, v3, v4 := c.VelSlope(a, 1)[i], c.VelSlope(a, 2)[i], c.VelSlope(a, 3)[i], c.VelSlope(a, 4)[i]
					p1, p2, p3, p4 := c.PosSlope(a, 1)[i], c.PosSlope(a, 2)[i], c.PosSlope(a, 3)[i], c.PosSlope(a, 4)[i]
					c.Velocity(a)[i] += (v1 + 2*(v2+v3) + v4) / 6
					c.Position(a)[i] += (p1 + 2*(p2+p3) + p4) / 6
				}
			}
		})

		t += dt
		ig.step++

		if err := checkFinite(c, ig.step); err != nil {
			return err
		}
		if err := ig.Writer.WriteRow(t, c); err != nil {
			return err
		}
	}
	return nil
}

// checkFinite scans every active axis's position array for NaN/Inf,
// returning the first offending particle found.
func checkFinite(c *cloud.Cloud, step uint64) error {
	for a := 0; a < c.Dim(); a++ {
		for i, v := range c.Position(a) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &NumericError{Step: step, Axis: a, Index: i}
			}
		}
	}
	return nil
}
