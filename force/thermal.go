// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import (
	"math"

	"github.com/cpmech/demon/cloud"
	"github.com/cpmech/demon/config"
)

// Thermal is the constant-magnitude, random-direction heating force:
// each particle receives an impulse of magnitude H pointed along a
// direction drawn once per outer step, so all four RK4 substeps of a
// step see the same force.
type Thermal struct {
	Cloud *cloud.Cloud
	H     float64 // heating magnitude [N]; must be positive
	Seed  int64
	step  uint64
}

// NewThermal validates h > 0 and builds the kernel.
func NewThermal(c *cloud.Cloud, h float64, seed int64) (*Thermal, error) {
	if h <= 0 {
		return nil, config.Errf("thermal heating value must be positive, got %g", h)
	}
	return &Thermal{Cloud: c, H: h, Seed: seed}, nil
}

func (o *Thermal) BeginStep(step uint64) { o.step = step }

func (o *Thermal) Force1(t float64) error { return o.force(o.H) }
func (o *Thermal) Force2(t float64) error { return o.force(o.H) }
func (o *Thermal) Force3(t float64) error { return o.force(o.H) }
func (o *Thermal) Force4(t float64) error { return o.force(o.H) }

func (o *Thermal) Flag() config.Flag { return config.ThermalForceFlag }

// force adds magnitude h along a direction drawn per (step, particle),
// uniformly distributed on the circle (dim==2) or on the sphere
// (dim==3, cos(phi) uniform in (-1, 1]); in 1D the sign alone is
// randomized.
func (o *Thermal) force(h float64) error {
	c := o.Cloud
	n, dim := c.Len(), c.Dim()
	ParallelRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			switch dim {
			case 1:
				sign := 1.0
				if StepRand(o.Seed, o.step, uint32(i), 0) < 0.5 {
					sign = -1.0
				}
				c.Force(0)[i] += sign * h
			case 2:
				theta := StepAngle(o.Seed, o.step, uint32(i), 0)
				c.Force(0)[i] += h * math.Cos(theta)
				c.Force(1)[i] += h * math.Sin(theta)
			case 3:
				theta := StepAngle(o.Seed, o.step, uint32(i), 0)
				phi := math.Acos(1 - 2*StepRand(o.Seed, o.step, uint32(i), 1))
				c.Force(0)[i] += h * math.Sin(phi) * math.Cos(theta)
				c.Force(1)[i] += h * math.Sin(phi) * math.Sin(theta)
				c.Force(2)[i] += h * math.Cos(phi)
			}
		}
	})
	return nil
}

func (o *Thermal) WriteParams(h HeaderWriter) error {
	h.OrFlag(o.Flag())
	h.SetFloat("heatingValue", o.H, "[N] (ThermalForce)")
	return nil
}

func (o *Thermal) ReadParams(h HeaderReader) error {
	v, err := h.Float("heatingValue")
	if err != nil {
		return err
	}
	o.H = v
	return nil
}
