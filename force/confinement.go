// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import (
	"math"

	"github.com/cpmech/demon/cloud"
	"github.com/cpmech/demon/config"
)

// Confinement is the radial harmonic confinement force:
// F_r = Const*q*(r - Offset)*rhat. The restoring direction comes from
// the charge's sign; dust carries negative charge in this simulation.
type Confinement struct {
	Cloud  *cloud.Cloud
	Const  float64 // c; must be positive
	Offset float64 // r0, the equilibrium radius (0 for simple harmonic)
}

// NewConfinement validates c > 0 and builds the kernel.
func NewConfinement(c *cloud.Cloud, constant, offset float64) (*Confinement, error) {
	if constant <= 0 {
		return nil, config.Errf("confinement constant must be positive, got %g", constant)
	}
	return &Confinement{Cloud: c, Const: constant, Offset: offset}, nil
}

func (o *Confinement) BeginStep(uint64) {}

func (o *Confinement) Force1(t float64) error { return o.force(1) }
func (o *Confinement) Force2(t float64) error { return o.force(2) }
func (o *Confinement) Force3(t float64) error { return o.force(3) }
func (o *Confinement) Force4(t float64) error { return o.force(4) }

func (o *Confinement) Flag() config.Flag { return config.ConfinementForceFlag }

func (o *Confinement) force(k int) error {
	c := o.Cloud
	n, dim := c.Len(), c.Dim()
	ParallelRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			var pos [3]float64
			r2 := 0.0
			for a := 0; a < dim; a++ {
				pos[a] = c.ViewPosition(a, k, i)
				r2 += pos[a] * pos[a]
			}
			r := math.Sqrt(r2)
			if r == 0 {
				continue
			}
			q := c.Charge()[i]
			coef := o.Const * q * (r - o.Offset) / r
			for a := 0; a < dim; a++ {
				c.Force(a)[i] += coef * pos[a]
			}
		}
	})
	return nil
}

func (o *Confinement) WriteParams(h HeaderWriter) error {
	h.OrFlag(o.Flag())
	h.SetFloat("confineConst", o.Const, "[V/m^2] (ConfinementForce)")
	h.SetFloat("confineOffset", o.Offset, "[m] (ConfinementForce)")
	return nil
}

func (o *Confinement) ReadParams(h HeaderReader) error {
	var err error
	if o.Const, err = h.Float("confineConst"); err != nil {
		return err
	}
	o.Offset, err = h.Float("confineOffset")
	return err
}
