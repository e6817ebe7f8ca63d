// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import (
	"github.com/cpmech/demon/cloud"
	"github.com/cpmech/demon/config"
)

// Magnetic applies the xy-plane Lorentz component of a uniform field
// B along z: F_x += q*B*Vy, F_y -= q*B*Vx. Undefined in 1D.
type Magnetic struct {
	Cloud *cloud.Cloud
	B     float64 // field strength [T] along z
}

// NewMagnetic validates dimensionality and builds the kernel.
func NewMagnetic(c *cloud.Cloud, b float64) (*Magnetic, error) {
	if c.Dim() < 2 {
		return nil, &DimensionError{Kernel: "Magnetic", Dim: c.Dim()}
	}
	return &Magnetic{Cloud: c, B: b}, nil
}

func (o *Magnetic) BeginStep(uint64) {}

func (o *Magnetic) Force1(t float64) error { return o.force(1) }
func (o *Magnetic) Force2(t float64) error { return o.force(2) }
func (o *Magnetic) Force3(t float64) error { return o.force(3) }
func (o *Magnetic) Force4(t float64) error { return o.force(4) }

func (o *Magnetic) Flag() config.Flag { return config.MagneticForceFlag }

func (o *Magnetic) force(k int) error {
	c := o.Cloud
	n := c.Len()
	ParallelRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			q := c.Charge()[i]
			vx := c.ViewVelocity(0, k, i)
			vy := c.ViewVelocity(1, k, i)
			c.Force(0)[i] += q * o.B * vy
			c.Force(1)[i] -= q * o.B * vx
		}
	})
	return nil
}

func (o *Magnetic) WriteParams(h HeaderWriter) error {
	h.OrFlag(o.Flag())
	h.SetFloat("magneticField", o.B, "[T] (MagneticForce)")
	return nil
}

func (o *Magnetic) ReadParams(h HeaderReader) error {
	v, err := h.Float("magneticField")
	if err != nil {
		return err
	}
	o.B = v
	return nil
}
