// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import (
	"math"

	"github.com/cpmech/demon/cloud"
	"github.com/cpmech/demon/config"
)

// Rotational applies a tangential force about the z axis within an
// annulus: for RInner < r < ROuter, F_x += -Const*y/r and
// F_y += Const*x/r. Undefined in 1D.
type Rotational struct {
	Cloud  *cloud.Cloud
	Const  float64 // tangential force coefficient
	RInner float64 // [m]
	ROuter float64 // [m], must be > RInner
}

// NewRotational validates dimensionality and radius ordering.
func NewRotational(c *cloud.Cloud, constant, rInner, rOuter float64) (*Rotational, error) {
	if c.Dim() < 2 {
		return nil, &DimensionError{Kernel: "Rotational", Dim: c.Dim()}
	}
	if rOuter <= rInner {
		return nil, config.Errf("rotational outer radius must exceed inner radius, got inner=%g outer=%g", rInner, rOuter)
	}
	return &Rotational{Cloud: c, Const: constant, RInner: rInner, ROuter: rOuter}, nil
}

func (o *Rotational) BeginStep(uint64) {}

func (o *Rotational) Force1(t float64) error { return o.force(1) }
func (o *Rotational) Force2(t float64) error { return o.force(2) }
func (o *Rotational) Force3(t float64) error { return o.force(3) }
func (o *Rotational) Force4(t float64) error { return o.force(4) }

func (o *Rotational) Flag() config.Flag { return config.RotationalForceFlag }

func (o *Rotational) force(k int) error {
	c := o.Cloud
	n := c.Len()
	ParallelRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			x := c.ViewPosition(0, k, i)
			y := c.ViewPosition(1, k, i)
			r := math.Sqrt(x*x + y*y)
			if r <= o.RInner || r >= o.ROuter || r == 0 {
				continue
			}
			coef := o.Const / r
			c.Force(0)[i] -= coef * y
			c.Force(1)[i] += coef * x
		}
	})
	return nil
}

func (o *Rotational) WriteParams(h HeaderWriter) error {
	h.OrFlag(o.Flag())
	h.SetFloat("rotationalConst", o.Const, "(RotationalForce)")
	h.SetFloat("innerRadius", o.RInner, "[m] (RotationalForce)")
	h.SetFloat("outerRadius", o.ROuter, "[m] (RotationalForce)")
	return nil
}

func (o *Rotational) ReadParams(h HeaderReader) error {
	var err error
	if o.Const, err = h.Float("rotationalConst"); err != nil {
		return err
	}
	if o.RInner, err = h.Float("innerRadius"); err != nil {
		return err
	}
	o.ROuter, err = h.Float("outerRadius")
	return err
}
