// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import (
	"github.com/cpmech/demon/cloud"
	"github.com/cpmech/demon/config"
)

// RectConfinement is the rectangular (per-axis) confinement force:
// F_a += Const[a]*q*pos_a for every active axis a. The restoring
// direction comes from the charge's sign.
type RectConfinement struct {
	Cloud *cloud.Cloud
	Const [3]float64 // c_x, c_y[, c_z]; must be positive on every active axis
}

// NewRectConfinement validates every active-axis constant is positive.
func NewRectConfinement(c *cloud.Cloud, constants ...float64) (*RectConfinement, error) {
	var k RectConfinement
	k.Cloud = c
	for a := 0; a < c.Dim() && a < len(constants); a++ {
		if constants[a] <= 0 {
			return nil, config.Errf("rectangular confinement constant for axis %d must be positive, got %g", a, constants[a])
		}
		k.Const[a] = constants[a]
	}
	return &k, nil
}

func (o *RectConfinement) BeginStep(uint64) {}

func (o *RectConfinement) Force1(t float64) error { return o.force(1) }
func (o *RectConfinement) Force2(t float64) error { return o.force(2) }
func (o *RectConfinement) Force3(t float64) error { return o.force(3) }
func (o *RectConfinement) Force4(t float64) error { return o.force(4) }

func (o *RectConfinement) Flag() config.Flag { return config.RectConfinementForceFlag }

func (o *RectConfinement) force(k int) error {
	c := o.Cloud
	n, dim := c.Len(), c.Dim()
	ParallelRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			q := c.Charge()[i]
			for a := 0; a < dim; a++ {
				c.Force(a)[i] += o.Const[a] * q * c.ViewPosition(a, k, i)
			}
		}
	})
	return nil
}

var rectAxisKey = [3]string{"confineConstX", "confineConstY", "confineConstZ"}

func (o *RectConfinement) WriteParams(h HeaderWriter) error {
	h.OrFlag(o.Flag())
	for a := 0; a < o.Cloud.Dim(); a++ {
		h.SetFloat(rectAxisKey[a], o.Const[a], "[V/m^2] (RectConfinementForce)")
	}
	return nil
}

func (o *RectConfinement) ReadParams(h HeaderReader) error {
	for a := 0; a < o.Cloud.Dim(); a++ {
		v, err := h.Float(rectAxisKey[a])
		if err != nil {
			return err
		}
		o.Const[a] = v
	}
	return nil
}
