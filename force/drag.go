// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import (
	"github.com/cpmech/demon/cloud"
	"github.com/cpmech/demon/config"
)

// Drag is the velocity-proportional damping force: F += -Gamma*V.
type Drag struct {
	Cloud *cloud.Cloud
	Gamma float64
}

// NewDrag validates gamma > 0 and builds the kernel.
func NewDrag(c *cloud.Cloud, gamma float64) (*Drag, error) {
	if gamma <= 0 {
		return nil, config.Errf("drag coefficient must be positive, got %g", gamma)
	}
	return &Drag{Cloud: c, Gamma: gamma}, nil
}

func (o *Drag) BeginStep(uint64) {}

func (o *Drag) Force1(t float64) error { return o.force(1) }
func (o *Drag) Force2(t float64) error { return o.force(2) }
func (o *Drag) Force3(t float64) error { return o.force(3) }
func (o *Drag) Force4(t float64) error { return o.force(4) }

func (o *Drag) Flag() config.Flag { return config.DragForceFlag }

func (o *Drag) force(k int) error {
	c := o.Cloud
	n, dim := c.Len(), c.Dim()
	ParallelRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			for a := 0; a < dim; a++ {
				c.Force(a)[i] -= o.Gamma * c.ViewVelocity(a, k, i)
			}
		}
	})
	return nil
}

func (o *Drag) WriteParams(h HeaderWriter) error {
	h.OrFlag(o.Flag())
	h.SetFloat("dragConst", o.Gamma, "[Hz] (DragForce)")
	return nil
}

func (o *Drag) ReadParams(h HeaderReader) error {
	v, err := h.Float("dragConst")
	if err != nil {
		return err
	}
	o.Gamma = v
	return nil
}
