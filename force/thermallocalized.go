// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import (
	"math"

	"github.com/cpmech/demon/cloud"
	"github.com/cpmech/demon/config"
)

// ThermalLocalized is a Thermal variant whose magnitude switches at a
// radius threshold: particles within RHeat of the origin are heated
// at HInner, all others at HOuter. Direction is drawn the same way as
// Thermal, once per outer step.
type ThermalLocalized struct {
	Cloud  *cloud.Cloud
	HInner float64 // [N], applied when r < RHeat
	HOuter float64 // [N], applied when r >= RHeat
	RHeat  float64 // [m], must be positive
	Seed   int64
	step   uint64
}

// NewThermalLocalized validates rHeat > 0 and builds the kernel.
func NewThermalLocalized(c *cloud.Cloud, hInner, hOuter, rHeat float64, seed int64) (*ThermalLocalized, error) {
	if rHeat <= 0 {
		return nil, config.Errf("thermalLocal heating radius must be positive, got %g", rHeat)
	}
	return &ThermalLocalized{Cloud: c, HInner: hInner, HOuter: hOuter, RHeat: rHeat, Seed: seed}, nil
}

func (o *ThermalLocalized) BeginStep(step uint64) { o.step = step }

func (o *ThermalLocalized) Force1(t float64) error { return o.force(1) }
func (o *ThermalLocalized) Force2(t float64) error { return o.force(2) }
func (o *ThermalLocalized) Force3(t float64) error { return o.force(3) }
func (o *ThermalLocalized) Force4(t float64) error { return o.force(4) }

func (o *ThermalLocalized) Flag() config.Flag { return config.ThermalForceLocalizedFlag }

func (o *ThermalLocalized) force(k int) error {
	c := o.Cloud
	n, dim := c.Len(), c.Dim()
	ParallelRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			r2 := 0.0
			for a := 0; a < dim; a++ {
				pos := c.ViewPosition(a, k, i)
				r2 += pos * pos
			}
			h := o.HOuter
			if math.Sqrt(r2) < o.RHeat {
				h = o.HInner
			}
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

func (o *ThermalLocalized) WriteParams(h HeaderWriter) error {
	h.OrFlag(o.Flag())
	h.SetFloat("heatingValue1", o.HInner, "[N] (ThermalForceLocalized)")
	h.SetFloat("heatingValue2", o.HOuter, "[N] (ThermalForceLocalized)")
	h.SetFloat("heatingRadius", o.RHeat, "[m] (ThermalForceLocalized)")
	return nil
}

func (o *ThermalLocalized) ReadParams(h HeaderReader) error {
	var err error
	if o.HInner, err = h.Float("heatingValue1"); err != nil {
		return err
	}
	if o.HOuter, err = h.Float("heatingValue2"); err != nil {
		return err
	}
	o.RHeat, err = h.Float("heatingRadius")
	return err
}
