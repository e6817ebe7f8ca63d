// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import "github.com/cpmech/demon/config"

// TimeVaryingThermal wraps a Thermal, recomputing its H from a linear
// schedule before each substep and delegating.
type TimeVaryingThermal struct {
	Base   *Thermal
	Scale  float64
	Offset float64
}

// NewTimeVaryingThermal builds the wrapper over an existing Thermal kernel.
func NewTimeVaryingThermal(base *Thermal, scale, offset float64) *TimeVaryingThermal {
	return &TimeVaryingThermal{Base: base, Scale: scale, Offset: offset}
}

// hAt is the schedule h(t) = Scale*t + Offset.
func (o *TimeVaryingThermal) hAt(t float64) float64 { return o.Scale*t + o.Offset }

func (o *TimeVaryingThermal) BeginStep(step uint64) { o.Base.BeginStep(step) }

func (o *TimeVaryingThermal) Force1(t float64) error { o.Base.H = o.hAt(t); return o.Base.Force1(t) }
func (o *TimeVaryingThermal) Force2(t float64) error { o.Base.H = o.hAt(t); return o.Base.Force2(t) }
func (o *TimeVaryingThermal) Force3(t float64) error { o.Base.H = o.hAt(t); return o.Base.Force3(t) }
func (o *TimeVaryingThermal) Force4(t float64) error { o.Base.H = o.hAt(t); return o.Base.Force4(t) }

func (o *TimeVaryingThermal) Flag() config.Flag {
	return config.ThermalForceFlag | config.TimeVaryingThermalForceFlag
}

func (o *TimeVaryingThermal) WriteParams(h HeaderWriter) error {
	h.OrFlag(o.Flag())
	h.SetFloat("heatingValueScale", o.Scale, "[N/s] (TimeVaryingThermalForce)")
	h.SetFloat("heatingValueOffset", o.Offset, "[N] (TimeVaryingThermalForce)")
	return nil
}

func (o *TimeVaryingThermal) ReadParams(h HeaderReader) error {
	var err error
	if o.Scale, err = h.Float("heatingValueScale"); err != nil {
		return err
	}
	o.Offset, err = h.Float("heatingValueOffset")
	return err
}
