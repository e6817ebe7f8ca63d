// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import "github.com/cpmech/demon/config"

// TimeVaryingDrag wraps a Drag, recomputing its Gamma from a linear
// schedule before each substep and delegating.
type TimeVaryingDrag struct {
	Base   *Drag
	Scale  float64
	Offset float64
}

// NewTimeVaryingDrag builds the wrapper over an existing Drag kernel.
func NewTimeVaryingDrag(base *Drag, scale, offset float64) *TimeVaryingDrag {
	return &TimeVaryingDrag{Base: base, Scale: scale, Offset: offset}
}

// gammaAt is the schedule g(t) = -(Scale*t + Offset).
func (o *TimeVaryingDrag) gammaAt(t float64) float64 { return -(o.Scale*t + o.Offset) }

func (o *TimeVaryingDrag) BeginStep(step uint64) { o.Base.BeginStep(step) }

func (o *TimeVaryingDrag) Force1(t float64) error {
	o.Base.Gamma = o.gammaAt(t)
	return o.Base.Force1(t)
}
func (o *TimeVaryingDrag) Force2(t float64) error {
	o.Base.Gamma = o.gammaAt(t)
	return o.Base.Force2(t)
}
func (o *TimeVaryingDrag) Force3(t float64) error {
	o.Base.Gamma = o.gammaAt(t)
	return o.Base.Force3(t)
}
func (o *TimeVaryingDrag) Force4(t float64) error {
	o.Base.Gamma = o.gammaAt(t)
	return o.Base.Force4(t)
}

func (o *TimeVaryingDrag) Flag() config.Flag {
	return config.DragForceFlag | config.TimeVaryingDragForceFlag
}

func (o *TimeVaryingDrag) WriteParams(h HeaderWriter) error {
	h.OrFlag(o.Flag())
	h.SetFloat("TVDragScaleConst", o.Scale, "[Hz/s] (TimeVaryingDragForce)")
	h.SetFloat("TVDragOffsetConst", o.Offset, "[Hz] (TimeVaryingDragForce)")
	return nil
}

func (o *TimeVaryingDrag) ReadParams(h HeaderReader) error {
	var err error
	if o.Scale, err = h.Float("TVDragScaleConst"); err != nil {
		return err
	}
	o.Offset, err = h.Float("TVDragOffsetConst")
	return err
}
