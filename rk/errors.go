// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rk implements the adaptive-step, fourth-order Runge-Kutta
// integrator that drives a cloud.Cloud through a force.Registry.
package rk

import "strconv"

// NumericError reports a NaN or infinite coordinate detected at row
// emission; fatal, terminates the run.
type NumericError struct {
	Step  uint64
	Axis  int
	Index int
}

func (e *NumericError) Error() string {
	return "rk: non-finite position at step " + strconv.FormatUint(e.Step, 10) +
		" axis " + strconv.Itoa(e.Axis) + " particle " + strconv.Itoa(e.Index)
}
