// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package force implements the interchangeable force kernels that
// accumulate into a cloud.Cloud's force arrays during each RK4
// substep, plus the ordered Registry that drives them.
package force

import (
	"strconv"

	"github.com/cpmech/demon/config"
)

// HeaderWriter is the persistence capability a kernel needs to record
// its scalar parameters into the catalog's primary header.
// persist.Header implements this; the interface lives here so force
// has no dependency on persist.
type HeaderWriter interface {
	SetFloat(key string, val float64, comment string)
	OrFlag(f config.Flag)
}

// HeaderReader is the read-side counterpart of HeaderWriter, used when
// resuming a run from an existing catalog.
type HeaderReader interface {
	Float(key string) (float64, error)
}

// Kernel is the capability contract every force implements: four
// RK4-substep entry points, the bitmask bit it contributes, and
// persistence of its scalar parameters. Kernels are additive; each
// only adds into the cloud's force accumulator and never reads what
// another kernel wrote.
type Kernel interface {
	// BeginStep is called once per outer RK4 step, before Force1, so
	// kernels whose output must stay consistent across all four
	// substeps can fix a step-keyed random draw.
	BeginStep(step uint64)

	Force1(t float64) error
	Force2(t float64) error
	Force3(t float64) error
	Force4(t float64) error

	Flag() config.Flag
	WriteParams(h HeaderWriter) error
	ReadParams(h HeaderReader) error
}

// DimensionError reports a kernel invoked in a dimension it does not
// support, e.g. Rotational or Magnetic in 1D.
type DimensionError struct {
	Kernel string
	Dim    int
}

func (e *DimensionError) Error() string {
	return "force: " + e.Kernel + " is not defined for dimension " + strconv.Itoa(e.Dim)
}
