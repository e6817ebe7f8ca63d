// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestStepRandDeterministic(tst *testing.T) {
	chk.PrintTitle("StepRandDeterministic")
	a := StepRand(42, 3, 5, 0)
	b := StepRand(42, 3, 5, 0)
	chk.Float64(tst, "StepRand", 1e-15, a, b)
	if a < 0 || a >= 1 {
		tst.Fatalf("StepRand out of [0,1): %g", a)
	}
}

func TestStepRandVariesWithInputs(tst *testing.T) {
	chk.PrintTitle("StepRandVariesWithInputs")
	base := StepRand(1, 1, 1, 0)
	if base == StepRand(1, 2, 1, 0) {
		tst.Fatalf("expected different steps to differ")
	}
	if base == StepRand(1, 1, 2, 0) {
		tst.Fatalf("expected different particles to differ")
	}
	if base == StepRand(1, 1, 1, 1) {
		tst.Fatalf("expected different salts to differ")
	}
}

func TestStepAngleRange(tst *testing.T) {
	chk.PrintTitle("StepAngleRange")
	theta := StepAngle(7, 1, 0, 0)
	if theta < 0 || theta >= 2*3.141592653589793 {
		tst.Fatalf("StepAngle out of [0, 2pi): %g", theta)
	}
}
