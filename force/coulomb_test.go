// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import (
	"testing"

	"github.com/cpmech/demon/cloud"
	"github.com/cpmech/demon/config"
	"github.com/cpmech/gosl/chk"
)

// TestCoulombActionReaction checks the reaction force on particle j
// is a true subtraction, so with two particles the net force sums to
// zero (Newton's third law).
func TestCoulombActionReaction(tst *testing.T) {
	chk.PrintTitle("CoulombActionReaction")
	c, err := cloud.New(2, 1, 1.0)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	c.InitPosition(0, -1.0)
	c.InitPosition(1, 1.0)
	c.Charge()[0] = 1.0
	c.Charge()[1] = -1.0

	k := NewCoulomb(c, config.DefaultPhysical())
	if err := k.Force1(0); err != nil {
		tst.Fatalf("Force1 failed: %v", err)
	}

	chk.Float64(tst, "Fi + Fj", 1e-12, c.Force(0)[0]+c.Force(0)[1], 0)
	if c.Force(0)[0] == 0 {
		tst.Fatalf("expected a nonzero attractive force")
	}
}

func TestCoulombZeroSeparationSkipped(tst *testing.T) {
	chk.PrintTitle("CoulombZeroSeparationSkipped")
	c, err := cloud.New(2, 1, 1.0)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	c.Charge()[0] = 1.0
	c.Charge()[1] = 1.0
	k := NewCoulomb(c, config.DefaultPhysical())
	if err := k.Force1(0); err != nil {
		tst.Fatalf("Force1 failed: %v", err)
	}
	chk.Float64(tst, "F0", 1e-15, c.Force(0)[0], 0)
}
