// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the run configuration parsed from the command
// line: dimension, particle count, cloud size, integration window,
// per-force activation flags, and the physical constants persisted
// verbatim alongside every run.
package config

import "math"

// Physical holds the fixed physical constants carried into every
// persisted run. They are doubles, not tunables; tests may override
// them to keep scenario numbers small.
type Physical struct {
	ElementaryCharge float64 // e [C]
	VacuumPermit     float64 // ε0 [F/m]
	ParticleRadius   float64 // r [m]
	DustDensity      float64 // ρ [kg/m^3]
}

// DefaultPhysical returns the stock constants: micron-scale
// melamine-formaldehyde dust in a low-pressure plasma.
func DefaultPhysical() Physical {
	return Physical{
		ElementaryCharge: 1.602176634e-19,
		VacuumPermit:     8.8541878128e-12,
		ParticleRadius:   1.445e-6,
		DustDensity:      1.5e3,
	}
}

// CoulombConst returns κ = 1/(4πε0), the Coulomb kernel's constant.
func (p Physical) CoulombConst() float64 {
	return 1.0 / (4.0 * math.Pi * p.VacuumPermit)
}
