// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tests holds end-to-end scenario tests exercising cloud,
// force, rk, and persist together rather than in isolation.
package tests

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/cpmech/demon/cloud"
	"github.com/cpmech/demon/config"
	"github.com/cpmech/demon/force"
	"github.com/cpmech/demon/persist"
	"github.com/cpmech/demon/rk"
	"github.com/cpmech/gosl/chk"
)

// rowCounter is a minimal rk.RowWriter that only counts rows, for
// scenarios that care about row count or trajectory but not the FITS
// file itself.
type rowCounter struct {
	n int
}

func (w *rowCounter) WriteRow(t float64, c *cloud.Cloud) error {
	w.n++
	return nil
}

// fixedStepEnd returns a tEnd that makes Integrator.Run take exactly
// nSteps steps when dt never contracts: the 0.5*dt margin absorbs the
// last-bit mismatch between n additions of dt and the product n*dt,
// without ever admitting an (n+1)-th iteration.
func fixedStepEnd(start, dt float64, nSteps int) float64 {
	return start + dt*(float64(nSteps)-0.5)
}

// TestTwoParticleCoulombOscillation releases two opposite charges
// from rest on the x-axis: they pull together, coast through one
// another (the Coulomb kernel skips r==0), and the separation
// oscillates with its initial value as the maximum. Mirrored initial conditions
// keep the configuration antisymmetric about the origin for all time;
// that is checked independently of the separation bound.
func TestTwoParticleCoulombOscillation(tst *testing.T) {
	chk.PrintTitle("TwoParticleCoulombOscillation")
	phys := config.DefaultPhysical()
	c, err := cloud.New(2, 2, 1.0)
	if err != nil {
		tst.Fatalf("cloud.New failed: %v", err)
	}
	c.InitPosition(0, -1.0, 0.0)
	c.InitPosition(1, 1.0, 0.0)
	c.Charge()[0] = phys.ElementaryCharge
	c.Charge()[1] = -phys.ElementaryCharge
	c.Mass()[0] = (4.0 / 3.0) * math.Pi * phys.ParticleRadius * phys.ParticleRadius * phys.ParticleRadius * phys.DustDensity
	c.Mass()[1] = c.Mass()[0]

	reg := force.NewRegistry(force.NewCoulomb(c, phys))
	w := &rowCounter{}
	ig := rk.NewIntegrator(c, reg, w, 1e-6, 1e-9)

	const steps = 1000
	initSep := math.Abs(c.Position(0)[0] - c.Position(0)[1])
	maxSep := initSep
	for w.n < steps {
		if err := ig.Run(float64(w.n)*1e-6, fixedStepEnd(float64(w.n)*1e-6, 1e-6, 1)); err != nil {
			tst.Fatalf("Run failed: %v", err)
		}
		sep := math.Abs(c.Position(0)[0] - c.Position(0)[1])
		if sep > maxSep {
			maxSep = sep
		}
	}
	if w.n != steps {
		tst.Fatalf("expected %d rows, got %d", steps, w.n)
	}

	chk.Float64(tst, "x0 + x1", 1e-12, c.Position(0)[0]+c.Position(0)[1], 0)
	chk.Float64(tst, "y0 + y1", 1e-12, c.Position(1)[0]+c.Position(1)[1], 0)

	if math.Abs(maxSep-initSep) > 0.01*initSep {
		tst.Fatalf("max separation %g strayed more than 1%% from initial separation %g", maxSep, initSep)
	}
}

// TestConfinementSimpleHarmonicPeriod drives a single dust particle
// under harmonic confinement alone: simple harmonic motion with
// period 2*pi*sqrt(m/|c*q|). After 10 periods the position must
// return to the start to within 1e-6 m.
func TestConfinementSimpleHarmonicPeriod(tst *testing.T) {
	chk.PrintTitle("ConfinementSimpleHarmonicPeriod")
	phys := config.DefaultPhysical()
	c, err := cloud.New(1, 2, 1.0)
	if err != nil {
		tst.Fatalf("cloud.New failed: %v", err)
	}
	c.InitPosition(0, 0.1, 0.0)
	c.Charge()[0] = -phys.ElementaryCharge
	c.SetMasses(phys)

	const constConfine = 1.0
	k, err := force.NewConfinement(c, constConfine, 0.0)
	if err != nil {
		tst.Fatalf("NewConfinement failed: %v", err)
	}
	reg := force.NewRegistry(k)
	w := &rowCounter{}

	period := 2 * math.Pi * math.Sqrt(c.Mass()[0]/math.Abs(constConfine*c.Charge()[0]))
	const stepsPerPeriod = 2000
	const periods = 10
	dt := period / stepsPerPeriod

	ig := rk.NewIntegrator(c, reg, w, dt, dt*1e-6)
	tEnd := fixedStepEnd(0, dt, stepsPerPeriod*periods)
	if err := ig.Run(0, tEnd); err != nil {
		tst.Fatalf("Run failed: %v", err)
	}
	if w.n != stepsPerPeriod*periods {
		tst.Fatalf("expected %d rows, got %d", stepsPerPeriod*periods, w.n)
	}

	chk.Float64(tst, "x after 10 periods", 1e-6, c.Position(0)[0], 0.1)
	chk.Float64(tst, "y after 10 periods", 1e-6, c.Position(1)[0], 0.0)
}

// cubeGridEnergy computes total mechanical energy (kinetic + Coulomb
// potential + harmonic-confinement potential, Offset==0) for a cloud
// driven only by Coulomb and Confinement.
func cubeGridEnergy(c *cloud.Cloud, kappa, confineConst float64) float64 {
	n, dim := c.Len(), c.Dim()
	e := 0.0
	for i := 0; i < n; i++ {
		v2 := 0.0
		r2 := 0.0
		for a := 0; a < dim; a++ {
			v2 += c.Velocity(a)[i] * c.Velocity(a)[i]
			r2 += c.Position(a)[i] * c.Position(a)[i]
		}
		e += 0.5 * c.Mass()[i] * v2
		e += -0.5 * confineConst * c.Charge()[i] * r2
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r2 := 0.0
			for a := 0; a < dim; a++ {
				d := c.Position(a)[i] - c.Position(a)[j]
				r2 += d * d
			}
			e += kappa * c.Charge()[i] * c.Charge()[j] / math.Sqrt(r2)
		}
	}
	return e
}

// TestCubeGridEnergyDriftAndRowCount integrates 16 particles on a 3D
// cube grid under Coulomb plus confinement for 500 steps: rows are
// only emitted for completed steps (no t=0 row), so 500 steps must
// produce exactly 500 rows, and the relative energy drift must stay
// bounded.
func TestCubeGridEnergyDriftAndRowCount(tst *testing.T) {
	chk.PrintTitle("CubeGridEnergyDriftAndRowCount")
	c, err := cloud.New(16, 3, 2.0)
	if err != nil {
		tst.Fatalf("cloud.New failed: %v", err)
	}
	c.InitGrid3D()
	for i := 0; i < c.Len(); i++ {
		c.Charge()[i] = -1.0
		c.Mass()[i] = 1.0
	}

	const kappa = 1.0
	const confineConst = 0.1
	coulomb := &force.Coulomb{Cloud: c, Kappa: kappa}
	confine, err := force.NewConfinement(c, confineConst, 0.0)
	if err != nil {
		tst.Fatalf("NewConfinement failed: %v", err)
	}
	reg := force.NewRegistry(coulomb, confine)
	w := &rowCounter{}

	e0 := cubeGridEnergy(c, kappa, confineConst)

	const steps = 500
	const dt = 2e-4
	ig := rk.NewIntegrator(c, reg, w, dt, 1e-9)
	if err := ig.Run(0, fixedStepEnd(0, dt, steps)); err != nil {
		tst.Fatalf("Run failed: %v", err)
	}
	if w.n != steps {
		tst.Fatalf("expected %d STEPS rows for a %d-step run, got %d", steps, steps, w.n)
	}

	e1 := cubeGridEnergy(c, kappa, confineConst)
	drift := math.Abs((e1 - e0) / e0)
	if drift > 1e-6 {
		tst.Fatalf("relative energy drift %g exceeds 1e-6", drift)
	}
}

// TestCoulombConservesMomentum checks that with only the
// interparticle force active, every pair's action and reaction cancel
// and the total momentum stays at zero up to floating-point summation
// residue.
func TestCoulombConservesMomentum(tst *testing.T) {
	chk.PrintTitle("CoulombConservesMomentum")
	c, err := cloud.New(4, 2, 1.0)
	if err != nil {
		tst.Fatalf("cloud.New failed: %v", err)
	}
	c.InitPosition(0, -0.5, -0.5)
	c.InitPosition(1, 0.5, -0.5)
	c.InitPosition(2, -0.5, 0.5)
	c.InitPosition(3, 0.5, 0.5)
	charges := []float64{1.0, -1.0, 1.0, -1.0}
	for i := 0; i < c.Len(); i++ {
		c.Charge()[i] = charges[i]
		c.Mass()[i] = 1.0
	}

	reg := force.NewRegistry(&force.Coulomb{Cloud: c, Kappa: 1.0})
	ig := rk.NewIntegrator(c, reg, &rowCounter{}, 1e-3, 1e-9)
	if err := ig.Run(0, fixedStepEnd(0, 1e-3, 100)); err != nil {
		tst.Fatalf("Run failed: %v", err)
	}

	for a := 0; a < c.Dim(); a++ {
		p := 0.0
		for i := 0; i < c.Len(); i++ {
			p += c.Mass()[i] * c.Velocity(a)[i]
		}
		chk.Float64(tst, "total momentum", 1e-12, p, 0)
	}
}

// TestThermalCrossRunDeterminism runs the same seeded thermal setup
// twice: trajectories must match bit for bit, since every draw is
// keyed off (seed, step, particle) rather than any run-local state.
func TestThermalCrossRunDeterminism(tst *testing.T) {
	chk.PrintTitle("ThermalCrossRunDeterminism")
	build := func() (*cloud.Cloud, error) {
		c, err := cloud.New(8, 2, 1.0)
		if err != nil {
			return nil, err
		}
		c.InitGrid2D()
		for i := 0; i < c.Len(); i++ {
			c.Charge()[i] = -1.0
			c.Mass()[i] = 1.0
		}
		return c, nil
	}

	runOnce := func() *cloud.Cloud {
		c, err := build()
		if err != nil {
			tst.Fatalf("cloud.New failed: %v", err)
		}
		thermal, err := force.NewThermal(c, 0.05, 42)
		if err != nil {
			tst.Fatalf("NewThermal failed: %v", err)
		}
		reg := force.NewRegistry(thermal)
		w := &rowCounter{}
		ig := rk.NewIntegrator(c, reg, w, 1e-3, 1e-9)
		if err := ig.Run(0, fixedStepEnd(0, 1e-3, 200)); err != nil {
			tst.Fatalf("Run failed: %v", err)
		}
		return c
	}

	a := runOnce()
	b := runOnce()
	for i := 0; i < a.Len(); i++ {
		for axis := 0; axis < a.Dim(); axis++ {
			chk.Float64(tst, "position", 1e-15, a.Position(axis)[i], b.Position(axis)[i])
			chk.Float64(tst, "velocity", 1e-15, a.Velocity(axis)[i], b.Velocity(axis)[i])
		}
	}
}

// TestAdaptiveTimestepContractsAndRecovers closes two particles
// through successive decades of d0: tau contracts by a factor of 10
// per decade crossed, and recovers to initDt in a single call once
// they separate beyond d0 again.
func TestAdaptiveTimestepContractsAndRecovers(tst *testing.T) {
	chk.PrintTitle("AdaptiveTimestepContractsAndRecovers")
	const d0 = 1e-4
	const initDt = 1.0
	c, err := cloud.New(2, 1, 1.0)
	if err != nil {
		tst.Fatalf("cloud.New failed: %v", err)
	}

	separations := []float64{1.0, 1e-4 * 0.5, 1e-4 * 0.05, 1e-4 * 0.005}
	wantTau := []float64{initDt, initDt / 10, initDt / 100, initDt / 1000}
	for step, sep := range separations {
		c.InitPosition(0, -sep/2)
		c.InitPosition(1, sep/2)
		_, tau := rk.ModifyTimestep(c, d0, initDt)
		chk.Float64(tst, "tau at closing step", 1e-15, tau, wantTau[step])
	}

	// Separation exceeds d0 again: tau must fully recover to initDt,
	// not remain at any previously contracted value.
	c.InitPosition(0, -1.0)
	c.InitPosition(1, 1.0)
	_, tau := rk.ModifyTimestep(c, d0, initDt)
	chk.Float64(tst, "tau after recovery", 1e-15, tau, initDt)
}

// TestResumeMatchesUninterruptedRun compares a 200-step run against a
// 100-step run that is persisted, reopened via persist.Open, and
// driven 100 more steps from the recovered state: both must land on
// the same final positions and velocities.
func TestResumeMatchesUninterruptedRun(tst *testing.T) {
	chk.PrintTitle("ResumeMatchesUninterruptedRun")
	const kappa = 1.0
	const confineConst = 0.1
	const dt = 1e-3
	const halfSteps = 100

	newCloud := func() *cloud.Cloud {
		c, err := cloud.New(3, 2, 1.0)
		if err != nil {
			tst.Fatalf("cloud.New failed: %v", err)
		}
		c.InitGrid2D()
		for i := 0; i < c.Len(); i++ {
			c.Charge()[i] = -1.0
			c.Mass()[i] = 1.0
		}
		return c
	}
	newRegistry := func(c *cloud.Cloud) *force.Registry {
		confine, err := force.NewConfinement(c, confineConst, 0.0)
		if err != nil {
			tst.Fatalf("NewConfinement failed: %v", err)
		}
		return force.NewRegistry(&force.Coulomb{Cloud: c, Kappa: kappa}, confine)
	}

	// Uninterrupted 200-step run.
	straight := newCloud()
	straightReg := newRegistry(straight)
	straightIg := rk.NewIntegrator(straight, straightReg, &rowCounter{}, dt, 1e-9)
	if err := straightIg.Run(0, fixedStepEnd(0, dt, 2*halfSteps)); err != nil {
		tst.Fatalf("straight Run failed: %v", err)
	}

	// First half, persisted.
	phys := config.DefaultPhysical()
	first := newCloud()
	firstReg := newRegistry(first)
	h := persist.NewHeader(first.Len(), first.Dim())
	if err := firstReg.WriteParams(h); err != nil {
		tst.Fatalf("WriteParams failed: %v", err)
	}
	path := filepath.Join(tst.TempDir(), "resume-scenario.fits")
	writer, err := persist.Create(path, h, phys, first)
	if err != nil {
		tst.Fatalf("Create failed: %v", err)
	}
	firstIg := rk.NewIntegrator(first, firstReg, writer, dt, 1e-9)
	if err := firstIg.Run(0, fixedStepEnd(0, dt, halfSteps)); err != nil {
		tst.Fatalf("first-half Run failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		tst.Fatalf("Close failed: %v", err)
	}

	// Resume and run the second half.
	resumed, err := persist.Open(path)
	if err != nil {
		tst.Fatalf("Open failed: %v", err)
	}
	resumedReg := newRegistry(resumed.Cloud)
	if err := resumedReg.Kernels()[1].ReadParams(resumed.Header); err != nil {
		tst.Fatalf("ReadParams failed: %v", err)
	}
	resumedIg := rk.NewIntegrator(resumed.Cloud, resumedReg, &rowCounter{}, dt, 1e-9)
	if err := resumedIg.Run(resumed.Time, fixedStepEnd(resumed.Time, dt, halfSteps)); err != nil {
		tst.Fatalf("second-half Run failed: %v", err)
	}

	for i := 0; i < straight.Len(); i++ {
		for axis := 0; axis < straight.Dim(); axis++ {
			chk.Float64(tst, "resumed position", 1e-9, resumed.Cloud.Position(axis)[i], straight.Position(axis)[i])
			chk.Float64(tst, "resumed velocity", 1e-9, resumed.Cloud.Velocity(axis)[i], straight.Velocity(axis)[i])
		}
	}
}
