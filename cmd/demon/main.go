// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/demon/cloud"
	"github.com/cpmech/demon/config"
	"github.com/cpmech/demon/force"
	"github.com/cpmech/demon/persist"
	"github.com/cpmech/demon/rk"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	io.PfWhite("\nDemon -- charged-dust cloud integrator\n\n")

	run, err := config.ParseRun(os.Args[1:])
	if err != nil {
		chk.Panic("%v", err)
	}

	defer utl.Prof(false, false)()

	if run.Resume {
		resumeAndRun(run)
		return
	}
	freshRun(run)
}

// freshRun builds a new Cloud, wires the force.Registry in CLI flag
// order, and drives it to run.EndTime.
func freshRun(run *config.Run) {
	phys := config.DefaultPhysical()

	c, err := cloud.New(run.N, run.Dimension, run.CloudSize)
	if err != nil {
		chk.Panic("%v", err)
	}
	switch run.Dimension {
	case 1:
		c.InitLine()
	case 2:
		c.InitGrid2D()
	case 3:
		c.InitGrid3D()
	}
	c.SetCharges(cloud.DefaultChargeConfig(), phys, int(run.Seed))
	c.SetMasses(phys)

	reg := buildRegistry(c, phys, run)

	h := persist.NewHeader(c.Len(), c.Dim())
	if err := reg.WriteParams(h); err != nil {
		chk.Panic("%v", err)
	}

	w, err := persist.Create(run.OutFile, h, phys, c)
	if err != nil {
		chk.Panic("%v", err)
	}
	defer w.Close()

	ig := rk.NewIntegrator(c, reg, w, run.Cdt, 1e-4)
	if err := ig.Run(0, run.EndTime); err != nil {
		chk.Panic("%v", err)
	}

	io.Pf("done: %d particles, %dD, t_end=%g\n", c.Len(), c.Dim(), run.EndTime)
}

// resumeAndRun reopens an existing catalog, rebuilds its Cloud and
// Registry from the persisted header, checks it against the CLI
// flags, and continues integrating to run.EndTime.
func resumeAndRun(run *config.Run) {
	resumed, err := persist.Open(run.OutFile)
	if err != nil {
		chk.Panic("%v", err)
	}
	if run.N > 0 && run.N != resumed.Header.N {
		chk.Panic("%v", &config.ResumeMismatch{Msg: io.Sf("catalog has %d particles, CLI asked for %d", resumed.Header.N, run.N)})
	}
	if run.Dimension > 0 && run.Dimension != resumed.Header.Dimension {
		chk.Panic("%v", &config.ResumeMismatch{Msg: io.Sf("catalog is %dD, CLI asked for %dD", resumed.Header.Dimension, run.Dimension)})
	}

	phys := config.DefaultPhysical()
	reg := rebuildRegistry(resumed.Cloud, phys, resumed.Header)

	h := persist.NewHeader(resumed.Cloud.Len(), resumed.Cloud.Dim())
	if err := reg.WriteParams(h); err != nil {
		chk.Panic("%v", err)
	}

	w, err := persist.Create(run.OutFile+".resume", h, phys, resumed.Cloud)
	if err != nil {
		chk.Panic("%v", err)
	}
	defer w.Close()

	ig := rk.NewIntegrator(resumed.Cloud, reg, w, run.Cdt, 1e-4)
	if err := ig.Run(resumed.Time, run.EndTime); err != nil {
		chk.Panic("%v", err)
	}

	io.Pf("resumed from t=%g, ran to t_end=%g\n", resumed.Time, run.EndTime)
}

// buildRegistry wires every activated kernel into a force.Registry, in
// CLI flag order.
func buildRegistry(c *cloud.Cloud, phys config.Physical, run *config.Run) *force.Registry {
	reg := force.NewRegistry(force.NewCoulomb(c, phys))

	mustAdd := func(k force.Kernel, err error) {
		if err != nil {
			chk.Panic("%v", err)
		}
		reg.Add(k)
	}

	if run.Confine != nil {
		mustAdd(force.NewConfinement(c, *run.Confine, run.ConfineOff))
	}
	if run.RectConfineX != nil {
		mustAdd(force.NewRectConfinement(c, *run.RectConfineX, run.RectConfineY, run.RectConfineZ))
	}
	if run.Drag != nil {
		drag, err := force.NewDrag(c, *run.Drag)
		if err != nil {
			chk.Panic("%v", err)
		}
		if run.TVDragScale != 0 || run.TVDragOffset != 0 {
			reg.Add(force.NewTimeVaryingDrag(drag, run.TVDragScale, run.TVDragOffset))
		} else {
			reg.Add(drag)
		}
	}
	if run.Thermal != nil {
		thermal, err := force.NewThermal(c, *run.Thermal, run.Seed)
		if err != nil {
			chk.Panic("%v", err)
		}
		if run.TVThermalScale != 0 || run.TVThermalOffset != 0 {
			reg.Add(force.NewTimeVaryingThermal(thermal, run.TVThermalScale, run.TVThermalOffset))
		} else {
			reg.Add(thermal)
		}
	}
	if run.ThermalLocRHeat != nil {
		mustAdd(force.NewThermalLocalized(c, run.ThermalLocInner, run.ThermalLocOuter, *run.ThermalLocRHeat, run.Seed))
	}
	if run.RotInner != nil {
		mustAdd(force.NewRotational(c, run.RotConst, *run.RotInner, run.RotOuter))
	}
	if run.Mag != nil {
		mustAdd(force.NewMagnetic(c, *run.Mag))
	}
	return reg
}

// rebuildRegistry reconstructs the Registry that was active when a
// catalog was written, from its persisted bitmask, then lets each
// kernel read back its own scalar parameters.
func rebuildRegistry(c *cloud.Cloud, phys config.Physical, h *persist.Header) *force.Registry {
	reg := force.NewRegistry(force.NewCoulomb(c, phys))

	readInto := func(k force.Kernel) {
		if err := k.ReadParams(h); err != nil {
			chk.Panic("%v", err)
		}
		reg.Add(k)
	}

	if h.Bitmask.Has(config.ConfinementForceFlag) {
		k, _ := force.NewConfinement(c, 1, 0)
		readInto(k)
	}
	if h.Bitmask.Has(config.RectConfinementForceFlag) {
		k, _ := force.NewRectConfinement(c, 1, 1, 1)
		readInto(k)
	}
	if h.Bitmask.Has(config.DragForceFlag) {
		drag, _ := force.NewDrag(c, 1)
		if h.Bitmask.Has(config.TimeVaryingDragForceFlag) {
			readInto(force.NewTimeVaryingDrag(drag, 0, 0))
		} else {
			readInto(drag)
		}
	}
	if h.Bitmask.Has(config.ThermalForceFlag) {
		thermal, _ := force.NewThermal(c, 1, 0)
		if h.Bitmask.Has(config.TimeVaryingThermalForceFlag) {
			readInto(force.NewTimeVaryingThermal(thermal, 0, 0))
		} else {
			readInto(thermal)
		}
	}
	if h.Bitmask.Has(config.ThermalForceLocalizedFlag) {
		k, _ := force.NewThermalLocalized(c, 1, 1, 1, 0)
		readInto(k)
	}
	if h.Bitmask.Has(config.RotationalForceFlag) {
		k, _ := force.NewRotational(c, 1, 0, 1)
		readInto(k)
	}
	if h.Bitmask.Has(config.MagneticForceFlag) {
		k, _ := force.NewMagnetic(c, 0)
		readInto(k)
	}
	return reg
}
