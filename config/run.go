// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"flag"
)

// Run holds everything parsed from the command line for one
// simulation run.
type Run struct {
	N         int
	CloudSize float64
	EndTime   float64
	Dimension int
	OutFile   string
	Cdt       float64 // candidate/target step (init_dt)
	Seed      int64
	Resume    bool

	Confine         *float64
	ConfineOff      float64
	RectConfineX    *float64
	RectConfineY    float64
	RectConfineZ    float64
	Drag            *float64
	TVDragScale     float64
	TVDragOffset    float64
	Thermal         *float64
	TVThermalScale  float64
	TVThermalOffset float64
	ThermalLocInner float64
	ThermalLocOuter float64
	ThermalLocRHeat *float64
	RotInner        *float64
	RotOuter        float64
	RotConst        float64
	Mag             *float64
}

// ParseRun registers and parses the CLI flag surface; fatal errors
// are left to the caller: validation failures as a *ConfigError,
// flag-syntax failures as the flag package's own error.
func ParseRun(args []string) (*Run, error) {
	fs := flag.NewFlagSet("demon", flag.ContinueOnError)

	r := &Run{}
	fs.IntVar(&r.N, "n", 0, "number of particles")
	fs.Float64Var(&r.CloudSize, "s", 0, "cloud half-width [m]")
	fs.Float64Var(&r.EndTime, "t", 0, "end time [s]")
	fs.IntVar(&r.Dimension, "d", 0, "dimension (1, 2, or 3)")
	fs.StringVar(&r.OutFile, "o", "", "output catalog path")
	fs.Float64Var(&r.Cdt, "c", 0, "candidate timestep [s]")
	fs.Int64Var(&r.Seed, "seed", 1, "PRNG seed")
	fs.BoolVar(&r.Resume, "resume", false, "resume from -o instead of starting fresh")

	confine := fs.Float64("confine", 0, "harmonic confinement constant")
	confineOff := fs.Float64("confineOffset", 0, "harmonic confinement equilibrium radius")
	rectX := fs.Float64("rectconfineX", 0, "rectangular confinement constant, x axis")
	rectY := fs.Float64("rectconfineY", 0, "rectangular confinement constant, y axis")
	rectZ := fs.Float64("rectconfineZ", 0, "rectangular confinement constant, z axis")
	drag := fs.Float64("drag", 0, "drag coefficient gamma")
	tvDragScale := fs.Float64("tvdragScale", 0, "time-varying drag scale")
	tvDragOffset := fs.Float64("tvdragOffset", 0, "time-varying drag offset")
	thermal := fs.Float64("thermal", 0, "thermal heating magnitude")
	tvThermalScale := fs.Float64("tvthermalScale", 0, "time-varying thermal scale")
	tvThermalOffset := fs.Float64("tvthermalOffset", 0, "time-varying thermal offset")
	thermalLocInner := fs.Float64("thermalLocInner", 0, "localized thermal inner magnitude")
	thermalLocOuter := fs.Float64("thermalLocOuter", 0, "localized thermal outer magnitude")
	thermalLocRHeat := fs.Float64("thermalLocRHeat", 0, "localized thermal radius")
	rotInner := fs.Float64("rotInner", 0, "rotational inner radius")
	rotOuter := fs.Float64("rotOuter", 0, "rotational outer radius")
	rotConst := fs.Float64("rotConst", 0, "rotational force constant")
	mag := fs.Float64("mag", 0, "magnetic field strength B [T]")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if isSet(fs, "confine") {
		r.Confine = confine
		r.ConfineOff = *confineOff
	}
	if isSet(fs, "rectconfineX") {
		r.RectConfineX = rectX
		r.RectConfineY = *rectY
		r.RectConfineZ = *rectZ
	}
	if isSet(fs, "drag") {
		r.Drag = drag
	}
	if isSet(fs, "tvdragScale") {
		r.TVDragScale = *tvDragScale
		r.TVDragOffset = *tvDragOffset
	}
	if isSet(fs, "thermal") {
		r.Thermal = thermal
	}
	if isSet(fs, "tvthermalScale") {
		r.TVThermalScale = *tvThermalScale
		r.TVThermalOffset = *tvThermalOffset
	}
	if isSet(fs, "thermalLocRHeat") {
		r.ThermalLocInner = *thermalLocInner
		r.ThermalLocOuter = *thermalLocOuter
		r.ThermalLocRHeat = thermalLocRHeat
	}
	if isSet(fs, "rotOuter") {
		r.RotInner = rotInner
		r.RotOuter = *rotOuter
		r.RotConst = *rotConst
	}
	if isSet(fs, "mag") {
		r.Mag = mag
	}

	if !r.Resume {
		if r.N <= 0 {
			return nil, Errf("-n (particle count) must be positive")
		}
		if r.Dimension < 1 || r.Dimension > 3 {
			return nil, Errf("-d (dimension) must be 1, 2, or 3, got %d", r.Dimension)
		}
		if r.CloudSize <= 0 {
			return nil, Errf("-s (cloud size) must be positive")
		}
	}
	if r.OutFile == "" {
		return nil, Errf("-o (output file) is required")
	}
	if r.Cdt <= 0 {
		return nil, Errf("-c (candidate timestep) must be positive")
	}
	return r, nil
}

func isSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
