// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package persist

import (
	"os"
	"strconv"

	"github.com/astrogo/fitsio"
	"github.com/cpmech/demon/cloud"
	"github.com/cpmech/demon/config"
)

var axisPos = [3]string{"X", "Y", "Z"}
var axisVel = [3]string{"VX", "VY", "VZ"}

// Writer appends one row per outer RK4 step to a FITS catalog: a
// primary HDU of scalar keys, a CLOUD table holding the initial
// mass/charge, and a STEPS table holding TIME plus every particle's
// position/velocity components for each active axis. The STEPS column
// set is generated once at Create time; rows accumulate in the table
// and the HDU is serialized at Close.
type Writer struct {
	osFile *os.File
	file   *fitsio.File
	steps  *fitsio.Table
	n      int
	dim    int
}

// stepsColumns builds the STEPS table's column set for n particles in
// dim axes: TIME, then one X<i>/VX<i>[/Y<i>/VY<i>[/Z<i>/VZ<i>]] block
// per particle index i.
func stepsColumns(n, dim int) []fitsio.Column {
	cols := []fitsio.Column{{Name: "TIME", Format: "1D", Unit: "s"}}
	for i := 0; i < n; i++ {
		suffix := strconv.Itoa(i)
		for a := 0; a < dim; a++ {
			cols = append(cols,
				fitsio.Column{Name: axisPos[a] + suffix, Format: "1D", Unit: "m"},
				fitsio.Column{Name: axisVel[a] + suffix, Format: "1D", Unit: "m/s"},
			)
		}
	}
	return cols
}

// Create opens path for writing and emits the primary HDU and CLOUD
// table immediately; STEPS rows are appended later via WriteRow.
func Create(path string, h *Header, phys config.Physical, c *cloud.Cloud) (*Writer, error) {
	osFile, err := os.Create(path)
	if err != nil {
		return nil, &IoError{Op: "create", Err: err}
	}
	file, err := fitsio.Create(osFile)
	if err != nil {
		osFile.Close()
		return nil, &IoError{Op: "fitsio.Create", Err: err}
	}

	cards := []fitsio.Card{
		{Name: "NPARTS", Value: h.N, Comment: "number of particles"},
		{Name: "NDIM", Value: h.Dimension, Comment: "dimension (1, 2 or 3)"},
		{Name: "FORCEBIT", Value: int64(h.Bitmask), Comment: "active-force bitmask"},
		{Name: "ELEMCHG", Value: phys.ElementaryCharge, Comment: "[C] elementary charge"},
		{Name: "VACPERM", Value: phys.VacuumPermit, Comment: "[F/m] vacuum permittivity"},
		{Name: "PARTRAD", Value: phys.ParticleRadius, Comment: "[m] particle radius"},
		{Name: "DUSTRHO", Value: phys.DustDensity, Comment: "[kg/m^3] dust material density"},
	}
	for _, k := range h.keys {
		cards = append(cards, fitsio.Card{Name: k.key, Value: k.val, Comment: k.comment})
	}
	phdu, err := fitsio.NewPrimaryHDU(fitsio.NewHeader(cards, fitsio.IMAGE_HDU, 8, []int{0}))
	if err != nil {
		return nil, &IoError{Op: "NewPrimaryHDU", Err: err}
	}
	if err := file.Write(phdu); err != nil {
		return nil, &IoError{Op: "write primary HDU", Err: err}
	}

	cloudTable, err := fitsio.NewTable("CLOUD", []fitsio.Column{
		{Name: "MASS", Format: "1D", Unit: "kg"},
		{Name: "CHARGE", Format: "1D", Unit: "C"},
	}, fitsio.BINARY_TBL)
	if err != nil {
		return nil, &IoError{Op: "NewTable CLOUD", Err: err}
	}
	for i := 0; i < c.Len(); i++ {
		mass, charge := c.Mass()[i], c.Charge()[i]
		if err := cloudTable.Write(&mass, &charge); err != nil {
			return nil, &IoError{Op: "write CLOUD row", Err: err}
		}
	}
	if err := file.Write(cloudTable); err != nil {
		return nil, &IoError{Op: "write CLOUD HDU", Err: err}
	}
	if err := cloudTable.Close(); err != nil {
		return nil, &IoError{Op: "close CLOUD HDU", Err: err}
	}

	stepsTable, err := fitsio.NewTable("STEPS", stepsColumns(c.Len(), c.Dim()), fitsio.BINARY_TBL)
	if err != nil {
		return nil, &IoError{Op: "NewTable STEPS", Err: err}
	}

	return &Writer{osFile: osFile, file: file, steps: stepsTable, n: c.Len(), dim: c.Dim()}, nil
}

// WriteRow appends one STEPS row for the whole cloud's current
// position/velocity at time t. Implements rk.RowWriter.
func (w *Writer) WriteRow(t float64, c *cloud.Cloud) error {
	vals := make([]float64, 1+2*w.dim*w.n)
	vals[0] = t
	idx := 1
	for i := 0; i < w.n; i++ {
		for a := 0; a < w.dim; a++ {
			vals[idx] = c.Position(a)[i]
			vals[idx+1] = c.Velocity(a)[i]
			idx += 2
		}
	}
	row := make([]interface{}, len(vals))
	for i := range vals {
		row[i] = &vals[i]
	}
	if err := w.steps.Write(row...); err != nil {
		return &IoError{Op: "write STEPS row", Err: err}
	}
	return nil
}

// Close serializes the STEPS HDU and closes the underlying file.
func (w *Writer) Close() error {
	if err := w.file.Write(w.steps); err != nil {
		w.osFile.Close()
		return &IoError{Op: "write STEPS HDU", Err: err}
	}
	if err := w.steps.Close(); err != nil {
		w.osFile.Close()
		return &IoError{Op: "close STEPS HDU", Err: err}
	}
	if err := w.file.Close(); err != nil {
		w.osFile.Close()
		return &IoError{Op: "close", Err: err}
	}
	return w.osFile.Close()
}
