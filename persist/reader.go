// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package persist

import (
	"os"

	"github.com/astrogo/fitsio"
	"github.com/cpmech/demon/cloud"
	"github.com/cpmech/demon/config"
)

// Resumed holds everything Open recovers from an existing catalog:
// the reconstructed Cloud (mass/charge from CLOUD, last position/
// velocity row from STEPS), the Header (for kernel ReadParams and the
// config.ResumeMismatch check), and the time of that last row.
type Resumed struct {
	Cloud  *cloud.Cloud
	Header *Header
	Time   float64
}

// Open reads an existing catalog back for resuming: primary-HDU
// scalar keys into a Header, CLOUD's MASS/CHARGE columns, and the
// final STEPS row's positions and velocities.
func Open(path string) (*Resumed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IoError{Op: "open", Err: err}
	}
	defer f.Close()

	file, err := fitsio.Open(f)
	if err != nil {
		return nil, &IoError{Op: "fitsio.Open", Err: err}
	}
	defer file.Close()

	h, err := readHeader(file)
	if err != nil {
		return nil, err
	}

	// cloudSize is not persisted; positions come from the last row.
	c, err := cloud.New(h.N, h.Dimension, 1.0)
	if err != nil {
		return nil, &IoError{Op: "reconstruct cloud", Err: err}
	}

	cloudTable, err := findTable(file, "CLOUD")
	if err != nil {
		return nil, err
	}
	if err := readCloudTable(cloudTable, c); err != nil {
		return nil, err
	}

	stepsTable, err := findTable(file, "STEPS")
	if err != nil {
		return nil, err
	}
	t, err := readLastStepsRow(stepsTable, c)
	if err != nil {
		return nil, err
	}

	return &Resumed{Cloud: c, Header: h, Time: t}, nil
}

func findTable(file *fitsio.File, name string) (*fitsio.Table, error) {
	for _, hdu := range file.HDUs() {
		if hdu.Name() == name {
			if t, ok := hdu.(*fitsio.Table); ok {
				return t, nil
			}
		}
	}
	return nil, &IoError{Op: "find " + name, Err: config.Errf("catalog has no %s table", name)}
}

func readHeader(file *fitsio.File) (*Header, error) {
	hdus := file.HDUs()
	if len(hdus) == 0 {
		return nil, &IoError{Op: "read primary HDU", Err: config.Errf("catalog has no primary HDU")}
	}
	hdr := hdus[0].Header()
	h := NewHeader(0, 0)
	for _, key := range hdr.Keys() {
		card := hdr.Get(key)
		if card == nil {
			continue
		}
		switch card.Name {
		case "NPARTS":
			h.N = toInt(card.Value)
		case "NDIM":
			h.Dimension = toInt(card.Value)
		case "FORCEBIT":
			h.Bitmask = config.Flag(toInt(card.Value))
		default:
			if v, ok := toFloat(card.Value); ok {
				h.SetFloat(card.Name, v, card.Comment)
			}
		}
	}
	return h, nil
}

func toInt(v interface{}) int {
	switch x := v.(type) {
	case int:
		return x
	case int64:
		return int(x)
	case float64:
		return int(x)
	}
	return 0
}

func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	}
	return 0, false
}

func readCloudTable(t *fitsio.Table, c *cloud.Cloud) error {
	rows, err := t.Read(0, t.NumRows())
	if err != nil {
		return &IoError{Op: "read CLOUD rows", Err: err}
	}
	defer rows.Close()
	for i := 0; rows.Next(); i++ {
		var mass, charge float64
		if err := rows.Scan(&mass, &charge); err != nil {
			return &IoError{Op: "scan CLOUD row", Err: err}
		}
		if i < c.Len() {
			c.Mass()[i] = mass
			c.Charge()[i] = charge
		}
	}
	return nil
}

// readLastStepsRow reads the final STEPS row into c and returns its
// TIME, matching Writer.WriteRow's layout.
func readLastStepsRow(t *fitsio.Table, c *cloud.Cloud) (float64, error) {
	n := t.NumRows()
	if n < 1 {
		return 0, &IoError{Op: "read STEPS", Err: config.Errf("catalog has no STEPS rows")}
	}
	rows, err := t.Read(n-1, n)
	if err != nil {
		return 0, &IoError{Op: "read final STEPS row", Err: err}
	}
	defer rows.Close()
	dim := c.Dim()
	nParts := c.Len()

	var tm float64
	pos := make([][]float64, nParts)
	vel := make([][]float64, nParts)
	vals := make([]interface{}, 1+2*dim*nParts)
	vals[0] = &tm
	idx := 1
	for i := 0; i < nParts; i++ {
		pos[i] = make([]float64, dim)
		vel[i] = make([]float64, dim)
		for a := 0; a < dim; a++ {
			vals[idx] = &pos[i][a]
			idx++
			vals[idx] = &vel[i][a]
			idx++
		}
	}

	if !rows.Next() {
		return 0, &IoError{Op: "read final STEPS row", Err: config.Errf("no rows returned")}
	}
	if err := rows.Scan(vals...); err != nil {
		return 0, &IoError{Op: "scan STEPS row", Err: err}
	}
	for i := 0; i < nParts; i++ {
		for a := 0; a < dim; a++ {
			c.Position(a)[i] = pos[i][a]
			c.Velocity(a)[i] = vel[i][a]
		}
	}
	return tm, nil
}
