// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package persist is the binary tabular catalog adapter: it writes
// the initial cloud, per-step rows, and every kernel's parameters and
// flag bit to a FITS file, and reads them back to resume.
package persist

import "github.com/cpmech/demon/config"

// keyRecord is one scalar keyword pending a write; insertion order is
// preserved so the primary HDU's key order matches kernel
// registration order.
type keyRecord struct {
	key     string
	val     float64
	comment string
}

// Header accumulates the scalar keywords and bitmask that make up the
// primary HDU, and implements force.HeaderWriter/force.HeaderReader so
// every kernel can read/write its own parameters without persist
// needing to know kernel-specific field names.
type Header struct {
	N         int
	Dimension int
	Bitmask   config.Flag

	keys   []keyRecord
	lookup map[string]float64
}

// NewHeader builds an empty Header for N particles in the given
// dimension.
func NewHeader(n, dim int) *Header {
	return &Header{N: n, Dimension: dim, lookup: map[string]float64{}}
}

// SetFloat records a scalar keyword with its unit/description comment
// (force.HeaderWriter).
func (h *Header) SetFloat(key string, val float64, comment string) {
	h.keys = append(h.keys, keyRecord{key: key, val: val, comment: comment})
	if h.lookup == nil {
		h.lookup = map[string]float64{}
	}
	h.lookup[key] = val
}

// OrFlag ORs f into the active-force bitmask (force.HeaderWriter).
func (h *Header) OrFlag(f config.Flag) { h.Bitmask |= f }

// Float looks up a previously-read scalar keyword (force.HeaderReader).
func (h *Header) Float(key string) (float64, error) {
	v, ok := h.lookup[key]
	if !ok {
		return 0, config.Errf("catalog header is missing required key %q", key)
	}
	return v, nil
}
