// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import "github.com/cpmech/demon/config"

// fakeHeader is a minimal in-memory HeaderWriter/HeaderReader used by
// kernel tests to round-trip WriteParams/ReadParams without needing a
// real persist.Header.
type fakeHeader struct {
	floats map[string]float64
	flag   config.Flag
}

func (h *fakeHeader) SetFloat(key string, val float64, comment string) { h.floats[key] = val }
func (h *fakeHeader) OrFlag(f config.Flag)                             { h.flag |= f }
func (h *fakeHeader) Float(key string) (float64, error)                { return h.floats[key], nil }
