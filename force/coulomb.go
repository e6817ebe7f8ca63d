// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import (
	"math"

	"github.com/cpmech/demon/cloud"
	"github.com/cpmech/demon/config"
)

// Coulomb is the pairwise interparticle electrostatic force: for
// every distinct pair (i,j), F_i += kappa*qi*qj*delta/r^3 and F_j
// receives the exact negation (Newton's third law halves the work).
type Coulomb struct {
	Cloud *cloud.Cloud
	Kappa float64 // 1/(4*pi*epsilon0), config.Physical.CoulombConst()
}

// NewCoulomb builds the Coulomb kernel over c with the given Physical
// constants.
func NewCoulomb(c *cloud.Cloud, phys config.Physical) *Coulomb {
	return &Coulomb{Cloud: c, Kappa: phys.CoulombConst()}
}

func (o *Coulomb) BeginStep(uint64) {}

func (o *Coulomb) Force1(t float64) error { return o.force(1) }
func (o *Coulomb) Force2(t float64) error { return o.force(2) }
func (o *Coulomb) Force3(t float64) error { return o.force(3) }
func (o *Coulomb) Force4(t float64) error { return o.force(4) }

func (o *Coulomb) Flag() config.Flag { return 0 } // Coulomb is always on; no bitmask bit of its own.

func (o *Coulomb) force(k int) error {
	c := o.Cloud
	n := c.Len()
	dim := c.Dim()
	kappa := o.Kappa

	// Each worker accumulates into its own partial force buffer;
	// partials are reduced into the shared accumulator at the end.
	type partial struct {
		f [3][]float64
	}
	workers := chunkCount(n)
	partials := make([]partial, workers)
	for w := range partials {
		for a := 0; a < dim; a++ {
			partials[w].f[a] = make([]float64, n)
		}
	}

	runChunks(n, workers, func(w, start, end int) {
		pf := &partials[w]
		for i := start; i < end; i++ {
			for j := i + 1; j < n; j++ {
				var delta [3]float64
				r2 := 0.0
				for a := 0; a < dim; a++ {
					delta[a] = c.ViewPosition(a, k, i) - c.ViewPositionRev(a, k, j)
					r2 += delta[a] * delta[a]
				}
				r := math.Sqrt(r2)
				if r == 0 {
					continue
				}
				qi := c.Charge()[i]
				qj := c.Charge()[j]
				coef := kappa * qi * qj / (r * r * r)
				for a := 0; a < dim; a++ {
					pf.f[a][i] += coef * delta[a]
					pf.f[a][j] -= coef * delta[a]
				}
			}
		}
	})

	for a := 0; a < dim; a++ {
		f := c.Force(a)
		for w := range partials {
			pf := partials[w].f[a]
			for i := 0; i < n; i++ {
				f[i] += pf[i]
			}
		}
	}
	return nil
}

func (o *Coulomb) WriteParams(h HeaderWriter) error { return nil } // no scalar parameters of its own
func (o *Coulomb) ReadParams(h HeaderReader) error  { return nil }
