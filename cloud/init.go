// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cloud

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// InitLine lays particles evenly along the x-axis across
// [-cloudSize, +cloudSize], zero velocity.
func (c *Cloud) InitLine() {
	xs := utl.LinSpace(-c.cloudSize, c.cloudSize, c.n)
	for i := 0; i < c.n; i++ {
		c.pos[0][i] = xs[i]
	}
}

// InitGrid2D lays particles on a square grid spanning
// [-cloudSize, +cloudSize] in x and y.
func (c *Cloud) InitGrid2D() {
	side := int(math.Ceil(math.Sqrt(float64(c.n))))
	xs := utl.LinSpace(-c.cloudSize, c.cloudSize, side)
	i := 0
	for row := 0; row < side && i < c.n; row++ {
		for col := 0; col < side && i < c.n; col++ {
			c.pos[0][i] = xs[col]
			c.pos[1][i] = xs[row]
			i++
		}
	}
}

// InitGrid3D lays particles on a cube grid spanning
// [-cloudSize, +cloudSize] in x, y, and z.
func (c *Cloud) InitGrid3D() {
	side := int(math.Ceil(math.Cbrt(float64(c.n))))
	xs := utl.LinSpace(-c.cloudSize, c.cloudSize, side)
	i := 0
	for layer := 0; layer < side && i < c.n; layer++ {
		for row := 0; row < side && i < c.n; row++ {
			for col := 0; col < side && i < c.n; col++ {
				c.pos[0][i] = xs[col]
				c.pos[1][i] = xs[row]
				c.pos[2][i] = xs[layer]
				i++
			}
		}
	}
}

// InitPosition sets particle i's position directly; used by tests and
// by the resume path. Axes beyond Dim() are ignored.
func (c *Cloud) InitPosition(i int, coords ...float64) {
	for a := 0; a < c.dim && a < len(coords); a++ {
		c.pos[a][i] = coords[a]
	}
}

// InitVelocity sets particle i's velocity directly.
func (c *Cloud) InitVelocity(i int, coords ...float64) {
	for a := 0; a < c.dim && a < len(coords); a++ {
		c.vel[a][i] = coords[a]
	}
}
