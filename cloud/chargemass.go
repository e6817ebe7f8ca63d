// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cloud

import (
	"math"

	"github.com/cpmech/demon/config"
	"github.com/cpmech/gosl/rnd"
)

// ChargeConfig selects how particle charge is sampled. With QSigma == 0
// charge is uniform in the band QMean-100..QMean+100 electrons
// (DefaultChargeConfig gives the 5900-6100 band); setting QSigma > 0
// switches to the Gaussian (QMean, QSigma) variant.
type ChargeConfig struct {
	QMean  float64 // electron multiples; default band center is 6000
	QSigma float64 // electron multiples; 0 means "use the uniform band"
}

// DefaultChargeConfig returns the uniform 5900-6100 electron-multiple
// band.
func DefaultChargeConfig() ChargeConfig {
	return ChargeConfig{QMean: 6000, QSigma: 0}
}

// SetCharges samples every particle's charge from cfg, seeded
// explicitly from seed.
func (c *Cloud) SetCharges(cfg ChargeConfig, phys config.Physical, seed int) {
	rnd.Init(seed)
	for i := 0; i < c.n; i++ {
		var multiples float64
		if cfg.QSigma > 0 {
			multiples = rnd.Normal(cfg.QMean, cfg.QSigma)
		} else {
			multiples = rnd.Float64(cfg.QMean-100, cfg.QMean+100)
		}
		c.charge[i] = -multiples * phys.ElementaryCharge
	}
}

// SetMasses derives every particle's mass from the fixed radius and
// density in phys: m = (4/3)*pi*r^3*rho.
func (c *Cloud) SetMasses(phys config.Physical) {
	m := (4.0 / 3.0) * math.Pi * phys.ParticleRadius * phys.ParticleRadius * phys.ParticleRadius * phys.DustDensity
	for i := 0; i < c.n; i++ {
		c.mass[i] = m
	}
}
