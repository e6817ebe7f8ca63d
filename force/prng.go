// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import "math"

// StepRand derives a deterministic pseudo-random value in [0,1) from
// (seed, step, particle, salt). The same inputs always yield the same
// value, with no shared mutable generator state between goroutines.
// salt distinguishes independent streams drawn within the same step.
func StepRand(seed int64, step uint64, particle uint32, salt uint64) float64 {
	x := uint64(seed) ^ (step * 0x9E3779B97F4A7C15) ^ (uint64(particle) * 0xBF58476D1CE4E5B9) ^ (salt * 0x94D049BB133111EB)
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31
	return float64(x>>11) * (1.0 / float64(uint64(1)<<53))
}

// StepAngle derives a deterministic angle in [0, 2*pi) from the same
// inputs as StepRand.
func StepAngle(seed int64, step uint64, particle uint32, salt uint64) float64 {
	return StepRand(seed, step, particle, salt) * 2 * math.Pi
}
