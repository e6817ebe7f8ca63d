// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import "github.com/cpmech/demon/config"

// Registry is the ordered collection of kernels owned by a run. Order
// is preserved for deterministic floating-point behavior; the
// integrator invokes ForceK(k, t) once per substep.
type Registry struct {
	kernels []Kernel
}

// NewRegistry builds a Registry over kernels, in the given order.
func NewRegistry(kernels ...Kernel) *Registry {
	return &Registry{kernels: append([]Kernel(nil), kernels...)}
}

// Add appends a kernel to the end of the registry.
func (r *Registry) Add(k Kernel) { r.kernels = append(r.kernels, k) }

// Kernels returns the registry's kernels in registration order.
func (r *Registry) Kernels() []Kernel { return r.kernels }

// BeginStep calls BeginStep(step) on every kernel, in order.
func (r *Registry) BeginStep(step uint64) {
	for _, k := range r.kernels {
		k.BeginStep(step)
	}
}

// ForceK dispatches substep k (1..4) to every kernel in registry
// order.
func (r *Registry) ForceK(k int, t float64) error {
	for _, kern := range r.kernels {
		var err error
		switch k {
		case 1:
			err = kern.Force1(t)
		case 2:
			err = kern.Force2(t)
		case 3:
			err = kern.Force3(t)
		case 4:
			err = kern.Force4(t)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Bitmask ORs together every kernel's Flag().
func (r *Registry) Bitmask() config.Flag {
	var m config.Flag
	for _, k := range r.kernels {
		m |= k.Flag()
	}
	return m
}

// WriteParams calls WriteParams on every kernel, in order.
func (r *Registry) WriteParams(h HeaderWriter) error {
	for _, k := range r.kernels {
		if err := k.WriteParams(h); err != nil {
			return err
		}
	}
	return nil
}
