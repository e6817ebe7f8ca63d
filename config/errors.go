// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import "fmt"

// ConfigError reports a contradictory or missing activation flag, or a
// non-positive parameter, detected before the run starts.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "config: " + e.Msg }

// Errf builds a *ConfigError with a formatted message.
func Errf(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// ResumeMismatch reports that a catalog being resumed declares a
// configuration (N or dimension) that contradicts the CLI flags
// of the resuming run.
type ResumeMismatch struct {
	Msg string
}

func (e *ResumeMismatch) Error() string { return "resume mismatch: " + e.Msg }
