// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package persist

// IoError reports a nonzero status from the underlying FITS adapter;
// fatal, surfaces the adapter's own error verbatim.
type IoError struct {
	Op  string
	Err error
}

func (e *IoError) Error() string { return "persist: " + e.Op + ": " + e.Err.Error() }

func (e *IoError) Unwrap() error { return e.Err }
