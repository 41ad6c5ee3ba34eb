// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heapsort

import "cloudeng.io/payroll/employee"

type options struct {
	callback func(iv, jv employee.Record, i, j int)
}

// Option represents the options that can be passed to Sort.
type Option func(*options)

// WithSwapCallback provides a callback function that is called after every
// swap with the records, and their indices, that have changed location,
// ie. iv is now at index i and jv at index j.
func WithSwapCallback(fn func(iv, jv employee.Record, i, j int)) Option {
	return func(o *options) {
		o.callback = fn
	}
}
