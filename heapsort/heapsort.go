// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heapsort provides an in-place heapsort that orders employee
// records by descending salary. A min-heap is used so that repeatedly
// moving the smallest remaining salary to the end of the unsorted prefix
// leaves the largest salaries at the front.
//
// The sort is not stable: the relative order of records with equal
// salaries is deterministic but unspecified. The caller must not access
// the slice from any other goroutine whilst Sort is running.
package heapsort

import "cloudeng.io/payroll/employee"

// Sort sorts records in place such that records[i].Salary >=
// records[i+1].Salary. Slices with fewer than two records are left
// unchanged.
func Sort(records []employee.Record, opts ...Option) {
	if len(records) <= 1 {
		return
	}
	s := newSorter(records, opts)
	s.build()
	for i := len(records) - 1; i > 0; i-- {
		s.swap(0, i)
		s.siftDown(0, i)
	}
}

type sorter struct {
	options
	records []employee.Record
}

func newSorter(records []employee.Record, opts []Option) *sorter {
	s := &sorter{records: records}
	for _, fn := range opts {
		fn(&s.options)
	}
	return s
}

// build establishes the min-heap property by sifting down every
// internal node, starting with the last. Each node's subtrees are
// therefore valid heaps by the time it is visited.
func (s *sorter) build() {
	n := len(s.records)
	for i := n/2 - 1; i >= 0; i-- {
		s.siftDown(i, n)
	}
}

// siftDown restores the min-heap property for the subtree rooted at i
// within the first n records. On equal salaries the parent is preferred
// over either child and the left child over the right.
func (s *sorter) siftDown(i, n int) {
	for {
		smallest := i
		l := (2 * i) + 1
		if l < n && s.less(l, smallest) {
			smallest = l
		}
		if r := l + 1; r < n && s.less(r, smallest) {
			smallest = r
		}
		if smallest == i {
			return
		}
		s.swap(i, smallest)
		i = smallest
	}
}

func (s *sorter) less(i, j int) bool {
	return s.records[i].Salary < s.records[j].Salary
}

func (s *sorter) swap(i, j int) {
	s.records[i], s.records[j] = s.records[j], s.records[i]
	if s.callback != nil {
		s.callback(s.records[i], s.records[j], i, j)
	}
}
