// SPDX-License-Identifier: MIT
// Package: masseyramanujan/coef
//
// product.go — lazy cartesian product over Ranges.
//
// Algorithm (odometer):
//  1. Start every axis at its Min.
//  2. Yield a copy of the counters.
//  3. Increment the last axis; on passing Max reset it to Min and carry into
//     the axis before it. When the carry falls off axis 0 the walk is done.
//
// Complexity: O(k) amortized per yielded tuple (k = number of axes),
// O(k) memory regardless of the grid size.

package coef

import "iter"

// Product returns the cartesian product of rs in declared axis order, the
// first axis varying slowest. It yields nothing when rs has no axis or any
// axis is empty. Each yielded Tuple is freshly allocated.
//
// The returned sequence holds no state between range loops: ranging over it
// twice walks the grid twice from the beginning. Breaking out of a loop early
// releases everything.
func Product(rs Ranges) iter.Seq[Tuple] {
	axes := rs.Clone()

	return func(yield func(Tuple) bool) {
		if axes.Empty() {
			return
		}

		cur := make(Tuple, len(axes))
		for i, r := range axes {
			cur[i] = r.Min
		}

		for {
			if !yield(cur.Clone()) {
				return
			}
			if !advance(cur, axes) {
				return
			}
		}
	}
}

// advance moves cur to the next grid point. It reports false once every
// axis has wrapped, i.e. the walk is complete.
func advance(cur Tuple, axes Ranges) bool {
	for i := len(axes) - 1; i >= 0; i-- {
		if cur[i] < axes[i].Max {
			cur[i]++

			return true
		}
		cur[i] = axes[i].Min
	}

	return false
}
