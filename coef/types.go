// SPDX-License-Identifier: MIT
// Package: masseyramanujan/coef
//
// types.go — Range, Ranges and Tuple.

package coef

import (
	"iter"
	"math"
	"strconv"
	"strings"
)

// MaxMagnitude bounds the absolute value of every range endpoint.
// With |x| ≤ 2^15 the leading-coefficient products used by convergence
// predicates stay below 2^62.
const MaxMagnitude int64 = 1 << 15

// Range is an inclusive integer interval [Min, Max] over which one free
// coefficient ranges. Min > Max denotes an empty interval.
type Range struct {
	Min int64 `json:"min" yaml:"min" toml:"min"`
	Max int64 `json:"max" yaml:"max" toml:"max"`
}

// Len returns the number of integers in r, 0 when r is empty.
// ok is false when the count exceeds math.MaxInt64; n is then 0.
// Complexity: O(1).
func (r Range) Len() (n int64, ok bool) {
	if r.Min > r.Max {
		return 0, true
	}
	// Two's-complement difference is exact for Min <= Max.
	width := uint64(r.Max) - uint64(r.Min)
	if width >= math.MaxInt64 {
		return 0, false
	}

	return int64(width) + 1, true
}

// Empty reports whether r contains no integer.
func (r Range) Empty() bool { return r.Min > r.Max }

// Contains reports whether x ∈ [Min, Max].
func (r Range) Contains(x int64) bool { return x >= r.Min && x <= r.Max }

// Values yields Min, Min+1, …, Max in ascending order.
// The loop terminates on equality rather than x <= Max so that Max ==
// math.MaxInt64 cannot wrap around.
func (r Range) Values() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		if r.Empty() {
			return
		}
		for x := r.Min; ; x++ {
			if !yield(x) || x == r.Max {
				return
			}
		}
	}
}

// String renders r as "[min,max]".
func (r Range) String() string {
	return "[" + strconv.FormatInt(r.Min, 10) + "," + strconv.FormatInt(r.Max, 10) + "]"
}

// Ranges is the ordered range specification of one family. Index i is the
// range of coefficient x_i; the order is significant.
type Ranges []Range

// Clone returns an independent copy of rs.
func (rs Ranges) Clone() Ranges {
	if rs == nil {
		return nil
	}
	out := make(Ranges, len(rs))
	copy(out, rs)

	return out
}

// Empty reports whether the cartesian product of rs has no element: either
// rs has no axis or at least one axis is empty.
func (rs Ranges) Empty() bool {
	if len(rs) == 0 {
		return true
	}
	for _, r := range rs {
		if r.Empty() {
			return true
		}
	}

	return false
}

// Cardinality returns the product of the axis lengths. An empty Ranges (no
// axes) has cardinality 0, consistent with Product yielding nothing.
// Returns ErrOverflow if the product does not fit in int64.
// Complexity: O(len(rs)).
func (rs Ranges) Cardinality() (int64, error) {
	if rs.Empty() {
		return 0, nil
	}
	total := int64(1)
	for i, r := range rs {
		n, ok := r.Len()
		if !ok || total > math.MaxInt64/n {
			return 0, axisErr(ErrOverflow, i, r)
		}
		total *= n
	}

	return total, nil
}

// String renders rs as "[[min,max] [min,max] …]".
func (rs Ranges) String() string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = r.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Tuple is one concrete coefficient per degree of freedom, in the same order
// as the Ranges it was drawn from. Tuples handed out by Product are never
// reused, so holding on to one is safe.
type Tuple []int64

// Clone returns an independent copy of t.
func (t Tuple) Clone() Tuple {
	if t == nil {
		return nil
	}
	out := make(Tuple, len(t))
	copy(out, t)

	return out
}

// Equal reports whether t and u hold the same coefficients in the same order.
func (t Tuple) Equal(u Tuple) bool {
	if len(t) != len(u) {
		return false
	}
	for i := range t {
		if t[i] != u[i] {
			return false
		}
	}

	return true
}

// String renders t as "(x0, x1, …)".
func (t Tuple) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range t {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatInt(x, 10))
	}
	sb.WriteByte(')')

	return sb.String()
}
