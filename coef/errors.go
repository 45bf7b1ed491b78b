// SPDX-License-Identifier: MIT
// Package: masseyramanujan/coef
//
// errors.go — sentinel errors for range bookkeeping.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Call sites attach context with %w (axis index, offending values).

package coef

import "errors"

var (
	// ErrArity indicates a range list or tuple whose length differs from the
	// family's degree-of-freedom count.
	ErrArity = errors.New("coef: wrong number of coefficients")

	// ErrInvertedRange indicates a Range with Min > Max where an empty axis
	// was not explicitly allowed.
	ErrInvertedRange = errors.New("coef: range min exceeds max")

	// ErrMagnitude indicates a range bound outside [-MaxMagnitude, MaxMagnitude].
	ErrMagnitude = errors.New("coef: coefficient magnitude too large")

	// ErrOverflow indicates that a grid cardinality does not fit in int64.
	ErrOverflow = errors.New("coef: cardinality overflows int64")
)
