// SPDX-License-Identifier: MIT
// Package: masseyramanujan/coef
//
// validate.go — eager checks on range specifications.
//
// Priority when several checks fail: arity, then ordering, then magnitude.

package coef

import "fmt"

// Validate checks rs against a family with dof degrees of freedom.
//
//   - len(rs) must equal dof                        → ErrArity
//   - every axis must satisfy Min ≤ Max             → ErrInvertedRange
//     (skipped when allowEmpty is true; such axes are simply empty)
//   - every endpoint must satisfy |x| ≤ MaxMagnitude → ErrMagnitude
//
// Complexity: O(len(rs)).
func (rs Ranges) Validate(dof int, allowEmpty bool) error {
	if len(rs) != dof {
		return fmt.Errorf("%w: want %d ranges, got %d", ErrArity, dof, len(rs))
	}
	for i, r := range rs {
		if r.Empty() && !allowEmpty {
			return axisErr(ErrInvertedRange, i, r)
		}
		if !inMagnitude(r.Min) || !inMagnitude(r.Max) {
			return axisErr(ErrMagnitude, i, r)
		}
	}

	return nil
}

// CheckTuple verifies that t has exactly dof coefficients.
func CheckTuple(t Tuple, dof int) error {
	if len(t) != dof {
		return fmt.Errorf("%w: want %d coefficients, got %d", ErrArity, dof, len(t))
	}

	return nil
}

func inMagnitude(x int64) bool {
	return x >= -MaxMagnitude && x <= MaxMagnitude
}

// axisErr attaches the axis index and its interval to a sentinel.
func axisErr(sentinel error, axis int, r Range) error {
	return fmt.Errorf("%w: axis x%d %s", sentinel, axis, r)
}
