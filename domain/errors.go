// SPDX-License-Identifier: MIT
// Package: masseyramanujan/domain
//
// errors.go — sentinel errors for the enumerator.
//
// Error policy:
//   • Sentinels only; branch with errors.Is.
//   • Context is attached as "<Method>: …: %w".
//   • Range-level sentinels (coef.ErrArity, coef.ErrInvertedRange,
//     coef.ErrMagnitude) pass through New unchanged for errors.Is.

package domain

import (
	"errors"
	"fmt"
)

// Method tokens used as error prefixes.
const (
	MethodNew     = "New"
	MethodIterate = "Iterate"
	MethodCount   = "Count"
)

var (
	// ErrNilFamily indicates a Config without a recurrence family.
	ErrNilFamily = errors.New("domain: family is required")

	// ErrUnknownPrimary indicates a primary token other than "a" or "b".
	ErrUnknownPrimary = errors.New("domain: unknown primary family")

	// ErrDomainTooLarge indicates that the candidate count overflows int64.
	ErrDomainTooLarge = errors.New("domain: candidate count overflows int64")
)

// domainErrorf prefixes a formatted message with the method token.
func domainErrorf(method, format string, args ...any) error {
	return fmt.Errorf("%s: "+format, append([]any{method}, args...)...)
}
