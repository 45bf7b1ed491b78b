// SPDX-License-Identifier: MIT
// Package: masseyramanujan/recurrence
//
// family.go — the Family capability and the sequence producer contract.

package recurrence

import (
	"iter"
	"math/big"

	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/coef"
)

// SequenceFunc produces the terms of one side (a or b) of a recurrence for a
// fixed coefficient tuple. The returned sequence yields exactly length terms,
// for n = start, start+1, …, start+length-1; length ≤ 0 yields nothing.
//
// The tuple must have the family's degree-of-freedom count; that is the
// caller's contract and is not re-checked per term.
type SequenceFunc func(coefs coef.Tuple, length int, start int64) iter.Seq[int64]

// BigSequenceFunc is SequenceFunc over arbitrary-precision integers.
// Each yielded *big.Int is freshly allocated and owned by the receiver.
type BigSequenceFunc func(coefs coef.Tuple, length int, start int64) iter.Seq[*big.Int]

// Family is one recurrence shape. Implementations are stateless values and
// safe for concurrent use.
type Family interface {
	// Name is the registry key, e.g. "zeta3".
	Name() string

	// ADegreesOfFreedom is the number of free coefficients of a(n).
	ADegreesOfFreedom() int
	// BDegreesOfFreedom is the number of free coefficients of b(n).
	BDegreesOfFreedom() int

	// Calculation returns the a(n) and b(n) producers.
	Calculation() (an, bn SequenceFunc)
	// BigCalculation returns the a(n) and b(n) producers over *big.Int.
	BigCalculation() (an, bn BigSequenceFunc)

	// ADegree is the polynomial degree of a(n) for the tuple a.
	ADegree(a coef.Tuple) int
	// BDegree is the polynomial degree of b(n) for the tuple b.
	BDegree(b coef.Tuple) int
	// ALeadCoef is the leading coefficient of a(n).
	ALeadCoef(a coef.Tuple) int64
	// BLeadCoef is the leading coefficient of b(n).
	BLeadCoef(b coef.Tuple) int64

	// Converges is a necessary (not sufficient) convergence condition.
	// It is pure and never mutates its arguments.
	Converges(a, b coef.Tuple) bool
}

// sequence adapts a per-index term function to the SequenceFunc contract.
func sequence(length int, start int64, term func(n int64) int64) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for i := 0; i < length; i++ {
			if !yield(term(start + int64(i))) {
				return
			}
		}
	}
}

// bigSequence adapts a per-index big term function to BigSequenceFunc.
func bigSequence(length int, start int64, term func(n *big.Int) *big.Int) iter.Seq[*big.Int] {
	return func(yield func(*big.Int) bool) {
		n := big.NewInt(start)
		one := big.NewInt(1)
		for i := 0; i < length; i++ {
			if !yield(term(new(big.Int).Set(n))) {
				return
			}
			n.Add(n, one)
		}
	}
}

// balanced is the convergence screen for recurrences whose b degree is twice
// the a degree: 4·lead(b) ≥ −lead(a)². Inclusive so borderline tuples pass.
func balanced(leadA, leadB int64) bool {
	return leadB*4 >= -1*(leadA*leadA)
}
