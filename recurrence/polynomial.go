// SPDX-License-Identifier: MIT
// Package: masseyramanujan/recurrence
//
// polynomial.go — free polynomial family with independent a and b.
//
// Coefficient order is ascending: tuple index j multiplies nʲ, so the tuple
// (c0, c1, c2) describes c0 + c1·n + c2·n².

package recurrence

import (
	"fmt"
	"iter"
	"math/big"

	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/coef"
)

// Polynomial implements Family for unconstrained polynomials a(n), b(n)
// with aDOF and bDOF coefficients respectively.
type Polynomial struct {
	aDOF int
	bDOF int
}

var _ Family = Polynomial{}

// NewPolynomial builds a Polynomial family. Both counts must be ≥ 1.
func NewPolynomial(aDOF, bDOF int) (Polynomial, error) {
	if aDOF < 1 || bDOF < 1 {
		return Polynomial{}, fmt.Errorf("%s: %w: degrees of freedom must be ≥ 1, got a=%d b=%d",
			NamePolynomial, coef.ErrArity, aDOF, bDOF)
	}

	return Polynomial{aDOF: aDOF, bDOF: bDOF}, nil
}

// Name returns NamePolynomial.
func (Polynomial) Name() string { return NamePolynomial }

// ADegreesOfFreedom returns the a coefficient count.
func (p Polynomial) ADegreesOfFreedom() int { return p.aDOF }

// BDegreesOfFreedom returns the b coefficient count.
func (p Polynomial) BDegreesOfFreedom() int { return p.bDOF }

// Calculation returns Horner evaluators for both sides.
func (Polynomial) Calculation() (an, bn SequenceFunc) { return horner, horner }

// BigCalculation returns big Horner evaluators for both sides.
func (Polynomial) BigCalculation() (an, bn BigSequenceFunc) { return bigHorner, bigHorner }

// ADegree returns the index of the highest nonzero coefficient, 0 for the
// zero polynomial.
func (Polynomial) ADegree(a coef.Tuple) int { return degree(a) }

// BDegree returns the index of the highest nonzero coefficient.
func (Polynomial) BDegree(b coef.Tuple) int { return degree(b) }

// ALeadCoef returns the highest nonzero coefficient of a, 0 if none.
func (Polynomial) ALeadCoef(a coef.Tuple) int64 { return a[degree(a)] }

// BLeadCoef returns the highest nonzero coefficient of b, 0 if none.
func (Polynomial) BLeadCoef(b coef.Tuple) int64 { return b[degree(b)] }

// Converges compares degrees first: 2·deg a > deg b passes, 2·deg a < deg b
// fails, and the balanced case falls back to 4·lead(b) ≥ −lead(a)².
func (p Polynomial) Converges(a, b coef.Tuple) bool {
	da, db := p.ADegree(a), p.BDegree(b)
	switch {
	case 2*da > db:
		return true
	case 2*da < db:
		return false
	default:
		return balanced(p.ALeadCoef(a), p.BLeadCoef(b))
	}
}

func degree(c coef.Tuple) int {
	for j := len(c) - 1; j > 0; j-- {
		if c[j] != 0 {
			return j
		}
	}

	return 0
}

func horner(c coef.Tuple, length int, start int64) iter.Seq[int64] {
	cs := c.Clone()

	return sequence(length, start, func(n int64) int64 {
		var acc int64
		for j := len(cs) - 1; j >= 0; j-- {
			acc = acc*n + cs[j]
		}

		return acc
	})
}

func bigHorner(c coef.Tuple, length int, start int64) iter.Seq[*big.Int] {
	cs := make([]*big.Int, len(c))
	for j, x := range c {
		cs[j] = big.NewInt(x)
	}

	return bigSequence(length, start, func(n *big.Int) *big.Int {
		acc := new(big.Int)
		for j := len(cs) - 1; j >= 0; j-- {
			acc.Mul(acc, n)
			acc.Add(acc, cs[j])
		}

		return acc
	})
}
