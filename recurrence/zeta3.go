// SPDX-License-Identifier: MIT
// Package: masseyramanujan/recurrence
//
// zeta3.go — the ζ(3)-shaped family
//
//	a(n) = (x0·n + x1)·(x2·n·(n+1) + x3)
//	b(n) = x4·n⁶
//
// Searches usually keep x0 and x1 small and x4 negative, which is where
// the known ζ(3) fractions live.

package recurrence

import (
	"iter"
	"math/big"

	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/coef"
)

// Degrees of freedom and b degree of the zeta3 family. These count free
// coefficients, not polynomial degree.
const (
	Zeta3ADegreesOfFreedom = 4
	Zeta3BDegreesOfFreedom = 1
	zeta3ADegreeMax        = 3
	zeta3BDegree           = 6
)

// Zeta3 implements Family for a(n) = (x0·n + x1)(x2·n(n+1) + x3),
// b(n) = x4·n⁶. The a tuple is (x0, x1, x2, x3), the b tuple is (x4).
type Zeta3 struct{}

var _ Family = Zeta3{}

// Name returns NameZeta3.
func (Zeta3) Name() string { return NameZeta3 }

// ADegreesOfFreedom returns 4.
func (Zeta3) ADegreesOfFreedom() int { return Zeta3ADegreesOfFreedom }

// BDegreesOfFreedom returns 1.
func (Zeta3) BDegreesOfFreedom() int { return Zeta3BDegreesOfFreedom }

// Calculation returns ASequence and BSequence.
func (Zeta3) Calculation() (an, bn SequenceFunc) { return ASequence, BSequence }

// BigCalculation returns the *big.Int forms of ASequence and BSequence.
func (Zeta3) BigCalculation() (an, bn BigSequenceFunc) { return bigASequence, bigBSequence }

// ADegree is 3, minus 1 when x0 = 0 (the linear factor drops to a constant)
// and minus 2 when x2 = 0 (the quadratic factor drops to a constant). Both
// reductions may apply. The zero polynomial (x0 = x1 = 0) also reports the
// reduced value rather than a sentinel.
func (Zeta3) ADegree(a coef.Tuple) int {
	deg := zeta3ADegreeMax
	if a[0] == 0 {
		deg--
	}
	if a[2] == 0 {
		deg -= 2
	}

	return deg
}

// BDegree is always 6.
func (Zeta3) BDegree(coef.Tuple) int { return zeta3BDegree }

// ALeadCoef returns x0·x2.
func (Zeta3) ALeadCoef(a coef.Tuple) int64 { return a[0] * a[2] }

// BLeadCoef returns x4.
func (Zeta3) BLeadCoef(b coef.Tuple) int64 { return b[0] }

// Converges reports 4·x4 ≥ −(x0·x2)².
func (z Zeta3) Converges(a, b coef.Tuple) bool {
	return balanced(z.ALeadCoef(a), z.BLeadCoef(b))
}

// ASequence yields (x0·n + x1)·(x2·n·(n+1) + x3) for n = start … start+length-1.
func ASequence(a coef.Tuple, length int, start int64) iter.Seq[int64] {
	x0, x1, x2, x3 := a[0], a[1], a[2], a[3]

	return sequence(length, start, func(n int64) int64 {
		return (x0*n + x1) * (x2*n*(n+1) + x3)
	})
}

// BSequence yields x4·n⁶ for n = start … start+length-1.
func BSequence(b coef.Tuple, length int, start int64) iter.Seq[int64] {
	x4 := b[0]

	return sequence(length, start, func(n int64) int64 {
		n3 := n * n * n

		return x4 * n3 * n3
	})
}

func bigASequence(a coef.Tuple, length int, start int64) iter.Seq[*big.Int] {
	x0, x1 := big.NewInt(a[0]), big.NewInt(a[1])
	x2, x3 := big.NewInt(a[2]), big.NewInt(a[3])

	return bigSequence(length, start, func(n *big.Int) *big.Int {
		lin := new(big.Int).Mul(x0, n)
		lin.Add(lin, x1)

		quad := new(big.Int).Add(n, big.NewInt(1))
		quad.Mul(quad, n)
		quad.Mul(quad, x2)
		quad.Add(quad, x3)

		return lin.Mul(lin, quad)
	})
}

func bigBSequence(b coef.Tuple, length int, start int64) iter.Seq[*big.Int] {
	x4 := big.NewInt(b[0])
	six := big.NewInt(zeta3BDegree)

	return bigSequence(length, start, func(n *big.Int) *big.Int {
		v := new(big.Int).Exp(n, six, nil)

		return v.Mul(v, x4)
	})
}
