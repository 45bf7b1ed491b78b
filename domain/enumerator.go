// SPDX-License-Identifier: MIT
// Package: masseyramanujan/domain
//
// enumerator.go — Enumerator construction, diagnostics and the predicate.

package domain

import (
	"iter"
	"math"
	"math/big"

	"github.com/rs/zerolog"

	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/coef"
	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/recurrence"
)

// Enumerator owns the range specification of one search domain. It is
// immutable after New and safe for concurrent use.
type Enumerator struct {
	family   recurrence.Family
	a, b     coef.Ranges
	sizes    Sizes
	observer Observer
	log      zerolog.Logger
}

// New validates cfg and precomputes the grid sizes.
//
// Validation order: family, a ranges, b ranges, size overflow.
// Complexity: O(len(A) + len(B)).
func New(cfg Config, opts ...Option) (*Enumerator, error) {
	o := newOptions(opts...)

	if cfg.Family == nil {
		return nil, domainErrorf(MethodNew, "%w", ErrNilFamily)
	}
	f := cfg.Family
	if err := cfg.A.Validate(f.ADegreesOfFreedom(), o.allowEmpty); err != nil {
		return nil, domainErrorf(MethodNew, "%s a ranges: %w", f.Name(), err)
	}
	if err := cfg.B.Validate(f.BDegreesOfFreedom(), o.allowEmpty); err != nil {
		return nil, domainErrorf(MethodNew, "%s b ranges: %w", f.Name(), err)
	}

	sizes, err := computeSizes(cfg.A, cfg.B)
	if err != nil {
		return nil, err
	}

	e := &Enumerator{
		family:   f,
		a:        cfg.A.Clone(),
		b:        cfg.B.Clone(),
		sizes:    sizes,
		observer: o.observer,
		log:      o.log.With().Str("family", f.Name()).Logger(),
	}
	e.log.Debug().
		Stringer("a_ranges", e.a).
		Stringer("b_ranges", e.b).
		Int64("a_size", sizes.A).
		Int64("b_size", sizes.B).
		Int64("total", sizes.Total).
		Msg("domain built")

	return e, nil
}

func computeSizes(a, b coef.Ranges) (Sizes, error) {
	aLen, err := a.Cardinality()
	if err != nil {
		return Sizes{}, domainErrorf(MethodNew, "%w: a ranges: %w", ErrDomainTooLarge, err)
	}
	bLen, err := b.Cardinality()
	if err != nil {
		return Sizes{}, domainErrorf(MethodNew, "%w: b ranges: %w", ErrDomainTooLarge, err)
	}
	if aLen != 0 && bLen > math.MaxInt64/aLen {
		return Sizes{}, domainErrorf(MethodNew, "%w: %d × %d", ErrDomainTooLarge, aLen, bLen)
	}

	return Sizes{A: aLen, B: bLen, Total: aLen * bLen}, nil
}

// Family returns the recurrence family of the domain.
func (e *Enumerator) Family() recurrence.Family { return e.family }

// Ranges returns copies of the a and b range specifications.
func (e *Enumerator) Ranges() (a, b coef.Ranges) { return e.a.Clone(), e.b.Clone() }

// Sizes returns the pre-filter grid sizes.
func (e *Enumerator) Sizes() Sizes { return e.sizes }

// Passes is the convergence screen applied to every pair during iteration.
// It is pure; tuples must have the family's arity.
func (e *Enumerator) Passes(a, b coef.Tuple) bool { return e.family.Converges(a, b) }

// Facts computes degrees and leading coefficients of c.
func (e *Enumerator) Facts(c Candidate) Facts {
	return Facts{
		ADegree:   e.family.ADegree(c.A),
		BDegree:   e.family.BDegree(c.B),
		ALeadCoef: e.family.ALeadCoef(c.A),
		BLeadCoef: e.family.BLeadCoef(c.B),
	}
}

// Sequences returns fresh a(n) and b(n) producers for c, each yielding
// length terms from n = start.
func (e *Enumerator) Sequences(c Candidate, length int, start int64) (an, bn iter.Seq[int64]) {
	fa, fb := e.family.Calculation()

	return fa(c.A, length, start), fb(c.B, length, start)
}

// BigSequences is Sequences over *big.Int, for runs long enough to overflow int64.
func (e *Enumerator) BigSequences(c Candidate, length int, start int64) (an, bn iter.Seq[*big.Int]) {
	fa, fb := e.family.BigCalculation()

	return fa(c.A, length, start), fb(c.B, length, start)
}
