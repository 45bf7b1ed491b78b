// SPDX-License-Identifier: MIT
// Package: masseyramanujan/domain
//
// types.go — Config, Primary, Sizes and Candidate.

package domain

import (
	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/coef"
	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/recurrence"
)

// Config is everything an Enumerator needs. All fields are required; there
// are no placeholder defaults.
type Config struct {
	// Family supplies degrees of freedom, sequences and the predicate.
	Family recurrence.Family
	// A holds one range per a-coefficient, in coefficient order.
	A coef.Ranges
	// B holds one range per b-coefficient, in coefficient order.
	B coef.Ranges
}

// Primary selects which family forms the outer loop of enumeration.
type Primary string

const (
	// PrimaryA iterates the a-coefficients in the outer loop.
	PrimaryA Primary = "a"
	// PrimaryB iterates the b-coefficients in the outer loop.
	PrimaryB Primary = "b"
)

// Valid reports whether p is PrimaryA or PrimaryB.
func (p Primary) Valid() bool { return p == PrimaryA || p == PrimaryB }

// ParsePrimary converts "a" or "b" to a Primary. Anything else, including
// different case, is ErrUnknownPrimary.
func ParsePrimary(s string) (Primary, error) {
	p := Primary(s)
	if !p.Valid() {
		return "", domainErrorf(MethodIterate, "%w: %q (want %q or %q)", ErrUnknownPrimary, s, PrimaryA, PrimaryB)
	}

	return p, nil
}

// Sizes reports grid cardinalities before filtering.
type Sizes struct {
	A     int64 `json:"a"`     // product of the a-range lengths
	B     int64 `json:"b"`     // product of the b-range lengths
	Total int64 `json:"total"` // A·B, an upper bound on yielded candidates
}

// Candidate is one accepted (a, b) coefficient pair. Its tuples must be
// treated as read-only; inner-loop tuples are fresh per candidate and the
// outer tuple is copied before each yield.
type Candidate struct {
	A coef.Tuple `json:"a"`
	B coef.Tuple `json:"b"`
}

// Key renders c as "(a…)|(b…)", unique per candidate.
func (c Candidate) Key() string { return c.A.String() + "|" + c.B.String() }

// String is Key.
func (c Candidate) String() string { return c.Key() }

// Facts are the static properties of a candidate, computed without
// evaluating its sequences.
type Facts struct {
	ADegree   int   `json:"a_degree"`
	BDegree   int   `json:"b_degree"`
	ALeadCoef int64 `json:"a_lead"`
	BLeadCoef int64 `json:"b_lead"`
}
