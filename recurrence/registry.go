// SPDX-License-Identifier: MIT
// Package: masseyramanujan/recurrence
//
// registry.go — name → Family constructor table.
//
// The table is fixed at compile time and read-only, so Lookup is safe for
// concurrent use without locking.

package recurrence

import (
	"fmt"
	"slices"

	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/coef"
)

// Registered family names.
const (
	NameZeta3      = "zeta3"
	NamePolynomial = "polynomial"
)

// constructor builds a Family for the given degree-of-freedom counts.
type constructor func(aDOF, bDOF int) (Family, error)

var registry = map[string]constructor{
	NameZeta3: func(aDOF, bDOF int) (Family, error) {
		if aDOF != Zeta3ADegreesOfFreedom || bDOF != Zeta3BDegreesOfFreedom {
			return nil, fmt.Errorf("%s: %w: want a=%d b=%d, got a=%d b=%d", NameZeta3, coef.ErrArity,
				Zeta3ADegreesOfFreedom, Zeta3BDegreesOfFreedom, aDOF, bDOF)
		}

		return Zeta3{}, nil
	},
	NamePolynomial: func(aDOF, bDOF int) (Family, error) {
		return NewPolynomial(aDOF, bDOF)
	},
}

// Lookup returns the family registered under name, sized for aDOF and bDOF
// free coefficients. Fixed-shape families reject other counts with
// coef.ErrArity; unknown names return ErrUnknownFamily.
func Lookup(name string, aDOF, bDOF int) (Family, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownFamily, name, Names())
	}

	return ctor(aDOF, bDOF)
}

// Names lists the registered family names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
