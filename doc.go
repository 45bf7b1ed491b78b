// Package masseyramanujan is a toolkit for searching polynomial continued
// fractions: it turns compact coefficient-range descriptions into lazy,
// convergence-screened streams of candidates for a numeric evaluator.
//
// 🚀 Packages
//
//	coef/        — inclusive coefficient ranges, tuples, lazy cartesian product
//	recurrence/  — recurrence families (zeta3, polynomial): a(n)/b(n) producers,
//	               degree and leading-coefficient queries, convergence screen
//	domain/      — Enumerator: validated domain, sizes, filtered nested iteration
//	config/      — YAML/TOML domain files with struct validation
//	metrics/     — Prometheus observer for enumeration progress
//	logger/      — zerolog construction with project defaults
//	cmd/polydomain — CLI: enumerate, size, verify, families, version
//
// Quick start:
//
//	e, _ := domain.New(domain.Config{
//	    Family: recurrence.Zeta3{},
//	    A:      coef.Ranges{{0, 2}, {-2, 2}, {0, 3}, {-3, 3}},
//	    B:      coef.Ranges{{-20, 0}},
//	})
//	seq, _ := e.Iterate(domain.PrimaryA)
//	for c := range seq {
//	    an, bn := e.Sequences(c, 200, 1)
//	    …
//	}
package masseyramanujan
