// Package domain enumerates the search space of a polynomial continued
// fraction: every (a, b) coefficient-tuple pair drawn from declared integer
// ranges, screened by the family's convergence predicate, produced lazily.
//
// 🚀 Flow
//
//	Config{Family, A ranges, B ranges}
//	        │ New (validates arity, ordering, magnitude, size)
//	        ▼
//	Enumerator ── Sizes{A, B, Total}            (diagnostics only)
//	        │ Iterate(PrimaryA | PrimaryB)
//	        ▼
//	iter.Seq[Candidate] ── Converges(a, b)?  ── yield
//	        │
//	        ▼
//	Sequences(c, length, start) → a(n), b(n) producers for the evaluator
//
// Ordering
//
//	The primary family's cartesian product is the outer loop and the other
//	family's product the inner loop; inside each product the first axis
//	varies slowest. The primary choice changes only the order of the
//	candidates, never the set.
//
// Laziness and cancellation
//
//	Nothing is materialized. Each Iterate call returns a sequence that owns
//	its own loop state; many sequences over one Enumerator may run
//	concurrently because the Enumerator is read-only after New. Stopping
//	early is just breaking out of the range loop. IterateContext also stops
//	when its context is done.
//
// Errors
//
//	Configuration problems surface from New (ErrNilFamily, coef.ErrArity,
//	coef.ErrInvertedRange, coef.ErrMagnitude, ErrDomainTooLarge). An unknown
//	primary token fails Iterate before any work (ErrUnknownPrimary).
//	Iteration itself never fails.
//
// Usage:
//
//	e, err := domain.New(domain.Config{
//	    Family: recurrence.Zeta3{},
//	    A:      coef.Ranges{{0, 2}, {-1, 1}, {0, 2}, {-1, 1}},
//	    B:      coef.Ranges{{-4, 0}},
//	})
//	if err != nil { … }
//	seq, _ := e.Iterate(domain.PrimaryA)
//	for c := range seq {
//	    an, bn := e.Sequences(c, 100, 1)
//	    evaluate(an, bn)
//	}
package domain
