// SPDX-License-Identifier: MIT
// Package: masseyramanujan/domain
//
// iterate.go — filtered nested enumeration.
//
// Algorithm:
//  1. Pick (outer, inner) = (A, B) for PrimaryA or (B, A) for PrimaryB.
//  2. For every outer tuple, walk the complete inner product.
//  3. Rebuild (a, b) from (outer, inner) and yield it iff Converges(a, b).
//
// The two orders differ only in which product is the outer loop; the pair
// set and the predicate are identical, so the filtered set is too.
//
// Complexity: O(Total·(k_a + k_b)) time, O(k_a + k_b) memory.

package domain

import (
	"context"
	"iter"

	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/coef"
)

// Iterate returns the lazy stream of accepted candidates with primary as
// the outer loop. Unknown primaries fail here, before any work.
func (e *Enumerator) Iterate(primary Primary) (iter.Seq[Candidate], error) {
	return e.IterateContext(context.Background(), primary)
}

// IterateContext is Iterate with cancellation: the stream ends quietly once
// ctx is done. Callers distinguish exhaustion from cancellation via ctx.Err.
func (e *Enumerator) IterateContext(ctx context.Context, primary Primary) (iter.Seq[Candidate], error) {
	if !primary.Valid() {
		return nil, domainErrorf(MethodIterate, "%w: %q", ErrUnknownPrimary, string(primary))
	}

	outer, inner := e.a, e.b
	join := func(o, i coef.Tuple) Candidate { return Candidate{A: o, B: i} }
	if primary == PrimaryB {
		outer, inner = e.b, e.a
		join = func(o, i coef.Tuple) Candidate { return Candidate{A: i, B: o} }
	}

	return e.nest(ctx, primary, outer, inner, join), nil
}

// nest composes two independent products. join puts the tuples back into
// (a, b) order so the predicate never sees which loop they came from.
func (e *Enumerator) nest(
	ctx context.Context,
	primary Primary,
	outer, inner coef.Ranges,
	join func(o, i coef.Tuple) Candidate,
) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		done := ctx.Done()
		var examined, accepted int64
		defer func() {
			e.log.Debug().
				Str("primary", string(primary)).
				Int64("examined", examined).
				Int64("accepted", accepted).
				Msg("enumeration stopped")
		}()

		for o := range coef.Product(outer) {
			for i := range coef.Product(inner) {
				select {
				case <-done:
					return
				default:
				}

				c := join(o, i)
				ok := e.family.Converges(c.A, c.B)
				examined++
				e.observer.Observe(primary, ok)
				if !ok {
					continue
				}
				accepted++
				if !yield(detach(c, primary)) {
					return
				}
			}
		}
	}
}

// detach copies the outer tuple, which is shared by every pair of one
// outer step, so that each yielded Candidate owns its slices.
func detach(c Candidate, primary Primary) Candidate {
	if primary == PrimaryA {
		c.A = c.A.Clone()
	} else {
		c.B = c.B.Clone()
	}

	return c
}

// Count drains IterateContext and returns the number of accepted candidates.
// A cancelled ctx yields the partial count and ctx.Err().
func (e *Enumerator) Count(ctx context.Context, primary Primary) (int64, error) {
	seq, err := e.IterateContext(ctx, primary)
	if err != nil {
		return 0, err
	}
	var n int64
	for range seq {
		n++
	}
	if err := ctx.Err(); err != nil {
		return n, domainErrorf(MethodCount, "%w", err)
	}

	return n, nil
}
