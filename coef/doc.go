// Package coef holds the pure-data side of a polynomial search domain:
// inclusive integer ranges for every degree of freedom, concrete coefficient
// tuples drawn from them, and a lazy cartesian product over a range list.
//
// 🚀 What lives here?
//
//	Range   — inclusive [Min, Max] interval for one free coefficient.
//	Ranges  — ordered per-family list of Range, one per degree of freedom.
//	Tuple   — one concrete coefficient per degree of freedom.
//	Product — iter.Seq[Tuple] over the cartesian product of Ranges.
//
// Ordering:
//
//	Product walks the grid like an odometer: the LAST axis varies fastest,
//	the FIRST axis slowest, matching the declared axis order.
//
//	  Ranges{{0,1},{5,6}} → (0,5) (0,6) (1,5) (1,6)
//
// Memory:
//
//	Product never materializes the grid. It keeps one counter per axis and
//	hands out a fresh Tuple per step, so callers may retain yielded tuples.
//
// Validation:
//
//	Ranges.Validate checks arity, interval ordering and coefficient magnitude.
//	The magnitude bound (MaxMagnitude) keeps products such as (x0·x2)² inside
//	int64 for every family in package recurrence.
//
// Usage:
//
//	rs := coef.Ranges{{Min: -2, Max: 2}, {Min: 0, Max: 3}}
//	n, _ := rs.Cardinality() // 20
//	for t := range coef.Product(rs) {
//	    fmt.Println(t)
//	}
package coef
