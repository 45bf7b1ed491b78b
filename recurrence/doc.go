// Package recurrence describes the recurrence shapes that define the a(n) and
// b(n) sequences of a polynomial continued fraction
//
//	a(0) + b(1) / (a(1) + b(2) / (a(2) + …))
//
// and the algebraic facts a search needs about a coefficient tuple without
// evaluating the fraction.
//
// 🚀 Families
//
//	Every recurrence shape implements Family: a pair of lazy sequence
//	producers, degree and leading-coefficient queries for each side, and a
//	cheap necessary convergence predicate. Families are plain values; pick
//	one by name with Lookup or construct it directly.
//
//	  zeta3       a(n) = (x0·n + x1)·(x2·n·(n+1) + x3)     4 degrees of freedom
//	              b(n) = x4·n⁶                              1 degree of freedom
//
//	  polynomial  a(n) = Σ a_j·nʲ,  b(n) = Σ b_j·nʲ       caller-chosen
//
// ⚙️ Sequences
//
//	Calculation returns two SequenceFunc values. Calling one with a tuple, a
//	run length and a start index gives an iter.Seq[int64] over exactly
//	`length` terms starting at n = start. Calls share no state.
//
//	int64 terms overflow quickly for large n (x4·n⁶ passes 2⁶³ near n ≈ 1400
//	for x4 = 1). BigCalculation gives the same sequences over *big.Int.
//
// 🔍 Convergence screen
//
//	For balanced degrees (deg b = 2·deg a) the continued fraction can only
//	converge when 4·lead(b) ≥ −lead(a)². The test is inclusive on purpose:
//	borderline tuples are kept and left to the numeric evaluator.
//
// Usage:
//
//	f := recurrence.Zeta3{}
//	an, bn := f.Calculation()
//	for v := range an(coef.Tuple{1, 0, 1, 0}, 3, 1) {
//	    fmt.Println(v) // 2, 12, 36
//	}
//	_ = bn
package recurrence
