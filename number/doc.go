// SPDX-License-Identifier: MIT

// Package number provides the numeric primitive every other lvcas package
// computes with: a real or complex value whose parts are either exact
// rationals or outward-rounded float64 intervals.
//
// What it offers:
//
//   - Exact arithmetic on math/big rationals, kept exact wherever the result
//     is representable (including rational roots such as 4^(1/2) = 2).
//   - Interval arithmetic for approximate values; every approximate bound is
//     widened by one ulp per operation so the true value is always enclosed.
//   - A precision marker (significant digits, −1 when unlimited) that only
//     ever worsens when two numbers are combined.
//   - Sign and comparison queries that answer "unknown" (ok == false) instead
//     of guessing when an interval straddles the decision point.
//
// Number is an immutable value type: every operation returns a fresh value
// and the backing *big.Rat is never mutated after construction.
//
//	a := number.NewFrac(3, 2)
//	b, _ := number.ParseDecimal("0.25")
//	c := a.Add(b) // 7/4, still exact
//
// Division, inversion and exponentiation report failure through the sentinel
// errors in errors.go; nothing in this package panics on user input.
package number
