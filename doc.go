// Package lvcas is the algebraic kernel of a calculator: exact and interval
// numbers, canonical expression trees, polynomial and matrix algebra over
// those trees, and a physical unit system.
//
// The module is organized by concern:
//
//	number/    exact rationals and rounded intervals, real or complex
//	units/     base, alias and composite units, prefixes, YAML definitions
//	expr/      expression nodes kept in canonical form on construction
//	poly/      degree, long division, content, gcd, partial fractions
//	matrix/    determinant, permanent, adjoint, inverse, elimination, rank
//	unitsync/  rewriting compatible units into common ones
//	calc/      calculator context: registry, variables, functions, logging
//
// Every operation that may run long takes a context.Context and returns an
// error wrapping ctx.Err() when cancelled; inputs are left unchanged on
// failure.
//
// Quick start:
//
//	c, _ := calc.New()
//	m := expr.MatrixOf(
//		[]*expr.Node{expr.Int(1), expr.Int(2)},
//		[]*expr.Node{expr.Int(3), expr.Int(4)},
//	)
//	det, _ := c.Determinant(ctx, m) // -2
//
//	go get github.com/katalvlaran/lvcas
package lvcas
