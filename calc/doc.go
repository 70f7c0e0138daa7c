// SPDX-License-Identifier: MIT

// Package calc is the calculator context of lvcas: it owns the unit
// registry, named variables and functions, and the diagnostics logger, and
// exposes the matrix, polynomial and unit kernels as methods that run with
// that context attached.
//
// Diagnostics flow through zerolog. Context(parent) returns a context
// carrying the calculator's logger, so kernels reporting through
// expr.Report write to the same sink as Calculator.Error.
//
//	c, err := calc.New(calc.WithOutput(os.Stderr), calc.WithLevel(zerolog.InfoLevel))
//	if err != nil { ... }
//	km, _ := c.Unit("kilometer")
//	changed, err := c.SyncUnits(ctx, expr.Sum(km, m))
package calc
