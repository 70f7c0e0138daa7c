// SPDX-License-Identifier: MIT

// Package expr is the expression tree of lvcas and its canonical form engine.
//
// A Node is a tagged variant (see Kind) with an ordered list of children it
// exclusively owns. Trees are built through the canonical constructors
//
//	Sum(terms...)  Product(factors...)  Pow(base, exp)  Neg  Sub  Div
//
// which merge on append: numbers fold, like terms add their coefficients,
// like factors add their exponents, neutral elements vanish. Their in-place
// counterparts (Add, Multiply, Raise, Negate, Invert) rewrite the receiver.
// Transform and TransformInPlace build raw, unmerged structure; Canonicalize
// brings such a tree back into canonical form.
//
// Ownership: every constructor and setter takes ownership of the nodes passed
// in. Clone whatever you still need afterwards.
//
// Queries:
//   - Equals: structural, order-independent for commutative kinds.
//   - Compare: numeric where possible, otherwise via the sign of a − b.
//   - Represents: provable properties (sign, integrality, scalar-ness, ...).
//   - Evaluate: interval evaluation to a number.Number.
//
// Long-running operations take a context.Context. Cancellation is polled in
// every size-dependent loop and surfaces as an error wrapping ctx.Err();
// diagnostics go to the zerolog.Logger attached to the context (Report).
package expr
