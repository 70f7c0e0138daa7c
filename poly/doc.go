// SPDX-License-Identifier: MIT

// Package poly implements univariate polynomial algebra over expression
// trees: degree and coefficient queries, long division, content and
// primitive part, and partial fraction decomposition.
//
// Polynomials are ordinary expr trees. A tree is a polynomial in x when each
// top-level term is x-free or a product holding x or x^k (k ≥ 0 integer)
// beside x-free factors. Coefficients may be symbolic.
//
// Operations that iterate are bounded (MaxDivisionSteps,
// MaxFractionUnknowns) and poll the context between steps. On failure the
// inputs are left untouched and the returned error matches one of the
// sentinels in errors.go.
package poly
