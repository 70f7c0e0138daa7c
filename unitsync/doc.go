// SPDX-License-Identifier: MIT

// Package unitsync rewrites the unit references of an expression so that
// compatible units are expressed in one common unit each.
//
// Sync runs a fixpoint pipeline over the tree:
//
//  1. collect the referenced units as base units, aliases and composites,
//     expanding every composite into the set of its base and alias members;
//  2. absorb composites whose members are also referenced directly: their
//     occurrences are replaced by the product of their parts and collection
//     restarts;
//  3. deduplicate aliases pairwise: of two aliases with a common root the
//     more derived one is kept; when neither derives from the other both are
//     dropped and the root is collected instead;
//  4. drop aliases whose root is collected;
//  5. convert every compatible occurrence into the surviving composites,
//     then base units, then aliases, and re-canonicalize.
//
// Offset conversions (e.g. celsius to kelvin) are applied only when
// enabled with WithNonLinear and only to a coefficient times a unit.
// A second Sync of its own output reports no change.
package unitsync
