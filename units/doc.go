// SPDX-License-Identifier: MIT

// Package units models measurement units and converts between them.
//
// Three unit shapes exist:
//
//	BaseUnit      : atomic (second, meter, gram, kelvin, ...).
//	AliasUnit     : defined relative to another unit:
//	                  x alias = (Factor·x + Offset) · First^Exponent
//	                a non-zero Offset (temperature scales) makes it non-linear.
//	CompositeUnit : an ordered product of (unit, exponent, prefix) parts,
//	                e.g. newton = kilo·gram · meter · second^-2.
//
// Convert reduces both sides to a factor times a product of base units and
// reports the Conversion between them. Non-linear conversions are flagged so
// callers decide whether to apply them.
//
// Definitions are usually loaded from YAML (LoadYAML, DefaultRegistry): the
// document is validated, literals are parsed as exact decimals, and units are
// resolved in dependency order so an alias may reference a unit declared
// later in the file. Reference cycles are rejected with ErrCycle.
package units
