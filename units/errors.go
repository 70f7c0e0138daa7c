// SPDX-License-Identifier: MIT

package units

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatible is returned when two units do not share a dimension.
	ErrIncompatible = errors.New("units: incompatible units")

	// ErrNonLinearExponent is returned for an offset alias whose exponent is not 1.
	ErrNonLinearExponent = errors.New("units: non-linear alias requires exponent 1")

	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("units: duplicate name")

	// ErrUnknownUnit is returned when a definition references an unregistered unit.
	ErrUnknownUnit = errors.New("units: unknown unit")

	// ErrUnknownPrefix is returned when a definition references an unregistered prefix.
	ErrUnknownPrefix = errors.New("units: unknown prefix")

	// ErrCycle is returned when unit definitions reference each other cyclically.
	ErrCycle = errors.New("units: definition cycle detected")

	// ErrInvalidDefinition wraps validation and literal parsing failures.
	ErrInvalidDefinition = errors.New("units: invalid definition")
)

// unitErrorf tags err with the unit (or operation) it concerns.
func unitErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
