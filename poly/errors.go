// SPDX-License-Identifier: MIT

package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDivisor is returned when dividing by the zero polynomial.
	ErrZeroDivisor = errors.New("poly: division by zero polynomial")

	// ErrNotPolynomial is returned when an operand is not a polynomial in the variable.
	ErrNotPolynomial = errors.New("poly: not a polynomial")

	// ErrUnresolved is returned when a symbolic step does not reduce, e.g. a
	// leading coefficient ratio that leaves a symbolic denominator.
	ErrUnresolved = errors.New("poly: unresolved symbolic step")

	// ErrUnderdetermined is returned when a linear system has no provably
	// non-zero pivot.
	ErrUnderdetermined = errors.New("poly: system not fully determined")

	// ErrIterationLimit is returned when long division exceeds MaxDivisionSteps.
	ErrIterationLimit = errors.New("poly: iteration limit reached")

	// ErrTooLarge is returned when a decomposition needs more than MaxFractionUnknowns unknowns.
	ErrTooLarge = errors.New("poly: problem too large")
)

// polyErrorf tags err with the failing operation.
func polyErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
