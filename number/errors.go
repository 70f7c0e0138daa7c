// SPDX-License-Identifier: MIT

package number

import "errors"

var (
	// ErrDivideByZero is returned when a divisor is zero or an interval
	// divisor encloses zero.
	ErrDivideByZero = errors.New("number: division by zero")

	// ErrNotRepresentable is returned when a result exists only outside the
	// supported domain (e.g. a non-integer power of a negative real).
	ErrNotRepresentable = errors.New("number: result not representable")

	// ErrExponentTooLarge guards exact exponentiation against unbounded growth.
	ErrExponentTooLarge = errors.New("number: exponent too large for exact power")

	// ErrParse is returned by ParseDecimal for malformed literals.
	ErrParse = errors.New("number: invalid decimal literal")
)
