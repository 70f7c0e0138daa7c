// SPDX-License-Identifier: MIT

package calc

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownUnit indicates a unit name the registry cannot resolve.
	ErrUnknownUnit = errors.New("calc: unknown unit")

	// ErrUnknownVariable indicates an undefined variable name.
	ErrUnknownVariable = errors.New("calc: unknown variable")

	// ErrUnknownFunction indicates an undefined function name.
	ErrUnknownFunction = errors.New("calc: unknown function")

	// ErrDuplicate indicates a variable or function defined twice.
	ErrDuplicate = errors.New("calc: duplicate definition")
)

func calcErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
