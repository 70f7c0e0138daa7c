// SPDX-License-Identifier: MIT

package unitsync

import (
	"errors"
	"fmt"
)

// ErrFixpoint is returned when composite absorption does not settle within
// the configured number of rounds.
var ErrFixpoint = errors.New("unitsync: no fixpoint reached")

func syncErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
