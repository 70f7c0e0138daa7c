// SPDX-License-Identifier: MIT

package expr

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var (
	// ErrNotNumeric is returned by Evaluate for trees that do not reduce to a number.
	ErrNotNumeric = errors.New("expr: expression is not numeric")

	// ErrTooLarge is returned when an expansion would exceed its size guard.
	ErrTooLarge = errors.New("expr: expansion too large")
)

// Aborted reports whether ctx has been cancelled. Every size-dependent loop in
// the kernel polls it and unwinds with an error on a positive reading.
func Aborted(ctx context.Context) bool {
	return ctx != nil && ctx.Err() != nil
}

// AbortError returns ctx's cancellation cause tagged with op.
func AbortError(ctx context.Context, op string) error {
	return fmt.Errorf("%s: %w", op, ctx.Err())
}

// Report sends a user-visible diagnostic to the logger carried by ctx
// (see zerolog.Logger.WithContext). Without a logger it is a no-op.
func Report(ctx context.Context, isWarning bool, msg string, args ...any) {
	if ctx == nil {
		return
	}
	l := zerolog.Ctx(ctx)
	ev := l.Error()
	if isWarning {
		ev = l.Warn()
	}
	ev.Str("component", "lvcas").Msgf(msg, args...)
}
