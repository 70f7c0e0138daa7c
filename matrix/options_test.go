// SPDX-License-Identifier: MIT
package matrix_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcas/matrix"
)

// TestWithMinorCacheLimit_Panics verifies the constructor rejects nonsensical limits.
func TestWithMinorCacheLimit_Panics(t *testing.T) {
	assert.Panics(t, func() { matrix.WithMinorCacheLimit(0) })
	assert.Panics(t, func() { matrix.WithMinorCacheLimit(-5) })
	assert.NotPanics(t, func() { matrix.WithMinorCacheLimit(1) })
}

// TestWithPivoting_ChangesEchelonForm shows the flag is not a dead switch.
func TestWithPivoting_ChangesEchelonForm(t *testing.T) {
	ctx := context.Background()

	m := ints([]int64{2, 1}, []int64{4, 5})
	require.NoError(t, matrix.GaussianElimination(ctx, m))
	assert.Equal(t, "[[4, 5], [0, -3/2]]", m.String())

	m = ints([]int64{2, 1}, []int64{4, 5})
	require.NoError(t, matrix.GaussianElimination(ctx, m, matrix.WithPivoting(false)))
	assert.Equal(t, "[[2, 1], [0, 3]]", m.String())
}
