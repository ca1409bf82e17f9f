// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for Dense and vector tests.
//   - Keep all data finite unless a test is explicitly about NaN/Inf.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/youssefhakam/AlgMath/matrix"
)

// seq RETURNS [1, 2, ..., n] as float64.
// Complexity: O(n).
func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}

	return out
}

// requireCells ASSERTS that every cell of m equals want in row-major order.
// Implementation:
//   - Stage 1: check len(want) == rows*cols.
//   - Stage 2: compare At(i,j) with want[i*cols+j].
//
// Complexity:
//   - Time O(r*c), Space O(1).
func requireCells(t *testing.T, m matrix.Matrix, want []float64) {
	t.Helper()
	rows, cols := m.Dims()
	require.Len(t, want, rows*cols, "fixture length must match Dims()")

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			got, err := m.At(i, j)
			require.NoErrorf(t, err, "At(%d,%d)", i, j)
			require.Equalf(t, want[i*cols+j], got, "cell (%d,%d)", i, j)
		}
	}
}

// copyAndMark COPIES c through the generic Container contract and writes
// mark at (0,0) of the copy only.
func copyAndMark[T matrix.Container[T]](c T, mark float64) T {
	d := c.Copy()
	d.Set(0, 0, mark)

	return d
}
