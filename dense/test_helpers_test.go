// SPDX-License-Identifier: MIT
// Package dense_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertions shared by the
//     suite.
//   - Keep individual tests focused on one behavior each; construction
//     boilerplate lives here.

package dense_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/dense"
)

// score is a named float64: exact-type dispatch in the compute engine does
// not match []score, so score matrices always exercise the generic paths.
type score float64

// mustFromRows builds a matrix from rows or aborts the test.
func mustFromRows[T dense.Elem](t *testing.T, rows [][]T) *dense.Dense[T] {
	t.Helper()
	m, err := dense.FromRows(rows)
	require.NoError(t, err)

	return m
}

// mustFromVector builds a matrix from a flat buffer or aborts the test.
func mustFromVector[T dense.Elem](t *testing.T, cols int, data []T, opts ...dense.Option) *dense.Dense[T] {
	t.Helper()
	m, err := dense.FromVector(cols, data, opts...)
	require.NoError(t, err)

	return m
}

// requireView asserts that m's logical view equals want, element by element,
// through the public At accessor (deliberately NOT through the flat views,
// so layout bookkeeping is part of what is being verified).
func requireView[T dense.Elem](t *testing.T, m *dense.Dense[T], want [][]T) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "row count")
	require.Equal(t, len(want[0]), m.Cols(), "column count")
	for i := range want {
		for j := range want[i] {
			got, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], got, "element (%d,%d)", i, j)
		}
	}
}

// asScoreRows converts float64 rows into the named-type equivalent.
func asScoreRows(rows [][]float64) [][]score {
	out := make([][]score, len(rows))
	for i, row := range rows {
		out[i] = make([]score, len(row))
		for j, v := range row {
			out[i][j] = score(v)
		}
	}

	return out
}
