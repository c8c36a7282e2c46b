// SPDX-License-Identifier: MIT
// Package dense_test: guarded block extraction and take/drop conveniences.

package dense_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/dense"
)

// fixture4x4 builds the 4x4 counting matrix used across this file.
func fixture4x4(t *testing.T) *dense.Dense[float64] {
	t.Helper()

	return mustFromRows(t, [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
}

// TestSubMatrix_Interior extracts an interior block.
func TestSubMatrix_Interior(t *testing.T) {
	t.Parallel()

	got, err := dense.SubMatrix(1, 1, 2, 2, fixture4x4(t))
	require.NoError(t, err)
	requireView(t, got, [][]float64{{6, 7}, {10, 11}})
}

// TestSubMatrix_WholeAndCorners covers the degenerate-but-valid extents.
func TestSubMatrix_WholeAndCorners(t *testing.T) {
	t.Parallel()

	m := fixture4x4(t)

	whole, err := dense.SubMatrix(0, 0, 4, 4, m)
	require.NoError(t, err)
	require.True(t, dense.Equal(m, whole))

	corner, err := dense.SubMatrix(3, 3, 1, 1, m)
	require.NoError(t, err)
	requireView(t, corner, [][]float64{{16}})
}

// TestSubMatrix_Bounds rejects every escape from the source shape as an
// explicit error, never an undefined read.
func TestSubMatrix_Bounds(t *testing.T) {
	t.Parallel()

	m := fixture4x4(t)

	cases := []struct {
		name           string
		r0, c0, rt, ct int
	}{
		{"negative row origin", -1, 0, 2, 2},
		{"negative col origin", 0, -1, 2, 2},
		{"row overflow", 3, 0, 2, 2},
		{"col overflow", 0, 3, 2, 2},
		{"origin past shape", 4, 4, 1, 1},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := dense.SubMatrix(tc.r0, tc.c0, tc.rt, tc.ct, m)
			require.ErrorIs(t, err, dense.ErrOutOfRange)
		})
	}

	_, err := dense.SubMatrix(0, 0, 0, 2, m)
	require.ErrorIs(t, err, dense.ErrBadShape)
	_, err = dense.SubMatrix(0, 0, 2, -1, m)
	require.ErrorIs(t, err, dense.ErrBadShape)
	_, err = dense.SubMatrix[float64](0, 0, 1, 1, nil)
	require.ErrorIs(t, err, dense.ErrNilMatrix)
}

// TestSubMatrix_OfTranspose extracts from a logical transpose; coordinates
// refer to the logical view, not the physical buffer.
func TestSubMatrix_OfTranspose(t *testing.T) {
	t.Parallel()

	got, err := dense.SubMatrix(1, 0, 2, 2, fixture4x4(t).Transpose())
	require.NoError(t, err)
	requireView(t, got, [][]float64{{2, 6}, {3, 7}})
}

// TestSubMatrix_Complex128 verifies complex extraction keeps whole elements
// with both lanes intact.
func TestSubMatrix_Complex128(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]complex128{
		{1 + 1i, 2 + 2i, 3 + 3i},
		{4 + 4i, 5 + 5i, 6 + 6i},
		{7 + 7i, 8 + 8i, 9 + 9i},
	})

	got, err := dense.SubMatrix(0, 1, 2, 2, m)
	require.NoError(t, err)
	requireView(t, got, [][]complex128{{2 + 2i, 3 + 3i}, {5 + 5i, 6 + 6i}})
}

// TestSubMatrix_GenericMatchesFloat64 compares the named-type path against
// the float64 path on the same block.
func TestSubMatrix_GenericMatchesFloat64(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}

	f, err := dense.SubMatrix(0, 1, 2, 2, mustFromRows(t, rows))
	require.NoError(t, err)
	s, err := dense.SubMatrix(0, 1, 2, 2, mustFromRows(t, asScoreRows(rows)))
	require.NoError(t, err)

	fRows, err := dense.ToRows(f)
	require.NoError(t, err)
	sRows, err := dense.ToRows(s)
	require.NoError(t, err)
	require.Equal(t, asScoreRows(fRows), sRows)
}

// TestTakeDropRows covers the row conveniences and their bound discipline.
func TestTakeDropRows(t *testing.T) {
	t.Parallel()

	m := fixture4x4(t)

	take, err := dense.TakeRows(2, m)
	require.NoError(t, err)
	requireView(t, take, [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}})

	drop, err := dense.DropRows(3, m)
	require.NoError(t, err)
	requireView(t, drop, [][]float64{{13, 14, 15, 16}})

	_, err = dense.TakeRows(5, m)
	require.ErrorIs(t, err, dense.ErrOutOfRange)
	_, err = dense.TakeRows(0, m)
	require.ErrorIs(t, err, dense.ErrBadShape)
	_, err = dense.DropRows(4, m) // nothing left
	require.ErrorIs(t, err, dense.ErrBadShape)
}

// TestTakeDropColumns covers the column conveniences.
func TestTakeDropColumns(t *testing.T) {
	t.Parallel()

	m := fixture4x4(t)

	take, err := dense.TakeColumns(1, m)
	require.NoError(t, err)
	requireView(t, take, [][]float64{{1}, {5}, {9}, {13}})

	drop, err := dense.DropColumns(2, m)
	require.NoError(t, err)
	requireView(t, drop, [][]float64{{3, 4}, {7, 8}, {11, 12}, {15, 16}})

	_, err = dense.TakeColumns(9, m)
	require.ErrorIs(t, err, dense.ErrOutOfRange)
	_, err = dense.DropColumns(4, m)
	require.ErrorIs(t, err, dense.ErrBadShape)
}

// TestSubMatrix_SourceUntouched guards immutability of the source.
func TestSubMatrix_SourceUntouched(t *testing.T) {
	t.Parallel()

	m := fixture4x4(t)
	got, err := dense.SubMatrix(0, 0, 2, 2, m)
	require.NoError(t, err)

	got.RowMajorData()[0] = -1
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}
