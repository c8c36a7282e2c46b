// SPDX-License-Identifier: MIT

package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/kernel"
)

// TestTranspose_Float64 checks the SIMD-backed path against a hand-computed
// 2x3 fixture.
func TestTranspose_Float64(t *testing.T) {
	t.Parallel()

	// | 1 2 3 |      | 1 4 |
	// | 4 5 6 |  ->  | 2 5 |
	//                | 3 6 |
	got := kernel.Transpose(seqF(6), 2, 3)
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, got)
}

// TestTranspose_Complex128 checks the specialized complex loop.
func TestTranspose_Complex128(t *testing.T) {
	t.Parallel()

	got := kernel.Transpose(seqC(6), 2, 3)
	want := []complex128{
		1 + 1i, 4 + 4i,
		2 + 2i, 5 + 5i,
		3 + 3i, 6 + 6i,
	}
	require.Equal(t, want, got)
}

// TestTranspose_GenericMatchesFloat64 forces the generic path via a named
// element type and asserts it agrees with the float64 path element-wise.
func TestTranspose_GenericMatchesFloat64(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ rows, cols int }{
		{1, 7}, {7, 1}, {2, 3}, {3, 3}, {4, 5},
	} {
		src := seqF(tc.rows * tc.cols)
		fast := kernel.Transpose(src, tc.rows, tc.cols)
		slow := kernel.Transpose(asScores(src), tc.rows, tc.cols)

		require.Len(t, slow, len(fast))
		for i := range fast {
			require.Equal(t, fast[i], float64(slow[i]),
				"shape %dx%d offset %d", tc.rows, tc.cols, i)
		}
	}
}

// TestTranspose_RoundTrip verifies transposing twice restores the original
// buffer for every dispatch class.
func TestTranspose_RoundTrip(t *testing.T) {
	t.Parallel()

	const rows, cols = 3, 5

	f := seqF(rows * cols)
	require.Equal(t, f, kernel.Transpose(kernel.Transpose(f, rows, cols), cols, rows))

	c := seqC(rows * cols)
	require.Equal(t, c, kernel.Transpose(kernel.Transpose(c, rows, cols), cols, rows))

	s := asScores(seqF(rows * cols))
	require.Equal(t, s, kernel.Transpose(kernel.Transpose(s, rows, cols), cols, rows))
}

// TestTranspose_DoesNotMutateSource guards the pure-input contract.
func TestTranspose_DoesNotMutateSource(t *testing.T) {
	t.Parallel()

	src := seqF(12)
	want := seqF(12)
	_ = kernel.Transpose(src, 3, 4)
	require.Equal(t, want, src)
}
