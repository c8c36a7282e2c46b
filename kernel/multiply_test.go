// SPDX-License-Identifier: MIT

package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/kernel"
)

// TestMatMul_Float64 checks the SIMD-backed path on a 2x3 · 3x2 fixture.
func TestMatMul_Float64(t *testing.T) {
	t.Parallel()

	a := []float64{1, 2, 3, 4, 5, 6}    // 2x3
	b := []float64{7, 8, 9, 10, 11, 12} // 3x2

	got := kernel.MatMul(a, 2, 3, b, 2)
	require.Equal(t, []float64{58, 64, 139, 154}, got)
}

// TestMatMul_Complex128 checks the specialized complex loop against a
// hand-computed 2x2 product.
func TestMatMul_Complex128(t *testing.T) {
	t.Parallel()

	a := []complex128{1 + 1i, 2, 0, 1 - 1i}
	b := []complex128{1, 1i, 2i, 1}

	// (1+1i)*1 + 2*2i = 1+5i ;  (1+1i)*1i + 2*1 = 1+1i
	// 0*1 + (1-1i)*2i = 2+2i ;  0*1i + (1-1i)*1 = 1-1i
	want := []complex128{1 + 5i, 1 + 1i, 2 + 2i, 1 - 1i}
	require.Equal(t, want, kernel.MatMul(a, 2, 2, b, 2))
}

// TestMatMul_GenericMatchesFloat64 forces the generic path via a named
// element type and asserts it agrees with the float64 path.
func TestMatMul_GenericMatchesFloat64(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ m, k, n int }{
		{1, 1, 1}, {1, 4, 1}, {2, 3, 2}, {3, 3, 3}, {4, 2, 5},
	} {
		a, b := seqF(tc.m*tc.k), seqF(tc.k*tc.n)
		fast := kernel.MatMul(a, tc.m, tc.k, b, tc.n)
		slow := kernel.MatMul(asScores(a), tc.m, tc.k, asScores(b), tc.n)

		require.Len(t, slow, len(fast))
		for i := range fast {
			require.Equal(t, fast[i], float64(slow[i]),
				"%dx%d · %dx%d offset %d", tc.m, tc.k, tc.k, tc.n, i)
		}
	}
}

// TestMatMul_Int exercises an exact integer product end to end on the
// generic path.
func TestMatMul_Int(t *testing.T) {
	t.Parallel()

	a := []int{1, 0, 0, 1} // 2x2 identity
	b := []int{5, 6, 7, 8}

	require.Equal(t, b, kernel.MatMul(a, 2, 2, b, 2))
	require.Equal(t, b, kernel.MatMul(b, 2, 2, a, 2))
}

// TestMatMul_DoesNotMutateOperands guards the pure-input contract.
func TestMatMul_DoesNotMutateOperands(t *testing.T) {
	t.Parallel()

	a, b := seqF(6), seqF(6)
	_ = kernel.MatMul(a, 2, 3, b, 2)
	require.Equal(t, seqF(6), a)
	require.Equal(t, seqF(6), b)
}
