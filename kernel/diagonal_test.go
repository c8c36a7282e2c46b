// SPDX-License-Identifier: MIT

package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/kernel"
)

// TestDiagonal_Float64 checks the stride-walking fast path.
func TestDiagonal_Float64(t *testing.T) {
	t.Parallel()

	got := kernel.Diagonal([]float64{5, 7, 2})
	want := []float64{
		5, 0, 0,
		0, 7, 0,
		0, 0, 2,
	}
	require.Equal(t, want, got)
}

// TestDiagonal_Complex128 checks the complex fast path.
func TestDiagonal_Complex128(t *testing.T) {
	t.Parallel()

	got := kernel.Diagonal([]complex128{1 + 1i, 2 - 2i})
	want := []complex128{
		1 + 1i, 0,
		0, 2 - 2i,
	}
	require.Equal(t, want, got)
}

// TestDiagonal_GenericMatchesFloat64 forces the generic full-scan path via a
// named element type and asserts it agrees with the float64 path.
func TestDiagonal_GenericMatchesFloat64(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 5} {
		v := seqF(n)
		fast := kernel.Diagonal(v)
		slow := kernel.Diagonal(asScores(v))

		require.Len(t, slow, len(fast))
		for i := range fast {
			require.Equal(t, fast[i], float64(slow[i]), "n=%d offset %d", n, i)
		}
	}
}
