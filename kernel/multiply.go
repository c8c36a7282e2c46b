// SPDX-License-Identifier: MIT

package kernel

import (
	"github.com/ajroetker/go-highway/hwy/contrib/matmul"
)

// MatMul computes the row-major product C = A·B and returns it in a freshly
// allocated buffer. A is m×k row-major, B is k×n row-major, C is m×n.
//
// Implementation:
//   - Stage 1: dispatch on the concrete element type.
//   - Stage 2: float64 → go-highway MatMulAuto (streaming / blocked /
//     parallel, selected by size); complex128 → i→k→j flat loop with
//     zero-skip; other → generic triple loop over row partitions.
//
// Inputs:
//   - a: len == m*k; b: len == k*n (shapes validated by callers).
//
// Returns:
//   - []T: new m*n buffer, never aliasing the inputs.
//
// Complexity:
//   - Time O(m*n*k), Space O(m*n).
func MatMul[T Elem](a []T, m, k int, b []T, n int) []T {
	c := make([]T, m*n)

	switch av := any(a).(type) {
	case []float64:
		matmul.MatMulAuto(pool(), av, any(b).([]float64), any(c).([]float64), m, n, k)
	case []complex128:
		matMulComplex(av, any(b).([]complex128), any(c).([]complex128), m, n, k)
	default:
		matMulGeneric(a, b, c, m, n, k)
	}

	return c
}

// matMulComplex is the specialized complex128 multiply. Row-major i→k→j
// order keeps B accesses contiguous; zero entries of A are skipped.
func matMulComplex(a, b, c []complex128, m, n, k int) {
	var (
		i, p, j             int        // loop iterators
		baseA, baseB, baseC int        // flat row offsets
		aip                 complex128 // current A[i,p]
	)
	for i = 0; i < m; i++ {
		baseA = i * k
		baseC = i * n
		for p = 0; p < k; p++ {
			aip = a[baseA+p]
			if aip == 0 {
				continue // skip zero for performance
			}
			baseB = p * n
			for j = 0; j < n; j++ {
				c[baseC+j] += aip * b[baseB+j]
			}
		}
	}
}

// matMulGeneric is the interpreted fallback: partition both operands into row
// slices and take the dot product of each row of A with each column of B.
// Fixed i→j→p order for deterministic accumulation.
func matMulGeneric[T Elem](a, b, c []T, m, n, k int) {
	// Row partitions of A and B (views, no copies).
	aRows := make([][]T, m)
	for i := 0; i < m; i++ {
		aRows[i] = a[i*k : (i+1)*k]
	}
	bRows := make([][]T, k)
	for p := 0; p < k; p++ {
		bRows[p] = b[p*n : (p+1)*n]
	}

	var i, j, p int
	var sum T
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			sum = 0
			for p = 0; p < k; p++ {
				sum += aRows[i][p] * bRows[p][j]
			}
			c[i*n+j] = sum
		}
	}
}
