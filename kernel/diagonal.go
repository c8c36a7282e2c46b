// SPDX-License-Identifier: MIT

package kernel

// Diagonal builds the flat row-major buffer of the n×n matrix carrying v on
// its main diagonal (n = len(v)) and the additive identity everywhere else.
//
// Implementation:
//   - Stage 1: dispatch on the concrete element type.
//   - Stage 2: float64/complex128 → zero-initialized buffer with a single
//     diagonal-stride pass; other → generic i,j builder writing v[i] when
//     i==j and zero otherwise.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Diagonal[T Elem](v []T) []T {
	n := len(v)

	switch vs := any(v).(type) {
	case []float64:
		return any(diagonalFloat64(vs)).([]T)
	case []complex128:
		return any(diagonalComplex(vs)).([]T)
	default:
		return diagonalGeneric(v, n)
	}
}

// diagonalFloat64 fills only the diagonal stride; make zeroes the rest.
func diagonalFloat64(v []float64) []float64 {
	n := len(v)
	buf := make([]float64, n*n)
	for i := 0; i < n; i++ {
		buf[i*n+i] = v[i]
	}

	return buf
}

// diagonalComplex mirrors diagonalFloat64 for complex128.
func diagonalComplex(v []complex128) []complex128 {
	n := len(v)
	buf := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		buf[i*n+i] = v[i]
	}

	return buf
}

// diagonalGeneric visits every (i,j) cell in fixed order.
func diagonalGeneric[T Elem](v []T, n int) []T {
	buf := make([]T, n*n)
	var zero T
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				buf[i*n+j] = v[i]
			} else {
				buf[i*n+j] = zero
			}
		}
	}

	return buf
}
