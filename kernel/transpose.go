// SPDX-License-Identifier: MIT

package kernel

import (
	"github.com/ajroetker/go-highway/hwy/contrib/matmul"
)

// Transpose returns a freshly allocated buffer holding the transpose of src,
// where src is a rows×cols matrix in row-major layout. The result is the
// cols×rows matrix in row-major layout (equivalently: src reinterpreted in
// column-major layout).
//
// Implementation:
//   - Stage 1: dispatch on the concrete element type.
//   - Stage 2: float64 → go-highway TransposeAuto (SIMD, parallel above a
//     size threshold); complex128 → flat j→i loop; other → generic row-block
//     fallback.
//
// Inputs:
//   - src: flat buffer, len(src) == rows*cols (validated by callers).
//   - rows, cols: source shape, both ≥ 1.
//
// Returns:
//   - []T: new buffer of the same length, never aliasing src.
//
// Determinism:
//   - Element placement is layout-defined; the float64 path may write strips
//     concurrently but each cell is written exactly once.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func Transpose[T Elem](src []T, rows, cols int) []T {
	dst := make([]T, len(src))

	switch s := any(src).(type) {
	case []float64:
		matmul.TransposeAutoFloat64(pool(), s, rows, cols, any(dst).([]float64))
	case []complex128:
		transposeComplex(s, rows, cols, any(dst).([]complex128))
	default:
		transposeGeneric(src, rows, cols, dst)
	}

	return dst
}

// transposeComplex is the flat-slice transpose for complex128 buffers.
// dst[j*rows+i] = src[i*cols+j], fixed i→j order.
func transposeComplex(src []complex128, rows, cols int, dst []complex128) {
	var i, j, base int // loop iterators and row base offset
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			dst[j*rows+i] = src[base+j]
		}
	}
}

// transposeGeneric transposes any element type by partitioning src into
// row slices of width cols, transposing the two-dimensional arrangement, and
// re-flattening into dst.
func transposeGeneric[T Elem](src []T, rows, cols int, dst []T) {
	// Partition the flat buffer into row views (no copies).
	rowViews := make([][]T, rows)
	for i := 0; i < rows; i++ {
		rowViews[i] = src[i*cols : (i+1)*cols]
	}

	// Column j of the arrangement becomes row j of the output.
	var i, j int
	for j = 0; j < cols; j++ {
		base := j * rows
		for i = 0; i < rows; i++ {
			dst[base+i] = rowViews[i][j]
		}
	}
}
