// SPDX-License-Identifier: MIT

package kernel

import (
	"unsafe"
)

// CopyBlock extracts the rt×ct block whose top-left corner sits at zero-based
// (r0, c0) from a row-major matrix with stride srcCols, returning it as a new
// row-major buffer.
//
// Implementation:
//   - Stage 1: dispatch on the concrete element type.
//   - Stage 2: float64 → per-row contiguous copy; complex128 → reinterpret
//     the buffer as float64 lanes with doubled column coordinates and
//     delegate to the float64 path (each complex element is exactly two
//     adjacent real lanes); other → generic row-slicing fallback.
//
// Inputs:
//   - src: flat row-major buffer with row stride srcCols.
//   - r0, c0, rt, ct: block origin and extent, in bounds (validated by
//     callers).
//
// Returns:
//   - []T: new rt*ct buffer.
//
// Complexity:
//   - Time O(rt*ct), Space O(rt*ct).
//
// Notes:
//   - The complex reinterpretation relies on complex128 being two contiguous
//     float64 lanes (real, imag); the doubled-column convention preserves
//     that adjacency exactly.
func CopyBlock[T Elem](src []T, srcCols, r0, c0, rt, ct int) []T {
	switch s := any(src).(type) {
	case []float64:
		return any(copyBlockFloat64(s, srcCols, r0, c0, rt, ct)).([]T)
	case []complex128:
		return any(copyBlockComplex(s, srcCols, r0, c0, rt, ct)).([]T)
	default:
		return copyBlockGeneric(src, srcCols, r0, c0, rt, ct)
	}
}

// copyBlockFloat64 copies the block row by row with contiguous copy calls.
func copyBlockFloat64(src []float64, srcCols, r0, c0, rt, ct int) []float64 {
	dst := make([]float64, rt*ct)
	for i := 0; i < rt; i++ {
		base := (r0+i)*srcCols + c0
		copy(dst[i*ct:(i+1)*ct], src[base:base+ct])
	}

	return dst
}

// copyBlockComplex reuses the real-valued extractor by viewing the complex
// buffer as interleaved float64 lanes: column c becomes lanes 2c and 2c+1.
func copyBlockComplex(src []complex128, srcCols, r0, c0, rt, ct int) []complex128 {
	lanes := unsafe.Slice((*float64)(unsafe.Pointer(&src[0])), len(src)*2)
	out := copyBlockFloat64(lanes, srcCols*2, r0, c0*2, rt, ct*2)

	return unsafe.Slice((*complex128)(unsafe.Pointer(&out[0])), rt*ct)
}

// copyBlockGeneric takes rt row views starting at r0 and, within each,
// ct columns starting at c0.
func copyBlockGeneric[T Elem](src []T, srcCols, r0, c0, rt, ct int) []T {
	dst := make([]T, 0, rt*ct)
	for i := 0; i < rt; i++ {
		row := src[(r0+i)*srcCols : (r0+i+1)*srcCols]
		dst = append(dst, row[c0:c0+ct]...)
	}

	return dst
}
