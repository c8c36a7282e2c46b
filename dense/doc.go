// Package dense offers immutable dense matrices over numeric element types.
//
// The dense package provides:
//
//   - Dense[T], a flat-buffer matrix with row-major or column-major storage
//     and O(1) logical transposition (the effective row-major view is
//     materialized lazily, at most once, and shared with all transposes).
//   - Constructors and converters (FromVector, FromRows, FromColumns,
//     ToRows, ToColumns, Reshape) with strict fail-fast shape validation.
//   - Products (Mul, MatVec, Outer, Dot), element-wise operations
//     (Add, Sub, Scale, Hadamard) and structural operations (SubMatrix,
//     Take/Drop rows and columns, JoinVert, JoinHoriz, FromBlocks,
//     FlipUD, FlipLR, Diag, DiagRect, Identity).
//
// Hot numeric paths ([]float64, []complex128) route through the kernel
// package; every other element type takes an equivalent generic path, so
// results are identical regardless of element type or storage order.
//
// All operations return sentinel-wrapped errors (ErrBadShape,
// ErrDimensionMismatch, ErrOutOfRange, ErrNilMatrix) matchable with
// errors.Is; failure messages always report the offending shapes.
//
// See the examples in this package for usage patterns.
package dense
