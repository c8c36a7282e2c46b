// SPDX-License-Identifier: MIT
// Package dense: guarded submatrix extraction and the row/column take/drop
// conveniences layered on top of it.

package dense

import "github.com/katalvlaran/lvlmat/kernel"

// SubMatrix extracts the rt×ct block whose top-left corner sits at zero-based
// (r0, c0) of m, as a fresh row-major entity.
//
// Implementation:
//   - Stage 1: validate m and the block against m's bounds — out-of-range
//     origins/extents are explicit errors here, never undefined reads.
//   - Stage 2: block-copy from the row-major view via the compute engine
//     (float64 contiguous row copies; complex128 through the doubled-real
//     lane reinterpretation; generic row slicing otherwise).
//
// Inputs:
//   - r0, c0: zero-based block origin.
//   - rt, ct: block extent, both > 0.
//
// Returns:
//   - *Dense[T]: new rt×ct matrix owning a fresh buffer.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (non-positive extent), ErrOutOfRange (block
//     exceeds m's bounds; reports block and shape).
//
// Complexity:
//   - Time O(rt*ct) (+ one-time O(rows*cols) if the row-major view must be
//     materialized first), Space O(rt*ct).
func SubMatrix[T Elem](r0, c0, rt, ct int, m *Dense[T]) (*Dense[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, denseErrorf(opSubMatrix, err)
	}
	if err := validateBlock(r0, c0, rt, ct, m.rows, m.cols); err != nil {
		return nil, denseErrorf(opSubMatrix, err)
	}

	buf := kernel.CopyBlock(m.RowMajorData(), m.cols, r0, c0, rt, ct)

	return &Dense[T]{
		rows:    rt,
		cols:    ct,
		order:   RowMajor,
		primary: buf,
		flip:    &flipCache[T]{},
	}, nil
}

// TakeRows returns the first n rows of m.
// Errors: ErrNilMatrix, ErrBadShape, ErrOutOfRange. Complexity: O(n*cols).
func TakeRows[T Elem](n int, m *Dense[T]) (*Dense[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, denseErrorf(opTakeRows, err)
	}
	out, err := SubMatrix(0, 0, n, m.cols, m)
	if err != nil {
		return nil, denseErrorf(opTakeRows, err)
	}

	return out, nil
}

// DropRows returns m without its first n rows.
// Errors: ErrNilMatrix, ErrBadShape, ErrOutOfRange. Complexity: O((rows-n)*cols).
func DropRows[T Elem](n int, m *Dense[T]) (*Dense[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, denseErrorf(opDropRows, err)
	}
	out, err := SubMatrix(n, 0, m.rows-n, m.cols, m)
	if err != nil {
		return nil, denseErrorf(opDropRows, err)
	}

	return out, nil
}

// TakeColumns returns the first n columns of m.
// Errors: ErrNilMatrix, ErrBadShape, ErrOutOfRange. Complexity: O(rows*n).
func TakeColumns[T Elem](n int, m *Dense[T]) (*Dense[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, denseErrorf(opTakeColumns, err)
	}
	out, err := SubMatrix(0, 0, m.rows, n, m)
	if err != nil {
		return nil, denseErrorf(opTakeColumns, err)
	}

	return out, nil
}

// DropColumns returns m without its first n columns.
// Errors: ErrNilMatrix, ErrBadShape, ErrOutOfRange. Complexity: O(rows*(cols-n)).
func DropColumns[T Elem](n int, m *Dense[T]) (*Dense[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, denseErrorf(opDropColumns, err)
	}
	out, err := SubMatrix(0, n, m.rows, m.cols-n, m)
	if err != nil {
		return nil, denseErrorf(opDropColumns, err)
	}

	return out, nil
}
