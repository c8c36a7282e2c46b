// SPDX-License-Identifier: MIT
// Package dense: builder and accessor API — row/column list conversions,
// vertical/horizontal joins, block assembly and flips. Column operations are
// defined purely in terms of row operations plus the O(1) transpose, never
// duplicated.

package dense

import "fmt"

// FromRows builds a row-major matrix whose rows are the given equal-length
// vectors, concatenated in input order.
//
// Errors:
//   - ErrBadShape (no rows, or an empty row).
//   - ErrDimensionMismatch (ragged input; reports the offending lengths).
//
// Complexity: O(total elements).
func FromRows[T Elem](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, denseErrorf(opFromRows, validatorErrorf("validateShape", ErrBadShape))
	}
	cols := len(rows[0])
	flat := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, denseErrorf(opFromRows, fmt.Errorf("row %d has len=%d want=%d: %w",
				i, len(row), cols, ErrDimensionMismatch))
		}
		flat = append(flat, row...)
	}
	out, err := FromVector(cols, flat)
	if err != nil {
		return nil, denseErrorf(opFromRows, err)
	}

	return out, nil
}

// ToRows returns the logical rows of m as freshly allocated slices
// (partition of the row-major view into rows of width Cols()).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity: O(rows*cols).
func ToRows[T Elem](m *Dense[T]) ([][]T, error) {
	if err := validateNotNil(m); err != nil {
		return nil, denseErrorf(opToRows, err)
	}
	data := m.RowMajorData()
	out := make([][]T, m.rows)
	for i := 0; i < m.rows; i++ {
		row := make([]T, m.cols)
		copy(row, data[i*m.cols:(i+1)*m.cols])
		out[i] = row
	}

	return out, nil
}

// FromColumns builds the matrix whose columns are the given equal-length
// vectors: FromRows of the column list, transposed.
//
// Errors:
//   - ErrBadShape, ErrDimensionMismatch (as FromRows).
//
// Complexity: O(total elements).
func FromColumns[T Elem](cols [][]T) (*Dense[T], error) {
	byRows, err := FromRows(cols)
	if err != nil {
		return nil, denseErrorf(opFromColumns, err)
	}

	return byRows.Transpose(), nil
}

// ToColumns returns the logical columns of m: ToRows of the transpose.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity: O(rows*cols).
func ToColumns[T Elem](m *Dense[T]) ([][]T, error) {
	if err := validateNotNil(m); err != nil {
		return nil, denseErrorf(opToColumns, err)
	}
	out, err := ToRows(m.Transpose())
	if err != nil {
		return nil, denseErrorf(opToColumns, err)
	}

	return out, nil
}

// JoinVert stacks the given matrices top to bottom, in input order.
//
// Implementation:
//   - Stage 1: validate at least one operand, all non-nil, equal column
//     counts (the error reports the disagreeing shapes).
//   - Stage 2: concatenate the row-major buffers and reshape with the shared
//     column count.
//
// Errors:
//   - ErrBadShape (no operands), ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(total elements).
func JoinVert[T Elem](ms ...*Dense[T]) (*Dense[T], error) {
	if len(ms) == 0 {
		return nil, denseErrorf(opJoinVert, validatorErrorf("validateShape", ErrBadShape))
	}
	for _, m := range ms {
		if err := validateNotNil(m); err != nil {
			return nil, denseErrorf(opJoinVert, err)
		}
	}
	cols, total := ms[0].cols, 0
	for i, m := range ms {
		if m.cols != cols {
			return nil, denseErrorf(opJoinVert, fmt.Errorf("operand %d is %dx%d, want %d columns: %w",
				i, m.rows, m.cols, cols, ErrDimensionMismatch))
		}
		total += m.rows * m.cols
	}

	flat := make([]T, 0, total)
	for _, m := range ms {
		flat = append(flat, m.RowMajorData()...)
	}
	out, err := FromVector(cols, flat)
	if err != nil {
		return nil, denseErrorf(opJoinVert, err)
	}

	return out, nil
}

// JoinHoriz places the given matrices side by side, in input order:
// the transpose of JoinVert over the transposed operands.
//
// Errors:
//   - ErrBadShape, ErrNilMatrix, ErrDimensionMismatch (row counts must
//     agree).
//
// Complexity: O(total elements).
func JoinHoriz[T Elem](ms ...*Dense[T]) (*Dense[T], error) {
	flipped := make([]*Dense[T], len(ms))
	for i, m := range ms {
		if err := validateNotNil(m); err != nil {
			return nil, denseErrorf(opJoinHoriz, err)
		}
		flipped[i] = m.Transpose()
	}
	stacked, err := JoinVert(flipped...)
	if err != nil {
		return nil, denseErrorf(opJoinHoriz, err)
	}

	return stacked.Transpose(), nil
}

// FromBlocks assembles a block matrix: each inner list is joined
// horizontally, and the resulting row-blocks are joined vertically. Row
// counts must match within each inner list and column counts across the
// row-blocks.
//
// Errors:
//   - ErrBadShape, ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(total elements).
func FromBlocks[T Elem](blocks [][]*Dense[T]) (*Dense[T], error) {
	if len(blocks) == 0 {
		return nil, denseErrorf(opFromBlocks, validatorErrorf("validateShape", ErrBadShape))
	}
	rowBlocks := make([]*Dense[T], len(blocks))
	for i, row := range blocks {
		rb, err := JoinHoriz(row...)
		if err != nil {
			return nil, denseErrorf(opFromBlocks, fmt.Errorf("row-block %d: %w", i, err))
		}
		rowBlocks[i] = rb
	}
	out, err := JoinVert(rowBlocks...)
	if err != nil {
		return nil, denseErrorf(opFromBlocks, err)
	}

	return out, nil
}

// FlipUD reverses the row order of m.
//
// Errors: ErrNilMatrix. Complexity: O(rows*cols).
func FlipUD[T Elem](m *Dense[T]) (*Dense[T], error) {
	rows, err := ToRows(m)
	if err != nil {
		return nil, denseErrorf(opFlipUD, err)
	}
	reverseSlices(rows)
	out, err := FromRows(rows)
	if err != nil {
		return nil, denseErrorf(opFlipUD, err)
	}

	return out, nil
}

// FlipLR reverses the column order of m.
//
// Errors: ErrNilMatrix. Complexity: O(rows*cols).
func FlipLR[T Elem](m *Dense[T]) (*Dense[T], error) {
	cols, err := ToColumns(m)
	if err != nil {
		return nil, denseErrorf(opFlipLR, err)
	}
	reverseSlices(cols)
	out, err := FromColumns(cols)
	if err != nil {
		return nil, denseErrorf(opFlipLR, err)
	}

	return out, nil
}

// reverseSlices reverses a list of row/column views in place.
func reverseSlices[T Elem](s [][]T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
