// SPDX-License-Identifier: MIT
// Package dense: layout engine.
// Given an entity's (rows, cols, transposed, order) tuple, this file decides
// which physical buffer represents the current logical row-major or
// column-major view, and lazily materializes the missing orientation exactly
// once per entity lifetime.

package dense

import "github.com/katalvlaran/lvlmat/kernel"

// flipNeeded reports whether primary, read as a row-major buffer, holds the
// transpose of the logical shape. This is the XOR invariant from the data
// model: transposed XOR (order == ColumnMajor).
func (m *Dense[T]) flipNeeded() bool {
	return m.transposed != (m.order == ColumnMajor)
}

// trivialLayout reports whether both orientations share the same physical
// buffer: a single row or a single column is identical in row-major and
// column-major layout, so no materialization is ever needed.
func (m *Dense[T]) trivialLayout() bool {
	return m.rows == 1 || m.cols == 1
}

// flipped returns the opposite-orientation copy of primary, materializing it
// on first need via the compute engine. The fill is idempotent and guarded,
// so concurrent readers observe one consistent buffer and never recompute.
func (m *Dense[T]) flipped() []T {
	m.flip.once.Do(func() {
		// primary, read row-major, has the logical shape unless flipNeeded.
		pr, pc := m.rows, m.cols
		if m.flipNeeded() {
			pr, pc = m.cols, m.rows
		}
		m.flip.data = kernel.Transpose(m.primary, pr, pc)
	})

	return m.flip.data
}

// RowMajorData returns the flat buffer representing the logical view in
// row-major layout (element (i,j) at offset i*Cols()+j).
//
// Behavior highlights:
//   - Returns primary directly when the layout already agrees or when the
//     shape is a single row/column (no allocation, no copy).
//   - Otherwise returns the compute-once flip buffer, materializing it on
//     first call.
//
// Notes:
//   - The returned slice is shared with the entity and MUST be treated as
//     read-only; mutate a Clone instead.
//
// Complexity:
//   - O(1) steady state; O(rows*cols) on the first materializing call.
func (m *Dense[T]) RowMajorData() []T {
	if m.trivialLayout() || !m.flipNeeded() {
		return m.primary
	}

	return m.flipped()
}

// ColMajorData returns the flat buffer representing the logical view in
// column-major layout (element (i,j) at offset j*Rows()+i). Same sharing and
// complexity notes as RowMajorData.
func (m *Dense[T]) ColMajorData() []T {
	if m.trivialLayout() || m.flipNeeded() {
		return m.primary
	}

	return m.flipped()
}
