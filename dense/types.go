// SPDX-License-Identifier: MIT

// Package dense: domain types for the dual-order matrix entity.
// This file intentionally contains ONLY domain-facing types (element
// constraint, storage-order enum, the entity itself and its lazy cache cell).
// Errors live in errors.go, construction options in options.go, per the
// package conventions.
package dense

import (
	"sync"

	"github.com/katalvlaran/lvlmat/kernel"
)

// Elem is the element constraint shared with the compute engine. float64 and
// complex128 route to specialized kernels; every other member runs on the
// generic fallbacks.
type Elem = kernel.Elem

// Order tags the physical layout of an entity's primary buffer. It is fixed
// at construction and never changes for the entity's lifetime.
type Order uint8

const (
	// RowMajor lays consecutive elements of a row out contiguously.
	RowMajor Order = iota

	// ColumnMajor lays consecutive elements of a column out contiguously.
	ColumnMajor
)

// String returns a human-readable name for the storage order.
func (o Order) String() string {
	if o == ColumnMajor {
		return "column-major"
	}

	return "row-major"
}

// flipCache is the compute-once cell holding the opposite-orientation copy
// of an entity's primary buffer. The sync.Once guard makes concurrent lazy
// fills publish exactly one buffer (the only race in this design).
type flipCache[T Elem] struct {
	once sync.Once
	data []T
}

// Dense is an immutable rows×cols matrix of T values over flat storage.
//
// primary holds the elements in `order` layout for the shape the entity was
// constructed with; transposing is O(1): it swaps rows/cols, flips the
// transposed flag and shares both buffers, so flip is shared by an entity
// and all of its transposes. The logical (rows, cols, At(i,j)) view is what
// callers observe; the physical buffers are an implementation detail.
//
// Invariant: the effective row-major buffer of the logical view is primary
// unless transposed XOR (order == ColumnMajor), in which case it is the
// lazily materialized flip buffer. Every operation in this package preserves
// this invariant.
type Dense[T Elem] struct {
	rows, cols int           // logical dimensions (already swapped when transposed)
	order      Order         // layout of primary, fixed at construction
	transposed bool          // logical transpose flag
	primary    []T           // flat backing storage, length rows*cols
	flip       *flipCache[T] // opposite-orientation copy, compute-once
}

// Rows returns the number of logical rows. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.rows }

// Cols returns the number of logical columns. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.cols }

// Order returns the storage order of the primary buffer. Complexity: O(1).
func (m *Dense[T]) Order() Order { return m.order }

// IsTransposed reports whether the entity is a logical transpose of the
// shape it was constructed with. Complexity: O(1).
func (m *Dense[T]) IsTransposed() bool { return m.transposed }
