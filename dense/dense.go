// SPDX-License-Identifier: MIT
// Package dense: entity construction, O(1) transpose, indexed access.

package dense

import "fmt"

// Operation name constants for unified error wrapping (no magic strings).
const (
	opFromVector    = "FromVector"
	opReshape       = "Reshape"
	opConjTranspose = "ConjTranspose"
	opAt            = "At"
	opMul           = "Mul"
	opOuter         = "Outer"
	opDot           = "Dot"
	opSubMatrix     = "SubMatrix"
	opTakeRows      = "TakeRows"
	opDropRows      = "DropRows"
	opTakeColumns   = "TakeColumns"
	opDropColumns   = "DropColumns"
	opDiag          = "Diag"
	opDiagRect      = "DiagRect"
	opIdentity      = "Identity"
	opFromRows      = "FromRows"
	opFromColumns   = "FromColumns"
	opToRows        = "ToRows"
	opToColumns     = "ToColumns"
	opJoinVert      = "JoinVert"
	opJoinHoriz     = "JoinHoriz"
	opFromBlocks    = "FromBlocks"
	opFlipUD        = "FlipUD"
	opFlipLR        = "FlipLR"
	opAdd           = "Add"
	opSub           = "Sub"
	opScale         = "Scale"
	opHadamard      = "Hadamard"
	opMatVec        = "MatVec"
)

// denseErrorf wraps err with an operation tag, preserving the original error
// via %w. Keeps a stable "Op: underlying" shape for uniform reporting. Use
// only when err != nil.
func denseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// FromVector builds a matrix from a flat buffer and a column count; the row
// count is derived as len(data)/cols.
//
// Implementation:
//   - Stage 1: validate cols > 0 and exact divisibility (ErrBadShape else).
//   - Stage 2: adopt a copy of data as the primary buffer under the
//     requested order; defer the opposite orientation to lazy
//     materialization (or fill it now under WithEagerTranspose).
//
// Behavior highlights:
//   - The input slice is copied: entities own their buffers exclusively and
//     are immutable after construction (only the internal cache fill
//     remains, and it is compute-once).
//
// Inputs:
//   - cols: declared column count (> 0).
//   - data: flat elements, len divisible by cols; row-major by default,
//     column-major under WithColumnMajor().
//   - opts: WithColumnMajor, WithRowMajor, WithEagerTranspose.
//
// Returns:
//   - *Dense[T]: new (len/cols)×cols entity.
//
// Errors:
//   - ErrBadShape (non-positive cols, empty buffer, non-exact division).
//
// Complexity:
//   - Time O(n) for the copy (plus O(n) under eager materialization),
//     Space O(n).
func FromVector[T Elem](cols int, data []T, opts ...Option) (*Dense[T], error) {
	if err := validateDivisible(len(data), cols); err != nil {
		return nil, denseErrorf(opFromVector, err)
	}
	o := gatherOptions(opts...)

	// Exclusive ownership: never alias caller storage.
	primary := make([]T, len(data))
	copy(primary, data)

	m := &Dense[T]{
		rows:    len(data) / cols,
		cols:    cols,
		order:   o.order,
		primary: primary,
		flip:    &flipCache[T]{},
	}
	if o.eager && !m.trivialLayout() {
		m.flipped() // fill the cache now; subsequent reads are lock-free
	}

	return m, nil
}

// Reshape reinterprets a flat buffer (for example a matrix's own row-major
// data) as a row-major matrix with a new column count.
// Equivalent to FromVector(cols, data) with default options.
//
// Errors:
//   - ErrBadShape (len(data) not divisible by cols).
//
// Complexity: O(len(data)).
func Reshape[T Elem](cols int, data []T) (*Dense[T], error) {
	m, err := FromVector(cols, data)
	if err != nil {
		return nil, denseErrorf(opReshape, err)
	}

	return m, nil
}

// Transpose returns the logical transpose in O(1): dimensions swap, the
// transposed flag flips, and BOTH physical buffers (primary and the lazy
// cache cell) are shared with the receiver. No copy, no materialization.
//
// Behavior highlights:
//   - Transpose(Transpose(m)) observes the exact view of m.
//   - Sharing the cache cell means materialization triggered through either
//     entity benefits both.
//
// Complexity: O(1).
func (m *Dense[T]) Transpose() *Dense[T] {
	return &Dense[T]{
		rows:       m.cols,
		cols:       m.rows,
		order:      m.order,
		transposed: !m.transposed,
		primary:    m.primary,
		flip:       m.flip,
	}
}

// ConjTranspose returns the conjugate transpose. For complex element types
// every element is conjugated; for real and integer types conjugation is the
// identity and the result is a plain O(1) Transpose.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - O(1) for real types; O(rows*cols) for complex types (fresh buffer).
func ConjTranspose[T Elem](m *Dense[T]) (*Dense[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, denseErrorf(opConjTranspose, err)
	}
	t := m.Transpose()

	switch p := any(t.primary).(type) {
	case []complex128:
		conj := make([]complex128, len(p))
		for i, v := range p {
			conj[i] = complex(real(v), -imag(v))
		}
		t.primary = any(conj).([]T)
		t.flip = &flipCache[T]{} // conjugated entity gets a fresh cache
	case []complex64:
		conj := make([]complex64, len(p))
		for i, v := range p {
			conj[i] = complex(real(v), -imag(v))
		}
		t.primary = any(conj).([]T)
		t.flip = &flipCache[T]{}
	}

	return t, nil
}

// At retrieves the element at logical position (i, j).
//
// Implementation:
//   - Stage 1: bounds check (ErrOutOfRange on violation).
//   - Stage 2: read primary at the offset matching its orientation — when
//     the physical layout disagrees with the logical view the flipped offset
//     j*rows+i addresses the same element, so a single read never forces an
//     O(n) materialization.
//
// Errors:
//   - ErrOutOfRange when (i, j) falls outside [0,rows)×[0,cols).
//
// Complexity: O(1).
func (m *Dense[T]) At(i, j int) (T, error) {
	var zero T
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return zero, fmt.Errorf("%s(%d,%d) in %dx%d: %w", opAt, i, j, m.rows, m.cols, ErrOutOfRange)
	}
	if m.flipNeeded() {
		return m.primary[j*m.rows+i], nil
	}

	return m.primary[i*m.cols+j], nil
}

// Clone returns a deep copy: fresh primary buffer, fresh (empty) cache, same
// logical view. Complexity: O(rows*cols).
func (m *Dense[T]) Clone() *Dense[T] {
	primary := make([]T, len(m.primary))
	copy(primary, m.primary)

	return &Dense[T]{
		rows:       m.rows,
		cols:       m.cols,
		order:      m.order,
		transposed: m.transposed,
		primary:    primary,
		flip:       &flipCache[T]{},
	}
}

// Equal reports whether a and b expose the same logical view: identical
// dimensions and identical elements at every (i, j), regardless of storage
// order or transpose state. Complexity: O(rows*cols).
func Equal[T Elem](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	av, bv := a.RowMajorData(), b.RowMajorData()
	for i := range av {
		if av[i] != bv[i] {
			return false
		}
	}

	return true
}
