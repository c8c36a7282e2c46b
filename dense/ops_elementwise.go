// SPDX-License-Identifier: MIT
// Package dense: element-wise operations and the matrix-vector product.
// All functions perform strict fail-fast validation, never mutate their
// operands, and return freshly allocated row-major results. Loops run over
// the row-major views in fixed flat order for deterministic accumulation.

package dense

// addSub computes out = a + sign*b elementwise for sign ∈ {+1, -1}.
// Internal helper for Add/Sub sharing validation and the flat loop.
func addSub[T Elem](a, b *Dense[T], sign T, opTag string) (*Dense[T], error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, denseErrorf(opTag, err)
	}

	av, bv := a.RowMajorData(), b.RowMajorData()
	out := make([]T, len(av))
	for idx := range av { // deterministic 0..n-1
		out[idx] = av[idx] + sign*bv[idx]
	}

	return &Dense[T]{
		rows:    a.rows,
		cols:    a.cols,
		order:   RowMajor,
		primary: out,
		flip:    &flipCache[T]{},
	}, nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (reports both shapes).
//
// Complexity: O(rows*cols).
func Add[T Elem](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, 1, opAdd) }

// Sub computes the element-wise difference C = A - B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (reports both shapes).
//
// Complexity: O(rows*cols).
func Sub[T Elem](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha * m, element by element.
//
// Errors: ErrNilMatrix. Complexity: O(rows*cols).
func Scale[T Elem](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, denseErrorf(opScale, err)
	}

	mv := m.RowMajorData()
	out := make([]T, len(mv))
	for idx := range mv {
		out[idx] = mv[idx] * alpha
	}

	return &Dense[T]{
		rows:    m.rows,
		cols:    m.cols,
		order:   RowMajor,
		primary: out,
		flip:    &flipCache[T]{},
	}, nil
}

// Hadamard computes the element-wise product a ⊙ b (NOT the matrix product;
// use Mul for A·B).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (reports both shapes).
//
// Complexity: O(rows*cols).
func Hadamard[T Elem](a, b *Dense[T]) (*Dense[T], error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, denseErrorf(opHadamard, err)
	}

	av, bv := a.RowMajorData(), b.RowMajorData()
	out := make([]T, len(av))
	for idx := range av {
		out[idx] = av[idx] * bv[idx]
	}

	return &Dense[T]{
		rows:    a.rows,
		cols:    a.cols,
		order:   RowMajor,
		primary: out,
		flip:    &flipCache[T]{},
	}, nil
}

// MatVec computes y = m * x for a column vector x with len(x) == m.Cols().
//
// Implementation:
//   - Stage 1: validate m non-nil and the vector length.
//   - Stage 2: one flat row-major pass per row, skipping zero x entries.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape, ErrDimensionMismatch.
//
// Complexity: O(rows*cols), Space O(rows).
func MatVec[T Elem](m *Dense[T], x []T) ([]T, error) {
	if err := validateNotNil(m); err != nil {
		return nil, denseErrorf(opMatVec, err)
	}
	if err := validateVecLen(x, m.cols); err != nil {
		return nil, denseErrorf(opMatVec, err)
	}

	data := m.RowMajorData()
	y := make([]T, m.rows)
	var (
		i, j, base int
		acc, xv    T
	)
	for i = 0; i < m.rows; i++ {
		acc = 0
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			xv = x[j]
			if xv != 0 { // skip zero multiplications
				acc += data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}
