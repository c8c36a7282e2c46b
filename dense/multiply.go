// SPDX-License-Identifier: MIT
// Package dense: multiplication facade and the vector products derived from
// it. The heavy lifting happens in the kernel package; this file owns shape
// validation, orientation plumbing and the (A·B)ᵀ = Bᵀ·Aᵀ identity that
// serves column-major results without a second kernel variant.

package dense

import "github.com/katalvlaran/lvlmat/kernel"

// Mul computes C = A·B and stores the result under the requested order.
//
// Implementation:
//   - Stage 1: validate operands (non-nil, A.Cols == B.Rows; the error
//     reports both shapes).
//   - Stage 2: RowMajor — feed the row-major views of A and B to the compute
//     engine. ColumnMajor — compute the row-major product Bᵀ·Aᵀ and adopt its
//     buffer directly: by (A·B)ᵀ = Bᵀ·Aᵀ, the n×m row-major buffer of Bᵀ·Aᵀ
//     IS the m×n column-major buffer of A·B, so only the shape and order
//     fields are swapped back. This identity is correctness-critical, not an
//     optimization.
//
// Inputs:
//   - order: storage order of the result.
//   - a: m×k matrix; b: k×n matrix.
//
// Returns:
//   - *Dense[T]: m×n product.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (reports both shapes).
//
// Complexity:
//   - Time O(m*n*k), Space O(m*n).
//
// AI-Hints:
//   - float64 and complex128 entities hit specialized kernels; any other
//     element type runs the generic path with identical results.
func Mul[T Elem](order Order, a, b *Dense[T]) (*Dense[T], error) {
	if err := validateMulCompatible(a, b); err != nil {
		return nil, denseErrorf(opMul, err)
	}

	if order == ColumnMajor {
		// Row-major Bᵀ·Aᵀ, reinterpreted in place as column-major A·B.
		buf := kernel.MatMul(b.ColMajorData(), b.cols, b.rows, a.ColMajorData(), a.rows)

		return &Dense[T]{
			rows:    a.rows,
			cols:    b.cols,
			order:   ColumnMajor,
			primary: buf,
			flip:    &flipCache[T]{},
		}, nil
	}

	buf := kernel.MatMul(a.RowMajorData(), a.rows, a.cols, b.RowMajorData(), b.cols)

	return &Dense[T]{
		rows:    a.rows,
		cols:    b.cols,
		order:   RowMajor,
		primary: buf,
		flip:    &flipCache[T]{},
	}, nil
}

// Outer computes the outer product of u (length m) and v (length n): the m×n
// matrix with out[i][j] = u[i]*v[j]. Encoded as the matrix product of u as an
// m×1 column and v as a 1×n row.
//
// Errors:
//   - ErrBadShape (empty input).
//
// Complexity: O(m*n).
func Outer[T Elem](u, v []T) (*Dense[T], error) {
	col, err := FromVector(1, u) // m×1
	if err != nil {
		return nil, denseErrorf(opOuter, err)
	}
	row, err := FromVector(len(v), v) // 1×n
	if err != nil {
		return nil, denseErrorf(opOuter, err)
	}
	out, err := Mul(RowMajor, col, row)
	if err != nil {
		return nil, denseErrorf(opOuter, err)
	}

	return out, nil
}

// Dot computes the scalar product of two equal-length vectors as element
// (0,0) of row(u)·col(v).
//
// Errors:
//   - ErrBadShape (empty input), ErrDimensionMismatch (length disagreement).
//
// Complexity: O(len(u)).
func Dot[T Elem](u, v []T) (T, error) {
	var zero T
	if len(u) == 0 || len(v) == 0 {
		return zero, denseErrorf(opDot, validatorErrorf("validateVecLen", ErrBadShape))
	}
	if err := validateVecLen(v, len(u)); err != nil {
		return zero, denseErrorf(opDot, err)
	}

	row, err := FromVector(len(u), u) // 1×n
	if err != nil {
		return zero, denseErrorf(opDot, err)
	}
	col, err := FromVector(1, v) // n×1
	if err != nil {
		return zero, denseErrorf(opDot, err)
	}
	p, err := Mul(RowMajor, row, col) // 1×1
	if err != nil {
		return zero, denseErrorf(opDot, err)
	}

	return p.primary[0], nil
}
