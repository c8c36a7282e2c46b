// SPDX-License-Identifier: MIT
// Package dense: diagonal, rectangular-diagonal and identity constructors.

package dense

import "github.com/katalvlaran/lvlmat/kernel"

// Diag builds the n×n matrix (n = len(v)) carrying v on the main diagonal
// and the additive identity everywhere else.
//
// Errors:
//   - ErrBadShape (empty vector).
//
// Complexity: O(n²).
func Diag[T Elem](v []T) (*Dense[T], error) {
	if len(v) == 0 {
		return nil, denseErrorf(opDiag, validatorErrorf("validateVecLen", ErrBadShape))
	}

	return &Dense[T]{
		rows:    len(v),
		cols:    len(v),
		order:   RowMajor,
		primary: kernel.Diagonal(v),
		flip:    &flipCache[T]{},
	}, nil
}

// DiagRect generalizes Diag to an r×c rectangle using the first min(r,c)
// entries of v.
//
// Implementation:
//   - Stage 1: validate r, c > 0 and len(v) ≥ min(r,c).
//   - Stage 2: r == c behaves as Diag; r < c is the transpose of the
//     mirrored r > c case; r > c is Diag(v[:c]) vertically joined with an
//     (r-c)×c zero block below it.
//
// Errors:
//   - ErrBadShape (non-positive dimensions), ErrDimensionMismatch (vector
//     shorter than min(r,c); reports both quantities).
//
// Complexity: O(r*c).
func DiagRect[T Elem](r, c int, v []T) (*Dense[T], error) {
	if r <= 0 || c <= 0 {
		return nil, denseErrorf(opDiagRect, validatorErrorf("validateShape", ErrBadShape))
	}
	n := min(r, c)
	if len(v) < n {
		return nil, denseErrorf(opDiagRect,
			validatorErrorf("validateVecLen", ErrDimensionMismatch))
	}

	switch {
	case r == c:
		out, err := Diag(v[:n])
		if err != nil {
			return nil, denseErrorf(opDiagRect, err)
		}

		return out, nil

	case r < c:
		// Mirror into the tall case and transpose back (O(1) transpose).
		tall, err := DiagRect(c, r, v)
		if err != nil {
			return nil, denseErrorf(opDiagRect, err)
		}

		return tall.Transpose(), nil

	default: // r > c
		top, err := Diag(v[:c])
		if err != nil {
			return nil, denseErrorf(opDiagRect, err)
		}
		pad, err := FromVector(c, make([]T, (r-c)*c)) // zero block below
		if err != nil {
			return nil, denseErrorf(opDiagRect, err)
		}
		out, err := JoinVert(top, pad)
		if err != nil {
			return nil, denseErrorf(opDiagRect, err)
		}

		return out, nil
	}
}

// Identity builds the n×n identity matrix: Diag of n multiplicative units.
//
// Errors:
//   - ErrBadShape (n ≤ 0).
//
// Complexity: O(n²).
func Identity[T Elem](n int) (*Dense[T], error) {
	if n <= 0 {
		return nil, denseErrorf(opIdentity, validatorErrorf("validateShape", ErrBadShape))
	}
	ones := make([]T, n)
	for i := range ones {
		ones[i] = 1
	}
	out, err := Diag(ones)
	if err != nil {
		return nil, denseErrorf(opIdentity, err)
	}

	return out, nil
}
