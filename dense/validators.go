// SPDX-License-Identifier: MIT
// Package: dense
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation
//     checks.
//   - Keep facades minimal by delegating shape/nil checks here.
//   - Return sentinel errors (wrapped with a validator tag and the offending
//     shapes) so call sites can wrap uniformly and callers match via
//     errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate only on failure.

package dense

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func validateNotNil[T Elem](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("validateNotNil", ErrNilMatrix)
	}

	return nil
}

// validateDivisible ensures the buffer length is positive and exactly
// divisible by the declared column count.
// Errors: ErrBadShape (reports both quantities). Complexity: O(1).
func validateDivisible(length, cols int) error {
	if cols <= 0 || length <= 0 {
		return fmt.Errorf("validateDivisible: len=%d cols=%d: %w", length, cols, ErrBadShape)
	}
	if length%cols != 0 {
		return fmt.Errorf("validateDivisible: len=%d not divisible by cols=%d: %w", length, cols, ErrBadShape)
	}

	return nil
}

// validateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch (reports both shapes).
// Complexity: O(1).
func validateMulCompatible[T Elem](a, b *Dense[T]) error {
	if err := validateNotNil(a); err != nil {
		return validatorErrorf("validateMulCompatible", err)
	}
	if err := validateNotNil(b); err != nil {
		return validatorErrorf("validateMulCompatible", err)
	}
	if a.cols != b.rows {
		return fmt.Errorf("validateMulCompatible: %dx%d × %dx%d: %w",
			a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}

	return nil
}

// validateSameShape ensures matrices a and b are non-nil with equal
// dimensions.
// Errors: ErrNilMatrix, ErrDimensionMismatch (reports both shapes).
// Complexity: O(1).
func validateSameShape[T Elem](a, b *Dense[T]) error {
	if err := validateNotNil(a); err != nil {
		return validatorErrorf("validateSameShape", err)
	}
	if err := validateNotNil(b); err != nil {
		return validatorErrorf("validateSameShape", err)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return fmt.Errorf("validateSameShape: %dx%d vs %dx%d: %w",
			a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}

	return nil
}

// validateVecLen ensures the vector is non-empty and has exactly n elements.
// Errors: ErrBadShape (empty), ErrDimensionMismatch (wrong length).
// Complexity: O(1).
func validateVecLen[T Elem](x []T, n int) error {
	if len(x) == 0 {
		return validatorErrorf("validateVecLen", ErrBadShape)
	}
	if len(x) != n {
		return fmt.Errorf("validateVecLen: len=%d want=%d: %w", len(x), n, ErrDimensionMismatch)
	}

	return nil
}

// validateBlock ensures the rt×ct block at zero-based origin (r0, c0) lies
// entirely within an rows×cols matrix.
// Errors: ErrBadShape (non-positive extent), ErrOutOfRange (origin or far
// corner outside bounds; reports the block and the shape).
// Complexity: O(1).
func validateBlock(r0, c0, rt, ct, rows, cols int) error {
	if rt <= 0 || ct <= 0 {
		return fmt.Errorf("validateBlock: extent %dx%d: %w", rt, ct, ErrBadShape)
	}
	if r0 < 0 || c0 < 0 || r0+rt > rows || c0+ct > cols {
		return fmt.Errorf("validateBlock: block (%d,%d)+%dx%d exceeds %dx%d: %w",
			r0, c0, rt, ct, rows, cols, ErrOutOfRange)
	}

	return nil
}
