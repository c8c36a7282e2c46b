// SPDX-License-Identifier: MIT
// Package dense: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the dense
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package dense

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dense: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential (shapes, indices), wrap with
// fmt.Errorf("ctx: %w", ErrX) at the facade — callers still match via
// errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid: non-positive
	// dimensions or extents, or a buffer whose length is not divisible by the
	// declared column count.
	ErrBadShape = errors.New("dense: invalid shape")

	// ErrOutOfRange indicates that an index or a submatrix origin/extent is
	// outside valid bounds. Public indexers (At) and SubMatrix MUST return
	// this, never panic.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Mul contraction, FromRows ragged input, JoinVert/JoinHoriz
	// shape disagreement, DiagRect with an insufficient vector, Add/Sub/
	// Hadamard shape disagreement.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was
	// passed where a matrix is required.
	ErrNilMatrix = errors.New("dense: nil matrix")
)
