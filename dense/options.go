// SPDX-License-Identifier: MIT

// Package dense: functional configuration for matrix construction.
// This file defines:
//   - Option / consOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: consOptions fields are unexported; public constructors
//     consume ...Option.
package dense

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultOrder is the storage order used when none is requested.
	DefaultOrder = RowMajor

	// DefaultEagerFlip controls whether the opposite-orientation buffer is
	// materialized at construction. false ⇒ lazy, compute-once on first need.
	DefaultEagerFlip = false
)

// Option mutates construction options. Safe to apply repeatedly (idempotent).
type Option func(*consOptions)

// consOptions stores the effective configuration after applying setters.
type consOptions struct {
	order Order // layout of the supplied buffer
	eager bool  // materialize the flip buffer at construction
}

// WithColumnMajor declares the supplied buffer to be in column-major layout.
// The logical view is unchanged; only the physical interpretation differs.
//
// Complexity: O(1).
func WithColumnMajor() Option {
	return func(o *consOptions) { o.order = ColumnMajor }
}

// WithRowMajor declares the supplied buffer to be in row-major layout
// (the default).
//
// Complexity: O(1).
func WithRowMajor() Option {
	return func(o *consOptions) { o.order = RowMajor }
}

// WithEagerTranspose materializes the opposite-orientation buffer during
// construction instead of on first need.
//
// Behavior highlights:
//   - Trades O(rows*cols) up-front work for lock-free steady-state reads;
//     the lazy default is already safe across goroutines via compute-once.
//
// Complexity: O(1) to set; O(rows*cols) at construction when applied.
func WithEagerTranspose() Option {
	return func(o *consOptions) { o.eager = true }
}

// gatherOptions applies user-provided setters on top of defaults.
// Last-writer-wins semantics; stable for a given sequence of setters.
func gatherOptions(user ...Option) consOptions {
	o := consOptions{
		order: DefaultOrder,
		eager: DefaultEagerFlip,
	}
	for _, set := range user {
		set(&o) // apply in order
	}

	return o
}
