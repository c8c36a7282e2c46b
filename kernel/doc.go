// SPDX-License-Identifier: MIT

// Package kernel is the compute engine behind lvlmat/dense: raw, buffer-level
// transpose, multiply, block-copy and diagonal-fill routines on contiguous
// flat slices.
//
// Every entry point dispatches on the concrete element type:
//
//   - float64    → SIMD kernels from github.com/ajroetker/go-highway
//   - complex128 → specialized flat-slice loops in this package
//   - anything else satisfying Elem → a generic interpreted fallback
//
// Buffers are pure inputs: no kernel mutates its source, and every kernel
// returns a freshly allocated result. Shape arguments are trusted here —
// bounds and divisibility are validated one layer up, in dense.
package kernel
