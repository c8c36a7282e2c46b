// Package lvlmat is your in-memory toolkit for building and combining
// dense matrices — from flat-buffer primitives to SIMD-accelerated products.
//
// 🚀 What is lvlmat?
//
//	A modern, generics-based dense linear-algebra library that brings together:
//		• Dense[T] matrices over int, float and complex element types
//		• Dual storage: row-major & column-major, with O(1) transposition
//		• Products: matrix·matrix, matrix·vector, outer & dot
//		• Structure: submatrix extraction, joins, block assembly, flips,
//		  diagonal and identity constructors
//		• Fast paths: float64 routes through SIMD matmul/transpose kernels,
//		  complex128 through specialized loops, everything else through an
//		  equivalent generic path
//
// ✨ Why choose lvlmat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable operands, sentinel errors, fail-fast
//     shape validation with shapes reported in every message
//   - Deterministic – identical results across element types and storage orders
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under two subpackages:
//
//	dense/  — the Dense[T] type, constructors, products & structural ops
//	kernel/ — shape-trusted flat-buffer routines with per-type dispatch
//
// Quick example:
//
//	a, _ := dense.FromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := dense.Identity[float64](2)
//	c, _ := dense.Mul(dense.RowMajor, a, b.Transpose())
//	rows, _ := dense.ToRows(c) // [[1 2] [3 4]]
//
// Start with dense.FromRows or dense.FromVector, and reach for kernel only
// when you already hold validated flat buffers.
package lvlmat
