// SPDX-License-Identifier: MIT

package kernel

// Elem enumerates the element types the kernels accept. float64 and
// complex128 unlock the specialized fast paths; every other member is served
// by the generic fallback loops.
type Elem interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64 | ~complex64 | ~complex128
}
