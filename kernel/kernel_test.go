// SPDX-License-Identifier: MIT
// Package kernel_test contains shared fixtures for the compute-engine tests.
//
// Purpose:
//   - Provide deterministic flat buffers in every dispatch class (float64,
//     complex128, and a named real type that falls through to the generic
//     path) so each routine is exercised on all three code paths.

package kernel_test

// score is a named float64: type assertions on []float64 do not match
// []score, so buffers of score always take the generic path.
type score float64

// seqF returns [1, 2, ..., n] as a fresh float64 buffer.
func seqF(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}

	return out
}

// seqC returns [1+1i, 2+2i, ..., n+ni] as a fresh complex128 buffer.
func seqC(n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(float64(i+1), float64(i+1))
	}

	return out
}

// asScores converts a float64 buffer into the named-type equivalent.
func asScores(src []float64) []score {
	out := make([]score, len(src))
	for i, v := range src {
		out[i] = score(v)
	}

	return out
}
