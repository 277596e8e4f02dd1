package fft

import "github.com/cwbudde/algo-fft/internal/kernel"

// transform computes the n-point DFT of the strided sequence
// src[offset], src[offset+stride], ..., src[offset+(n-1)*stride] and
// writes the n results, in natural bin order, to dst[0:n].
//
// This realizes the plan's compiled stage list (see stage.go,
// compiler.go) as direct recursive calls rather than an explicit
// counter-stack walk over a flat stage array: since the decomposition
// of a fixed N is fully known at plan-compile time, the stage list is
// representable as a static call tree, and emitting direct calls from
// the compiler is an accepted alternative to a separate iterative
// executor. The recursion depth is log4(N), at most 12 for the largest
// supported size.
//
// dst and src must not overlap: Execute always runs this against a
// caller-owned scratch copy of the input (see plan.go), so in-place
// Forward/Inverse calls (out == in) never alias dst against src here.
func transform[C Complex](dst, src []C, offset, stride, n int, twiddles [][]C, level int, inverse bool) {
	switch n {
	case 1:
		dst[0] = src[offset]
		return
	case 2:
		dst[0], dst[1] = kernel.Radix2(src[offset], src[offset+stride])
		return
	}

	q := n / 4
	transform(dst[0:q], src, offset, stride*4, q, twiddles, level+1, inverse)
	transform(dst[q:2*q], src, offset+stride, stride*4, q, twiddles, level+1, inverse)
	transform(dst[2*q:3*q], src, offset+2*stride, stride*4, q, twiddles, level+1, inverse)
	transform(dst[3*q:4*q], src, offset+3*stride, stride*4, q, twiddles, level+1, inverse)

	table := twiddles[level]
	for k := 0; k < q; k++ {
		w1 := table[3*k+0]
		w2 := table[3*k+1]
		w3 := table[3*k+2]
		b0, bQ, b2Q, b3Q := kernel.Radix4Combine(dst[k], dst[q+k], dst[2*q+k], dst[3*q+k], w1, w2, w3, inverse)
		dst[k] = b0
		dst[q+k] = bQ
		dst[2*q+k] = b2Q
		dst[3*q+k] = b3Q
	}
}
