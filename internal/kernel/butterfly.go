package kernel

// LaneWidth is the nominal SIMD lane width (in complex samples) this
// module sizes its specialization/final-cascade thresholds against:
// 4 complex64 samples fill a 256-bit register. Every kernel in this
// package is plain per-sample Go rather than lane-width-specific
// assembly, so LaneWidth is consumed only as a sizing constant, not
// as an actual vector width.
const LaneWidth = 4

// Radix2 returns the 2-point DFT of (a0, a1): the matrix is
// real-valued, so the same formula serves both transform directions.
func Radix2[C Complex](a0, a1 C) (b0, b1 C) {
	return a0 + a1, a0 - a1
}

// Radix8Specialized computes the 8-point DFT of x directly, the
// small-N specialization alongside Radix2/Radix4Combine in this
// package's kernel repertoire. It is defined as a direct 8x8
// evaluation against Twiddle rather than as a further radix-2/4
// decomposition: at a fixed size of 8 that direct evaluation is itself
// straight-line, allocation-free work, and it reuses Twiddle's
// quarter-turn exact cases rather than introducing a second
// hand-derived sign convention to verify. This module's plan executor
// (see executor.go) bottoms its recursion out at size 1 or 2 and so
// never calls this directly; it remains available standalone, the
// same way BitReverse/DigitReverse4 do (see reverse.go).
func Radix8Specialized[C Complex](x [8]C, inverse bool) [8]C {
	var out [8]C
	for k := 0; k < 8; k++ {
		var acc C
		for n := 0; n < 8; n++ {
			acc += x[n] * Twiddle[C](k*n, 8, inverse)
		}
		out[k] = acc
	}
	return out
}

// jTimes returns x rotated by 90 degrees (multiplication by the
// imaginary unit), expressed without the real/imag builtins so it
// works uniformly across the Complex type set.
func jTimes[C Complex](x C) C {
	return C(1i) * x
}

// Radix4Combine merges four length-Q sub-transform bins x0..x3 (already
// indexed at the same bin k of four Q-point DFTs) into the four
// corresponding bins of the combined 4Q-point DFT, given the three
// twiddle factors for bin k at this stage's size (w1, w2 and w3
// multiply x1, x2 and x3 respectively). inverse selects which of the
// two mirror-image combine formulas to apply.
//
// Output order is (b0, bQ, b2Q, b3Q) — the values to be stored at
// offsets 0, Q, 2Q and 3Q of the combined transform.
func Radix4Combine[C Complex](x0, x1, x2, x3, w1, w2, w3 C, inverse bool) (b0, bQ, b2Q, b3Q C) {
	a1 := x1 * w1
	a2 := x2 * w2
	a3 := x3 * w3

	s02 := x0 + a2
	d02 := x0 - a2
	s13 := a1 + a3
	d13 := a1 - a3

	b0 = s02 + s13
	b2Q = s02 - s13
	if inverse {
		bQ = d02 + jTimes(d13)
		b3Q = d02 - jTimes(d13)
	} else {
		bQ = d02 - jTimes(d13)
		b3Q = d02 + jTimes(d13)
	}
	return b0, bQ, b2Q, b3Q
}
