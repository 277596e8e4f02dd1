package fft

import "math"

// rtwiddle returns tw(idx, n) = -j * exp(-2*pi*i*idx/n), the factor
// used to recombine/split a size-n/2 complex sub-transform's bins into
// the Hermitian half-spectrum of a real, length-n transform. The same
// table serves both toFmt and fromFmt; PlanRealT precomputes it once
// via buildRTwiddle so the repack loops stay free of trigonometric
// calls.
func rtwiddle[C Complex](idx, n int) C {
	theta := 2 * math.Pi * float64(idx) / float64(n)
	// exp(-j*theta) = cos(theta) - i*sin(theta); multiplying by -j
	// rotates it by -90 degrees: -j*(a - i*b) = -b - i*a.
	a := math.Cos(theta)
	b := math.Sin(theta)
	return C(complex(-b, -a))
}

// buildRTwiddle fills the real-plan repack table, rtwiddle(i, n) for
// i in [0, n/4).
func buildRTwiddle[C Complex](n int) []C {
	rt := make([]C, n/4)
	for i := range rt {
		rt[i] = rtwiddle[C](i, n)
	}
	return rt
}

// toFmt repacks the size-n/2 complex transform c (the raw output of a
// complex Plan applied to the real input reinterpreted as n/2
// interleaved complex samples) into the real spectrum in the
// requested Format. dst must have length n/2 for Perm or n/2+1 for
// CCs; rt is the plan's precomputed buildRTwiddle table.
func toFmt[C Complex](dst, c []C, rt []C, n int, fmt Format) {
	half := n / 2
	quarter := n / 4

	for i := 1; i < quarter; i++ {
		fpk := c[i]
		fpnk := conjC(c[half-i])
		tw := rt[i]
		sum := fpk + fpnk
		diff := fpk - fpnk
		xi := scaleHalf(sum + tw*diff)
		xni := conjC(scaleHalf(sum - tw*diff))
		setBin(dst, fmt, n, i, xi)
		setBin(dst, fmt, n, half-i, xni)
	}
	if n%4 == 0 {
		setBin(dst, fmt, n, quarter, conjC(c[quarter]))
	}
	dc := real128(c[0]) + imag128(c[0])
	nyq := real128(c[0]) - imag128(c[0])
	setDCNyquist(dst, fmt, C(complex(dc, 0)), C(complex(nyq, 0)))
}

// fromFmt is the inverse of toFmt: given the real spectrum in the
// stated Format, it reconstructs the size-n/2 complex intermediate
// ready to feed the inverse complex plan.
func fromFmt[C Complex](c []C, src []C, rt []C, n int, fmt Format) {
	half := n / 2
	quarter := n / 4

	for i := 1; i < quarter; i++ {
		a := getBin(src, fmt, n, i)
		b := conjC(getBin(src, fmt, n, half-i))
		tw := rt[i]
		s := a + b
		d := (a - b) / tw
		c[i] = scaleHalf(s + d)
		c[half-i] = conjC(scaleHalf(s - d))
	}
	if n%4 == 0 {
		c[quarter] = conjC(getBin(src, fmt, n, quarter))
	}
	dcv, nyq := getDCNyquist(src, fmt, n)
	c[0] = C(complex((real128(dcv)+real128(nyq))/2, (real128(dcv)-real128(nyq))/2))
}

func scaleHalf[C Complex](x C) C {
	return C(complex(real128(x)/2, imag128(x)/2))
}

func conjC[C Complex](x C) C {
	return C(complex(real128(x), -imag128(x)))
}

func real128[C Complex](x C) float64 { return real(complex128(x)) }
func imag128[C Complex](x C) float64 { return imag(complex128(x)) }

// setBin/getBin address real-spectrum bin i (1 <= i <= n/2-1) within
// dst/src. Both Perm and CCs store these interior bins at the same
// index; they differ only in how DC and Nyquist are packed (see
// setDCNyquist/getDCNyquist).
func setBin[C Complex](dst []C, fmt Format, n, i int, v C) {
	dst[i] = v
}

func getBin[C Complex](src []C, fmt Format, n, i int) C {
	return src[i]
}

func setDCNyquist[C Complex](dst []C, fmt Format, dc, nyq C) {
	switch fmt {
	case CCs:
		dst[0] = dc
		dst[len(dst)-1] = nyq
	default: // Perm: pack into bin 0's real/imag
		dst[0] = C(complex(real128(dc), real128(nyq)))
	}
}

func getDCNyquist[C Complex](src []C, fmt Format, n int) (dc, nyq C) {
	switch fmt {
	case CCs:
		return src[0], src[n/2]
	default: // Perm
		return C(complex(real128(src[0]), 0)), C(complex(imag128(src[0]), 0))
	}
}

// FormatLen returns the number of complex samples a length-n real
// spectrum occupies in the given Format.
func FormatLen(n int, fmt Format) int {
	if fmt == CCs {
		return n/2 + 1
	}
	return n / 2
}
