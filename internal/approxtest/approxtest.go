// Package approxtest provides the relative/absolute tolerance
// comparison the fft and conv test suites use to check floating-point
// results.
package approxtest

import "math/cmplx"

const defaultEpsilon = 1e-9

// NearlyEqual reports whether a and b are equal within eps (or
// defaultEpsilon if eps <= 0), using a relative comparison once both
// values are away from zero.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := abs(a - b)
	if diff <= eps {
		return true
	}

	largest := abs(a)
	if abs(b) > largest {
		largest = abs(b)
	}
	if largest == 0 {
		return diff <= eps
	}
	return diff/largest <= eps
}

// NearlyEqualComplex applies NearlyEqual to the real and imaginary
// parts independently.
func NearlyEqualComplex(a, b complex128, eps float64) bool {
	return NearlyEqual(real(a), real(b), eps) && NearlyEqual(imag(a), imag(b), eps)
}

// MaxAbsError returns the largest |a[i]-b[i]| across two equal-length
// complex slices.
func MaxAbsError(a, b []complex128) float64 {
	var max float64
	for i := range a {
		d := cmplx.Abs(a[i] - b[i])
		if d > max {
			max = d
		}
	}
	return max
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
