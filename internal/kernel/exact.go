package kernel

import (
	"math"
	"math/cmplx"
)

// Twiddle returns W_s^p = exp(sign * 2*pi*i*p/s), where sign is -1 for
// a forward transform and +1 for an inverse one. The four quarter-turn
// angles (p/s = 0, 1/4, 1/2, 3/4) are special-cased to return exact
// (1,0)/(0,-1)/(-1,0)/(0,1)-style values instead of paying for a
// trigonometric call that would otherwise round to very nearly, but
// not exactly, those values.
func Twiddle[C Complex](p, s int, inverse bool) C {
	if s <= 0 {
		return C(complex(1, 0))
	}
	p = p % s
	if p < 0 {
		p += s
	}
	q := s / 4
	if s%4 == 0 {
		switch p {
		case 0:
			return C(complex(1, 0))
		case q:
			if inverse {
				return C(complex(0, 1))
			}
			return C(complex(0, -1))
		case 2 * q:
			return C(complex(-1, 0))
		case 3 * q:
			if inverse {
				return C(complex(0, -1))
			}
			return C(complex(0, 1))
		}
	} else if p == 0 {
		return C(complex(1, 0))
	} else if s%2 == 0 && p == s/2 {
		return C(complex(-1, 0))
	}

	sign := -1.0
	if inverse {
		sign = 1.0
	}
	angle := sign * 2 * math.Pi * float64(p) / float64(s)
	return C(cmplx.Exp(complex(0, angle)))
}
