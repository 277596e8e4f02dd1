// Package fft implements a planned, power-of-two complex and real FFT
// engine in the style of a Cooley-Tukey radix-4 decimation-in-time
// decomposition, together with a frequency-domain partitioned
// convolution filter built on top of it.
//
// A Plan is built once for a given transform size and reused across
// many Forward/Inverse calls; construction does the size decomposition
// and twiddle-factor precomputation so that Execute itself allocates
// nothing beyond what the caller supplies via scratch buffers.
package fft

// Float is the set of real sample types this module operates on.
type Float interface {
	~float32 | ~float64
}

// Complex is the set of complex sample types this module operates on.
type Complex interface {
	~complex64 | ~complex128
}

// Direction selects which of the two transforms a Plan should be able
// to execute. Building both directions roughly doubles the twiddle
// storage and construction cost; build only what will actually be
// called.
type Direction int

const (
	// Forward builds only the forward transform.
	Forward Direction = 1 << iota
	// Inverse builds only the inverse transform.
	Inverse
	// Both builds both directions.
	Both = Forward | Inverse
)

func (d Direction) has(want Direction) bool {
	return d&want != 0
}

// realOf, imagOf and mkComplex pair an F with its C across the places
// that need both type parameters at once (PlanRealT's repack path):
// Go generics cannot express "the real type matching C" as a type-level
// mapping, so the F<->C pairing is carried explicitly through these
// helpers instead, enforced at the NewPlan32/64/NewPlanReal32/64
// constructor boundary rather than by the type system.
func realOf[F Float, C Complex](x C) F { return F(real(complex128(x))) }

func imagOf[F Float, C Complex](x C) F { return F(imag(complex128(x))) }

func mkComplex[F Float, C Complex](re, im F) C {
	return C(complex(float64(re), float64(im)))
}

// Format selects how a real-valued transform's Hermitian-symmetric
// half-spectrum is packed into a buffer of complex samples.
type Format int

const (
	// Perm packs N/2 complex bins; bin 0 holds the DC component in its
	// real part and the Nyquist component in its imaginary part. This
	// is the most compact representation and the zero value of Format.
	Perm Format = iota
	// CCs stores N/2+1 complex bins with DC and Nyquist as separate,
	// purely-real complex values at index 0 and N/2. Easier to reason
	// about, costs one extra complex sample.
	CCs
)
