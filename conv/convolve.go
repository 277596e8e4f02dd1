package conv

import (
	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-fft/buffer"
)

// padPool recycles the zero-padded float64 scratch buffers
// fftConvolve64 needs on every call, so repeated one-shot convolutions
// don't churn the allocator.
var padPool = buffer.NewPool()

// Convolve computes the full linear convolution of a and b using a
// single zero-padded FFT pair (ModeFull). See ConvolveMode for the
// ModeSame/ModeValid trims.
func Convolve[F algofft.Float](a, b []F) ([]F, error) {
	return ConvolveMode(a, b, ModeFull)
}

// ConvolveMode is Convolve with an explicit output trim.
func ConvolveMode[F algofft.Float](a, b []F, mode Mode) ([]F, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}
	full, err := fftConvolveDispatch(a, b)
	if err != nil {
		return nil, err
	}
	return trimToMode(full, len(a), len(b), mode), nil
}

// Correlate computes the cross-correlation of a and b: Convolve(a,
// reverse(b)).
func Correlate[F algofft.Float](a, b []F) ([]F, error) {
	return CorrelateMode(a, b, ModeFull)
}

// CorrelateMode is Correlate with an explicit output trim.
func CorrelateMode[F algofft.Float](a, b []F, mode Mode) ([]F, error) {
	rb := make([]F, len(b))
	for i, v := range b {
		rb[len(b)-1-i] = v
	}
	return ConvolveMode(a, rb, mode)
}

// Autocorrelate returns the full, two-sided autocorrelation of a
// (Correlate(a, a), mode ModeFull). A signal of length n produces
// 2n-1 lags, with lag 0 (zero shift) at index n-1.
func Autocorrelate[F algofft.Float](a []F) ([]F, error) {
	return Correlate(a, a)
}

// fftConvolveDispatch picks the concrete float32/complex64 or
// float64/complex128 one-shot path for F. Go generics cannot derive a
// Complex type parameter from a Float one within a single function
// (see types.go's realOf/mkComplex in the root package for the same
// constraint elsewhere), so the dispatch is a type switch over F's two
// permitted concrete instantiations rather than a second type
// parameter threaded through every caller of this family.
func fftConvolveDispatch[F algofft.Float](a, b []F) ([]F, error) {
	switch av := any(a).(type) {
	case []float64:
		bv := any(b).([]float64)
		out, err := fftConvolve64(av, bv)
		if err != nil {
			return nil, err
		}
		return any(out).([]F), nil
	case []float32:
		bv := any(b).([]float32)
		out, err := fftConvolve32(av, bv)
		if err != nil {
			return nil, err
		}
		return any(out).([]F), nil
	default:
		return nil, ErrUnsupportedPrecision
	}
}

func fftConvolve64(a, b []float64) ([]float64, error) {
	outLen := len(a) + len(b) - 1
	n := nextPowerOf2(outLen)
	if n < 8 {
		n = 8
	}

	paBuf := padPool.Get(n)
	pbBuf := padPool.Get(n)
	defer padPool.Put(paBuf)
	defer padPool.Put(pbBuf)
	pa := paBuf.Samples()
	pb := pbBuf.Samples()
	copy(pa, a)
	copy(pb, b)

	plan, err := algofft.NewPlanReal64(n, algofft.Both)
	if err != nil {
		return nil, err
	}
	specLen := plan.SpectrumLen(algofft.CCs)
	sa := make([]complex128, specLen)
	sb := make([]complex128, specLen)
	scratch := make([]complex128, plan.TempSize())

	if err := plan.ExecuteForward(sa, pa, scratch, algofft.CCs); err != nil {
		return nil, err
	}
	if err := plan.ExecuteForward(sb, pb, scratch, algofft.CCs); err != nil {
		return nil, err
	}

	prod := make([]complex128, specLen)
	for i := range prod {
		prod[i] = sa[i] * sb[i]
	}

	out := make([]float64, n)
	if err := plan.ExecuteInverse(out, prod, scratch, algofft.CCs); err != nil {
		return nil, err
	}
	scale := float64(n / 2)
	for i := range out {
		out[i] /= scale
	}
	return out[:outLen], nil
}

// fftConvolve32 is the float32/complex64 analogue of fftConvolve64. It
// does not draw on padPool: that pool is float64-specific (see
// buffer.Pool), so the float32 one-shot path uses plain slices the
// same way the generic ConvolveFilter's per-block ring buffers do.
func fftConvolve32(a, b []float32) ([]float32, error) {
	outLen := len(a) + len(b) - 1
	n := nextPowerOf2(outLen)
	if n < 8 {
		n = 8
	}

	pa := make([]float32, n)
	pb := make([]float32, n)
	copy(pa, a)
	copy(pb, b)

	plan, err := algofft.NewPlanReal32(n, algofft.Both)
	if err != nil {
		return nil, err
	}
	specLen := plan.SpectrumLen(algofft.CCs)
	sa := make([]complex64, specLen)
	sb := make([]complex64, specLen)
	scratch := make([]complex64, plan.TempSize())

	if err := plan.ExecuteForward(sa, pa, scratch, algofft.CCs); err != nil {
		return nil, err
	}
	if err := plan.ExecuteForward(sb, pb, scratch, algofft.CCs); err != nil {
		return nil, err
	}

	prod := make([]complex64, specLen)
	for i := range prod {
		prod[i] = sa[i] * sb[i]
	}

	out := make([]float32, n)
	if err := plan.ExecuteInverse(out, prod, scratch, algofft.CCs); err != nil {
		return nil, err
	}
	scale := float32(n / 2)
	for i := range out {
		out[i] /= scale
	}
	return out[:outLen], nil
}

func trimToMode[F algofft.Float](full []F, lenA, lenB int, mode Mode) []F {
	switch mode {
	case ModeSame:
		start := (lenB - 1) / 2
		return append([]F(nil), full[start:start+lenA]...)
	case ModeValid:
		if lenA < lenB {
			return nil
		}
		start := lenB - 1
		n := lenA - lenB + 1
		return append([]F(nil), full[start:start+n]...)
	default:
		return full
	}
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
