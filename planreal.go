package fft

// PlanRealT is a reusable real-input FFT plan for even transform
// length n (in practice n = 2*Nc where Nc is a supported complex plan
// size, 2^2 <= Nc <= 2^24). It computes the n/2 unique Hermitian-
// symmetric complex bins of a length-n real DFT via a size-n/2
// complex plan plus a repack, avoiding the cost of a full complex
// transform on a real-valued signal.
type PlanRealT[F Float, C Complex] struct {
	n        int
	complex  *Plan[C]
	rtwiddle []C // repack factors, length n/4, built once (see buildRTwiddle)
}

// NewPlanReal32 builds a float32/complex64 real-input plan for real
// sequences of length n.
func NewPlanReal32(n int, direction Direction) (*PlanRealT[float32, complex64], error) {
	return newPlanReal[float32, complex64](n, direction)
}

// NewPlanReal64 builds a float64/complex128 real-input plan for real
// sequences of length n.
func NewPlanReal64(n int, direction Direction) (*PlanRealT[float64, complex128], error) {
	return newPlanReal[float64, complex128](n, direction)
}

// NewPlanReal builds a real-input plan generically over F/C; callers
// that know their concrete types at the call site usually prefer
// NewPlanReal32/64, but generic code (e.g. the conv package) needs
// this form.
func NewPlanReal[F Float, C Complex](n int, direction Direction) (*PlanRealT[F, C], error) {
	return newPlanReal[F, C](n, direction)
}

func newPlanReal[F Float, C Complex](n int, direction Direction) (*PlanRealT[F, C], error) {
	if n%2 != 0 {
		return nil, ErrInvalidSize
	}
	cp, err := newPlan[C](n/2, direction)
	if err != nil {
		return nil, err
	}
	return &PlanRealT[F, C]{n: n, complex: cp, rtwiddle: buildRTwiddle[C](n)}, nil
}

// Size returns n, the real-input sequence length.
func (p *PlanRealT[F, C]) Size() int { return p.n }

// TempSize returns the minimum length a scratch complex buffer passed
// to ExecuteForward/ExecuteInverse must have: room for the
// interleaved/de-interleaved n/2-point complex sequence, the repacked
// n/2-point spectrum, and the sub-plan's own scratch space.
func (p *PlanRealT[F, C]) TempSize() int { return 2*(p.n/2) + p.complex.TempSize() }

// SpectrumLen returns how many complex samples the given Format
// occupies for this plan's size.
func (p *PlanRealT[F, C]) SpectrumLen(fmt Format) int { return FormatLen(p.n, fmt) }

// ExecuteForward computes the real spectrum of in (length n) into out,
// packed per fmt (length SpectrumLen(fmt)). temp must have length at
// least TempSize() and is used entirely as scratch: no heap allocation
// occurs on this path.
func (p *PlanRealT[F, C]) ExecuteForward(out []C, in []F, temp []C, fmt Format) error {
	if fmt != Perm && fmt != CCs {
		return ErrUnknownFormat
	}
	n := p.n
	if len(in) != n {
		return ErrBufferLength
	}
	if len(out) != FormatLen(n, fmt) {
		return ErrBufferLength
	}
	if len(temp) < p.TempSize() {
		return ErrScratchTooSmall
	}
	half := n / 2
	y := temp[:half]
	c := temp[half : 2*half]
	subTemp := temp[2*half:]
	for i := 0; i < half; i++ {
		y[i] = mkComplex[F, C](in[2*i], in[2*i+1])
	}
	if err := p.complex.Forward(c, y, subTemp); err != nil {
		return err
	}
	toFmt[C](out, c, p.rtwiddle, n, fmt)
	return nil
}

// ExecuteInverse reconstructs the unnormalized real time-domain signal
// (length n) from the spectrum in (packed per fmt). As with the
// complex Plan, the caller is responsible for the 1/(n/2) scaling
// needed to recover the original amplitude on a forward/inverse
// round trip.
func (p *PlanRealT[F, C]) ExecuteInverse(out []F, in []C, temp []C, fmt Format) error {
	if fmt != Perm && fmt != CCs {
		return ErrUnknownFormat
	}
	n := p.n
	if len(out) != n {
		return ErrBufferLength
	}
	if len(in) != FormatLen(n, fmt) {
		return ErrBufferLength
	}
	if len(temp) < p.TempSize() {
		return ErrScratchTooSmall
	}
	half := n / 2
	c := temp[:half]
	y := temp[half : 2*half]
	subTemp := temp[2*half:]
	fromFmt[C](c, in, p.rtwiddle, n, fmt)
	if err := p.complex.Inverse(y, c, subTemp); err != nil {
		return err
	}
	for i := 0; i < half; i++ {
		out[2*i] = realOf[F, C](y[i])
		out[2*i+1] = imagOf[F, C](y[i])
	}
	return nil
}
