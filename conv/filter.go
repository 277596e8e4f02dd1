package conv

import (
	algofft "github.com/cwbudde/algo-fft"
)

// ConvolveFilter is a streaming FIR filter implemented as a uniformly
// partitioned, frequency-domain convolution (block-wise overlap-add):
// the impulse response is split into fixed-size segments, each
// pre-transformed once at construction; each input block is
// transformed and multiply-accumulated against every IR segment
// before being inverse-transformed and overlap-added into the output.
type ConvolveFilter[F algofft.Float, C algofft.Complex] struct {
	blockSize   int
	numSegments int

	plan *algofft.PlanRealT[F, C]

	irSegments [][]C // numSegments segments, each blockSize bins, Perm format
	segments   [][]C // ring of numSegments frequency-domain input segments, Perm format
	position   int   // newest-first ring cursor

	premul   []C
	cscratch []C

	savedInput []F
	inputPos   int

	overlap    []F // tail carried forward into the next block's overlap-add
	pendingOut []F // this block's overlap-added output, drained sample by sample
	timeIn     []F
	timeOut    []F
	specTemp   []C
	subTemp    []C
}

// ConvolveFilter64/32 are the concrete instantiations most callers want.
type (
	ConvolveFilter64 = ConvolveFilter[float64, complex128]
	ConvolveFilter32 = ConvolveFilter[float32, complex64]
)

// NewConvolveFilter64 builds a float64 partitioned convolution filter
// for impulse response h, using block size blockSize (rounded up to
// the next power of two).
func NewConvolveFilter64(h []float64, blockSize int) (*ConvolveFilter64, error) {
	return newConvolveFilter[float64, complex128](h, blockSize)
}

// NewConvolveFilter32 is the float32 analogue of NewConvolveFilter64.
func NewConvolveFilter32(h []float32, blockSize int) (*ConvolveFilter32, error) {
	return newConvolveFilter[float32, complex64](h, blockSize)
}

// NewConvolveFilter builds a partitioned convolution filter generic
// over F/C; callers that know their concrete types usually prefer
// NewConvolveFilter64/32, but generic code needs this form (mirroring
// fft.NewPlanReal alongside fft.NewPlanReal32/64).
func NewConvolveFilter[F algofft.Float, C algofft.Complex](h []F, blockSize int) (*ConvolveFilter[F, C], error) {
	return newConvolveFilter[F, C](h, blockSize)
}

func newConvolveFilter[F algofft.Float, C algofft.Complex](h []F, blockSize int) (*ConvolveFilter[F, C], error) {
	if len(h) == 0 {
		return nil, ErrEmptyKernel
	}
	if blockSize <= 0 {
		return nil, ErrInvalidBlockSize
	}
	b := nextPowerOf2(blockSize)

	numSegments := (len(h) + b - 1) / b

	plan, err := algofft.NewPlanReal[F, C](2*b, algofft.Both)
	if err != nil {
		return nil, err
	}

	f := &ConvolveFilter[F, C]{
		blockSize:   b,
		numSegments: numSegments,
		plan:        plan,
		irSegments:  make([][]C, numSegments),
		segments:    make([][]C, numSegments),
		premul:      make([]C, b),
		cscratch:    make([]C, b),
		savedInput:  make([]F, b),
		overlap:     make([]F, b),
		pendingOut:  make([]F, b),
		timeIn:      make([]F, 2*b),
		timeOut:     make([]F, 2*b),
		specTemp:    make([]C, b),
		subTemp:     make([]C, plan.TempSize()),
	}

	for i := 0; i < numSegments; i++ {
		seg := make([]F, 2*b)
		start := i * b
		end := start + b
		if end > len(h) {
			end = len(h)
		}
		copy(seg, h[start:end])
		spec := make([]C, b)
		if err := plan.ExecuteForward(spec, seg, f.subTemp, algofft.Perm); err != nil {
			return nil, err
		}
		f.irSegments[i] = spec
		f.segments[i] = make([]C, b)
	}

	return f, nil
}

// BlockSize returns the filter's internal block length (a power of two).
func (f *ConvolveFilter[F, C]) BlockSize() int { return f.blockSize }

// NumSegments returns how many frequency-domain impulse-response
// segments the filter maintains.
func (f *ConvolveFilter[F, C]) NumSegments() int { return f.numSegments }

// Latency returns the processing latency in samples: Process's output
// lags its input by exactly one block (see Process's doc comment).
func (f *ConvolveFilter[F, C]) Latency() int { return f.blockSize }

// Reset clears all input-dependent state (ring buffer, overlap tail,
// fill cursor), ready for a fresh signal stream. The pre-transformed
// impulse-response segments are fixed at construction and are not
// touched.
func (f *ConvolveFilter[F, C]) Reset() {
	f.position = 0
	f.inputPos = 0
	for i := range f.segments {
		clear(f.segments[i])
	}
	clear(f.savedInput)
	clear(f.overlap)
	clear(f.pendingOut)
	clear(f.premul)
	clear(f.cscratch)
}

// Process filters in, writing len(in) output samples to out (which
// must have the same length as in; in and out may alias). Output lags
// input by one block: the first BlockSize() samples emitted come from
// the all-zero initial pendingOut/overlap state.
func (f *ConvolveFilter[F, C]) Process(out, in []F) error {
	if len(out) != len(in) {
		return ErrLengthMismatch
	}
	b := f.blockSize
	for i, x := range in {
		out[i] = f.pendingOut[f.inputPos]
		f.savedInput[f.inputPos] = x
		f.inputPos++
		if f.inputPos == b {
			if err := f.advanceBlock(); err != nil {
				return err
			}
			f.inputPos = 0
		}
	}
	return nil
}

// advanceBlock runs once per full input block: transforms the
// buffered input, multiply-accumulates it against every IR segment,
// inverse-transforms the result and overlap-adds the first half with
// the tail carried over from the previous block into pendingOut; the
// second half becomes the new tail.
func (f *ConvolveFilter[F, C]) advanceBlock() error {
	b := f.blockSize
	s := f.numSegments

	f.position--
	if f.position < 0 {
		f.position += s
	}

	copy(f.timeIn[:b], f.savedInput)
	for i := b; i < 2*b; i++ {
		f.timeIn[i] = 0
	}
	if err := f.plan.ExecuteForward(f.specTemp, f.timeIn, f.subTemp, algofft.Perm); err != nil {
		return err
	}
	copy(f.segments[f.position], f.specTemp)

	for k := range f.premul {
		f.premul[k] = 0
	}
	for i := 1; i < s; i++ {
		addMulPerm(f.premul, f.irSegments[i], f.segments[(f.position+i)%s])
	}
	copy(f.cscratch, f.premul)
	addMulPerm(f.cscratch, f.irSegments[0], f.segments[f.position])

	if err := f.plan.ExecuteInverse(f.timeOut, f.cscratch, f.subTemp, algofft.Perm); err != nil {
		return err
	}
	scale := F(b)
	for i := 0; i < b; i++ {
		f.pendingOut[i] = f.timeOut[i]/scale + f.overlap[i]
		f.overlap[i] = f.timeOut[b+i] / scale
	}
	return nil
}

// addMulPerm adds a*b (elementwise, Perm-packed) into dst. Perm packs
// two independent real bins (DC, Nyquist) into bin 0's real/imaginary
// parts, so bin 0 needs a real-times-real multiply on each part
// rather than a genuine complex multiply.
func addMulPerm[C algofft.Complex](dst, a, b []C) {
	dst[0] += C(complex(real128(a[0])*real128(b[0]), imag128(a[0])*imag128(b[0])))
	for k := 1; k < len(dst); k++ {
		dst[k] += a[k] * b[k]
	}
}

func real128[C algofft.Complex](x C) float64 { return real(complex128(x)) }
func imag128[C algofft.Complex](x C) float64 { return imag(complex128(x)) }
