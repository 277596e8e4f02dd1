package fft

import (
	"github.com/cwbudde/algo-fft/internal/cpu"
	"github.com/cwbudde/algo-fft/internal/kernel"
)

// Plan is a reusable complex FFT plan for a fixed transform length N
// (a power of two, 2^2 <= N <= 2^24) and one or both directions.
//
// Construction performs the size decomposition and twiddle-factor
// precomputation; Execute/Forward/Inverse allocate nothing beyond what
// the caller supplies via the temp scratch buffer.
type Plan[C Complex] struct {
	size      int
	direction Direction
	fwd       *compiledDirection[C]
	inv       *compiledDirection[C]
	variant   kernel.Variant
}

// NewPlan32 builds a complex64 plan for the given size and direction mask.
func NewPlan32(size int, direction Direction) (*Plan[complex64], error) {
	return newPlan[complex64](size, direction)
}

// NewPlan64 builds a complex128 plan for the given size and direction mask.
func NewPlan64(size int, direction Direction) (*Plan[complex128], error) {
	return newPlan[complex128](size, direction)
}

func newPlan[C Complex](size int, direction Direction) (*Plan[C], error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	if direction == 0 {
		direction = Both
	}
	p := &Plan[C]{
		size:      size,
		direction: direction,
		variant:   kernel.Global.Select(cpu.DetectFeatures()),
	}
	if direction.has(Forward) {
		cd := compileDirection[C](size, false)
		p.fwd = &cd
	}
	if direction.has(Inverse) {
		cd := compileDirection[C](size, true)
		p.inv = &cd
	}
	return p, nil
}

// Size returns N, the plan's transform length.
func (p *Plan[C]) Size() int { return p.size }

// TempSize returns the minimum length a scratch buffer passed to
// Execute/Forward/Inverse must have.
func (p *Plan[C]) TempSize() int { return p.size }

// Direction reports which transform directions this plan was built for.
func (p *Plan[C]) Direction() Direction { return p.direction }

// Variant reports which registered butterfly implementation this plan
// dispatches to (see internal/kernel.Registry). Every currently
// registered variant is portable Go and produces identical results;
// this exists for diagnostics, not for correctness branching by callers.
func (p *Plan[C]) Variant() string { return p.variant.Name }

// SIMDLevel reports the best SIMD feature set detected on the running
// CPU (see internal/kernel.SIMDLevel), independent of Variant().
// Informational only: every registered kernel.Variant is portable Go
// today.
func (p *Plan[C]) SIMDLevel() string {
	return kernel.SIMDLevel(cpu.DetectFeatures())
}

// Stages returns the descriptive stage list for this plan's
// decomposition, forward direction if built, otherwise inverse. It is
// diagnostic only — see executor.go for how execution is actually
// driven.
func (p *Plan[C]) Stages() []StageInfo {
	if p.fwd != nil {
		return p.fwd.stages
	}
	if p.inv != nil {
		return p.inv.stages
	}
	return nil
}

// Forward computes the unnormalized forward DFT of in into out. out
// and in must each have length Size(); temp must have length at least
// TempSize(). out == in is permitted.
func (p *Plan[C]) Forward(out, in, temp []C) error {
	return p.Execute(out, in, temp, false)
}

// Inverse computes the unnormalized inverse DFT of in into out (the
// caller is responsible for the 1/N scaling — see the package-level
// round-trip property). out == in is permitted.
func (p *Plan[C]) Inverse(out, in, temp []C) error {
	return p.Execute(out, in, temp, true)
}

// Execute runs the forward or inverse transform depending on inverse.
func (p *Plan[C]) Execute(out, in, temp []C, inverse bool) error {
	n := p.size
	if len(out) != n || len(in) != n {
		return ErrBufferLength
	}
	if len(temp) < n {
		return ErrScratchTooSmall
	}
	cd := p.fwd
	if inverse {
		cd = p.inv
	}
	if cd == nil {
		return ErrDirectionNotBuilt
	}
	scratch := temp[:n]
	copy(scratch, in)
	transform(out, scratch, 0, 1, n, cd.twiddles, 0, inverse)
	return nil
}
