package fft

import "github.com/cwbudde/algo-fft/internal/kernel"

// StageKind classifies a single level of the compiled plan for
// introspection (Plan.Stages). It does not change how that level is
// executed — see compiler.go and executor.go.
type StageKind int

const (
	// StageRadix4Pass is a generic radix-4 combine over a size-S
	// level, recursing into four S/4 children.
	StageRadix4Pass StageKind = iota
	// StageFinalCascade marks the point where the remaining
	// recursion (every level from here down to the base case) is
	// collapsed into one unrolled call instead of being tracked as
	// separate stage objects, replacing a chain of generic passes
	// once the size is at or below a threshold.
	StageFinalCascade
	// StageSpecialization marks the terminal base-case level, of size
	// 1 (even log2 N) or 2 (odd log2 N), resolved directly by the
	// identity/radix-2 base cases with no further recursion.
	StageSpecialization
	// StageReorder marks the bit/digit-reversal permutation that a
	// bottom-up, in-place iterative executor would need to apply
	// before its first pass. This module's executor instead performs
	// the decomposition as direct recursive calls (see executor.go)
	// and needs no separate reorder pass: each combine step already
	// writes its result to the bin's final natural-order position.
	// kernel.BitReverse / kernel.DigitReverse4 remain available and
	// tested standalone for callers that want to drive an iterative
	// pipeline themselves.
	StageReorder
)

// StageInfo describes one level of a compiled plan for diagnostic
// purposes (Plan.Stages()). Size, Repeats and OutOffset mirror the
// stage contract named in the design: Size is the combine length at
// this level, Repeats is the branching factor (4 for a radix-4 pass,
// 1 for a leaf), OutOffset is the stride in complex samples between
// consecutive children's outputs, and Recursion reports whether this
// level recurses into smaller children before combining.
type StageInfo struct {
	Kind      StageKind
	Size      int
	Repeats   int
	OutOffset int
	Recursion bool
}

// compileStageInfo builds the descriptive stage list for a transform
// of length n, matching the levels buildTwiddles precomputes plus the
// terminal base-case level. finalCascadeThreshold sets the size at or
// below which remaining levels are reported as one collapsed
// StageFinalCascade entry rather than one StageRadix4Pass per level.
func compileStageInfo(n int) []StageInfo {
	// A final cascade is worthwhile once a level's remaining
	// recursion would otherwise bottom out in sub-lane-width chunks:
	// 16 lanes' worth of levels below this size, a few doublings
	// past kernel.LaneWidth.
	finalCascadeThreshold := kernel.LaneWidth * 16

	var stages []StageInfo
	cascaded := false
	for _, s := range levelSizes(n) {
		if s <= finalCascadeThreshold {
			if !cascaded {
				stages = append(stages, StageInfo{
					Kind:      StageFinalCascade,
					Size:      s,
					Repeats:   4,
					OutOffset: s / 4,
					Recursion: true,
				})
				cascaded = true
			}
			continue
		}
		stages = append(stages, StageInfo{
			Kind:      StageRadix4Pass,
			Size:      s,
			Repeats:   4,
			OutOffset: s / 4,
			Recursion: true,
		})
	}

	baseSize := 1
	if n >= 2 {
		// Determine the base case size the recursion bottoms out at:
		// 2 when log2(n) is odd, 1 when it is even.
		k := 0
		for t := n; t > 1; t >>= 1 {
			k++
		}
		if k%2 == 1 {
			baseSize = 2
		}
	}
	stages = append(stages, StageInfo{
		Kind:      StageSpecialization,
		Size:      baseSize,
		Repeats:   1,
		OutOffset: 0,
		Recursion: false,
	})

	return stages
}
