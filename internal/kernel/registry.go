package kernel

import (
	"sort"
	"sync"

	"github.com/cwbudde/algo-fft/internal/cpu"
)

// Variant names one registered butterfly implementation. Higher
// Priority wins among variants whose Require features are all present
// on the running CPU. Every variant registered by this module computes
// identical results; Name exists purely for introspection (Plan
// reports which variant it would dispatch to).
type Variant struct {
	Name     string
	Priority int
	Require  func(cpu.Features) bool
}

// Registry is a priority-ordered, thread-safe list of Variants: named,
// prioritized implementations selected at runtime from detected CPU
// features. This module ships only portable-Go variants (the Go
// toolchain has no portable SIMD intrinsics, and unverifiable
// hand-written assembly has no place in a numerical kernel), but the
// selection machinery itself is exercised the same way a SIMD-backed
// one would be.
type Registry struct {
	mu       sync.RWMutex
	variants []Variant
}

// Global is the process-wide butterfly variant registry.
var Global = NewRegistry()

func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(Variant{Name: "generic", Priority: 0, Require: func(cpu.Features) bool { return true }})
	return r
}

// Register adds v to the registry. Safe for concurrent use.
func (r *Registry) Register(v Variant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.variants = append(r.variants, v)
	sort.SliceStable(r.variants, func(i, j int) bool {
		return r.variants[i].Priority > r.variants[j].Priority
	})
}

// Select returns the highest-priority variant whose Require predicate
// is satisfied by the given features. There is always at least one
// match since "generic" requires nothing.
func (r *Registry) Select(f cpu.Features) Variant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, v := range r.variants {
		if v.Require(f) {
			return v
		}
	}
	return Variant{Name: "generic", Priority: 0}
}

// SIMDLevel reports a coarse, informational name for the best SIMD
// feature set detected on the running CPU, independent of which
// Variant is actually selected by Select. Every Variant this module
// registers is portable Go today, so SIMDLevel exists for diagnostics
// only, not to pick a differently-compiled code path. The plan
// compiler's thresholds are sized from the constant LaneWidth, not from
// SIMDLevel.
func SIMDLevel(f cpu.Features) string {
	switch {
	case f.HasAVX512:
		return "avx512"
	case f.HasAVX2:
		return "avx2"
	case f.HasAVX:
		return "avx"
	case f.HasNEON:
		return "neon"
	case f.HasSSE2:
		return "sse2"
	default:
		return "generic"
	}
}
