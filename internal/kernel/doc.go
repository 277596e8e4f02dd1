// Package kernel holds the numeric primitives the fft package's plan
// compiler and executor are built from: radix-2/radix-4 butterflies,
// exact twiddle factors at the quarter-turn angles, and the bit- and
// digit-reversal permutations that name the Cooley-Tukey decomposition
// orders used elsewhere in this module.
//
// Everything here is pure and allocation-free on the hot path; callers
// own all buffers.
package kernel
