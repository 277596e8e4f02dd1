// Package conv implements linear convolution, correlation and a
// streaming, uniformly partitioned (block-wise) convolution filter on
// top of the fft package's real-input plan.
//
// Convolve/Correlate/Autocorrelate are one-shot operations sized for
// their inputs; ConvolveFilter is built once against a fixed impulse
// response and a block size, then driven incrementally as new input
// samples arrive (streaming FIR via frequency-domain multiply-
// accumulate, see NewConvolveFilter).
package conv
