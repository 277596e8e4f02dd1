package fft

import "github.com/cwbudde/algo-fft/internal/kernel"

// levelSizes returns the sequence of combine sizes the recursive
// radix-4 engine visits for a transform of length n: n, n/4, n/16, ...
// stopping once the size reaches 1 or 2 (the base cases, which need no
// twiddle table).
func levelSizes(n int) []int {
	var sizes []int
	for s := n; s > 2; s /= 4 {
		sizes = append(sizes, s)
	}
	return sizes
}

// buildTwiddleTable builds, for a single combine size s, the 3*(s/4)
// twiddle factors used by kernel.Radix4Combine: for bin k in [0, s/4)
// the triple (W_s^k, W_s^2k, W_s^3k) is stored at indices 3k, 3k+1, 3k+2.
func buildTwiddleTable[C Complex](s int, inverse bool) []C {
	q := s / 4
	table := make([]C, 3*q)
	for k := 0; k < q; k++ {
		table[3*k+0] = kernel.Twiddle[C](k, s, inverse)
		table[3*k+1] = kernel.Twiddle[C](2*k, s, inverse)
		table[3*k+2] = kernel.Twiddle[C](3*k, s, inverse)
	}
	return table
}

// buildTwiddles builds one table per level returned by levelSizes, in
// the same order (largest size first).
func buildTwiddles[C Complex](n int, inverse bool) [][]C {
	sizes := levelSizes(n)
	tables := make([][]C, len(sizes))
	for i, s := range sizes {
		tables[i] = buildTwiddleTable[C](s, inverse)
	}
	return tables
}
