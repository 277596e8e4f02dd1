package conv

import (
	"testing"

	"github.com/cwbudde/algo-fft/internal/approxtest"
)

// directConvolve computes the standard full linear convolution without
// any FFT involvement, used as the streaming filter's reference.
func directConvolve(x, h []float64) []float64 {
	out := make([]float64, len(x)+len(h)-1)
	for i, xv := range x {
		for j, hv := range h {
			out[i+j] += xv * hv
		}
	}
	return out
}

func TestConvolveFilterMatchesDirectConvolution(t *testing.T) {
	h := make([]float64, 19)
	for i := range h {
		h[i] = float64(i%4) - 1.5
	}
	x := make([]float64, 57)
	for i := range x {
		x[i] = float64((i*7)%11) - 5
	}

	const block = 8
	f, err := NewConvolveFilter64(h, block)
	if err != nil {
		t.Fatal(err)
	}
	if f.BlockSize() != block {
		t.Fatalf("BlockSize() = %d, want %d", f.BlockSize(), block)
	}

	want := directConvolve(x, h)

	// Feed the whole signal plus enough trailing zeros to flush the
	// filter's one-block output latency and the full convolution tail.
	latency := f.BlockSize()
	padded := make([]float64, len(want)+latency)
	copy(padded, x)

	out := make([]float64, len(padded))
	if err := f.Process(out, padded); err != nil {
		t.Fatal(err)
	}

	streamed := out[latency:]
	n := len(want)
	if len(streamed) < n {
		t.Fatalf("streamed output too short: %d < %d", len(streamed), n)
	}
	for i := 0; i < n; i++ {
		if !approxtest.NearlyEqual(streamed[i], want[i], 1e-6) {
			t.Errorf("index %d: streaming filter %v != direct convolution %v", i, streamed[i], want[i])
		}
	}
}

func TestConvolveFilterRejectsEmptyKernel(t *testing.T) {
	if _, err := NewConvolveFilter64(nil, 8); err != ErrEmptyKernel {
		t.Errorf("got %v, want ErrEmptyKernel", err)
	}
}

func TestConvolveFilterRejectsLengthMismatch(t *testing.T) {
	f, err := NewConvolveFilter64([]float64{1, 0.5}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Process(make([]float64, 3), make([]float64, 4)); err != ErrLengthMismatch {
		t.Errorf("got %v, want ErrLengthMismatch", err)
	}
}

func TestConvolveFilterLatencyMatchesBlockSize(t *testing.T) {
	f, err := NewConvolveFilter64([]float64{1, 0.5, -0.25}, 8)
	if err != nil {
		t.Fatal(err)
	}
	if f.Latency() != f.BlockSize() {
		t.Errorf("Latency() = %d, want BlockSize() = %d", f.Latency(), f.BlockSize())
	}
}

func TestConvolveFilterResetMatchesFreshFilter(t *testing.T) {
	h := []float64{1, 0.5, -0.25, 0.1}
	const block = 4
	f, err := NewConvolveFilter64(h, block)
	if err != nil {
		t.Fatal(err)
	}

	x := make([]float64, 23)
	for i := range x {
		x[i] = float64(i%3) - 1
	}
	out := make([]float64, len(x))
	if err := f.Process(out, x); err != nil {
		t.Fatal(err)
	}

	f.Reset()

	fresh, err := NewConvolveFilter64(h, block)
	if err != nil {
		t.Fatal(err)
	}
	got := make([]float64, len(x))
	want := make([]float64, len(x))
	if err := f.Process(got, x); err != nil {
		t.Fatal(err)
	}
	if err := fresh.Process(want, x); err != nil {
		t.Fatal(err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: after Reset got %v, want %v (fresh filter)", i, got[i], want[i])
		}
	}
}

func TestNewConvolveFilterGeneric(t *testing.T) {
	h := []float64{1, 0.5, -0.25}
	f, err := NewConvolveFilter[float64, complex128](h, 8)
	if err != nil {
		t.Fatal(err)
	}
	if f.BlockSize() != 8 {
		t.Errorf("BlockSize() = %d, want 8", f.BlockSize())
	}

	h32 := []float32{1, 0.5, -0.25}
	f32, err := NewConvolveFilter[float32, complex64](h32, 8)
	if err != nil {
		t.Fatal(err)
	}
	if f32.BlockSize() != 8 {
		t.Errorf("BlockSize() = %d, want 8", f32.BlockSize())
	}
}

func TestConvolveFilterBlockSizeRoundsUpToPowerOfTwo(t *testing.T) {
	f, err := NewConvolveFilter64([]float64{1}, 5)
	if err != nil {
		t.Fatal(err)
	}
	if f.BlockSize() != 8 {
		t.Errorf("BlockSize() = %d, want 8", f.BlockSize())
	}
}

func TestConvolveFilterProcessingInChunks(t *testing.T) {
	h := []float64{1, 0.5, -0.25, 0.1}
	const block = 4
	f, err := NewConvolveFilter64(h, block)
	if err != nil {
		t.Fatal(err)
	}

	x := make([]float64, 23)
	for i := range x {
		x[i] = float64(i%3) - 1
	}
	want := directConvolve(x, h)
	latency := f.BlockSize()
	padded := make([]float64, len(want)+latency)
	copy(padded, x)

	// Feed the filter in small, irregularly sized chunks rather than
	// one call, since Process must tolerate partial blocks.
	out := make([]float64, len(padded))
	chunk := 3
	for i := 0; i < len(padded); i += chunk {
		end := i + chunk
		if end > len(padded) {
			end = len(padded)
		}
		if err := f.Process(out[i:end], padded[i:end]); err != nil {
			t.Fatal(err)
		}
	}

	streamed := out[latency:]
	for i := 0; i < len(want); i++ {
		if !approxtest.NearlyEqual(streamed[i], want[i], 1e-6) {
			t.Errorf("index %d: chunked streaming %v != direct convolution %v", i, streamed[i], want[i])
		}
	}
}
