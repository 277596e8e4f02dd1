package fft

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-fft/internal/approxtest"
)

func TestNewPlanRealRejectsOddSize(t *testing.T) {
	if _, err := NewPlanReal64(7, Both); err != ErrInvalidSize {
		t.Errorf("got %v, want ErrInvalidSize", err)
	}
}

func TestExecuteRejectsUnknownFormat(t *testing.T) {
	const n = 16
	p, err := NewPlanReal64(n, Both)
	if err != nil {
		t.Fatal(err)
	}
	bad := Format(99)
	in := make([]float64, n)
	out := make([]complex128, n/2)
	temp := make([]complex128, p.TempSize())
	if err := p.ExecuteForward(out, in, temp, bad); err != ErrUnknownFormat {
		t.Errorf("ExecuteForward: got %v, want ErrUnknownFormat", err)
	}
	if err := p.ExecuteInverse(in, out, temp, bad); err != ErrUnknownFormat {
		t.Errorf("ExecuteInverse: got %v, want ErrUnknownFormat", err)
	}
}

func realNaiveDFT(x []float64) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var acc complex128
		for j := 0; j < n; j++ {
			angle := -2 * math.Pi * float64(k) * float64(j) / float64(n)
			acc += complex(x[j], 0) * cmplx.Exp(complex(0, angle))
		}
		out[k] = acc
	}
	return out
}

func TestRealForwardMatchesNaiveDFT(t *testing.T) {
	for _, fmt := range []Format{Perm, CCs} {
		for _, n := range []int{8, 16, 64, 1024} {
			p, err := NewPlanReal64(n, Both)
			if err != nil {
				t.Fatalf("n=%d: %v", n, err)
			}
			in := make([]float64, n)
			for i := range in {
				in[i] = math.Sin(float64(i)*0.5) + 0.25*math.Cos(float64(i)*1.7)
			}
			want := realNaiveDFT(in)

			out := make([]complex128, p.SpectrumLen(fmt))
			temp := make([]complex128, p.TempSize())
			if err := p.ExecuteForward(out, in, temp, fmt); err != nil {
				t.Fatalf("n=%d fmt=%v: ExecuteForward: %v", n, fmt, err)
			}

			half := n / 2
			for i := 0; i <= half; i++ {
				var got complex128
				if fmt == CCs {
					got = out[i]
				} else if i == 0 {
					got = complex(real(out[0]), 0)
				} else if i == half {
					got = complex(imag(out[0]), 0)
				} else {
					got = out[i]
				}
				if cmplx.Abs(got-want[i]) > 1e-8 {
					t.Errorf("n=%d fmt=%v bin %d: got %v, want %v", n, fmt, i, got, want[i])
				}
			}
		}
	}
}

func TestRealRoundTrip(t *testing.T) {
	for _, fmt := range []Format{Perm, CCs} {
		for _, n := range []int{8, 16, 64, 1024} {
			p, err := NewPlanReal64(n, Both)
			if err != nil {
				t.Fatalf("n=%d: %v", n, err)
			}
			in := make([]float64, n)
			for i := range in {
				in[i] = float64(i%11) - 5
			}
			spec := make([]complex128, p.SpectrumLen(fmt))
			temp := make([]complex128, p.TempSize())
			if err := p.ExecuteForward(spec, in, temp, fmt); err != nil {
				t.Fatalf("n=%d fmt=%v: ExecuteForward: %v", n, fmt, err)
			}
			back := make([]float64, n)
			if err := p.ExecuteInverse(back, spec, temp, fmt); err != nil {
				t.Fatalf("n=%d fmt=%v: ExecuteInverse: %v", n, fmt, err)
			}
			scale := float64(n / 2)
			for i := range back {
				got := back[i] / scale
				if !approxtest.NearlyEqual(got, in[i], 1e-8) {
					t.Errorf("n=%d fmt=%v index %d: got %v, want %v", n, fmt, i, got, in[i])
				}
			}
		}
	}
}

func TestRealPlanGaussianRoundTripN16(t *testing.T) {
	const n = 16
	p, err := NewPlanReal64(n, Both)
	if err != nil {
		t.Fatal(err)
	}
	in := make([]float64, n)
	seed := uint64(12345)
	for i := range in {
		// Deterministic pseudo-gaussian via Box-Muller on an LCG, so the
		// test needs no external RNG seeding and is reproducible.
		seed = seed*6364136223846793005 + 1442695040888963407
		u1 := float64(seed>>11) / (1 << 53)
		seed = seed*6364136223846793005 + 1442695040888963407
		u2 := float64(seed>>11) / (1 << 53)
		in[i] = math.Sqrt(-2*math.Log(u1+1e-12)) * math.Cos(2*math.Pi*u2)
	}

	spec := make([]complex128, p.SpectrumLen(Perm))
	temp := make([]complex128, p.TempSize())
	if err := p.ExecuteForward(spec, in, temp, Perm); err != nil {
		t.Fatal(err)
	}
	back := make([]float64, n)
	if err := p.ExecuteInverse(back, spec, temp, Perm); err != nil {
		t.Fatal(err)
	}
	scale := float64(n / 2)
	for i := range back {
		if d := math.Abs(back[i]/scale - in[i]); d > 1e-5 {
			t.Errorf("index %d: round trip error %v exceeds 1e-5", i, d)
		}
	}
}

func TestRealPlanDCNyquistN1024(t *testing.T) {
	const n = 1024
	p, err := NewPlanReal64(n, Forward)
	if err != nil {
		t.Fatal(err)
	}
	in := make([]float64, n)
	for i := range in {
		in[i] = 3.0 + math.Pow(-1, float64(i))*2.0 // DC=3, Nyquist amplitude 2
	}
	out := make([]complex128, p.SpectrumLen(CCs))
	temp := make([]complex128, p.TempSize())
	if err := p.ExecuteForward(out, in, temp, CCs); err != nil {
		t.Fatal(err)
	}
	wantDC := complex(3.0*n, 0)
	wantNyq := complex(2.0*n, 0)
	if cmplx.Abs(out[0]-wantDC) > 1e-6 {
		t.Errorf("DC bin = %v, want %v", out[0], wantDC)
	}
	if cmplx.Abs(out[n/2]-wantNyq) > 1e-6 {
		t.Errorf("Nyquist bin = %v, want %v", out[n/2], wantNyq)
	}
	if imag(out[0]) != 0 || imag(out[n/2]) != 0 {
		t.Errorf("DC/Nyquist bins must be purely real in CCs format, got %v, %v", out[0], out[n/2])
	}
}

func TestFormatLen(t *testing.T) {
	if got := FormatLen(16, Perm); got != 8 {
		t.Errorf("FormatLen(16, Perm) = %d, want 8", got)
	}
	if got := FormatLen(16, CCs); got != 9 {
		t.Errorf("FormatLen(16, CCs) = %d, want 9", got)
	}
}
