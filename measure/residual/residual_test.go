package residual

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-tukey/dsp/filter/tukey"
	"github.com/cwbudde/algo-tukey/internal/testutil"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestAnalyzeSingleSpike(t *testing.T) {
	raw := testutil.WithSpikes(testutil.DC(1, 24), 99, 12)
	out := tukey.Float64(raw, 0.5)

	res, err := Analyze(raw, out)
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	if res.Length != 16 || res.Replaced != 1 {
		t.Fatalf("length/replaced = %d/%d, want 16/1", res.Length, res.Replaced)
	}
	if res.ReplacedRatio != 1.0/16 {
		t.Fatalf("ReplacedRatio = %v, want %v", res.ReplacedRatio, 1.0/16)
	}
	if !almostEqual(res.Mean, 99.0/16, 1e-12) {
		t.Fatalf("Mean = %v, want %v", res.Mean, 99.0/16)
	}
	if !almostEqual(res.RMS, 99.0/4, 1e-12) {
		t.Fatalf("RMS = %v, want %v", res.RMS, 99.0/4)
	}
	if res.Peak != 99 {
		t.Fatalf("Peak = %v, want 99", res.Peak)
	}

	// An impulse has a flat power spectrum.
	if res.FFTSize != 16 || len(res.Spectrum) != 9 {
		t.Fatalf("FFTSize/bins = %d/%d, want 16/9", res.FFTSize, len(res.Spectrum))
	}
	testutil.RequireSliceNearlyEqual(t, res.Spectrum, testutil.DC(99*99, 9), 1e-6)
}

func TestAnalyzeNothingReplaced(t *testing.T) {
	raw := testutil.Ramp(0, 1, 40)
	out := tukey.Float64(raw, 100)

	res, err := Analyze(raw, out)
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	if res.Replaced != 0 || res.RMS != 0 || res.Peak != 0 || res.StdDev != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	for k, p := range res.Spectrum {
		if p != 0 {
			t.Fatalf("Spectrum[%d] = %v, want 0", k, p)
		}
	}
}

func TestAnalyzeSingleSample(t *testing.T) {
	raw := testutil.Ramp(0, 1, tukey.Loss+1)
	out := tukey.Float64(raw, 0.5)

	res, err := Analyze(raw, out)
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if res.Length != 1 || res.FFTSize != 2 || res.StdDev != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if math.IsNaN(res.Mean) {
		t.Fatal("Mean is NaN")
	}
}

func TestAnalyzeErrors(t *testing.T) {
	if _, err := Analyze(testutil.DC(1, 8), nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("error = %v, want ErrEmpty", err)
	}
	if _, err := Analyze(testutil.DC(1, 10), testutil.DC(1, 3)); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want ErrLengthMismatch", err)
	}
}
