package residual

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-tukey/dsp/filter/tukey"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmpty is returned when the filtered signal has no samples.
	ErrEmpty = errors.New("residual: filtered signal is empty")
	// ErrLengthMismatch is returned when len(raw) != len(filtered)+tukey.Loss.
	ErrLengthMismatch = errors.New("residual: raw length must be filtered length + tukey.Loss")
)

// Result holds residual measurements.
type Result struct {
	Length        int     // filtered samples
	Replaced      int     // samples that differ from the aligned raw sample
	ReplacedRatio float64 // Replaced / Length
	Mean          float64
	StdDev        float64 // unbiased; 0 for a single sample
	RMS           float64
	Peak          float64 // max |r|
	FFTSize       int
	Spectrum      []float64 // |R[k]|^2 for k in [0, FFTSize/2]
}

// Analyze compares raw with the output of a filter run over raw.
func Analyze(raw, filtered []float64) (Result, error) {
	if len(filtered) == 0 {
		return Result{}, ErrEmpty
	}
	if len(raw) != len(filtered)+tukey.Loss {
		return Result{}, fmt.Errorf("%w: raw %d, filtered %d", ErrLengthMismatch, len(raw), len(filtered))
	}

	n := len(filtered)
	r := make([]float64, n)
	replaced := 0
	for i, y := range filtered {
		x := raw[i+tukey.Loss]
		if x != y {
			replaced++
		}
		r[i] = x - y
	}

	res := Result{
		Length:        n,
		Replaced:      replaced,
		ReplacedRatio: float64(replaced) / float64(n),
		Mean:          stat.Mean(r, nil),
		RMS:           floats.Norm(r, 2) / math.Sqrt(float64(n)),
		Peak:          math.Max(math.Abs(floats.Max(r)), math.Abs(floats.Min(r))),
	}
	if n > 1 {
		res.StdDev = stat.StdDev(r, nil)
	}

	spectrum, fftSize, err := powerSpectrum(r)
	if err != nil {
		return Result{}, err
	}
	res.Spectrum = spectrum
	res.FFTSize = fftSize

	return res, nil
}

// powerSpectrum zero-pads r to a power of two and returns the one-sided
// power spectrum.
func powerSpectrum(r []float64) ([]float64, int, error) {
	fftSize := max(nextPowerOf2(len(r)), 2)

	in := make([]complex128, fftSize)
	for i, v := range r {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, 0, fmt.Errorf("residual: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, 0, fmt.Errorf("residual: forward FFT: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	return power, fftSize, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
