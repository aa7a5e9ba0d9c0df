package testutil

import "math/rand"

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp generates start, start+step, start+2*step, ...
func Ramp(start, step float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// WithSpikes returns a copy of signal with signal[pos] += height for every pos
// in range.
func WithSpikes(signal []float64, height float64, pos ...int) []float64 {
	out := make([]float64, len(signal))
	copy(out, signal)
	for _, p := range pos {
		if p >= 0 && p < len(out) {
			out[p] += height
		}
	}
	return out
}
