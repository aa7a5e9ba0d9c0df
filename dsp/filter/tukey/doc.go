// Package tukey implements the Tukey 53H robust smoother.
//
// The filter runs four stages over a fully materialized sequence:
//
//  1. a sliding median over windows of 5 samples,
//  2. a sliding median over windows of 3 samples,
//  3. Hanning smoothing y[i] = x[i-1]/4 + x[i]/2 + x[i+1]/4,
//  4. a decision merge against the raw input: a raw sample is kept when it is
//     within k of the smoothed value and replaced by the smoothed value
//     otherwise.
//
// Each run consumes [Loss] samples (4 + 2 + 2), so the output is always 8
// samples shorter than the input. Inputs shorter than [Loss] are returned
// unchanged.
//
// [Filter] is generic over any sample type with a [core.Capability]
// (float, integer, arbitrary-precision decimal). [Float64] is an
// allocation-light float64 path that produces identical results.
package tukey
