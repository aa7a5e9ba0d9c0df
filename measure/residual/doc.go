// Package residual measures what a Tukey 53H run removed from a signal.
//
// The residual is the difference between the raw samples aligned with the
// filter output (raw[i+tukey.Loss]) and the output itself. [Analyze] reports
// how many samples were replaced, time-domain statistics of the residual,
// and its power spectrum.
//
// # Usage
//
//	out := tukey.Float64(raw, 0.5)
//	res, err := residual.Analyze(raw, out)
//	fmt.Printf("replaced %d of %d, rms %.3g\n", res.Replaced, res.Length, res.RMS)
package residual
