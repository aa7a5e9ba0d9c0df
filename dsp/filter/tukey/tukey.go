package tukey

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-tukey/dsp/core"
)

const (
	// Loss is the number of samples consumed by one filter run.
	Loss = 8

	firstWindow  = 5
	secondWindow = 3
)

// ErrNilCapability is returned when Filter needs arithmetic but got no capability.
var ErrNilCapability = errors.New("tukey: nil capability")

// ArithmeticFault reports a capability operation that failed mid-pipeline.
type ArithmeticFault struct {
	Stage string
	Index int
	Err   error
}

func (e *ArithmeticFault) Error() string {
	return fmt.Sprintf("tukey: %s stage at index %d: %v", e.Stage, e.Index, e.Err)
}

func (e *ArithmeticFault) Unwrap() error { return e.Err }

// Filter smooths data with the Tukey 53H algorithm using c for arithmetic
// and k as the sensitivity threshold.
//
// len(data) < Loss returns data itself. Otherwise the result is a new slice
// of length len(data)-Loss and data is not modified. An error from
// c.Divide aborts the run and is returned wrapped in *ArithmeticFault.
func Filter[T any](data []T, c core.Capability[T], k float64) ([]T, error) {
	if len(data) < Loss {
		return data, nil
	}
	if c == nil {
		return nil, ErrNilCapability
	}

	first := sift(data, c, firstWindow)
	second := sift(first, c, secondWindow)

	smoothed, err := hanning(second, c)
	if err != nil {
		return nil, err
	}

	return merge(smoothed, data[Loss:], c, c.ValueOf(k)), nil
}

// sift is a sliding median over full windows of size w.
// The output has len(data)-w+1 samples; data shorter than w yields nil.
func sift[T any](data []T, c core.Capability[T], w int) []T {
	if len(data) < w {
		return nil
	}

	mid := (w - 1) / 2
	out := make([]T, 0, len(data)-w+1)
	window := make([]T, w)

	for i := 0; i+w <= len(data); i++ {
		copy(window, data[i:i+w])
		slices.SortFunc(window, c.Compare)
		out = append(out, window[mid])
	}

	return out
}

// hanning applies the 0.25/0.5/0.25 kernel to interior samples. The first and
// last samples have no output.
func hanning[T any](x []T, c core.Capability[T]) ([]T, error) {
	if len(x) < 3 {
		return nil, nil
	}

	two := c.ValueOf(2)
	four := c.ValueOf(4)
	out := make([]T, 0, len(x)-2)

	for i := 1; i < len(x)-1; i++ {
		prev, err := c.Divide(x[i-1], four)
		if err != nil {
			return nil, &ArithmeticFault{Stage: "hanning", Index: i, Err: err}
		}

		cur, err := c.Divide(x[i], two)
		if err != nil {
			return nil, &ArithmeticFault{Stage: "hanning", Index: i, Err: err}
		}

		next, err := c.Divide(x[i+1], four)
		if err != nil {
			return nil, &ArithmeticFault{Stage: "hanning", Index: i, Err: err}
		}

		out = append(out, c.Add(c.Add(prev, cur), next))
	}

	return out, nil
}

// merge keeps raw[i] when |raw[i]-smoothed[i]| <= k and smoothed[i] otherwise.
func merge[T any](smoothed, raw []T, c core.Capability[T], k T) []T {
	n := min(len(smoothed), len(raw))
	out := make([]T, n)

	for i := range n {
		if c.Compare(c.Abs(c.Subtract(raw[i], smoothed[i])), k) > 0 {
			out[i] = smoothed[i]
		} else {
			out[i] = raw[i]
		}
	}

	return out
}
