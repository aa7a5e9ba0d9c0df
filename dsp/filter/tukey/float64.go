package tukey

import (
	"slices"

	"github.com/cwbudde/algo-tukey/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Float64 is the float64 specialization of Filter. It returns exactly what
// Filter(data, core.Float64, k) returns, including the core.Real ordering of
// NaN and signed zeros.
//
// The median stages keep the window sorted incrementally instead of sorting
// every window, and the Hanning stage uses SIMD block kernels. Scaling by
// 0.25 and 0.5 is exact in IEEE-754, so the result matches dividing by 4 and 2.
func Float64(data []float64, k float64) []float64 {
	if len(data) < Loss {
		return data
	}

	first := siftFloat64(data, firstWindow)
	second := siftFloat64(first, secondWindow)
	smoothed := hanningFloat64(second)

	raw := data[Loss:]
	out := make([]float64, len(smoothed))
	for i, s := range smoothed {
		if core.Float64.Compare(core.Float64.Abs(raw[i]-s), k) > 0 {
			out[i] = s
		} else {
			out[i] = raw[i]
		}
	}

	return out
}

// siftFloat64 is sift with an incrementally sorted window: each step removes
// the outgoing sample and inserts the incoming one by binary search.
func siftFloat64(data []float64, w int) []float64 {
	if len(data) < w {
		return nil
	}

	mid := (w - 1) / 2
	out := make([]float64, 0, len(data)-w+1)

	sorted := make([]float64, w)
	copy(sorted, data[:w])
	slices.SortFunc(sorted, core.Float64.Compare)
	out = append(out, sorted[mid])

	for i := w; i < len(data); i++ {
		outgoing, _ := slices.BinarySearchFunc(sorted, data[i-w], core.Float64.Compare)
		sorted = slices.Delete(sorted, outgoing, outgoing+1)

		incoming, _ := slices.BinarySearchFunc(sorted, data[i], core.Float64.Compare)
		sorted = slices.Insert(sorted, incoming, data[i])

		out = append(out, sorted[mid])
	}

	return out
}

// hanningFloat64 computes (x[i-1]*0.25 + x[i]*0.5) + x[i+1]*0.25 for the
// interior samples of x.
func hanningFloat64(x []float64) []float64 {
	if len(x) < 3 {
		return nil
	}

	n := len(x) - 2
	out := make([]float64, n)
	tmp := make([]float64, n)

	vecmath.ScaleBlock(out, x[:n], 0.25)
	vecmath.ScaleBlock(tmp, x[1:n+1], 0.5)
	vecmath.AddBlockInPlace(out, tmp)
	vecmath.ScaleBlock(tmp, x[2:], 0.25)
	vecmath.AddBlockInPlace(out, tmp)

	return out
}
