package residual_test

import (
	"fmt"

	"github.com/cwbudde/algo-tukey/dsp/filter/tukey"
	"github.com/cwbudde/algo-tukey/measure/residual"
)

func ExampleAnalyze() {
	raw := []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 8, 0, 0, 0, 0, 0}
	out := tukey.Float64(raw, 1)

	res, err := residual.Analyze(raw, out)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("replaced=%d/%d peak=%.1f\n", res.Replaced, res.Length, res.Peak)

	// Output:
	// replaced=1/8 peak=8.0
}
