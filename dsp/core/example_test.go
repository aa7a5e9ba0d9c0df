package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-tukey/dsp/core"
	"github.com/shopspring/decimal"
)

// sum adds values using any capability.
func sum[T any](c core.Capability[T], values ...T) T {
	acc := c.ValueOf(0)
	for _, v := range values {
		acc = c.Add(acc, v)
	}
	return acc
}

func ExampleCapability() {
	fmt.Println(sum[float64](core.Float64, 0.1, 0.2))
	fmt.Println(sum(core.Decimal, decimal.RequireFromString("0.1"), decimal.RequireFromString("0.2")))
	fmt.Println(sum[int](core.Int, 1, 2, 3))

	// Output:
	// 0.30000000000000004
	// 0.3
	// 6
}

func ExampleIntegerCapability_ValueOf() {
	fmt.Println(core.Int.ValueOf(0.5), core.Int.ValueOf(2.9))

	// Output:
	// 0 2
}
