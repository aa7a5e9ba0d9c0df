package core

import (
	"cmp"
	"errors"
	"math"

	algofft "github.com/cwbudde/algo-fft"
)

// ErrDivisionByZero is returned by Capability.Divide when the representation
// cannot divide by zero (integers and decimals).
var ErrDivisionByZero = errors.New("core: division by zero")

// Capability describes the arithmetic and ordering a sample type T must
// support to run through generic filters. Implementations are stateless and
// safe for concurrent use.
type Capability[T any] interface {
	Add(a, b T) T
	Subtract(a, b T) T
	Multiply(a, b T) T
	// Divide returns a/b. Representations whose native division faults on a
	// zero divisor return ErrDivisionByZero instead of panicking.
	Divide(a, b T) (T, error)
	Abs(a T) T
	// ValueOf converts an external number into T. The conversion policy
	// (rounding, truncation) is defined by each implementation.
	ValueOf(n float64) T
	// Compare returns -1, 0 or +1 and must define a total order.
	Compare(a, b T) int
}

// Integer is the set of signed integer sample types. Unsigned types are
// excluded because Subtract would wrap around instead of going negative.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Real is the Capability for floating-point types. Arithmetic follows
// IEEE-754: division by zero yields ±Inf or NaN and never fails.
//
// Compare orders -0 before +0 and NaN after +Inf, with all NaNs equal, so a
// NaN sample sorts to the top of a median window and a NaN deviation always
// exceeds the sensitivity.
type Real[F algofft.Float] struct{}

// Add returns a+b.
func (Real[F]) Add(a, b F) F { return a + b }

// Subtract returns a-b.
func (Real[F]) Subtract(a, b F) F { return a - b }

// Multiply returns a*b.
func (Real[F]) Multiply(a, b F) F { return a * b }

// Divide returns a/b.
func (Real[F]) Divide(a, b F) (F, error) { return a / b, nil }

// Abs returns |a|; -0 becomes +0.
func (Real[F]) Abs(a F) F {
	if a > 0 {
		return a
	}
	return -a
}

// ValueOf converts n to F, rounding to nearest for float32.
func (Real[F]) ValueOf(n float64) F { return F(n) }

// Compare returns -1, 0 or +1 under the total order described on Real.
func (Real[F]) Compare(a, b F) int {
	aNaN, bNaN := math.IsNaN(float64(a)), math.IsNaN(float64(b))
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}

	// a == b, which still leaves -0 against +0.
	aNeg, bNeg := math.Signbit(float64(a)), math.Signbit(float64(b))
	switch {
	case aNeg == bNeg:
		return 0
	case aNeg:
		return -1
	default:
		return 1
	}
}

// IntegerCapability is the Capability for native integer types.
//
// ValueOf truncates toward zero, so a fractional sensitivity such as 0.5
// becomes 0. Conversion of values outside the range of I is
// implementation-defined, as for any Go float-to-integer conversion. Abs of
// the minimum signed value overflows and stays negative.
type IntegerCapability[I Integer] struct{}

// Add returns a+b.
func (IntegerCapability[I]) Add(a, b I) I { return a + b }

// Subtract returns a-b.
func (IntegerCapability[I]) Subtract(a, b I) I { return a - b }

// Multiply returns a*b.
func (IntegerCapability[I]) Multiply(a, b I) I { return a * b }

// Divide returns a/b truncated toward zero, or ErrDivisionByZero.
func (IntegerCapability[I]) Divide(a, b I) (I, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Abs returns |a|.
func (IntegerCapability[I]) Abs(a I) I {
	if a < 0 {
		return -a
	}
	return a
}

// ValueOf converts n to I, truncating toward zero.
func (IntegerCapability[I]) ValueOf(n float64) I { return I(n) }

// Compare returns cmp.Compare(a, b).
func (IntegerCapability[I]) Compare(a, b I) int { return cmp.Compare(a, b) }

// Shared stateless capabilities.
var (
	Float64 Real[float64]
	Float32 Real[float32]
	Int     IntegerCapability[int]
	Int64   IntegerCapability[int64]
)
