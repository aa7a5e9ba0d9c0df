package core

import "github.com/shopspring/decimal"

// DefaultDecimalPlaces is the minimum number of fractional digits kept by
// Decimal when a quotient does not terminate.
const DefaultDecimalPlaces = 34

// DecimalCapability is the Capability for arbitrary-precision decimals.
//
// ValueOf uses the shortest decimal representation that round-trips the
// float64, so ValueOf(0.1) is exactly 0.1. Divide keeps at least Places
// fractional digits and widens that by the divisor's magnitude past the
// dividend's own digits, so halving or quartering is always exact. Other non-terminating quotients
// round half away from zero.
type DecimalCapability struct {
	Places int32
}

// Decimal is the shared DecimalCapability with DefaultDecimalPlaces.
var Decimal = DecimalCapability{Places: DefaultDecimalPlaces}

// Add returns a+b.
func (DecimalCapability) Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }

// Subtract returns a-b.
func (DecimalCapability) Subtract(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }

// Multiply returns a*b.
func (DecimalCapability) Multiply(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }

// Divide returns a/b, or ErrDivisionByZero.
func (c DecimalCapability) Divide(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}

	places := c.Places
	if places <= 0 {
		places = DefaultDecimalPlaces
	}
	places = max(places, -a.Exponent()+b.Exponent()+int32(b.NumDigits())+1)

	return a.DivRound(b, places), nil
}

// Abs returns |a|.
func (DecimalCapability) Abs(a decimal.Decimal) decimal.Decimal { return a.Abs() }

// ValueOf converts n to a decimal.
func (DecimalCapability) ValueOf(n float64) decimal.Decimal { return decimal.NewFromFloat(n) }

// Compare returns a.Cmp(b).
func (DecimalCapability) Compare(a, b decimal.Decimal) int { return a.Cmp(b) }
