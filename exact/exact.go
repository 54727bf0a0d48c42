// Package exact provides an immutable arbitrary-precision decimal value type.
package exact

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// divPrecision is the number of fractional digits kept by Div and Sqrt.
// Exact operations (Add, Sub, Mul, Pow with a non-negative exponent) are
// not rounded at all.
const divPrecision = 32

var (
	// ErrDivisionByZero is returned when a divisor is exactly zero.
	ErrDivisionByZero = errors.New("exact: division by zero")

	// ErrInvalidOperand is returned for an operand outside an operation's
	// domain, such as the square root of a negative value.
	ErrInvalidOperand = errors.New("exact: invalid operand")
)

// Value is an arbitrary-precision signed decimal number. Every operation
// returns a new Value and leaves its receiver untouched, so Values can be
// shared freely across goroutines. The zero Value is 0.
type Value struct {
	d decimal.Decimal
}

// Zero returns the Value 0.
func Zero() Value { return Value{} }

// One returns the Value 1.
func One() Value { return Value{decimal.New(1, 0)} }

// New creates a Value from a native float64. The conversion preserves the
// shortest decimal representation of f, so New(0.1) is exactly 0.1.
func New(f float64) Value {
	return Value{decimal.NewFromFloat(f)}
}

// FromInt creates a Value from an int64.
func FromInt(i int64) Value {
	return Value{decimal.NewFromInt(i)}
}

// FromString parses a decimal string such as "1.5" or "-3" into a Value.
func FromString(s string) (Value, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Value{}, fmt.Errorf("exact: parse %q: %w", s, err)
	}
	return Value{d}, nil
}

// Add returns v + o.
func (v Value) Add(o Value) Value { return Value{v.d.Add(o.d)} }

// Sub returns v - o.
func (v Value) Sub(o Value) Value { return Value{v.d.Sub(o.d)} }

// Mul returns v * o.
func (v Value) Mul(o Value) Value { return Value{v.d.Mul(o.d)} }

// Div returns v / o rounded to 32 fractional digits. It fails with
// ErrDivisionByZero when o is zero.
func (v Value) Div(o Value) (Value, error) {
	if o.d.IsZero() {
		return Value{}, ErrDivisionByZero
	}
	return Value{v.d.DivRound(o.d, divPrecision)}, nil
}

// Pow returns v raised to an integer exponent. Negative bases are allowed,
// which makes Pow usable for alternating-sign terms. A negative exponent
// inverts the result and therefore fails with ErrDivisionByZero for a zero
// base.
func (v Value) Pow(exp int64) (Value, error) {
	if exp < 0 {
		p, err := v.Pow(-exp)
		if err != nil {
			return Value{}, err
		}
		return One().Div(p)
	}
	result := One()
	base := v
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
	}
	return result, nil
}

// Sqrt returns the square root of v, rounded to 32 fractional digits. It
// fails with ErrInvalidOperand for a negative operand; Sqrt of zero is zero.
func (v Value) Sqrt() (Value, error) {
	if v.d.Sign() < 0 {
		return Value{}, fmt.Errorf("exact: square root of %s: %w", v.d, ErrInvalidOperand)
	}
	if v.d.IsZero() {
		return Value{}, nil
	}

	// Newton iteration x' = (x + v/x) / 2, seeded from the float square
	// root. Each step doubles the number of correct digits.
	f := v.d.InexactFloat64()
	var x decimal.Decimal
	if math.IsInf(f, 0) {
		// Beyond float range: seed with 10^(digits/2).
		x = decimal.New(1, int32(v.d.NumDigits()/2))
	} else {
		x = decimal.NewFromFloat(math.Sqrt(f))
	}
	if x.IsZero() {
		x = decimal.New(1, 0)
	}

	two := decimal.New(2, 0)
	eps := decimal.New(1, -divPrecision)
	for i := 0; i < 64; i++ {
		next := x.Add(v.d.DivRound(x, divPrecision+2)).DivRound(two, divPrecision+2)
		done := next.Sub(x).Abs().Cmp(eps) < 0
		x = next
		if done {
			break
		}
	}
	return Value{x.Round(divPrecision)}, nil
}

// Abs returns the absolute value of v.
func (v Value) Abs() Value { return Value{v.d.Abs()} }

// Neg returns -v.
func (v Value) Neg() Value { return Value{v.d.Neg()} }

// Equal reports whether v and o represent the same number.
func (v Value) Equal(o Value) bool { return v.d.Equal(o.d) }

// Cmp compares v and o, returning -1, 0, or 1.
func (v Value) Cmp(o Value) int { return v.d.Cmp(o.d) }

// Sign returns -1 for negative values, 0 for zero, and 1 for positive values.
func (v Value) Sign() int { return v.d.Sign() }

// IsZero reports whether v is zero.
func (v Value) IsZero() bool { return v.d.IsZero() }

// Float64 converts v to the nearest native float64. Callers should convert
// only at the end of a computation; intermediate results belong in Values.
func (v Value) Float64() float64 { return v.d.InexactFloat64() }

// String returns the decimal representation of v.
func (v Value) String() string { return v.d.String() }
