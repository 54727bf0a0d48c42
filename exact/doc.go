// Package exact wraps arbitrary-precision decimal arithmetic in an
// immutable value type.
//
// Binary floating-point cannot represent most decimal fractions, so chains
// of multiplications and divisions drift away from the true result. Value
// keeps every intermediate number in decimal form; conversion back to
// float64 is meant to happen once, at the boundary where a caller needs a
// native number.
//
// # Creating Values
//
//	v := exact.New(0.1)        // exactly 0.1, not 0.1000000000000000055511...
//	n := exact.FromInt(42)
//	s, err := exact.FromString("-3.25")
//
// # Arithmetic
//
// All operations return a new Value:
//
//	sum := a.Add(b)
//	q, err := a.Div(b)       // ErrDivisionByZero when b is zero
//	p, err := a.Pow(3)       // integer exponents, negative bases allowed
//	r, err := a.Sqrt()       // ErrInvalidOperand for negative operands
//
// Add, Sub, Mul, and Pow with non-negative exponents are exact. Div and
// Sqrt round to 32 fractional digits.
package exact
