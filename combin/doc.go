// Package combin provides factorials and combinatorial coefficients
// computed in exact decimal arithmetic.
//
// All results are exact.Value integers; nothing is approximated through
// floating point, so coefficients stay correct far beyond the range where
// float64 factorials overflow.
//
// # Usage
//
//	f, err := combin.Factorial(20)              // 2432902008176640000
//	c, err := combin.BinomialCoefficient(5, 2)  // 10
//	m, err := combin.MultisetCoefficient(3, 2)  // 6
//
// Arguments outside a function's domain (negative operands, k > n) fail
// with ErrInvalidArgument rather than producing silently wrong results.
package combin
