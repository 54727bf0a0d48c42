// Package combin provides exact combinatorial coefficients.
package combin

import (
	"errors"
	"fmt"

	"github.com/sartorproj/goprob/exact"
)

// ErrInvalidArgument is returned for arguments outside a function's domain,
// such as a negative factorial operand or k outside [0, n] in a coefficient.
var ErrInvalidArgument = errors.New("combin: invalid argument")

// Factorial returns n! as an exact value. The product is accumulated
// iteratively, so large n cannot exhaust the stack. Factorial(0) and
// Factorial(1) are both 1.
func Factorial(n int64) (exact.Value, error) {
	if n < 0 {
		return exact.Zero(), fmt.Errorf("factorial of %d: %w", n, ErrInvalidArgument)
	}
	result := exact.One()
	for i := int64(2); i <= n; i++ {
		result = result.Mul(exact.FromInt(i))
	}
	return result, nil
}

// BinomialCoefficient returns C(n, k), the number of ways to choose k
// unordered items from n without repetition, as n! / ((n-k)! k!).
// Requires 0 <= k <= n.
func BinomialCoefficient(n, k int64) (exact.Value, error) {
	if n < 0 || k < 0 || k > n {
		return exact.Zero(), fmt.Errorf("C(%d, %d): %w", n, k, ErrInvalidArgument)
	}
	nf, err := Factorial(n)
	if err != nil {
		return exact.Zero(), err
	}
	nkf, err := Factorial(n - k)
	if err != nil {
		return exact.Zero(), err
	}
	kf, err := Factorial(k)
	if err != nil {
		return exact.Zero(), err
	}
	return nf.Div(nkf.Mul(kf))
}

// MultisetCoefficient returns the number of ways to choose k items from n
// with repetition allowed, C(n+k-1, k). Defined for n >= 0 and k >= 0:
// choosing zero items has exactly one (empty) way regardless of n, and a
// positive number of items cannot be chosen from an empty set.
func MultisetCoefficient(n, k int64) (exact.Value, error) {
	if n < 0 || k < 0 {
		return exact.Zero(), fmt.Errorf("multichoose(%d, %d): %w", n, k, ErrInvalidArgument)
	}
	if k == 0 {
		return exact.One(), nil
	}
	if n == 0 {
		return exact.Zero(), nil
	}
	return BinomialCoefficient(n+k-1, k)
}
