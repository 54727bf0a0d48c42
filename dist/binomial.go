// Package dist implements discrete probability distributions.
package dist

import (
	"errors"
	"fmt"

	"github.com/sartorproj/goprob/combin"
	"github.com/sartorproj/goprob/exact"
)

var (
	// ErrInvalidArgument is returned for count arguments outside a
	// function's domain, such as k outside [0, n] or a non-positive dice
	// or side count.
	ErrInvalidArgument = errors.New("dist: invalid argument")

	// ErrInvalidProbability is returned when a probability parameter lies
	// outside [0, 1].
	ErrInvalidProbability = errors.New("dist: probability outside [0, 1]")
)

// BinomialPMF returns the probability of exactly k successes in n
// independent Bernoulli(p) trials, C(n,k) * p^k * (1-p)^(n-k). The whole
// product is computed in exact values; p is converted to decimal once, on
// entry. Requires 0 <= k <= n and 0 <= p <= 1.
func BinomialPMF(n, k int64, p float64) (exact.Value, error) {
	if p < 0 || p > 1 {
		return exact.Zero(), fmt.Errorf("p = %v: %w", p, ErrInvalidProbability)
	}
	if n < 0 || k < 0 || k > n {
		return exact.Zero(), fmt.Errorf("n = %d, k = %d: %w", n, k, ErrInvalidArgument)
	}
	c, err := combin.BinomialCoefficient(n, k)
	if err != nil {
		return exact.Zero(), err
	}
	pv := exact.New(p)
	success, err := pv.Pow(k)
	if err != nil {
		return exact.Zero(), err
	}
	failure, err := exact.One().Sub(pv).Pow(n - k)
	if err != nil {
		return exact.Zero(), err
	}
	return c.Mul(success).Mul(failure), nil
}

// BinomialCDF returns the probability of at most k successes in n trials,
// the running sum of PMF terms for i = 0..k. The sum stays in exact values,
// so BinomialCDF(n, n, p) is 1 up to representable precision and the result
// is non-decreasing in k.
func BinomialCDF(n, k int64, p float64) (exact.Value, error) {
	if p < 0 || p > 1 {
		return exact.Zero(), fmt.Errorf("p = %v: %w", p, ErrInvalidProbability)
	}
	if n < 0 || k < 0 || k > n {
		return exact.Zero(), fmt.Errorf("n = %d, k = %d: %w", n, k, ErrInvalidArgument)
	}
	sum := exact.Zero()
	for i := int64(0); i <= k; i++ {
		term, err := BinomialPMF(n, i, p)
		if err != nil {
			return exact.Zero(), err
		}
		sum = sum.Add(term)
	}
	return sum, nil
}
