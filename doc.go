// Package goprob provides exact discrete probability and descriptive statistics.
//
// GoProb is a Go package for combinatorics, discrete probability
// distributions, and outlier-robust summary statistics. All precision-critical
// arithmetic runs on arbitrary-precision decimals, so chained multiplications,
// divisions, and alternating sums do not accumulate binary floating-point
// rounding error. Typical consumers are dice-probability simulators and game
// balancing tools.
//
// # Features
//
//   - Exact decimal arithmetic primitive (add, subtract, multiply, divide,
//     integer power, square root, absolute value)
//   - Iterative factorial, binomial coefficient, and multiset coefficient
//   - Binomial PMF and CDF computed entirely in exact values
//   - Dice-sum probability via the inclusion-exclusion identity
//   - Full probability spaces with expected value, variance, and standard
//     deviation
//   - Descriptive statistics (mean, median, mode, standard deviation)
//   - Robust outlier detection (modified z-scores, percentile trims,
//     standard-deviation bounds, interquartile fences)
//
// # Quick Start
//
// Build the probability space for two six-sided dice:
//
//	space, _ := dist.NewDiceSpace(2, 6)
//	for _, sum := range space.Outcomes() {
//	    p, _ := space.Probability(sum)
//	    fmt.Printf("%2d  %s\n", sum, p)
//	}
//	fmt.Printf("expected value: %v\n", space.ExpectedValue())
//
// Filter outliers from a sample:
//
//	clean, _ := stats.FilterByInterquartileRange(data)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - exact: arbitrary-precision decimal value type
//   - combin: factorials and combinatorial coefficients
//   - dist: discrete distributions and probability spaces
//   - stats: descriptive statistics and outlier filters
//
// Every public function is a pure, stateless computation over immutable
// values, so all of them are safe for concurrent use without locking.
//
// # References
//
//   - Feller, W. (1968). An Introduction to Probability Theory and Its Applications
//   - Iglewicz, B., & Hoaglin, D. C. (1993). How to Detect and Handle Outliers
package goprob
