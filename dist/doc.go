// Package dist implements discrete probability distributions over exact
// decimal arithmetic.
//
// The package covers two distribution families: the binomial distribution
// and the distribution of the sum of fair dice. Every probability is
// computed entirely in exact values; nothing passes through float64 until
// a caller asks for a native number.
//
// # Binomial Distribution
//
// Point and cumulative probabilities for n Bernoulli(p) trials:
//
//	pmf, err := dist.BinomialPMF(10, 3, 0.5)  // P(exactly 3 successes)
//	cdf, err := dist.BinomialCDF(10, 3, 0.5)  // P(at most 3 successes)
//
// # Dice Sums
//
// The probability that n dice with s sides sum to a target, via the
// inclusion-exclusion identity over binomial coefficients:
//
//	p, err := dist.DiceSumPMF(7, 2, 6)  // 6/36 for two six-siders
//
// # Probability Spaces
//
// A Space maps every outcome of a distribution to its probability:
//
//	space, err := dist.NewDiceSpace(2, 6)
//	for _, sum := range space.Outcomes() {
//	    p, _ := space.Probability(sum)
//	    fmt.Println(sum, p)
//	}
//	ev := space.ExpectedValue()
//	sd := space.StandardDeviation()
//
// Outcomes iterate in ascending order and their probabilities sum to 1
// over the full support.
package dist
