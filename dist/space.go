package dist

import (
	"fmt"

	"github.com/sartorproj/goprob/exact"
)

// Space is a discrete probability space: a mapping from each integer
// outcome to its exact probability, iterated in ascending outcome order.
// Over a full support the probabilities sum to 1. A Space is immutable
// once returned by a constructor.
type Space struct {
	outcomes []int64
	probs    map[int64]exact.Value
}

// NewDiceSpace builds the probability space for the sum of dice fair dice
// with sides faces each, covering every sum from dice to dice*sides in
// ascending order. Requires dice >= 1 and sides >= 1.
func NewDiceSpace(dice, sides int64) (*Space, error) {
	if dice < 1 || sides < 1 {
		return nil, fmt.Errorf("%d dice with %d sides: %w", dice, sides, ErrInvalidArgument)
	}
	s := &Space{probs: make(map[int64]exact.Value)}
	for sum := dice; sum <= dice*sides; sum++ {
		p, err := DiceSumPMF(sum, dice, sides)
		if err != nil {
			return nil, err
		}
		s.outcomes = append(s.outcomes, sum)
		s.probs[sum] = p
	}
	return s, nil
}

// NewBinomialSpace builds the probability space of a Binomial(n, p)
// distribution over the outcomes 0..n.
func NewBinomialSpace(n int64, p float64) (*Space, error) {
	if n < 0 {
		return nil, fmt.Errorf("n = %d: %w", n, ErrInvalidArgument)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("p = %v: %w", p, ErrInvalidProbability)
	}
	s := &Space{probs: make(map[int64]exact.Value, n+1)}
	for k := int64(0); k <= n; k++ {
		pmf, err := BinomialPMF(n, k, p)
		if err != nil {
			return nil, err
		}
		s.outcomes = append(s.outcomes, k)
		s.probs[k] = pmf
	}
	return s, nil
}

// Len returns the number of outcomes in the support.
func (s *Space) Len() int {
	return len(s.outcomes)
}

// Outcomes returns a copy of the outcomes in ascending order.
func (s *Space) Outcomes() []int64 {
	out := make([]int64, len(s.outcomes))
	copy(out, s.outcomes)
	return out
}

// Probability returns the probability of an outcome and whether the
// outcome belongs to the space's support.
func (s *Space) Probability(outcome int64) (exact.Value, bool) {
	p, ok := s.probs[outcome]
	return p, ok
}

// Sum returns the exact total probability mass, which is 1 over a full
// support up to representable precision.
func (s *Space) Sum() exact.Value {
	total := exact.Zero()
	for _, x := range s.outcomes {
		total = total.Add(s.probs[x])
	}
	return total
}

// ExpectedValue returns the weighted mean of the outcomes, sum of x*P(x).
// The running sum stays in exact values; the result converts to float64
// only on return.
func (s *Space) ExpectedValue() float64 {
	mean := exact.Zero()
	for _, x := range s.outcomes {
		mean = mean.Add(exact.FromInt(x).Mul(s.probs[x]))
	}
	return mean.Float64()
}

// Variance returns the variance of the distribution, E[X^2] - E[X]^2,
// accumulated in exact values.
func (s *Space) Variance() float64 {
	return s.variance().Float64()
}

// StandardDeviation returns the square root of the distribution's variance.
func (s *Space) StandardDeviation() float64 {
	sd, err := s.variance().Sqrt()
	if err != nil {
		return 0
	}
	return sd.Float64()
}

func (s *Space) variance() exact.Value {
	mean := exact.Zero()
	square := exact.Zero()
	for _, x := range s.outcomes {
		xv := exact.FromInt(x)
		mean = mean.Add(xv.Mul(s.probs[x]))
		square = square.Add(xv.Mul(xv).Mul(s.probs[x]))
	}
	v := square.Sub(mean.Mul(mean))
	// Rounded probabilities can leave a variance a hair below zero for a
	// degenerate support; clamp so Sqrt stays in domain.
	if v.Sign() < 0 {
		return exact.Zero()
	}
	return v
}
