package dist

import (
	"fmt"

	"github.com/sartorproj/goprob/combin"
	"github.com/sartorproj/goprob/exact"
)

// DiceSumPMF returns the probability that the sum of dice fair dice with
// sides faces each equals target, using the inclusion-exclusion identity
//
//	P = (1/sides^dice) * sum_{k=0}^{kmax} (-1)^k * C(dice, k) * C(target-sides*k-1, target-sides*k-dice)
//
// where kmax = floor((target-dice)/sides). Inner coefficients whose own
// choose-argument falls outside [0, n] contribute 0 instead of failing;
// that is the thinning convention of the identity. Targets outside
// [dice, dice*sides] have probability 0. The alternating sum stays in
// exact values end to end and is divided by sides^dice exactly once.
func DiceSumPMF(target, dice, sides int64) (exact.Value, error) {
	if dice < 1 || sides < 1 {
		return exact.Zero(), fmt.Errorf("%d dice with %d sides: %w", dice, sides, ErrInvalidArgument)
	}
	if target < dice || target > dice*sides {
		return exact.Zero(), nil
	}

	sum := exact.Zero()
	kmax := (target - dice) / sides
	for k := int64(0); k <= kmax; k++ {
		sign, err := exact.FromInt(-1).Pow(k)
		if err != nil {
			return exact.Zero(), err
		}
		outer, err := combin.BinomialCoefficient(dice, k)
		if err != nil {
			return exact.Zero(), err
		}
		inner := lenientBinomial(target-sides*k-1, target-sides*k-dice)
		sum = sum.Add(sign.Mul(outer).Mul(inner))
	}

	total, err := exact.FromInt(sides).Pow(dice)
	if err != nil {
		return exact.Zero(), err
	}
	return sum.Div(total)
}

// lenientBinomial is BinomialCoefficient with out-of-domain arguments
// mapped to 0 instead of an error.
func lenientBinomial(n, k int64) exact.Value {
	if n < 0 || k < 0 || k > n {
		return exact.Zero()
	}
	c, err := combin.BinomialCoefficient(n, k)
	if err != nil {
		return exact.Zero()
	}
	return c
}
