package stats

import (
	"fmt"
	"math"

	"github.com/sartorproj/goprob/exact"
)

// iqrFenceScale is Tukey's 1.5 multiplier for interquartile fences.
const iqrFenceScale = 1.5

// FilterByRobustZScore returns the values whose modified z-score magnitude
// does not exceed threshold. A threshold of 3.5 is the conventional choice.
// Once the outliers are gone a second application returns the same values,
// provided no value sits exactly on the cutoff.
func FilterByRobustZScore(data []float64, threshold float64) ([]float64, error) {
	if threshold <= 0 {
		return nil, fmt.Errorf("threshold %v: %w", threshold, ErrInvalidArgument)
	}
	scores, err := ModifiedZScores(data)
	if err != nil {
		return nil, err
	}
	kept := make([]float64, 0, len(data))
	for i, v := range data {
		if math.Abs(scores[i]) <= threshold {
			kept = append(kept, v)
		}
	}
	return kept, nil
}

// FilterByPercentileTrim keeps the values lying within the lower and upper
// percentile bounds inclusive. Requires 0 < lower < upper < 100.
func FilterByPercentileTrim(data []float64, lower, upper float64) ([]float64, error) {
	if lower <= 0 || upper >= 100 || lower >= upper {
		return nil, fmt.Errorf("percentile band [%v, %v]: %w", lower, upper, ErrInvalidArgument)
	}
	lo, err := Percentile(data, lower)
	if err != nil {
		return nil, err
	}
	hi, err := Percentile(data, upper)
	if err != nil {
		return nil, err
	}
	kept := make([]float64, 0, len(data))
	for _, v := range data {
		if v >= lo && v <= hi {
			kept = append(kept, v)
		}
	}
	return kept, nil
}

// FilterByStdDevBound keeps the values within k standard deviations of the
// mean. The bound comparison runs in exact values so it agrees with the
// exact mean and deviation.
func FilterByStdDevBound(data []float64, k float64) ([]float64, error) {
	if k <= 0 {
		return nil, fmt.Errorf("bound %v: %w", k, ErrInvalidArgument)
	}
	mean, err := meanExact(data)
	if err != nil {
		return nil, err
	}
	sd, err := stdDevExact(data)
	if err != nil {
		return nil, err
	}
	bound := sd.Mul(exact.New(k))
	kept := make([]float64, 0, len(data))
	for _, v := range data {
		if exact.New(v).Sub(mean).Abs().Cmp(bound) <= 0 {
			kept = append(kept, v)
		}
	}
	return kept, nil
}

// FilterByInterquartileRange keeps the values inside the Tukey fences
// [Q1 - 1.5*IQR, Q3 + 1.5*IQR].
func FilterByInterquartileRange(data []float64) ([]float64, error) {
	q1, q3, err := quartiles(data)
	if err != nil {
		return nil, err
	}
	q1v := exact.New(q1)
	q3v := exact.New(q3)
	iqr := q3v.Sub(q1v)
	low := q1v.Sub(iqr.Mul(exact.New(iqrFenceScale)))
	high := q3v.Add(iqr.Mul(exact.New(iqrFenceScale)))
	kept := make([]float64, 0, len(data))
	for _, v := range data {
		vv := exact.New(v)
		if vv.Cmp(low) >= 0 && vv.Cmp(high) <= 0 {
			kept = append(kept, v)
		}
	}
	return kept, nil
}
