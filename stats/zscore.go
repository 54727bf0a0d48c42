package stats

import (
	"github.com/sartorproj/goprob/exact"
)

// modifiedZScale rescales median absolute deviations so that modified
// z-scores are comparable to ordinary z-scores on normal data
// (Iglewicz & Hoaglin's 0.6745 constant).
const modifiedZScale = 0.6745

// ZScore returns how many standard deviations value lies from the mean of
// data. It fails with exact.ErrDivisionByZero when the data has zero
// spread.
func ZScore(value float64, data []float64) (float64, error) {
	mean, err := meanExact(data)
	if err != nil {
		return 0, err
	}
	sd, err := stdDevExact(data)
	if err != nil {
		return 0, err
	}
	z, err := exact.New(value).Sub(mean).Div(sd)
	if err != nil {
		return 0, err
	}
	return z.Float64(), nil
}

// ZScores returns the z-score of every element of data against the
// sample's own mean and standard deviation.
func ZScores(data []float64) ([]float64, error) {
	mean, err := meanExact(data)
	if err != nil {
		return nil, err
	}
	sd, err := stdDevExact(data)
	if err != nil {
		return nil, err
	}
	scores := make([]float64, len(data))
	for i, v := range data {
		z, err := exact.New(v).Sub(mean).Div(sd)
		if err != nil {
			return nil, err
		}
		scores[i] = z.Float64()
	}
	return scores, nil
}

// MedianAbsoluteDeviation returns the median of the absolute deviations
// from the median, a spread measure that single outliers cannot distort.
func MedianAbsoluteDeviation(data []float64) (float64, error) {
	med, err := Median(data)
	if err != nil {
		return 0, err
	}
	medV := exact.New(med)
	deviations := make([]float64, len(data))
	for i, v := range data {
		deviations[i] = exact.New(v).Sub(medV).Abs().Float64()
	}
	return Median(deviations)
}

// ModifiedZScores returns the outlier-robust z-score of every element,
// 0.6745 * (x - median) / MAD. It fails with exact.ErrDivisionByZero when
// the median absolute deviation is zero, which happens when at least half
// of the values are identical.
func ModifiedZScores(data []float64) ([]float64, error) {
	med, err := Median(data)
	if err != nil {
		return nil, err
	}
	mad, err := MedianAbsoluteDeviation(data)
	if err != nil {
		return nil, err
	}
	medV := exact.New(med)
	madV := exact.New(mad)
	scale := exact.New(modifiedZScale)
	scores := make([]float64, len(data))
	for i, v := range data {
		z, err := scale.Mul(exact.New(v).Sub(medV)).Div(madV)
		if err != nil {
			return nil, err
		}
		scores[i] = z.Float64()
	}
	return scores, nil
}
