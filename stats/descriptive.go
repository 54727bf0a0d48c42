// Package stats provides descriptive statistics and outlier filters.
package stats

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sartorproj/goprob/exact"
)

var (
	// ErrEmptyInput is returned when a statistic is requested for an
	// empty data sequence.
	ErrEmptyInput = errors.New("stats: empty input")

	// ErrInvalidArgument is returned for out-of-range parameters such as
	// a percentile outside (0, 100] or a non-positive threshold.
	ErrInvalidArgument = errors.New("stats: invalid argument")
)

// Mean returns the arithmetic mean. The sum is accumulated in exact
// values, so a handful of large magnitudes cannot wash out small ones.
func Mean(data []float64) (float64, error) {
	m, err := meanExact(data)
	if err != nil {
		return 0, err
	}
	return m.Float64(), nil
}

// Median returns the middle value of the sorted data, or the mean of the
// two middle values for an even-length sample.
func Median(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	sorted := sortedCopy(data)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2], nil
	}
	mid, err := exact.New(sorted[n/2-1]).Add(exact.New(sorted[n/2])).Div(exact.FromInt(2))
	if err != nil {
		return 0, err
	}
	return mid.Float64(), nil
}

// Mode returns every value of maximal multiplicity in ascending order. A
// sample whose values are all distinct has no mode and returns an empty
// slice; ties return multiple values.
func Mode(data []float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	counts := make(map[float64]int)
	for _, v := range data {
		counts[v]++
	}
	best := 0
	for _, c := range counts {
		if c > best {
			best = c
		}
	}
	modes := make([]float64, 0, len(counts))
	for v, c := range counts {
		if c == best {
			modes = append(modes, v)
		}
	}
	if len(modes) == len(data) {
		return []float64{}, nil
	}
	sort.Float64s(modes)
	return modes, nil
}

// Variance returns the population variance, with the squared deviations
// accumulated in exact values.
func Variance(data []float64) (float64, error) {
	v, err := varianceExact(data)
	if err != nil {
		return 0, err
	}
	return v.Float64(), nil
}

// StandardDeviation returns the population standard deviation.
func StandardDeviation(data []float64) (float64, error) {
	sd, err := stdDevExact(data)
	if err != nil {
		return 0, err
	}
	return sd.Float64(), nil
}

// Percentile returns the value below which the given percent of the data
// falls, using the closest-ranks method: an integral rank selects the
// value at that rank, a fractional rank averages the two surrounding
// values. Requires 0 < percent <= 100 and at least one data point beyond
// the requested rank.
func Percentile(data []float64, percent float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	if percent <= 0 || percent > 100 {
		return 0, fmt.Errorf("percentile %v: %w", percent, ErrInvalidArgument)
	}
	if len(data) == 1 {
		return data[0], nil
	}
	sorted := sortedCopy(data)
	rank := percent / 100 * float64(len(sorted))
	if rank == float64(int64(rank)) {
		return sorted[int(rank)-1], nil
	}
	if rank < 1 {
		return 0, fmt.Errorf("percentile %v of %d values: %w", percent, len(data), ErrInvalidArgument)
	}
	i := int(rank)
	mid, err := exact.New(sorted[i-1]).Add(exact.New(sorted[i])).Div(exact.FromInt(2))
	if err != nil {
		return 0, err
	}
	return mid.Float64(), nil
}

func meanExact(data []float64) (exact.Value, error) {
	if len(data) == 0 {
		return exact.Zero(), ErrEmptyInput
	}
	sum := exact.Zero()
	for _, v := range data {
		sum = sum.Add(exact.New(v))
	}
	return sum.Div(exact.FromInt(int64(len(data))))
}

func varianceExact(data []float64) (exact.Value, error) {
	mean, err := meanExact(data)
	if err != nil {
		return exact.Zero(), err
	}
	sum := exact.Zero()
	for _, v := range data {
		d := exact.New(v).Sub(mean)
		sum = sum.Add(d.Mul(d))
	}
	return sum.Div(exact.FromInt(int64(len(data))))
}

func stdDevExact(data []float64) (exact.Value, error) {
	v, err := varianceExact(data)
	if err != nil {
		return exact.Zero(), err
	}
	return v.Sqrt()
}

// quartiles returns the first and third quartiles as the medians of the
// lower and upper halves of the sorted data, excluding the middle value
// for an odd-length sample.
func quartiles(data []float64) (q1, q3 float64, err error) {
	if len(data) < 2 {
		return 0, 0, ErrEmptyInput
	}
	sorted := sortedCopy(data)
	n := len(sorted)
	lower := sorted[:n/2]
	upper := sorted[n/2:]
	if n%2 == 1 {
		upper = sorted[n/2+1:]
	}
	q1, err = Median(lower)
	if err != nil {
		return 0, 0, err
	}
	q3, err = Median(upper)
	if err != nil {
		return 0, 0, err
	}
	return q1, q3, nil
}

func sortedCopy(data []float64) []float64 {
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	return sorted
}
