// Package stats provides descriptive statistics and outlier filters over
// native float64 samples.
//
// Every summation and division runs through the exact package internally,
// so a single extreme value cannot poison the precision of a mean or a
// standard deviation. Inputs and outputs stay native float64 for easy
// interop with callers.
//
// # Summary Statistics
//
//	m, err := stats.Mean(data)
//	med, err := stats.Median(data)
//	modes, err := stats.Mode(data)         // all values of maximal multiplicity
//	sd, err := stats.StandardDeviation(data)
//	p90, err := stats.Percentile(data, 90)
//
// # Z-Scores
//
// Ordinary and outlier-robust standardization:
//
//	z, err := stats.ZScores(data)
//	mad, err := stats.MedianAbsoluteDeviation(data)
//	mz, err := stats.ModifiedZScores(data)  // 0.6745 * (x - median) / MAD
//
// # Outlier Filters
//
// Each filter returns a filtered copy and is idempotent on its own output
// away from cutoff ties:
//
//	clean, err := stats.FilterByRobustZScore(data, 3.5)
//	clean, err := stats.FilterByPercentileTrim(data, 5, 95)
//	clean, err := stats.FilterByStdDevBound(data, 2)
//	clean, err := stats.FilterByInterquartileRange(data)
//
// All functions fail with ErrEmptyInput on an empty sample rather than
// returning NaN.
package stats
