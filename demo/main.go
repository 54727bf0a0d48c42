// Package main demonstrates dice-sum distributions, binomial probabilities,
// and outlier-robust statistics.
package main

import (
	"fmt"
	"strings"

	"github.com/sartorproj/goprob/dist"
	"github.com/sartorproj/goprob/stats"
)

func main() {
	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("GoProb Demonstration - Exact Discrete Probability")
	fmt.Println(strings.Repeat("=", 70))

	diceDemo(2, 6)
	diceDemo(3, 6)
	binomialDemo(10, 0.5)
	outlierDemo()
}

func diceDemo(dice, sides int64) {
	fmt.Printf("\n--- %dd%d probability space ---\n", dice, sides)
	space, err := dist.NewDiceSpace(dice, sides)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	for _, sum := range space.Outcomes() {
		p, _ := space.Probability(sum)
		bar := strings.Repeat("#", int(p.Float64()*200))
		fmt.Printf("%3d  %7.4f%%  %s\n", sum, p.Float64()*100, bar)
	}
	fmt.Printf("expected value: %.4f  std dev: %.4f  total mass: %s\n",
		space.ExpectedValue(), space.StandardDeviation(), space.Sum())
}

func binomialDemo(n int64, p float64) {
	fmt.Printf("\n--- Binomial(%d, %v) ---\n", n, p)
	for k := int64(0); k <= n; k++ {
		pmf, err := dist.BinomialPMF(n, k, p)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		cdf, err := dist.BinomialCDF(n, k, p)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		fmt.Printf("k=%2d  pmf=%8.5f  cdf=%8.5f\n", k, pmf.Float64(), cdf.Float64())
	}
}

func outlierDemo() {
	data := []float64{3, 3, 4, 4, 5, 6, 7, 104}
	fmt.Println("\n--- Outlier filtering ---")
	fmt.Printf("data: %v\n", data)

	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)
	fmt.Printf("raw mean %.2f, median %.2f\n", mean, median)

	clean, err := stats.FilterByRobustZScore(data, 3.5)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	cleanMean, _ := stats.Mean(clean)
	fmt.Printf("after robust z-score filter: %v (mean %.2f)\n", clean, cleanMean)

	iqr, err := stats.FilterByInterquartileRange(data)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Printf("after interquartile filter:  %v\n", iqr)
}
