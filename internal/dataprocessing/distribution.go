package dataprocessing

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"jereport/pkg/contracts/domain"
)

// Describe computes the eight-figure distribution summary of values:
// count, mean, sample standard deviation (n-1), min, linearly interpolated
// 25th/50th/75th percentiles and max. values is not modified.
func Describe(values []float64) domain.DistributionSummary {
	n := len(values)
	if n == 0 {
		nan := math.NaN()
		return domain.DistributionSummary{Mean: nan, Std: nan, Min: nan, P25: nan, P50: nan, P75: nan, Max: nan}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	return domain.DistributionSummary{
		Count: n,
		Mean:  Mean(sorted),
		Std:   SampleStdDev(sorted),
		Min:   floats.Min(sorted),
		P25:   Percentile(sorted, 0.25),
		P50:   Percentile(sorted, 0.50),
		P75:   Percentile(sorted, 0.75),
		Max:   floats.Max(sorted),
	}
}

// Mean returns the arithmetic mean, NaN for no values
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return stat.Mean(values, nil)
}

// SampleStdDev returns the n-1 standard deviation, NaN below two values
func SampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	_, std := stat.MeanStdDev(values, nil)
	return std
}

// Percentile returns the p-quantile (0 <= p <= 1) of sorted by linear
// interpolation between the closest ranks at position p*(n-1).
// stat.Quantile offers no estimator with this definition.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
