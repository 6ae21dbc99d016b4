package calculator

import (
	"math"

	"StockLab/internal/model"
)

// nanSlice returns a column of the given length with every entry undefined.
func nanSlice(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}

// rollingMean computes the trailing mean over a strict window of `period`
// values. Positions before the window fills are NaN, and a NaN anywhere in
// the window makes the result NaN through ordinary float arithmetic.
func rollingMean(values []float64, period int) []float64 {
	out := nanSlice(len(values))
	if period <= 0 || len(values) < period {
		return out
	}
	for i := period - 1; i < len(values); i++ {
		sum := 0.0
		for j := i - period + 1; j <= i; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(period)
	}
	return out
}

// rollingStd computes the trailing sample standard deviation (n-1 divisor)
// over a strict window of `period` values.
func rollingStd(values []float64, period int) []float64 {
	out := nanSlice(len(values))
	if period <= 1 || len(values) < period {
		return out
	}
	for i := period - 1; i < len(values); i++ {
		mean := 0.0
		for j := i - period + 1; j <= i; j++ {
			mean += values[j]
		}
		mean /= float64(period)
		ss := 0.0
		for j := i - period + 1; j <= i; j++ {
			d := values[j] - mean
			ss += d * d
		}
		out[i] = math.Sqrt(ss / float64(period-1))
	}
	return out
}

// rollingMin computes the trailing minimum over a strict window of `period`
// values. math.Min carries NaN through, matching the mean/std helpers.
func rollingMin(values []float64, period int) []float64 {
	out := nanSlice(len(values))
	if period <= 0 || len(values) < period {
		return out
	}
	for i := period - 1; i < len(values); i++ {
		m := values[i-period+1]
		for j := i - period + 2; j <= i; j++ {
			m = math.Min(m, values[j])
		}
		out[i] = m
	}
	return out
}

// rollingMax computes the trailing maximum over a strict window of `period`
// values.
func rollingMax(values []float64, period int) []float64 {
	out := nanSlice(len(values))
	if period <= 0 || len(values) < period {
		return out
	}
	for i := period - 1; i < len(values); i++ {
		m := values[i-period+1]
		for j := i - period + 2; j <= i; j++ {
			m = math.Max(m, values[j])
		}
		out[i] = m
	}
	return out
}

func extractOpens(bars []model.Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Open
	}
	return out
}

func extractHighs(bars []model.Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.High
	}
	return out
}

func extractLows(bars []model.Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Low
	}
	return out
}

func extractCloses(bars []model.Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}

func extractVolumes(bars []model.Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = float64(b.Volume)
	}
	return out
}
