package calculator

import (
	"errors"
	"math"
)

// CalculateBollinger computes Bollinger Bands: the middle band is the SMA
// over the period, the outer bands sit k sample standard deviations away.
func CalculateBollinger(closes []float64, period int, k float64) (upper, middle, lower []float64, err error) {
	if period <= 0 {
		return nil, nil, nil, errors.New("period must be positive")
	}
	middle = rollingMean(closes, period)
	std := rollingStd(closes, period)

	upper = make([]float64, len(closes))
	lower = make([]float64, len(closes))
	for i := range closes {
		upper[i] = middle[i] + k*std[i]
		lower[i] = middle[i] - k*std[i]
	}
	return upper, middle, lower, nil
}

// CalculateATR computes the average true range. The true range of a bar is
// the largest of high-low, |high-prev_close|, |low-prev_close|; the first
// bar has no prior close and degrades to high-low.
func CalculateATR(highs, lows, closes []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	if len(highs) != len(lows) || len(lows) != len(closes) {
		return nil, errors.New("input columns have different lengths")
	}

	tr := make([]float64, len(closes))
	if len(tr) > 0 {
		tr[0] = highs[0] - lows[0]
	}
	for i := 1; i < len(tr); i++ {
		hl := highs[i] - lows[i]
		hc := math.Abs(highs[i] - closes[i-1])
		lc := math.Abs(lows[i] - closes[i-1])
		tr[i] = math.Max(hl, math.Max(hc, lc))
	}
	return rollingMean(tr, period), nil
}

// CalculatePriceChange computes the bar-over-bar percentage change of the
// input column. Position 0 has no prior value and is undefined.
func CalculatePriceChange(closes []float64) []float64 {
	out := nanSlice(len(closes))
	for i := 1; i < len(closes); i++ {
		out[i] = (closes[i] - closes[i-1]) / closes[i-1]
	}
	return out
}

// CalculateVolatility computes the rolling sample standard deviation of the
// percentage price change. The undefined first change keeps the column
// undefined until a full window past position 0 is available.
func CalculateVolatility(closes []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	return rollingStd(CalculatePriceChange(closes), period), nil
}

// CalculateVolumeSMA computes the rolling mean of volume.
func CalculateVolumeSMA(volumes []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	return rollingMean(volumes, period), nil
}
