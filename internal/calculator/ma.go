package calculator

import "errors"

// CalculateSMA computes the simple moving average of the given values over
// the specified period. The result is aligned 1:1 with the input; the first
// period-1 positions are undefined.
func CalculateSMA(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	return rollingMean(values, period), nil
}

// CalculateEMA computes the exponential moving average with smoothing factor
// alpha = 2/(span+1). The series is seeded with the first value, so unlike
// the SMA it is defined from position 0.
func CalculateEMA(values []float64, span int) ([]float64, error) {
	if span <= 0 {
		return nil, errors.New("span must be positive")
	}
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out, nil
	}
	alpha := 2.0 / float64(span+1)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out, nil
}
