package calculator

import "errors"

// CalculateRSI computes the SMA-smoothed RSI over the given period.
// Per-bar deltas are split into gain and loss series; the first bar has no
// prior close and contributes zero to both, so the column is defined from
// position period-1. The RS division is carried out as-is: a window with
// gains and no losses saturates the RSI at exactly 100, and a flat window
// (0/0) stays undefined.
func CalculateRSI(closes []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	n := len(closes)
	gains := make([]float64, n)
	losses := make([]float64, n)
	for i := 1; i < n; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i] = change
		} else if change < 0 {
			losses[i] = -change
		}
	}

	avgGain := rollingMean(gains, period)
	avgLoss := rollingMean(losses, period)

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		rs := avgGain[i] / avgLoss[i]
		out[i] = 100 - 100/(1+rs)
	}
	return out, nil
}

// CalculateMACD computes the MACD line as EMA(fast)-EMA(slow), the signal
// line as an EMA of the MACD line, and the histogram as their difference.
// All three are defined from position 0.
func CalculateMACD(closes []float64, fast, slow, signal int) (macd, signalLine, histogram []float64, err error) {
	if fast <= 0 || slow <= 0 || signal <= 0 {
		return nil, nil, nil, errors.New("spans must be positive")
	}
	emaFast, err := CalculateEMA(closes, fast)
	if err != nil {
		return nil, nil, nil, err
	}
	emaSlow, err := CalculateEMA(closes, slow)
	if err != nil {
		return nil, nil, nil, err
	}

	macd = make([]float64, len(closes))
	for i := range macd {
		macd[i] = emaFast[i] - emaSlow[i]
	}

	signalLine, err = CalculateEMA(macd, signal)
	if err != nil {
		return nil, nil, nil, err
	}

	histogram = make([]float64, len(closes))
	for i := range histogram {
		histogram[i] = macd[i] - signalLine[i]
	}
	return macd, signalLine, histogram, nil
}

// CalculateStochastic computes the stochastic oscillator: %K positions the
// close within the rolling high/low range, %D smooths %K with a short SMA.
// A flat range divides zero by zero and leaves the position undefined.
func CalculateStochastic(highs, lows, closes []float64, kPeriod, dPeriod int) (k, d []float64, err error) {
	if kPeriod <= 0 || dPeriod <= 0 {
		return nil, nil, errors.New("periods must be positive")
	}
	if len(highs) != len(lows) || len(lows) != len(closes) {
		return nil, nil, errors.New("input columns have different lengths")
	}

	lowMin := rollingMin(lows, kPeriod)
	highMax := rollingMax(highs, kPeriod)

	k = make([]float64, len(closes))
	for i := range k {
		k[i] = 100 * (closes[i] - lowMin[i]) / (highMax[i] - lowMin[i])
	}
	d = rollingMean(k, dPeriod)
	return k, d, nil
}

// CalculateWilliamsR computes Williams %R, the mirror image of the
// stochastic %K scaled to [-100, 0].
func CalculateWilliamsR(highs, lows, closes []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	if len(highs) != len(lows) || len(lows) != len(closes) {
		return nil, errors.New("input columns have different lengths")
	}

	highMax := rollingMax(highs, period)
	lowMin := rollingMin(lows, period)

	out := make([]float64, len(closes))
	for i := range out {
		out[i] = -100 * (highMax[i] - closes[i]) / (highMax[i] - lowMin[i])
	}
	return out, nil
}
