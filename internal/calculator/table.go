package calculator

import (
	"fmt"
	"time"

	"StockLab/internal/model"
)

// Standard periods, matching common charting defaults.
const (
	smaShortPeriod = 20
	smaMidPeriod   = 50
	smaLongPeriod  = 200

	emaFastSpan    = 12
	emaSlowSpan    = 26
	macdSignalSpan = 9

	rsiPeriod = 14

	bollingerPeriod = 20
	bollingerWidth  = 2.0

	stochKPeriod = 14
	stochDPeriod = 3

	williamsPeriod = 14
	atrPeriod      = 14

	volatilityPeriod = 20
	volumePeriod     = 20
)

// CalculateAll validates the series and computes the full indicator table.
// The input is never mutated; every column is freshly allocated and aligned
// 1:1 with the input bars, with NaN wherever a window has not filled yet.
func CalculateAll(series *model.Series) (*model.IndicatorTable, error) {
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("validate series: %w", err)
	}

	opens := extractOpens(series.Bars)
	highs := extractHighs(series.Bars)
	lows := extractLows(series.Bars)
	closes := extractCloses(series.Bars)
	volumes := extractVolumes(series.Bars)

	t := &model.IndicatorTable{
		Symbol: series.Symbol,
		Dates:  make([]time.Time, len(series.Bars)),
		Open:   opens,
		High:   highs,
		Low:    lows,
		Close:  closes,
		Volume: volumes,
	}
	for i, b := range series.Bars {
		t.Dates[i] = b.Date
	}

	var err error
	if t.SMA20, err = CalculateSMA(closes, smaShortPeriod); err != nil {
		return nil, fmt.Errorf("sma20: %w", err)
	}
	if t.SMA50, err = CalculateSMA(closes, smaMidPeriod); err != nil {
		return nil, fmt.Errorf("sma50: %w", err)
	}
	if t.SMA200, err = CalculateSMA(closes, smaLongPeriod); err != nil {
		return nil, fmt.Errorf("sma200: %w", err)
	}
	if t.EMA12, err = CalculateEMA(closes, emaFastSpan); err != nil {
		return nil, fmt.Errorf("ema12: %w", err)
	}
	if t.EMA26, err = CalculateEMA(closes, emaSlowSpan); err != nil {
		return nil, fmt.Errorf("ema26: %w", err)
	}

	if t.RSI, err = CalculateRSI(closes, rsiPeriod); err != nil {
		return nil, fmt.Errorf("rsi: %w", err)
	}

	if t.MACD, t.MACDSignal, t.MACDHistogram, err = CalculateMACD(closes, emaFastSpan, emaSlowSpan, macdSignalSpan); err != nil {
		return nil, fmt.Errorf("macd: %w", err)
	}

	if t.BBUpper, t.BBMiddle, t.BBLower, err = CalculateBollinger(closes, bollingerPeriod, bollingerWidth); err != nil {
		return nil, fmt.Errorf("bollinger: %w", err)
	}
	t.BBWidth = make([]float64, len(closes))
	t.BBPosition = make([]float64, len(closes))
	for i := range closes {
		t.BBWidth[i] = t.BBUpper[i] - t.BBLower[i]
		t.BBPosition[i] = (closes[i] - t.BBLower[i]) / (t.BBUpper[i] - t.BBLower[i])
	}

	if t.StochK, t.StochD, err = CalculateStochastic(highs, lows, closes, stochKPeriod, stochDPeriod); err != nil {
		return nil, fmt.Errorf("stochastic: %w", err)
	}
	if t.WilliamsR, err = CalculateWilliamsR(highs, lows, closes, williamsPeriod); err != nil {
		return nil, fmt.Errorf("williams %%r: %w", err)
	}
	if t.ATR, err = CalculateATR(highs, lows, closes, atrPeriod); err != nil {
		return nil, fmt.Errorf("atr: %w", err)
	}

	t.PriceChange = CalculatePriceChange(closes)
	if t.Volatility, err = CalculateVolatility(closes, volatilityPeriod); err != nil {
		return nil, fmt.Errorf("volatility: %w", err)
	}

	if t.VolumeSMA, err = CalculateVolumeSMA(volumes, volumePeriod); err != nil {
		return nil, fmt.Errorf("volume sma: %w", err)
	}
	t.VolumeRatio = make([]float64, len(volumes))
	for i := range volumes {
		t.VolumeRatio[i] = volumes[i] / t.VolumeSMA[i]
	}

	return t, nil
}
