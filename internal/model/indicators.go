package model

import (
	"math"
	"time"
)

// IndicatorTable holds every computed indicator as a column aligned 1:1 with
// the bars of the source series. Positions where a window has not filled yet
// hold NaN, never zero; NaN propagates through any derived arithmetic.
type IndicatorTable struct {
	Symbol string
	Dates  []time.Time

	Open   []float64
	High   []float64
	Low    []float64
	Close  []float64
	Volume []float64

	SMA20  []float64
	SMA50  []float64
	SMA200 []float64
	EMA12  []float64
	EMA26  []float64

	RSI           []float64
	MACD          []float64
	MACDSignal    []float64
	MACDHistogram []float64

	BBUpper    []float64
	BBMiddle   []float64
	BBLower    []float64
	BBWidth    []float64
	BBPosition []float64

	StochK    []float64
	StochD    []float64
	WilliamsR []float64

	ATR         []float64
	PriceChange []float64
	Volatility  []float64

	VolumeSMA   []float64
	VolumeRatio []float64
}

// Column pairs an indicator column with its interchange name.
type Column struct {
	Name   string
	Values []float64
}

// Len returns the number of rows in the table.
func (t *IndicatorTable) Len() int { return len(t.Dates) }

// Columns returns all columns in export order. The names form the
// interchange contract with file exports and downstream consumers.
func (t *IndicatorTable) Columns() []Column {
	return []Column{
		{"Open", t.Open},
		{"High", t.High},
		{"Low", t.Low},
		{"Close", t.Close},
		{"Volume", t.Volume},
		{"SMA_20", t.SMA20},
		{"SMA_50", t.SMA50},
		{"SMA_200", t.SMA200},
		{"EMA_12", t.EMA12},
		{"EMA_26", t.EMA26},
		{"RSI", t.RSI},
		{"MACD", t.MACD},
		{"MACD_Signal", t.MACDSignal},
		{"MACD_Histogram", t.MACDHistogram},
		{"BB_Upper", t.BBUpper},
		{"BB_Middle", t.BBMiddle},
		{"BB_Lower", t.BBLower},
		{"BB_Width", t.BBWidth},
		{"BB_Position", t.BBPosition},
		{"Stoch_K", t.StochK},
		{"Stoch_D", t.StochD},
		{"Williams_R", t.WilliamsR},
		{"ATR", t.ATR},
		{"Price_Change", t.PriceChange},
		{"Volatility", t.Volatility},
		{"Volume_SMA", t.VolumeSMA},
		{"Volume_Ratio", t.VolumeRatio},
	}
}

// Column returns the column with the given interchange name.
func (t *IndicatorTable) Column(name string) ([]float64, bool) {
	for _, c := range t.Columns() {
		if c.Name == name {
			return c.Values, true
		}
	}
	return nil, false
}

// Latest returns the last value of the given column, or NaN when the column
// is unknown or the table is empty.
func (t *IndicatorTable) Latest(name string) float64 {
	col, ok := t.Column(name)
	if !ok || len(col) == 0 {
		return math.NaN()
	}
	return col[len(col)-1]
}
