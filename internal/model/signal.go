package model

import "time"

// Action is the final trade stance of a recommendation.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
)

// SignalTable holds the derived boolean signal columns, aligned with the
// rows of the indicator table they were composed from. A row whose inputs
// are undefined yields false, never an error.
type SignalTable struct {
	Symbol string
	Dates  []time.Time

	RSIOversold   []bool
	RSIOverbought []bool
	MACDBullish   []bool
	MACDBearish   []bool
	MABullish     []bool
	MABearish     []bool
	BBOversold    []bool
	BBOverbought  []bool
	BuySignal     []bool
	SellSignal    []bool
}

// BoolColumn pairs a signal column with its interchange name.
type BoolColumn struct {
	Name   string
	Values []bool
}

// Len returns the number of rows in the table.
func (t *SignalTable) Len() int { return len(t.Dates) }

// Columns returns all signal columns in export order.
func (t *SignalTable) Columns() []BoolColumn {
	return []BoolColumn{
		{"RSI_Oversold", t.RSIOversold},
		{"RSI_Overbought", t.RSIOverbought},
		{"MACD_Bullish", t.MACDBullish},
		{"MACD_Bearish", t.MACDBearish},
		{"MA_Bullish", t.MABullish},
		{"MA_Bearish", t.MABearish},
		{"BB_Oversold", t.BBOversold},
		{"BB_Overbought", t.BBOverbought},
		{"Buy_Signal", t.BuySignal},
		{"Sell_Signal", t.SellSignal},
	}
}

// Totals counts how many buy and sell signals fired across the whole table.
func (t *SignalTable) Totals() (buys, sells int) {
	for _, v := range t.BuySignal {
		if v {
			buys++
		}
	}
	for _, v := range t.SellSignal {
		if v {
			sells++
		}
	}
	return buys, sells
}

// Recommendation is the verdict derived from the latest indicator row only.
// It is recomputed on demand and never persisted by the engine itself.
type Recommendation struct {
	Action      Action
	Confidence  float64
	Reason      string
	TargetPrice float64
	StopLoss    float64
}
