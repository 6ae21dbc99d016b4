package strategy

import (
	"fmt"
	"time"

	"StockLab/internal/model"
)

// Thresholds shared by the signal columns and the recommendation ladder.
const (
	rsiOversold   = 30.0
	rsiOverbought = 70.0

	buyTargetMult  = 1.05
	buyStopMult    = 0.95
	sellTargetMult = 0.95
	sellStopMult   = 1.05
)

// requiredColumns must be present and row-aligned before signals can be
// composed. Names follow the indicator table's interchange contract.
var requiredColumns = []string{
	"Close", "RSI", "MACD", "MACD_Signal",
	"SMA_20", "SMA_50", "BB_Upper", "BB_Lower",
}

// Evaluate derives the boolean signal table and the latest-row
// recommendation from an indicator table. The table is read-only; both
// outputs are freshly allocated. Comparisons involving an undefined
// indicator are false, so rows inside a lookback window never fire.
func Evaluate(t *model.IndicatorTable) (*model.SignalTable, *model.Recommendation, error) {
	if t == nil {
		return nil, nil, fmt.Errorf("evaluate: indicator table is nil")
	}
	if t.Len() == 0 {
		return nil, nil, fmt.Errorf("evaluate: indicator table %s is empty", t.Symbol)
	}
	for _, name := range requiredColumns {
		col, ok := t.Column(name)
		if !ok || col == nil {
			return nil, nil, fmt.Errorf("evaluate: table %s is missing column %s", t.Symbol, name)
		}
		if len(col) != t.Len() {
			return nil, nil, fmt.Errorf("evaluate: table %s column %s has %d rows, want %d",
				t.Symbol, name, len(col), t.Len())
		}
	}

	return composeSignals(t), recommend(t), nil
}

func composeSignals(t *model.IndicatorTable) *model.SignalTable {
	n := t.Len()
	s := &model.SignalTable{
		Symbol: t.Symbol,
		Dates:  append([]time.Time(nil), t.Dates...),

		RSIOversold:   make([]bool, n),
		RSIOverbought: make([]bool, n),
		MACDBullish:   make([]bool, n),
		MACDBearish:   make([]bool, n),
		MABullish:     make([]bool, n),
		MABearish:     make([]bool, n),
		BBOversold:    make([]bool, n),
		BBOverbought:  make([]bool, n),
		BuySignal:     make([]bool, n),
		SellSignal:    make([]bool, n),
	}

	for i := 0; i < n; i++ {
		s.RSIOversold[i] = t.RSI[i] < rsiOversold
		s.RSIOverbought[i] = t.RSI[i] > rsiOverbought
		s.MACDBullish[i] = crossedAbove(t.MACD, t.MACDSignal, i)
		s.MACDBearish[i] = crossedBelow(t.MACD, t.MACDSignal, i)
		s.MABullish[i] = t.Close[i] > t.SMA50[i]
		s.MABearish[i] = t.Close[i] < t.SMA50[i]
		s.BBOversold[i] = t.Close[i] < t.BBLower[i]
		s.BBOverbought[i] = t.Close[i] > t.BBUpper[i]

		s.BuySignal[i] = (s.RSIOversold[i] || s.BBOversold[i]) && s.MACDBullish[i] && s.MABullish[i]
		s.SellSignal[i] = (s.RSIOverbought[i] || s.BBOverbought[i]) && s.MACDBearish[i] && s.MABearish[i]
	}
	return s
}

// recommend walks the priority ladder over the latest indicator row; the
// first matching rung wins. Undefined indicators fail every comparison, so
// a short history lands on HOLD. The HOLD rung reuses the SELL target and
// stop multipliers, matching the reference behavior.
func recommend(t *model.IndicatorTable) *model.Recommendation {
	price := t.Latest("Close")
	rsi := t.Latest("RSI")
	sma20 := t.Latest("SMA_20")
	sma50 := t.Latest("SMA_50")

	rec := &model.Recommendation{}
	switch {
	case rsi < rsiOversold && price > sma20:
		rec.Action = model.ActionBuy
		rec.Confidence = 0.8
		rec.Reason = "RSI oversold with price above SMA20 - potential reversal"
	case rsi > rsiOverbought && price < sma20:
		rec.Action = model.ActionSell
		rec.Confidence = 0.8
		rec.Reason = "RSI overbought with price below SMA20 - potential decline"
	case price > sma50 && sma20 > sma50:
		rec.Action = model.ActionBuy
		rec.Confidence = 0.6
		rec.Reason = "Price above SMA50 with bullish moving average crossover"
	case price < sma50 && sma20 < sma50:
		rec.Action = model.ActionSell
		rec.Confidence = 0.6
		rec.Reason = "Price below SMA50 with bearish moving average crossover"
	default:
		rec.Action = model.ActionHold
		rec.Confidence = 0.5
		rec.Reason = "Mixed signals - wait for clearer trend"
	}

	if rec.Action == model.ActionBuy {
		rec.TargetPrice = price * buyTargetMult
		rec.StopLoss = price * buyStopMult
	} else {
		rec.TargetPrice = price * sellTargetMult
		rec.StopLoss = price * sellStopMult
	}
	return rec
}
