package session

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"
)

// Snapshot is the JSON view of an analysis: the latest indicator row with
// nullable fields so undefined values render as null, plus the
// recommendation and signal totals. This is the surface external consumers
// (dashboards, APIs) read.
type Snapshot struct {
	Symbol string `json:"symbol"`
	Source string `json:"source"`
	RunAt  string `json:"run_at"`
	Date   string `json:"date"`
	Bars   int    `json:"bars"`

	Close      *float64 `json:"close"`
	RSI        *float64 `json:"rsi"`
	MACD       *float64 `json:"macd"`
	MACDSignal *float64 `json:"macd_signal"`
	SMA20      *float64 `json:"sma_20"`
	SMA50      *float64 `json:"sma_50"`
	BBUpper    *float64 `json:"bb_upper"`
	BBLower    *float64 `json:"bb_lower"`
	ATR        *float64 `json:"atr"`
	Volatility *float64 `json:"volatility"`

	Action      string  `json:"action"`
	Confidence  float64 `json:"confidence"`
	Reason      string  `json:"reason"`
	TargetPrice float64 `json:"target_price"`
	StopLoss    float64 `json:"stop_loss"`

	BuySignals  int `json:"buy_signals"`
	SellSignals int `json:"sell_signals"`
}

// Snapshot renders the analysis as its JSON view.
func (a *Analysis) Snapshot() (*Snapshot, error) {
	if a == nil || a.Indicators == nil || a.Signals == nil || a.Recommendation == nil {
		return nil, fmt.Errorf("snapshot: incomplete analysis")
	}
	if a.Indicators.Len() == 0 {
		return nil, fmt.Errorf("snapshot: empty indicator table")
	}

	buys, sells := a.Signals.Totals()
	last := a.Indicators.Dates[a.Indicators.Len()-1]

	return &Snapshot{
		Symbol: a.Symbol,
		Source: a.Source,
		RunAt:  a.RunAt.UTC().Format(time.RFC3339),
		Date:   last.Format("2006-01-02"),
		Bars:   a.Indicators.Len(),

		Close:      nullable(a.Indicators.Latest("Close")),
		RSI:        nullable(a.Indicators.Latest("RSI")),
		MACD:       nullable(a.Indicators.Latest("MACD")),
		MACDSignal: nullable(a.Indicators.Latest("MACD_Signal")),
		SMA20:      nullable(a.Indicators.Latest("SMA_20")),
		SMA50:      nullable(a.Indicators.Latest("SMA_50")),
		BBUpper:    nullable(a.Indicators.Latest("BB_Upper")),
		BBLower:    nullable(a.Indicators.Latest("BB_Lower")),
		ATR:        nullable(a.Indicators.Latest("ATR")),
		Volatility: nullable(a.Indicators.Latest("Volatility")),

		Action:      string(a.Recommendation.Action),
		Confidence:  a.Recommendation.Confidence,
		Reason:      a.Recommendation.Reason,
		TargetPrice: a.Recommendation.TargetPrice,
		StopLoss:    a.Recommendation.StopLoss,

		BuySignals:  buys,
		SellSignals: sells,
	}, nil
}

// WriteSnapshot persists the snapshot as indented JSON.
func WriteSnapshot(path string, s *Snapshot) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot loads a snapshot file written by WriteSnapshot.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return &s, nil
}

func nullable(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
