package recorder

import "time"

// RunRecord captures the outcome of one analysis run: identity, the latest
// indicator readings, and the verdict. Undefined indicator values stay NaN
// here and become SQL NULL in storage.
type RunRecord struct {
	ID       string
	RunAt    time.Time
	Symbol   string
	Source   string
	Bars     int
	LastDate time.Time

	Close float64
	RSI   float64
	MACD  float64
	SMA20 float64
	SMA50 float64

	Action      string
	Confidence  float64
	Reason      string
	TargetPrice float64
	StopLoss    float64

	BuySignals  int
	SellSignals int
}

// Recorder persists analysis runs for later inspection.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Runs(limit int) ([]RunRecord, error)
	Close() error
}
