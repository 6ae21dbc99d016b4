package model

import (
	"fmt"
	"time"
)

// Bar represents a single daily candlestick.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Series holds the price history for one symbol, oldest bar first.
type Series struct {
	Symbol string
	Bars   []Bar
}

// Validate checks the structural soundness of the series: ascending unique
// dates, positive prices, high/low bracketing open and close, non-negative
// volume. Computations refuse a series that fails validation.
func (s *Series) Validate() error {
	if s == nil {
		return fmt.Errorf("series is nil")
	}
	if s.Symbol == "" {
		return fmt.Errorf("series has no symbol")
	}
	if len(s.Bars) == 0 {
		return fmt.Errorf("series %s has no bars", s.Symbol)
	}
	for i, b := range s.Bars {
		day := b.Date.Format("2006-01-02")
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
			return fmt.Errorf("series %s: bar %d (%s) has a non-positive price", s.Symbol, i, day)
		}
		if b.High < b.Open || b.High < b.Close {
			return fmt.Errorf("series %s: bar %d (%s) high %.4f below open/close", s.Symbol, i, day, b.High)
		}
		if b.Low > b.Open || b.Low > b.Close {
			return fmt.Errorf("series %s: bar %d (%s) low %.4f above open/close", s.Symbol, i, day, b.Low)
		}
		if b.Volume < 0 {
			return fmt.Errorf("series %s: bar %d (%s) has negative volume %d", s.Symbol, i, day, b.Volume)
		}
		if i > 0 && !s.Bars[i-1].Date.Before(b.Date) {
			return fmt.Errorf("series %s: bar %d (%s) is not after the previous bar", s.Symbol, i, day)
		}
	}
	return nil
}

// Last returns the most recent bar. The series must be non-empty.
func (s *Series) Last() Bar {
	return s.Bars[len(s.Bars)-1]
}
