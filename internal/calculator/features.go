package calculator

import (
	"fmt"
	"math"
	"time"

	"StockLab/internal/model"
)

// FeatureColumns lists the indicator columns consumed by the downstream
// forecasting pipeline, in training order.
var FeatureColumns = []string{
	"Open", "High", "Low", "Close", "Volume",
	"SMA_20", "SMA_50", "EMA_12", "EMA_26",
	"MACD", "MACD_Signal", "RSI",
	"BB_Upper", "BB_Middle", "BB_Lower",
	"Price_Change", "Volatility", "Volume_Ratio",
}

// Features is a dense row-per-date matrix with no undefined values.
type Features struct {
	Columns []string
	Dates   []time.Time
	Rows    [][]float64
}

// FeatureMatrix selects the feature columns from the table and drops every
// row that still has an undefined value, so consumers receive a fully dense
// matrix. Returns an error when no row survives.
func FeatureMatrix(t *model.IndicatorTable) (*Features, error) {
	cols := make([][]float64, len(FeatureColumns))
	for i, name := range FeatureColumns {
		col, ok := t.Column(name)
		if !ok || len(col) != t.Len() {
			return nil, fmt.Errorf("feature matrix: column %s missing from table", name)
		}
		cols[i] = col
	}

	f := &Features{Columns: FeatureColumns}
	for row := 0; row < t.Len(); row++ {
		defined := true
		for _, col := range cols {
			if math.IsNaN(col[row]) {
				defined = false
				break
			}
		}
		if !defined {
			continue
		}
		values := make([]float64, len(cols))
		for i, col := range cols {
			values[i] = col[row]
		}
		f.Dates = append(f.Dates, t.Dates[row])
		f.Rows = append(f.Rows, values)
	}

	if len(f.Rows) == 0 {
		return nil, fmt.Errorf("feature matrix: no rows with all features defined")
	}
	return f, nil
}
