package csvio

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"StockLab/internal/model"
)

// currencyColumns are the analysis columns denominated in price units; they
// print with two decimals like the series file. Everything else numeric
// prints with six.
var currencyColumns = map[string]bool{
	"Open": true, "High": true, "Low": true, "Close": true,
	"SMA_20": true, "SMA_50": true, "SMA_200": true,
	"EMA_12": true, "EMA_26": true,
	"BB_Upper": true, "BB_Middle": true, "BB_Lower": true,
	"ATR": true,
}

// WriteAnalysis exports the full indicator table followed by the signal
// columns, one row per date. Undefined values become empty fields, never
// zero, so consumers see "not available" where a lookback has not filled.
func WriteAnalysis(path string, ind *model.IndicatorTable, sig *model.SignalTable) error {
	if ind == nil || sig == nil {
		return fmt.Errorf("write analysis: nil table")
	}
	if ind.Len() != sig.Len() {
		return fmt.Errorf("write analysis: indicator table has %d rows, signal table %d",
			ind.Len(), sig.Len())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write analysis: %w", err)
	}
	defer f.Close()

	indCols := ind.Columns()
	sigCols := sig.Columns()

	header := []string{"Date"}
	for _, c := range indCols {
		header = append(header, c.Name)
	}
	for _, c := range sigCols {
		header = append(header, c.Name)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write analysis header: %w", err)
	}

	row := make([]string, 0, len(header))
	for i := 0; i < ind.Len(); i++ {
		row = row[:0]
		row = append(row, ind.Dates[i].Format(dateLayout))
		for _, c := range indCols {
			row = append(row, formatValue(c.Name, c.Values[i]))
		}
		for _, c := range sigCols {
			row = append(row, strconv.FormatBool(c.Values[i]))
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write analysis row %s: %w", row[0], err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush analysis: %w", err)
	}
	return nil
}

func formatValue(column string, v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	if column == "Volume" {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	if currencyColumns[column] {
		return currency(v)
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
