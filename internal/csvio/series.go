package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"StockLab/internal/model"
)

const dateLayout = "2006-01-02"

var seriesHeader = []string{"Date", "Open", "High", "Low", "Close", "Volume"}

// WriteSeries writes a series in the interchange format: one row per date,
// dates as YYYY-MM-DD, prices printed with exactly two decimals, volume as
// a plain integer.
func WriteSeries(path string, s *model.Series) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("write series: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write series: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(seriesHeader); err != nil {
		return fmt.Errorf("write series header: %w", err)
	}
	for _, b := range s.Bars {
		row := []string{
			b.Date.Format(dateLayout),
			currency(b.Open),
			currency(b.High),
			currency(b.Low),
			currency(b.Close),
			strconv.FormatInt(b.Volume, 10),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write series row %s: %w", row[0], err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush series: %w", err)
	}
	return nil
}

// ReadSeries parses a series file written in the interchange format and
// validates the result, so malformed rows and unsorted dates are rejected
// before any computation sees them.
func ReadSeries(path, symbol string) (*model.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read series: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read series %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read series %s: file is empty", path)
	}
	if err := checkHeader(records[0], seriesHeader); err != nil {
		return nil, fmt.Errorf("read series %s: %w", path, err)
	}

	bars := make([]model.Bar, 0, len(records)-1)
	for i, rec := range records[1:] {
		bar, err := parseBar(rec)
		if err != nil {
			return nil, fmt.Errorf("read series %s: row %d: %w", path, i+2, err)
		}
		bars = append(bars, bar)
	}

	s := &model.Series{Symbol: symbol, Bars: bars}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("read series %s: %w", path, err)
	}
	return s, nil
}

func checkHeader(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("header has %d columns, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("header column %d is %q, want %q", i, got[i], want[i])
		}
	}
	return nil
}

func parseBar(rec []string) (model.Bar, error) {
	if len(rec) != len(seriesHeader) {
		return model.Bar{}, fmt.Errorf("has %d fields, want %d", len(rec), len(seriesHeader))
	}
	date, err := time.Parse(dateLayout, rec[0])
	if err != nil {
		return model.Bar{}, fmt.Errorf("bad date %q: %w", rec[0], err)
	}
	prices := make([]float64, 4)
	for i, name := range []string{"open", "high", "low", "close"} {
		v, err := strconv.ParseFloat(rec[i+1], 64)
		if err != nil {
			return model.Bar{}, fmt.Errorf("bad %s %q: %w", name, rec[i+1], err)
		}
		prices[i] = v
	}
	volume, err := strconv.ParseInt(rec[5], 10, 64)
	if err != nil {
		return model.Bar{}, fmt.Errorf("bad volume %q: %w", rec[5], err)
	}
	return model.Bar{
		Date:   date,
		Open:   prices[0],
		High:   prices[1],
		Low:    prices[2],
		Close:  prices[3],
		Volume: volume,
	}, nil
}

// currency prints a price with exactly two decimals, the byte-for-byte
// contract for currency-denominated columns.
func currency(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
