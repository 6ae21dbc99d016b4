package csvio

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"StockLab/internal/calculator"
	"StockLab/internal/model"
	"StockLab/internal/strategy"
)

func sampleSeries(n int) *model.Series {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, n)
	for i := range bars {
		c := 100.0 + float64(i)*0.25
		bars[i] = model.Bar{
			Date:   start.AddDate(0, 0, i),
			Open:   c - 0.1,
			High:   c + 0.5,
			Low:    c - 0.5,
			Close:  c,
			Volume: int64(1_000_000 + i*1000),
		}
	}
	return &model.Series{Symbol: "TEST", Bars: bars}
}

func TestSeriesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.csv")
	want := sampleSeries(30)

	if err := WriteSeries(path, want); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadSeries(path, "TEST")
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if got.Symbol != want.Symbol {
		t.Errorf("expected symbol %s, got %s", want.Symbol, got.Symbol)
	}
	if len(got.Bars) != len(want.Bars) {
		t.Fatalf("expected %d bars, got %d", len(want.Bars), len(got.Bars))
	}
	for i := range want.Bars {
		w, g := want.Bars[i], got.Bars[i]
		if !w.Date.Equal(g.Date) {
			t.Errorf("bar %d: expected date %v, got %v", i, w.Date, g.Date)
		}
		// Prices survive exactly: the inputs carry at most two decimals.
		if g.Open != w.Open || g.High != w.High || g.Low != w.Low || g.Close != w.Close {
			t.Errorf("bar %d: prices changed in round trip", i)
		}
		if g.Volume != w.Volume {
			t.Errorf("bar %d: expected volume %d, got %d", i, w.Volume, g.Volume)
		}
	}
}

func TestWriteSeries_CurrencyRounding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.csv")
	s := &model.Series{Symbol: "TEST", Bars: []model.Bar{{
		Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Open: 100, High: 101.5, Low: 99, Close: 100.1,
		Volume: 1234567,
	}}}
	if err := WriteSeries(path, s); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "Date,Open,High,Low,Close,Volume" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	// Two decimals on every price, byte for byte.
	if lines[1] != "2024-01-02,100.00,101.50,99.00,100.10,1234567" {
		t.Errorf("unexpected row: %q", lines[1])
	}
}

func TestReadSeries_Malformed(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name    string
		content string
	}{
		{"bad header", "Date,Open\n2024-01-02,1\n"},
		{"bad date", "Date,Open,High,Low,Close,Volume\n02/01/2024,1,2,0.5,1,10\n"},
		{"bad price", "Date,Open,High,Low,Close,Volume\n2024-01-02,x,2,0.5,1,10\n"},
		{"bad volume", "Date,Open,High,Low,Close,Volume\n2024-01-02,1,2,0.5,1,1.5\n"},
		{"unsorted", "Date,Open,High,Low,Close,Volume\n" +
			"2024-01-03,1,2,0.5,1,10\n2024-01-02,1,2,0.5,1,10\n"},
		{"empty", ""},
	}
	for _, tc := range cases {
		path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".csv")
		if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
			t.Fatalf("%s: setup: %v", tc.name, err)
		}
		if _, err := ReadSeries(path, "TEST"); err == nil {
			t.Errorf("%s: expected error, got none", tc.name)
		}
	}
}

func TestWriteAnalysis(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.csv")
	series := sampleSeries(60)

	table, err := calculator.CalculateAll(series)
	if err != nil {
		t.Fatalf("indicators: %v", err)
	}
	sig, _, err := strategy.Evaluate(table)
	if err != nil {
		t.Fatalf("signals: %v", err)
	}
	if err := WriteAnalysis(path, table, sig); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 61 {
		t.Fatalf("expected header + 60 rows, got %d lines", len(lines))
	}

	wantCols := 1 + len(table.Columns()) + len(sig.Columns())
	header := strings.Split(lines[0], ",")
	if len(header) != wantCols {
		t.Fatalf("expected %d header columns, got %d", wantCols, len(header))
	}
	if header[0] != "Date" || header[1] != "Open" {
		t.Errorf("unexpected header start: %v", header[:2])
	}

	// Row 0: SMA_20 is inside its lookback, so the field must be empty.
	first := strings.Split(lines[1], ",")
	smaIdx := indexOf(header, "SMA_20")
	if first[smaIdx] != "" {
		t.Errorf("expected empty SMA_20 on first row, got %q", first[smaIdx])
	}
	if !math.IsNaN(table.SMA20[0]) {
		t.Fatal("test premise broken: SMA_20[0] should be undefined")
	}

	// Last row: every signal field is a bool literal.
	last := strings.Split(lines[60], ",")
	for i := 1 + len(table.Columns()); i < wantCols; i++ {
		if last[i] != "true" && last[i] != "false" {
			t.Errorf("signal field %s: expected bool, got %q", header[i], last[i])
		}
	}

	// Currency columns carry exactly two decimals once defined.
	closeIdx := indexOf(header, "Close")
	if got := last[closeIdx]; got != "114.75" {
		t.Errorf("expected close 114.75, got %q", got)
	}
}

func TestWriteAnalysis_Misaligned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.csv")
	series := sampleSeries(25)
	table, err := calculator.CalculateAll(series)
	if err != nil {
		t.Fatalf("indicators: %v", err)
	}
	sig, _, err := strategy.Evaluate(table)
	if err != nil {
		t.Fatalf("signals: %v", err)
	}
	sig.Dates = sig.Dates[:10]
	if err := WriteAnalysis(path, table, sig); err == nil {
		t.Fatal("expected error for misaligned tables")
	}
	if err := WriteAnalysis(path, nil, sig); err == nil {
		t.Fatal("expected error for nil table")
	}
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}
