package source

import (
	"path/filepath"
	"testing"

	"StockLab/internal/csvio"
	"StockLab/internal/generator"
)

func TestSyntheticSource_SeededFetchRepeats(t *testing.T) {
	src := NewSynthetic(generator.Params{
		Symbol:      "TEST",
		TradingDays: 60,
		StartPrice:  100,
		Seed:        7,
	})
	if src.Name() != "synthetic" {
		t.Errorf("unexpected name %q", src.Name())
	}

	first, err := src.Fetch()
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	second, err := src.Fetch()
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(first.Bars) != len(second.Bars) {
		t.Fatalf("expected identical lengths, got %d and %d", len(first.Bars), len(second.Bars))
	}
	for i := range first.Bars {
		if first.Bars[i] != second.Bars[i] {
			t.Fatalf("bar %d differs between seeded fetches", i)
		}
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.csv")
	series, err := generator.Generate(generator.Params{
		Symbol:      "TEST",
		TradingDays: 30,
		StartPrice:  100,
		Seed:        7,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := csvio.WriteSeries(path, series); err != nil {
		t.Fatalf("write: %v", err)
	}

	src := NewFile("TEST", path)
	if src.Name() != "csv" {
		t.Errorf("unexpected name %q", src.Name())
	}
	got, err := src.Fetch()
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got.Symbol != "TEST" || len(got.Bars) != len(series.Bars) {
		t.Errorf("expected %d TEST bars, got %d %s bars",
			len(series.Bars), len(got.Bars), got.Symbol)
	}

	if _, err := NewFile("TEST", filepath.Join(t.TempDir(), "missing.csv")).Fetch(); err == nil {
		t.Fatal("expected error for a missing file")
	}
}
