package generator

import (
	"testing"
	"time"
)

func TestGenerate_InvalidArguments(t *testing.T) {
	cases := []struct {
		name string
		p    Params
	}{
		{"empty symbol", Params{TradingDays: 10, StartPrice: 100}},
		{"zero days", Params{Symbol: "TEST", TradingDays: 0, StartPrice: 100}},
		{"negative days", Params{Symbol: "TEST", TradingDays: -3, StartPrice: 100}},
		{"zero price", Params{Symbol: "TEST", TradingDays: 10, StartPrice: 0}},
		{"negative price", Params{Symbol: "TEST", TradingDays: 10, StartPrice: -5}},
	}
	for _, tc := range cases {
		if _, err := Generate(tc.p); err == nil {
			t.Errorf("%s: expected error, got none", tc.name)
		}
	}
}

func TestGenerate_SeededReproducibility(t *testing.T) {
	p := Params{Symbol: "TEST", TradingDays: 120, StartPrice: 100, Seed: 42}

	first, err := Generate(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Generate(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first.Bars) != len(second.Bars) {
		t.Fatalf("lengths differ: %d vs %d", len(first.Bars), len(second.Bars))
	}
	for i := range first.Bars {
		if first.Bars[i] != second.Bars[i] {
			t.Fatalf("bar %d differs between identical seeded runs:\n%+v\n%+v",
				i, first.Bars[i], second.Bars[i])
		}
	}
}

func TestGenerate_WeekdayCalendar(t *testing.T) {
	// 10 calendar days ending Wednesday 2024-06-12 contain exactly 8
	// weekdays (the weekend of June 8-9 drops out).
	now := time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC)
	s, err := generate(Params{Symbol: "TEST", TradingDays: 10, StartPrice: 100, Seed: 42}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Bars) != 8 {
		t.Fatalf("expected 8 weekday bars, got %d", len(s.Bars))
	}
	if first := s.Bars[0].Date; !first.Equal(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected first bar on 2024-06-03, got %s", first.Format("2006-01-02"))
	}
	if last := s.Bars[7].Date; !last.Equal(time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected last bar on 2024-06-12, got %s", last.Format("2006-01-02"))
	}
	for i, b := range s.Bars {
		if wd := b.Date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Errorf("bar %d falls on a weekend: %s", i, b.Date.Format("2006-01-02"))
		}
	}
}

func TestGenerate_BarInvariants(t *testing.T) {
	s, err := Generate(Params{Symbol: "TEST", TradingDays: 500, StartPrice: 100, Seed: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Bars) > 500 {
		t.Fatalf("expected at most 500 bars, got %d", len(s.Bars))
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("generated series failed validation: %v", err)
	}
	for i, b := range s.Bars {
		if b.Close < 1.0 {
			t.Errorf("bar %d: close %.2f below the 1.0 floor", i, b.Close)
		}
		if b.High < b.Open || b.High < b.Close {
			t.Errorf("bar %d: high %.2f below open/close", i, b.High)
		}
		if b.Low > b.Open || b.Low > b.Close {
			t.Errorf("bar %d: low %.2f above open/close", i, b.Low)
		}
		if b.Volume < 0 {
			t.Errorf("bar %d: negative volume %d", i, b.Volume)
		}
	}
}

func TestGenerate_PriceFloor(t *testing.T) {
	// Starting just above the floor makes the noise term push the walk
	// below 1.0 repeatedly; every close must still come out at or above it.
	s, err := Generate(Params{Symbol: "TEST", TradingDays: 500, StartPrice: 1.01, Seed: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, b := range s.Bars {
		if b.Close < 1.0 {
			t.Errorf("bar %d: close %.2f below the 1.0 floor", i, b.Close)
		}
	}
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	a, err := Generate(Params{Symbol: "TEST", TradingDays: 60, StartPrice: 100, Seed: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Generate(Params{Symbol: "TEST", TradingDays: 60, StartPrice: 100, Seed: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	same := true
	for i := range a.Bars {
		if a.Bars[i].Close != b.Bars[i].Close {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical close series")
	}
}
