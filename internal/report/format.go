package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"StockLab/internal/model"
)

// FormatAnalysis renders a full analysis as a plain-text report: latest
// prices, indicator readout, signal totals, and the recommendation.
// Undefined indicators print as n/a, never as zero.
func FormatAnalysis(ind *model.IndicatorTable, sig *model.SignalTable, rec *model.Recommendation) string {
	var b strings.Builder

	last := ind.Len() - 1
	b.WriteString(fmt.Sprintf("=== %s analysis | %s ===\n\n",
		ind.Symbol, ind.Dates[last].Format("2006-01-02")))

	b.WriteString(fmt.Sprintf("Bars: %d (%s to %s)\n",
		ind.Len(),
		ind.Dates[0].Format("2006-01-02"),
		ind.Dates[last].Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Close: %s  Open: %s  High: %s  Low: %s\n",
		price(ind.Close[last]), price(ind.Open[last]),
		price(ind.High[last]), price(ind.Low[last])))
	b.WriteString(fmt.Sprintf("Volume: %s (%sx 20-day average)\n\n",
		volume(ind.Volume[last]), price(ind.VolumeRatio[last])))

	b.WriteString("Indicators:\n")
	b.WriteString(fmt.Sprintf("  SMA 20/50/200: %s / %s / %s\n",
		price(ind.SMA20[last]), price(ind.SMA50[last]), price(ind.SMA200[last])))
	b.WriteString(fmt.Sprintf("  EMA 12/26: %s / %s\n",
		price(ind.EMA12[last]), price(ind.EMA26[last])))
	b.WriteString(fmt.Sprintf("  RSI(14): %s\n", value(ind.RSI[last])))
	b.WriteString(fmt.Sprintf("  MACD: %s  signal: %s  histogram: %s\n",
		value(ind.MACD[last]), value(ind.MACDSignal[last]), value(ind.MACDHistogram[last])))
	b.WriteString(fmt.Sprintf("  Bollinger: %s / %s / %s\n",
		price(ind.BBUpper[last]), price(ind.BBMiddle[last]), price(ind.BBLower[last])))
	b.WriteString(fmt.Sprintf("  Stochastic %%K/%%D: %s / %s\n",
		value(ind.StochK[last]), value(ind.StochD[last])))
	b.WriteString(fmt.Sprintf("  Williams %%R: %s\n", value(ind.WilliamsR[last])))
	b.WriteString(fmt.Sprintf("  ATR(14): %s  Volatility(20): %s\n\n",
		price(ind.ATR[last]), value(ind.Volatility[last])))

	buys, sells := sig.Totals()
	b.WriteString(fmt.Sprintf("Signals: %d buy, %d sell across the series\n",
		buys, sells))
	latest := latestSignals(sig)
	if len(latest) > 0 {
		b.WriteString(fmt.Sprintf("Active today: %s\n", strings.Join(latest, ", ")))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Recommendation: %s (confidence %.0f%%)\n",
		rec.Action, rec.Confidence*100))
	b.WriteString(fmt.Sprintf("  %s\n", rec.Reason))
	b.WriteString(fmt.Sprintf("  Target: %s  Stop: %s\n",
		price(rec.TargetPrice), price(rec.StopLoss)))

	return b.String()
}

// latestSignals lists the signal columns firing on the last row.
func latestSignals(sig *model.SignalTable) []string {
	last := sig.Len() - 1
	var out []string
	for _, col := range sig.Columns() {
		if col.Values[last] {
			out = append(out, col.Name)
		}
	}
	return out
}

func price(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}

func value(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", v)
}

func volume(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return humanize.Comma(int64(v))
}
