package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"StockLab/internal/calculator"
	"StockLab/internal/config"
	"StockLab/internal/csvio"
	"StockLab/internal/generator"
	"StockLab/internal/recorder"
	"StockLab/internal/report"
	"StockLab/internal/scheduler"
	"StockLab/internal/session"
	"StockLab/internal/source"
	"StockLab/internal/strategy"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockLab starting...")

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] load .env: %v", err)
	}

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	src := buildSource(cfg)
	log.Printf("[INFO] data source: %s", src.Name())

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		if err := ensureDir(cfg.Database.SQLitePath); err != nil {
			log.Fatalf("[FATAL] prepare database dir: %v", err)
		}
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	if err := writeDatasets(cfg.Datasets); err != nil {
		log.Fatalf("[FATAL] write sample datasets: %v", err)
	}

	mgr := session.NewManager()
	job := func() error {
		return runPipeline(cfg, src, mgr, rec)
	}

	if !cfg.Schedule.Enabled {
		if err := job(); err != nil {
			log.Fatalf("[FATAL] analysis: %v", err)
		}
		log.Println("[INFO] StockLab finished")
		return
	}

	sched := scheduler.New(job)
	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatalf("[FATAL] register schedule: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing analysis now")
		go sched.RunNow()
	}

	log.Println("[INFO] StockLab is running. Press Ctrl+C to stop.")
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("[INFO] shutdown signal received, stopping...")
}

func buildSource(cfg *config.Config) source.Source {
	if cfg.Source.Kind == "csv" {
		return source.NewFile(cfg.Symbol, cfg.Source.CSVPath)
	}
	return source.NewSynthetic(generator.Params{
		Symbol:      cfg.Symbol,
		TradingDays: cfg.Generator.TradingDays,
		StartPrice:  cfg.Generator.StartPrice,
		Seed:        cfg.Generator.Seed,
	})
}

// writeDatasets generates the configured sample series files.
func writeDatasets(datasets []config.Dataset) error {
	for _, d := range datasets {
		series, err := generator.Generate(generator.Params{
			Symbol:      d.Symbol,
			TradingDays: d.TradingDays,
			StartPrice:  d.StartPrice,
			Seed:        d.Seed,
		})
		if err != nil {
			return fmt.Errorf("dataset %s: %w", d.Symbol, err)
		}
		if err := ensureDir(d.Path); err != nil {
			return fmt.Errorf("dataset %s: %w", d.Symbol, err)
		}
		if err := csvio.WriteSeries(d.Path, series); err != nil {
			return fmt.Errorf("dataset %s: %w", d.Symbol, err)
		}
		log.Printf("[INFO] wrote dataset %s (%d bars) to %s", d.Symbol, len(series.Bars), d.Path)
	}
	return nil
}

// runPipeline executes one full analysis: fetch, indicators, signals,
// session update, report, exports, and the run record.
func runPipeline(cfg *config.Config, src source.Source, mgr *session.Manager, rec recorder.Recorder) error {
	series, err := src.Fetch()
	if err != nil {
		return fmt.Errorf("fetch series: %w", err)
	}
	log.Printf("[INFO] fetched %d bars for %s", len(series.Bars), series.Symbol)

	table, err := calculator.CalculateAll(series)
	if err != nil {
		return fmt.Errorf("compute indicators: %w", err)
	}
	signals, verdict, err := strategy.Evaluate(table)
	if err != nil {
		return fmt.Errorf("compute signals: %w", err)
	}

	analysis := &session.Analysis{
		Symbol:         series.Symbol,
		Source:         src.Name(),
		RunAt:          time.Now(),
		Series:         series,
		Indicators:     table,
		Signals:        signals,
		Recommendation: verdict,
	}
	mgr.Set(analysis)

	fmt.Print(report.FormatAnalysis(table, signals, verdict))

	if src.Name() == "synthetic" && cfg.Export.SeriesCSV != "" {
		if err := ensureDir(cfg.Export.SeriesCSV); err != nil {
			return err
		}
		if err := csvio.WriteSeries(cfg.Export.SeriesCSV, series); err != nil {
			return fmt.Errorf("export series: %w", err)
		}
		log.Printf("[INFO] series exported to %s", cfg.Export.SeriesCSV)
	}
	if cfg.Export.AnalysisCSV != "" {
		if err := ensureDir(cfg.Export.AnalysisCSV); err != nil {
			return err
		}
		if err := csvio.WriteAnalysis(cfg.Export.AnalysisCSV, table, signals); err != nil {
			return fmt.Errorf("export analysis: %w", err)
		}
		log.Printf("[INFO] analysis exported to %s", cfg.Export.AnalysisCSV)
	}
	if cfg.Export.SnapshotJSON != "" {
		snap, err := analysis.Snapshot()
		if err != nil {
			return fmt.Errorf("build snapshot: %w", err)
		}
		if err := ensureDir(cfg.Export.SnapshotJSON); err != nil {
			return err
		}
		if err := session.WriteSnapshot(cfg.Export.SnapshotJSON, snap); err != nil {
			return fmt.Errorf("export snapshot: %w", err)
		}
		log.Printf("[INFO] snapshot exported to %s", cfg.Export.SnapshotJSON)
	}

	buys, sells := signals.Totals()
	if err := rec.RecordRun(&recorder.RunRecord{
		RunAt:       analysis.RunAt,
		Symbol:      series.Symbol,
		Source:      src.Name(),
		Bars:        table.Len(),
		LastDate:    table.Dates[table.Len()-1],
		Close:       table.Latest("Close"),
		RSI:         table.Latest("RSI"),
		MACD:        table.Latest("MACD"),
		SMA20:       table.Latest("SMA_20"),
		SMA50:       table.Latest("SMA_50"),
		Action:      string(verdict.Action),
		Confidence:  verdict.Confidence,
		Reason:      verdict.Reason,
		TargetPrice: verdict.TargetPrice,
		StopLoss:    verdict.StopLoss,
		BuySignals:  buys,
		SellSignals: sells,
	}); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}
