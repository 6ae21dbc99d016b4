package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Dataset describes one synthetic series the pipeline writes as a sample
// CSV before the main run.
type Dataset struct {
	Symbol      string  `yaml:"symbol"`
	TradingDays int     `yaml:"trading_days"`
	StartPrice  float64 `yaml:"start_price"`
	Seed        int64   `yaml:"seed"`
	Path        string  `yaml:"path"`
}

// Config holds all application configuration.
type Config struct {
	Symbol string `yaml:"symbol"`
	Source struct {
		Kind    string `yaml:"kind"` // "synthetic" or "csv"
		CSVPath string `yaml:"csv_path"`
	} `yaml:"source"`
	Generator struct {
		TradingDays int     `yaml:"trading_days"`
		StartPrice  float64 `yaml:"start_price"`
		Seed        int64   `yaml:"seed"`
	} `yaml:"generator"`
	Datasets []Dataset `yaml:"datasets"`
	Export   struct {
		SeriesCSV    string `yaml:"series_csv"`
		AnalysisCSV  string `yaml:"analysis_csv"`
		SnapshotJSON string `yaml:"snapshot_json"`
	} `yaml:"export"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		Enabled bool   `yaml:"enabled"`
		Cron    string `yaml:"cron"`
	} `yaml:"schedule"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; the defaults
// describe a self-contained synthetic run.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("STOCKLAB_SYMBOL"); v != "" {
		cfg.Symbol = v
	}
	if v := os.Getenv("STOCKLAB_SOURCE"); v != "" {
		cfg.Source.Kind = v
	}
	if v := os.Getenv("STOCKLAB_CSV_PATH"); v != "" {
		cfg.Source.CSVPath = v
	}
	if v := os.Getenv("STOCKLAB_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse STOCKLAB_SEED %q: %w", v, err)
		}
		cfg.Generator.Seed = seed
	}
	if v := os.Getenv("STOCKLAB_SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("STOCKLAB_CRON"); v != "" {
		cfg.Schedule.Cron = v
	}

	// Defaults
	if cfg.Symbol == "" {
		cfg.Symbol = "DEMO"
	}
	if cfg.Source.Kind == "" {
		cfg.Source.Kind = "synthetic"
	}
	if cfg.Generator.TradingDays == 0 {
		cfg.Generator.TradingDays = 500
	}
	if cfg.Generator.StartPrice == 0 {
		cfg.Generator.StartPrice = 100
	}
	if cfg.Export.SeriesCSV == "" {
		cfg.Export.SeriesCSV = "data/series.csv"
	}
	if cfg.Export.AnalysisCSV == "" {
		cfg.Export.AnalysisCSV = "data/analysis.csv"
	}
	if cfg.Export.SnapshotJSON == "" {
		cfg.Export.SnapshotJSON = "data/snapshot.json"
	}
	if cfg.Schedule.Cron == "" {
		cfg.Schedule.Cron = "0 0 18 * * 1-5"
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	switch c.Source.Kind {
	case "synthetic":
		if c.Generator.TradingDays <= 0 {
			return fmt.Errorf("generator.trading_days must be positive")
		}
		if c.Generator.StartPrice <= 0 {
			return fmt.Errorf("generator.start_price must be positive")
		}
	case "csv":
		if c.Source.CSVPath == "" {
			return fmt.Errorf("source.csv_path is required for the csv source")
		}
	default:
		return fmt.Errorf("source.kind must be synthetic or csv, got %q", c.Source.Kind)
	}
	for i, d := range c.Datasets {
		if d.Symbol == "" || d.Path == "" {
			return fmt.Errorf("datasets[%d]: symbol and path are required", i)
		}
		if d.TradingDays <= 0 || d.StartPrice <= 0 {
			return fmt.Errorf("datasets[%d]: trading_days and start_price must be positive", i)
		}
	}
	if c.Schedule.Enabled && c.Schedule.Cron == "" {
		return fmt.Errorf("schedule.cron is required when the schedule is enabled")
	}
	return nil
}
