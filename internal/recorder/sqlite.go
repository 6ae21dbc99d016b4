package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder stores run history in a SQLite database.
type SQLiteRecorder struct {
	db *sqlx.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers can inspect history while the
	// scheduler writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id           TEXT PRIMARY KEY,
			run_at       INTEGER NOT NULL,
			symbol       TEXT NOT NULL,
			source       TEXT NOT NULL,
			bars         INTEGER NOT NULL,
			last_date    TEXT NOT NULL,
			close        REAL,
			rsi          REAL,
			macd         REAL,
			sma_20       REAL,
			sma_50       REAL,
			action       TEXT NOT NULL,
			confidence   REAL NOT NULL,
			reason       TEXT NOT NULL,
			target_price REAL NOT NULL,
			stop_loss    REAL NOT NULL,
			buy_signals  INTEGER NOT NULL,
			sell_signals INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_at ON analysis_runs(run_at)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_symbol ON analysis_runs(symbol)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// runRow is the storage shape of a RunRecord; nullable columns carry the
// undefined indicator values.
type runRow struct {
	ID          string          `db:"id"`
	RunAt       int64           `db:"run_at"`
	Symbol      string          `db:"symbol"`
	Source      string          `db:"source"`
	Bars        int             `db:"bars"`
	LastDate    string          `db:"last_date"`
	Close       sql.NullFloat64 `db:"close"`
	RSI         sql.NullFloat64 `db:"rsi"`
	MACD        sql.NullFloat64 `db:"macd"`
	SMA20       sql.NullFloat64 `db:"sma_20"`
	SMA50       sql.NullFloat64 `db:"sma_50"`
	Action      string          `db:"action"`
	Confidence  float64         `db:"confidence"`
	Reason      string          `db:"reason"`
	TargetPrice float64         `db:"target_price"`
	StopLoss    float64         `db:"stop_loss"`
	BuySignals  int             `db:"buy_signals"`
	SellSignals int             `db:"sell_signals"`
}

func (r *SQLiteRecorder) RecordRun(rec *RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.RunAt.IsZero() {
		rec.RunAt = time.Now()
	}

	row := runRow{
		ID:          rec.ID,
		RunAt:       rec.RunAt.Unix(),
		Symbol:      rec.Symbol,
		Source:      rec.Source,
		Bars:        rec.Bars,
		LastDate:    rec.LastDate.Format("2006-01-02"),
		Close:       nullFloat(rec.Close),
		RSI:         nullFloat(rec.RSI),
		MACD:        nullFloat(rec.MACD),
		SMA20:       nullFloat(rec.SMA20),
		SMA50:       nullFloat(rec.SMA50),
		Action:      rec.Action,
		Confidence:  rec.Confidence,
		Reason:      rec.Reason,
		TargetPrice: rec.TargetPrice,
		StopLoss:    rec.StopLoss,
		BuySignals:  rec.BuySignals,
		SellSignals: rec.SellSignals,
	}

	_, err := r.db.NamedExec(`INSERT INTO analysis_runs
		(id, run_at, symbol, source, bars, last_date,
		 close, rsi, macd, sma_20, sma_50,
		 action, confidence, reason, target_price, stop_loss,
		 buy_signals, sell_signals)
		VALUES (:id, :run_at, :symbol, :source, :bars, :last_date,
		 :close, :rsi, :macd, :sma_20, :sma_50,
		 :action, :confidence, :reason, :target_price, :stop_loss,
		 :buy_signals, :sell_signals)`, row)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) Runs(limit int) ([]RunRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 {
		return nil, fmt.Errorf("runs: limit must be positive, got %d", limit)
	}

	var rows []runRow
	if err := r.db.Select(&rows,
		`SELECT * FROM analysis_runs ORDER BY run_at DESC, id LIMIT ?`, limit); err != nil {
		return nil, fmt.Errorf("select runs: %w", err)
	}

	out := make([]RunRecord, 0, len(rows))
	for _, row := range rows {
		lastDate, err := time.Parse("2006-01-02", row.LastDate)
		if err != nil {
			return nil, fmt.Errorf("parse last_date %q: %w", row.LastDate, err)
		}
		out = append(out, RunRecord{
			ID:          row.ID,
			RunAt:       time.Unix(row.RunAt, 0).UTC(),
			Symbol:      row.Symbol,
			Source:      row.Source,
			Bars:        row.Bars,
			LastDate:    lastDate,
			Close:       floatOrNaN(row.Close),
			RSI:         floatOrNaN(row.RSI),
			MACD:        floatOrNaN(row.MACD),
			SMA20:       floatOrNaN(row.SMA20),
			SMA50:       floatOrNaN(row.SMA50),
			Action:      row.Action,
			Confidence:  row.Confidence,
			Reason:      row.Reason,
			TargetPrice: row.TargetPrice,
			StopLoss:    row.StopLoss,
			BuySignals:  row.BuySignals,
			SellSignals: row.SellSignals,
		})
	}
	return out, nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func nullFloat(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: !math.IsNaN(v)}
}

func floatOrNaN(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
