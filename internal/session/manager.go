package session

import (
	"sync"
	"time"

	"StockLab/internal/model"
)

// Analysis bundles the outputs of one pipeline run. The engine packages
// stay pure; this is the request-scoped state the caller owns instead of
// process-wide globals.
type Analysis struct {
	Symbol         string
	Source         string
	RunAt          time.Time
	Series         *model.Series
	Indicators     *model.IndicatorTable
	Signals        *model.SignalTable
	Recommendation *model.Recommendation
}

// Manager holds the latest analysis behind a mutex so the scheduler can
// refresh it while readers take snapshots.
type Manager struct {
	mu     sync.Mutex
	latest *Analysis
}

func NewManager() *Manager { return &Manager{} }

// Set replaces the latest analysis.
func (m *Manager) Set(a *Analysis) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.latest = a
}

// Latest returns the current analysis, or nil before the first run. The
// tables inside are shared read-only per the engine's ownership rules.
func (m *Manager) Latest() *Analysis {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.latest
}
