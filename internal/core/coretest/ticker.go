// Package coretest provides deterministic stand-ins for the core contracts,
// for use in tests.
package coretest

import (
	"sync"
	"time"

	"lifeboard/internal/core"
)

var _ core.Ticker = (*ManualTicker)(nil)

// ManualTicker is a core.Ticker that fires only when Tick is called, so a
// test can advance the engine one generation at a time.
type ManualTicker struct {
	mu      sync.Mutex
	c       chan time.Time
	stopped bool
}

// NewManualTicker uses an unbuffered channel, so Tick returns only once the
// consumer has taken the value.
func NewManualTicker() *ManualTicker {
	return &ManualTicker{c: make(chan time.Time)}
}

// C implements core.Ticker.
func (m *ManualTicker) C() <-chan time.Time { return m.c }

// Stop implements core.Ticker.
func (m *ManualTicker) Stop() {
	m.mu.Lock()
	m.stopped = true
	m.mu.Unlock()
}

// Stopped reports whether Stop has been called.
func (m *ManualTicker) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

// Tick delivers one tick, waiting at most timeout for the consumer. It
// reports whether the tick was taken.
func (m *ManualTicker) Tick(timeout time.Duration) bool {
	select {
	case m.c <- time.Now():
		return true
	case <-time.After(timeout):
		return false
	}
}

// Factory is a core.TickerFactory handing out ManualTickers.
func Factory(time.Duration) core.Ticker { return NewManualTicker() }
