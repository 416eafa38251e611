package core

import "time"

// Ticker is a repeating timer resource. C delivers one value per period
// until Stop is called; Stop releases the resource and is idempotent.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory acquires a Ticker firing every d.
type TickerFactory func(d time.Duration) Ticker

// NewIntervalTicker is the wall-clock TickerFactory.
func NewIntervalTicker(d time.Duration) Ticker {
	if d <= 0 {
		d = 100 * time.Millisecond
	}
	return &intervalTicker{t: time.NewTicker(d)}
}

type intervalTicker struct {
	t *time.Ticker
}

func (i *intervalTicker) C() <-chan time.Time { return i.t.C }

func (i *intervalTicker) Stop() { i.t.Stop() }
